package templex

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemSource reads template text from files.
//
// With an empty Root a location is used as given, relative to the working
// directory. With a Root, locations are joined under it and may neither be
// absolute nor contain a ".." element.
type FilesystemSource struct {
	Root string
}

// FilesystemSourceDriver is the driver for creating FilesystemSource instances.
type FilesystemSourceDriver struct{}

func init() {
	RegisterSourceDriver(SourceDriverNameFilesystem, &FilesystemSourceDriver{})
}

// Open creates a new FilesystemSource.
// The connection string is the root directory; empty means no root.
func (d *FilesystemSourceDriver) Open(connectionString string) (TextSource, error) {
	return NewFilesystemSource(connectionString), nil
}

// NewFilesystemSource creates a filesystem source rooted at root.
func NewFilesystemSource(root string) *FilesystemSource {
	return &FilesystemSource{Root: root}
}

// Load implements TextSource.
func (s *FilesystemSource) Load(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.resolve(location)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", NewSourceNotFoundError(location, err)
		}
		return "", NewSourceError(ErrMsgSourceReadFailed, location, err)
	}
	return string(data), nil
}

func (s *FilesystemSource) resolve(location string) (string, error) {
	if location == "" {
		return "", NewSourceError(ErrMsgSourceInvalidLoc, location, nil)
	}
	if s.Root == "" {
		return location, nil
	}

	if filepath.IsAbs(location) || strings.HasPrefix(location, "/") {
		return "", NewSourceError(ErrMsgSourceTraversal, location, nil)
	}
	for _, part := range strings.Split(filepath.ToSlash(location), "/") {
		if part == FilesystemParentRef {
			return "", NewSourceError(ErrMsgSourceTraversal, location, nil)
		}
	}
	return filepath.Join(s.Root, filepath.FromSlash(location)), nil
}

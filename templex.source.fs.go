package templex

import (
	"context"
	"errors"
	"io/fs"
)

// FSSource reads template text from an fs.FS, such as an embed.FS.
// Locations must be valid fs paths: slash separated, unrooted, no "..".
type FSSource struct {
	FS fs.FS
}

// NewFSSource creates a source over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{FS: fsys}
}

// Load implements TextSource.
func (s *FSSource) Load(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.FS == nil || !fs.ValidPath(location) {
		return "", NewSourceError(ErrMsgSourceInvalidLoc, location, nil)
	}

	data, err := fs.ReadFile(s.FS, location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", NewSourceNotFoundError(location, err)
		}
		return "", NewSourceError(ErrMsgSourceReadFailed, location, err)
	}
	return string(data), nil
}

package templex

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceDrivers_Registered(t *testing.T) {
	drivers := ListSourceDrivers()

	assert.Contains(t, drivers, SourceDriverNameFilesystem)
	assert.Contains(t, drivers, SourceDriverNameMemory)
	assert.Contains(t, drivers, SourceDriverNamePostgres)
}

func TestOpenSource(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		src, err := OpenSource(SourceDriverNameMemory, "")
		require.NoError(t, err)
		assert.IsType(t, &MemorySource{}, src)
	})

	t.Run("filesystem", func(t *testing.T) {
		dir := t.TempDir()
		src, err := OpenSource(SourceDriverNameFilesystem, dir)
		require.NoError(t, err)

		fsSrc, ok := src.(*FilesystemSource)
		require.True(t, ok)
		assert.Equal(t, dir, fsSrc.Root)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenSource("nope", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgSourceDriverNotFound)

		driver, _ := ErrorMetadata(err, MetaKeyDriver)
		assert.Equal(t, "nope", driver)
	})
}

func TestRegisterSourceDriver_Panics(t *testing.T) {
	assert.Panics(t, func() {
		RegisterSourceDriver(SourceDriverNameMemory, &MemorySourceDriver{})
	})
	assert.Panics(t, func() {
		RegisterSourceDriver("nil-driver", nil)
	})
}

func TestFilesystemSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "partials"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partials", "head.txt"), []byte("HEAD"), 0o644))
	ctx := context.Background()

	t.Run("rooted load", func(t *testing.T) {
		src := NewFilesystemSource(dir)
		body, err := src.Load(ctx, "partials/head.txt")
		require.NoError(t, err)
		assert.Equal(t, "HEAD", body)
	})

	t.Run("unrooted uses location as given", func(t *testing.T) {
		src := &FilesystemSource{}
		body, err := src.Load(ctx, filepath.Join(dir, "partials", "head.txt"))
		require.NoError(t, err)
		assert.Equal(t, "HEAD", body)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFilesystemSource(dir).Load(ctx, "nope.txt")
		require.Error(t, err)
		assert.True(t, IsSourceNotFound(err))
	})

	t.Run("traversal rejected", func(t *testing.T) {
		src := NewFilesystemSource(dir)
		for _, loc := range []string{"../secret", "partials/../../x", "/etc/passwd"} {
			_, err := src.Load(ctx, loc)
			require.Error(t, err, loc)
			assert.Contains(t, err.Error(), ErrMsgSourceTraversal, loc)
		}
	})

	t.Run("empty location", func(t *testing.T) {
		_, err := NewFilesystemSource(dir).Load(ctx, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgSourceInvalidLoc)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewFilesystemSource(dir).Load(cancelled, "partials/head.txt")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFSSource(t *testing.T) {
	src := NewFSSource(fstest.MapFS{
		"tmpl/a.txt": &fstest.MapFile{Data: []byte("A {{x}}")},
	})
	ctx := context.Background()

	body, err := src.Load(ctx, "tmpl/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "A {{x}}", body)

	_, err = src.Load(ctx, "tmpl/b.txt")
	assert.True(t, IsSourceNotFound(err))

	_, err = src.Load(ctx, "../a.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSourceInvalidLoc)

	engine := MustNew(WithSource(src))
	tmpl, err := engine.FromSource(ctx, "tmpl/a.txt")
	require.NoError(t, err)
	out, err := tmpl.Render(ctx, map[string]any{"x": "B"})
	require.NoError(t, err)
	assert.Equal(t, "A B", out)
}

func TestMemorySource(t *testing.T) {
	seed := map[string]string{"a": "1"}
	src := NewMemorySource(seed)
	ctx := context.Background()

	seed["a"] = "changed"
	body, err := src.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", body)

	src.Set("b", "2")
	src.Set("a", "3")
	assert.Equal(t, []string{"a", "b"}, src.Locations())

	body, err = src.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "3", body)

	src.Delete("a")
	src.Delete("never")
	_, err = src.Load(ctx, "a")
	assert.True(t, IsSourceNotFound(err))
	assert.Equal(t, []string{"b"}, src.Locations())
}

package ignorefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetCachesByStartDir(t *testing.T) {
	top := t.TempDir()
	writeIgnoreFile(t, top, "target\n")

	nested := filepath.Join(top, "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	c, err := NewCache(16)
	require.NoError(t, err)

	first, ok := c.Get(nested)
	require.True(t, ok)
	assert.Equal(t, top, first.Root())

	second, ok := c.Get(nested)
	require.True(t, ok)
	assert.Same(t, first, second)
}

func TestCache_MissNotCached(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, repoMarkerName), 0o755))

	c, err := NewCache(16)
	require.NoError(t, err)

	_, ok := c.Get(dir)
	require.False(t, ok)

	// The file appearing later must be picked up, since misses are
	// not cached.
	writeIgnoreFile(t, dir, "target\n")

	rs, ok := c.Get(dir)
	require.True(t, ok)
	assert.True(t, rs.IsExcluded(filepath.Join(dir, "target")))
}

func TestCache_Invalidate(t *testing.T) {
	dir := t.TempDir()
	writeIgnoreFile(t, dir, "target\n")

	c, err := NewCache(16)
	require.NoError(t, err)

	first, ok := c.Get(dir)
	require.True(t, ok)

	writeIgnoreFile(t, dir, "target\nother\n")
	c.Invalidate()

	second, ok := c.Get(dir)
	require.True(t, ok)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, second.Len())
}

func TestCache_DefaultSize(t *testing.T) {
	c, err := NewCache(0)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestCache_Warm(t *testing.T) {
	top := t.TempDir()
	writeIgnoreFile(t, top, "target\n")

	var dirs []string
	for _, name := range []string{"a", "b", "c", "d"} {
		dir := filepath.Join(top, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		dirs = append(dirs, dir)
	}

	// A directory without a governing file is not an error.
	bare := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(bare, repoMarkerName), 0o755))
	dirs = append(dirs, bare)

	c, err := NewCache(16)
	require.NoError(t, err)
	require.NoError(t, c.Warm(context.Background(), dirs))

	warmed, ok := c.Get(dirs[0])
	require.True(t, ok)
	again, ok := c.Get(dirs[0])
	require.True(t, ok)
	assert.Same(t, warmed, again)
}

func TestCache_WarmCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := NewCache(16)
	require.NoError(t, err)

	err = c.Warm(ctx, []string{t.TempDir()})
	assert.ErrorIs(t, err, context.Canceled)
}

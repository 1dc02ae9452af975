package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "a.zip")
	require.NoError(t, WriteArchive(archive, []ArchiveEntry{
		{Name: "docs/"},
		{Name: "docs/readme.md", Data: []byte("# readme\n")},
		{Name: "a.txt", Data: []byte("lower")},
		{Name: "A.txt", Data: []byte("upper")},
		{Name: "__MACOSX/._a.txt", Data: []byte("junk")},
		{Name: "docs/.DS_Store", Data: []byte("junk")},
	}))

	c, err := BuildCatalog(archive)
	require.NoError(t, err)

	assert.Equal(t, []string{"A.txt", "a.txt", "docs/", "docs/readme.md"}, c.Names())
	assert.Equal(t, 4, c.Len())
	_, ok := c.Get("__MACOSX/._a.txt")
	assert.False(t, ok)
	_, ok = c.Get("docs/.DS_Store")
	assert.False(t, ok)

	d, ok := c.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, digestOf([]byte("lower")), d)

	upper, ok := c.Get("A.txt")
	require.True(t, ok)
	assert.NotEqual(t, d, upper)

	dir, ok := c.Get("docs/")
	require.True(t, ok)
	assert.Equal(t, digestOf(nil), dir)
}

func TestBuildCatalog_Iterate(t *testing.T) {
	c := NewCatalog(map[string]Digest{"b": 2, "a": 1, "c": 3})

	var names []string
	var digests []Digest
	for name, d := range c.Iterate {
		names = append(names, name)
		digests = append(digests, d)
		if name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, []Digest{1, 2}, digests)
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	src := map[string]Digest{"a": 1}
	c := NewCatalog(src)
	src["b"] = 2
	_, ok := c.Get("b")
	assert.False(t, ok)

	names := c.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a"}, c.Names())
}

func TestBuildCatalog_Errors(t *testing.T) {
	dir := t.TempDir()

	bogus := filepath.Join(dir, "bogus.zip")
	require.NoError(t, os.WriteFile(bogus, []byte("this is not a zip archive"), 0o644))

	corrupt := filepath.Join(dir, "corrupt.zip")
	writeStoredArchive(t, corrupt, []ArchiveEntry{
		{Name: "ok.txt", Data: []byte("fine")},
		{Name: "bad.txt", Data: []byte("hello world")},
	})
	corruptEntry(t, corrupt, []byte("hello world"))

	t.Run("missing file", func(t *testing.T) {
		_, err := BuildCatalog(filepath.Join(dir, "missing.zip"))
		var openErr *OpenError
		require.ErrorAs(t, err, &openErr)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not an archive", func(t *testing.T) {
		_, err := BuildCatalog(bogus)
		var openErr *OpenError
		require.ErrorAs(t, err, &openErr)
		assert.Equal(t, bogus, openErr.Path)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		_, err := BuildCatalog(corrupt)
		var readErr *CatalogReadError
		require.ErrorAs(t, err, &readErr)
		assert.Equal(t, "bad.txt", readErr.Entry)
		assert.ErrorIs(t, err, zip.ErrChecksum)
	})
}

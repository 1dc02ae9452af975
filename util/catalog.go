package util

import (
	"slices"

	"github.com/klauspost/compress/zip"
)

// Catalog maps every non-junk entry name of one archive to the digest of its
// decompressed content. A Catalog is not modified after BuildCatalog returns.
type Catalog struct {
	digests map[string]Digest
	names   []string
}

// NewCatalog builds a Catalog from an existing name to digest mapping.
func NewCatalog(digests map[string]Digest) Catalog {
	c := Catalog{digests: make(map[string]Digest, len(digests))}
	for name, d := range digests {
		c.digests[name] = d
	}
	c.names = sortedKeys(c.digests)
	return c
}

func sortedKeys(m map[string]Digest) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// BuildCatalog opens the archive at path and hashes every entry that is not
// junk. Entry names are taken verbatim; a name repeated within the archive
// keeps the digest of its last occurrence.
func BuildCatalog(path string) (Catalog, error) {
	zrc, err := openArchive(path)
	if err != nil {
		return Catalog{}, err
	}
	defer zrc.Close()

	digests := make(map[string]Digest, len(zrc.File))
	for _, f := range zrc.File {
		if IsJunkEntry(f.Name) {
			continue
		}
		d, err := hashEntry(f)
		if err != nil {
			return Catalog{}, &CatalogReadError{Path: path, Entry: f.Name, Err: err}
		}
		digests[f.Name] = d
	}
	return Catalog{digests: digests, names: sortedKeys(digests)}, nil
}

func hashEntry(f *zip.File) (Digest, error) {
	rc, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return GetHash(rc)
}

func (c Catalog) Len() int {
	return len(c.names)
}

// Get returns the digest recorded for name.
func (c Catalog) Get(name string) (Digest, bool) {
	d, ok := c.digests[name]
	return d, ok
}

// Names returns the entry names in sorted order. The caller may modify the
// returned slice.
func (c Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Iterate yields every entry in name order.
func (c Catalog) Iterate(yield func(string, Digest) bool) {
	for _, name := range c.names {
		if !yield(name, c.digests[name]) {
			return
		}
	}
}

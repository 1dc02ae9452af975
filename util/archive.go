package util

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Entries macOS adds to archives it creates.
const (
	macOSMetadataPrefix = "__MACOSX/"
	macOSFinderSuffix   = ".DS_Store"
)

// ArchiveEntry is one named entry to be written by WriteArchive.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// IsJunkEntry reports whether an entry name is OS metadata that never takes
// part in a comparison.
func IsJunkEntry(name string) bool {
	return strings.HasPrefix(name, macOSMetadataPrefix) || strings.HasSuffix(name, macOSFinderSuffix)
}

func openArchive(path string) (*zip.ReadCloser, error) {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return zrc, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var buf bytes.Buffer
	buf.Grow(int(min(f.UncompressedSize64, 1<<26)))
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExtractEntry returns the decompressed content of the first entry in the
// archive at path whose name equals name exactly.
// Every call opens its own handle on the archive.
func ExtractEntry(path, name string) ([]byte, error) {
	zrc, err := openArchive(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Entry: name, Err: err}
	}
	defer zrc.Close()

	for _, f := range zrc.File {
		if f.Name != name {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			return nil, &ExtractionError{Path: path, Entry: name, Err: err}
		}
		return data, nil
	}
	return nil, &ExtractionError{Path: path, Entry: name, Err: ErrEntryNotFound}
}

// CountEntries returns the number of entries in the archive at path.
// Junk entries are only counted when includeJunk is set.
func CountEntries(path string, includeJunk bool) (int, error) {
	zrc, err := openArchive(path)
	if err != nil {
		return 0, err
	}
	defer zrc.Close()
	if includeJunk {
		return len(zrc.File), nil
	}
	count := 0
	for _, f := range zrc.File {
		if !IsJunkEntry(f.Name) {
			count++
		}
	}
	return count, nil
}

// WriteArchive writes entries, in order, to a new ZIP archive at dest.
// Names ending in "/" are written as directory entries.
func WriteArchive(dest string, entries []ArchiveEntry) (err error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	w := zip.NewWriter(file)
	for _, e := range entries {
		writer, createErr := w.Create(e.Name)
		if createErr != nil {
			return fmt.Errorf("failed to add %s: %w", e.Name, createErr)
		}
		if strings.HasSuffix(e.Name, "/") {
			continue
		}
		if _, writeErr := writer.Write(e.Data); writeErr != nil {
			return fmt.Errorf("failed to write %s: %w", e.Name, writeErr)
		}
	}
	return w.Close()
}

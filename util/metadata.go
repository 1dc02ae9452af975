package util

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/Srijan619/ziffy/version"
)

type Metadata struct {
	CompressedSize   uint64    `json:"compressed_size"`
	ContainerDigest  string    `json:"container_digest"`
	DigestAlgorithm  string    `json:"digest_algorithm"`
	DirectoryCount   int       `json:"directory_count"`
	EntryCount       int       `json:"entry_count"`
	JunkCount        int       `json:"junk_count"`
	NewestEntryTS    time.Time `json:"newest_entry_ts"`
	OldestEntryTS    time.Time `json:"oldest_entry_ts"`
	UncompressedSize uint64    `json:"uncompressed_size"`
	ZiffyVersion     string    `json:"ziffy_version"`
}

// GetVersion returns the current ziffy version string.
// It delegates to the version package to get the version information.
func GetVersion() string {
	return version.GetVersion()
}

// GenerateMetadata summarises the archive at path from its central directory.
// Junk entries are counted in JunkCount and excluded from everything else.
// Entry content is never decompressed.
func GenerateMetadata(path string) (Metadata, error) {
	var m Metadata
	d, err := GetFileHash(path)
	if err != nil {
		return m, err
	}
	zrc, err := openArchive(path)
	if err != nil {
		return m, err
	}
	defer zrc.Close()

	m.ContainerDigest = d.String()
	m.DigestAlgorithm = version.DigestAlgorithm()
	m.ZiffyVersion = GetVersion()
	for _, f := range zrc.File {
		if IsJunkEntry(f.Name) {
			m.JunkCount++
			continue
		}
		m.EntryCount++
		if f.FileInfo().IsDir() {
			m.DirectoryCount++
		}
		m.CompressedSize += f.CompressedSize64
		m.UncompressedSize += f.UncompressedSize64
		if f.Modified.IsZero() {
			continue
		}
		if m.OldestEntryTS.IsZero() || f.Modified.Before(m.OldestEntryTS) {
			m.OldestEntryTS = f.Modified
		}
		if f.Modified.After(m.NewestEntryTS) {
			m.NewestEntryTS = f.Modified
		}
	}
	return m, nil
}

// Save writes the metadata as JSON. A path without a .json suffix is treated
// as a file name prefix.
func (m Metadata) Save(path string) error {
	if !strings.HasSuffix(path, ".json") {
		path += ".metadata.json"
	}
	return WriteJSONFile(path, m)
}

// WriteJSONFile writes any value as JSON to the specified file path.
// It creates the file and encodes the value using the standard JSON encoder.
func WriteJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package util

import (
	"fmt"
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

// HashChunkSize is the buffer size used when streaming a container through
// the hasher.
const HashChunkSize = 8 << 10

// Digest is a fast, non-cryptographic content fingerprint. It is only ever
// used for equality tests.
type Digest uint64

// String renders the digest as 16 lowercase hex digits.
func (d Digest) String() string {
	return fmt.Sprintf("%016x", uint64(d))
}

// GetHash calculates the digest of everything readable from r,
// feeding the hasher in HashChunkSize chunks.
func GetHash(r io.Reader) (Digest, error) {
	h := xxh3.New()
	buf := make([]byte, HashChunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return 0, err
	}
	return Digest(h.Sum64()), nil
}

// GetFileHash hashes the raw bytes of the file at path.
// Open failures are reported as *OpenError; read failures are wrapped.
func GetFileHash(path string) (Digest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, &OpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		return 0, &OpenError{Path: path, Err: ErrExpectedFile}
	}
	file, err := os.Open(path)
	if err != nil {
		return 0, &OpenError{Path: path, Err: err}
	}
	defer file.Close()

	d, err := GetHash(file)
	if err != nil {
		return 0, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return d, nil
}

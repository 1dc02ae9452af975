// Package util provides utility functions for the ziffy archive comparison engine.
package util

import (
	"errors"
	"fmt"
)

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedFile = errors.New("expected file, got directory")

	// Archive entry errors
	ErrEntryNotFound = errors.New("entry not found in archive")
	ErrInvalidUTF8   = errors.New("failed to convert to UTF-8")
)

// OpenError reports a container that could not be opened or is not a valid
// ZIP archive. It is fatal for a whole comparison.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// CatalogReadError reports an entry whose bytes could not be decompressed
// while building a catalog. It is fatal for a whole comparison.
type CatalogReadError struct {
	Path  string
	Entry string
	Err   error
}

func (e *CatalogReadError) Error() string {
	return fmt.Sprintf("failed to read %s from %s: %v", e.Entry, e.Path, e.Err)
}

func (e *CatalogReadError) Unwrap() error { return e.Err }

// ExtractionError reports a single entry that could not be extracted for
// diffing. It never aborts a comparison.
type ExtractionError struct {
	Path  string
	Entry string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s from %s: %v", e.Entry, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

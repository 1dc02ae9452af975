// Package util provides the archive-level building blocks for ziffy.
//
// This package contains everything that touches archive bytes directly: content
// hashing, ZIP entry enumeration and extraction, catalog construction, archive
// metadata and the error taxonomy shared with the comparison engine. It has no
// knowledge of how two archives are compared; see package zipdiff for that.
//
// Key Components:
//
// Content Hashing:
//   - xxh3 64-bit digests, fast and non-cryptographic, used only for equality
//   - Streaming hashing of whole containers in 8 KiB chunks
//   - Per-entry hashing of decompressed content
//
// Archive Reading:
//   - Catalogs mapping entry names to content digests (BuildCatalog)
//   - Single-entry extraction that reopens the archive on every call (ExtractEntry)
//   - Filtering of macOS junk entries (__MACOSX/ and .DS_Store)
//
// Archive Writing:
//   - WriteArchive for demo data and test fixtures
//
// Metadata:
//   - Central-directory summaries (entry counts, sizes, timestamps, digest)
//
// Errors:
//   - OpenError and CatalogReadError are fatal for a comparison
//   - ExtractionError is scoped to a single entry
//
// Every function opens its own archive handle, so all of them are safe to call
// from concurrent goroutines.
package util

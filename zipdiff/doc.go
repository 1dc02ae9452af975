// Package zipdiff compares two ZIP archives entry by entry.
//
// A comparison first hashes both containers; byte-identical archives are
// reported as having no differences without reading any entry. Otherwise both
// archives are catalogued (entry name to content digest), and every name in the
// union of the catalogs is classified concurrently:
//   - present only in the first archive: Removed
//   - present only in the second archive: Added
//   - present in both with equal digests: omitted from the result
//   - present in both with differing digests: Modified (Image) for image names,
//     Modified (Binary) when either side contains a NUL byte, otherwise
//     Modified with a line diff of the two texts
//
// Failing to open or catalogue either archive aborts the comparison. Failing
// to extract a single entry for diffing only drops that entry from the result;
// such failures are logged and returned in [Report.Errors].
package zipdiff

// Package main provides the ziffy command-line interface.
//
// ziffy compares two ZIP archives entry by entry and reports which entries
// were added, removed or modified. Entries are matched by name and compared
// by a digest of their decompressed content, so two archives built with
// different compression settings still compare equal. Modified text entries
// carry a line diff; images and binary entries are only flagged.
//
// The main binary supports multiple subcommands:
//   - compare: Compare two archives
//   - catalog: List the entries of an archive with their content digests
//   - inspect: Summarise an archive's central directory
//   - validate: Check that archives can be fully read
//   - count: Count entries in archives
//   - seed: Generate a pair of demo archives
//   - version: Print version and build information
package main

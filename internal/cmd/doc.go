// Package cmd provides the command-line interface implementation for ziffy.
//
// This package contains all the subcommand implementations for the ziffy CLI tool.
// It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, log level handling and command groups
//   - compare: Archive comparison with text or JSON output
//   - catalog: Per-entry content digests of one archive
//   - inspect: Central directory summary of one archive
//   - validate: Archive corruption checking
//   - count: Entry counting
//   - seed: Demo archive generation
//   - version: Build information
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command, and a run function taking explicit writers so
// that it can be tested without a terminal.
//
// The package leverages the zipdiff package for comparisons and the util package
// for archive access.
package cmd

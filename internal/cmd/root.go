package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Srijan619/ziffy/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the ziffy CLI.
// It sets up all subcommands, command groups, and logging configuration.
func NewRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "ziffy",
		Short: "ziffy - compare the contents of two ZIP archives",
		Long: `ziffy compares two ZIP archives entry by entry.

Every entry is reported as added, removed or modified; unchanged entries are
left out. Modified text entries come with a line diff, while images and binary
entries are only flagged. macOS metadata (__MACOSX/, .DS_Store) is ignored.

Use subcommands to perform different operations:
  - compare: Compare two archives
  - catalog: List the entries of an archive with their content digests
  - inspect: Summarise an archive's central directory
  - validate: Check that archives can be fully read
  - count: Count entries in archives
  - seed: Generate a pair of demo archives
  - version: Print version and build information`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd, logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	groupArchives := "archives"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupArchives,
		Title: "Archive Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	compareCmd := NewCompareCmd()
	catalogCmd := NewCatalogCmd()
	inspectCmd := NewInspectCmd()
	validateCmd := NewValidateCmd()
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd()

	compareCmd.GroupID = groupArchives
	catalogCmd.GroupID = groupArchives
	inspectCmd.GroupID = groupArchives
	validateCmd.GroupID = groupUtilities
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// setupLogging installs a text slog handler on stderr as the default logger.
func setupLogging(cmd *cobra.Command, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	return nil
}

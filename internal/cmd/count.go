package cmd

import (
	"fmt"
	"io"

	"github.com/Srijan619/ziffy/util"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the ziffy CLI.
func NewCountCmd() *cobra.Command {
	var includeJunk bool

	cmd := &cobra.Command{
		Use:   "count ARCHIVE...",
		Short: "Count entries in archives",
		Long: `Count the entries of one or more ZIP archives.

By default macOS metadata entries (__MACOSX/, .DS_Store) are not counted,
matching what compare sees. Use --all to count every entry.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd.OutOrStdout(), args, includeJunk)
		},
	}

	cmd.Flags().BoolVarP(&includeJunk, "all", "a", false, "Include macOS metadata entries")

	return cmd
}

func runCount(w io.Writer, archives []string, includeJunk bool) error {
	total := 0
	for _, path := range archives {
		n, err := util.CountEntries(path, includeJunk)
		if err != nil {
			return err
		}
		total += n
		fmt.Fprintf(w, "%s: %d entries\n", path, n)
	}
	if len(archives) > 1 {
		fmt.Fprintf(w, "Total entries: %d\n", total)
	}
	return nil
}

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/Srijan619/ziffy/zipdiff"
	"github.com/spf13/cobra"
)

// ErrArchivesDiffer is returned by compare --fail-on-diff when differences exist.
var ErrArchivesDiffer = errors.New("archives differ")

type compareOptions struct {
	format     string
	workers    int
	timeout    time.Duration
	failOnDiff bool
}

// NewCompareCmd creates and returns the compare subcommand for the ziffy CLI.
// It compares two archives and prints every entry that differs.
func NewCompareCmd() *cobra.Command {
	var opts compareOptions

	cmd := &cobra.Command{
		Use:   "compare OLD.zip NEW.zip",
		Short: "Compare two ZIP archives",
		Long: `Compare two ZIP archives entry by entry.

Entries only in OLD.zip are reported as Removed, entries only in NEW.zip as
Added. Entries whose content differs are reported as Modified with a line
diff, or as Modified (Image) / Modified (Binary) without one. Entries that
could not be extracted for diffing are reported as warnings on stderr and
left out of the result.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format (text, json)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", runtime.NumCPU(), "Number of parallel workers")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Abort the comparison after this long (0 disables)")
	cmd.Flags().BoolVar(&opts.failOnDiff, "fail-on-diff", false, "Exit with an error when the archives differ")

	return cmd
}

func runCompare(ctx context.Context, stdout, stderr io.Writer, path1, path2 string, opts compareOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	comparer := zipdiff.New(
		zipdiff.WithWorkers(opts.workers),
		zipdiff.WithLogger(slog.Default()),
	)
	report, err := comparer.CompareReport(ctx, path1, path2)
	if err != nil {
		return fmt.Errorf("failed to compare %s and %s: %w", path1, path2, err)
	}

	diffs := slices.Clone(report.Differences)
	slices.SortFunc(diffs, func(a, b zipdiff.FileDifference) int {
		return strings.Compare(a.Filename, b.Filename)
	})

	for _, e := range report.Errors {
		fmt.Fprintf(stderr, "warning: %v\n", e)
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(diffs); err != nil {
			return err
		}
	default:
		printDifferences(stdout, diffs)
		if report.Identical {
			fmt.Fprintln(stdout, "Archives are identical")
		} else {
			fmt.Fprintf(stdout, "\n%d differences", len(diffs))
			if len(report.Errors) > 0 {
				fmt.Fprintf(stdout, " (%d entries could not be compared)", len(report.Errors))
			}
			fmt.Fprintln(stdout)
		}
	}

	if opts.failOnDiff && len(diffs) > 0 {
		return ErrArchivesDiffer
	}
	return nil
}

func printDifferences(w io.Writer, diffs []zipdiff.FileDifference) {
	for _, d := range diffs {
		fmt.Fprintf(w, "%-18s %s\n", d.Status, d.Filename)
		for _, line := range d.ContentDiff {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

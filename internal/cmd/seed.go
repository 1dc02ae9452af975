package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Srijan619/ziffy/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the ziffy CLI.
// It generates a pair of archives that exercise every comparison outcome.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a pair of demo archives",
		Long: `Generate two archives, a.zip and b.zip, for trying out compare.

Both archives hold the requested number of text entries made of UUID lines.
One in ten entries exists only in a.zip, one in ten only in b.zip and one in
ten has an extra line in b.zip. An image and a binary entry differ between the
two archives, and both archives carry macOS metadata entries that compare
ignores.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runSeed(cmd.OutOrStdout(), outputPath, fileCount, verbose)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 100, "Number of text entries to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// seedStats records how many entries of each kind runSeed generated.
type seedStats struct {
	Removed  int
	Added    int
	Modified int
	Binary   int
	Image    int
}

func runSeed(w io.Writer, outputPath string, fileCount int, verbose bool) (seedStats, error) {
	var stats seedStats
	if fileCount < 0 {
		return stats, fmt.Errorf("invalid count %d", fileCount)
	}
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Generate pool of 50 UUIDs
	uuidPool := make([]string, 50)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	var entriesA, entriesB []util.ArchiveEntry
	for i := range fileCount {
		name := fmt.Sprintf("notes/%04d/%s.txt", i/100, uuid.New().String()[:8])
		lines := []string{uuidPool[i%50], uuidPool[(i*7)%50], uuidPool[(i*13)%50]}
		content := []byte(strings.Join(lines, "\n") + "\n")

		switch i % 10 {
		case 0:
			entriesA = append(entriesA, util.ArchiveEntry{Name: name, Data: content})
			stats.Removed++
		case 1:
			entriesB = append(entriesB, util.ArchiveEntry{Name: name, Data: content})
			stats.Added++
		case 2:
			changed := append([]byte(uuid.New().String()+"\n"), content...)
			entriesA = append(entriesA, util.ArchiveEntry{Name: name, Data: content})
			entriesB = append(entriesB, util.ArchiveEntry{Name: name, Data: changed})
			stats.Modified++
		default:
			entriesA = append(entriesA, util.ArchiveEntry{Name: name, Data: content})
			entriesB = append(entriesB, util.ArchiveEntry{Name: name, Data: content})
		}

		if verbose && (i+1)%1000 == 0 {
			fmt.Fprintf(w, "Created %d/%d entries...\n", i+1, fileCount)
		}
	}

	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	entriesA = append(entriesA,
		util.ArchiveEntry{Name: "assets/logo.png", Data: append(pngHeader, uuid.New().String()...)},
		util.ArchiveEntry{Name: "data/blob.bin", Data: append([]byte{0, 1, 2}, uuid.New().String()...)},
		util.ArchiveEntry{Name: "__MACOSX/._notes", Data: []byte(uuid.New().String())},
		util.ArchiveEntry{Name: ".DS_Store", Data: []byte(uuid.New().String())},
	)
	entriesB = append(entriesB,
		util.ArchiveEntry{Name: "assets/logo.png", Data: append(pngHeader, uuid.New().String()...)},
		util.ArchiveEntry{Name: "data/blob.bin", Data: append([]byte{0, 1, 2}, uuid.New().String()...)},
		util.ArchiveEntry{Name: "__MACOSX/._notes", Data: []byte(uuid.New().String())},
		util.ArchiveEntry{Name: "notes/.DS_Store", Data: []byte(uuid.New().String())},
	)
	stats.Image++
	stats.Binary++

	pathA := filepath.Join(outputPath, "a.zip")
	pathB := filepath.Join(outputPath, "b.zip")
	if err := util.WriteArchive(pathA, entriesA); err != nil {
		return stats, fmt.Errorf("failed to write %s: %w", pathA, err)
	}
	if err := util.WriteArchive(pathB, entriesB); err != nil {
		return stats, fmt.Errorf("failed to write %s: %w", pathB, err)
	}

	fmt.Fprintf(w, "Wrote %s (%d entries) and %s (%d entries)\n", pathA, len(entriesA), pathB, len(entriesB))
	if verbose {
		fmt.Fprintf(w, "Expected differences: %d removed, %d added, %d modified, %d image, %d binary\n",
			stats.Removed, stats.Added, stats.Modified, stats.Image, stats.Binary)
	}
	return stats, nil
}

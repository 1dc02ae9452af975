package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Srijan619/ziffy/util"
	"github.com/spf13/cobra"
)

// ErrValidationFailed is returned by validate when any archive fails to read.
var ErrValidationFailed = errors.New("validation failed")

// NewValidateCmd creates and returns the validate subcommand for the ziffy CLI.
// It checks that archives can be opened and every entry decompressed.
func NewValidateCmd() *cobra.Command {
	var (
		storagePath string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "validate [ARCHIVE...]",
		Short: "Check that archives can be fully read",
		Long: `Validate ZIP archives for corruption.

Every archive given as an argument, and every .zip file found below --path,
is opened and each entry is decompressed and checksummed, exactly as compare
does when it catalogues an archive. An archive that passes validation can
always be compared.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if storagePath == "" && len(args) == 0 {
				return errors.New("no archives given: pass ARCHIVE arguments or --path")
			}
			return runValidate(cmd.OutOrStdout(), storagePath, args, verbose)
		},
	}

	cmd.Flags().StringVarP(&storagePath, "path", "p", "", "Directory to search for .zip archives")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runValidate(w io.Writer, storagePath string, archives []string, verbose bool) error {
	if storagePath != "" {
		if _, err := os.Stat(storagePath); err != nil {
			return fmt.Errorf("storage directory does not exist: %s", storagePath)
		}
		if verbose {
			fmt.Fprintf(w, "Validating archives under %s\n", storagePath)
		}

		err := filepath.WalkDir(storagePath, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".zip") {
				return nil
			}
			archives = append(archives, path)
			return nil
		})
		if err != nil {
			return fmt.Errorf("error walking storage directory: %w", err)
		}
	}

	var totalErrors int
	for _, path := range archives {
		if verbose {
			fmt.Fprintf(w, "Validating archive: %s\n", path)
		}
		if err := validateArchive(path); err != nil {
			fmt.Fprintf(w, "Archive %s is invalid:\n  - %v\n", path, err)
			totalErrors++
		} else if verbose {
			fmt.Fprintf(w, "Archive %s is valid\n", path)
		}
	}

	fmt.Fprintf(w, "\nValidation complete:\n")
	fmt.Fprintf(w, "  Archives checked: %d\n", len(archives))
	fmt.Fprintf(w, "  Invalid archives: %d\n", totalErrors)

	if totalErrors > 0 {
		return fmt.Errorf("%w: %d of %d archives", ErrValidationFailed, totalErrors, len(archives))
	}
	return nil
}

func validateArchive(path string) error {
	_, err := util.BuildCatalog(path)
	return err
}

package cmd

import (
	"encoding/json"
	"io"

	"github.com/Srijan619/ziffy/util"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates and returns the inspect subcommand for the ziffy CLI.
// It prints a metadata summary of one archive.
func NewInspectCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "inspect ARCHIVE",
		Short: "Summarise an archive",
		Long: `Print a JSON summary of a ZIP archive read from its central directory:
entry, directory and junk counts, compressed and uncompressed sizes, entry
timestamps, the digest of the archive file itself and the version of the
hasher that produced it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0], outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also write the summary to this file")

	return cmd
}

func runInspect(w io.Writer, path, outputPath string) error {
	m, err := util.GenerateMetadata(path)
	if err != nil {
		return err
	}
	if outputPath != "" {
		if err := m.Save(outputPath); err != nil {
			return err
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

package cmd

import (
	"fmt"
	"io"

	"github.com/Srijan619/ziffy/util"
	"github.com/spf13/cobra"
)

// NewCatalogCmd creates and returns the catalog subcommand for the ziffy CLI.
func NewCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog ARCHIVE",
		Short: "List archive entries with their content digests",
		Long: `List every entry of a ZIP archive together with the digest of its
decompressed content, sorted by name. These are the digests compare uses to
decide whether an entry changed. macOS metadata entries are not listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd.OutOrStdout(), args[0])
		},
	}
}

func runCatalog(w io.Writer, path string) error {
	c, err := util.BuildCatalog(path)
	if err != nil {
		return err
	}
	for name, d := range c.Iterate {
		fmt.Fprintf(w, "%s  %s\n", d, name)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog pages and their selection labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.checkFormat(); err != nil {
				return err
			}
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(w, cat.Pages())
			}
			for _, p := range cat.Pages() {
				fmt.Fprintf(w, "%s (%s)\n", p.Key, p.Title)
				for _, o := range p.Options {
					fmt.Fprintf(w, "  %s\n", o)
				}
			}
			return nil
		},
	}
}

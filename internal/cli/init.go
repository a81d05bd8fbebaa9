package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

type initResult struct {
	Root    string   `json:"root"`
	Created []string `json:"created"`
	Existed []string `json:"existed"`
}

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data root with one directory per report category",
		Long:  "Create the data root and every category directory the catalog resolves to, so an export can be dropped in place. Existing directories are left alone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.checkFormat(); err != nil {
				return err
			}
			r, err := opts.resolver()
			if err != nil {
				return err
			}
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			seen := map[string]bool{}
			var dirs []string
			for _, l := range cat.Labels() {
				d := r.Resolve(l).Dir
				if !seen[d] {
					seen[d] = true
					dirs = append(dirs, d)
				}
			}
			sort.Strings(dirs)

			res := initResult{Root: r.Root(), Created: []string{}, Existed: []string{}}
			for _, d := range dirs {
				path := filepath.Join(r.Root(), d)
				if fi, err := os.Stat(path); err == nil && fi.IsDir() {
					res.Existed = append(res.Existed, d)
					continue
				}
				if err := os.MkdirAll(path, 0o755); err != nil {
					return fmt.Errorf("create %s: %w", path, err)
				}
				res.Created = append(res.Created, d)
			}

			w := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(w, res)
			}
			for _, d := range res.Created {
				fmt.Fprintf(w, "created %s\n", filepath.Join(r.Root(), d))
			}
			fmt.Fprintf(w, "%d directories created, %d already present under %s\n", len(res.Created), len(res.Existed), r.Root())
			return nil
		},
	}
}

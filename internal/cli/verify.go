package cli

import (
	"errors"
	"fmt"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"github.com/spf13/cobra"
)

// ErrMissingAssets is returned by verify when the audit finds gaps.
var ErrMissingAssets = errors.New("report assets missing")

type verifyResult struct {
	Root    string           `json:"root"`
	Checked int              `json:"checked"`
	Missing []assets.Missing `json:"missing"`
}

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every catalog selection has its image and interpretation",
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

			rep := assets.Audit(r, cat.Labels())
			w := cmd.OutOrStdout()
			if opts.format == "json" {
				missing := rep.Missing
				if missing == nil {
					missing = []assets.Missing{}
				}
				if err := writeJSON(w, verifyResult{Root: r.Root(), Checked: rep.Checked, Missing: missing}); err != nil {
					return err
				}
			} else {
				for _, m := range rep.Missing {
					fmt.Fprintf(w, "missing %s for %q: %s\n", m.Kind, m.Label, m.Path)
				}
				fmt.Fprintf(w, "%d selections checked under %s, %d files missing\n", rep.Checked, r.Root(), len(rep.Missing))
			}

			if !rep.OK() {
				return fmt.Errorf("%w: %d", ErrMissingAssets, len(rep.Missing))
			}
			return nil
		},
	}
}

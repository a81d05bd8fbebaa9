package cli

import (
	"fmt"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"github.com/spf13/cobra"
)

type resolved struct {
	Selection string `json:"selection"`
	Slug      string `json:"slug"`
	Image     string `json:"image"`
	Text      string `json:"text"`
	Verbatim  bool   `json:"verbatim"`
	ImageOK   bool   `json:"image_exists"`
	TextOK    bool   `json:"text_exists"`
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <label>...",
		Short: "Print the image and text paths a selection label resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.checkFormat(); err != nil {
				return err
			}
			r, err := opts.resolver()
			if err != nil {
				return err
			}

			out := make([]resolved, 0, len(args))
			for _, a := range args {
				res := r.Resolve(assets.Selection(a))
				out = append(out, resolved{
					Selection: a,
					Slug:      res.Slug,
					Image:     res.ImagePath,
					Text:      res.TextPath,
					Verbatim:  res.Verbatim,
					ImageOK:   assets.ImageExists(res.ImagePath),
					TextOK:    assets.TextExists(res.TextPath),
				})
			}

			w := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(w, out)
			}
			for _, o := range out {
				fmt.Fprintf(w, "%s\n  image: %s%s\n  text:  %s%s\n", o.Selection, o.Image, flag(o.ImageOK), o.Text, flag(o.TextOK))
				if o.Verbatim {
					fmt.Fprintln(w, "  verbatim")
				}
			}
			return nil
		},
	}
}

func flag(ok bool) string {
	if ok {
		return ""
	}
	return " (missing)"
}

// Package cli implements the gradcheck commands for inspecting an exported
// report without starting the server.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dalemusser/gradstats/internal/app/assets"
	"github.com/dalemusser/gradstats/internal/app/catalog"
	"github.com/spf13/cobra"
)

// DefaultRoot matches the server's data_root default.
const DefaultRoot = "data_analysis"

type options struct {
	root       string
	exceptions string
	catalog    string
	format     string
}

// NewRootCmd builds the gradcheck command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "gradcheck",
		Short:         "Inspect the exported graduate employment report",
		Long:          "Scaffold the data root, resolve selection labels to report files, verify that catalog assets exist and list the page catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.root, "root", "r", "", "Data root (default: $GRADSTATS_DATA_ROOT or data_analysis)")
	root.PersistentFlags().StringVar(&opts.exceptions, "exceptions", "", "Exception table YAML (default: built-in)")
	root.PersistentFlags().StringVar(&opts.catalog, "catalog", "", "Page catalog YAML (default: built-in)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "json", "Output format: json or text")

	root.AddCommand(newInitCmd(opts), newResolveCmd(opts), newVerifyCmd(opts), newListCmd(opts))
	return root
}

// Execute runs gradcheck with os.Args.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	}
	return err
}

func (o *options) dataRoot() string {
	if o.root != "" {
		return o.root
	}
	if env := os.Getenv("GRADSTATS_DATA_ROOT"); env != "" {
		return env
	}
	return DefaultRoot
}

func (o *options) resolver() (*assets.Resolver, error) {
	var (
		table assets.Table
		err   error
	)
	if o.exceptions != "" {
		table, err = assets.LoadTable(o.exceptions)
	} else {
		table, err = assets.DefaultTable()
	}
	if err != nil {
		return nil, fmt.Errorf("exception table: %w", err)
	}
	return assets.NewResolver(o.dataRoot(), table), nil
}

func (o *options) loadCatalog() (*catalog.Catalog, error) {
	if o.catalog != "" {
		return catalog.LoadFile(o.catalog)
	}
	return catalog.Load()
}

func (o *options) checkFormat() error {
	switch o.format {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("unknown format %q (want json or text)", o.format)
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

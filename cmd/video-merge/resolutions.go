package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/video-merger/internal/model"
)

var resolutionsCmd = &cobra.Command{
	Use:   "resolutions",
	Short: "List the resolution presets accepted by --resolution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printResolutions(cmd.OutOrStdout(), model.DefaultCatalog())
	},
}

func init() {
	rootCmd.AddCommand(resolutionsCmd)
}

func printResolutions(out io.Writer, catalog model.Catalog) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRESOLUTION\tDEFAULT")
	for _, opt := range catalog.Options() {
		def := ""
		if opt.Resolution == catalog.Default() {
			def = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", opt.Name, opt.Resolution, def)
	}
	return w.Flush()
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bluechips/internal/page"
)

// render <in.html>: fill a saved page's output elements in place or into -o.
func renderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render <in.html>",
		Short: "Fill the -calc elements of a saved HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := page.Load(args[0])
			if err != nil {
				return err
			}
			res, err := appCtx.Split.Apply(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if output == "-" {
				return doc.Render(cmd.OutOrStdout())
			}
			dst := output
			if dst == "" {
				dst = args[0]
			}
			if err := doc.Save(dst, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "rendered %d shares into %s\n", len(res.Allocations), dst)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file ("-" for stdout, default overwrite input)`)
	return cmd
}

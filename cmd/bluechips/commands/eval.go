package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// eval <expression>: validate and evaluate one share expression.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a single share expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := appCtx.Split.Validate(args[0])
			if !sh.Valid() {
				return fmt.Errorf("invalid expression %q: %w", args[0], sh.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(sh.Value, 'g', -1, 64))
			return nil
		},
	}
}

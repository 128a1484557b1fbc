package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bluechips/internal/domain"
)

// even --amount A id...: equal split to the cent.
func evenCmd() *cobra.Command {
	var amount string
	cmd := &cobra.Command{
		Use:   "even <id>...",
		Short: "Split an amount evenly to the cent",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decimal.NewFromString(strings.TrimSpace(amount))
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			ids := make([]domain.ShareID, len(args))
			for i, a := range args {
				ids[i] = domain.ShareID(a)
			}
			portions, err := appCtx.Allocator.Even(d, ids)
			if err != nil {
				return err
			}
			printPortions(cmd, portions)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "amount to split")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

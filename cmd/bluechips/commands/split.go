package commands

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bluechips/internal/domain"
	"bluechips/internal/page"
	"bluechips/internal/services/allocate"
	"bluechips/internal/web"
)

// split --amount A --share id=expr ...: proportional split printed per output slot.
func splitCmd() *cobra.Command {
	var (
		amount string
		shares []string
		exact  bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split an amount across share expressions",
		Example: `  bluechips split --amount 100 --share alice=1 --share bob=1+1
  bluechips split --amount 99.99 --share a=1 --share b=2 --exact --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make([]domain.ShareEntry, 0, len(shares))
			for _, s := range shares {
				e, err := page.ParseEntry(s)
				if err != nil {
					return err
				}
				entries = append(entries, e)
			}

			p := page.NewStatic(amount, entries)
			res, err := appCtx.Split.Apply(cmd.Context(), p)
			if err != nil {
				return err
			}

			var portions []domain.Portion
			var portionsErr error
			if exact {
				portions, portionsErr = allocateResult(res)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				resp := web.NewSplitResponse(res)
				if exact {
					if portionsErr != nil {
						resp.PortionsError = portionsErr.Error()
					} else {
						resp.Portions = web.NewPortionResponses(portions)
					}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			for _, a := range res.Allocations {
				fmt.Fprintf(out, "%s\t%s\n", a.Entry.OutputID(), a.Display)
			}
			if exact {
				if portionsErr != nil {
					return fmt.Errorf("exact allocation: %w", portionsErr)
				}
				printPortions(cmd, portions)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "amount to split")
	cmd.Flags().StringArrayVar(&shares, "share", nil, "share as id=expression (repeatable, in order)")
	cmd.Flags().BoolVar(&exact, "exact", false, "also print cent-exact portions")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

// allocateResult turns a split into cent-exact portions weighted by the valid shares.
func allocateResult(res domain.Result) ([]domain.Portion, error) {
	if math.IsNaN(res.Amount) || math.IsInf(res.Amount, 0) {
		return nil, fmt.Errorf("amount is not a number")
	}
	return appCtx.Allocator.Allocate(decimal.NewFromFloat(res.Amount), allocate.WeightsFromResult(res))
}

func printPortions(cmd *cobra.Command, portions []domain.Portion) {
	out := cmd.OutOrStdout()
	for _, p := range portions {
		fmt.Fprintf(out, "%s\t%s\n", p.ID, allocate.FormatUSD(p.Amount))
	}
}

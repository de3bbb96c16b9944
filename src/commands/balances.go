package commands

import (
	"github.com/spf13/cobra"
)

// BalancesCmd prints the account's token balances once.
var BalancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "Show CW20 and gas token balances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), accountName, false)
		if err != nil {
			return err
		}
		owner := a.account.Address()
		tokens, err := a.tokens.FetchBalances(cmd.Context(), owner)
		if err != nil {
			return err
		}
		amount, denom, err := a.tokens.NativeBalance(cmd.Context(), owner)
		if err != nil {
			logg.Warnf("native balance: %v", err)
			denom = ""
		}
		a.render.Headline("Balances of %s", owner)
		a.render.Balances(tokens, amount, denom)
		return nil
	},
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/MMN3003/selene/src/order/delivery/cli"
)

var bookDepth uint32

// BookCmd prints the top of the market book.
var BookCmd = &cobra.Command{
	Use:   "book",
	Short: "Show the best bid and ask levels of the market",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), accountName, false)
		if err != nil {
			return err
		}
		depth := cfg.Market.BookDepth
		if cmd.Flags().Changed("depth") {
			depth = bookDepth
		}
		if err := cli.ShowBook(cmd.Context(), a.book, a.render, a.market.ID, depth); err != nil {
			return errorLine(err)
		}
		return nil
	},
}

func init() {
	BookCmd.Flags().Uint32Var(&bookDepth, "depth", 10, "Number of price levels per side")
}

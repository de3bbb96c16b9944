package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MMN3003/selene/src/order/delivery/cli"
	"github.com/MMN3003/selene/src/order/domain"
)

var ordersSide string

// OrdersCmd lists the account's resting orders.
var OrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show your resting orders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := userOrdersKind(ordersSide)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), accountName, false)
		if err != nil {
			return err
		}
		if err := cli.ShowUserOrders(cmd.Context(), a.book, a.render, kind, a.account.Address()); err != nil {
			return errorLine(err)
		}
		return nil
	},
}

func init() {
	OrdersCmd.Flags().StringVar(&ordersSide, "side", "all", "Which orders to show: bids, asks or all")
}

func userOrdersKind(side string) (domain.UserOrdersKind, error) {
	switch side {
	case "bids":
		return domain.UserBids, nil
	case "asks":
		return domain.UserAsks, nil
	case "all":
		return domain.UserOrders, nil
	default:
		return "", fmt.Errorf("--side must be bids, asks or all, got %q", side)
	}
}

// errorLine swaps err for the sentence the interactive session would show.
func errorLine(err error) error {
	return fmt.Errorf("%s", cli.Describe(err))
}

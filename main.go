package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MMN3003/selene/src/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := commands.RootCmd
	rootCmd.AddCommand(
		commands.BalancesCmd,
		commands.BookCmd,
		commands.OrdersCmd,
		commands.FaucetCmd,
		commands.VersionCmd,
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

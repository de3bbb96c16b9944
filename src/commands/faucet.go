package commands

import (
	"errors"

	"github.com/spf13/cobra"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
)

// FaucetCmd mints test tokens to the selected account.
var FaucetCmd = &cobra.Command{
	Use:   "faucet",
	Short: "Mint test tokens of both market tokens to your account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), accountName, false)
		if err != nil {
			return err
		}
		if a.faucet == nil {
			return errors.New("FAUCET_ACCOUNT is not configured")
		}
		var hash string
		err = a.render.Spin("Asking the faucet for tokens", func() error {
			res, err := a.faucet.Mint(cmd.Context(), a.account.Address())
			hash = res.Hash
			return err
		})
		if err != nil && (hash == "" || !errors.Is(err, chaindomain.ErrTxPending)) {
			return err
		}
		a.render.Tx(hash, a.dispatcher.ExplorerURL(hash))
		return err
	},
}

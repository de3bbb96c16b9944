package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MMN3003/selene/src/Infrastructure/cosmwasm"
	faucet "github.com/MMN3003/selene/src/faucet/usecase"
	"github.com/MMN3003/selene/src/order/delivery/cli"
	"github.com/MMN3003/selene/src/order/domain"
	order "github.com/MMN3003/selene/src/order/usecase"
	token "github.com/MMN3003/selene/src/token/usecase"
)

var errChainMismatch = errors.New("node serves a different chain")

// app is everything one command needs, wired for a single account.
type app struct {
	account    *cosmwasm.Account
	market     domain.Market
	tokens     *token.Service
	book       *order.BookService
	dispatcher *order.Dispatcher
	faucet     *faucet.Service
	prompt     cli.Prompter
	render     *cli.Renderer
}

// newApp connects to the node and resolves the trading account.
// Any failure here is a startup failure and ends the process.
func newApp(ctx context.Context, name string, interactive bool) (*app, error) {
	queries, err := cosmwasm.NewQueryClient(cfg.Chain.RPCURL,
		cosmwasm.WithQueryLogger(logg.Zerolog()),
		cosmwasm.WithTxTimeout(cfg.Chain.TxTimeout),
	)
	if err != nil {
		return nil, err
	}
	chainID, err := queries.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	if chainID != cfg.Chain.ChainID {
		return nil, fmt.Errorf("%w: %s expects %s, node is on %s", errChainMismatch, cfg.Chain.RPCURL, cfg.Chain.ChainID, chainID)
	}

	keys, err := cosmwasm.NewKeyring(cfg.Chain.Daemon, cfg.Chain.ChainID, cfg.Chain.RPCURL,
		cosmwasm.WithKeyringBackend(cfg.Chain.KeyringBackend),
		cosmwasm.WithKeyringHome(cfg.Chain.KeyringHome),
		cosmwasm.WithGas(cfg.Chain.GasPrices, cfg.Chain.GasAdjustment, cfg.Chain.GasLimit),
		cosmwasm.WithKeyringLogger(logg.Zerolog()),
	)
	if err != nil {
		return nil, err
	}

	a := &app{
		market: domain.Market{
			ID:         cfg.Market.MarketID,
			Contract:   cfg.Market.MarketplaceAddress,
			BaseToken:  cfg.Market.BaseTokenAddress,
			QuoteToken: cfg.Market.QuoteTokenAddress,
		},
		prompt: cli.NewTerminalPrompter(nil, nil),
		render: cli.NewRenderer(os.Stdout),
	}

	if name == "" {
		if !interactive {
			name = cfg.Accounts[0]
		} else if name, err = cli.SelectAccount(a.prompt, cfg.Accounts); err != nil {
			return nil, err
		}
	}
	a.account, err = cosmwasm.NewAccount(ctx, name, cfg.Mnemonic(name), keys, queries)
	if err != nil {
		return nil, err
	}
	logg.Infof("connected as %s (%s) on %s", a.account.Name(), a.account.Address(), chainID)

	tokenAddrs := []string{a.market.BaseToken, a.market.QuoteToken}
	a.tokens = token.NewService(a.account, tokenAddrs, cfg.Chain.NativeDenom, logg)
	a.book = order.NewBookService(a.account, a.market, logg)
	a.dispatcher = order.NewDispatcher(a.account, a.market, cfg.ExplorerTxURL, logg)

	if cfg.Faucet.Account != "" {
		minter, err := cosmwasm.NewAccount(ctx, cfg.Faucet.Account, cfg.Mnemonic(cfg.Faucet.Account), keys, queries)
		if err != nil {
			return nil, fmt.Errorf("faucet: %w", err)
		}
		a.faucet = faucet.NewService(minter, tokenAddrs, cfg.Faucet.Amount, logg)
	}
	return a, nil
}

func (a *app) session() *cli.Session {
	var minter cli.Minter
	if a.faucet != nil {
		minter = a.faucet
	}
	flow := cli.NewFlow(a.prompt, a.render, a.dispatcher, a.book, a.market, logg)
	return cli.NewSession(cli.SessionOptions{
		Address:  a.account.Address(),
		Balances: a.tokens,
		Book:     a.book,
		Faucet:   minter,
		Flow:     flow,
		Prompt:   a.prompt,
		Render:   a.render,
		Market:   a.market,
		Depth:    cfg.Market.BookDepth,
		Logger:   logg,
	})
}

package cli

import (
	"context"
	"errors"
	"fmt"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
	"github.com/MMN3003/selene/src/logger"
	"github.com/MMN3003/selene/src/order/domain"
	tokendomain "github.com/MMN3003/selene/src/token/domain"
)

// BalanceFetcher is satisfied by the token usecase.
type BalanceFetcher interface {
	FetchBalances(ctx context.Context, owner string) ([]tokendomain.Token, error)
	NativeBalance(ctx context.Context, owner string) (string, string, error)
}

// Minter is satisfied by the faucet usecase.
type Minter interface {
	Mint(ctx context.Context, recipient string) (chaindomain.TxResult, error)
}

type action int

const (
	actionSellLimit action = iota
	actionBuyLimit
	actionSellMarket
	actionBuyMarket
	actionCancel
	actionBook
	actionBids
	actionAsks
	actionFaucet
	actionExit
)

type menuItem struct {
	label  string
	action action
}

// Session is one connected account going around the action menu until Exit.
type Session struct {
	address  string
	balances BalanceFetcher
	book     domain.BookQuerier
	faucet   Minter
	flow     *Flow
	prompt   Prompter
	render   *Renderer
	market   domain.Market
	depth    uint32
	logger   *logger.Logger
}

type SessionOptions struct {
	Address  string
	Balances BalanceFetcher
	Book     domain.BookQuerier
	Faucet   Minter // optional
	Flow     *Flow
	Prompt   Prompter
	Render   *Renderer
	Market   domain.Market
	Depth    uint32
	Logger   *logger.Logger
}

func NewSession(o SessionOptions) *Session {
	return &Session{
		address:  o.Address,
		balances: o.Balances,
		book:     o.Book,
		faucet:   o.Faucet,
		flow:     o.Flow,
		prompt:   o.Prompt,
		render:   o.Render,
		market:   o.Market,
		depth:    o.Depth,
		logger:   o.Logger,
	}
}

// SelectAccount lets the user choose which keyring account to trade as.
func SelectAccount(p Prompter, accounts []string) (string, error) {
	if len(accounts) == 1 {
		return accounts[0], nil
	}
	i, err := p.Select("Select a user", accounts)
	if err != nil {
		return "", err
	}
	return accounts[i], nil
}

// Run shows fresh balances and the action menu until the user exits or aborts.
func (s *Session) Run(ctx context.Context) error {
	s.render.Headline("Connected as %s", s.address)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tokens := s.showBalances(ctx)

		items := s.menu(tokens)
		labels := make([]string, len(items))
		for i, it := range items {
			labels[i] = it.label
		}
		i, err := s.prompt.Select("What do you want to do?", labels)
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if items[i].action == actionExit {
			return nil
		}
		s.dispatch(ctx, items[i].action, tokens)
	}
}

func (s *Session) menu(tokens []tokendomain.Token) []menuItem {
	base, quote := s.symbols(tokens)
	items := []menuItem{
		{fmt.Sprintf("Place a sell order (Sell %s for %s)", base, quote), actionSellLimit},
		{fmt.Sprintf("Place a buy order (Buy %s with %s)", base, quote), actionBuyLimit},
		{fmt.Sprintf("Send a market sell order (Sell %s for %s)", base, quote), actionSellMarket},
		{fmt.Sprintf("Send a market buy order (Buy %s with %s)", base, quote), actionBuyMarket},
		{"Remove an order", actionCancel},
		{"Get topmost orders from the market", actionBook},
		{"Get my currently placed bid orders", actionBids},
		{"Get my currently placed ask orders", actionAsks},
	}
	if s.faucet != nil {
		items = append(items, menuItem{fmt.Sprintf("Ask faucet for %s & %s tokens", base, quote), actionFaucet})
	}
	return append(items, menuItem{"Exit", actionExit})
}

// dispatch runs one menu action. Failures are shown and the menu comes back.
func (s *Session) dispatch(ctx context.Context, a action, tokens []tokendomain.Token) {
	var err error
	switch a {
	case actionSellLimit:
		_, err = s.flow.PlaceOrder(ctx, domain.SideSell, true, s.address, tokens)
	case actionBuyLimit:
		_, err = s.flow.PlaceOrder(ctx, domain.SideBuy, true, s.address, tokens)
	case actionSellMarket:
		_, err = s.flow.PlaceOrder(ctx, domain.SideSell, false, s.address, tokens)
	case actionBuyMarket:
		_, err = s.flow.PlaceOrder(ctx, domain.SideBuy, false, s.address, tokens)
	case actionCancel:
		_, err = s.flow.CancelOrder(ctx, s.address)
	case actionBook:
		err = ShowBook(ctx, s.book, s.render, s.market.ID, s.depth)
	case actionBids:
		err = ShowUserOrders(ctx, s.book, s.render, domain.UserBids, s.address)
	case actionAsks:
		err = ShowUserOrders(ctx, s.book, s.render, domain.UserAsks, s.address)
	case actionFaucet:
		err = s.mint(ctx)
	}
	if err != nil {
		s.logger.Errorf("action %d: %v", a, err)
		s.render.Error("%s", Describe(err))
	}
}

func (s *Session) mint(ctx context.Context) error {
	var hash string
	err := s.render.Spin("Asking the faucet for tokens", func() error {
		res, err := s.faucet.Mint(ctx, s.address)
		hash = res.Hash
		return err
	})
	_, err = s.flow.sent(hash, err)
	return err
}

func (s *Session) showBalances(ctx context.Context) []tokendomain.Token {
	tokens, err := s.balances.FetchBalances(ctx, s.address)
	if err != nil {
		s.logger.Errorf("fetch balances: %v", err)
		s.render.Error("Could not fetch balances: %v", err)
		return nil
	}
	amount, denom, err := s.balances.NativeBalance(ctx, s.address)
	if err != nil {
		s.logger.Debugf("native balance: %v", err)
		denom = ""
	}
	s.render.Info("Your available tokens are:")
	s.render.Balances(tokens, amount, denom)
	return tokens
}

// symbols names the market's tokens for menu labels, falling back to addresses when balances failed.
func (s *Session) symbols(tokens []tokendomain.Token) (string, string) {
	base, quote := s.market.BaseToken, s.market.QuoteToken
	for _, t := range tokens {
		switch t.Address {
		case s.market.BaseToken:
			base = t.Symbol
		case s.market.QuoteToken:
			quote = t.Symbol
		}
	}
	return base, quote
}

// ShowBook prints the top depth levels of both sides.
func ShowBook(ctx context.Context, book domain.BookQuerier, r *Renderer, marketID uint64, depth uint32) error {
	b, err := book.GetMarketBook(ctx, marketID, depth)
	if errors.Is(err, domain.ErrNoOrdersFound) {
		r.Warn("No orders on this market")
		return nil
	}
	if err != nil {
		return err
	}
	r.Book(b)
	return nil
}

// ShowUserOrders prints the user's resting bids, asks or both.
func ShowUserOrders(ctx context.Context, book domain.BookQuerier, r *Renderer, kind domain.UserOrdersKind, user string) error {
	var (
		orders []domain.OrderRecord
		err    error
		title  string
	)
	switch kind {
	case domain.UserBids:
		orders, err = book.GetUserBids(ctx, user)
		title = "Current open bid orders"
	case domain.UserAsks:
		orders, err = book.GetUserAsks(ctx, user)
		title = "Current open sell orders"
	default:
		orders, err = book.GetUserOrders(ctx, user)
		title = "Current open orders"
	}
	if errors.Is(err, domain.ErrNoOrdersFound) {
		r.Warn("No orders found for %s", user)
		return nil
	}
	if err != nil {
		return err
	}
	r.Orders(title, orders)
	return nil
}

// Describe turns a pipeline error into the line shown to the user.
func Describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrTxPending):
		return fmt.Sprintf("Transaction broadcast but not confirmed yet, do not resend before checking it: %v", err)
	case errors.Is(err, domain.ErrSubmissionFailed):
		return fmt.Sprintf("Transaction failed, nothing was retried: %v", err)
	case errors.Is(err, domain.ErrQueryFailed):
		return fmt.Sprintf("Could not reach the marketplace: %v", err)
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidPrice):
		return fmt.Sprintf("Invalid input: %v", err)
	default:
		return err.Error()
	}
}

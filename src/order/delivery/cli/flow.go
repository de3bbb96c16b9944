package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MMN3003/selene/src/logger"
	"github.com/MMN3003/selene/src/order/domain"
	tokendomain "github.com/MMN3003/selene/src/token/domain"
)

type State int

const (
	StateSelectToken State = iota
	StateSelectAmount
	StateSelectPrice
	StateConfirm
	StateLoadOrders
	StateSelectOrder
	StateSubmit
	StateSubmitted
	StatePending
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSelectToken:
		return "select-token"
	case StateSelectAmount:
		return "select-amount"
	case StateSelectPrice:
		return "select-price"
	case StateConfirm:
		return "confirm"
	case StateLoadOrders:
		return "load-orders"
	case StateSelectOrder:
		return "select-order"
	case StateSubmit:
		return "submit"
	case StateSubmitted:
		return "submitted"
	case StatePending:
		return "pending"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome is where a flow stopped. TxHash is set for StateSubmitted and StatePending.
type Outcome struct {
	State  State
	TxHash string
}

const backItem = "Back"

// Flow collects one order intent at a time. Nothing reaches the dispatcher before the user confirms.
type Flow struct {
	prompt     Prompter
	render     *Renderer
	dispatcher domain.OrderDispatcher
	book       domain.BookQuerier
	market     domain.Market
	logger     *logger.Logger
}

func NewFlow(p Prompter, r *Renderer, d domain.OrderDispatcher, b domain.BookQuerier, m domain.Market, logg *logger.Logger) *Flow {
	return &Flow{prompt: p, render: r, dispatcher: d, book: b, market: m, logger: logg}
}

// PlaceOrder runs SelectToken, SelectAmount, SelectPrice (limit only) and Confirm, then submits.
// A market order is placed when limit is false.
func (f *Flow) PlaceOrder(ctx context.Context, side domain.Side, limit bool, sender string, tokens []tokendomain.Token) (Outcome, error) {
	source, counter, err := f.market.Pair(side, tokens)
	if err != nil {
		return Outcome{State: StateFailed}, err
	}
	intent := domain.OrderIntent{Side: side, CounterToken: counter}

	state := StateSelectToken
	for {
		f.logger.Debugf("order flow side=%s state=%s", side, state)
		switch state {
		case StateSelectToken:
			if source.HumanBalance() == 0 {
				f.render.Warn("Your %s balance is empty", source.Symbol)
			}
			i, err := f.prompt.Select(fmt.Sprintf("Select a token to %s", verb(side)), []string{
				fmt.Sprintf("%s (balance %s)", source.Symbol, source.FormattedBalance()),
				backItem,
			})
			if err != nil || i != 0 {
				return f.cancelled(err)
			}
			intent.SourceToken = source
			state = StateSelectAmount

		case StateSelectAmount:
			v, err := f.prompt.Input(fmt.Sprintf("How many %s", source.Symbol))
			if err != nil {
				return f.cancelled(err)
			}
			if err := checkAmount(v, source); err != nil {
				if errors.Is(err, errBadBalance) {
					return Outcome{State: StateFailed}, err
				}
				f.render.Warn("%v", err)
				continue
			}
			intent.HumanAmount = v
			if limit {
				state = StateSelectPrice
			} else {
				state = StateConfirm
			}

		case StateSelectPrice:
			v, err := f.prompt.Input("Set a price")
			if err != nil {
				return f.cancelled(err)
			}
			if err := domain.ValidatePrice(v); err != nil {
				f.render.Warn("%v", err)
				continue
			}
			intent.Price = v
			state = StateConfirm

		case StateConfirm:
			ok, err := f.prompt.Confirm(confirmLabel(intent))
			if err != nil || !ok {
				return f.cancelled(err)
			}
			state = StateSubmit

		case StateSubmit:
			return f.submit(ctx, intent, sender)
		}
	}
}

// CancelOrder runs LoadOrders, SelectOrder and Confirm, then removes the chosen order.
// Having nothing to cancel is reported and ends as StateCancelled.
func (f *Flow) CancelOrder(ctx context.Context, sender string) (Outcome, error) {
	var (
		orders []domain.OrderRecord
		chosen domain.OrderRecord
	)

	state := StateLoadOrders
	for {
		f.logger.Debugf("cancel flow state=%s", state)
		switch state {
		case StateLoadOrders:
			var err error
			orders, err = f.book.GetUserOrders(ctx, sender)
			if errors.Is(err, domain.ErrNoOrdersFound) {
				f.render.Warn("No orders found for %s", sender)
				return Outcome{State: StateCancelled}, nil
			}
			if err != nil {
				return Outcome{State: StateFailed}, err
			}
			state = StateSelectOrder

		case StateSelectOrder:
			items := make([]string, 0, len(orders)+1)
			for _, o := range orders {
				items = append(items, OrderLabel(o))
			}
			items = append(items, backItem)
			i, err := f.prompt.Select("Which order do you want to cancel", items)
			if err != nil || i >= len(orders) {
				return f.cancelled(err)
			}
			chosen = orders[i]
			state = StateConfirm

		case StateConfirm:
			ok, err := f.prompt.Confirm(fmt.Sprintf("Remove %s", OrderLabel(chosen)))
			if err != nil || !ok {
				return f.cancelled(err)
			}
			state = StateSubmit

		case StateSubmit:
			var hash string
			err := f.render.Spin("Cancelling order", func() error {
				res, err := f.dispatcher.Cancel(ctx, chosen.MarketID, chosen.Price, sender)
				hash = res.Hash
				return err
			})
			return f.sent(hash, err)
		}
	}
}

func (f *Flow) submit(ctx context.Context, intent domain.OrderIntent, sender string) (Outcome, error) {
	order, err := domain.Encode(intent, f.market)
	if err != nil {
		return Outcome{State: StateFailed}, err
	}

	var hash string
	err = f.render.Spin(fmt.Sprintf("Sending %s", describe(intent)), func() error {
		res, err := f.dispatcher.Submit(ctx, order, sender)
		hash = res.Hash
		return err
	})
	return f.sent(hash, err)
}

// sent reports a dispatch. A broadcast tx not yet seen in a block still gets its link.
func (f *Flow) sent(hash string, err error) (Outcome, error) {
	switch {
	case errors.Is(err, domain.ErrTxPending) && hash != "":
		f.render.Warn("Transaction %s was broadcast but is not in a block yet. Check it before sending again.", hash)
		f.render.Tx(hash, f.dispatcher.ExplorerURL(hash))
		return Outcome{State: StatePending, TxHash: hash}, nil
	case err != nil:
		return Outcome{State: StateFailed}, err
	}
	f.render.Tx(hash, f.dispatcher.ExplorerURL(hash))
	return Outcome{State: StateSubmitted, TxHash: hash}, nil
}

// cancelled ends a flow without side effects. Prompt errors other than an abort still surface.
func (f *Flow) cancelled(err error) (Outcome, error) {
	if err != nil && !errors.Is(err, ErrAborted) {
		return Outcome{State: StateCancelled}, err
	}
	f.render.Info("Order cancelled")
	return Outcome{State: StateCancelled}, nil
}

// errBadBalance ends the flow: no amount can be checked against an unreadable balance.
var errBadBalance = errors.New("unreadable balance")

// checkAmount accepts a positive amount the source balance covers.
func checkAmount(human string, source tokendomain.Token) error {
	raw, err := tokendomain.ToRawUnits(human, source.Decimals)
	if err != nil {
		return err
	}
	want := decimal.RequireFromString(raw)
	if want.IsZero() {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidAmount)
	}
	have, err := decimal.NewFromString(source.RawBalance)
	if err != nil {
		return fmt.Errorf("%w: %s %q: %v", errBadBalance, source.Symbol, source.RawBalance, err)
	}
	if want.GreaterThan(have) {
		return fmt.Errorf("%w: %s %s exceeds your balance of %s", domain.ErrInvalidAmount, human, source.Symbol, source.FormattedBalance())
	}
	return nil
}

func verb(side domain.Side) string {
	if side == domain.SideBuy {
		return "pay with"
	}
	return "sell"
}

func describe(o domain.OrderIntent) string {
	kind := "market"
	if !o.IsMarket() {
		kind = "limit"
	}
	s := fmt.Sprintf("%s %s order: %s %s for %s", kind, o.Side, o.HumanAmount, o.SourceToken.Symbol, o.CounterToken.Symbol)
	if !o.IsMarket() {
		s += " at " + o.Price
	}
	return s
}

func confirmLabel(o domain.OrderIntent) string {
	return fmt.Sprintf("Send %s", describe(o))
}

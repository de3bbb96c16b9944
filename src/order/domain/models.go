package domain

import (
	"fmt"

	tokendomain "github.com/MMN3003/selene/src/token/domain"
)

type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Market is one order book on the marketplace contract. Exactly two tokens trade on it:
// selling always sources Base, buying always sources Quote.
type Market struct {
	ID         uint64
	Contract   string
	BaseToken  string
	QuoteToken string
}

// SourceToken is the CW20 address a trader on side pays with.
func (m Market) SourceToken(side Side) string {
	if side == SideBuy {
		return m.QuoteToken
	}
	return m.BaseToken
}

// CounterToken is the CW20 address a trader on side receives.
func (m Market) CounterToken(side Side) string {
	if side == SideBuy {
		return m.BaseToken
	}
	return m.QuoteToken
}

// Pair picks the source and counter token for side out of the session's balances.
func (m Market) Pair(side Side, tokens []tokendomain.Token) (source, counter tokendomain.Token, err error) {
	var foundSource, foundCounter bool
	for _, t := range tokens {
		switch t.Address {
		case m.SourceToken(side):
			source, foundSource = t, true
		case m.CounterToken(side):
			counter, foundCounter = t, true
		}
	}
	if !foundSource || !foundCounter {
		return source, counter, fmt.Errorf("market %d: tokens %s/%s not among fetched balances", m.ID, m.BaseToken, m.QuoteToken)
	}
	return source, counter, nil
}

// OrderIntent is a fully collected trading intent. An empty Price means a market order.
type OrderIntent struct {
	Side         Side
	SourceToken  tokendomain.Token
	CounterToken tokendomain.Token
	HumanAmount  string
	Price        string
}

func (o OrderIntent) IsMarket() bool { return o.Price == "" }

// EncodedOrder is ready to be sent: RawAmount of TokenContract goes to RecipientContract
// together with OpaquePayload (base64 of the order action JSON).
type EncodedOrder struct {
	RecipientContract string
	TokenContract     string
	RawAmount         string
	OpaquePayload     string
}

// OrderRecord is a resting order, or a book level when decoded from get_market_book.
// MarketID and Price identify the caller's order for cancellation.
type OrderRecord struct {
	MarketID uint64 `json:"market_id"`
	Side     Side   `json:"order_side"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// MarketBook lists both sides best price first, as the contract returned them.
type MarketBook struct {
	Bids []OrderRecord
	Asks []OrderRecord
}

// UserOrdersKind selects one of the per-user order queries.
type UserOrdersKind string

const (
	UserBids   UserOrdersKind = "get_user_bids"
	UserAsks   UserOrdersKind = "get_user_asks"
	UserOrders UserOrdersKind = "get_user_orders"
)

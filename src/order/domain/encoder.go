package domain

import (
	"encoding/base64"
	"fmt"
	"regexp"

	tokendomain "github.com/MMN3003/selene/src/token/domain"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

var pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// LimitOrder rests at Price until matched or removed.
type LimitOrder struct {
	MarketID uint64 `json:"market_id"`
	Price    string `json:"price"`
}

// MarketOrder fills immediately against the best resting levels.
type MarketOrder struct {
	MarketID uint64 `json:"market_id"`
}

// OrderAction is the hook message the marketplace decodes out of a CW20 send.
// Exactly one variant is set.
type OrderAction struct {
	LimitOrder  *LimitOrder  `json:"limit_order,omitempty"`
	MarketOrder *MarketOrder `json:"market_order,omitempty"`
}

type sendMsg struct {
	Send struct {
		Contract string `json:"contract"`
		Amount   string `json:"amount"`
		Msg      string `json:"msg"`
	} `json:"send"`
}

type removeLimitOrderMsg struct {
	RemoveLimitOrder LimitOrder `json:"remove_limit_order"`
}

type userOrdersArgs struct {
	UserAddress  string `json:"user_address"`
	TargetMarket uint64 `json:"target_market"`
}

type marketBookQuery struct {
	GetMarketBook struct {
		MarketID uint64 `json:"market_id"`
		NbLevels uint32 `json:"nb_levels"`
	} `json:"get_market_book"`
}

// UserOrdersResponse answers get_user_bids, get_user_asks and get_user_orders.
type UserOrdersResponse struct {
	Orders []OrderRecord `json:"orders"`
}

// BookLevel is one aggregated price level of get_market_book.
type BookLevel struct {
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// MarketBookResponse answers get_market_book.
type MarketBookResponse struct {
	Bids []BookLevel `json:"bids"`
	Asks []BookLevel `json:"asks"`
}

// ValidatePrice applies the amount grammar to a price and rejects zero.
func ValidatePrice(price string) error {
	if !pricePattern.MatchString(price) {
		return fmt.Errorf("%w: %q is not a number with at most 2 decimals", ErrInvalidPrice, price)
	}
	if decimal.RequireFromString(price).IsZero() {
		return fmt.Errorf("%w: price must be greater than zero", ErrInvalidPrice)
	}
	return nil
}

// Encode turns an intent into the CW20 send that places it. The side is not part of the
// payload; the marketplace infers it from which token contract calls its receive hook.
// Encode does no I/O and returns identical output for identical input.
func Encode(intent OrderIntent, market Market) (EncodedOrder, error) {
	if want := market.SourceToken(intent.Side); intent.SourceToken.Address != want {
		return EncodedOrder{}, fmt.Errorf("%s order on market %d must pay with %s, got %s",
			intent.Side, market.ID, want, intent.SourceToken.Address)
	}

	raw, err := tokendomain.ToRawUnits(intent.HumanAmount, intent.SourceToken.Decimals)
	if err != nil {
		return EncodedOrder{}, err
	}
	if raw == "0" {
		return EncodedOrder{}, fmt.Errorf("%w: %q is zero in base units", ErrInvalidAmount, intent.HumanAmount)
	}

	var action OrderAction
	if intent.IsMarket() {
		action.MarketOrder = &MarketOrder{MarketID: market.ID}
	} else {
		if err := ValidatePrice(intent.Price); err != nil {
			return EncodedOrder{}, err
		}
		action.LimitOrder = &LimitOrder{MarketID: market.ID, Price: intent.Price}
	}

	payload, err := json.Marshal(action)
	if err != nil {
		return EncodedOrder{}, fmt.Errorf("marshal order action: %w", err)
	}

	return EncodedOrder{
		RecipientContract: market.Contract,
		TokenContract:     intent.SourceToken.Address,
		RawAmount:         raw,
		OpaquePayload:     base64.StdEncoding.EncodeToString(payload),
	}, nil
}

// EncodeSend renders the execute message for order.TokenContract.
func EncodeSend(order EncodedOrder) ([]byte, error) {
	var m sendMsg
	m.Send.Contract = order.RecipientContract
	m.Send.Amount = order.RawAmount
	m.Send.Msg = order.OpaquePayload
	return json.Marshal(m)
}

// DecodePayload reverses the opaque step of Encode.
func DecodePayload(opaque string) (OrderAction, error) {
	var action OrderAction
	b, err := base64.StdEncoding.DecodeString(opaque)
	if err != nil {
		return action, fmt.Errorf("decode payload: %w", err)
	}
	if err := json.Unmarshal(b, &action); err != nil {
		return action, fmt.Errorf("decode payload: %w", err)
	}
	if (action.LimitOrder == nil) == (action.MarketOrder == nil) {
		return action, fmt.Errorf("decode payload: expected exactly one of limit_order, market_order")
	}
	return action, nil
}

// EncodeRemoveLimitOrder builds the cancel message sent straight to the marketplace.
func EncodeRemoveLimitOrder(marketID uint64, price string) ([]byte, error) {
	if price == "" {
		return nil, fmt.Errorf("%w: price is required", ErrInvalidPrice)
	}
	return json.Marshal(removeLimitOrderMsg{RemoveLimitOrder: LimitOrder{MarketID: marketID, Price: price}})
}

// UserOrdersQuery builds get_user_bids, get_user_asks or get_user_orders.
func UserOrdersQuery(kind UserOrdersKind, user string, marketID uint64) ([]byte, error) {
	switch kind {
	case UserBids, UserAsks, UserOrders:
	default:
		return nil, fmt.Errorf("unknown user orders query %q", kind)
	}
	return json.Marshal(map[UserOrdersKind]userOrdersArgs{
		kind: {UserAddress: user, TargetMarket: marketID},
	})
}

// MarketBookQuery asks for the best depth levels of each side.
func MarketBookQuery(marketID uint64, depth uint32) ([]byte, error) {
	var q marketBookQuery
	q.GetMarketBook.MarketID = marketID
	q.GetMarketBook.NbLevels = depth
	return json.Marshal(q)
}

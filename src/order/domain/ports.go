package domain

import (
	"context"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
)

// BookQuerier reads resting orders and book depth from the marketplace.
type BookQuerier interface {
	GetUserBids(ctx context.Context, user string) ([]OrderRecord, error)
	GetUserAsks(ctx context.Context, user string) ([]OrderRecord, error)
	GetUserOrders(ctx context.Context, user string) ([]OrderRecord, error)
	GetMarketBook(ctx context.Context, marketID uint64, depth uint32) (MarketBook, error)
}

// OrderDispatcher sends exactly one transaction per call.
type OrderDispatcher interface {
	Submit(ctx context.Context, order EncodedOrder, sender string) (chaindomain.TxResult, error)
	Cancel(ctx context.Context, marketID uint64, price, sender string) (chaindomain.TxResult, error)
	ExplorerURL(txHash string) string
}

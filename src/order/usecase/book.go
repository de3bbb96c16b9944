package usecase

import (
	"context"
	"errors"
	"fmt"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
	"github.com/MMN3003/selene/src/logger"
	"github.com/MMN3003/selene/src/order/domain"
	"github.com/goccy/go-json"
)

var _ domain.BookQuerier = (*BookService)(nil)

type contractQuerier interface {
	QueryContractSmart(ctx context.Context, contract string, query []byte) ([]byte, error)
}

// BookService reads the marketplace for one market. Every call goes to the chain.
type BookService struct {
	client contractQuerier
	market domain.Market
	logger *logger.Logger
}

func NewBookService(client contractQuerier, market domain.Market, logg *logger.Logger) *BookService {
	return &BookService{client: client, market: market, logger: logg}
}

func (s *BookService) GetUserBids(ctx context.Context, user string) ([]domain.OrderRecord, error) {
	return s.userOrders(ctx, domain.UserBids, user)
}

func (s *BookService) GetUserAsks(ctx context.Context, user string) ([]domain.OrderRecord, error) {
	return s.userOrders(ctx, domain.UserAsks, user)
}

func (s *BookService) GetUserOrders(ctx context.Context, user string) ([]domain.OrderRecord, error) {
	return s.userOrders(ctx, domain.UserOrders, user)
}

// GetMarketBook returns at most depth levels per side, in contract order.
func (s *BookService) GetMarketBook(ctx context.Context, marketID uint64, depth uint32) (domain.MarketBook, error) {
	q, err := domain.MarketBookQuery(marketID, depth)
	if err != nil {
		return domain.MarketBook{}, fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
	}
	// an unknown market is refused by the contract
	raw, err := s.query(ctx, q, domain.ErrNoOrdersFound)
	if err != nil {
		return domain.MarketBook{}, err
	}

	var resp domain.MarketBookResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return domain.MarketBook{}, fmt.Errorf("%w: decode get_market_book: %v", domain.ErrQueryFailed, err)
	}
	if len(resp.Bids) == 0 && len(resp.Asks) == 0 {
		return domain.MarketBook{}, fmt.Errorf("%w: market %d book is empty", domain.ErrNoOrdersFound, marketID)
	}

	return domain.MarketBook{
		Bids: levelsToRecords(resp.Bids, marketID, domain.SideBuy),
		Asks: levelsToRecords(resp.Asks, marketID, domain.SideSell),
	}, nil
}

func (s *BookService) userOrders(ctx context.Context, kind domain.UserOrdersKind, user string) ([]domain.OrderRecord, error) {
	q, err := domain.UserOrdersQuery(kind, user, s.market.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
	}
	// user queries answer empty when nothing is stored, so a refusal means misconfiguration
	raw, err := s.query(ctx, q, domain.ErrQueryFailed)
	if err != nil {
		return nil, err
	}

	var resp domain.UserOrdersResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrQueryFailed, kind, err)
	}
	if len(resp.Orders) == 0 {
		return nil, fmt.Errorf("%w: %s for %s", domain.ErrNoOrdersFound, kind, user)
	}
	return resp.Orders, nil
}

// query wraps a contract refusal in refused and any other failure in ErrQueryFailed.
func (s *BookService) query(ctx context.Context, q []byte, refused error) ([]byte, error) {
	raw, err := s.client.QueryContractSmart(ctx, s.market.Contract, q)
	switch {
	case err == nil:
		return raw, nil
	case errors.Is(err, chaindomain.ErrContractQuery):
		s.logger.Debugf("marketplace refused %s: %v", q, err)
		return nil, fmt.Errorf("%w: %v", refused, err)
	default:
		s.logger.Errorf("marketplace query %s: %v", q, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
	}
}

func levelsToRecords(levels []domain.BookLevel, marketID uint64, side domain.Side) []domain.OrderRecord {
	out := make([]domain.OrderRecord, len(levels))
	for i, l := range levels {
		out[i] = domain.OrderRecord{MarketID: marketID, Side: side, Price: l.Price, Quantity: l.Quantity}
	}
	return out
}

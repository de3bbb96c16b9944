package usecase

import (
	"context"
	"fmt"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
	"github.com/MMN3003/selene/src/logger"
	"github.com/MMN3003/selene/src/token/domain"
	"github.com/goccy/go-json"
)

type querier interface {
	QueryContractSmart(ctx context.Context, contract string, query []byte) ([]byte, error)
	GetBalance(ctx context.Context, address, denom string) (string, error)
}

var _ querier = (chaindomain.ChainClient)(nil)

type Service struct {
	client      querier
	addresses   []string
	nativeDenom string
	logger      *logger.Logger
}

// NewService reads balances of the given CW20 contracts. Order of addresses is kept in results.
func NewService(client querier, addresses []string, nativeDenom string, logg *logger.Logger) *Service {
	return &Service{
		client:      client,
		addresses:   addresses,
		nativeDenom: nativeDenom,
		logger:      logg,
	}
}

// FetchBalances issues balance{} and token_info{} for every token. Nothing is cached.
func (s *Service) FetchBalances(ctx context.Context, owner string) ([]domain.Token, error) {
	tokens := make([]domain.Token, 0, len(s.addresses))
	for _, addr := range s.addresses {
		tok, err := s.fetchToken(ctx, addr, owner)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// NativeBalance returns the gas token balance of owner in base units.
func (s *Service) NativeBalance(ctx context.Context, owner string) (string, string, error) {
	amount, err := s.client.GetBalance(ctx, owner, s.nativeDenom)
	if err != nil {
		return "", s.nativeDenom, fmt.Errorf("native balance %s: %w", s.nativeDenom, err)
	}
	return amount, s.nativeDenom, nil
}

func (s *Service) fetchToken(ctx context.Context, addr, owner string) (domain.Token, error) {
	q, err := domain.BalanceQuery(owner)
	if err != nil {
		return domain.Token{}, err
	}
	raw, err := s.client.QueryContractSmart(ctx, addr, q)
	if err != nil {
		return domain.Token{}, fmt.Errorf("balance of %s: %w", addr, err)
	}
	var bal domain.BalanceResponse
	if err := json.Unmarshal(raw, &bal); err != nil {
		return domain.Token{}, fmt.Errorf("decode balance of %s: %w", addr, err)
	}

	q, err = domain.TokenInfoQuery()
	if err != nil {
		return domain.Token{}, err
	}
	raw, err = s.client.QueryContractSmart(ctx, addr, q)
	if err != nil {
		return domain.Token{}, fmt.Errorf("token_info of %s: %w", addr, err)
	}
	var info domain.TokenInfoResponse
	if err := json.Unmarshal(raw, &info); err != nil {
		return domain.Token{}, fmt.Errorf("decode token_info of %s: %w", addr, err)
	}

	s.logger.Debugf("token %s (%s) balance=%s decimals=%d", info.Symbol, addr, bal.Balance, info.Decimals)

	return domain.Token{
		Address:    addr,
		Symbol:     info.Symbol,
		Name:       info.Name,
		Decimals:   info.Decimals,
		RawBalance: bal.Balance,
	}, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
	"github.com/MMN3003/selene/src/logger"
	tokendomain "github.com/MMN3003/selene/src/token/domain"
	"github.com/goccy/go-json"
)

var ErrNoTokens = errors.New("faucet has no tokens configured")

// Service mints test tokens from an account that holds the CW20 minter role.
type Service struct {
	minter      chaindomain.ChainClient
	tokens      []string
	humanAmount string
	logger      *logger.Logger
}

// NewService mints humanAmount of every token in tokens per request.
func NewService(minter chaindomain.ChainClient, tokens []string, humanAmount string, logg *logger.Logger) *Service {
	return &Service{
		minter:      minter,
		tokens:      tokens,
		humanAmount: humanAmount,
		logger:      logg,
	}
}

// Mint sends one batch with a mint per token, scaled by each token's own decimals.
func (s *Service) Mint(ctx context.Context, recipient string) (chaindomain.TxResult, error) {
	if len(s.tokens) == 0 {
		return chaindomain.TxResult{}, ErrNoTokens
	}

	msgs := make([]chaindomain.ContractMsg, 0, len(s.tokens))
	for _, addr := range s.tokens {
		decimals, err := s.decimals(ctx, addr)
		if err != nil {
			return chaindomain.TxResult{}, err
		}
		raw, err := tokendomain.ToRawUnits(s.humanAmount, decimals)
		if err != nil {
			return chaindomain.TxResult{}, fmt.Errorf("faucet amount: %w", err)
		}
		msg, err := tokendomain.MintMsg(recipient, raw)
		if err != nil {
			return chaindomain.TxResult{}, err
		}
		msgs = append(msgs, chaindomain.ContractMsg{Contract: addr, Msg: msg})
	}

	s.logger.Infof("minting %s of %d tokens to %s from %s", s.humanAmount, len(msgs), recipient, s.minter.Address())
	res, err := s.minter.ExecuteMultiple(ctx, msgs)
	if err != nil {
		return res, fmt.Errorf("faucet mint: %w", err)
	}
	return res, nil
}

func (s *Service) decimals(ctx context.Context, addr string) (int, error) {
	q, err := tokendomain.TokenInfoQuery()
	if err != nil {
		return 0, err
	}
	raw, err := s.minter.QueryContractSmart(ctx, addr, q)
	if err != nil {
		return 0, fmt.Errorf("token_info of %s: %w", addr, err)
	}
	var info tokendomain.TokenInfoResponse
	if err := json.Unmarshal(raw, &info); err != nil {
		return 0, fmt.Errorf("decode token_info of %s: %w", addr, err)
	}
	return info.Decimals, nil
}

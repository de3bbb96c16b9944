package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MMN3003/selene/src/chain/domain/mocks"
	"github.com/MMN3003/selene/src/logger"
	"github.com/MMN3003/selene/src/token/domain"
)

const (
	heurAddr = "archway1heur"
	husdAddr = "archway1husd"
	owner    = "archway1owner"
)

func TestFetchBalances(t *testing.T) {
	client := mocks.NewChainClient(t)
	balanceQ := []byte(`{"balance":{"address":"archway1owner"}}`)
	infoQ := []byte(`{"token_info":{}}`)

	client.On("QueryContractSmart", mock.Anything, heurAddr, balanceQ).
		Return([]byte(`{"balance":"500000000"}`), nil)
	client.On("QueryContractSmart", mock.Anything, heurAddr, infoQ).
		Return([]byte(`{"name":"Hackathon EUR","symbol":"HEUR","decimals":6,"total_supply":"1"}`), nil)
	client.On("QueryContractSmart", mock.Anything, husdAddr, balanceQ).
		Return([]byte(`{"balance":"250000"}`), nil)
	client.On("QueryContractSmart", mock.Anything, husdAddr, infoQ).
		Return([]byte(`{"name":"Hackathon USD","symbol":"HUSD","decimals":6,"total_supply":"1"}`), nil)

	svc := NewService(client, []string{heurAddr, husdAddr}, "aconst", logger.Nop())
	tokens, err := svc.FetchBalances(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, []domain.Token{
		{Address: heurAddr, Symbol: "HEUR", Name: "Hackathon EUR", Decimals: 6, RawBalance: "500000000"},
		{Address: husdAddr, Symbol: "HUSD", Name: "Hackathon USD", Decimals: 6, RawBalance: "250000"},
	}, tokens)
	require.Equal(t, 0.25, tokens[1].HumanBalance())
}

func TestFetchBalancesStopsOnError(t *testing.T) {
	client := mocks.NewChainClient(t)
	client.On("QueryContractSmart", mock.Anything, heurAddr, mock.Anything).
		Return(nil, errors.New("connection refused"))

	svc := NewService(client, []string{heurAddr, husdAddr}, "aconst", logger.Nop())
	_, err := svc.FetchBalances(context.Background(), owner)
	require.Error(t, err)
	require.Contains(t, err.Error(), "connection refused")
	client.AssertNumberOfCalls(t, "QueryContractSmart", 1)
}

func TestFetchBalancesBadPayload(t *testing.T) {
	client := mocks.NewChainClient(t)
	client.On("QueryContractSmart", mock.Anything, heurAddr, mock.Anything).
		Return([]byte(`not json`), nil)

	svc := NewService(client, []string{heurAddr}, "aconst", logger.Nop())
	_, err := svc.FetchBalances(context.Background(), owner)
	require.ErrorContains(t, err, "decode balance")
}

func TestNativeBalance(t *testing.T) {
	client := mocks.NewChainClient(t)
	client.On("GetBalance", mock.Anything, owner, "aconst").Return("42", nil)

	svc := NewService(client, nil, "aconst", logger.Nop())
	amount, denom, err := svc.NativeBalance(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, "42", amount)
	require.Equal(t, "aconst", denom)
}

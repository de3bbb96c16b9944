package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MMN3003/selene/src/token/domain"
)

func TestCW20Messages(t *testing.T) {
	q, err := domain.BalanceQuery("archway1user")
	require.NoError(t, err)
	require.JSONEq(t, `{"balance":{"address":"archway1user"}}`, string(q))

	q, err = domain.TokenInfoQuery()
	require.NoError(t, err)
	require.Equal(t, `{"token_info":{}}`, string(q))

	m, err := domain.MintMsg("archway1user", "1000000000")
	require.NoError(t, err)
	require.Equal(t, `{"mint":{"recipient":"archway1user","amount":"1000000000"}}`, string(m))

	_, err = domain.MintMsg("archway1user", "10.5")
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

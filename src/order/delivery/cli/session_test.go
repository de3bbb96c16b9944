package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
	"github.com/MMN3003/selene/src/logger"
	"github.com/MMN3003/selene/src/order/domain"
	"github.com/MMN3003/selene/src/order/domain/mocks"
	tokendomain "github.com/MMN3003/selene/src/token/domain"
)

type fakeBalances struct {
	calls int
	err   error
}

func (f *fakeBalances) FetchBalances(context.Context, string) ([]tokendomain.Token, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return tokens, nil
}

func (f *fakeBalances) NativeBalance(context.Context, string) (string, string, error) {
	return "1000", "aconst", nil
}

type fakeMinter struct {
	recipients []string
}

func (m *fakeMinter) Mint(_ context.Context, recipient string) (chaindomain.TxResult, error) {
	m.recipients = append(m.recipients, recipient)
	return chaindomain.TxResult{Hash: "M1NT"}, nil
}

func newTestSession(p Prompter, b domain.BookQuerier, bal BalanceFetcher, faucet Minter) (*Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	r := NewRenderer(out)
	d := &countingDispatcher{}
	return NewSession(SessionOptions{
		Address:  trader,
		Balances: bal,
		Book:     b,
		Faucet:   faucet,
		Flow:     NewFlow(p, r, d, b, market, logger.Nop()),
		Prompt:   p,
		Render:   r,
		Market:   market,
		Depth:    10,
		Logger:   logger.Nop(),
	}), out
}

const (
	menuBook = 5
	menuBids = 6
	menuExit = 8
)

func TestSessionLoopsUntilExit(t *testing.T) {
	b := mocks.NewBookQuerier(t)
	b.On("GetMarketBook", mock.Anything, uint64(0), uint32(10)).Return(domain.MarketBook{
		Bids: []domain.OrderRecord{{Side: domain.SideBuy, Price: "2.40", Quantity: "7"}},
		Asks: []domain.OrderRecord{{Side: domain.SideSell, Price: "2.55", Quantity: "3"}},
	}, nil).Once()
	b.On("GetUserBids", mock.Anything, trader).Return(nil, domain.ErrNoOrdersFound).Once()

	bal := &fakeBalances{}
	p := newScript(t, pick(menuBook), pick(menuBids), pick(menuExit))
	s, out := newTestSession(p, b, bal, nil)

	require.NoError(t, s.Run(context.Background()))
	assert.True(t, p.done())
	assert.Equal(t, 3, bal.calls)
	assert.Contains(t, out.String(), "2.55")
	assert.Contains(t, out.String(), "No orders found")
	assert.Contains(t, out.String(), "HEUR")
}

func TestSessionAbortAtMenuExits(t *testing.T) {
	p := newScript(t, abort(kindSelect))
	s, _ := newTestSession(p, mocks.NewBookQuerier(t), &fakeBalances{}, nil)
	require.NoError(t, s.Run(context.Background()))
}

func TestSessionReportsFailuresAndContinues(t *testing.T) {
	b := mocks.NewBookQuerier(t)
	b.On("GetMarketBook", mock.Anything, uint64(0), uint32(10)).
		Return(domain.MarketBook{}, fmt.Errorf("%w: connection refused", domain.ErrQueryFailed)).Once()

	p := newScript(t, pick(menuBook), pick(menuExit))
	s, out := newTestSession(p, b, &fakeBalances{err: errors.New("rpc down")}, nil)

	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "Could not fetch balances")
	assert.Contains(t, out.String(), "Could not reach the marketplace")
}

func TestSessionFaucet(t *testing.T) {
	m := &fakeMinter{}
	// faucet sits right before Exit
	p := newScript(t, pick(menuExit), pick(menuExit+1))
	s, out := newTestSession(p, mocks.NewBookQuerier(t), &fakeBalances{}, m)

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, []string{trader}, m.recipients)
	assert.Contains(t, out.String(), "M1NT")
}

func TestSessionStopsOnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, _ := newTestSession(newScript(t), mocks.NewBookQuerier(t), &fakeBalances{}, nil)
	require.ErrorIs(t, s.Run(ctx), context.Canceled)
}

func TestSelectAccount(t *testing.T) {
	name, err := SelectAccount(newScript(t), []string{"alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	name, err = SelectAccount(newScript(t, pick(1)), []string{"bob", "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	_, err = SelectAccount(newScript(t, abort(kindSelect)), []string{"bob", "alice"})
	require.ErrorIs(t, err, ErrAborted)
}

func TestDescribe(t *testing.T) {
	assert.Contains(t, Describe(fmt.Errorf("%w: boom", domain.ErrSubmissionFailed)), "Transaction failed")
	assert.Contains(t, Describe(fmt.Errorf("%w: eof", domain.ErrQueryFailed)), "Could not reach")
	assert.Contains(t, Describe(fmt.Errorf("%w: timeout", domain.ErrTxPending)), "not confirmed yet")
	assert.Equal(t, "plain", Describe(errors.New("plain")))
}

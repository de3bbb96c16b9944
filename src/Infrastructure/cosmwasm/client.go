package cosmwasm

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tmbytes "github.com/tendermint/tendermint/libs/bytes"
	rpchttp "github.com/tendermint/tendermint/rpc/client/http"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
)

// Errors
var (
	ErrConnectNode   = errors.New("failed to connect to node")
	ErrQueryNode     = errors.New("failed to query node")
	ErrTxNotIncluded = errors.New("transaction not included")
)

// abciClient is the part of the Tendermint RPC client the adapter uses.
type abciClient interface {
	ABCIQuery(ctx context.Context, path string, data tmbytes.HexBytes) (*ctypes.ResultABCIQuery, error)
	Tx(ctx context.Context, hash []byte, prove bool) (*ctypes.ResultTx, error)
	Status(ctx context.Context) (*ctypes.ResultStatus, error)
}

// QueryClient reads chain state over Tendermint RPC. It never signs.
type QueryClient struct {
	rpc          abciClient
	Logger       zerolog.Logger
	TxTimeout    time.Duration
	PollInterval time.Duration
	MaxPoll      time.Duration
}

// QueryOption functional options
type QueryOption func(*QueryClient)

func WithQueryLogger(l zerolog.Logger) QueryOption    { return func(c *QueryClient) { c.Logger = l } }
func WithTxTimeout(d time.Duration) QueryOption       { return func(c *QueryClient) { c.TxTimeout = d } }
func WithPollInterval(d time.Duration) QueryOption    { return func(c *QueryClient) { c.PollInterval = d } }
func WithMaxPollInterval(d time.Duration) QueryOption { return func(c *QueryClient) { c.MaxPoll = d } }

// NewQueryClient dials remote, e.g. https://rpc.constantine.archway.tech:443.
func NewQueryClient(remote string, opts ...QueryOption) (*QueryClient, error) {
	if remote == "" {
		return nil, fmt.Errorf("%w: rpc url is required", ErrConnectNode)
	}
	rpc, err := rpchttp.New(remote, "/websocket")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectNode, err)
	}
	return newQueryClient(rpc, opts...), nil
}

func newQueryClient(rpc abciClient, opts ...QueryOption) *QueryClient {
	c := &QueryClient{
		rpc:          rpc,
		Logger:       log.Logger,
		TxTimeout:    60 * time.Second,
		PollInterval: 500 * time.Millisecond,
		MaxPoll:      5 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChainID asks the node which network it serves. Used at startup to fail fast on a bad endpoint.
func (c *QueryClient) ChainID(ctx context.Context) (string, error) {
	st, err := c.rpc.Status(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnectNode, err)
	}
	return st.NodeInfo.Network, nil
}

// QueryContractSmart runs a JSON smart query and returns the contract's JSON answer.
// A refusal by the contract is ErrContractQuery; everything else is ErrQueryNode.
func (c *QueryClient) QueryContractSmart(ctx context.Context, contract string, query []byte) ([]byte, error) {
	resp, err := c.abciQuery(ctx, smartQueryPath, encodeSmartQuery(contract, query))
	if err != nil {
		return nil, err
	}
	data, err := decodeSmartResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryNode, err)
	}
	return data, nil
}

// GetBalance returns the bank balance of address in denom, in base units.
func (c *QueryClient) GetBalance(ctx context.Context, address, denom string) (string, error) {
	resp, err := c.abciQuery(ctx, balanceQueryPath, encodeBalanceQuery(address, denom))
	if err != nil {
		return "", err
	}
	amount, err := decodeBalanceResponse(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrQueryNode, err)
	}
	return amount, nil
}

func (c *QueryClient) abciQuery(ctx context.Context, path string, req []byte) ([]byte, error) {
	start := time.Now()
	res, err := c.rpc.ABCIQuery(ctx, path, req)
	if err != nil {
		c.Logger.Error().Str("path", path).Err(err).Msg("abci query")
		return nil, fmt.Errorf("%w: %v", ErrQueryNode, err)
	}

	c.Logger.Debug().
		Str("path", path).
		Uint32("code", res.Response.Code).
		Int64("height", res.Response.Height).
		Str("duration", time.Since(start).String()).
		Msg("abci query")

	if res.Response.Code != 0 {
		return nil, fmt.Errorf("%w: %s", chaindomain.ErrContractQuery, res.Response.Log)
	}
	return res.Response.Value, nil
}

// WaitForTx polls for hash with exponential backoff until the block including it is committed.
// A non-zero DeliverTx code is ErrTxRejected.
func (c *QueryClient) WaitForTx(ctx context.Context, hash string) (chaindomain.TxResult, error) {
	raw, err := hex.DecodeString(hash)
	if err != nil {
		return chaindomain.TxResult{}, fmt.Errorf("tx hash %q: %w", hash, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.TxTimeout)
	defer cancel()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.PollInterval
	bo.MaxInterval = c.MaxPoll

	for {
		res, err := c.rpc.Tx(ctx, raw, false)
		if err == nil {
			c.Logger.Info().
				Str("hash", hash).
				Int64("height", res.Height).
				Uint32("code", res.TxResult.Code).
				Int64("gas_used", res.TxResult.GasUsed).
				Msg("tx included")

			if res.TxResult.Code != 0 {
				return chaindomain.TxResult{}, fmt.Errorf("%w: code %d: %s", chaindomain.ErrTxRejected, res.TxResult.Code, res.TxResult.Log)
			}
			return chaindomain.TxResult{
				Hash:    hash,
				Height:  res.Height,
				GasUsed: res.TxResult.GasUsed,
			}, nil
		}
		c.Logger.Debug().Str("hash", hash).Err(err).Msg("tx not found yet")

		select {
		case <-ctx.Done():
			return chaindomain.TxResult{}, fmt.Errorf("%w: %s: %v", ErrTxNotIncluded, hash, ctx.Err())
		case <-time.After(bo.NextBackOff()):
		}
	}
}

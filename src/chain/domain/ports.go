package domain

import (
	"context"
	"errors"
)

var (
	// ErrContractQuery means the node reached the contract and the contract refused the query.
	ErrContractQuery = errors.New("contract rejected query")
	// ErrTxRejected means the transaction was refused at broadcast or reverted on execution.
	ErrTxRejected = errors.New("transaction rejected")
	// ErrTxPending means the transaction was broadcast but its inclusion was not observed.
	// The TxResult returned with it carries the hash.
	ErrTxPending = errors.New("transaction pending")
)

// ChainClient is the signing-capable account the rest of the program talks to.
// Execute and ExecuteMultiple sign as Address().
type ChainClient interface {
	Address() string
	Execute(ctx context.Context, contract string, msg []byte) (TxResult, error)
	ExecuteMultiple(ctx context.Context, msgs []ContractMsg) (TxResult, error)
	QueryContractSmart(ctx context.Context, contract string, query []byte) ([]byte, error)
	GetBalance(ctx context.Context, address, denom string) (string, error)
}

package cosmwasm

import (
	"context"
	"errors"
	"fmt"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
)

var _ chaindomain.ChainClient = (*Account)(nil)

type signer interface {
	EnsureKey(ctx context.Context, name, mnemonic string) (string, error)
	Execute(ctx context.Context, from, contract string, msg []byte) (TxResponse, error)
	ExecuteMultiple(ctx context.Context, from, fromAddress string, msgs []chaindomain.ContractMsg) (TxResponse, error)
}

type chainReader interface {
	QueryContractSmart(ctx context.Context, contract string, query []byte) ([]byte, error)
	GetBalance(ctx context.Context, address, denom string) (string, error)
	WaitForTx(ctx context.Context, hash string) (chaindomain.TxResult, error)
}

var (
	_ signer      = (*Keyring)(nil)
	_ chainReader = (*QueryClient)(nil)
)

// Account is one keyring key plus a node to read from. Writes block until the tx is in a block.
type Account struct {
	name    string
	address string
	keys    signer
	chain   chainReader
}

// NewAccount resolves name in the keyring, importing mnemonic when the key is not there yet.
func NewAccount(ctx context.Context, name, mnemonic string, keys signer, chain chainReader) (*Account, error) {
	addr, err := keys.EnsureKey(ctx, name, mnemonic)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", name, err)
	}
	return &Account{name: name, address: addr, keys: keys, chain: chain}, nil
}

func (a *Account) Name() string    { return a.name }
func (a *Account) Address() string { return a.address }

func (a *Account) Execute(ctx context.Context, contract string, msg []byte) (chaindomain.TxResult, error) {
	resp, err := a.keys.Execute(ctx, a.name, contract, msg)
	if err != nil {
		return chaindomain.TxResult{}, err
	}
	return a.wait(ctx, resp.TxHash)
}

func (a *Account) ExecuteMultiple(ctx context.Context, msgs []chaindomain.ContractMsg) (chaindomain.TxResult, error) {
	resp, err := a.keys.ExecuteMultiple(ctx, a.name, a.address, msgs)
	if err != nil {
		return chaindomain.TxResult{}, err
	}
	return a.wait(ctx, resp.TxHash)
}

// wait keeps the hash of a broadcast tx whose inclusion could not be observed.
func (a *Account) wait(ctx context.Context, hash string) (chaindomain.TxResult, error) {
	res, err := a.chain.WaitForTx(ctx, hash)
	if err == nil || errors.Is(err, chaindomain.ErrTxRejected) {
		return res, err
	}
	return chaindomain.TxResult{Hash: hash}, fmt.Errorf("%w: %w", chaindomain.ErrTxPending, err)
}

func (a *Account) QueryContractSmart(ctx context.Context, contract string, query []byte) ([]byte, error) {
	return a.chain.QueryContractSmart(ctx, contract, query)
}

func (a *Account) GetBalance(ctx context.Context, address, denom string) (string, error) {
	return a.chain.GetBalance(ctx, address, denom)
}

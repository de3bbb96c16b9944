package cosmwasm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
)

// Errors
var (
	ErrDaemonMissing   = errors.New("chain daemon not found")
	ErrDaemonCommand   = errors.New("chain daemon command failed")
	ErrKeyNotFound     = errors.New("key not found in keyring")
	ErrInvalidMnemonic = errors.New("malformed recovery phrase")
	ErrBadTxOutput     = errors.New("unexpected daemon output")
)

// Runner runs one daemon invocation and returns its stdout.
type Runner interface {
	Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("%w: %s: %v: %s", ErrDaemonCommand, strings.Join(args[:min(len(args), 3)], " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// TxResponse is the part of the daemon's broadcast output the client reads.
type TxResponse struct {
	TxHash    string `json:"txhash"`
	Code      uint32 `json:"code"`
	Codespace string `json:"codespace"`
	RawLog    string `json:"raw_log"`
}

// Keyring signs through the chain daemon's CLI (archwayd, wasmd, ...).
// Key material never leaves the daemon's keyring.
type Keyring struct {
	Daemon        string
	ChainID       string
	Node          string
	Backend       string
	Home          string
	GasPrices     string
	GasAdjustment string
	Gas           string
	Logger        zerolog.Logger
	runner        Runner
}

// KeyringOption functional options
type KeyringOption func(*Keyring)

func WithRunner(r Runner) KeyringOption                { return func(k *Keyring) { k.runner = r } }
func WithKeyringBackend(b string) KeyringOption        { return func(k *Keyring) { k.Backend = b } }
func WithKeyringHome(h string) KeyringOption           { return func(k *Keyring) { k.Home = h } }
func WithKeyringLogger(l zerolog.Logger) KeyringOption { return func(k *Keyring) { k.Logger = l } }

// WithGas sets fee flags. adjustment only applies when gas is "auto".
func WithGas(prices, adjustment, gas string) KeyringOption {
	return func(k *Keyring) {
		k.GasPrices, k.GasAdjustment, k.Gas = prices, adjustment, gas
	}
}

// NewKeyring checks that daemon is on PATH unless a custom Runner is given.
func NewKeyring(daemon, chainID, node string, opts ...KeyringOption) (*Keyring, error) {
	if daemon == "" || chainID == "" || node == "" {
		return nil, fmt.Errorf("%w: daemon, chain id and node are required", ErrDaemonMissing)
	}
	k := &Keyring{
		Daemon:        daemon,
		ChainID:       chainID,
		Node:          node,
		Backend:       "test",
		Gas:           "auto",
		GasAdjustment: "1.4",
		Logger:        log.Logger,
	}
	for _, opt := range opts {
		opt(k)
	}
	if k.runner == nil {
		if _, err := exec.LookPath(daemon); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDaemonMissing, err)
		}
		k.runner = execRunner{}
	}
	return k, nil
}

// Show returns the bech32 address of key name.
func (k *Keyring) Show(ctx context.Context, name string) (string, error) {
	out, err := k.run(ctx, nil, k.keyArgs("keys", "show", name, "-a")...)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrKeyNotFound, name, err)
	}
	addr := strings.TrimSpace(string(out))
	if addr == "" {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return addr, nil
}

// Recover imports mnemonic under name and returns the derived address.
func (k *Keyring) Recover(ctx context.Context, name, mnemonic string) (string, error) {
	words := strings.Fields(mnemonic)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return "", fmt.Errorf("%w: %d words", ErrInvalidMnemonic, len(words))
	}
	stdin := []byte(strings.Join(words, " ") + "\n")
	if _, err := k.run(ctx, stdin, k.keyArgs("keys", "add", name, "--recover", "--output", "json")...); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return k.Show(ctx, name)
}

// EnsureKey returns the address of name, importing mnemonic first when the key is absent.
func (k *Keyring) EnsureKey(ctx context.Context, name, mnemonic string) (string, error) {
	addr, err := k.Show(ctx, name)
	if err == nil {
		return addr, nil
	}
	if mnemonic == "" {
		return "", err
	}
	k.Logger.Info().Str("key", name).Msg("importing key from recovery phrase")
	return k.Recover(ctx, name, mnemonic)
}

// Execute signs and broadcasts one MsgExecuteContract from key.
func (k *Keyring) Execute(ctx context.Context, from, contract string, msg []byte) (TxResponse, error) {
	args := append([]string{"tx", "wasm", "execute", contract, string(msg), "--from", from}, k.feeArgs(k.Gas)...)
	args = append(k.txArgs(args...), "--broadcast-mode", "sync", "-y")
	return k.broadcastOutput(k.run(ctx, nil, args...))
}

// ExecuteMultiple puts every message into one transaction: each message is generated
// unsigned, the bodies are merged, fees are summed, then the result is signed and broadcast.
func (k *Keyring) ExecuteMultiple(ctx context.Context, from, fromAddress string, msgs []chaindomain.ContractMsg) (TxResponse, error) {
	if len(msgs) == 0 {
		return TxResponse{}, fmt.Errorf("%w: no messages", ErrBadTxOutput)
	}

	var unsigned []map[string]interface{}
	for _, m := range msgs {
		args := append([]string{"tx", "wasm", "execute", m.Contract, string(m.Msg), "--from", fromAddress, "--generate-only"}, k.feeArgs(k.Gas)...)
		out, err := k.run(ctx, nil, k.txArgs(args...)...)
		if err != nil {
			return TxResponse{}, err
		}
		var tx map[string]interface{}
		if err := json.Unmarshal(out, &tx); err != nil {
			return TxResponse{}, fmt.Errorf("%w: generate-only: %v", ErrBadTxOutput, err)
		}
		unsigned = append(unsigned, tx)
	}

	merged, err := mergeTxs(unsigned)
	if err != nil {
		return TxResponse{}, err
	}
	unsignedFile, cleanup, err := writeTemp(merged)
	if err != nil {
		return TxResponse{}, err
	}
	defer cleanup()

	signed, err := k.run(ctx, nil, k.txArgs("tx", "sign", unsignedFile, "--from", from)...)
	if err != nil {
		return TxResponse{}, err
	}
	var signedTx map[string]interface{}
	if err := json.Unmarshal(signed, &signedTx); err != nil {
		return TxResponse{}, fmt.Errorf("%w: sign: %v", ErrBadTxOutput, err)
	}
	signedFile, cleanupSigned, err := writeTemp(signedTx)
	if err != nil {
		return TxResponse{}, err
	}
	defer cleanupSigned()

	return k.broadcastOutput(k.run(ctx, nil, k.txArgs("tx", "broadcast", signedFile, "--broadcast-mode", "sync")...))
}

func (k *Keyring) run(ctx context.Context, stdin []byte, args ...string) ([]byte, error) {
	start := time.Now()
	out, err := k.runner.Run(ctx, stdin, k.Daemon, args...)
	ev := k.Logger.Debug()
	if err != nil {
		ev = k.Logger.Error().Err(err)
	}
	ev.Str("daemon", k.Daemon).
		Str("command", strings.Join(args[:min(len(args), 3)], " ")).
		Str("duration", time.Since(start).String()).
		Msg("daemon command")
	return out, err
}

func (k *Keyring) keyArgs(args ...string) []string {
	args = append(args, "--keyring-backend", k.Backend)
	if k.Home != "" {
		args = append(args, "--home", k.Home)
	}
	return args
}

func (k *Keyring) txArgs(args ...string) []string {
	args = append(args, "--chain-id", k.ChainID, "--node", k.Node, "--output", "json")
	return k.keyArgs(args...)
}

func (k *Keyring) feeArgs(gas string) []string {
	args := []string{"--gas", gas}
	if gas == "auto" && k.GasAdjustment != "" {
		args = append(args, "--gas-adjustment", k.GasAdjustment)
	}
	if k.GasPrices != "" {
		args = append(args, "--gas-prices", k.GasPrices)
	}
	return args
}

func (k *Keyring) broadcastOutput(out []byte, err error) (TxResponse, error) {
	if err != nil {
		return TxResponse{}, err
	}
	var resp TxResponse
	if err := json.Unmarshal(out, &resp); err != nil {
		return TxResponse{}, fmt.Errorf("%w: broadcast: %v", ErrBadTxOutput, err)
	}
	if resp.Code != 0 {
		return resp, fmt.Errorf("%w: %s code %d: %s", chaindomain.ErrTxRejected, resp.Codespace, resp.Code, resp.RawLog)
	}
	if resp.TxHash == "" {
		return resp, fmt.Errorf("%w: broadcast returned no txhash", ErrBadTxOutput)
	}
	return resp, nil
}

// mergeTxs keeps the first transaction and appends the other bodies' messages to it.
// Gas limits and fee amounts are summed so the batch pays for every message.
func mergeTxs(txs []map[string]interface{}) (map[string]interface{}, error) {
	var (
		messages []interface{}
		gas      = decimal.Zero
		fees     = map[string]decimal.Decimal{}
		denoms   []string
	)
	for _, tx := range txs {
		body, ok := tx["body"].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: tx has no body", ErrBadTxOutput)
		}
		msgs, _ := body["messages"].([]interface{})
		messages = append(messages, msgs...)

		fee, err := txFee(tx)
		if err != nil {
			return nil, err
		}
		limit, err := decimal.NewFromString(fmt.Sprint(fee["gas_limit"]))
		if err != nil {
			return nil, fmt.Errorf("%w: gas_limit: %v", ErrBadTxOutput, err)
		}
		gas = gas.Add(limit)

		amounts, _ := fee["amount"].([]interface{})
		for _, a := range amounts {
			coin, _ := a.(map[string]interface{})
			denom, _ := coin["denom"].(string)
			amt, err := decimal.NewFromString(fmt.Sprint(coin["amount"]))
			if err != nil {
				return nil, fmt.Errorf("%w: fee amount: %v", ErrBadTxOutput, err)
			}
			if _, seen := fees[denom]; !seen {
				denoms = append(denoms, denom)
			}
			fees[denom] = fees[denom].Add(amt)
		}
	}

	merged := txs[0]
	merged["body"].(map[string]interface{})["messages"] = messages
	fee, _ := txFee(merged)
	fee["gas_limit"] = gas.String()
	coins := make([]interface{}, 0, len(denoms))
	for _, d := range denoms {
		coins = append(coins, map[string]interface{}{"denom": d, "amount": fees[d].String()})
	}
	fee["amount"] = coins
	return merged, nil
}

func txFee(tx map[string]interface{}) (map[string]interface{}, error) {
	authInfo, ok := tx["auth_info"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: tx has no auth_info", ErrBadTxOutput)
	}
	fee, ok := authInfo["fee"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: tx has no fee", ErrBadTxOutput)
	}
	return fee, nil
}

func writeTemp(tx map[string]interface{}) (string, func(), error) {
	b, err := json.Marshal(tx)
	if err != nil {
		return "", nil, fmt.Errorf("marshal tx: %w", err)
	}
	f, err := os.CreateTemp("", "selene-tx-*.json")
	if err != nil {
		return "", nil, fmt.Errorf("temp tx file: %w", err)
	}
	cleanup := func() { os.Remove(f.Name()) }
	if _, err := f.Write(b); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write tx file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close tx file: %w", err)
	}
	return f.Name(), cleanup, nil
}

package cosmwasm

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chaindomain "github.com/MMN3003/selene/src/chain/domain"
)

type call struct {
	args  []string
	stdin string
}

// fakeDaemon answers by matching the joined argument list against prefixes.
type fakeDaemon struct {
	calls     []call
	responses []fakeResponse
	files     map[string]string
}

type fakeResponse struct {
	prefix string
	out    string
	err    error
}

func (d *fakeDaemon) on(prefix, out string, err error) *fakeDaemon {
	d.responses = append(d.responses, fakeResponse{prefix, out, err})
	return d
}

func (d *fakeDaemon) Run(_ context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	d.calls = append(d.calls, call{args: args, stdin: string(stdin)})
	joined := strings.Join(args, " ")
	if len(args) > 2 && args[0] == "tx" && (args[1] == "sign" || args[1] == "broadcast") {
		b, err := os.ReadFile(args[2])
		if err == nil {
			if d.files == nil {
				d.files = map[string]string{}
			}
			d.files[args[1]] = string(b)
		}
	}
	for _, r := range d.responses {
		if strings.HasPrefix(joined, r.prefix) {
			return []byte(r.out), r.err
		}
	}
	return nil, errors.New("unexpected command: " + joined)
}

func testKeyring(t *testing.T, d *fakeDaemon) *Keyring {
	t.Helper()
	k, err := NewKeyring("archwayd", "constantine-3", "https://rpc.example:443",
		WithRunner(d),
		WithKeyringBackend("test"),
		WithGas("900000000000aconst", "1.5", "auto"),
		WithKeyringLogger(zerolog.Nop()),
	)
	require.NoError(t, err)
	return k
}

const phrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestEnsureKeyExisting(t *testing.T) {
	d := (&fakeDaemon{}).on("keys show bob -a", "archway1bob\n", nil)
	addr, err := testKeyring(t, d).EnsureKey(context.Background(), "bob", phrase)
	require.NoError(t, err)
	assert.Equal(t, "archway1bob", addr)
	require.Len(t, d.calls, 1)
	assert.Equal(t, []string{"keys", "show", "bob", "-a", "--keyring-backend", "test"}, d.calls[0].args)
}

func TestEnsureKeyRecovers(t *testing.T) {
	shows := 0
	d := &fakeDaemon{}
	d.on("keys add alice --recover", `{"name":"alice"}`, nil)
	k := testKeyring(t, d)
	k.runner = runnerFunc(func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
		if args[0] == "keys" && args[1] == "show" {
			shows++
			if shows == 1 {
				return nil, errors.New("alice.info: key not found")
			}
			return []byte("archway1alice"), nil
		}
		return d.Run(ctx, stdin, name, args...)
	})

	addr, err := k.EnsureKey(context.Background(), "alice", "  "+phrase+"  ")
	require.NoError(t, err)
	assert.Equal(t, "archway1alice", addr)
	require.Len(t, d.calls, 1)
	assert.Equal(t, phrase+"\n", d.calls[0].stdin)
}

func TestEnsureKeyWithoutPhrase(t *testing.T) {
	d := (&fakeDaemon{}).on("keys show", "", errors.New("not found"))
	_, err := testKeyring(t, d).EnsureKey(context.Background(), "carol", "")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRecoverRejectsMalformedPhrase(t *testing.T) {
	d := &fakeDaemon{}
	_, err := testKeyring(t, d).Recover(context.Background(), "bob", "only three words")
	require.ErrorIs(t, err, ErrInvalidMnemonic)
	assert.Empty(t, d.calls)
}

func TestExecute(t *testing.T) {
	d := (&fakeDaemon{}).on("tx wasm execute", `{"height":"0","txhash":"A1B2","code":0,"raw_log":"[]"}`, nil)
	resp, err := testKeyring(t, d).Execute(context.Background(), "bob", "archway1heur", []byte(`{"send":{}}`))
	require.NoError(t, err)
	assert.Equal(t, "A1B2", resp.TxHash)

	args := strings.Join(d.calls[0].args, " ")
	assert.True(t, strings.HasPrefix(args, `tx wasm execute archway1heur {"send":{}} --from bob --gas auto --gas-adjustment 1.5 --gas-prices 900000000000aconst`), args)
	assert.Contains(t, args, "--chain-id constantine-3 --node https://rpc.example:443 --output json")
	assert.Contains(t, args, "--broadcast-mode sync -y")
}

func TestExecuteRejectedAtCheckTx(t *testing.T) {
	d := (&fakeDaemon{}).on("tx wasm execute", `{"txhash":"FF","code":13,"codespace":"sdk","raw_log":"insufficient fee"}`, nil)
	_, err := testKeyring(t, d).Execute(context.Background(), "bob", "archway1heur", []byte(`{}`))
	require.ErrorIs(t, err, chaindomain.ErrTxRejected)
	assert.Contains(t, err.Error(), "insufficient fee")
}

func TestExecuteMultipleMergesBatch(t *testing.T) {
	gen := func(contract string) string {
		return `{"body":{"messages":[{"@type":"/cosmwasm.wasm.v1.MsgExecuteContract","contract":"` + contract + `"}],"memo":""},` +
			`"auth_info":{"signer_infos":[],"fee":{"amount":[{"denom":"aconst","amount":"100"}],"gas_limit":"200000"}},"signatures":[]}`
	}
	d := &fakeDaemon{}
	d.on("tx wasm execute archway1heur", gen("archway1heur"), nil)
	d.on("tx wasm execute archway1husd", gen("archway1husd"), nil)
	d.on("tx sign", `{"body":{},"auth_info":{},"signatures":["c2ln"]}`, nil)
	d.on("tx broadcast", `{"txhash":"BATCH","code":0}`, nil)

	resp, err := testKeyring(t, d).ExecuteMultiple(context.Background(), "faucet", "archway1faucet", []chaindomain.ContractMsg{
		{Contract: "archway1heur", Msg: []byte(`{"mint":{}}`)},
		{Contract: "archway1husd", Msg: []byte(`{"mint":{}}`)},
	})
	require.NoError(t, err)
	assert.Equal(t, "BATCH", resp.TxHash)
	require.Len(t, d.calls, 4)
	assert.Contains(t, d.calls[0].args, "--generate-only")
	assert.Contains(t, d.calls[0].args, "archway1faucet")

	var merged struct {
		Body struct {
			Messages []map[string]string `json:"messages"`
		} `json:"body"`
		AuthInfo struct {
			Fee struct {
				Amount   []map[string]string `json:"amount"`
				GasLimit string              `json:"gas_limit"`
			} `json:"fee"`
		} `json:"auth_info"`
	}
	require.NoError(t, json.Unmarshal([]byte(d.files["sign"]), &merged))
	require.Len(t, merged.Body.Messages, 2)
	assert.Equal(t, "archway1husd", merged.Body.Messages[1]["contract"])
	assert.Equal(t, "400000", merged.AuthInfo.Fee.GasLimit)
	assert.Equal(t, []map[string]string{{"denom": "aconst", "amount": "200"}}, merged.AuthInfo.Fee.Amount)
	assert.Contains(t, d.files["broadcast"], "c2ln")
}

func TestExecuteMultipleEmpty(t *testing.T) {
	_, err := testKeyring(t, &fakeDaemon{}).ExecuteMultiple(context.Background(), "faucet", "archway1faucet", nil)
	require.ErrorIs(t, err, ErrBadTxOutput)
}

func TestNewKeyringRequiresDaemon(t *testing.T) {
	_, err := NewKeyring("selene-no-such-daemon", "constantine-3", "https://rpc.example:443")
	require.ErrorIs(t, err, ErrDaemonMissing)

	_, err = NewKeyring("", "constantine-3", "https://rpc.example:443", WithRunner(&fakeDaemon{}))
	require.ErrorIs(t, err, ErrDaemonMissing)
}

type runnerFunc func(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error)

func (f runnerFunc) Run(ctx context.Context, stdin []byte, name string, args ...string) ([]byte, error) {
	return f(ctx, stdin, name, args...)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadFromEnv("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "archwayd", cfg.Chain.Daemon)
	assert.Equal(t, uint64(0), cfg.Market.MarketID)
	assert.Equal(t, uint32(10), cfg.Market.BookDepth)
	assert.Equal(t, 60*time.Second, cfg.Chain.TxTimeout)
	assert.Equal(t, []string{"bob", "alice"}, cfg.Accounts)
	assert.Equal(t, "1000", cfg.Faucet.Amount)
}

func TestLoadFromEnvFile(t *testing.T) {
	// godotenv never overrides the process environment, so start unset and restore afterwards
	for _, k := range []string{"MARKET_ID", "BOOK_DEPTH", "ACCOUNTS", "TX_TIMEOUT", "FAUCET_ACCOUNT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "selene.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"MARKET_ID=3\nBOOK_DEPTH=25\nACCOUNTS= trader , ,mm-bot\nTX_TIMEOUT=90s\nFAUCET_ACCOUNT=faucet\n"), 0o600))

	cfg, err := LoadFromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cfg.Market.MarketID)
	assert.Equal(t, uint32(25), cfg.Market.BookDepth)
	assert.Equal(t, []string{"trader", "mm-bot"}, cfg.Accounts)
	assert.Equal(t, 90*time.Second, cfg.Chain.TxTimeout)
	assert.Equal(t, "faucet", cfg.Faucet.Account)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := LoadFromEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv("MARKET_ID", "-1")
	_, err = LoadFromEnv("")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	t.Setenv("MARKETPLACE_ADDRESS", "")
	t.Setenv("ACCOUNTS", "")
	cfg, err := LoadFromEnv("")
	require.NoError(t, err)
	err = cfg.Validate()
	require.ErrorIs(t, err, ErrMissingConfig)
	assert.Contains(t, err.Error(), "ACCOUNTS, MARKETPLACE_ADDRESS")

	t.Setenv("MARKETPLACE_ADDRESS", "archway1market")
	t.Setenv("ACCOUNTS", "bob")
	t.Setenv("QUOTE_TOKEN_ADDRESS", "archway1same")
	t.Setenv("BASE_TOKEN_ADDRESS", "archway1same")
	cfg, err = LoadFromEnv("")
	require.NoError(t, err)
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestMnemonic(t *testing.T) {
	t.Setenv("SELENE_MNEMONIC_MM_BOT", "word list")
	cfg := &Config{}
	assert.Equal(t, "word list", cfg.Mnemonic("mm-bot"))
	assert.Equal(t, "", cfg.Mnemonic("nobody"))
}

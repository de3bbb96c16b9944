package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Errors
var (
	ErrMissingConfig = errors.New("missing required configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

const mnemonicPrefix = "SELENE_MNEMONIC_"

type Config struct {
	Env           string
	LogLevel      string
	Chain         ChainConfig
	Market        MarketConfig
	Accounts      []string
	Faucet        FaucetConfig
	ExplorerTxURL string
}

type ChainConfig struct {
	RPCURL         string
	ChainID        string
	Daemon         string
	KeyringBackend string
	KeyringHome    string
	GasPrices      string
	GasAdjustment  string
	GasLimit       string
	NativeDenom    string
	TxTimeout      time.Duration
}

type MarketConfig struct {
	MarketplaceAddress string
	MarketID           uint64
	BaseTokenAddress   string
	QuoteTokenAddress  string
	BookDepth          uint32
}

type FaucetConfig struct {
	Account string
	Amount  string
}

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// envFile is loaded first when it exists; an explicitly named file that is missing is an error.
func LoadFromEnv(envFile string) (*Config, error) {
	if envFile == "" {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("%w: env file %s: %v", ErrInvalidConfig, envFile, err)
	}

	marketID, err := strconv.ParseUint(getEnv("MARKET_ID", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: MARKET_ID: %v", ErrInvalidConfig, err)
	}
	depth, err := strconv.ParseUint(getEnv("BOOK_DEPTH", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: BOOK_DEPTH: %v", ErrInvalidConfig, err)
	}
	txTimeout, err := time.ParseDuration(getEnv("TX_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("%w: TX_TIMEOUT: %v", ErrInvalidConfig, err)
	}

	return &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "warn"),
		Chain: ChainConfig{
			RPCURL:         getEnv("CHAIN_RPC_URL", "https://rpc.constantine.archway.tech:443"),
			ChainID:        getEnv("CHAIN_ID", "constantine-3"),
			Daemon:         getEnv("CHAIN_DAEMON", "archwayd"),
			KeyringBackend: getEnv("KEYRING_BACKEND", "test"),
			KeyringHome:    getEnv("KEYRING_HOME", ""),
			GasPrices:      getEnv("GAS_PRICES", "900000000000aconst"),
			GasAdjustment:  getEnv("GAS_ADJUSTMENT", "1.4"),
			GasLimit:       getEnv("GAS_LIMIT", "auto"),
			NativeDenom:    getEnv("NATIVE_DENOM", "aconst"),
			TxTimeout:      txTimeout,
		},
		Market: MarketConfig{
			MarketplaceAddress: getEnv("MARKETPLACE_ADDRESS", "archway19xpqgjr97ts34cgzzgh9pyprke8z5f94xv20wjgse5wg8uvt09asmkny8r"),
			MarketID:           marketID,
			BaseTokenAddress:   getEnv("BASE_TOKEN_ADDRESS", "archway1wn65e09977sznhadc809n3t7qdzvz8qlp86ldmgmtg0j7v0778psxffrfs"),
			QuoteTokenAddress:  getEnv("QUOTE_TOKEN_ADDRESS", "archway15ma5wg7cctsf5up968dl76k0pewchq57nmrx60qjaev4jpf4wwcsjgaef3"),
			BookDepth:          uint32(depth),
		},
		Accounts: splitList(getEnv("ACCOUNTS", "bob,alice")),
		Faucet: FaucetConfig{
			Account: getEnv("FAUCET_ACCOUNT", ""),
			Amount:  getEnv("FAUCET_AMOUNT", "1000"),
		},
		ExplorerTxURL: getEnv("EXPLORER_TX_URL", "https://testnet.mintscan.io/archway-testnet/txs/%s"),
	}, nil
}

// Validate reports everything that would stop the client from trading.
func (c *Config) Validate() error {
	var missing []string
	for key, v := range map[string]string{
		"CHAIN_RPC_URL":       c.Chain.RPCURL,
		"CHAIN_ID":            c.Chain.ChainID,
		"CHAIN_DAEMON":        c.Chain.Daemon,
		"MARKETPLACE_ADDRESS": c.Market.MarketplaceAddress,
		"BASE_TOKEN_ADDRESS":  c.Market.BaseTokenAddress,
		"QUOTE_TOKEN_ADDRESS": c.Market.QuoteTokenAddress,
	} {
		if v == "" {
			missing = append(missing, key)
		}
	}
	if len(c.Accounts) == 0 {
		missing = append(missing, "ACCOUNTS")
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	if c.Market.BaseTokenAddress == c.Market.QuoteTokenAddress {
		return fmt.Errorf("%w: base and quote token are the same contract", ErrInvalidConfig)
	}
	if c.Market.BookDepth == 0 {
		return fmt.Errorf("%w: BOOK_DEPTH must be positive", ErrInvalidConfig)
	}
	if c.ExplorerTxURL != "" && strings.Count(c.ExplorerTxURL, "%s") > 1 {
		return fmt.Errorf("%w: EXPLORER_TX_URL takes a single %%s", ErrInvalidConfig)
	}
	return nil
}

// Mnemonic returns the recovery phrase for account from SELENE_MNEMONIC_<ACCOUNT>, or "".
func (c *Config) Mnemonic(account string) string {
	key := mnemonicPrefix + strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(account))
	return os.Getenv(key)
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

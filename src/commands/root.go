package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MMN3003/selene/src/config"
	"github.com/MMN3003/selene/src/logger"
)

var (
	cfg  *config.Config
	logg *logger.Logger
)

// global flags
var envFile, logLevel, accountName string

var RootCmd = &cobra.Command{
	Use:   "selene",
	Short: "Trade on the Selene order book from the terminal",
	Long: `selene places and cancels limit and market orders on a CosmWasm order book.
Without a subcommand it starts the interactive session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFromEnv(envFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logg = logger.New(cfg.Env, cfg.LogLevel).WithField("session", uuid.NewString())
		return nil
	},
	RunE: runInteractive,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load configuration from this file instead of ./.env")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().StringVar(&accountName, "account", "", "Keyring account to use; prompts when empty")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), accountName, true)
	if err != nil {
		return err
	}
	if err := a.session().Run(cmd.Context()); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	a.render.Info("Bye")
	return nil
}

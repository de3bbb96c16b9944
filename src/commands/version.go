package commands

import (
	"fmt"
	"runtime"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	tmversion "github.com/tendermint/tendermint/version"
)

// Version is set at build time with -ldflags "-X github.com/MMN3003/selene/src/commands.Version=...".
var Version = "dev"

var verbose bool

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			values, _ := json.MarshalIndent(struct {
				Selene     string `json:"selene"`
				Go         string `json:"go"`
				Tendermint string `json:"tendermint_rpc"`
			}{
				Selene:     Version,
				Go:         runtime.Version(),
				Tendermint: tmversion.TMCoreSemVer,
			}, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(values))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		}
	},
}

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show version details as JSON")
}

package cmd

import (
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd creates the root command for duopool. It is called once in the
// main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "duopool",
		Short: "Two-asset liquidity pool engine",
		Long: `duopool runs a two-asset liquidity pool with linear reserve-ratio pricing:
paired deposits into shared reserves, operator-driven proportional withdrawal,
per-mille swap fees retained as sweepable leftover, and a global pause switch.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "logging level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("config", "", "path to a config file with engine defaults")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.AddCommand(
		NewRunCmd(),
		NewVersionCmd(),
	)
	return rootCmd
}

// newLogger builds the process logger from the --log-level flag.
func newLogger() (log.Logger, error) {
	filter, err := log.ParseLogLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	return log.NewLogger(os.Stderr, log.FilterOption(filter)), nil
}

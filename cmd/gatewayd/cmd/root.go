package cmd

import (
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/productscience/gateway/config"
)

const flagConfig = "config"

// NewRootCmd creates the gatewayd command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "gatewayd",
		Short:        "Token sale and staking pool gateway",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(flagConfig, "", "path to the config file; defaults to $"+config.EnvConfigPath+" or config.yaml")

	rootCmd.AddCommand(
		SimulateCmd(),
		ScheduleCmd(),
		ConfigCmd(),
	)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*config.Manager, log.Logger, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	manager, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger, err := manager.GetConfig().Log.Logger(os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return manager, logger, nil
}

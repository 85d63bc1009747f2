package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/productscience/gateway/simulation"
	gwtypes "github.com/productscience/gateway/x/gateway/types"
)

const (
	flagStep    = "step"
	flagHorizon = "horizon"
)

func ScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the release ratio of the configured sale over time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			genesis, err := manager.GetConfig().Sale.Genesis()
			if err != nil {
				return err
			}
			strategies, err := gwtypes.UnpackDistributionStrategies(genesis.Config.DistributionStrategies)
			if err != nil {
				return err
			}

			step, _ := cmd.Flags().GetUint64(flagStep)
			horizon, _ := cmd.Flags().GetUint64(flagHorizon)
			from := genesis.Config.Finish
			out := cmd.OutOrStdout()
			for _, p := range simulation.ReleaseSchedule(strategies, from, from+horizon, step) {
				fmt.Fprintf(out, "%10d %s withdraw_open=%t\n", p.Time, p.Ratio, p.WithdrawOpen)
			}
			return nil
		},
	}
	cmd.Flags().Uint64(flagStep, 86400, "seconds between samples")
	cmd.Flags().Uint64(flagHorizon, 86400*365, "seconds after the sale finish to sample")
	return cmd
}

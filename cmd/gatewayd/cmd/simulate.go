package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/productscience/gateway/simulation"
)

const flagScenario = "scenario"

func SimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a scenario of pool and sale messages against in-memory state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			scenarioPath, _ := cmd.Flags().GetString(flagScenario)
			scenario, err := simulation.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}

			app, err := simulation.NewApp(logger, manager.GetConfig())
			if err != nil {
				return err
			}
			runner := simulation.NewRunner(app)
			outcomes, err := runner.Run(scenario)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s\n", runner.RunID())
			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintf(out, "%10d %-15s %-12s FAILED %v\n", o.Step.At, o.Step.Action, o.Step.Account, o.Err)
					continue
				}
				fmt.Fprintf(out, "%10d %-15s %-12s %s\n", o.Step.At, o.Step.Action, o.Step.Account, o.Result)
			}
			fmt.Fprintf(out, "\n%d steps, %d failed\n", len(outcomes), failed)
			for _, line := range runner.Balances(scenario.Accounts) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().String(flagScenario, "scenario.yaml", "path to the scenario file")
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/productscience/gateway/config"
)

const flagOutput = "output"

// ConfigCmd writes the effective configuration, file and environment merged,
// to a new file.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-config",
		Short: "Write the effective configuration to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg := manager.GetConfig()
			if cfg.Pool.Owner != "" {
				if _, err := cfg.Pool.Genesis(); err != nil {
					return fmt.Errorf("pool: %w", err)
				}
			}
			if cfg.Sale.Owner != "" {
				if _, err := cfg.Sale.Genesis(); err != nil {
					return fmt.Errorf("sale: %w", err)
				}
			}
			output, _ := cmd.Flags().GetString(flagOutput)
			manager.WriterProvider = config.NewFileWriteCloserProvider(output)
			if err := manager.Write(); err != nil {
				return err
			}
			cmd.PrintErrf("Effective config written to %q\n", output)
			return nil
		},
	}
	cmd.Flags().String(flagOutput, "effective.yaml", "where to write the config")
	return cmd
}

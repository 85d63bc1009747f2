package cmd_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/productscience/gateway/cmd/gatewayd/cmd"
	"github.com/productscience/gateway/simulation"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(t *testing.T, dir string) string {
	return writeFile(t, dir, "config.yaml", fmt.Sprintf(`
log:
    level: error
sale:
    owner: %[1]s
    beneficiary: %[2]s
    start: 1000
    finish: 2000
    price: "0.1"
    amount: "1000000"
    input_denom: uusdc
    output_denom: upylon
    distribution:
        - type: vesting
          release_start_time: 2000
          release_finish_time: 2400
          release_amount: "1"
`, simulation.Address("owner"), simulation.Address("treasury")))
}

func execute(t *testing.T, args ...string) (string, error) {
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "simulate")
	require.Contains(t, out, "schedule")
}

func TestSimulate(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	scenario := writeFile(t, dir, "scenario.yaml", `
accounts:
  - name: alice
    balances: 1000uusdc
steps:
  - {at: 1500, action: swap_deposit, account: alice, amount: 1000uusdc}
  - {at: 2200, action: swap_claim, account: alice}
  - {at: 2200, action: pool_update, account: alice}
`)

	out, err := execute(t, "simulate", "--config", cfg, "--scenario", scenario)
	require.NoError(t, err)
	require.Contains(t, out, "swapped 1000 for 10000")
	require.Contains(t, out, "claimed 5000")
	require.Contains(t, out, "3 steps, 1 failed")
	require.Contains(t, out, "alice: 5000upylon")
}

func TestSchedule(t *testing.T) {
	cfg := testConfig(t, t.TempDir())

	out, err := execute(t, "schedule", "--config", cfg, "--step", "100")
	require.NoError(t, err)
	require.Contains(t, out, "2200 0.500000000000000000 withdraw_open=false")
	require.Contains(t, out, "2400 1.000000000000000000 withdraw_open=false")
	// sampling stops once everything is released
	require.Equal(t, 5, strings.Count(out, "\n"))
}

func TestExportConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)
	output := filepath.Join(dir, "effective.yaml")
	t.Setenv("GATEWAY_SALE__PRICE", "0.2")

	_, err := execute(t, "export-config", "--config", cfg, "--output", output)
	require.NoError(t, err)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(written), "price: \"0.2\"")
}

package simulation_test

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/productscience/gateway/config"
	"github.com/productscience/gateway/simulation"
	gwtypes "github.com/productscience/gateway/x/gateway/types"
	pooltypes "github.com/productscience/gateway/x/pool/types"
	swaptypes "github.com/productscience/gateway/x/swap/types"
)

func testConfig() *config.Config {
	owner := simulation.Address("owner")
	return &config.Config{
		Pool: config.PoolConfig{
			Owner:        owner,
			ShareDenom:   "ushare",
			RewardDenom:  "upylon",
			Start:        1000,
			Period:       100,
			RewardAmount: "1000",
		},
		Sale: config.SaleConfig{
			Owner:       owner,
			Beneficiary: simulation.Address("treasury"),
			Start:       1000,
			Finish:      2000,
			Price:       "0.1",
			Amount:      "1000000",
			InputDenom:  "uusdc",
			OutputDenom: "upylon",
			Distribution: []config.DistributionConfig{
				{Type: "lockup", ReleaseTime: 2100, ReleaseAmount: "1"},
			},
		},
	}
}

const testScenario = `
accounts:
  - name: alice
    balances: 10000uusdc,5000ushare
  - name: bob
    balances: 1000ushare
steps:
  - {at: 1000, action: pool_deposit, account: alice, amount: "1000"}
  - {at: 1000, action: swap_deposit, account: alice, amount: 1000uusdc}
  - {at: 1010, action: pool_claimable, account: alice}
  - {at: 1050, action: pool_deposit, account: bob, amount: "2000"}
  - {at: 2050, action: swap_claim, account: alice}
  - {at: 2100, action: swap_claim, account: alice}
  - {at: 2100, action: pool_claim, account: alice}
  - {at: 2100, action: swap_withdraw, account: alice, amount: "1"}
  - {at: 2100, action: fly, account: alice}
`

func TestRunScenario(t *testing.T) {
	app, err := simulation.NewApp(log.NewNopLogger(), testConfig())
	require.NoError(t, err)
	scenario, err := simulation.ParseScenario([]byte(testScenario))
	require.NoError(t, err)

	runner := simulation.NewRunner(app)
	require.NotEmpty(t, runner.RunID())
	outcomes, err := runner.Run(scenario)
	require.NoError(t, err)
	require.Len(t, outcomes, len(scenario.Steps))

	expect := []string{
		"staked 1000",
		"swapped 1000 for 10000",
		"claimable 100",
		"",
		"claimed 0",
		"claimed 10000",
		"claimed 1000",
		"",
		"",
	}
	for i, o := range outcomes {
		require.Equal(t, expect[i], o.Result, "step %d", i)
	}
	require.ErrorIs(t, outcomes[3].Err, gwtypes.ErrTransferFailed)
	require.ErrorIs(t, outcomes[7].Err, swaptypes.ErrNotAllowWithdrawAfterClaim)
	require.ErrorContains(t, outcomes[8].Err, "unknown action")

	require.Equal(t, []string{
		"alice: 11000upylon,4000ushare,9000uusdc",
		"bob: 1000ushare",
	}, runner.Balances(scenario.Accounts))

	// bob's failed deposit left nothing behind
	require.True(t, app.Pool.GetStaker(app.At(2100), simulation.Address("bob")).IsEmpty())
}

func TestSectionsAreOptional(t *testing.T) {
	cfg := testConfig()
	cfg.Pool = config.PoolConfig{}

	app, err := simulation.NewApp(log.NewNopLogger(), cfg)
	require.NoError(t, err)

	_, err = app.PoolMsgs.Update(app.At(1000), &pooltypes.MsgUpdate{Sender: simulation.Address("alice")})
	require.ErrorIs(t, err, pooltypes.ErrConfigNotFound)
}

func TestParseScenarioRejectsTimeTravel(t *testing.T) {
	_, err := simulation.ParseScenario([]byte(`
steps:
  - {at: 20, action: pool_update, account: alice}
  - {at: 10, action: pool_update, account: alice}
`))
	require.ErrorContains(t, err, "before step")

	_, err = simulation.ParseScenario([]byte(`steps: [{at: 1, action: pool_update}]`))
	require.ErrorContains(t, err, "no account")
}

func TestAddress(t *testing.T) {
	alice := simulation.Address("alice")
	require.Equal(t, alice, simulation.Address("alice"))
	require.Equal(t, alice, simulation.Address(alice))
	require.NotEqual(t, alice, simulation.Address("bob"))
}

func TestReleaseSchedule(t *testing.T) {
	strategies := []gwtypes.DistributionStrategy{
		gwtypes.LockupStrategy{ReleaseTime: 2100, ReleaseAmount: math.LegacyNewDecWithPrec(5, 1)},
		gwtypes.VestingStrategy{ReleaseStartTime: 2100, ReleaseFinishTime: 2300, ReleaseAmount: math.LegacyNewDecWithPrec(5, 1)},
	}

	points := simulation.ReleaseSchedule(strategies, 2000, 3000, 100)
	require.Len(t, points, 4)
	expect := []struct {
		time  uint64
		ratio math.LegacyDec
		open  bool
	}{
		{2000, math.LegacyZeroDec(), true},
		{2100, math.LegacyNewDecWithPrec(5, 1), true},
		{2200, math.LegacyNewDecWithPrec(75, 2), false},
		{2300, math.LegacyOneDec(), false},
	}
	for i, e := range expect {
		require.Equal(t, e.time, points[i].Time)
		require.True(t, e.ratio.Equal(points[i].Ratio), "point %d: %s", i, points[i].Ratio)
		require.Equal(t, e.open, points[i].WithdrawOpen)
	}

	points = simulation.ReleaseSchedule(strategies, 2000, 2150, 100)
	require.Len(t, points, 3)
	require.Equal(t, uint64(2150), points[2].Time)
}

func TestPoolTransferMovesShares(t *testing.T) {
	app, err := simulation.NewApp(log.NewNopLogger(), testConfig())
	require.NoError(t, err)
	scenario, err := simulation.ParseScenario([]byte(`
accounts:
  - name: alice
    balances: 1000ushare
steps:
  - {at: 1000, action: pool_deposit, account: alice, amount: "1000"}
  - {at: 1050, action: pool_transfer, account: alice, target: bob, amount: "400"}
  - {at: 1100, action: pool_claimable, account: bob}
  - {at: 1100, action: pool_transfer, account: bob, target: alice, amount: "401"}
`))
	require.NoError(t, err)

	outcomes, err := simulation.NewRunner(app).Run(scenario)
	require.NoError(t, err)
	require.Equal(t, "moved 400", outcomes[1].Result)
	// bob held 400 of 1000 for the last 50s at 10 per second
	require.Equal(t, "claimable 200", outcomes[2].Result)
	require.ErrorIs(t, outcomes[3].Err, pooltypes.ErrTransferAmountExceeded)

	balance, err := app.Pool.ShareBalance(app.At(1100), &pooltypes.QueryShareBalanceRequest{Address: simulation.Address("bob")})
	require.NoError(t, err)
	require.True(t, balance.Balance.Equal(math.NewInt(400)))
}

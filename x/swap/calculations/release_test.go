package calculations_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/calculations"
	"github.com/productscience/gateway/x/swap/types"
)

func lockupThenVesting() []gwtypes.DistributionStrategy {
	return []gwtypes.DistributionStrategy{
		gwtypes.LockupStrategy{ReleaseTime: 100, ReleaseAmount: math.LegacyNewDecWithPrec(3, 1)},
		gwtypes.VestingStrategy{ReleaseStartTime: 200, ReleaseFinishTime: 300, ReleaseAmount: math.LegacyNewDecWithPrec(7, 1)},
	}
}

func buyer(out, claimed int64) types.User {
	user := types.NewUser()
	user.SwappedOut = math.NewInt(out)
	user.SwappedOutClaimed = math.NewInt(claimed)
	return user
}

func TestReleaseRatioAt(t *testing.T) {
	strategies := lockupThenVesting()

	tests := []struct {
		at   uint64
		want math.LegacyDec
	}{
		{at: 50, want: math.LegacyZeroDec()},
		{at: 100, want: math.LegacyNewDecWithPrec(3, 1)},
		{at: 250, want: math.LegacyNewDecWithPrec(65, 2)},
		{at: 300, want: math.LegacyOneDec()},
		{at: 1000, want: math.LegacyOneDec()},
	}
	for _, tt := range tests {
		got := calculations.ReleaseRatioAt(strategies, tt.at)
		require.True(t, tt.want.Equal(got), "at %d: want %s, got %s", tt.at, tt.want, got)
	}
}

func TestReleaseRatioIsOneWhenFulfilledEvenIfFractionsFallShort(t *testing.T) {
	strategies := []gwtypes.DistributionStrategy{
		gwtypes.LockupStrategy{ReleaseTime: 10, ReleaseAmount: math.LegacyNewDecWithPrec(5, 1)},
	}
	require.True(t, calculations.ReleaseRatioAt(strategies, 9).IsZero())
	require.True(t, math.LegacyOneDec().Equal(calculations.ReleaseRatioAt(strategies, 10)))
	require.True(t, math.LegacyOneDec().Equal(calculations.ReleaseRatioAt(nil, 0)))
}

func TestClaimableTokens(t *testing.T) {
	strategies := lockupThenVesting()

	claimable, err := calculations.ClaimableTokens(strategies, buyer(1000, 0), 250)
	require.NoError(t, err)
	require.Equal(t, int64(650), claimable.Int64())

	claimable, err = calculations.ClaimableTokens(strategies, buyer(1000, 650), 250)
	require.NoError(t, err)
	require.True(t, claimable.IsZero())

	claimable, err = calculations.ClaimableTokens(strategies, buyer(1000, 650), 300)
	require.NoError(t, err)
	require.Equal(t, int64(350), claimable.Int64())

	_, err = calculations.ClaimableTokens(strategies, buyer(1000, 400), 150)
	require.ErrorIs(t, err, types.ErrNegativeClaimable)
}

func TestWithdrawOpen(t *testing.T) {
	strategies := lockupThenVesting()

	require.True(t, calculations.WithdrawOpen(strategies, 100))
	require.True(t, calculations.WithdrawOpen(strategies, 200))
	require.False(t, calculations.WithdrawOpen(strategies, 201))
	require.False(t, calculations.WithdrawOpen(nil, 0))
}

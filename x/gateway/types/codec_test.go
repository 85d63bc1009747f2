package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/productscience/gateway/x/gateway/types"
)

type storedSale struct {
	Window        types.TimeRanges
	Cap           *types.CapStrategyConfig
	Unlimited     *types.CapStrategyConfig
	Distributions []types.DistributionStrategyConfig
}

func TestStoreCodecRoundTrip(t *testing.T) {
	cdc := types.NewStoreCodec()
	in := storedSale{
		Window: types.TimeRanges{
			types.NewTimeRange(100, 200, true),
			types.NewTimeRange(300, types.OpenEnded, false),
		},
		Cap: &types.CapStrategyConfig{GovLinear: &types.GovLinearCap{
			Contract:       "stake",
			CapStart:       math.NewInt(10),
			CapWeight:      math.LegacyMustNewDecFromStr("0.5"),
			MinStakeAmount: intPtr(5),
		}},
		Unlimited: &types.CapStrategyConfig{Fixed: &types.FixedCap{}},
		Distributions: []types.DistributionStrategyConfig{
			{Lockup: &types.LockupStrategy{ReleaseTime: 500, ReleaseAmount: math.LegacyMustNewDecFromStr("0.25")}},
		},
	}

	var out storedSale
	cdc.MustUnmarshal(cdc.MustMarshal(&in), &out)

	require.Equal(t, in.Window, out.Window)
	require.NotNil(t, out.Cap.GovLinear)
	require.Nil(t, out.Cap.GovLinear.MaxStakeAmount)
	require.True(t, out.Cap.GovLinear.MinStakeAmount.Equal(math.NewInt(5)))
	require.True(t, out.Cap.GovLinear.CapWeight.Equal(math.LegacyMustNewDecFromStr("0.5")))
	require.NotNil(t, out.Unlimited.Fixed)
	require.Nil(t, out.Unlimited.Fixed.MaxUserCap)
	require.Len(t, out.Distributions, 1)
	require.Nil(t, out.Distributions[0].Vesting)
	require.Equal(t, uint64(500), out.Distributions[0].Lockup.ReleaseTime)
}

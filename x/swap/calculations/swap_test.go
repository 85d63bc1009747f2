package calculations_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/productscience/gateway/x/swap/calculations"
	"github.com/productscience/gateway/x/swap/types"
)

func TestSwappedOut(t *testing.T) {
	tests := []struct {
		name  string
		in    int64
		price math.LegacyDec
		want  int64
	}{
		{name: "price below one", in: 1000, price: math.LegacyNewDecWithPrec(1, 1), want: 10000},
		{name: "price above one", in: 1000, price: math.LegacyNewDec(4), want: 250},
		{name: "rounds down", in: 10, price: math.LegacyNewDec(3), want: 3},
		{name: "fractional price", in: 1_000_000, price: math.LegacyMustNewDecFromStr("0.03"), want: 33_333_333},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, calculations.SwappedOut(math.NewInt(tt.in), tt.price).Int64())
		})
	}
}

func TestWithdrawAmount(t *testing.T) {
	state := types.NewState(math.NewInt(1000), math.NewInt(10000))

	// 1000 - floor(1000*10000/11000) = 1000 - 909
	refund, err := calculations.WithdrawAmount(state, math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, int64(91), refund.Int64())

	refund, err = calculations.WithdrawAmount(state, math.ZeroInt())
	require.NoError(t, err)
	require.True(t, refund.IsZero())
}

func TestWithdrawAmountOnEmptyCurve(t *testing.T) {
	_, err := calculations.WithdrawAmount(types.NewState(math.ZeroInt(), math.ZeroInt()), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrEmptyLiquidity)

	refund, err := calculations.WithdrawAmount(types.NewState(math.ZeroInt(), math.ZeroInt()), math.NewInt(10))
	require.NoError(t, err)
	require.True(t, refund.IsZero())
}

func TestWithdrawIsAlwaysPenalized(t *testing.T) {
	price := math.LegacyNewDecWithPrec(25, 2)
	for _, size := range []int64{1_000, 77_777, 10_000_000} {
		state := types.NewState(price.MulInt64(size).TruncateInt(), math.NewInt(size))
		for _, out := range []int64{size / 10, size / 3, size / 2, size} {
			refund, err := calculations.WithdrawAmount(state, math.NewInt(out))
			require.NoError(t, err)
			principal := calculations.PrincipalOf(math.NewInt(out), price)
			require.True(t, refund.LT(principal), "size %d out %d: refund %s, principal %s", size, out, refund, principal)

			penalty, err := calculations.Penalty(refund, math.NewInt(out), price)
			require.NoError(t, err)
			require.True(t, penalty.IsPositive())
			require.True(t, refund.Add(penalty).Equal(principal))
		}
	}
}

func TestPenaltyRejectsOverpricedRefund(t *testing.T) {
	_, err := calculations.Penalty(math.NewInt(11), math.NewInt(100), math.LegacyNewDecWithPrec(1, 1))
	require.ErrorIs(t, err, types.ErrInvalidWithdrawPricing)
}

func TestCurrentPrice(t *testing.T) {
	price, err := calculations.CurrentPrice(types.NewState(math.NewInt(1000), math.NewInt(10000)))
	require.NoError(t, err)
	require.Equal(t, "0.100000000000000000", price.String())

	_, err = calculations.CurrentPrice(types.NewState(math.NewInt(1000), math.ZeroInt()))
	require.ErrorIs(t, err, types.ErrEmptyLiquidity)
}

func TestWithdrawMovesPriceDown(t *testing.T) {
	state := types.NewState(math.NewInt(1_000_000), math.NewInt(10_000_000))
	before, err := calculations.CurrentPrice(state)
	require.NoError(t, err)

	dy := math.NewInt(500_000)
	refund, err := calculations.WithdrawAmount(state, dy)
	require.NoError(t, err)
	state.XLiquidity = state.XLiquidity.Sub(refund)
	state.YLiquidity = state.YLiquidity.Add(dy)

	after, err := calculations.CurrentPrice(state)
	require.NoError(t, err)
	require.True(t, after.LT(before))
}

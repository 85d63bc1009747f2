package tax_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/productscience/gateway/x/gateway/tax"
)

func TestDeductTax(t *testing.T) {
	deductor, err := tax.NewDeductor(math.LegacyNewDecWithPrec(1, 2), math.NewInt(1_000_000), "uusd")
	require.NoError(t, err)

	tests := []struct {
		name string
		coin sdk.Coin
		want math.Int
	}{
		{name: "proportional", coin: sdk.NewInt64Coin("uusd", 1010), want: math.NewInt(1000)},
		{name: "rounds tax up in favour of the host", coin: sdk.NewInt64Coin("uusd", 1000), want: math.NewInt(990)},
		{name: "capped", coin: sdk.NewInt64Coin("uusd", 1_000_000_000), want: math.NewInt(999_000_000)},
		{name: "untaxed denom", coin: sdk.NewInt64Coin("upylon", 1000), want: math.NewInt(1000)},
		{name: "zero amount", coin: sdk.NewInt64Coin("uusd", 0), want: math.NewInt(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := deductor.DeductTax(context.Background(), tt.coin)
			require.NoError(t, err)
			require.Equal(t, tt.coin.Denom, got.Denom)
			require.True(t, tt.want.Equal(got.Amount), "want %s, got %s", tt.want, got.Amount)
		})
	}
}

func TestNoTax(t *testing.T) {
	coin := sdk.NewInt64Coin("uusd", 12345)
	got, err := tax.NoTax().DeductTax(context.Background(), coin)
	require.NoError(t, err)
	require.Equal(t, coin, got)
}

func TestNewDeductorRejectsNegativeRate(t *testing.T) {
	_, err := tax.NewDeductor(math.LegacyNewDec(-1), math.ZeroInt(), "uusd")
	require.Error(t, err)
}

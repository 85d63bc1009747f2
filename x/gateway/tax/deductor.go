package tax

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/gateway/x/gateway/types"
)

var _ types.TaxKeeper = Deductor{}

// Deductor charges a proportional tax, bounded by Cap, on transfers of the
// taxed denoms. The tax is taken out of the transferred amount so that
// amount = sent + tax and tax = sent * rate.
type Deductor struct {
	Rate   math.LegacyDec
	Cap    math.Int
	denoms map[string]struct{}
}

func NewDeductor(rate math.LegacyDec, cap math.Int, denoms ...string) (Deductor, error) {
	if rate.IsNil() || rate.IsNegative() {
		return Deductor{}, errorsmod.Wrapf(types.ErrTaxDeduction, "invalid tax rate %s", rate)
	}
	if cap.IsNil() || cap.IsNegative() {
		return Deductor{}, errorsmod.Wrapf(types.ErrTaxDeduction, "invalid tax cap %s", cap)
	}
	set := make(map[string]struct{}, len(denoms))
	for _, d := range denoms {
		set[d] = struct{}{}
	}
	return Deductor{Rate: rate, Cap: cap, denoms: set}, nil
}

// NoTax passes every coin through unchanged.
func NoTax() Deductor {
	return Deductor{Rate: math.LegacyZeroDec(), Cap: math.ZeroInt()}
}

func (d Deductor) ComputeTax(coin sdk.Coin) math.Int {
	if _, ok := d.denoms[coin.Denom]; !ok || !coin.Amount.IsPositive() || d.Rate.IsZero() {
		return math.ZeroInt()
	}
	net := math.LegacyNewDecFromInt(coin.Amount).Quo(math.LegacyOneDec().Add(d.Rate)).TruncateInt()
	return math.MinInt(coin.Amount.Sub(net), d.Cap)
}

func (d Deductor) DeductTax(_ context.Context, coin sdk.Coin) (sdk.Coin, error) {
	tax := d.ComputeTax(coin)
	if tax.IsZero() {
		return coin, nil
	}
	return sdk.NewCoin(coin.Denom, coin.Amount.Sub(tax)), nil
}

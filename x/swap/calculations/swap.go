package calculations

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/productscience/gateway/x/swap/types"
)

var decimalPrecision = math.NewIntWithDecimal(1, math.LegacyPrecision)

// SwappedOut converts input units into output units at price, rounding down.
func SwappedOut(swappedIn math.Int, price math.LegacyDec) math.Int {
	return swappedIn.Mul(decimalPrecision).Quo(math.NewIntFromBigInt(price.BigInt()))
}

// PrincipalOf is the input amount paid for out output units at price,
// rounding down.
func PrincipalOf(out math.Int, price math.LegacyDec) math.Int {
	return price.MulInt(out).TruncateInt()
}

// WithdrawAmount is the input refunded for returning dy output units to the
// constant-product curve: x - floor(x*y / (y+dy)).
func WithdrawAmount(state types.State, dy math.Int) (math.Int, error) {
	denom := state.YLiquidity.Add(dy)
	if !denom.IsPositive() {
		return math.Int{}, types.ErrEmptyLiquidity
	}
	k := state.XLiquidity.Mul(state.YLiquidity)
	return state.XLiquidity.Sub(k.Quo(denom)), nil
}

// Penalty is the part of the principal that is not refunded.
func Penalty(refund, amount math.Int, price math.LegacyDec) (math.Int, error) {
	principal := PrincipalOf(amount, price)
	if principal.LT(refund) {
		return math.Int{}, errorsmod.Wrapf(types.ErrInvalidWithdrawPricing, "refund %s, principal %s", refund, principal)
	}
	return principal.Sub(refund), nil
}

// CurrentPrice is x/y.
func CurrentPrice(state types.State) (math.LegacyDec, error) {
	if !state.YLiquidity.IsPositive() {
		return math.LegacyDec{}, types.ErrEmptyLiquidity
	}
	return math.LegacyNewDecFromInt(state.XLiquidity).QuoInt(state.YLiquidity), nil
}

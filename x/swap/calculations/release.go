package calculations

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/types"
)

// ReleaseRatioAt sums the released fractions of all strategies. Once every
// strategy is fulfilled the ratio is exactly one, whatever the fractions add
// up to.
func ReleaseRatioAt(strategies []gwtypes.DistributionStrategy, t uint64) math.LegacyDec {
	ratio := math.LegacyZeroDec()
	fulfilled := 0
	for _, s := range strategies {
		amount, done := s.ReleaseAmountAt(t)
		ratio = ratio.Add(amount)
		if done {
			fulfilled++
		}
	}
	if fulfilled == len(strategies) {
		return math.LegacyOneDec()
	}
	return ratio
}

// ClaimableTokens is the released share of the user's purchase not yet claimed.
func ClaimableTokens(strategies []gwtypes.DistributionStrategy, user types.User, t uint64) (math.Int, error) {
	released := ReleaseRatioAt(strategies, t).MulInt(user.SwappedOut).TruncateInt()
	if released.LT(user.SwappedOutClaimed) {
		return math.Int{}, errorsmod.Wrapf(types.ErrNegativeClaimable, "released %s, claimed %s", released, user.SwappedOutClaimed)
	}
	return released.Sub(user.SwappedOutClaimed), nil
}

// WithdrawOpen reports whether at least one strategy has not started
// releasing yet.
func WithdrawOpen(strategies []gwtypes.DistributionStrategy, t uint64) bool {
	for _, s := range strategies {
		if s.CheckReleaseTime(t) {
			return true
		}
	}
	return false
}

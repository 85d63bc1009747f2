package simulation

import (
	"cosmossdk.io/math"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/calculations"
)

type ReleasePoint struct {
	Time         uint64
	Ratio        math.LegacyDec
	WithdrawOpen bool
}

// ReleaseSchedule samples the release ratio every step seconds from from to
// to, stopping at the first point where everything is released.
func ReleaseSchedule(strategies []gwtypes.DistributionStrategy, from, to, step uint64) []ReleasePoint {
	if step == 0 {
		step = 1
	}
	var points []ReleasePoint
	t := min(from, to)
	for {
		point := ReleasePoint{
			Time:         t,
			Ratio:        calculations.ReleaseRatioAt(strategies, t),
			WithdrawOpen: calculations.WithdrawOpen(strategies, t),
		}
		points = append(points, point)
		if t == to || (point.Ratio.Equal(math.LegacyOneDec()) && !point.WithdrawOpen) {
			return points
		}
		if to-t < step {
			t = to
		} else {
			t += step
		}
	}
}

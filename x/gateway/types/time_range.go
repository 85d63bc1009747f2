package types

import (
	"fmt"
	"math"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// OpenEnded is used as the finish of a window that never closes.
const OpenEnded = math.MaxUint64

// TimeRange is a closed interval of unix seconds. An inverse range admits every
// timestamp outside the interval instead of inside it.
type TimeRange struct {
	Start   uint64 `json:"start"`
	Finish  uint64 `json:"finish"`
	Inverse bool   `json:"inverse"`
}

func NewTimeRange(start, finish uint64, inverse bool) TimeRange {
	return TimeRange{Start: start, Finish: finish, Inverse: inverse}
}

// IsInRange reports whether t is admitted by the window.
func (r TimeRange) IsInRange(t uint64) bool {
	inside := r.Start <= t && t <= r.Finish
	return inside != r.Inverse
}

// Period is the length of the window in seconds.
func (r TimeRange) Period() uint64 {
	if r.Finish < r.Start {
		return 0
	}
	return r.Finish - r.Start
}

// Clamp returns t limited to [Start, Finish].
func (r TimeRange) Clamp(t uint64) uint64 {
	if t < r.Start {
		return r.Start
	}
	if t > r.Finish {
		return r.Finish
	}
	return t
}

func (r TimeRange) Validate() error {
	if r.Start > r.Finish {
		return errorsmod.Wrapf(ErrInvalidTimeRange, "start %d is after finish %d", r.Start, r.Finish)
	}
	return nil
}

func (r TimeRange) String() string {
	finish := fmt.Sprintf("%d", r.Finish)
	if r.Finish == OpenEnded {
		finish = "open"
	}
	if r.Inverse {
		return fmt.Sprintf("!(%d..%s)", r.Start, finish)
	}
	return fmt.Sprintf("%d..%s", r.Start, finish)
}

// TimeRanges admits a timestamp when any of its windows does.
type TimeRanges []TimeRange

func (rs TimeRanges) IsInRange(t uint64) bool {
	for _, r := range rs {
		if r.IsInRange(t) {
			return true
		}
	}
	return false
}

func (rs TimeRanges) Validate() error {
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			return errorsmod.Wrapf(err, "window %d", i)
		}
	}
	return nil
}

func (rs TimeRanges) String() string {
	parts := make([]string, 0, len(rs))
	for _, r := range rs {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/productscience/gateway/x/gateway/types"
)

func TestTimeRangeIsInRange(t *testing.T) {
	window := types.NewTimeRange(100, 200, false)
	inverse := types.NewTimeRange(100, 200, true)

	tests := []struct {
		at              uint64
		inside, outside bool
	}{
		{at: 99, inside: false, outside: true},
		{at: 100, inside: true, outside: false},
		{at: 150, inside: true, outside: false},
		{at: 200, inside: true, outside: false},
		{at: 201, inside: false, outside: true},
	}
	for _, tt := range tests {
		require.Equal(t, tt.inside, window.IsInRange(tt.at), "window at %d", tt.at)
		require.Equal(t, tt.outside, inverse.IsInRange(tt.at), "inverse at %d", tt.at)
	}
}

func TestTimeRangesAnyMatch(t *testing.T) {
	ranges := types.TimeRanges{
		types.NewTimeRange(0, 10, false),
		types.NewTimeRange(50, 60, false),
	}
	require.True(t, ranges.IsInRange(5))
	require.True(t, ranges.IsInRange(55))
	require.False(t, ranges.IsInRange(30))
	require.False(t, types.TimeRanges{}.IsInRange(0))
}

func TestTimeRangeClampAndPeriod(t *testing.T) {
	window := types.NewTimeRange(100, 200, false)
	require.Equal(t, uint64(100), window.Clamp(0))
	require.Equal(t, uint64(150), window.Clamp(150))
	require.Equal(t, uint64(200), window.Clamp(1000))
	require.Equal(t, uint64(100), window.Period())

	require.Error(t, types.NewTimeRange(10, 5, false).Validate())
	require.Error(t, types.TimeRanges{window, types.NewTimeRange(3, 1, true)}.Validate())
	require.Equal(t, "[100..200, !(0..open)]", types.TimeRanges{window, types.NewTimeRange(0, types.OpenEnded, true)}.String())
}

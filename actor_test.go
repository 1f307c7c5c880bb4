package mantle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPropsConfigIsInspectable verifies that Props retains the configuration
// value it was built from, so a caller holding a Props can inspect what an
// actor was configured with without keeping a separate reference around.
func TestPropsConfigIsInspectable(t *testing.T) {
	t.Parallel()

	cfg := accumulatorConfig{start: 42}
	var counters accumulatorCounters
	props := NewProps(cfg, newAccumulator(cfg, &counters))

	got, ok := props.Config().(accumulatorConfig)
	require.True(t, ok)
	require.Equal(t, cfg, got)
}

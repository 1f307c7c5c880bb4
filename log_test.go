package mantle

import (
	"bytes"
	"testing"
	"time"

	"github.com/btcsuite/btclog"
	btclogv2 "github.com/btcsuite/btclog/v2"
	"github.com/roasbeef/mantle/internal/obslog"
	"github.com/stretchr/testify/require"
)

// TestUseLoggerRoutesRuntimeDiagnostics wires the package logger to an
// obslog.HandlerSet fanning out to two capture buffers, runs a small
// actor through its lifecycle, and verifies the runtime's diagnostic
// events reach both sinks.
//
// Deliberately not parallel: UseLogger swaps a package-level variable, so
// this test must not overlap a running System from another test.
func TestUseLoggerRoutesRuntimeDiagnostics(t *testing.T) {
	var primary, secondary bytes.Buffer

	set := obslog.NewHandlerSet(
		btclogv2.NewDefaultHandler(&primary),
		btclogv2.NewDefaultHandler(&secondary),
	)
	set.SetLevel(btclog.LevelTrace)

	UseLogger(btclogv2.NewSLogger(set))
	defer UseLogger(btclogv2.Disabled)

	sys := New().WithConfig(Config{Threads: 1}).Spawn()

	var counters accumulatorCounters
	cfg := accumulatorConfig{start: 0}
	addr := NewActor(sys, NewProps(cfg, newAccumulator(cfg, &counters)))

	addr.Send(delta{value: 1})
	require.Eventually(t, func() bool {
		return counters.sum.Load() == 1
	}, time.Second, time.Millisecond)

	sys.GracefulShutdown()

	for _, buf := range []*bytes.Buffer{&primary, &secondary} {
		out := buf.String()
		require.Contains(t, out, "spawning actor system")
		require.Contains(t, out, "actor created")
		require.Contains(t, out, "starting cell")
	}
}

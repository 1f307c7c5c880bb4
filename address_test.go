package mantle

import (
	"runtime"
	"testing"
	"weak"

	"github.com/stretchr/testify/require"
)

func TestAddressSendToDeadCellIsNoOp(t *testing.T) {
	t.Parallel()

	var counters accumulatorCounters
	sched := newTestScheduler()
	cfg := accumulatorConfig{start: 1}
	props := NewProps(cfg, newAccumulator(cfg, &counters))

	addr := func() Address[delta] {
		cell := newCell(props, sched)
		cell.start()
		return Address[delta]{cellRef: weak.Make(cell)}
	}()

	// Drop every strong reference to the cell and force a GC so the weak
	// reference resolves to nil, simulating an address that has outlived
	// its cell.
	runtime.GC()
	runtime.GC()

	require.NotPanics(t, func() {
		addr.Send(delta{value: 7})
	})
}

func TestAddressSendEnqueuesDelivery(t *testing.T) {
	t.Parallel()

	var counters accumulatorCounters
	sched := newTestScheduler()
	cfg := accumulatorConfig{start: 1}
	props := NewProps(cfg, newAccumulator(cfg, &counters))

	cell := newCell(props, sched)
	cell.start()
	addr := Address[delta]{cellRef: weak.Make(cell)}

	addr.Send(delta{value: 9})
	require.Equal(t, 1, cell.mbox.len())

	require.True(t, cell.processOne())
	require.Equal(t, int32(10), cell.behavior.(*accumulator).balance)
}

package mantle

import "sync/atomic"

// delta is the sole message type understood by accumulator. It embeds
// BaseMessage to satisfy the sealed Message interface.
type delta struct {
	BaseMessage
	value uint8
}

// accumulatorConfig is the Props configuration for accumulator: just the
// starting balance.
type accumulatorConfig struct {
	start int32
}

// accumulatorCounters exposes what happened inside an accumulator to the
// test that created it, since the runtime has no ask/reply mechanism for
// reading an actor's internal state back out.
type accumulatorCounters struct {
	starts   atomic.Int32
	preStops atomic.Int32

	// sum accumulates every delta ever received, independent of restarts,
	// so concurrent-sender tests can verify no message was lost or
	// double-counted.
	sum atomic.Int64
}

// accumulator is a minimal actor used across this package's tests. It
// keeps a running balance, restarting itself back to its configured start
// value when it receives a delta of exactly 3, and stopping itself when it
// receives a delta of exactly 0.
type accumulator struct {
	cfg     accumulatorConfig
	balance int32

	counters *accumulatorCounters
}

func newAccumulator(
	cfg accumulatorConfig, counters *accumulatorCounters,
) func(accumulatorConfig) Behavior[delta] {

	return func(c accumulatorConfig) Behavior[delta] {
		return &accumulator{
			cfg:      c,
			balance:  c.start,
			counters: counters,
		}
	}
}

func (a *accumulator) Start(ctx *Context) {
	a.balance = a.cfg.start
	if a.counters != nil {
		a.counters.starts.Add(1)
	}
}

func (a *accumulator) PreStop(ctx *Context) {
	if a.counters != nil {
		a.counters.preStops.Add(1)
	}
}

func (a *accumulator) Receive(ctx *Context, msg delta) {
	if a.counters != nil {
		a.counters.sum.Add(int64(msg.value))
	}

	switch {
	case msg.value == 3:
		a.balance += int32(msg.value)
		ctx.Restart()
	case msg.value == 0:
		a.balance += int32(msg.value)
		ctx.Stop()
	default:
		a.balance += int32(msg.value)
	}
}

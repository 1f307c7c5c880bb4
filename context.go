package mantle

import (
	"context"
	"weak"
)

// Context is handed to every call into an actor: Start, PreStop, and
// Receive. It grants the actor exactly two self-directed, asynchronous
// actions — Stop and Restart — and nothing else, deliberately: giving an
// actor any synchronous access to its own scheduler would let a receive
// re-enter the actor lock it is already holding.
type Context struct {
	cellID       CellID
	schedulerRef weak.Pointer[Scheduler]
}

// ID returns the identifier of the cell this Context was created for.
func (c *Context) ID() CellID {
	return c.cellID
}

// Stop requests that the owning cell be stopped. The request is enqueued
// on the owning scheduler and takes effect on that scheduler's next tick —
// never synchronously, and never before the current Receive/Start/PreStop
// call returns.
func (c *Context) Stop() {
	sched := c.schedulerRef.Value()
	if sched == nil {
		log.ErrorS(
			context.Background(), "stop requested after scheduler "+
				"teardown", ErrSchedulerGone, "cell_id", c.cellID,
		)
		return
	}

	sched.enqueueStop(c.cellID)
}

// Restart requests that the owning cell be restarted: its current behavior
// torn down via PreStop and replaced with a fresh instance from the
// original Props. Like Stop, this is deferred to the scheduler's next
// tick.
func (c *Context) Restart() {
	sched := c.schedulerRef.Value()
	if sched == nil {
		log.ErrorS(
			context.Background(), "restart requested after scheduler "+
				"teardown", ErrSchedulerGone, "cell_id", c.cellID,
		)
		return
	}

	sched.enqueueRestart(c.cellID)
}

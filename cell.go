package mantle

import (
	"context"
	"sync"
	"weak"

	"github.com/google/uuid"
)

// CellID uniquely identifies a cell for the lifetime of the process. A
// random 128-bit UUID is generated per cell; there is no need for
// coordination, so random generation (rather than a counter) is sufficient
// and avoids a shared-counter bottleneck across schedulers.
type CellID uuid.UUID

// String returns the canonical textual form of the id, useful in log
// fields.
func (id CellID) String() string {
	return uuid.UUID(id).String()
}

// cellState enumerates the lifecycle states a cell moves through: start
// moves Starting to Running, shutdown moves Running through Stopping to
// Halted, and restart moves Running through Stopping and Starting back to
// Running.
type cellState int32

const (
	cellStarting cellState = iota
	cellRunning
	cellStopping
	cellHalted
)

// cellHandle is the narrow, non-generic surface a Scheduler needs in order
// to drive a cell, regardless of that cell's concrete message type M. Go
// generics cannot produce a map holding mixed Cell[M] instantiations
// directly, so the scheduler stores this interface instead — the same
// technique used by a heterogeneous actor registry keyed by a narrow
// "stoppable" capability.
type cellHandle interface {
	ID() CellID
	start()
	shutdown()
	restart()
	processOne() bool
}

// Cell owns one actor instance, its mailbox, and its lifecycle state. It is
// the unit of identity and of serial execution: only one goroutine ever
// touches behavior at a time, enforced by mu (the "actor lock"), which is
// held for the full duration of Start, PreStop, restart reconstruction,
// and message delivery.
type Cell[M Message] struct {
	id CellID

	mu       sync.Mutex
	behavior Behavior[M]
	state    cellState

	props Props[M]
	mbox  *mailbox

	schedulerRef weak.Pointer[Scheduler]
}

// newCell constructs a Cell in the Starting state, ready to be registered
// with a scheduler. It does not start the actor; that happens when the
// owning scheduler drains its start queue.
func newCell[M Message](props Props[M], sched *Scheduler) *Cell[M] {
	return &Cell[M]{
		id:           CellID(uuid.New()),
		behavior:     props.new(),
		state:        cellStarting,
		props:        props,
		mbox:         &mailbox{},
		schedulerRef: weak.Make(sched),
	}
}

// ID returns the cell's identifier.
func (c *Cell[M]) ID() CellID {
	return c.id
}

func (c *Cell[M]) context() *Context {
	return &Context{cellID: c.id, schedulerRef: c.schedulerRef}
}

// start runs the actor's optional Starter hook and transitions to Running.
// Called exactly once per lifetime segment by the owning scheduler.
func (c *Cell[M]) start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	log.DebugS(context.Background(), "starting cell", "cell_id", c.id)

	if starter, ok := c.behavior.(Starter); ok {
		starter.Start(c.context())
	}
	c.state = cellRunning
}

// shutdown runs the actor's optional Stopper hook and transitions to
// Halted. Called by the scheduler when draining the stop queue.
func (c *Cell[M]) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	log.DebugS(context.Background(), "stopping cell", "cell_id", c.id)

	c.state = cellStopping
	if stopper, ok := c.behavior.(Stopper); ok {
		stopper.PreStop(c.context())
	}
	c.state = cellHalted
}

// restart runs PreStop on the current behavior, replaces it with a fresh
// instance produced from the stored Props, and runs Start on the new
// instance — all under a single hold of the actor lock, so no delivery can
// be interleaved between the old instance's teardown and the new
// instance's startup.
func (c *Cell[M]) restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	log.DebugS(context.Background(), "restarting cell", "cell_id", c.id)

	c.state = cellStopping
	if stopper, ok := c.behavior.(Stopper); ok {
		stopper.PreStop(c.context())
	}

	c.state = cellStarting
	c.behavior = c.props.new()
	if starter, ok := c.behavior.(Starter); ok {
		starter.Start(c.context())
	}
	c.state = cellRunning
}

// processOne delivers at most one queued message to the actor and reports
// whether it did so. It never loops: bounding a single call to one
// delivery is what makes lifecycle-before-message ordering within a tick
// straightforward to reason about, since the scheduler controls how many
// times processOne is invoked per cell per tick (exactly once).
func (c *Cell[M]) processOne() bool {
	c.mu.Lock()
	running := c.state == cellRunning
	c.mu.Unlock()

	if !running {
		return false
	}

	d, ok := c.mbox.receive()
	if !ok {
		return false
	}

	d()

	return true
}

// deliver invokes the actor's Receive method with msg, under the actor
// lock. Address[M].Send wraps a call to this in a delivery closure before
// enqueueing it onto the mailbox.
func (c *Cell[M]) deliver(msg M) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.behavior.Receive(c.context(), msg)
}

var _ cellHandle = (*Cell[BaseMessage])(nil)

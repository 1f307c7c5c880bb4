package mantle

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
	"weak"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Canonical idle-backoff parameters, used whenever a Config leaves
// BackoffBase/BackoffCap unset.
const (
	defaultBackoffBase = 2 * time.Microsecond
	defaultBackoffCap  = time.Second
)

// Config holds the tunables for a System. The zero value is usable: Spawn
// treats a non-positive Threads as runtime.NumCPU() and unset backoff
// options as the canonical schedule. DefaultConfig fills Threads in
// explicitly.
type Config struct {
	// Threads is the number of scheduler goroutines to run. Defaults to
	// runtime.NumCPU() when zero or negative.
	Threads int

	// BackoffBase overrides the idle-backoff starting duration.
	BackoffBase fn.Option[time.Duration]

	// BackoffCap overrides the idle-backoff ceiling duration.
	BackoffCap fn.Option[time.Duration]
}

// DefaultConfig returns a Config with Threads set to the host's logical
// CPU count and the canonical backoff schedule.
func DefaultConfig() Config {
	return Config{Threads: runtime.NumCPU()}
}

type systemState int32

const (
	systemAwaitingStart systemState = iota
	systemStarting
	systemRunning
)

// System is the top-level handle for an actor runtime: it owns the
// scheduler fleet and is the entry point for creating actors. Build one
// with New, optionally adjust it with WithConfig, then call Spawn before
// creating any actors.
type System struct {
	cfg Config

	schedulers []*Scheduler
	wg         sync.WaitGroup

	state atomic.Int32
}

// New constructs a System with default configuration. Call Spawn before
// creating actors on it.
func New() *System {
	return &System{cfg: DefaultConfig()}
}

// WithConfig replaces the system's configuration. Only meaningful before
// Spawn; configuration is read once, when the scheduler fleet is created.
func (s *System) WithConfig(cfg Config) *System {
	s.cfg = cfg
	return s
}

// Spawn creates the scheduler fleet and starts each on its own goroutine.
// It must be called exactly once, before any call to NewActor.
func (s *System) Spawn() *System {
	s.state.Store(int32(systemStarting))

	threads := s.cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	base := s.cfg.BackoffBase.UnwrapOr(defaultBackoffBase)
	backoffCap := s.cfg.BackoffCap.UnwrapOr(defaultBackoffCap)

	log.InfoS(
		context.Background(), "spawning actor system",
		"threads", threads, "backoff_base", base, "backoff_cap", backoffCap,
	)

	s.schedulers = make([]*Scheduler, threads)
	for i := 0; i < threads; i++ {
		sched := &Scheduler{
			id:          i,
			cells:       make(map[CellID]cellHandle),
			backoffBase: base,
			backoffCap:  backoffCap,
		}
		s.schedulers[i] = sched

		s.wg.Add(1)
		go sched.run(&s.wg)
	}

	s.state.Store(int32(systemRunning))

	return s
}

// NewActor constructs a cell from props, places it on a uniformly-random
// scheduler in sys, and returns an Address for sending it messages. It
// panics if sys has not been Spawn-ed yet: creating an actor before a
// scheduler fleet exists to run it is a programmer error, not a runtime
// condition a caller should need to handle.
//
// NewActor is a package-level function, not a method, because Go does not
// allow a method to introduce its own type parameters.
func NewActor[M Message](sys *System, props Props[M]) Address[M] {
	if systemState(sys.state.Load()) != systemRunning {
		panic("mantle: NewActor called before System.Spawn")
	}

	sched := sys.schedulers[rand.IntN(len(sys.schedulers))]

	cell := newCell(props, sched)
	sched.register(cell)

	log.DebugS(
		context.Background(), "actor created", "cell_id", cell.id,
		"scheduler_id", sched.id,
	)

	return Address[M]{cellRef: weak.Make(cell)}
}

// GracefulShutdown signals every scheduler to stop after its current tick
// and waits for all scheduler goroutines to exit. It does not drain
// mailboxes or run PreStop on cells that are still registered when it is
// called — it only stops scheduling.
func (s *System) GracefulShutdown() {
	for _, sched := range s.schedulers {
		sched.requestShutdown()
	}
	s.wg.Wait()
}

package mantle

// Behavior is the capability a user-defined actor must implement: a single
// Receive method covering a sealed family of message types M. An actor that
// needs to react to several distinct message shapes defines its own
// interface embedding Message and type-switches inside Receive; Go does not
// allow two methods with the same name and different signatures on one
// type, so a closed union plus an internal switch is the idiomatic
// substitute for per-message-type handlers.
type Behavior[M Message] interface {
	// Receive handles one message. It runs under the owning cell's
	// execution lock; no other hook or delivery for the same actor
	// instance runs concurrently with it.
	Receive(ctx *Context, msg M)
}

// Starter is an optional capability. An actor that implements it has its
// Start method called once, by the cell's owning scheduler, before the
// first message is delivered.
type Starter interface {
	Start(ctx *Context)
}

// Stopper is an optional capability. An actor that implements it has its
// PreStop method called once, by the cell's owning scheduler, as the final
// step before the cell is torn down (including as the first half of a
// restart).
type Stopper interface {
	PreStop(ctx *Context)
}

// Props is an immutable recipe for constructing an actor. Both the
// configuration value and the constructor are kept for the cell's entire
// lifetime: the configuration remains inspectable for diagnostics, and the
// constructor is invoked again on every restart to produce a fresh
// behavior instance from the same configuration.
type Props[M Message] struct {
	// config is opaque to the cell; it is kept so Config can hand it
	// back without the caller needing to keep their own reference.
	config  any
	newFunc func() Behavior[M]
}

// NewProps builds a Props value from a configuration and a constructor
// that turns that configuration into a fresh Behavior. The constructor is
// called once when the cell is created, and again on every restart.
func NewProps[M Message, C any](cfg C, ctor func(C) Behavior[M]) Props[M] {
	return Props[M]{
		config: cfg,
		newFunc: func() Behavior[M] {
			return ctor(cfg)
		},
	}
}

// new produces a fresh actor instance from the stored recipe.
func (p Props[M]) new() Behavior[M] {
	return p.newFunc()
}

// Config returns the configuration value the Props was built from, so a
// caller holding a Props (e.g. for a diagnostics dump) can inspect what an
// actor was configured with without keeping a separate reference around.
func (p Props[M]) Config() any {
	return p.config
}

package mantle

import "github.com/btcsuite/btclog/v2"

// log is the package-level logger used by every component in this module.
// It defaults to a no-op implementation so importing this package never
// produces output on its own; callers wire up a real sink with UseLogger,
// following the convention used throughout the btcsuite/lnd ecosystem.
var log btclog.Logger = btclog.Disabled

// UseLogger sets the package-wide logger used by the scheduler, cell, and
// system components. It is not safe to call concurrently with a running
// System; call it once, during process startup, before Spawn.
func UseLogger(logger btclog.Logger) {
	log = logger
}

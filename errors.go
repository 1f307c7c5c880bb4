package mantle

import "errors"

// ErrSchedulerGone is logged (not returned — lifecycle calls are
// fire-and-forget) when a Context tries to enqueue a stop or restart after
// the owning scheduler has already been torn down.
var ErrSchedulerGone = errors.New("mantle: scheduler no longer exists")

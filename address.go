package mantle

import "weak"

// Address is a typed, cheap-to-clone handle for sending messages of type M
// to a specific cell. It holds only a non-owning weak reference to the
// cell, never a strong one — an Address is allowed to outlive its cell,
// and sending on a dead Address is a silent no-op rather than a panic.
type Address[M Message] struct {
	cellRef weak.Pointer[Cell[M]]
}

// Send enqueues msg for delivery to the addressed cell. It never blocks.
// If the cell no longer exists, Send is a no-op: this matches the
// fire-and-forget contract of the runtime, where a sender has no way to
// observe whether its message was ever delivered.
//
// Sends from a single goroutine are delivered in order. There is no
// ordering guarantee across goroutines or across cells: a message sent to
// one actor before a message to another may still be observed second.
func (a Address[M]) Send(msg M) {
	cell := a.cellRef.Value()
	if cell == nil {
		return
	}

	cell.mbox.send(func() {
		cell.deliver(msg)
	})
}

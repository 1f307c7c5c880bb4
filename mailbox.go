package mantle

// delivery is an opaque unit of work: a closure that, when invoked,
// delivers one already-captured message to one already-identified cell.
// Storing deliveries instead of raw messages lets a single mailbox type
// serve cells of every message family without becoming generic itself.
type delivery = func()

// mailbox is a cell's multi-producer, single-consumer queue of pending
// deliveries. Sends never block; receives never block. There is no
// capacity limit and no durability across process restarts.
type mailbox struct {
	q fifo[delivery]
}

// send enqueues a delivery. Safe to call from any goroutine, at any cell
// lifecycle state — deliveries queued while a cell isn't Running simply
// wait for the next Running tick (or, in the stopped case, forever, since
// the mailbox is discarded along with the cell).
func (m *mailbox) send(d delivery) {
	m.q.push(d)
}

// receive pops the next pending delivery, if any.
func (m *mailbox) receive() (delivery, bool) {
	return m.q.pop()
}

// len reports the number of deliveries currently queued.
func (m *mailbox) len() int {
	return m.q.len()
}

package agent

import "sync"

// Mailbox is the FIFO queue bound to exactly one input port at compile time.
// It has one writer end (the producing agent's output port) and one reader
// end (the owning agent). Put never blocks; Take blocks until a message is
// available. Messages are observed in Put order.
type Mailbox struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []any
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	m := &Mailbox{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Put enqueues msg. It never blocks: the queue is unbounded and producers
// never exert backpressure on each other.
func (m *Mailbox) Put(msg any) {
	m.mu.Lock()
	m.queue = append(m.queue, msg)
	m.mu.Unlock()
	m.cond.Signal()
}

// Take dequeues the oldest message, blocking the calling goroutine until one
// is available.
func (m *Mailbox) Take() any {
	m.mu.Lock()
	defer m.mu.Unlock()
	for len(m.queue) == 0 {
		m.cond.Wait()
	}
	msg := m.queue[0]
	m.queue = m.queue[1:]
	return msg
}

// Len returns the number of queued messages.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

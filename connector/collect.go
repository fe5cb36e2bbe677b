package connector

import (
	"sync"

	"github.com/BaSui01/flownet/block"
)

// Collector accumulates sink messages into an in-memory slice. Useful in
// tests and demos as the terminal end of a pipeline.
type Collector struct {
	mu    sync.Mutex
	items []any
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Sink returns a SinkFunc appending each message to the collector.
func (c *Collector) Sink() block.SinkFunc {
	return func(msg any) error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.items = append(c.items, msg)
		return nil
	}
}

// Items returns a snapshot of the collected messages in arrival order.
func (c *Collector) Items() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]any(nil), c.items...)
}

// Len returns the number of collected messages.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

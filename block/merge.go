package block

import (
	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

// NewMergeAsynch creates an asynchronous fan-in adapter: n input ports
// in_0..in_{n-1} and one output port "out". Payloads are forwarded in arrival
// order across inputs (non-deterministic interleaving, per-input order
// preserved). STOP is forwarded downstream only after STOP has been received
// from every input, so downstream never observes a premature end-of-stream.
// n must be at least 1.
//
// This is the one place in the runtime that waits on multiple mailboxes
// concurrently: one forwarder goroutine per input funnels into an internal
// channel, and each forwarder exits after relaying its input's STOP.
func NewMergeAsynch(name string, n int) *agent.Agent {
	if n < 1 {
		panic(types.NewErrorf(types.ErrInvalidName, "merge %s needs at least 1 input, got %d", name, n))
	}
	body := func(a *agent.Agent) error {
		arrivals := make(chan any)
		for i := 0; i < n; i++ {
			go func(port string) {
				for {
					msg := a.Recv(port)
					arrivals <- msg
					if types.IsStop(msg) {
						return
					}
				}
			}(InPort(i))
		}
		stopped := 0
		for stopped < n {
			msg := <-arrivals
			if types.IsStop(msg) {
				stopped++
				continue
			}
			a.Send(msg, PortOut)
		}
		a.Send(types.Stop, PortOut)
		return nil
	}
	return agent.New(name, inPorts(n), []string{PortOut}, body)
}

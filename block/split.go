package block

import (
	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

// RouteFunc is the router contract for Split: given one message, return a
// sequence of exactly n optional results, one slot per output port. A nil
// slot delivers nothing on that port. Returning any other length is a
// contract violation and faults the agent.
type RouteFunc func(msg any) ([]any, error)

// NewSplit creates a content-routed fan-out block: one input port "in" and n
// output ports out_0..out_{n-1}. Each message is routed to zero, one, or many
// outputs according to route. STOP is delivered to all outputs and terminates
// the block. n must be at least 2.
func NewSplit(name string, n int, route RouteFunc) *agent.Agent {
	if n < 2 {
		panic(types.NewErrorf(types.ErrInvalidName, "split %s needs at least 2 outputs, got %d", name, n))
	}
	body := func(a *agent.Agent) error {
		for {
			msg := a.Recv(PortIn)
			if types.IsStop(msg) {
				a.SendStopAll()
				return nil
			}
			results, err := route(msg)
			if err != nil {
				return err
			}
			if len(results) != n {
				return types.NewErrorf(types.ErrRouterArity,
					"split %s router returned %d results, want %d", name, len(results), n)
			}
			for i, result := range results {
				if result != nil {
					a.Send(result, OutPort(i))
				}
			}
		}
	}
	return agent.New(name, []string{PortIn}, outPorts(n), body)
}

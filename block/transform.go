package block

import (
	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

// TransformFunc is the transform adapter contract: map one input message to
// zero-or-one output messages. Returning nil means "drop". A non-nil error is
// a fatal fault for the agent; the framework never retries user bodies.
type TransformFunc func(msg any) (any, error)

// NewTransform creates a Transform block with one input port "in" and one
// output port "out". Exactly one STOP is ever sent on "out", and it is the
// last thing sent: on STOP the block forwards it and terminates, and on a
// body fault the run loop emits it.
func NewTransform(name string, f TransformFunc) *agent.Agent {
	body := func(a *agent.Agent) error {
		for {
			msg := a.Recv(PortIn)
			if types.IsStop(msg) {
				a.Send(types.Stop, PortOut)
				return nil
			}
			result, err := f(msg)
			if err != nil {
				return err
			}
			if result == nil {
				continue
			}
			a.Send(result, PortOut)
		}
	}
	return agent.New(name, []string{PortIn}, []string{PortOut}, body)
}

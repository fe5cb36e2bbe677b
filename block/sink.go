package block

import (
	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

// SinkFunc is the sink adapter contract: consume one message for side
// effects. A non-nil error is a fatal fault for the agent.
type SinkFunc func(msg any) error

// SinkOpener creates a fresh SinkFunc plus a close function per run, for
// sinks that hold a resource (an open file, a connection). Either returned
// function may be nil.
type SinkOpener func() (SinkFunc, func() error, error)

// NewSink creates a Sink block with one input port "in" and no outputs. Nil
// payloads are dropped without invoking the body; STOP terminates the block.
// There is nothing downstream to notify on a body fault.
func NewSink(name string, f SinkFunc) *agent.Agent {
	return NewResourceSink(name, func() (SinkFunc, func() error, error) {
		return f, nil, nil
	})
}

// NewResourceSink creates a Sink block whose consuming function is opened per
// run and closed when STOP arrives.
func NewResourceSink(name string, open SinkOpener) *agent.Agent {
	body := func(a *agent.Agent) error {
		f, closeFn, err := open()
		if err != nil {
			return err
		}
		if closeFn != nil {
			defer func() { _ = closeFn() }()
		}
		for {
			msg := a.Recv(PortIn)
			if types.IsStop(msg) {
				return nil
			}
			if msg == nil {
				continue
			}
			if err := f(msg); err != nil {
				return err
			}
		}
	}
	return agent.New(name, []string{PortIn}, nil, body)
}

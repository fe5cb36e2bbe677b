package block

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

// SourceFunc is the source adapter contract: a zero-argument callable invoked
// repeatedly. It returns the next message, or nil to signal end-of-stream.
// A non-nil error is treated as exhaustion-with-fault.
type SourceFunc func() (any, error)

// SourceOpener creates a fresh SourceFunc per run. Iteration state lives
// inside the returned callable, so one network description can be compiled
// and run more than once without the instances sharing a cursor.
type SourceOpener func() (SourceFunc, error)

// SourceOption configures a Source block.
type SourceOption func(*sourceOptions)

type sourceOptions struct {
	limiter *rate.Limiter
}

// WithInterval paces the source to at most one message per interval. The
// delay is informational, not part of the ordering contract.
func WithInterval(d time.Duration) SourceOption {
	return func(o *sourceOptions) {
		if d > 0 {
			o.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithLimiter paces the source with a caller-supplied limiter.
func WithLimiter(l *rate.Limiter) SourceOption {
	return func(o *sourceOptions) { o.limiter = l }
}

// NewSource creates a Source block: no inputs, one output port "out". The
// body drains open()'s callable until exhaustion, then sends STOP and exits.
// A producer fault is logged by the run loop and still yields STOP, so a
// crashing source can never wedge its consumers.
func NewSource(name string, open SourceOpener, opts ...SourceOption) *agent.Agent {
	var o sourceOptions
	for _, opt := range opts {
		opt(&o)
	}
	body := func(a *agent.Agent) error {
		next, err := open()
		if err != nil {
			return err
		}
		for {
			if o.limiter != nil {
				if err := o.limiter.Wait(context.Background()); err != nil {
					return err
				}
			}
			msg, err := next()
			if err != nil {
				return err
			}
			if msg == nil {
				a.Send(types.Stop, PortOut)
				return nil
			}
			a.Send(msg, PortOut)
		}
	}
	return agent.New(name, nil, []string{PortOut}, body)
}

// SourceOf returns an opener over a fixed slice of values. An empty slice
// yields an immediately-exhausted source that sends only STOP.
func SourceOf(values ...any) SourceOpener {
	return func() (SourceFunc, error) {
		i := 0
		return func() (any, error) {
			if i >= len(values) {
				return nil, nil
			}
			v := values[i]
			i++
			return v, nil
		}, nil
	}
}

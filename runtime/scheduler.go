package runtime

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BaSui01/flownet/network"
)

// Scheduler runs compiled programs. It holds no per-run state and is safe to
// reuse across programs.
type Scheduler struct {
	logger  *zap.Logger
	metrics *Metrics
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger sets the scheduler logger, propagated to every agent.
func WithLogger(logger *zap.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics installs a metrics collector as observer on every agent.
func WithMetrics(m *Metrics) SchedulerOption {
	return func(s *Scheduler) { s.metrics = m }
}

// NewScheduler creates a scheduler.
func NewScheduler(opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts one goroutine per agent and blocks until all of them have
// terminated. No join ordering is needed: the termination protocol guarantees
// every reachable agent eventually sees STOP on every input it owns. There is
// no cancellation at the primitive level; ctx scopes only the goroutine
// group itself.
func (s *Scheduler) Run(ctx context.Context, p *network.Program) error {
	logger := s.logger.With(zap.String("network", p.Name()))
	agents := p.Agents()

	start := time.Now()
	logger.Info("starting network", zap.Int("agents", len(agents)))

	g, _ := errgroup.WithContext(ctx)
	for _, a := range agents {
		a.SetLogger(s.logger)
		if s.metrics != nil {
			a.SetObserver(s.metrics)
		}
		g.Go(a.Run)
	}
	err := g.Wait()

	logger.Info("network terminated",
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	return err
}

// Run compiles and runs net in one call, the common case for embedders.
func Run(ctx context.Context, net *network.Network, opts ...SchedulerOption) error {
	s := NewScheduler(opts...)
	p, err := network.Compile(net, network.WithLogger(s.logger))
	if err != nil {
		return err
	}
	return s.Run(ctx, p)
}

package runtime

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/flownet/block"
	"github.com/BaSui01/flownet/connector"
	"github.com/BaSui01/flownet/network"
)

func helloNetwork(t *testing.T, sunk *connector.Collector) *network.Network {
	t.Helper()
	net, err := network.NewBuilder("hello").
		Add(block.NewSource("src", block.SourceOf("hello", "world"))).
		Add(block.NewTransform("upper", func(m any) (any, error) {
			return m.(string) + "!", nil
		})).
		Add(block.NewSink("out", sunk.Sink())).
		Connect("src", "out", "upper", "in").
		Connect("upper", "out", "out", "in").
		Build()
	require.NoError(t, err)
	return net
}

func TestScheduler_RunsCompiledProgram(t *testing.T) {
	sunk := connector.NewCollector()
	net := helloNetwork(t, sunk)

	p, err := network.Compile(net)
	require.NoError(t, err)

	s := NewScheduler()
	require.NoError(t, s.Run(context.Background(), p))
	assert.Equal(t, []any{"hello!", "world!"}, sunk.Items())
}

func TestRun_CompilesAndRunsInOneCall(t *testing.T) {
	sunk := connector.NewCollector()
	net := helloNetwork(t, sunk)

	require.NoError(t, Run(context.Background(), net))
	assert.Equal(t, 2, sunk.Len())
}

func TestRun_SurfacesCompileFaults(t *testing.T) {
	net, err := network.NewBuilder("bad").
		Add(block.NewTransform("only", func(m any) (any, error) { return m, nil })).
		InPort("in").
		OutPort("out").
		Connect("external", "in", "only", "in").
		Connect("only", "out", "external", "out").
		Build()
	require.NoError(t, err)

	err = Run(context.Background(), net)
	require.Error(t, err)
}

func TestScheduler_MetricsAccounting(t *testing.T) {
	sunk := connector.NewCollector()
	net := helloNetwork(t, sunk)

	p, err := network.Compile(net)
	require.NoError(t, err)

	m := NewMetrics(prometheus.NewRegistry())
	s := NewScheduler(WithMetrics(m))
	require.NoError(t, s.Run(context.Background(), p))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.messagesSent.WithLabelValues("src", "out")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.messagesSent.WithLabelValues("upper", "out")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.stopsSent.WithLabelValues("src", "out")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.stopsSent.WithLabelValues("upper", "out")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.agentsTotal))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.agentsLive))
}

func TestScheduler_FaultCountsInMetrics(t *testing.T) {
	net, err := network.NewBuilder("faulty").
		Add(block.NewSource("src", block.SourceOf(1))).
		Add(block.NewSink("boom", func(any) error {
			panic("sink exploded")
		})).
		Connect("src", "out", "boom", "in").
		Build()
	require.NoError(t, err)

	p, err := network.Compile(net)
	require.NoError(t, err)

	m := NewMetrics(prometheus.NewRegistry())
	s := NewScheduler(WithMetrics(m))
	require.NoError(t, s.Run(context.Background(), p))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.faults.WithLabelValues("boom")))
}

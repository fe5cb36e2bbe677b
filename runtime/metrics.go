package runtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects runtime counters: payloads and STOPs delivered per agent
// output port, body faults per agent, and a live-agents gauge. It implements
// agent.Observer and is installed on every agent by the scheduler.
type Metrics struct {
	messagesSent *prometheus.CounterVec
	stopsSent    *prometheus.CounterVec
	faults       *prometheus.CounterVec
	agentsLive   prometheus.Gauge
	agentsTotal  prometheus.Counter
}

// NewMetrics creates a collector registered on reg. Pass
// prometheus.DefaultRegisterer for the process-wide registry, or a fresh
// registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		messagesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flownet",
			Name:      "messages_sent_total",
			Help:      "Payload messages delivered per agent output port.",
		}, []string{"agent", "port"}),
		stopsSent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flownet",
			Name:      "stops_sent_total",
			Help:      "STOP sentinels delivered per agent output port.",
		}, []string{"agent", "port"}),
		faults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flownet",
			Name:      "agent_faults_total",
			Help:      "Body faults that terminated an agent early.",
		}, []string{"agent"}),
		agentsLive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "flownet",
			Name:      "agents_live",
			Help:      "Agents currently running.",
		}),
		agentsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "flownet",
			Name:      "agents_started_total",
			Help:      "Agent goroutines started.",
		}),
	}
}

// AgentStarted implements agent.Observer.
func (m *Metrics) AgentStarted(string) {
	m.agentsLive.Inc()
	m.agentsTotal.Inc()
}

// AgentFinished implements agent.Observer.
func (m *Metrics) AgentFinished(string) {
	m.agentsLive.Dec()
}

// AgentFaulted implements agent.Observer.
func (m *Metrics) AgentFaulted(name string) {
	m.faults.WithLabelValues(name).Inc()
}

// MessageSent implements agent.Observer.
func (m *Metrics) MessageSent(agent, port string) {
	m.messagesSent.WithLabelValues(agent, port).Inc()
}

// StopSent implements agent.Observer.
func (m *Metrics) StopSent(agent, port string) {
	m.stopsSent.WithLabelValues(agent, port).Inc()
}

package network

import (
	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

// Program is a compiled network: the flat set of wired agents, ready to be
// started by the runtime scheduler. A Program is runnable exactly once; to
// run a network again, compile it again.
type Program struct {
	name   string
	order  []string
	agents map[string]*agent.Agent
	conns  []types.Connection
}

// Name returns the root network name.
func (p *Program) Name() string { return p.name }

// Agents returns the flattened agents in deterministic (insertion) order.
func (p *Program) Agents() []*agent.Agent {
	agents := make([]*agent.Agent, 0, len(p.order))
	for _, name := range p.order {
		agents = append(agents, p.agents[name])
	}
	return agents
}

// Agent returns the flattened agent with the given path-qualified name.
func (p *Program) Agent(name string) (*agent.Agent, bool) {
	a, ok := p.agents[name]
	return a, ok
}

// AgentNames returns the path-qualified agent names in deterministic order.
func (p *Program) AgentNames() []string { return append([]string(nil), p.order...) }

// Connections returns the post-rewrite, fully-qualified connection list.
func (p *Program) Connections() []types.Connection {
	return append([]types.Connection(nil), p.conns...)
}

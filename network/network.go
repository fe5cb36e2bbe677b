package network

import (
	"github.com/BaSui01/flownet/types"
)

// Node is anything composable into a network: a leaf *agent.Agent or a
// nested *Network. The compiler only ever looks up a node's port sets.
type Node interface {
	Name() string
	InPorts() []string
	OutPorts() []string
}

// Network is a named container of child nodes and the connections between
// their ports. A Network may itself declare inports and outports, exposed to
// a parent network through the reserved pseudo-child name "external".
//
// A Network is built declaratively (usually via Builder), compiled exactly
// once per Compile call, and never mutated by the compiler: compiling the
// same Network twice yields two independent programs.
type Network struct {
	name        string
	order       []string
	blocks      map[string]Node
	connections []types.Connection
	inports     []string
	outports    []string
}

// Name returns the network name.
func (n *Network) Name() string { return n.name }

// InPorts returns the declared external input ports.
func (n *Network) InPorts() []string { return append([]string(nil), n.inports...) }

// OutPorts returns the declared external output ports.
func (n *Network) OutPorts() []string { return append([]string(nil), n.outports...) }

// BlockNames returns the child names in insertion order.
func (n *Network) BlockNames() []string { return append([]string(nil), n.order...) }

// Block returns the child with the given name.
func (n *Network) Block(name string) (Node, bool) {
	node, ok := n.blocks[name]
	return node, ok
}

// Connections returns the connection list in declaration order.
func (n *Network) Connections() []types.Connection {
	return append([]types.Connection(nil), n.connections...)
}

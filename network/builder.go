package network

import (
	"go.uber.org/zap"

	"github.com/BaSui01/flownet/types"
)

// Builder provides a fluent API for constructing networks.
//
//	net, err := network.NewBuilder("pipeline").
//		Add(block.NewSource("src", block.SourceOf("hello", "world"))).
//		Add(block.NewTransform("upper", upperFn)).
//		Add(block.NewSink("out", collect.Sink())).
//		Connect("src", "out", "upper", "in").
//		Connect("upper", "out", "out", "in").
//		Build()
//
// Errors accumulate and surface at Build, which also runs full structural
// validation.
type Builder struct {
	name        string
	order       []string
	blocks      map[string]Node
	connections []types.Connection
	inports     []string
	outports    []string
	errs        []error
	logger      *zap.Logger
}

// NewBuilder creates a builder for a network with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		blocks: make(map[string]Node),
		logger: zap.NewNop(),
	}
}

// WithLogger sets a custom logger.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	if logger != nil {
		b.logger = logger.With(zap.String("component", "network_builder"))
	}
	return b
}

// Add adds a child node under its own name. Duplicate, reserved, or
// separator-containing names are reported at Build.
func (b *Builder) Add(node Node) *Builder {
	name := node.Name()
	if err := checkChildName(b.name, name); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if _, exists := b.blocks[name]; exists {
		b.errs = append(b.errs, types.NewErrorf(types.ErrDuplicateChild,
			"network %s already has a child named %q", b.name, name))
		return b
	}
	b.blocks[name] = node
	b.order = append(b.order, name)
	return b
}

// Connect adds a directed edge (from, fromPort) -> (to, toPort). Either end
// may name the reserved pseudo-child "external" to cross the network
// boundary.
func (b *Builder) Connect(from, fromPort, to, toPort string) *Builder {
	b.connections = append(b.connections, types.Connection{
		From: from, FromPort: fromPort, To: to, ToPort: toPort,
	})
	return b
}

// InPort declares an external input port, to be wired as the "external"
// source endpoint of exactly one connection.
func (b *Builder) InPort(name string) *Builder {
	b.inports = append(b.inports, name)
	return b
}

// OutPort declares an external output port, to be wired as the "external"
// target endpoint of exactly one connection.
func (b *Builder) OutPort(name string) *Builder {
	b.outports = append(b.outports, name)
	return b
}

// Build validates the network description and returns the Network. The
// network is immutable afterwards.
func (b *Builder) Build() (*Network, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	blocks := make(map[string]Node, len(b.blocks))
	for name, node := range b.blocks {
		blocks[name] = node
	}
	net := &Network{
		name:        b.name,
		order:       append([]string(nil), b.order...),
		blocks:      blocks,
		connections: append([]types.Connection(nil), b.connections...),
		inports:     append([]string(nil), b.inports...),
		outports:    append([]string(nil), b.outports...),
	}
	if err := validate(net); err != nil {
		return nil, err
	}
	b.logger.Info("network built",
		zap.String("network", b.name),
		zap.Int("blocks", len(net.order)),
		zap.Int("connections", len(net.connections)),
	)
	return net, nil
}

package network

import (
	"go.uber.org/zap"

	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

// CompileOption configures a compile.
type CompileOption func(*compileOptions)

type compileOptions struct {
	logger *zap.Logger
}

// WithLogger sets the compile logger.
func WithLogger(logger *zap.Logger) CompileOption {
	return func(o *compileOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// endpoint is a fully-qualified (agent, port) pair in the flattened graph.
type endpoint struct {
	name, port string
}

// flatGraph is the result of flattening one network: its leaf agents under
// path-qualified names, the fully-resolved interior connections, and the
// bindings of its declared external ports to interior endpoints.
type flatGraph struct {
	order   []string
	agents  map[string]*agent.Agent
	conns   []types.Connection
	inBind  map[string]endpoint
	outBind map[string]endpoint
}

// Compile transforms a network description into a flat, wired, runnable
// Program. The stages are total and run in order: validate, insert
// fan-out/fan-in adapters, flatten nesting, wire mailboxes, instantiate. The
// input Network is never mutated, so compiling it again yields a second,
// fully independent Program.
func Compile(net *Network, opts ...CompileOption) (*Program, error) {
	o := compileOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With(zap.String("component", "compiler"), zap.String("network", net.Name()))

	if len(net.inports) > 0 || len(net.outports) > 0 {
		return nil, types.NewErrorf(types.ErrRootExternal,
			"network %s declares external ports but is compiled as the root", net.name)
	}

	flat, err := flatten(net, "")
	if err != nil {
		return nil, err
	}

	// Wire mailboxes: exactly one per flattened input port, shared with the
	// producing output port. Post-rewrite each target port appears at most
	// once, so a second binding here would be a compiler bug.
	bound := make(map[endpoint]bool)
	for _, c := range flat.conns {
		src, srcPort := c.Source()
		dst, dstPort := c.Target()
		tgt := endpoint{dst, dstPort}
		if bound[tgt] {
			return nil, types.NewErrorf(types.ErrUnknownPort,
				"connection %s: input port already wired after rewrite", c)
		}
		bound[tgt] = true
		mb := agent.NewMailbox()
		if err := flat.agents[dst].BindIn(dstPort, mb); err != nil {
			return nil, err
		}
		if err := flat.agents[src].BindOut(srcPort, mb); err != nil {
			return nil, err
		}
	}

	for _, name := range flat.order {
		a := flat.agents[name]
		for _, p := range a.InPorts() {
			if !bound[endpoint{name, p}] {
				logger.Debug("input port left unwired",
					zap.String("agent", name), zap.String("port", p))
			}
		}
	}

	logger.Info("network compiled",
		zap.Int("agents", len(flat.order)),
		zap.Int("connections", len(flat.conns)),
	)
	return &Program{
		name:   net.name,
		order:  flat.order,
		agents: flat.agents,
		conns:  flat.conns,
	}, nil
}

// qualify joins a nesting prefix and a child name with the path separator.
func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + types.PathSep + name
}

// flatten recursively replaces nested-network children with their own
// flattened agent sets under path-qualified names, and resolves connections
// that terminate in a child network's "external" pseudo-child by substituting
// the interior endpoint the child declared. Each level is validated and
// rewritten before its edges are resolved, so arbitrary nesting depth and
// multiple external ports per level resolve transitively.
func flatten(n *Network, prefix string) (*flatGraph, error) {
	if err := validate(n); err != nil {
		return nil, err
	}
	lvl := rewriteAdapters(n)

	flat := &flatGraph{
		agents:  make(map[string]*agent.Agent),
		inBind:  make(map[string]endpoint),
		outBind: make(map[string]endpoint),
	}
	subs := make(map[string]*flatGraph)

	for _, name := range lvl.order {
		full := qualify(prefix, name)
		switch child := lvl.blocks[name].(type) {
		case *agent.Agent:
			flat.agents[full] = child.CloneAs(full)
			flat.order = append(flat.order, full)
		case *Network:
			sub, err := flatten(child, full)
			if err != nil {
				return nil, err
			}
			subs[name] = sub
			for _, an := range sub.order {
				flat.agents[an] = sub.agents[an]
				flat.order = append(flat.order, an)
			}
			flat.conns = append(flat.conns, sub.conns...)
		default:
			return nil, types.NewErrorf(types.ErrUnknownBlock,
				"network %s child %q is neither an agent nor a network", n.name, name)
		}
	}

	resolveSource := func(c types.Connection) endpoint {
		name, port := c.Source()
		if sub, ok := subs[name]; ok {
			return sub.outBind[port]
		}
		return endpoint{qualify(prefix, name), port}
	}
	resolveTarget := func(c types.Connection) endpoint {
		name, port := c.Target()
		if sub, ok := subs[name]; ok {
			return sub.inBind[port]
		}
		return endpoint{qualify(prefix, name), port}
	}

	for _, c := range lvl.conns {
		switch {
		case c.From == types.External:
			flat.inBind[c.FromPort] = resolveTarget(c)
		case c.To == types.External:
			flat.outBind[c.ToPort] = resolveSource(c)
		default:
			src, dst := resolveSource(c), resolveTarget(c)
			flat.conns = append(flat.conns, types.Connection{
				From: src.name, FromPort: src.port, To: dst.name, ToPort: dst.port,
			})
		}
	}
	return flat, nil
}

package network

import (
	"strings"

	"github.com/BaSui01/flownet/types"
)

// checkChildName enforces the naming rules for direct children: non-empty,
// not the reserved pseudo-child, and free of the path separator.
func checkChildName(network, name string) error {
	if name == "" {
		return types.NewErrorf(types.ErrInvalidName,
			"network %s has a child with an empty name", network)
	}
	if name == types.External {
		return types.NewErrorf(types.ErrReservedName,
			"network %s uses reserved child name %q", network, types.External)
	}
	if strings.Contains(name, types.PathSep) {
		return types.NewErrorf(types.ErrInvalidName,
			"network %s child %q contains reserved separator %q", network, name, types.PathSep)
	}
	if strings.HasPrefix(name, adapterPrefix) {
		return types.NewErrorf(types.ErrReservedName,
			"network %s child %q uses reserved prefix %q", network, name, adapterPrefix)
	}
	return nil
}

// validate runs the stage-1 structural checks of the compiler: child naming,
// endpoint resolution, and external port wiring. It is total: the first
// violation aborts with the offending name and port.
func validate(n *Network) error {
	if len(n.order) == 0 {
		return types.NewErrorf(types.ErrEmptyNetwork, "network %s has no blocks", n.name)
	}
	for _, name := range n.order {
		if err := checkChildName(n.name, name); err != nil {
			return err
		}
	}

	for _, c := range n.connections {
		if c.From == types.External && c.To == types.External {
			return types.NewErrorf(types.ErrInvalidName,
				"network %s connection %s: external-to-external passthrough is not supported", n.name, c)
		}
		if err := n.validateSource(c); err != nil {
			return err
		}
		if err := n.validateTarget(c); err != nil {
			return err
		}
	}

	// Every declared external port must be wired by exactly one connection in
	// its declared role.
	for _, ip := range n.inports {
		count := 0
		for _, c := range n.connections {
			if c.From == types.External && c.FromPort == ip {
				count++
			}
		}
		if count != 1 {
			return types.NewErrorf(types.ErrExternalUnwired,
				"network %s inport %q is wired by %d connections, want exactly 1", n.name, ip, count)
		}
	}
	for _, op := range n.outports {
		count := 0
		for _, c := range n.connections {
			if c.To == types.External && c.ToPort == op {
				count++
			}
		}
		if count != 1 {
			return types.NewErrorf(types.ErrExternalUnwired,
				"network %s outport %q is wired by %d connections, want exactly 1", n.name, op, count)
		}
	}
	return nil
}

// validateSource checks that the producing endpoint of c resolves to a
// declared child output port or a declared external inport.
func (n *Network) validateSource(c types.Connection) error {
	if c.From == types.External {
		if !contains(n.inports, c.FromPort) {
			return types.NewErrorf(types.ErrExternalUndeclared,
				"network %s connection %s: external inport %q is not declared", n.name, c, c.FromPort)
		}
		return nil
	}
	child, ok := n.blocks[c.From]
	if !ok {
		return types.NewErrorf(types.ErrUnknownBlock,
			"network %s connection %s: unknown block %q", n.name, c, c.From)
	}
	if !contains(child.OutPorts(), c.FromPort) {
		return types.NewErrorf(types.ErrUnknownPort,
			"network %s connection %s: block %q has no output port %q", n.name, c, c.From, c.FromPort)
	}
	return nil
}

// validateTarget checks that the consuming endpoint of c resolves to a
// declared child input port or a declared external outport.
func (n *Network) validateTarget(c types.Connection) error {
	if c.To == types.External {
		if !contains(n.outports, c.ToPort) {
			return types.NewErrorf(types.ErrExternalUndeclared,
				"network %s connection %s: external outport %q is not declared", n.name, c, c.ToPort)
		}
		return nil
	}
	child, ok := n.blocks[c.To]
	if !ok {
		return types.NewErrorf(types.ErrUnknownBlock,
			"network %s connection %s: unknown block %q", n.name, c, c.To)
	}
	if !contains(child.InPorts(), c.ToPort) {
		return types.NewErrorf(types.ErrUnknownPort,
			"network %s connection %s: block %q has no input port %q", n.name, c, c.To, c.ToPort)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

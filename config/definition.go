package config

import "github.com/BaSui01/flownet/types"

// NetworkDefinition is the YAML shape of a network, possibly nested.
type NetworkDefinition struct {
	// Name is the network name.
	Name string `yaml:"name"`
	// Blocks maps child name to its definition. Children are added to the
	// network in sorted-name order so a definition always compiles to the
	// same graph.
	Blocks map[string]BlockDefinition `yaml:"blocks"`
	// Connections lists the edges between child ports.
	Connections []types.Connection `yaml:"connections"`
	// InPorts declares external input ports.
	InPorts []string `yaml:"inports,omitempty"`
	// OutPorts declares external output ports.
	OutPorts []string `yaml:"outports,omitempty"`
}

// BlockDefinition is the YAML shape of one child block.
type BlockDefinition struct {
	// Kind selects the block type: source, transform, sink, broadcast,
	// merge, merge_synch, split, or network.
	Kind string `yaml:"kind"`
	// Factory names the registered adapter factory for source, transform,
	// sink, and split kinds.
	Factory string `yaml:"factory,omitempty"`
	// Params are passed to the factory. Scalar string params may be
	// overridden via <PREFIX>_<BLOCK>_<PARAM> environment variables.
	Params map[string]any `yaml:"params,omitempty"`
	// Inputs is the fan-in width for merge kinds.
	Inputs int `yaml:"inputs,omitempty"`
	// Outputs is the fan-out width for broadcast and split kinds.
	Outputs int `yaml:"outputs,omitempty"`
	// IntervalMs paces a source to one message per interval.
	IntervalMs int `yaml:"interval_ms,omitempty"`
	// Network is the nested definition for the network kind.
	Network *NetworkDefinition `yaml:"network,omitempty"`
}

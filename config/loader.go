package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/BaSui01/flownet/block"
	"github.com/BaSui01/flownet/network"
	"github.com/BaSui01/flownet/types"
)

// Loader reads a network description and builds the corresponding Network.
type Loader struct {
	path      string
	data      []byte
	envPrefix string
	registry  *Registry
	logger    *zap.Logger
}

// NewLoader creates a loader with the built-in registry and the default
// "FLOWNET" environment prefix.
func NewLoader() *Loader {
	return &Loader{
		envPrefix: "FLOWNET",
		registry:  NewRegistry(),
		logger:    zap.NewNop(),
	}
}

// WithConfigPath sets the YAML file to load.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.path = path
	return l
}

// WithData sets the YAML document directly, bypassing the filesystem.
func (l *Loader) WithData(data []byte) *Loader {
	l.data = data
	return l
}

// WithEnvPrefix sets the environment variable prefix for param overrides.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// WithRegistry sets a custom factory registry.
func (l *Loader) WithRegistry(r *Registry) *Loader {
	if r != nil {
		l.registry = r
	}
	return l
}

// WithLogger sets a custom logger.
func (l *Loader) WithLogger(logger *zap.Logger) *Loader {
	if logger != nil {
		l.logger = logger.With(zap.String("component", "config_loader"))
	}
	return l
}

// Load parses the description, applies environment overrides, and builds the
// Network. Unknown kinds and factories are compile-time structural faults.
func (l *Loader) Load() (*network.Network, error) {
	data := l.data
	if data == nil {
		if l.path == "" {
			return nil, types.NewError(types.ErrConfigInvalid, "no config path or data set")
		}
		raw, err := os.ReadFile(l.path)
		if err != nil {
			return nil, types.NewErrorf(types.ErrConfigInvalid, "read %s", l.path).WithCause(err)
		}
		data = raw
	}

	var def NetworkDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, types.NewError(types.ErrConfigInvalid, "parse network description").WithCause(err)
	}
	l.applyEnv(&def)

	net, err := l.buildNetwork(&def)
	if err != nil {
		return nil, err
	}
	l.logger.Info("network description loaded",
		zap.String("network", net.Name()),
		zap.Int("blocks", len(net.BlockNames())),
	)
	return net, nil
}

// applyEnv overrides scalar string params with <PREFIX>_<BLOCK>_<PARAM>
// environment variables. Nested networks are visited recursively with the
// block name folded into the variable name.
func (l *Loader) applyEnv(def *NetworkDefinition) {
	if l.envPrefix == "" {
		return
	}
	for name, bdef := range def.Blocks {
		for key := range bdef.Params {
			env := envKey(l.envPrefix, name, key)
			if v, ok := os.LookupEnv(env); ok {
				bdef.Params[key] = v
				l.logger.Debug("param overridden from environment",
					zap.String("block", name), zap.String("param", key), zap.String("env", env))
			}
		}
		if bdef.Network != nil {
			sub := *l
			sub.envPrefix = envKey(l.envPrefix, name, "")
			sub.applyEnv(bdef.Network)
		}
	}
}

func envKey(parts ...string) string {
	var clean []string
	for _, p := range parts {
		if p == "" {
			continue
		}
		upper := strings.ToUpper(p)
		var b strings.Builder
		for _, r := range upper {
			if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			} else {
				b.WriteRune('_')
			}
		}
		clean = append(clean, b.String())
	}
	return strings.Join(clean, "_")
}

func (l *Loader) buildNetwork(def *NetworkDefinition) (*network.Network, error) {
	if def.Name == "" {
		return nil, types.NewError(types.ErrConfigInvalid, "network has no name")
	}
	b := network.NewBuilder(def.Name).WithLogger(l.logger)

	names := make([]string, 0, len(def.Blocks))
	for name := range def.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		bdef := def.Blocks[name]
		node, err := l.buildBlock(name, bdef)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", name, err)
		}
		b.Add(node)
	}
	for _, c := range def.Connections {
		b.Connect(c.From, c.FromPort, c.To, c.ToPort)
	}
	for _, p := range def.InPorts {
		b.InPort(p)
	}
	for _, p := range def.OutPorts {
		b.OutPort(p)
	}
	return b.Build()
}

func (l *Loader) buildBlock(name string, def BlockDefinition) (network.Node, error) {
	switch def.Kind {
	case "source":
		factory, err := l.registry.source(def.Factory)
		if err != nil {
			return nil, err
		}
		open, err := factory(def.Params)
		if err != nil {
			return nil, err
		}
		var opts []block.SourceOption
		if def.IntervalMs > 0 {
			opts = append(opts, block.WithInterval(time.Duration(def.IntervalMs)*time.Millisecond))
		}
		return block.NewSource(name, open, opts...), nil

	case "transform":
		factory, err := l.registry.transform(def.Factory)
		if err != nil {
			return nil, err
		}
		f, err := factory(def.Params)
		if err != nil {
			return nil, err
		}
		return block.NewTransform(name, f), nil

	case "sink":
		factory, err := l.registry.sink(def.Factory)
		if err != nil {
			return nil, err
		}
		open, err := factory(def.Params)
		if err != nil {
			return nil, err
		}
		return block.NewResourceSink(name, open), nil

	case "broadcast":
		if def.Outputs < 1 {
			return nil, types.NewErrorf(types.ErrConfigInvalid, "broadcast needs outputs >= 1, got %d", def.Outputs)
		}
		return block.NewBroadcast(name, def.Outputs), nil

	case "merge":
		if def.Inputs < 1 {
			return nil, types.NewErrorf(types.ErrConfigInvalid, "merge needs inputs >= 1, got %d", def.Inputs)
		}
		return block.NewMergeAsynch(name, def.Inputs), nil

	case "merge_synch":
		if def.Inputs < 1 {
			return nil, types.NewErrorf(types.ErrConfigInvalid, "merge_synch needs inputs >= 1, got %d", def.Inputs)
		}
		return block.NewMergeSynch(name, def.Inputs), nil

	case "split":
		if def.Outputs < 2 {
			return nil, types.NewErrorf(types.ErrConfigInvalid, "split needs outputs >= 2, got %d", def.Outputs)
		}
		factory, err := l.registry.router(def.Factory)
		if err != nil {
			return nil, err
		}
		route, err := factory(def.Params)
		if err != nil {
			return nil, err
		}
		return block.NewSplit(name, def.Outputs, route), nil

	case "network":
		if def.Network == nil {
			return nil, types.NewError(types.ErrConfigInvalid, "network kind needs a nested definition")
		}
		sub := *def.Network
		sub.Name = name
		return l.buildNetwork(&sub)

	default:
		return nil, types.NewErrorf(types.ErrUnknownKind, "unknown block kind %q", def.Kind)
	}
}

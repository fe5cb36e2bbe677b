package config

import (
	"fmt"
	"strings"

	"github.com/BaSui01/flownet/block"
	"github.com/BaSui01/flownet/connector"
	"github.com/BaSui01/flownet/types"
)

// SourceFactory builds a source opener from block params.
type SourceFactory func(params map[string]any) (block.SourceOpener, error)

// TransformFactory builds a transform function from block params.
type TransformFactory func(params map[string]any) (block.TransformFunc, error)

// SinkFactory builds a sink opener from block params.
type SinkFactory func(params map[string]any) (block.SinkOpener, error)

// RouterFactory builds a split router from block params.
type RouterFactory func(params map[string]any) (block.RouteFunc, error)

// Registry maps factory names to adapter constructors. A fresh registry
// carries the built-in connector-backed factories; embedders register their
// own on top.
type Registry struct {
	sources    map[string]SourceFactory
	transforms map[string]TransformFactory
	sinks      map[string]SinkFactory
	routers    map[string]RouterFactory
}

// NewRegistry creates a registry pre-populated with the built-in factories.
func NewRegistry() *Registry {
	r := &Registry{
		sources:    make(map[string]SourceFactory),
		transforms: make(map[string]TransformFactory),
		sinks:      make(map[string]SinkFactory),
		routers:    make(map[string]RouterFactory),
	}
	r.registerBuiltins()
	return r
}

// RegisterSource registers (or replaces) a source factory.
func (r *Registry) RegisterSource(name string, f SourceFactory) { r.sources[name] = f }

// RegisterTransform registers (or replaces) a transform factory.
func (r *Registry) RegisterTransform(name string, f TransformFactory) { r.transforms[name] = f }

// RegisterSink registers (or replaces) a sink factory.
func (r *Registry) RegisterSink(name string, f SinkFactory) { r.sinks[name] = f }

// RegisterRouter registers (or replaces) a split router factory.
func (r *Registry) RegisterRouter(name string, f RouterFactory) { r.routers[name] = f }

func (r *Registry) source(name string) (SourceFactory, error) {
	f, ok := r.sources[name]
	if !ok {
		return nil, types.NewErrorf(types.ErrUnknownFactory, "unknown source factory %q", name)
	}
	return f, nil
}

func (r *Registry) transform(name string) (TransformFactory, error) {
	f, ok := r.transforms[name]
	if !ok {
		return nil, types.NewErrorf(types.ErrUnknownFactory, "unknown transform factory %q", name)
	}
	return f, nil
}

func (r *Registry) sink(name string) (SinkFactory, error) {
	f, ok := r.sinks[name]
	if !ok {
		return nil, types.NewErrorf(types.ErrUnknownFactory, "unknown sink factory %q", name)
	}
	return f, nil
}

func (r *Registry) router(name string) (RouterFactory, error) {
	f, ok := r.routers[name]
	if !ok {
		return nil, types.NewErrorf(types.ErrUnknownFactory, "unknown router factory %q", name)
	}
	return f, nil
}

func (r *Registry) registerBuiltins() {
	r.RegisterSource("values", func(params map[string]any) (block.SourceOpener, error) {
		raw, ok := params["values"].([]any)
		if !ok {
			return nil, types.NewError(types.ErrConfigInvalid, `source "values" needs a list param "values"`)
		}
		return block.SourceOf(raw...), nil
	})
	r.RegisterSource("file_lines", func(params map[string]any) (block.SourceOpener, error) {
		path, err := stringParam(params, "path")
		if err != nil {
			return nil, err
		}
		return connector.FileLines(path), nil
	})
	r.RegisterSource("csv", func(params map[string]any) (block.SourceOpener, error) {
		path, err := stringParam(params, "path")
		if err != nil {
			return nil, err
		}
		return connector.CSVSource(path), nil
	})
	r.RegisterSource("json_lines", func(params map[string]any) (block.SourceOpener, error) {
		path, err := stringParam(params, "path")
		if err != nil {
			return nil, err
		}
		return connector.JSONLinesSource(path), nil
	})
	r.RegisterSource("http_poll", func(params map[string]any) (block.SourceOpener, error) {
		url, err := stringParam(params, "url")
		if err != nil {
			return nil, err
		}
		var opts []connector.HTTPOption
		if n, ok := intParam(params, "max_polls"); ok {
			opts = append(opts, connector.WithMaxPolls(n))
		}
		return connector.HTTPPollSource(url, opts...), nil
	})

	r.RegisterTransform("upper", func(map[string]any) (block.TransformFunc, error) {
		return stringTransform(strings.ToUpper), nil
	})
	r.RegisterTransform("lower", func(map[string]any) (block.TransformFunc, error) {
		return stringTransform(strings.ToLower), nil
	})
	r.RegisterTransform("trim", func(map[string]any) (block.TransformFunc, error) {
		return stringTransform(strings.TrimSpace), nil
	})
	r.RegisterTransform("prefix", func(params map[string]any) (block.TransformFunc, error) {
		p, err := stringParam(params, "prefix")
		if err != nil {
			return nil, err
		}
		return stringTransform(func(s string) string { return p + s }), nil
	})

	r.RegisterSink("file", func(params map[string]any) (block.SinkOpener, error) {
		path, err := stringParam(params, "path")
		if err != nil {
			return nil, err
		}
		return connector.FileSink(path), nil
	})
	r.RegisterSink("json_lines", func(params map[string]any) (block.SinkOpener, error) {
		path, err := stringParam(params, "path")
		if err != nil {
			return nil, err
		}
		return connector.JSONLinesSink(path), nil
	})
	r.RegisterSink("webhook", func(params map[string]any) (block.SinkOpener, error) {
		url, err := stringParam(params, "url")
		if err != nil {
			return nil, err
		}
		sink := connector.WebhookSink(url)
		return func() (block.SinkFunc, func() error, error) { return sink, nil, nil }, nil
	})
	r.RegisterSink("discard", func(map[string]any) (block.SinkOpener, error) {
		return func() (block.SinkFunc, func() error, error) {
			return func(any) error { return nil }, nil, nil
		}, nil
	})
}

// stringTransform lifts a string function into the transform contract,
// faulting on non-string payloads.
func stringTransform(f func(string) string) block.TransformFunc {
	return func(msg any) (any, error) {
		s, ok := msg.(string)
		if !ok {
			return nil, fmt.Errorf("expected string payload, got %T", msg)
		}
		return f(s), nil
	}
}

func stringParam(params map[string]any, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", types.NewErrorf(types.ErrConfigInvalid, "missing param %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", types.NewErrorf(types.ErrConfigInvalid, "param %q must be a string, got %T", key, v)
	}
	return s, nil
}

func intParam(params map[string]any, key string) (int, bool) {
	v, ok := params[key]
	if !ok {
		return 0, false
	}
	if n, ok := v.(int); ok {
		return n, true
	}
	return 0, false
}

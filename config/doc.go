// Package config loads declarative network descriptions from YAML: a block
// map, a connection list, and optional external ports, with environment
// variable overrides for block parameters. Block kinds are bound to code
// through a Registry of named source, transform, sink, and router factories.
//
//	net, err := config.NewLoader().
//	    WithConfigPath("pipeline.yaml").
//	    WithEnvPrefix("FLOWNET").
//	    Load()
//
// Precedence: YAML file values, then environment variables.
package config

// Package flownet provides a top-level convenience entry point for composing
// and running dataflow networks with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/flownet"
//
//	collected := connector.NewCollector()
//	net, err := flownet.NewNetwork("hello").
//	    Add(flownet.Source("src", block.SourceOf("hello", "world"))).
//	    Add(flownet.Transform("upper", upperFn)).
//	    Add(flownet.Sink("out", collected.Sink())).
//	    Connect("src", "out", "upper", "in").
//	    Connect("upper", "out", "out", "in").
//	    Build()
//	err = flownet.Run(context.Background(), net)
//
// This is a thin wrapper over the network, block, and runtime packages; both
// surfaces produce identical results. Use this package when you prefer the
// shorter import path.
package flownet

import (
	"github.com/BaSui01/flownet/block"
	"github.com/BaSui01/flownet/network"
	"github.com/BaSui01/flownet/runtime"
	"github.com/BaSui01/flownet/types"
)

// Stop is the end-of-stream sentinel. See [types.Stop].
var Stop = types.Stop

// IsStop reports whether a message is the STOP sentinel.
var IsStop = types.IsStop

// NewNetwork starts a fluent network builder.
func NewNetwork(name string) *network.Builder {
	return network.NewBuilder(name)
}

// Compile transforms a network into a runnable program.
var Compile = network.Compile

// Run compiles and runs a network, blocking until every agent terminates.
var Run = runtime.Run

// Re-export block constructors so simple callers never import block/.

// Source creates a Source block. See [block.NewSource].
var Source = block.NewSource

// Transform creates a Transform block. See [block.NewTransform].
var Transform = block.NewTransform

// Sink creates a Sink block. See [block.NewSink].
var Sink = block.NewSink

// Broadcast creates a fan-out adapter block. See [block.NewBroadcast].
var Broadcast = block.NewBroadcast

// MergeAsynch creates an asynchronous fan-in block. See [block.NewMergeAsynch].
var MergeAsynch = block.NewMergeAsynch

// MergeSynch creates a round-robin fan-in block. See [block.NewMergeSynch].
var MergeSynch = block.NewMergeSynch

// Split creates a content-routed fan-out block. See [block.NewSplit].
var Split = block.NewSplit

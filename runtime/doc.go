// Package runtime executes compiled programs: one goroutine per flattened
// agent, joined when every agent has observed and propagated STOP or
// exhausted on its own. It also provides the prometheus metrics collector
// for message, STOP, and fault accounting.
package runtime

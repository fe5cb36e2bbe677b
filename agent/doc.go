// Package agent provides the execution primitive of the flownet runtime: a
// named set of input and output ports, a body run on its own goroutine, and
// the Send/Recv pair that is the only point of cross-goroutine interaction.
//
// Agents are built declaratively (usually via the block package), wired to
// mailboxes by the network compiler, and driven by the runtime scheduler.
package agent

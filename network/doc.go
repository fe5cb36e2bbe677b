// Package network provides the declarative graph surface of flownet: a named,
// possibly nested container of agents and sub-networks plus a connection
// list, a fluent Builder for assembling it, and the compiler that turns a
// Network into a flat, wired, runnable Program.
//
// The compiler is a single pass of total stages: structural validation,
// automatic Broadcast/MergeAsynch adapter insertion for fan-out/fan-in ports,
// recursive flattening of nested networks into path-qualified agent names,
// mailbox wiring, and program instantiation. Errors at any stage abort the
// compile with the offending name and port.
package network

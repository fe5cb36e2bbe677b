// Package block provides the built-in agent kinds of the flownet runtime:
// Source (0 in, 1 out), Transform (1 in, 1 out), Sink (1 in, 0 out),
// Broadcast (1 in, N out, copies), MergeAsynch and MergeSynch (N in, 1 out),
// and Split (1 in, N out, content-routed).
//
// Every constructor returns an ordinary *agent.Agent prototype; the network
// compiler wires and clones it. Blocks own the STOP protocol: each block
// emits STOP on each of its output ports exactly once, as the last message.
package block

package network

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/BaSui01/flownet/block"
	"github.com/BaSui01/flownet/types"
)

// level is the compiler's mutable working copy of one nesting level. The
// user's Network is never modified; adapter insertion and flattening operate
// on levels only.
type level struct {
	order  []string
	blocks map[string]Node
	conns  []types.Connection
}

func newLevel(n *Network) *level {
	l := &level{
		order:  append([]string(nil), n.order...),
		blocks: make(map[string]Node, len(n.blocks)),
		conns:  append([]types.Connection(nil), n.connections...),
	}
	for name, node := range n.blocks {
		l.blocks[name] = node
	}
	return l
}

func (l *level) addBlock(name string, node Node) {
	l.blocks[name] = node
	l.order = append(l.order, name)
}

// adapterPrefix marks synthesized children. checkChildName rejects it in user
// names, so adapters can never collide with user blocks.
const adapterPrefix = "__"

// adapterName builds a synthesized child name. The reserved prefix keeps it
// out of the user namespace; seq and a uuid fragment keep names unique and
// readable in logs and flattened paths.
func adapterName(kind string, seq int) string {
	return fmt.Sprintf("%s%s_%d_%s", adapterPrefix, kind, seq, uuid.NewString()[:8])
}

// rewriteAdapters eliminates fan-out and fan-in from one level's edge set by
// inserting Broadcast and MergeAsynch children. A single fan-out pass
// followed by a single fan-in pass suffices: adapters have exactly one edge
// per port on their rewritten sides, and any fan-in produced by the fan-out
// pass (duplicate edges collapsing onto one target) is caught by the fan-in
// pass that runs on the updated edge set.
func rewriteAdapters(n *Network) *level {
	l := newLevel(n)
	insertFanout(l)
	insertFanin(l)
	return l
}

type portKey struct {
	name, port string
}

// insertFanout synthesizes a Broadcast child for every (from, fromPort) with
// more than one outgoing edge, replacing those edges with from->broadcast and
// broadcast.out_i->target_i in original edge order.
func insertFanout(l *level) {
	groups := make(map[portKey][]int)
	for i, c := range l.conns {
		if c.From == types.External {
			continue
		}
		name, port := c.Source()
		groups[portKey{name, port}] = append(groups[portKey{name, port}], i)
	}

	handled := make(map[int]bool)
	var out []types.Connection
	seq := 0
	for i, c := range l.conns {
		if handled[i] {
			continue
		}
		src, srcPort := c.Source()
		idxs := groups[portKey{src, srcPort}]
		if c.From == types.External || len(idxs) < 2 {
			out = append(out, c)
			continue
		}
		name := adapterName("fanout", seq)
		seq++
		l.addBlock(name, block.NewBroadcast(name, len(idxs)))
		out = append(out, types.Connection{
			From: src, FromPort: srcPort, To: name, ToPort: block.PortIn,
		})
		for j, idx := range idxs {
			orig := l.conns[idx]
			out = append(out, types.Connection{
				From: name, FromPort: block.OutPort(j), To: orig.To, ToPort: orig.ToPort,
			})
			handled[idx] = true
		}
	}
	l.conns = out
}

// insertFanin synthesizes a MergeAsynch child for every (to, toPort) with
// more than one incoming edge, replacing those edges with source_i->merge.in_i
// plus merge.out->target.
func insertFanin(l *level) {
	groups := make(map[portKey][]int)
	for i, c := range l.conns {
		if c.To == types.External {
			continue
		}
		name, port := c.Target()
		groups[portKey{name, port}] = append(groups[portKey{name, port}], i)
	}

	handled := make(map[int]bool)
	var out []types.Connection
	seq := 0
	for i, c := range l.conns {
		if handled[i] {
			continue
		}
		dst, dstPort := c.Target()
		idxs := groups[portKey{dst, dstPort}]
		if c.To == types.External || len(idxs) < 2 {
			out = append(out, c)
			continue
		}
		name := adapterName("fanin", seq)
		seq++
		l.addBlock(name, block.NewMergeAsynch(name, len(idxs)))
		for j, idx := range idxs {
			orig := l.conns[idx]
			out = append(out, types.Connection{
				From: orig.From, FromPort: orig.FromPort, To: name, ToPort: block.InPort(j),
			})
			handled[idx] = true
		}
		out = append(out, types.Connection{
			From: name, FromPort: block.PortOut, To: dst, ToPort: dstPort,
		})
	}
	l.conns = out
}

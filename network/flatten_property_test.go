package network

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/BaSui01/flownet/block"
)

// incStage wraps inner (or a bare increment transform at depth 0) into a
// network that applies one extra increment, exposing external in/out ports.
func incStage(t *rapid.T, depth int, inner *Network) *Network {
	inc := block.NewTransform(fmt.Sprintf("inc_%d", depth), func(m any) (any, error) {
		return m.(int) + 1, nil
	})
	b := NewBuilder(fmt.Sprintf("stage_%d", depth)).
		Add(inc).
		InPort("in").
		OutPort("out")
	if inner == nil {
		b = b.
			Connect("external", "in", inc.Name(), "in").
			Connect(inc.Name(), "out", "external", "out")
	} else {
		b = b.
			Add(inner).
			Connect("external", "in", inner.Name(), "in").
			Connect(inner.Name(), "out", inc.Name(), "in").
			Connect(inc.Name(), "out", "external", "out")
	}
	net, err := b.Build()
	if err != nil {
		t.Fatalf("build stage %d: %v", depth, err)
	}
	return net
}

// TestProperty_FlatteningIsTransparent checks that arbitrarily deep nesting
// of increment stages behaves identically to the equivalent flat arithmetic.
func TestProperty_FlatteningIsTransparent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		depth := rapid.IntRange(1, 5).Draw(rt, "depth")
		values := rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 20).Draw(rt, "values")

		var inner *Network
		for d := 0; d < depth; d++ {
			inner = incStage(rt, d, inner)
		}

		msgs := make([]any, len(values))
		for i, v := range values {
			msgs[i] = v
		}
		sunk := &collect{}
		b := NewBuilder("root").
			Add(block.NewSource("src", block.SourceOf(msgs...))).
			Add(inner).
			Add(block.NewSink("out", sunk.sink())).
			Connect("src", "out", inner.Name(), "in").
			Connect(inner.Name(), "out", "out", "in")
		net, err := b.Build()
		if err != nil {
			rt.Fatalf("build root: %v", err)
		}

		p, err := Compile(net)
		if err != nil {
			rt.Fatalf("compile: %v", err)
		}
		runSilently(p)

		got := sunk.snapshot()
		require.Len(rt, got, len(values))
		for i, v := range values {
			require.Equal(rt, v+depth, got[i], "value %d through %d stages", v, depth)
		}
	})
}

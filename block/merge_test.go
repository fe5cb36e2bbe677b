package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

func TestMergeAsynch_ForwardsAllInputsWithSingleTerminalStop(t *testing.T) {
	merge := NewMergeAsynch("merge", 2)
	feed(t, merge, InPort(0), 1, 2)
	feed(t, merge, InPort(1), 10, 20)
	out := tap(t, merge, PortOut)

	require.NoError(t, merge.Run())
	payloads := drain(t, out)

	assert.ElementsMatch(t, []any{1, 2, 10, 20}, payloads)
	assertRelativeOrder(t, payloads, 1, 2)
	assertRelativeOrder(t, payloads, 10, 20)
}

func TestMergeAsynch_StopOnlyAfterEveryInputStops(t *testing.T) {
	merge := NewMergeAsynch("merge", 2)

	fast := agent.NewMailbox()
	require.NoError(t, merge.BindIn(InPort(0), fast))
	slow := agent.NewMailbox()
	require.NoError(t, merge.BindIn(InPort(1), slow))
	out := tap(t, merge, PortOut)

	fast.Put("f1")
	fast.Put(types.Stop)

	done := make(chan struct{})
	go func() {
		_ = merge.Run()
		close(done)
	}()

	// One input stopped; the merge must keep draining the live input.
	slow.Put("s1")
	slow.Put("s2")
	slow.Put(types.Stop)
	<-done

	payloads := drain(t, out)
	assert.ElementsMatch(t, []any{"f1", "s1", "s2"}, payloads)
}

func TestMergeAsynch_SingleInputDegeneratesToPassthrough(t *testing.T) {
	merge := NewMergeAsynch("merge", 1)
	feed(t, merge, InPort(0), "a", "b")
	out := tap(t, merge, PortOut)

	require.NoError(t, merge.Run())
	assert.Equal(t, []any{"a", "b"}, drain(t, out))
}

func TestMergeSynch_EmitsRoundRobinTuples(t *testing.T) {
	merge := NewMergeSynch("merge", 2)
	feed(t, merge, InPort(0), "a1", "a2")
	feed(t, merge, InPort(1), "b1", "b2")
	out := tap(t, merge, PortOut)

	require.NoError(t, merge.Run())
	payloads := drain(t, out)
	require.Len(t, payloads, 2)
	assert.Equal(t, []any{"a1", "b1"}, payloads[0])
	assert.Equal(t, []any{"a2", "b2"}, payloads[1])
}

func TestMergeSynch_StopMidRoundDiscardsPartialBatch(t *testing.T) {
	merge := NewMergeSynch("merge", 2)
	// Input 0 has one extra message; input 1 stops first, mid-round.
	feed(t, merge, InPort(0), "a1", "a2")
	feed(t, merge, InPort(1), "b1")
	out := tap(t, merge, PortOut)

	require.NoError(t, merge.Run())
	payloads := drain(t, out)
	require.Len(t, payloads, 1, "partial second batch must be discarded")
	assert.Equal(t, []any{"a1", "b1"}, payloads[0])
}

// assertRelativeOrder asserts a appears before b in payloads.
func assertRelativeOrder(t *testing.T, payloads []any, a, b any) {
	t.Helper()
	ia, ib := -1, -1
	for i, v := range payloads {
		if v == a {
			ia = i
		}
		if v == b {
			ib = i
		}
	}
	require.GreaterOrEqual(t, ia, 0)
	require.GreaterOrEqual(t, ib, 0)
	assert.Less(t, ia, ib, "expected %v before %v in %v", a, b, payloads)
}

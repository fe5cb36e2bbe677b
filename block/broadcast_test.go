package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/flownet/agent"
)

func TestBroadcast_CopiesToAllOutputs(t *testing.T) {
	bc := NewBroadcast("bc", 3)
	feed(t, bc, PortIn, "a", "b")

	mb0 := tap(t, bc, OutPort(0))
	mb1 := tap(t, bc, OutPort(1))
	mb2 := tap(t, bc, OutPort(2))

	require.NoError(t, bc.Run())
	assert.Equal(t, []any{"a", "b"}, drain(t, mb0))
	assert.Equal(t, []any{"a", "b"}, drain(t, mb1))
	assert.Equal(t, []any{"a", "b"}, drain(t, mb2))
}

func TestBroadcast_CopyIndependence(t *testing.T) {
	bc := NewBroadcast("bc", 2)
	payload := map[string]any{"count": 1}
	feed(t, bc, PortIn, payload)

	mb0 := tap(t, bc, OutPort(0))
	mb1 := tap(t, bc, OutPort(1))

	require.NoError(t, bc.Run())

	left := drain(t, mb0)[0].(map[string]any)
	right := drain(t, mb1)[0].(map[string]any)

	left["count"] = 99
	assert.Equal(t, 1, right["count"], "mutating one copy must not affect the other")
	assert.Equal(t, 1, payload["count"], "original payload must be untouched")
}

func TestBroadcast_CopyPreservesConcreteTypes(t *testing.T) {
	bc := NewBroadcast("bc", 2)
	feed(t, bc, PortIn, map[string]any{"n": 1}, []any{1, 2})

	mb0 := tap(t, bc, OutPort(0))
	mb1 := tap(t, bc, OutPort(1))

	require.NoError(t, bc.Run())
	for _, mb := range []*agent.Mailbox{mb0, mb1} {
		got := drain(t, mb)
		require.Len(t, got, 2)

		m := got[0].(map[string]any)
		n, ok := m["n"].(int)
		require.True(t, ok, "map value arrived as %T, want int", m["n"])
		assert.Equal(t, 1, n)

		s := got[1].([]any)
		require.Len(t, s, 2)
		for i, want := range []int{1, 2} {
			e, ok := s[i].(int)
			require.True(t, ok, "slice element arrived as %T, want int", s[i])
			assert.Equal(t, want, e)
		}
	}
}

func TestBroadcast_SliceCopyIndependence(t *testing.T) {
	bc := NewBroadcast("bc", 2)
	feed(t, bc, PortIn, []int{1, 2, 3})

	mb0 := tap(t, bc, OutPort(0))
	mb1 := tap(t, bc, OutPort(1))

	require.NoError(t, bc.Run())

	left := drain(t, mb0)[0].([]int)
	right := drain(t, mb1)[0].([]int)
	left[0] = 99
	assert.Equal(t, []int{1, 2, 3}, right)
}

func TestBroadcast_RejectsZeroOutputs(t *testing.T) {
	assert.Panics(t, func() { NewBroadcast("bc", 0) })
}

func TestDeepCopy_ImmutableKindsPassThrough(t *testing.T) {
	assert.Equal(t, "s", deepCopy("s"))
	assert.Equal(t, 42, deepCopy(42))
	assert.Equal(t, 1.5, deepCopy(1.5))
	assert.Nil(t, deepCopy(nil))
}

func TestDeepCopy_RebuildsNestedComposites(t *testing.T) {
	type point struct {
		X, Y int
	}
	orig := map[string][]any{"pts": {&point{1, 2}, 3}}
	got := deepCopy(orig).(map[string][]any)

	gotPt := got["pts"][0].(*point)
	require.NotSame(t, orig["pts"][0], gotPt)
	assert.Equal(t, point{1, 2}, *gotPt)
	assert.Equal(t, 3, got["pts"][1])

	gotPt.X = 99
	assert.Equal(t, 1, orig["pts"][0].(*point).X)
}

func TestDeepCopy_UncopyableKindsShareReference(t *testing.T) {
	ch := make(chan int)
	assert.Equal(t, any(ch), deepCopy(ch))
}

package block

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evenOddRouter routes even ints to out_0 and odd ints to out_1.
func evenOddRouter(msg any) ([]any, error) {
	n, ok := msg.(int)
	if !ok {
		return nil, errors.New("not an int")
	}
	if n%2 == 0 {
		return []any{n, nil}, nil
	}
	return []any{nil, n}, nil
}

func TestSplit_RoutesByContent(t *testing.T) {
	split := NewSplit("split", 2, evenOddRouter)
	feed(t, split, PortIn, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	evens := tap(t, split, OutPort(0))
	odds := tap(t, split, OutPort(1))

	require.NoError(t, split.Run())
	assert.Equal(t, []any{0, 2, 4, 6, 8}, drain(t, evens))
	assert.Equal(t, []any{1, 3, 5, 7, 9}, drain(t, odds))
}

func TestSplit_Multicast(t *testing.T) {
	both := NewSplit("both", 2, func(msg any) ([]any, error) {
		return []any{msg, msg}, nil
	})
	feed(t, both, PortIn, "x")
	mb0 := tap(t, both, OutPort(0))
	mb1 := tap(t, both, OutPort(1))

	require.NoError(t, both.Run())
	assert.Equal(t, []any{"x"}, drain(t, mb0))
	assert.Equal(t, []any{"x"}, drain(t, mb1))
}

func TestSplit_DropAll(t *testing.T) {
	void := NewSplit("void", 2, func(msg any) ([]any, error) {
		return []any{nil, nil}, nil
	})
	feed(t, void, PortIn, 1, 2, 3)
	mb0 := tap(t, void, OutPort(0))
	mb1 := tap(t, void, OutPort(1))

	require.NoError(t, void.Run())
	assert.Empty(t, drain(t, mb0))
	assert.Empty(t, drain(t, mb1))
}

func TestSplit_WrongArityFaultsAndStops(t *testing.T) {
	bad := NewSplit("bad", 2, func(msg any) ([]any, error) {
		return []any{msg}, nil // one result, two outputs
	})
	feed(t, bad, PortIn, 1)
	mb0 := tap(t, bad, OutPort(0))
	mb1 := tap(t, bad, OutPort(1))

	require.NoError(t, bad.Run())
	assert.Empty(t, drain(t, mb0))
	assert.Empty(t, drain(t, mb1))
}

func TestSplit_RouterErrorFaultsAndStops(t *testing.T) {
	bad := NewSplit("bad", 2, func(msg any) ([]any, error) {
		return nil, errors.New("router broke")
	})
	feed(t, bad, PortIn, 1)
	mb0 := tap(t, bad, OutPort(0))
	mb1 := tap(t, bad, OutPort(1))

	require.NoError(t, bad.Run())
	assert.Empty(t, drain(t, mb0))
	assert.Empty(t, drain(t, mb1))
}

func TestSplit_RejectsFewerThanTwoOutputs(t *testing.T) {
	assert.Panics(t, func() { NewSplit("s", 1, evenOddRouter) })
}

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/flownet/block"
	"github.com/BaSui01/flownet/types"
)

func passthrough(name string) *Builder {
	return NewBuilder(name).
		Add(block.NewSource("src", block.SourceOf(1))).
		Add(block.NewSink("snk", func(any) error { return nil })).
		Connect("src", "out", "snk", "in")
}

func TestBuilder_BuildsValidNetwork(t *testing.T) {
	net, err := passthrough("ok").Build()
	require.NoError(t, err)
	assert.Equal(t, "ok", net.Name())
	assert.Equal(t, []string{"src", "snk"}, net.BlockNames())
	require.Len(t, net.Connections(), 1)
}

func TestBuilder_StructuralFaults(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*Network, error)
		wantCode types.ErrorCode
	}{
		{
			name: "duplicate child name",
			build: func() (*Network, error) {
				return passthrough("net").
					Add(block.NewSource("src", block.SourceOf(2))).
					Build()
			},
			wantCode: types.ErrDuplicateChild,
		},
		{
			name: "reserved child name",
			build: func() (*Network, error) {
				return passthrough("net").
					Add(block.NewSink("external", func(any) error { return nil })).
					Build()
			},
			wantCode: types.ErrReservedName,
		},
		{
			name: "separator in child name",
			build: func() (*Network, error) {
				return passthrough("net").
					Add(block.NewSink("a::b", func(any) error { return nil })).
					Build()
			},
			wantCode: types.ErrInvalidName,
		},
		{
			name: "adapter-prefixed child name",
			build: func() (*Network, error) {
				return passthrough("net").
					Add(block.NewSink("__mine", func(any) error { return nil })).
					Build()
			},
			wantCode: types.ErrReservedName,
		},
		{
			name: "empty network",
			build: func() (*Network, error) {
				return NewBuilder("net").Build()
			},
			wantCode: types.ErrEmptyNetwork,
		},
		{
			name: "unknown source block",
			build: func() (*Network, error) {
				return passthrough("net").
					Connect("ghost", "out", "snk", "in").
					Build()
			},
			wantCode: types.ErrUnknownBlock,
		},
		{
			name: "unknown target block",
			build: func() (*Network, error) {
				return passthrough("net").
					Connect("src", "out", "ghost", "in").
					Build()
			},
			wantCode: types.ErrUnknownBlock,
		},
		{
			name: "unknown output port",
			build: func() (*Network, error) {
				return passthrough("net").
					Connect("src", "bogus", "snk", "in").
					Build()
			},
			wantCode: types.ErrUnknownPort,
		},
		{
			name: "unknown input port",
			build: func() (*Network, error) {
				return passthrough("net").
					Connect("src", "out", "snk", "bogus").
					Build()
			},
			wantCode: types.ErrUnknownPort,
		},
		{
			name: "undeclared external inport used",
			build: func() (*Network, error) {
				return passthrough("net").
					Connect("external", "feed", "snk", "in").
					Build()
			},
			wantCode: types.ErrExternalUndeclared,
		},
		{
			name: "undeclared external outport used",
			build: func() (*Network, error) {
				return passthrough("net").
					Connect("src", "out", "external", "result").
					Build()
			},
			wantCode: types.ErrExternalUndeclared,
		},
		{
			name: "declared external inport left unwired",
			build: func() (*Network, error) {
				return passthrough("net").
					InPort("feed").
					Build()
			},
			wantCode: types.ErrExternalUnwired,
		},
		{
			name: "declared external outport left unwired",
			build: func() (*Network, error) {
				return passthrough("net").
					OutPort("result").
					Build()
			},
			wantCode: types.ErrExternalUnwired,
		},
		{
			name: "external to external passthrough",
			build: func() (*Network, error) {
				return passthrough("net").
					InPort("feed").
					OutPort("result").
					Connect("external", "feed", "external", "result").
					Build()
			},
			wantCode: types.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, net)
			assert.Equal(t, tt.wantCode, types.CodeOf(err))
		})
	}
}

func TestBuilder_BuiltNetworkIsolatedFromLaterAdds(t *testing.T) {
	b := passthrough("ok")
	net, err := b.Build()
	require.NoError(t, err)

	b.Add(block.NewSink("late", func(any) error { return nil }))
	assert.Equal(t, []string{"src", "snk"}, net.BlockNames())
	_, ok := net.Block("late")
	assert.False(t, ok, "adding to the builder must not mutate a built network")
}

func TestBuilder_ExternalPortsWiredOnce(t *testing.T) {
	net, err := NewBuilder("stage").
		Add(block.NewTransform("double", func(m any) (any, error) { return m.(int) * 2, nil })).
		InPort("in").
		OutPort("out").
		Connect("external", "in", "double", "in").
		Connect("double", "out", "external", "out").
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"in"}, net.InPorts())
	assert.Equal(t, []string{"out"}, net.OutPorts())
}

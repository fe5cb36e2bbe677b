package block

import (
	"reflect"

	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

// NewBroadcast creates a fan-out adapter: one input port "in" and n output
// ports out_0..out_{n-1}. Every non-STOP message is delivered as a
// structurally independent copy to each output, so one consumer mutating its
// copy cannot affect another. STOP is delivered to all outputs exactly once.
// n must be at least 1.
func NewBroadcast(name string, n int) *agent.Agent {
	if n < 1 {
		panic(types.NewErrorf(types.ErrInvalidName, "broadcast %s needs at least 1 output, got %d", name, n))
	}
	body := func(a *agent.Agent) error {
		for {
			msg := a.Recv(PortIn)
			if types.IsStop(msg) {
				a.SendStopAll()
				return nil
			}
			for i := 0; i < n; i++ {
				a.Send(deepCopy(msg), OutPort(i))
			}
		}
	}
	return agent.New(name, []string{PortIn}, outPorts(n), body)
}

// deepCopy returns a structurally independent copy of msg with every concrete
// type preserved: maps, slices, arrays, pointers, and structs are rebuilt
// recursively, immutable kinds pass through as-is. Kinds that cannot be
// duplicated (channels, funcs, structs with unexported fields) keep the
// shared reference; such payloads are owner-transfer only and should not
// cross a fan-out.
func deepCopy(msg any) any {
	if msg == nil {
		return nil
	}
	return copyValue(reflect.ValueOf(msg)).Interface()
}

func copyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(copyValue(v.Elem()))
		return out
	case reflect.Ptr:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(copyValue(v.Elem()))
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(copyValue(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(copyValue(v.Index(i)))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(copyValue(iter.Key()), copyValue(iter.Value()))
		}
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			if !out.Field(i).CanSet() {
				// Unexported field: the struct cannot be rebuilt, so the
				// assignment copy of v is as deep as we can go.
				return v
			}
			out.Field(i).Set(copyValue(v.Field(i)))
		}
		return out
	default:
		// Scalars and strings are immutable; chans, funcs, and unsafe
		// pointers keep the shared reference.
		return v
	}
}

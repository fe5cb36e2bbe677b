package block

import (
	"github.com/BaSui01/flownet/agent"
	"github.com/BaSui01/flownet/types"
)

// NewMergeSynch creates a synchronous fan-in adapter: n input ports
// in_0..in_{n-1} and one output port "out". It reads one message from each
// input in strict round-robin order and emits the batch as a []any tuple. If
// STOP arrives on any input mid-round, the partial batch is discarded, STOP
// is forwarded, and the block terminates.
//
// MergeSynch blocks on the slowest producer and is therefore never inserted
// automatically by the compiler; wire it explicitly when lockstep pairing is
// actually wanted.
func NewMergeSynch(name string, n int) *agent.Agent {
	if n < 1 {
		panic(types.NewErrorf(types.ErrInvalidName, "merge %s needs at least 1 input, got %d", name, n))
	}
	body := func(a *agent.Agent) error {
		for {
			batch := make([]any, n)
			for i := 0; i < n; i++ {
				msg := a.Recv(InPort(i))
				if types.IsStop(msg) {
					a.Send(types.Stop, PortOut)
					return nil
				}
				batch[i] = msg
			}
			a.Send(batch, PortOut)
		}
	}
	return agent.New(name, inPorts(n), []string{PortOut}, body)
}

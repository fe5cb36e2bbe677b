package agent

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BaSui01/flownet/types"
)

// Body is the thread of control of an agent. It reads from input ports and
// writes to output ports via the Agent it receives, and returns when the
// agent is done (normally after propagating STOP). A returned error or a
// panic is treated as a runtime body fault: the runtime logs it, emits STOP
// on every output port, and terminates the agent.
type Body func(a *Agent) error

// Agent is the unit of execution: a fixed, ordered set of input and output
// ports plus a body. Port names are fixed at construction; the compiler only
// ever looks them up. An agent becomes live (owns real mailboxes and a
// goroutine) only after compilation.
type Agent struct {
	name     string
	inports  []string
	outports []string
	body     Body

	in  map[string]*Mailbox
	out map[string][]*Mailbox

	logger *zap.Logger
	obs    Observer
}

// New creates an agent prototype with the given port sets and body.
func New(name string, inports, outports []string, body Body) *Agent {
	a := &Agent{
		name:     name,
		inports:  append([]string(nil), inports...),
		outports: append([]string(nil), outports...),
		body:     body,
		in:       make(map[string]*Mailbox, len(inports)),
		out:      make(map[string][]*Mailbox, len(outports)),
		logger:   zap.NewNop(),
	}
	for _, p := range inports {
		a.in[p] = nil
	}
	for _, p := range outports {
		a.out[p] = nil
	}
	return a
}

// Name returns the agent name. After flattening this is the full
// path-qualified name.
func (a *Agent) Name() string { return a.name }

// InPorts returns the declared input port names in declaration order.
func (a *Agent) InPorts() []string { return append([]string(nil), a.inports...) }

// OutPorts returns the declared output port names in declaration order.
func (a *Agent) OutPorts() []string { return append([]string(nil), a.outports...) }

// HasInPort reports whether name is a declared input port.
func (a *Agent) HasInPort(name string) bool {
	_, ok := a.in[name]
	return ok
}

// HasOutPort reports whether name is a declared output port.
func (a *Agent) HasOutPort(name string) bool {
	_, ok := a.out[name]
	return ok
}

// SetLogger sets the agent's logger. A nil logger resets to a no-op logger.
func (a *Agent) SetLogger(logger *zap.Logger) {
	if logger == nil {
		a.logger = zap.NewNop()
		return
	}
	a.logger = logger.With(zap.String("agent", a.name))
}

// SetObserver installs an observer for send/stop accounting. Used by the
// runtime metrics collector; nil disables observation.
func (a *Agent) SetObserver(obs Observer) { a.obs = obs }

// Logger returns the agent's logger for use by block bodies.
func (a *Agent) Logger() *zap.Logger { return a.logger }

// Clone returns a fresh, unwired agent with the same name, ports, and body.
// The compiler clones prototypes so that compiling one network description
// twice yields independently runnable instances.
func (a *Agent) Clone() *Agent {
	return New(a.name, a.inports, a.outports, a.body)
}

// CloneAs is Clone under a new name. The compiler uses it when flattening
// nested networks into path-qualified agent names.
func (a *Agent) CloneAs(name string) *Agent {
	return New(name, a.inports, a.outports, a.body)
}

// BindIn binds mb as the mailbox of input port name. Called once per input
// port by the compiler's wiring stage.
func (a *Agent) BindIn(name string, mb *Mailbox) error {
	if _, ok := a.in[name]; !ok {
		return types.NewErrorf(types.ErrUnknownPort, "agent %s has no input port %q", a.name, name)
	}
	a.in[name] = mb
	return nil
}

// BindOut adds mb as a delivery target of output port name.
func (a *Agent) BindOut(name string, mb *Mailbox) error {
	if _, ok := a.out[name]; !ok {
		return types.NewErrorf(types.ErrUnknownPort, "agent %s has no output port %q", a.name, name)
	}
	a.out[name] = append(a.out[name], mb)
	return nil
}

// Send writes msg onto every mailbox wired to outport (normally one). Sending
// on an undeclared port is a programmer error and panics; the run loop turns
// the panic into a logged fault plus STOP propagation. Sending on a declared
// but unwired port is a silent no-op: the message has nowhere to go.
func (a *Agent) Send(msg any, outport string) {
	targets, ok := a.out[outport]
	if !ok {
		panic(types.NewErrorf(types.ErrUnknownPort, "agent %s sent on undeclared port %q", a.name, outport))
	}
	for _, mb := range targets {
		mb.Put(msg)
	}
	if a.obs != nil {
		if types.IsStop(msg) {
			a.obs.StopSent(a.name, outport)
		} else {
			a.obs.MessageSent(a.name, outport)
		}
	}
}

// Recv blocks until a message (STOP included) is available on inport and
// returns it. Receiving on an undeclared or unwired port is a programmer
// error and panics.
func (a *Agent) Recv(inport string) any {
	mb, ok := a.in[inport]
	if !ok {
		panic(types.NewErrorf(types.ErrUnknownPort, "agent %s received on undeclared port %q", a.name, inport))
	}
	if mb == nil {
		panic(types.NewErrorf(types.ErrPortUnbound, "agent %s input port %q has no mailbox", a.name, inport))
	}
	return mb.Take()
}

// SendStopAll emits STOP on every declared output port. Used by block bodies
// on normal termination of fan-out blocks and by the fault path.
func (a *Agent) SendStopAll() {
	for _, p := range a.outports {
		a.Send(types.Stop, p)
	}
}

// Run executes the agent's body to completion. A body error or panic is
// logged and converted into STOP on every output port so downstream agents
// never hang waiting for input that will not come. Run always returns nil:
// a body fault terminates the agent, not the network.
func (a *Agent) Run() error {
	if a.obs != nil {
		a.obs.AgentStarted(a.name)
	}
	defer func() {
		if a.obs != nil {
			a.obs.AgentFinished(a.name)
		}
	}()

	err := a.runBody()
	if err != nil {
		a.logger.Error("agent body fault, emitting STOP downstream",
			zap.String("agent", a.name),
			zap.Error(err),
		)
		if a.obs != nil {
			a.obs.AgentFaulted(a.name)
		}
		a.SendStopAll()
	}
	return nil
}

// runBody invokes the body, converting panics into body-fault errors.
func (a *Agent) runBody() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = types.NewErrorf(types.ErrBodyFault, "agent %s panicked", a.name).WithCause(e)
				return
			}
			err = types.NewErrorf(types.ErrBodyFault, "agent %s panicked: %v", a.name, r)
		}
	}()
	if a.body == nil {
		return fmt.Errorf("agent %s has no body", a.name)
	}
	return a.body(a)
}

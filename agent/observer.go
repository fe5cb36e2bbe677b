package agent

// Observer receives accounting callbacks from running agents. All methods
// must be safe for concurrent use; they are invoked from agent goroutines.
type Observer interface {
	// AgentStarted is called when the agent's goroutine begins running.
	AgentStarted(agent string)
	// AgentFinished is called when the agent's goroutine terminates.
	AgentFinished(agent string)
	// AgentFaulted is called when a body fault terminated the agent early.
	AgentFaulted(agent string)
	// MessageSent is called per payload delivered on an output port.
	MessageSent(agent, port string)
	// StopSent is called per STOP delivered on an output port.
	StopSent(agent, port string)
}

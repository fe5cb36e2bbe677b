package types

// stopSentinel is the unexported marker type behind Stop. Because the type is
// unexported, user code cannot construct a second value that compares equal to
// it, so Stop can never collide with a legitimate payload (nil included).
type stopSentinel struct{}

// String makes STOP readable in logs and test failure output.
func (stopSentinel) String() string { return "STOP" }

// Stop is the end-of-stream sentinel. It is emitted by the runtime when a
// producer finishes (or faults) and must reach every downstream input port
// exactly once per upstream producer. It is never a legitimate payload.
var Stop any = stopSentinel{}

// IsStop reports whether msg is the STOP sentinel.
func IsStop(msg any) bool {
	_, ok := msg.(stopSentinel)
	return ok
}

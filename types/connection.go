package types

import "fmt"

// Reserved graph names. External is the pseudo-child through which a network
// exposes its own ports to a parent; PathSep joins nested child names into
// the flattened full path.
const (
	External = "external"
	PathSep  = "::"
)

// Connection is a directed edge between two ports:
// (From, FromPort) -> (To, ToPort). From or To may be External when the edge
// crosses the boundary of the enclosing network.
type Connection struct {
	From     string `json:"from" yaml:"from"`
	FromPort string `json:"from_port" yaml:"from_port"`
	To       string `json:"to" yaml:"to"`
	ToPort   string `json:"to_port" yaml:"to_port"`
}

// String renders the edge in from.port -> to.port form for diagnostics.
func (c Connection) String() string {
	return fmt.Sprintf("%s.%s -> %s.%s", c.From, c.FromPort, c.To, c.ToPort)
}

// Source is the (name, port) pair at the producing end.
func (c Connection) Source() (string, string) { return c.From, c.FromPort }

// Target is the (name, port) pair at the consuming end.
func (c Connection) Target() (string, string) { return c.To, c.ToPort }

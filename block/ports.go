package block

import "fmt"

// Canonical port names for single-input/single-output blocks.
const (
	PortIn  = "in"
	PortOut = "out"
)

// InPort returns the i-th input port name of a fan-in block (in_0, in_1, ...).
func InPort(i int) string { return fmt.Sprintf("in_%d", i) }

// OutPort returns the i-th output port name of a fan-out block (out_0, ...).
func OutPort(i int) string { return fmt.Sprintf("out_%d", i) }

// inPorts returns the ordered fan-in port set in_0..in_{n-1}.
func inPorts(n int) []string {
	ports := make([]string, n)
	for i := range ports {
		ports[i] = InPort(i)
	}
	return ports
}

// outPorts returns the ordered fan-out port set out_0..out_{n-1}.
func outPorts(n int) []string {
	ports := make([]string, n)
	for i := range ports {
		ports[i] = OutPort(i)
	}
	return ports
}

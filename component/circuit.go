package component

import "github.com/lixenwraith/labsim/core"

// CircuitType is the electrical role of a circuit element
type CircuitType uint8

const (
	CircuitResistor CircuitType = iota
	CircuitBattery
)

// String returns the element name
func (t CircuitType) String() string {
	switch t {
	case CircuitResistor:
		return "resistor"
	case CircuitBattery:
		return "battery"
	default:
		return "unknown"
	}
}

// CircuitComponent carries a declared value and the last solved state
// Value is ohms for resistors and volts for batteries
// Current and Voltage are overwritten every tick by the circuit solver
// Connections is informational; the series solver does not read it
type CircuitComponent struct {
	Type        CircuitType
	Value       float64
	Current     float64
	Voltage     float64
	Connections []core.Entity
}

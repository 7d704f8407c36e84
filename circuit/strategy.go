// Package circuit solves a single series loop of batteries and resistors with Ohm's law
package circuit

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/engine"
	"github.com/lixenwraith/labsim/event"
	"github.com/lixenwraith/labsim/status"
)

// Solution is the result of one series solve
type Solution struct {
	TotalVoltage    float64
	TotalResistance float64
	Current         float64
}

// Strategy treats every circuit element in the world as part of one series loop
// Connections and wire geometry are not consulted
type Strategy struct {
	last Solution

	events *event.EventQueue
	logger *zap.Logger

	statCurrent    *status.AtomicFloat
	statVoltage    *status.AtomicFloat
	statResistance *status.AtomicFloat
}

// NewStrategy creates a circuit solver
func NewStrategy() *Strategy {
	return &Strategy{logger: zap.NewNop()}
}

// Name returns "circuit"
func (s *Strategy) Name() string { return "circuit" }

// Solution returns the totals computed by the most recent Update
func (s *Strategy) Solution() Solution { return s.last }

// Attach wires event publishing and solved-value metrics
func (s *Strategy) Attach(env engine.Env) {
	s.events = env.Events
	if env.Logger != nil {
		s.logger = env.Logger
	}
	if env.Status != nil {
		s.statCurrent = env.Status.Floats.Get(status.KeyCurrent)
		s.statVoltage = env.Status.Floats.Get(status.KeyTotalVoltage)
		s.statResistance = env.Status.Floats.Get(status.KeyResistance)
	}
}

// Solve computes series totals over elements without writing to them
// Zero total resistance yields zero current
func Solve(elements []*component.CircuitComponent) Solution {
	var sol Solution
	for _, c := range elements {
		switch c.Type {
		case component.CircuitBattery:
			sol.TotalVoltage += c.Value
		case component.CircuitResistor:
			sol.TotalResistance += c.Value
		}
	}
	if sol.TotalResistance > 0 {
		sol.Current = sol.TotalVoltage / sol.TotalResistance
	}
	return sol
}

// Update recomputes the loop from scratch, dt is ignored
// Every element receives the loop current; resistors also receive their voltage drop
// Battery Voltage is left as declared by the caller
func (s *Strategy) Update(entities []*engine.Entity, _ float64) {
	elements := make([]*component.CircuitComponent, 0, len(entities))
	for _, e := range entities {
		if e.Circuit != nil {
			elements = append(elements, e.Circuit)
		}
	}

	sol := Solve(elements)
	for _, c := range elements {
		c.Current = sol.Current
		if c.Type == component.CircuitResistor {
			c.Voltage = sol.Current * c.Value
		}
	}

	if sol != s.last {
		s.logger.Debug("circuit solved",
			zap.Int("elements", len(elements)),
			zap.Float64("voltage", sol.TotalVoltage),
			zap.Float64("resistance", sol.TotalResistance),
			zap.Float64("current", sol.Current),
		)
	}
	s.last = sol

	if s.statCurrent != nil {
		s.statCurrent.Set(sol.Current)
		s.statVoltage.Set(sol.TotalVoltage)
		s.statResistance.Set(sol.TotalResistance)
	}
	s.events.Push(event.SimEvent{
		Type: event.EventCircuitSolved,
		Payload: event.CircuitPayload{
			TotalVoltage:    sol.TotalVoltage,
			TotalResistance: sol.TotalResistance,
			Current:         sol.Current,
		},
	})
}

// Package factory creates the fixed entity archetypes used by scenes and the shell
package factory

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/core"
	"github.com/lixenwraith/labsim/engine"
	"github.com/lixenwraith/labsim/parameter"
)

var (
	ErrNonPositiveMass  = errors.New("mass must be positive")
	ErrNonPositiveValue = errors.New("circuit value must be positive")
)

// Variant selects the physics body archetype
type Variant uint8

const (
	// VariantPrimary is a free body that falls, bounces and collides
	VariantPrimary Variant = iota
	// VariantPin is an immovable obstacle: tangible but without physics
	VariantPin
)

// String returns the variant name
func (v Variant) String() string {
	switch v {
	case VariantPrimary:
		return "primary"
	case VariantPin:
		return "pin"
	default:
		return "unknown"
	}
}

// ParseVariant maps a scene file name to a Variant
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "", "primary", "body":
		return VariantPrimary, true
	case "pin":
		return VariantPin, true
	default:
		return 0, false
	}
}

// CreatePhysicsBody spawns a body at (x, y)
// Mass 0 selects the default mass of 1; the mass is ignored for pins
// Primary bodies start with the archetype's leftward velocity
func CreatePhysicsBody(w *engine.World, x, y, mass float64, variant Variant) *engine.Entity {
	b := w.NewEntity(core.KindPhysics).
		WithTransform(component.TransformComponent{X: x, Y: y}).
		WithDraggable(component.DraggableComponent{})

	if variant == VariantPin {
		return b.
			WithRender(component.RenderComponent{Shape: component.ShapeCircle, Color: parameter.PinColor, Size: parameter.PinRadius}).
			WithTangible(component.TangibleComponent{Radius: parameter.PinRadius}).
			Build()
	}

	if mass == 0 {
		mass = parameter.DefaultMass
	}
	return b.
		WithPhysics(component.PhysicsComponent{Mass: mass, VX: parameter.InitialVelocityX}).
		WithRender(component.RenderComponent{Shape: component.ShapeCircle, Color: parameter.BodyColor, Size: parameter.BodyRadius}).
		WithTangible(component.TangibleComponent{Radius: parameter.BodyRadius}).
		Build()
}

// CreateResistor spawns a resistor of the given ohms
func CreateResistor(w *engine.World, x, y, ohms float64) *engine.Entity {
	return createElement(w, x, y, component.CircuitResistor, ohms, parameter.ResistorColor, parameter.ResistorSize)
}

// CreateBattery spawns a battery of the given volts
func CreateBattery(w *engine.World, x, y, volts float64) *engine.Entity {
	return createElement(w, x, y, component.CircuitBattery, volts, parameter.BatteryColor, parameter.BatterySize)
}

func createElement(w *engine.World, x, y float64, typ component.CircuitType, value float64, color string, size float64) *engine.Entity {
	return w.NewEntity(core.KindCircuit).
		WithTransform(component.TransformComponent{X: x, Y: y}).
		WithCircuit(component.CircuitComponent{Type: typ, Value: value}).
		WithRender(component.RenderComponent{Shape: component.ShapeRect, Color: color, Size: size}).
		Build()
}

// CreateWire spawns a wire between two entities
// Endpoint coordinates are copied from the endpoints' transforms now and never follow them;
// an endpoint without transform contributes (0, 0)
// When both endpoints are circuit elements they record each other in Connections
func CreateWire(w *engine.World, start, end *engine.Entity) *engine.Entity {
	var wire component.WireComponent
	if start != nil && start.Transform != nil {
		wire.StartX, wire.StartY = start.Transform.X, start.Transform.Y
	}
	if end != nil && end.Transform != nil {
		wire.EndX, wire.EndY = end.Transform.X, end.Transform.Y
	}

	e := w.NewEntity(core.KindCircuit).
		WithTransform(component.TransformComponent{}).
		WithRender(component.RenderComponent{Shape: component.ShapeLine, Color: parameter.WireColor, Size: 1}).
		WithWire(wire).
		Build()

	if start != nil && end != nil && start.Circuit != nil && end.Circuit != nil {
		start.Circuit.Connections = append(start.Circuit.Connections, end.ID)
		end.Circuit.Connections = append(end.Circuit.Connections, start.ID)
	}
	return e
}

// ValidateMass rejects masses the integrator cannot divide by
func ValidateMass(mass float64) error {
	if !(mass > 0) {
		return fmt.Errorf("mass %v: %w", mass, ErrNonPositiveMass)
	}
	return nil
}

// ValidateValue rejects non-positive resistances and voltages
func ValidateValue(typ component.CircuitType, value float64) error {
	if !(value > 0) {
		return fmt.Errorf("%s value %v: %w", typ, value, ErrNonPositiveValue)
	}
	return nil
}

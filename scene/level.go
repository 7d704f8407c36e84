// Package scene describes the preset worlds a user can load, built in or from YAML files
package scene

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/core"
	"github.com/lixenwraith/labsim/engine"
	"github.com/lixenwraith/labsim/factory"
)

var (
	ErrUnknownLevel = errors.New("unknown level")
	ErrInvalidLevel = errors.New("invalid level")
)

// Body places a physics body or pin
// VX and VY override the archetype's initial velocity when set
type Body struct {
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	Mass    float64  `yaml:"mass,omitempty"`
	Variant string   `yaml:"variant,omitempty"`
	VX      *float64 `yaml:"vx,omitempty"`
	VY      *float64 `yaml:"vy,omitempty"`
}

// Element places a battery or resistor
type Element struct {
	Type  string  `yaml:"type"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Value float64 `yaml:"value"`
}

// Wire joins two elements by their index in Level.Elements
type Wire struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Level is one loadable scene
type Level struct {
	Name     string    `yaml:"name"`
	Mode     string    `yaml:"mode"`
	Bodies   []Body    `yaml:"bodies,omitempty"`
	Elements []Element `yaml:"elements,omitempty"`
	Wires    []Wire    `yaml:"wires,omitempty"`
}

// SimMode returns the parsed mode; unknown modes fall back to physics
func (l Level) SimMode() core.SimMode {
	m, _ := core.ParseMode(l.Mode)
	return m
}

// Validate checks names, values and wire references
func (l Level) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("level without name: %w", ErrInvalidLevel)
	}
	if _, ok := core.ParseMode(l.Mode); !ok {
		return fmt.Errorf("level %q: mode %q: %w", l.Name, l.Mode, ErrInvalidLevel)
	}
	for i, b := range l.Bodies {
		if _, ok := factory.ParseVariant(b.Variant); !ok {
			return fmt.Errorf("level %q: body %d: variant %q: %w", l.Name, i, b.Variant, ErrInvalidLevel)
		}
		if b.Mass != 0 {
			if err := factory.ValidateMass(b.Mass); err != nil {
				return fmt.Errorf("level %q: body %d: %w", l.Name, i, err)
			}
		}
	}
	for i, el := range l.Elements {
		typ, ok := parseElement(el.Type)
		if !ok {
			return fmt.Errorf("level %q: element %d: type %q: %w", l.Name, i, el.Type, ErrInvalidLevel)
		}
		if err := factory.ValidateValue(typ, el.Value); err != nil {
			return fmt.Errorf("level %q: element %d: %w", l.Name, i, err)
		}
	}
	for i, w := range l.Wires {
		if w.From < 0 || w.From >= len(l.Elements) || w.To < 0 || w.To >= len(l.Elements) {
			return fmt.Errorf("level %q: wire %d: endpoint out of range: %w", l.Name, i, ErrInvalidLevel)
		}
	}
	return nil
}

func parseElement(s string) (component.CircuitType, bool) {
	switch s {
	case "battery":
		return component.CircuitBattery, true
	case "resistor":
		return component.CircuitResistor, true
	default:
		return 0, false
	}
}

// Setup returns a SetupFunc that populates a world with the level
// Applying it to a cleared world always yields the same ids and components
func (l Level) Setup() engine.SetupFunc {
	return func(w *engine.World) error {
		if err := l.Validate(); err != nil {
			return err
		}

		for _, b := range l.Bodies {
			variant, _ := factory.ParseVariant(b.Variant)
			e := factory.CreatePhysicsBody(w, b.X, b.Y, b.Mass, variant)
			if e.Physics == nil {
				continue
			}
			if b.VX != nil {
				e.Physics.VX = *b.VX
			}
			if b.VY != nil {
				e.Physics.VY = *b.VY
			}
		}

		placed := make([]*engine.Entity, len(l.Elements))
		for i, el := range l.Elements {
			typ, _ := parseElement(el.Type)
			if typ == component.CircuitBattery {
				placed[i] = factory.CreateBattery(w, el.X, el.Y, el.Value)
			} else {
				placed[i] = factory.CreateResistor(w, el.X, el.Y, el.Value)
			}
		}
		for _, wire := range l.Wires {
			factory.CreateWire(w, placed[wire.From], placed[wire.To])
		}
		return nil
	}
}

package engine

import (
	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/core"
)

// Entity is an identity plus a fixed layout of optional components
// A nil component pointer means the entity does not carry that component
// Entities are only created through World.Create; strategies mutate them in place
type Entity struct {
	ID   core.Entity
	Kind core.Kind

	Transform *component.TransformComponent
	Physics   *component.PhysicsComponent
	Tangible  *component.TangibleComponent
	Draggable *component.DraggableComponent
	Render    *component.RenderComponent
	Circuit   *component.CircuitComponent
	Wire      *component.WireComponent
}

// Mask reports which components the entity carries
func (e *Entity) Mask() component.Mask {
	var m component.Mask
	if e.Transform != nil {
		m |= component.MaskTransform
	}
	if e.Physics != nil {
		m |= component.MaskPhysics
	}
	if e.Tangible != nil {
		m |= component.MaskTangible
	}
	if e.Draggable != nil {
		m |= component.MaskDraggable
	}
	if e.Render != nil {
		m |= component.MaskRender
	}
	if e.Circuit != nil {
		m |= component.MaskCircuit
	}
	if e.Wire != nil {
		m |= component.MaskWire
	}
	return m
}

// Has reports whether the entity carries every component in m
func (e *Entity) Has(m component.Mask) bool {
	return e.Mask().Has(m)
}

// Mobile reports whether the entity takes part in integration
func (e *Entity) Mobile() bool {
	return e.Physics != nil && e.Transform != nil
}

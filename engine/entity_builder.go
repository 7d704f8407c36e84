package engine

import (
	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/core"
)

// EntityBuilder provides a fluent interface for attaching components to a freshly created entity
// The entity is registered with the world when the builder is created
//
// Example usage:
//
//	e := world.NewEntity(core.KindPhysics).
//	    WithTransform(component.TransformComponent{X: 10, Y: 20}).
//	    WithTangible(component.TangibleComponent{Radius: 5}).
//	    Build()
type EntityBuilder struct {
	entity *Entity
	built  bool
}

// NewEntity creates an entity of the given kind and returns a builder for it
func (w *World) NewEntity(kind core.Kind) *EntityBuilder {
	return &EntityBuilder{entity: w.Create(kind)}
}

func (eb *EntityBuilder) mustOpen() {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
}

// WithTransform attaches a transform component
func (eb *EntityBuilder) WithTransform(c component.TransformComponent) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Transform = &c
	return eb
}

// WithPhysics attaches a physics component
func (eb *EntityBuilder) WithPhysics(c component.PhysicsComponent) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Physics = &c
	return eb
}

// WithTangible attaches a collision envelope
func (eb *EntityBuilder) WithTangible(c component.TangibleComponent) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Tangible = &c
	return eb
}

// WithDraggable attaches the interaction flag
func (eb *EntityBuilder) WithDraggable(c component.DraggableComponent) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Draggable = &c
	return eb
}

// WithRender attaches presentation data
func (eb *EntityBuilder) WithRender(c component.RenderComponent) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Render = &c
	return eb
}

// WithCircuit attaches an electrical role
func (eb *EntityBuilder) WithCircuit(c component.CircuitComponent) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Circuit = &c
	return eb
}

// WithWire attaches wire endpoint coordinates
func (eb *EntityBuilder) WithWire(c component.WireComponent) *EntityBuilder {
	eb.mustOpen()
	eb.entity.Wire = &c
	return eb
}

// Build finalizes construction and returns the entity
// After Build, further With* calls panic
func (eb *EntityBuilder) Build() *Entity {
	eb.built = true
	return eb.entity
}

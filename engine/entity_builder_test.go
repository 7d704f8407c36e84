package engine

import (
	"testing"

	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/core"
)

// TestEntityBuilderAttachesComponents verifies every With* call lands on the entity
func TestEntityBuilderAttachesComponents(t *testing.T) {
	w := NewWorld()

	e := w.NewEntity(core.KindPhysics).
		WithTransform(component.TransformComponent{X: 3, Y: 4}).
		WithPhysics(component.PhysicsComponent{Mass: 2}).
		WithTangible(component.TangibleComponent{Radius: 5}).
		WithDraggable(component.DraggableComponent{}).
		WithRender(component.RenderComponent{Shape: component.ShapeCircle}).
		Build()

	want := component.MaskTransform | component.MaskPhysics | component.MaskTangible |
		component.MaskDraggable | component.MaskRender
	if e.Mask() != want {
		t.Errorf("Mask = %b, want %b", e.Mask(), want)
	}
	if e.Has(component.MaskCircuit) || e.Has(component.MaskWire) {
		t.Errorf("Unexpected circuit or wire component")
	}
	if !e.Mobile() {
		t.Errorf("Entity with physics and transform should be mobile")
	}

	got, ok := w.Get(e.ID)
	if !ok || got.Transform.X != 3 || got.Physics.Mass != 2 {
		t.Errorf("Registered entity does not carry built components")
	}
}

// TestEntityBuilderComponentsNotShared verifies each entity owns its component values
func TestEntityBuilderComponentsNotShared(t *testing.T) {
	w := NewWorld()
	tf := component.TransformComponent{X: 1}

	a := w.NewEntity(core.KindPhysics).WithTransform(tf).Build()
	b := w.NewEntity(core.KindPhysics).WithTransform(tf).Build()

	a.Transform.X = 100
	if b.Transform.X != 1 {
		t.Errorf("Transform shared between entities")
	}
}

// TestEntityBuilderPanicsAfterBuild verifies the builder is closed after Build
func TestEntityBuilderPanicsAfterBuild(t *testing.T) {
	w := NewWorld()
	eb := w.NewEntity(core.KindCircuit)
	eb.Build()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic when adding components after Build()")
		}
	}()
	eb.WithWire(component.WireComponent{})
}

package engine

import (
	"testing"

	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/core"
)

// TestQueryBuilder verifies mask and kind filtering
func TestQueryBuilder(t *testing.T) {
	w := NewWorld()

	e1 := w.NewEntity(core.KindPhysics).
		WithTransform(component.TransformComponent{X: 1, Y: 1}).
		WithPhysics(component.PhysicsComponent{Mass: 1}).
		Build()

	w.NewEntity(core.KindPhysics).
		WithTransform(component.TransformComponent{X: 2, Y: 2}).
		Build()

	e3 := w.NewEntity(core.KindCircuit).
		WithTransform(component.TransformComponent{}).
		WithCircuit(component.CircuitComponent{Type: component.CircuitBattery, Value: 9}).
		Build()

	results := w.Query().
		With(component.MaskTransform).
		With(component.MaskPhysics).
		Execute()
	if len(results) != 1 || results[0] != e1 {
		t.Errorf("Expected only entity %d, got %v", e1.ID, results)
	}

	transforms := w.Query().With(component.MaskTransform).Execute()
	if len(transforms) != 3 {
		t.Errorf("Expected 3 transform results, got %d", len(transforms))
	}

	circuits := w.Query().OfKind(core.KindCircuit).With(component.MaskCircuit).Execute()
	if len(circuits) != 1 || circuits[0] != e3 {
		t.Errorf("Expected only entity %d, got %v", e3.ID, circuits)
	}

	// Empty query returns every entity
	if got := len(w.Query().Execute()); got != 3 {
		t.Errorf("Expected 3 unfiltered results, got %d", got)
	}
}

// TestQueryBuilderCachesResult verifies repeated Execute returns the same slice
func TestQueryBuilderCachesResult(t *testing.T) {
	w := NewWorld()
	w.Create(core.KindPhysics)

	q := w.Query()
	first := q.Execute()
	w.Create(core.KindPhysics)
	second := q.Execute()

	if len(first) != 1 || len(second) != 1 {
		t.Errorf("Expected cached single result, got %d and %d", len(first), len(second))
	}
}

// TestQueryBuilderPanicsAfterExecute verifies modification after Execute panics
func TestQueryBuilderPanicsAfterExecute(t *testing.T) {
	w := NewWorld()
	q := w.Query()
	q.Execute()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic when modifying executed query")
		}
	}()
	q.With(component.MaskPhysics)
}

package engine

import (
	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/core"
)

// QueryBuilder provides a fluent interface for filtering entities by component mask and kind
// Results keep world insertion order
type QueryBuilder struct {
	world    *World
	mask     component.Mask
	kind     core.Kind
	byKind   bool
	executed bool
	results  []*Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	bodies := world.Query().
//	    With(component.MaskPhysics | component.MaskTransform).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{world: w}
}

// With requires every component in m
// Panics if called after Execute()
func (qb *QueryBuilder) With(m component.Mask) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.mask |= m
	return qb
}

// OfKind restricts results to one entity kind
// Panics if called after Execute()
func (qb *QueryBuilder) OfKind(kind core.Kind) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.kind = kind
	qb.byKind = true
	return qb
}

// Execute runs the query; repeated calls return the cached result
func (qb *QueryBuilder) Execute() []*Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	all := qb.world.All()
	qb.results = make([]*Entity, 0, len(all))
	for _, e := range all {
		if qb.byKind && e.Kind != qb.kind {
			continue
		}
		if qb.mask != component.MaskNone && !e.Has(qb.mask) {
			continue
		}
		qb.results = append(qb.results, e)
	}
	return qb.results
}

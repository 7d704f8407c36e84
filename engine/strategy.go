package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/labsim/event"
	"github.com/lixenwraith/labsim/status"
)

// Strategy advances the whole entity set by one tick of dt seconds
// Implementations mutate entities in place and must not add or remove entities
type Strategy interface {
	Update(entities []*Entity, dt float64)
}

// Named is implemented by strategies that report a display name
type Named interface {
	Name() string
}

// Env is the engine plumbing handed to strategies when they are installed
// Every field may be nil; strategies must treat nil as "not observed"
type Env struct {
	Events *event.EventQueue
	Status *status.Registry
	Logger *zap.Logger
}

// EnvAware is implemented by strategies that publish events, metrics or logs
type EnvAware interface {
	Attach(env Env)
}

// StrategyFunc adapts a function to Strategy
type StrategyFunc func(entities []*Entity, dt float64)

// Update calls f
func (f StrategyFunc) Update(entities []*Entity, dt float64) {
	f(entities, dt)
}

// UnimplementedStrategy fails fast when used as a strategy
// Embed it to satisfy Strategy while an implementation is pending; calling Update panics
type UnimplementedStrategy struct{}

// Update panics with ErrNotImplemented
func (UnimplementedStrategy) Update([]*Entity, float64) {
	panic(fmt.Errorf("update: %w", ErrNotImplemented))
}

// Name returns "unimplemented"
func (UnimplementedStrategy) Name() string { return "unimplemented" }

// StrategyName returns the strategy display name or its Go type
func StrategyName(s Strategy) string {
	if s == nil {
		return "none"
	}
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}

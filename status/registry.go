package status

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// Well-known metric keys written by the engine and strategies
const (
	KeyTicks        = "engine.ticks"
	KeyEntities     = "engine.entities"
	KeyCollisions   = "physics.collisions"
	KeyBounces      = "physics.bounces"
	KeyCurrent      = "circuit.current"
	KeyTotalVoltage = "circuit.voltage"
	KeyResistance   = "circuit.resistance"
	KeyFrameDelta   = "engine.dt"
)

// Registry is the central metrics facade
// Producers cache pointers during construction; update loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Summary renders the requested keys as "key=value" pairs, skipping unregistered keys
// Integers print verbatim, floats with 3 decimals
func (r *Registry) Summary(keys ...string) string {
	var b strings.Builder
	for _, k := range keys {
		var part string
		switch {
		case r.Ints.Has(k):
			part = fmt.Sprintf("%s=%d", shortKey(k), r.Ints.Get(k).Load())
		case r.Floats.Has(k):
			part = fmt.Sprintf("%s=%.3f", shortKey(k), r.Floats.Get(k).Get())
		default:
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(part)
	}
	return b.String()
}

// Reset zeroes every registered metric, keeping cached pointers valid
func (r *Registry) Reset() {
	r.Ints.Range(func(_ string, v *atomic.Int64) { v.Store(0) })
	r.Floats.Range(func(_ string, v *AtomicFloat) { v.Set(0) })
}

func shortKey(k string) string {
	if i := strings.LastIndexByte(k, '.'); i >= 0 {
		return k[i+1:]
	}
	return k
}

// AtomicFloat provides atomic float64 operations using bit conversion
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores a float64 value atomically
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the float64 value atomically
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

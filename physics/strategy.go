package physics

import (
	"math"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/labsim/engine"
	"github.com/lixenwraith/labsim/event"
	"github.com/lixenwraith/labsim/parameter"
	"github.com/lixenwraith/labsim/status"
)

// Strategy is the rigid-body sandbox: gravity, semi-implicit Euler integration,
// pairwise circle collisions and floor/wall reflection
type Strategy struct {
	gravity     float64
	restitution float64
	bounds      Bounds

	events *event.EventQueue
	logger *zap.Logger

	// Cached metric pointers, nil until attached
	statCollisions *atomic.Int64
	statBounces    *atomic.Int64
}

// Option configures a Strategy
type Option func(*Strategy)

// WithGravity sets the downward acceleration in pixels/s²
func WithGravity(g float64) Option {
	return func(s *Strategy) { s.gravity = g }
}

// WithBounds replaces the floor and wall positions
func WithBounds(b Bounds) Option {
	return func(s *Strategy) { s.bounds = b }
}

// WithRestitution sets collision elasticity, 1.0 is perfectly elastic
func WithRestitution(e float64) Option {
	return func(s *Strategy) { s.restitution = e }
}

// DefaultBounds returns the floor at 550 with walls at 10 and 800
func DefaultBounds() Bounds {
	return Bounds{
		Floor: parameter.BoundFloor,
		Right: parameter.BoundRightWall,
		Left:  parameter.BoundLeftWall,
	}
}

// NewStrategy creates a physics strategy with gravity 98 and default bounds
func NewStrategy(opts ...Option) *Strategy {
	s := &Strategy{
		gravity:     parameter.Gravity,
		restitution: parameter.Restitution,
		bounds:      DefaultBounds(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns "physics"
func (s *Strategy) Name() string { return "physics" }

// Gravity returns the configured acceleration
func (s *Strategy) Gravity() float64 { return s.gravity }

// Bounds returns the configured world limits
func (s *Strategy) Bounds() Bounds { return s.bounds }

// Attach wires event publishing and collision metrics
func (s *Strategy) Attach(env engine.Env) {
	s.events = env.Events
	if env.Logger != nil {
		s.logger = env.Logger
	}
	if env.Status != nil {
		s.statCollisions = env.Status.Ints.Get(status.KeyCollisions)
		s.statBounces = env.Status.Ints.Get(status.KeyBounces)
	}
	s.logger.Debug("physics attached",
		zap.Float64("gravity", s.gravity),
		zap.Float64("restitution", s.restitution),
		zap.Float64("floor", s.bounds.Floor),
	)
}

// Update runs one tick over entities in slice order
// Each mobile body is integrated, collided against every other tangible entity, bounded,
// and has its forces cleared before the next body is processed. Resolution order follows
// the slice, so results are not symmetric in entity order
func (s *Strategy) Update(entities []*engine.Entity, dt float64) {
	for _, a := range entities {
		if !a.Mobile() {
			continue
		}
		p, t := a.Physics, a.Transform

		AccumulateGravity(p, s.gravity)
		Integrate(t, p, dt)

		if a.Tangible != nil {
			s.collide(a, entities)
		}

		ReflectBounds(t, p, s.bounds, func(w event.Wall, speed float64) {
			s.bounced(a, w, speed)
		})

		ClearForces(p)
	}
}

func (s *Strategy) collide(a *engine.Entity, entities []*engine.Entity) {
	for _, b := range entities {
		if b == a || b.Tangible == nil || b.Transform == nil {
			continue
		}
		c, ok := Contact(a, b)
		if !ok {
			continue
		}

		var (
			impulse  float64
			resolved bool
			kind     event.EventType
		)
		if b.Physics != nil {
			impulse, resolved = ResolveMobile(a, b, c, s.restitution)
			kind = event.EventCollision
		} else {
			impulse, resolved = ResolveImmobile(a, c, s.restitution)
			kind = event.EventPinCollision
		}
		if !resolved {
			continue
		}

		if s.statCollisions != nil {
			s.statCollisions.Add(1)
		}
		s.events.Push(event.SimEvent{
			Type: kind,
			Payload: event.CollisionPayload{
				A:           a.ID,
				B:           b.ID,
				Penetration: c.Penetration,
				Impulse:     impulse,
			},
		})
	}
}

func (s *Strategy) bounced(a *engine.Entity, w event.Wall, speed float64) {
	if s.statBounces != nil {
		s.statBounces.Add(1)
	}
	s.events.Push(event.SimEvent{
		Type:    event.EventBoundaryBounce,
		Payload: event.BouncePayload{Entity: a.ID, Wall: w, Speed: math.Abs(speed)},
	})
}

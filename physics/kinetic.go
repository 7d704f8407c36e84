package physics

import (
	"github.com/lixenwraith/labsim/component"
	"github.com/lixenwraith/labsim/event"
	"github.com/lixenwraith/labsim/vmath"
)

// Bounds are the enforced world limits; there is no ceiling
type Bounds struct {
	Floor float64
	Right float64
	Left  float64
}

// AccumulateGravity adds the weight force mass*g to the accumulated vertical force
func AccumulateGravity(p *component.PhysicsComponent, gravity float64) {
	p.FY += p.Mass * gravity
}

// Integrate performs semi-implicit Euler: v += f/m*dt, then x += v*dt
// Velocity is updated before position; mass is not guarded
func Integrate(t *component.TransformComponent, p *component.PhysicsComponent, dt float64) {
	p.VX += p.FX / p.Mass * dt
	p.VY += p.FY / p.Mass * dt
	t.X += p.VX * dt
	t.Y += p.VY * dt
}

// ClearForces drops accumulated force; only velocity carries across ticks
func ClearForces(p *component.PhysicsComponent) {
	p.FX = 0
	p.FY = 0
}

// ReflectBounds clamps position to the bounds and inverts the matching velocity component
// Calls hit for each wall crossed, in floor, right, left order
func ReflectBounds(t *component.TransformComponent, p *component.PhysicsComponent, b Bounds, hit func(w event.Wall, speed float64)) {
	if t.Y > b.Floor {
		t.Y = b.Floor
		p.VX, p.VY = vmath.ReflectAxisY(p.VX, p.VY)
		if hit != nil {
			hit(event.WallFloor, p.VY)
		}
	}
	if t.X > b.Right {
		t.X = b.Right
		p.VX, p.VY = vmath.ReflectAxisX(p.VX, p.VY)
		if hit != nil {
			hit(event.WallRight, p.VX)
		}
	} else if t.X < b.Left {
		t.X = b.Left
		p.VX, p.VY = vmath.ReflectAxisX(p.VX, p.VY)
		if hit != nil {
			hit(event.WallLeft, p.VX)
		}
	}
}

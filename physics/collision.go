package physics

import (
	"github.com/lixenwraith/labsim/engine"
	"github.com/lixenwraith/labsim/vmath"
)

// ResolveMobile resolves a contact between two bodies that both carry physics
// The normal in c points from a to b. Returns the impulse magnitude and false when the
// bodies are already separating, in which case neither body is touched
func ResolveMobile(a, b *engine.Entity, c vmath.Contact, restitution float64) (float64, bool) {
	pa, pb := a.Physics, b.Physics

	velAlongNormal := vmath.DotProduct(pb.VX-pa.VX, pb.VY-pa.VY, c.NormalX, c.NormalY)
	if velAlongNormal >= 0 {
		return 0, false
	}

	// Split the overlap equally
	half := c.Penetration / 2
	a.Transform.X -= c.NormalX * half
	a.Transform.Y -= c.NormalY * half
	b.Transform.X += c.NormalX * half
	b.Transform.Y += c.NormalY * half

	j := -(1 + restitution) * velAlongNormal / (1/pa.Mass + 1/pb.Mass)

	pa.VX -= j / pa.Mass * c.NormalX
	pa.VY -= j / pa.Mass * c.NormalY
	pb.VX += j / pb.Mass * c.NormalX
	pb.VY += j / pb.Mass * c.NormalY

	return j, true
}

// ResolveImmobile resolves a contact between mobile a and a fixed obstacle
// The obstacle has infinite mass: a always takes the whole overlap, and its velocity is
// reflected off the normal only while it approaches. Returns false when a was already
// moving away, in which case only the position changed
func ResolveImmobile(a *engine.Entity, c vmath.Contact, restitution float64) (float64, bool) {
	pa := a.Physics

	a.Transform.X -= c.NormalX * c.Penetration
	a.Transform.Y -= c.NormalY * c.Penetration

	approach := vmath.DotProduct(pa.VX, pa.VY, c.NormalX, c.NormalY)
	if approach <= 0 {
		return 0, false
	}

	if restitution == 1 {
		pa.VX, pa.VY = vmath.Reflect(pa.VX, pa.VY, c.NormalX, c.NormalY)
	} else {
		// v' = v - (1+e)(v·n)n
		dx, dy := vmath.ScaleVector(c.NormalX, c.NormalY, (1+restitution)*approach)
		pa.VX -= dx
		pa.VY -= dy
	}

	return (1 + restitution) * approach * pa.Mass, true
}

// Contact tests two tangible entities, both must carry transform and tangible
func Contact(a, b *engine.Entity) (vmath.Contact, bool) {
	return vmath.CircleContact(
		a.Transform.X, a.Transform.Y, a.Tangible.Radius,
		b.Transform.X, b.Transform.Y, b.Tangible.Radius,
	)
}

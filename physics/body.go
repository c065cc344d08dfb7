package physics

import "github.com/jakecoffman/cp"

// Body adapts a Chipmunk body to the controller's body capability.
type Body struct {
	body          *cp.Body
	shape         *cp.Shape
	ignoreGravity bool
}

// CP exposes the wrapped body for rendering and tests.
func (b *Body) CP() *cp.Body {
	return b.body
}

func (b *Body) Position() (x, y float64) {
	p := b.body.Position()
	return p.X, p.Y
}

func (b *Body) Velocity() (x, y float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *Body) SetVelocity(x, y float64) {
	b.body.SetVelocity(x, y)
}

// ApplyForce pushes through the centre of mass. Chipmunk clears forces
// after every step.
func (b *Body) ApplyForce(x, y float64) {
	b.body.ApplyForceAtLocalPoint(cp.Vector{X: x, Y: y}, cp.Vector{})
}

func (b *Body) Mass() float64 {
	return b.body.Mass()
}

func (b *Body) IgnoresGravity() bool {
	return b.ignoreGravity
}

// SetIgnoreGravity swaps the velocity integrator. Damping still applies
// while gravity is off.
func (b *Body) SetIgnoreGravity(ignore bool) {
	if b.ignoreGravity == ignore {
		return
	}
	b.ignoreGravity = ignore
	if ignore {
		b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
		return
	}
	b.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
}

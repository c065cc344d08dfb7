package player

import "github.com/milk9111/wallkick/contact"

// Body is the rigid-body capability the controller drives. Velocities are
// in pixels per second, forces in mass * pixels per second squared.
type Body interface {
	Position() (x, y float64)
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	ApplyForce(x, y float64)
	Mass() float64
	SetIgnoreGravity(ignore bool)
}

// Contacts supplies the floor and wall classification of the last physics
// step. *contact.Tracker satisfies it.
type Contacts interface {
	State() contact.State
}

// Package contact derives floor and wall contact for the player from the
// collision pairs Chipmunk reports for three sensor strips on its body.
//
// The engine's own grounded/touching notions are not used: on a compound,
// offset body they report corners as both floor and wall. The strips are
// sized so a corner can only touch one of them.
package contact

import "github.com/jakecoffman/cp"

// CollisionType is set on every sensor shape built by Attach.
const CollisionType cp.CollisionType = 0x5e5

const (
	bottomWidthRatio = 0.65
	bottomHeight     = 4.0
	sideWidth        = 2.0
	sideHeightRatio  = 0.3
)

// State is the contact classification for one physics step.
type State struct {
	Floor     bool
	LeftWall  bool
	RightWall bool
}

// Sensors are the three sensor strips attached to the player body.
type Sensors struct {
	Bottom *cp.Shape
	Left   *cp.Shape
	Right  *cp.Shape
}

// Shapes returns the sensors in bottom, left, right order.
func (s Sensors) Shapes() []*cp.Shape {
	return []*cp.Shape{s.Bottom, s.Left, s.Right}
}

// Attach builds the sensor shapes for a body of the given size centred on
// the body's origin. The shapes are not added to any space.
func Attach(body *cp.Body, width, height float64) Sensors {
	if body == nil || width <= 0 || height <= 0 {
		return Sensors{}
	}
	halfW := width / 2
	halfH := height / 2
	bw := width * bottomWidthRatio
	sh := height * sideHeightRatio

	s := Sensors{
		Bottom: cp.NewBox2(body, cp.BB{L: -bw / 2, B: halfH, R: bw / 2, T: halfH + bottomHeight}, 0),
		Left:   cp.NewBox2(body, cp.BB{L: -halfW - sideWidth, B: -sh / 2, R: -halfW, T: sh / 2}, 0),
		Right:  cp.NewBox2(body, cp.BB{L: halfW, B: -sh / 2, R: halfW + sideWidth, T: sh / 2}, 0),
	}
	for _, shape := range s.Shapes() {
		shape.SetSensor(true)
		shape.SetCollisionType(CollisionType)
	}
	return s
}

// Tracker accumulates contact state across one solver step. The physics
// world calls Clear before stepping and Observe for every active pair; the
// controller reads State afterwards.
type Tracker struct {
	sensors Sensors
	state   State
}

func NewTracker(s Sensors) *Tracker {
	return &Tracker{sensors: s}
}

func (t *Tracker) Sensors() Sensors {
	if t == nil {
		return Sensors{}
	}
	return t.sensors
}

// Clear resets all contact flags. Call it before the solver runs.
func (t *Tracker) Clear() {
	if t == nil {
		return
	}
	t.state = State{}
}

// State returns the contact flags accumulated since the last Clear.
func (t *Tracker) State() State {
	if t == nil {
		return State{}
	}
	return t.state
}

// Observe classifies one collision pair. Pair order does not matter and
// pairs that involve none of the sensors are ignored.
func (t *Tracker) Observe(a, b *cp.Shape) {
	if t == nil || a == nil || b == nil {
		return
	}
	sensor, other := t.match(a, b)
	if sensor == nil || other == nil || other.Sensor() {
		return
	}
	if other.Body() != nil && other.Body() == sensor.Body() {
		return
	}

	switch sensor {
	case t.sensors.Bottom:
		t.state.Floor = true
	case t.sensors.Left:
		if isStatic(other) {
			t.state.LeftWall = true
		}
	case t.sensors.Right:
		if isStatic(other) {
			t.state.RightWall = true
		}
	}
}

func (t *Tracker) match(a, b *cp.Shape) (sensor, other *cp.Shape) {
	if t.owns(a) {
		return a, b
	}
	if t.owns(b) {
		return b, a
	}
	return nil, nil
}

func (t *Tracker) owns(s *cp.Shape) bool {
	return s != nil && (s == t.sensors.Bottom || s == t.sensors.Left || s == t.sensors.Right)
}

// isStatic reports whether a shape can act as a climbable wall. Moving and
// pushable bodies never qualify.
func isStatic(s *cp.Shape) bool {
	body := s.Body()
	return body != nil && body.GetType() == cp.BODY_STATIC
}

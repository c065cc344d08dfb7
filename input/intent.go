// Package input turns raw key state into per-step movement intent.
package input

// XDirection is the resolved horizontal direction. Its value doubles as
// the sign of the direction.
type XDirection int

const (
	Left  XDirection = -1
	None  XDirection = 0
	Right XDirection = 1
)

func (d XDirection) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Sign returns -1, 0 or 1.
func (d XDirection) Sign() float64 {
	return float64(d)
}

// Intent is the semantic input for one simulation step.
type Intent struct {
	X XDirection

	Up   bool
	Down bool

	Jump      bool
	JumpFresh bool

	Dash      bool
	DashFresh bool

	// AnyDirection is true when X is resolved or up/down is held.
	AnyDirection bool

	EscapeFresh bool
}

// Resolve computes the intent for the current step. It has no side effects;
// edge detection comes from the press durations themselves.
func Resolve(ks KeyState, b Bindings) Intent {
	if ks == nil {
		return Intent{}
	}
	in := Intent{
		X:           resolveX(ks, b),
		Up:          anyHeld(ks, b.Up),
		Down:        anyHeld(ks, b.Down),
		Jump:        anyHeld(ks, b.Jump),
		JumpFresh:   anyFresh(ks, b.Jump),
		Dash:        anyHeld(ks, b.Dash),
		DashFresh:   anyFresh(ks, b.Dash),
		EscapeFresh: anyFresh(ks, b.Escape),
	}
	in.AnyDirection = in.X != None || in.Up || in.Down
	return in
}

// resolveX breaks a left/right tie in favour of the side pressed most
// recently: each side is as old as its longest-held key, and the younger
// side wins. Equal ages go to Right.
func resolveX(ks KeyState, b Bindings) XDirection {
	left := maxDuration(ks, b.Left)
	right := maxDuration(ks, b.Right)
	switch {
	case left > 0 && right > 0:
		if left < right {
			return Left
		}
		return Right
	case left > 0:
		return Left
	case right > 0:
		return Right
	default:
		return None
	}
}

func maxDuration(ks KeyState, keys []Key) int {
	longest := 0
	for _, k := range keys {
		if d := ks.PressDuration(k); d > longest {
			longest = d
		}
	}
	return longest
}

func anyHeld(ks KeyState, keys []Key) bool {
	return maxDuration(ks, keys) > 0
}

func anyFresh(ks KeyState, keys []Key) bool {
	for _, k := range keys {
		if ks.PressDuration(k) == 1 {
			return true
		}
	}
	return false
}

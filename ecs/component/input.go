package component

import "github.com/milk9111/wallkick/input"

// Input stores the resolved intent for the current tick.
type Input struct {
	Intent input.Intent
}

var InputComponent = NewComponent[Input]("input")

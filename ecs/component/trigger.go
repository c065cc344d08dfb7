package component

import "github.com/milk9111/wallkick/common"

// Trigger is a sensor volume the player can enter.
type Trigger struct {
	Rect common.Rect
}

var TriggerComponent = NewComponent[Trigger]("trigger")

// Triggered marks a trigger the player entered this tick. It is removed at
// the end of the tick.
type Triggered struct{}

var TriggeredComponent = NewComponent[Triggered]("triggered")

package component

// Hazard damages the player on entry.
type Hazard struct {
	Damage int
}

var HazardComponent = NewComponent[Hazard]("hazard")

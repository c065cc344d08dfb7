package component

// Pickup heals the player and disappears.
type Pickup struct {
	Heal int
}

var PickupComponent = NewComponent[Pickup]("pickup")

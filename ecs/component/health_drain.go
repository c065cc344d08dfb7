package component

import "time"

// HealthDrain takes Amount health every Interval.
type HealthDrain struct {
	Amount   int
	Interval time.Duration
	Elapsed  time.Duration
}

var HealthDrainComponent = NewComponent[HealthDrain]("health_drain")

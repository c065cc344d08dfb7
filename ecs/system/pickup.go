package system

import (
	"math/rand/v2"

	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
	"github.com/milk9111/wallkick/physics"
	"github.com/milk9111/wallkick/player"
)

const (
	SoundManna = "manna"

	mannaVolume = 0.4
)

// MannaDetunes are the pitches a collected pickup can chime at.
var MannaDetunes = []int{-500, -100, 0, 200, 400, 700, 1100}

// PickupSystem heals the player and removes collected pickups from the
// level.
type PickupSystem struct {
	world  *physics.World
	sounds SoundPlayer
	rng    *rand.Rand
}

func NewPickupSystem(world *physics.World, sounds SoundPlayer, rng *rand.Rand) *PickupSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(3, 4))
	}
	return &PickupSystem{world: world, sounds: sounds, rng: rng}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	p, ok := firstPlayer(w)
	if !ok || p.Dead() || p.CleanedUp() {
		return
	}

	for _, e := range w.Query(component.PickupComponent.Kind(), component.TriggeredComponent.Kind()) {
		pickup, _ := ecs.Get(w, e, component.PickupComponent)
		p.Heal(pickup.Heal)
		playSound(s.sounds, player.Sound{
			Key:    SoundManna,
			Volume: mannaVolume,
			Detune: MannaDetunes[s.rng.IntN(len(MannaDetunes))],
		})

		if s.world != nil {
			s.world.RemoveTrigger(uint64(e))
		}
		w.DestroyEntity(e)
	}
}

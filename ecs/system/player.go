package system

import (
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
	"github.com/milk9111/wallkick/player"
)

// SoundPlayer plays one-shot level sounds that do not belong to the
// player's own effects.
type SoundPlayer interface {
	PlaySound(s player.Sound)
}

func firstPlayer(w *ecs.World) (*player.Player, bool) {
	e, ok := w.First(component.PlayerComponent.Kind())
	if !ok {
		return nil, false
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent)
	if p.Controller == nil {
		return nil, false
	}
	return p.Controller, true
}

func playSound(sounds SoundPlayer, s player.Sound) {
	if sounds != nil {
		sounds.PlaySound(s)
	}
}

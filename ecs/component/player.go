package component

import "github.com/milk9111/wallkick/player"

type Player struct {
	Controller *player.Player
}

var PlayerComponent = NewComponent[Player]("player")

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/wallkick/input"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyArrowLeft:  ebiten.KeyArrowLeft,
	input.KeyArrowRight: ebiten.KeyArrowRight,
	input.KeyArrowUp:    ebiten.KeyArrowUp,
	input.KeyArrowDown:  ebiten.KeyArrowDown,
	input.KeyA:          ebiten.KeyA,
	input.KeyD:          ebiten.KeyD,
	input.KeyW:          ebiten.KeyW,
	input.KeyS:          ebiten.KeyS,
	input.KeyZ:          ebiten.KeyZ,
	input.KeySpace:      ebiten.KeySpace,
	input.KeyP:          ebiten.KeyP,
	input.KeyX:          ebiten.KeyX,
	input.KeyO:          ebiten.KeyO,
	input.KeyB:          ebiten.KeyB,
	input.KeyEscape:     ebiten.KeyEscape,
}

// keyboard reads key hold durations from ebiten's per-tick input state.
type keyboard struct{}

func (keyboard) PressDuration(k input.Key) int {
	ek, ok := ebitenKeys[k]
	if !ok {
		return 0
	}
	return inpututil.KeyPressDuration(ek)
}

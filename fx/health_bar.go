package fx

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/milk9111/wallkick/common"
)

const (
	HealthBarMax    = 190
	HealthBarHeight = 32
	healthBarTop    = 16
)

// HealthBar lays out the health bar centred at the top of a screen
// screenW wide. The bar is empty once health reaches zero.
func HealthBar(health int, screenW float64) (common.Rect, color.RGBA) {
	h := health
	if h < 0 {
		h = 0
	}
	if h > HealthBarMax {
		h = HealthBarMax
	}

	width := float64(h)
	rect := common.Rect{
		X:      screenW/2 - HealthBarMax/2,
		Y:      healthBarTop,
		Width:  width,
		Height: HealthBarHeight,
	}

	frac := float64(h) / HealthBarMax
	switch {
	case frac < 0.1:
		return rect, colornames.Red
	case frac < 0.2:
		return rect, colornames.Orange
	default:
		return rect, colornames.Green
	}
}

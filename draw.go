package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/wallkick/common"
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
	"github.com/milk9111/wallkick/fx"
	"github.com/milk9111/wallkick/player"
)

var animColors = map[string]color.RGBA{
	player.AnimIdle:      colornames.Whitesmoke,
	player.AnimRun:       colornames.Lightskyblue,
	player.AnimAirRise:   colornames.Palegreen,
	player.AnimAirMid:    colornames.Khaki,
	player.AnimAirFall:   colornames.Salmon,
	player.AnimWallSlide: colornames.Violet,
	player.AnimDash:      colornames.Orange,
}

func (l *Level) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	ox, oy := l.fx.camera.Offset()

	fill := func(r common.Rect, clr color.Color) {
		vector.FillRect(screen, float32(r.X-ox), float32(r.Y-oy), float32(r.Width), float32(r.Height), clr, false)
	}

	ecs.ForEach(l.world, component.PhysicsBodyComponent, func(_ ecs.Entity, pb component.PhysicsBody) {
		if pb.Body == nil {
			fill(pb.Rect, colornames.Slategray)
			return
		}
		pos := pb.Body.Position()
		r := pb.Rect
		r.X, r.Y = pos.X-r.Width/2, pos.Y-r.Height/2
		fill(r, colornames.Peru)
	})

	now := l.clock.Now()
	for _, e := range l.world.Query(component.TriggerComponent.Kind()) {
		t, _ := ecs.Get(l.world, e, component.TriggerComponent)
		switch {
		case ecs.Has(l.world, e, component.JumpPadComponent):
			pad, _ := ecs.Get(l.world, e, component.JumpPadComponent)
			if now < pad.ReadyAt {
				fill(t.Rect, colornames.Olive)
			} else {
				fill(t.Rect, colornames.Yellow)
			}
		case ecs.Has(l.world, e, component.HazardComponent):
			fill(t.Rect, colornames.Crimson)
		case ecs.Has(l.world, e, component.PickupComponent):
			fill(t.Rect, colornames.Aqua)
		}
	}

	w, h := l.arena.Player.Width, l.arena.Player.Height
	for i, p := range l.fx.trail {
		alpha := uint8(20 + 100*i/trailLength)
		fill(common.Rect{X: p.x - w/2, Y: p.y - h/2, Width: w, Height: h}, color.RGBA{R: 255, G: 165, B: 0, A: alpha})
	}

	x, y := l.player.Position()
	clr, ok := animColors[l.fx.anim]
	if !ok || l.player.Dead() {
		clr = colornames.Dimgray
	}
	sw := w * l.fx.squash.Scale()
	fill(common.Rect{X: x - sw/2, Y: y - h/2, Width: sw, Height: h}, clr)

	// facing marker
	eyeX := x + sw/4
	if l.fx.flipX {
		eyeX = x - sw/4
	}
	vector.StrokeLine(screen, float32(eyeX-ox), float32(y-h/4-oy), float32(eyeX-ox), float32(y-oy), 3, colornames.Black, false)

	bar, barColor := fx.HealthBar(l.player.Health(), common.BaseWidth)
	vector.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.Width), float32(bar.Height), barColor, false)
	vector.StrokeRect(screen, float32(bar.X), float32(bar.Y), fx.HealthBarMax, fx.HealthBarHeight, 2, colornames.White, false)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("health %d  dash %s  %s  FPS %.0f",
		l.player.Health(), l.player.DashStatus(), l.fx.anim, ebiten.ActualFPS()))
}

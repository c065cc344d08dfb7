package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallkick/contact"
)

var (
	debugStatic  = cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
	debugDynamic = cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1.0}
	debugSensor  = cp.FColor{R: 1.0, G: 0.85, B: 0.2, A: 1.0}
	debugTouch   = cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
)

// DrawPhysics outlines every shape in the space. Contact sensors light up
// while they report a floor or wall.
func (l *Level) DrawPhysics(screen *ebiten.Image) {
	ox, oy := l.fx.camera.Offset()
	tracker := l.physics.Contacts()
	cp.DrawSpace(l.physics.Space(), &spaceDrawer{
		screen:  screen,
		ox:      ox,
		oy:      oy,
		sensors: tracker.Sensors(),
		state:   tracker.State(),
	})
}

// spaceDrawer implements cp.Drawer on top of ebiten vector strokes.
type spaceDrawer struct {
	screen  *ebiten.Image
	ox, oy  float64
	sensors contact.Sensors
	state   contact.State
}

func (d *spaceDrawer) line(a, b cp.Vector, c color.Color) {
	vector.StrokeLine(d.screen, float32(a.X-d.ox), float32(a.Y-d.oy), float32(b.X-d.ox), float32(b.Y-d.oy), 1, c, false)
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	const steps = 16
	prev := cp.Vector{X: pos.X + radius, Y: pos.Y}
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / steps)
		cur := cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}
		d.line(prev, cur, c)
		prev = cur
	}
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(outline))
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(fill)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(fill)
	h := size / 2
	d.line(cp.Vector{X: pos.X - h, Y: pos.Y}, cp.Vector{X: pos.X + h, Y: pos.Y}, c)
	d.line(cp.Vector{X: pos.X, Y: pos.Y - h}, cp.Vector{X: pos.X, Y: pos.Y + h}, c)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return debugTouch
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	switch {
	case shape == nil:
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	case shape == d.sensors.Bottom && d.state.Floor,
		shape == d.sensors.Left && d.state.LeftWall,
		shape == d.sensors.Right && d.state.RightWall:
		return debugTouch
	case shape.Sensor():
		return debugSensor
	case shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC:
		return debugStatic
	default:
		return debugDynamic
	}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

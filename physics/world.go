// Package physics owns the Chipmunk space for a level: static solids,
// pushable crates, trigger volumes and the player body with its contact
// sensors.
package physics

import (
	"log"
	"math"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/wallkick/common"
	"github.com/milk9111/wallkick/contact"
)

const (
	CollisionSolid cp.CollisionType = iota + 1
	CollisionCrate
	CollisionPlayer
	CollisionTrigger
)

const (
	iterations = 20

	// airResistance is the share of velocity lost per tick.
	airResistance = 0.011

	solidFriction    = 0.8
	crateFriction    = 0.7
	playerElasticity = 0.07
	playerRadius     = 1.0
)

// World is the physics side of one level. It is rebuilt on every level
// load and is not safe for concurrent use.
type World struct {
	space   *cp.Space
	tracker *contact.Tracker
	player  *Body

	triggers map[*cp.Shape]uint64
	byKey    map[uint64]*cp.Shape
	hits     []uint64
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = iterations
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	space.SetDamping(math.Pow(1-airResistance, common.TickRate))

	w := &World{
		space:    space,
		tracker:  contact.NewTracker(contact.Sensors{}),
		triggers: make(map[*cp.Shape]uint64),
		byKey:    make(map[uint64]*cp.Shape),
	}
	w.setupHandlers()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Contacts returns the tracker fed by the player's sensors.
func (w *World) Contacts() *contact.Tracker {
	if w == nil {
		return nil
	}
	return w.tracker
}

// Player returns the body created by SpawnPlayer, if any.
func (w *World) Player() *Body {
	if w == nil {
		return nil
	}
	return w.player
}

// AddSolid adds static level geometry. r is in world space with a top-left
// origin.
func (w *World) AddSolid(r common.Rect) *cp.Shape {
	if w == nil || r.Empty() {
		return nil
	}
	shape := cp.NewBox2(w.space.StaticBody, bb(r), 0)
	shape.SetFriction(solidFriction)
	shape.SetCollisionType(CollisionSolid)
	w.space.AddShape(shape)
	return shape
}

// AddCrate adds a pushable box. Crates are floors but never walls.
func (w *World) AddCrate(r common.Rect, mass float64) *cp.Body {
	if w == nil || r.Empty() || mass <= 0 {
		return nil
	}
	body := cp.NewBody(mass, cp.MomentForBox(mass, r.Width, r.Height))
	cx, cy := r.Center()
	body.SetPosition(cp.Vector{X: cx, Y: cy})
	shape := cp.NewBox(body, r.Width, r.Height, 0)
	shape.SetFriction(crateFriction)
	shape.SetCollisionType(CollisionCrate)
	w.space.AddBody(body)
	w.space.AddShape(shape)
	return body
}

// AddTrigger adds a static sensor volume. key is reported by DrainTriggers
// each time the player starts overlapping it.
func (w *World) AddTrigger(key uint64, r common.Rect) {
	if w == nil || r.Empty() {
		return
	}
	w.RemoveTrigger(key)
	shape := cp.NewBox2(w.space.StaticBody, bb(r), 0)
	shape.SetSensor(true)
	shape.SetCollisionType(CollisionTrigger)
	w.space.AddShape(shape)
	w.triggers[shape] = key
	w.byKey[key] = shape
}

// RemoveTrigger drops a trigger volume. It reports false for unknown keys.
func (w *World) RemoveTrigger(key uint64) bool {
	if w == nil {
		return false
	}
	shape, ok := w.byKey[key]
	if !ok {
		return false
	}
	delete(w.byKey, key)
	delete(w.triggers, shape)
	if w.space.ContainsShape(shape) {
		w.space.RemoveShape(shape)
	}
	return true
}

// SpawnPlayer creates the player body centred on (x, y) and wires its
// contact sensors into the tracker. A previous player body is removed.
func (w *World) SpawnPlayer(x, y, width, height, mass float64) *Body {
	if w == nil || width <= 0 || height <= 0 || mass <= 0 {
		return nil
	}
	if w.player != nil {
		w.removePlayer()
	}

	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, width, height, playerRadius)
	shape.SetFriction(0)
	shape.SetElasticity(playerElasticity)
	shape.SetCollisionType(CollisionPlayer)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	sensors := contact.Attach(body, width, height)
	for _, s := range sensors.Shapes() {
		w.space.AddShape(s)
	}
	w.tracker = contact.NewTracker(sensors)
	w.player = &Body{body: body, shape: shape}
	log.Printf("physics: spawned player at (%.0f, %.0f)", x, y)
	return w.player
}

func (w *World) removePlayer() {
	p := w.player
	for _, s := range w.tracker.Sensors().Shapes() {
		if s != nil && w.space.ContainsShape(s) {
			w.space.RemoveShape(s)
		}
	}
	if w.space.ContainsShape(p.shape) {
		w.space.RemoveShape(p.shape)
	}
	if w.space.ContainsBody(p.body) {
		w.space.RemoveBody(p.body)
	}
	w.player = nil
	w.tracker = contact.NewTracker(contact.Sensors{})
}

// Step clears the contact state and advances the space by dt. Contacts
// read after Step describe the step that just ran.
func (w *World) Step(dt time.Duration) {
	if w == nil || dt <= 0 {
		return
	}
	w.tracker.Clear()
	w.space.Step(dt.Seconds())
}

// DrainTriggers returns the trigger keys the player entered since the last
// call, each at most once.
func (w *World) DrainTriggers() []uint64 {
	if w == nil || len(w.hits) == 0 {
		return nil
	}
	out := w.hits
	w.hits = nil
	return out
}

func (w *World) setupHandlers() {
	observe := func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		world.tracker.Observe(arb.Shapes())
		return true
	}
	for _, other := range []cp.CollisionType{CollisionSolid, CollisionCrate} {
		h := w.space.NewCollisionHandler(contact.CollisionType, other)
		h.UserData = w
		h.PreSolveFunc = observe
	}

	triggers := w.space.NewCollisionHandler(CollisionPlayer, CollisionTrigger)
	triggers.UserData = w
	triggers.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		a, b := arb.Shapes()
		key, ok := world.triggers[a]
		if !ok {
			key, ok = world.triggers[b]
		}
		if ok {
			world.recordHit(key)
		}
		return true
	}
}

func (w *World) recordHit(key uint64) {
	for _, k := range w.hits {
		if k == key {
			return
		}
	}
	w.hits = append(w.hits, key)
}

func bb(r common.Rect) cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/milk9111/wallkick/common"
	"github.com/milk9111/wallkick/ecs"
	"github.com/milk9111/wallkick/ecs/component"
	"github.com/milk9111/wallkick/ecs/system"
	"github.com/milk9111/wallkick/fx"
	"github.com/milk9111/wallkick/input"
	"github.com/milk9111/wallkick/physics"
	"github.com/milk9111/wallkick/player"
	"github.com/milk9111/wallkick/prefabs"
	"github.com/milk9111/wallkick/timer"
)

// Level is one attempt at an arena. It is rebuilt from scratch on death,
// on escape and when a prefab changes.
type Level struct {
	arena prefabs.ArenaSpec

	world     *ecs.World
	physics   *physics.World
	clock     *timer.Clock
	scheduler *ecs.Scheduler
	restart   *system.RestartSystem

	player *player.Player
	body   *physics.Body
	fx     *sceneEffects

	restartRequested bool
}

func NewLevel(tuning player.Tuning, arena prefabs.ArenaSpec, keys input.KeyState, sounds *mixer, rng *rand.Rand) (*Level, error) {
	l := &Level{
		arena:   arena,
		world:   ecs.NewWorld(),
		physics: physics.NewWorld(),
		clock:   timer.NewClock(),
	}

	var errs []error
	keep := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	for _, r := range arena.Solids {
		rect := r.Rect()
		l.physics.AddSolid(rect)
		e := l.world.CreateEntity()
		keep(ecs.Add(l.world, e, component.PhysicsBodyComponent, component.PhysicsBody{Rect: rect}))
	}
	for _, c := range arena.Crates {
		rect := c.Rect()
		body := l.physics.AddCrate(rect, c.Mass)
		e := l.world.CreateEntity()
		keep(ecs.Add(l.world, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body, Rect: rect}))
	}

	for _, p := range arena.JumpPads {
		e := l.addTrigger(p.Rect(), keep)
		keep(ecs.Add(l.world, e, component.JumpPadComponent, component.JumpPad{
			Angle: p.Angle,
			Force: p.Force,
			Rearm: p.Rearm(),
		}))
	}
	for _, s := range arena.Spikes {
		e := l.addTrigger(s.Rect(), keep)
		keep(ecs.Add(l.world, e, component.HazardComponent, component.Hazard{Damage: s.Damage}))
	}
	for _, m := range arena.Manna {
		e := l.addTrigger(m.Rect(), keep)
		keep(ecs.Add(l.world, e, component.PickupComponent, component.Pickup{Heal: m.Heal}))
	}

	l.body = l.physics.SpawnPlayer(arena.Spawn.X, arena.Spawn.Y, arena.Player.Width, arena.Player.Height, arena.Player.Mass)
	if l.body == nil {
		return nil, fmt.Errorf("level: build %s: player body %+v", arena.Name, arena.Player)
	}

	camera := fx.NewCamera(common.BaseWidth, common.BaseHeight, rng)
	camera.Snap(arena.Spawn.X, arena.Spawn.Y)
	l.fx = &sceneEffects{sounds: sounds, camera: camera, squash: fx.NewSquash(), anim: player.AnimIdle}

	p, err := player.New(l.body, l.physics.Contacts(), l.clock, l.fx, tuning, rng)
	if err != nil {
		return nil, fmt.Errorf("level: build %s: %w", arena.Name, err)
	}
	l.player = p

	pe := l.world.CreateEntity()
	keep(ecs.Add(l.world, pe, component.PlayerComponent, component.Player{Controller: p}))
	keep(ecs.Add(l.world, pe, component.InputComponent, component.Input{}))
	if arena.HealthDrain.Amount > 0 {
		keep(ecs.Add(l.world, pe, component.HealthDrainComponent, component.HealthDrain{
			Amount:   arena.HealthDrain.Amount,
			Interval: arena.HealthDrain.Interval(),
		}))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("level: build %s: %w", arena.Name, err)
	}

	l.restart = system.NewRestartSystem(l.clock, system.DeathRestartDelay, func() { l.restartRequested = true })
	l.scheduler = ecs.NewScheduler(
		system.NewInputSystem(keys, input.DefaultBindings()),
		system.NewTimerSystem(l.clock),
		system.NewPlayerControllerSystem(),
		system.NewPhysicsSystem(l.physics),
		system.NewJumpPadSystem(l.clock, sounds),
		system.NewHazardSystem(),
		system.NewPickupSystem(l.physics, sounds, rng),
		system.NewHealthDrainSystem(),
		l.restart,
		system.NewTriggerCleanupSystem(),
	)

	log.Printf("level: built %s with %d entities", arena.Name, l.world.Len())
	return l, nil
}

func (l *Level) addTrigger(r common.Rect, keep func(error)) ecs.Entity {
	e := l.world.CreateEntity()
	keep(ecs.Add(l.world, e, component.TriggerComponent, component.Trigger{Rect: r}))
	l.physics.AddTrigger(uint64(e), r)
	return e
}

// Update runs one fixed simulation step and the presentation that follows
// it.
func (l *Level) Update() {
	l.scheduler.Update(l.world, common.StepDuration)

	x, y := l.body.Position()
	l.fx.camera.Follow(x, y, common.StepDuration)
	l.fx.camera.Update(common.StepDuration)
	l.fx.squash.Update(common.StepDuration)
	l.fx.record(x, y)
}

func (l *Level) RestartRequested() bool { return l.restartRequested }

// Close ends the attempt. Pending timers are dropped with the clock.
func (l *Level) Close() {
	l.player.CleanUp()
	l.clock.Reset()
}

package prefabs

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/wallkick/common"
	"github.com/milk9111/wallkick/player"
)

const (
	PlayerFile = "player.yaml"
	ArenaFile  = "arena.yaml"
)

var ErrInvalidArena = errors.New("invalid arena")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

type FloorSpec struct {
	RunSpeed  float64 `yaml:"run_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	CoyoteMs  int     `yaml:"coyote_ms"`
}

type AirSpec struct {
	MaxSpeed          float64 `yaml:"max_speed"`
	Accel             float64 `yaml:"accel"`
	Decel             float64 `yaml:"decel"`
	Curve             float64 `yaml:"curve"`
	SuppressedControl float64 `yaml:"suppressed_control"`
	FallMax           float64 `yaml:"fall_max"`
	ApexBand          float64 `yaml:"apex_band"`
}

type DashSpec struct {
	SpeedX     float64 `yaml:"speed_x"`
	SpeedY     float64 `yaml:"speed_y"`
	EndBoost   float64 `yaml:"end_boost"`
	DurationMs int     `yaml:"duration_ms"`
	CooldownMs int     `yaml:"cooldown_ms"`
}

type WallJumpSpec struct {
	SpeedX              float64 `yaml:"speed_x"`
	SpeedY              float64 `yaml:"speed_y"`
	PreserveUp          float64 `yaml:"preserve_up"`
	ReducedAirControlMs int     `yaml:"reduced_air_control_ms"`
	CoyoteMs            int     `yaml:"coyote_ms"`
}

// PlayerSpec is the on-disk form of player.Tuning.
type PlayerSpec struct {
	Floor    FloorSpec    `yaml:"floor"`
	Air      AirSpec      `yaml:"air"`
	Dash     DashSpec     `yaml:"dash"`
	WallJump WallJumpSpec `yaml:"wall_jump"`

	WallSlideSpeed     float64 `yaml:"wall_slide_speed"`
	JumpReleaseDamping float64 `yaml:"jump_release_damping"`
	JumpPadOverrideMs  int     `yaml:"jump_pad_override_ms"`
	Health             int     `yaml:"health"`
}

// Tuning converts the player prefab into a validated player.Tuning.
func (s PlayerSpec) Tuning() (player.Tuning, error) {
	t := player.Tuning{
		Floor: player.FloorTuning{
			RunSpeed:  s.Floor.RunSpeed,
			JumpSpeed: s.Floor.JumpSpeed,
			Coyote:    ms(s.Floor.CoyoteMs),
		},
		Air: player.AirTuning{
			MaxSpeed:          s.Air.MaxSpeed,
			Accel:             s.Air.Accel,
			Decel:             s.Air.Decel,
			Curve:             s.Air.Curve,
			SuppressedControl: s.Air.SuppressedControl,
			FallMax:           s.Air.FallMax,
			ApexBand:          s.Air.ApexBand,
		},
		Dash: player.DashTuning{
			SpeedX:   s.Dash.SpeedX,
			SpeedY:   s.Dash.SpeedY,
			EndBoost: s.Dash.EndBoost,
			Duration: ms(s.Dash.DurationMs),
			Cooldown: ms(s.Dash.CooldownMs),
		},
		WallJump: player.WallJumpTuning{
			SpeedX:            s.WallJump.SpeedX,
			SpeedY:            s.WallJump.SpeedY,
			PreserveUp:        s.WallJump.PreserveUp,
			ReducedAirControl: ms(s.WallJump.ReducedAirControlMs),
			Coyote:            ms(s.WallJump.CoyoteMs),
		},
		WallSlideSpeed:     s.WallSlideSpeed,
		JumpReleaseDamping: s.JumpReleaseDamping,
		JumpPadOverride:    ms(s.JumpPadOverrideMs),
		Health:             s.Health,
	}
	if err := t.Validate(); err != nil {
		return player.Tuning{}, fmt.Errorf("prefabs: player tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads player.yaml into a validated tuning.
func LoadTuning() (player.Tuning, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return player.Tuning{}, err
	}
	return spec.Tuning()
}

type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r RectSpec) Rect() common.Rect {
	return common.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BodySpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

type CrateSpec struct {
	RectSpec `yaml:",inline"`
	Mass     float64 `yaml:"mass"`
}

type JumpPadSpec struct {
	RectSpec `yaml:",inline"`
	// Angle is degrees clockwise from straight up.
	Angle   float64 `yaml:"angle"`
	Force   float64 `yaml:"force"`
	RearmMs int     `yaml:"rearm_ms"`
}

type SpikeSpec struct {
	RectSpec `yaml:",inline"`
	Damage   int `yaml:"damage"`
}

type MannaSpec struct {
	RectSpec `yaml:",inline"`
	Heal     int `yaml:"heal"`
}

type DrainSpec struct {
	Amount     int `yaml:"amount"`
	IntervalMs int `yaml:"interval_ms"`
}

// ArenaSpec lays out a level.
type ArenaSpec struct {
	Name   string    `yaml:"name"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Spawn  PointSpec `yaml:"spawn"`
	Player BodySpec  `yaml:"player"`

	Solids   []RectSpec    `yaml:"solids"`
	Crates   []CrateSpec   `yaml:"crates"`
	JumpPads []JumpPadSpec `yaml:"jump_pads"`
	Spikes   []SpikeSpec   `yaml:"spikes"`
	Manna    []MannaSpec   `yaml:"manna"`

	HealthDrain DrainSpec `yaml:"health_drain"`
}

const (
	defaultPadForce    = 1020
	defaultPadRearmMs  = 1167
	defaultSpikeDamage = 500
	defaultMannaHeal   = 8
	defaultCrateMass   = 5
)

// LoadArena reads arena.yaml, fills in per-object defaults and validates
// the layout.
func LoadArena() (ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](ArenaFile)
	if err != nil {
		return ArenaSpec{}, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return ArenaSpec{}, fmt.Errorf("prefabs: %s: %w", ArenaFile, err)
	}
	return spec, nil
}

func (a *ArenaSpec) applyDefaults() {
	for i := range a.Crates {
		if a.Crates[i].Mass == 0 {
			a.Crates[i].Mass = defaultCrateMass
		}
	}
	for i := range a.JumpPads {
		if a.JumpPads[i].Force == 0 {
			a.JumpPads[i].Force = defaultPadForce
		}
		if a.JumpPads[i].RearmMs == 0 {
			a.JumpPads[i].RearmMs = defaultPadRearmMs
		}
	}
	for i := range a.Spikes {
		if a.Spikes[i].Damage == 0 {
			a.Spikes[i].Damage = defaultSpikeDamage
		}
	}
	for i := range a.Manna {
		if a.Manna[i].Heal == 0 {
			a.Manna[i].Heal = defaultMannaHeal
		}
	}
}

func (a ArenaSpec) Validate() error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v", ErrInvalidArena, a.Width, a.Height)
	}
	if a.Player.Width <= 0 || a.Player.Height <= 0 || a.Player.Mass <= 0 {
		return fmt.Errorf("%w: player body %+v", ErrInvalidArena, a.Player)
	}
	if a.Spawn.X < 0 || a.Spawn.X > a.Width || a.Spawn.Y < 0 || a.Spawn.Y > a.Height {
		return fmt.Errorf("%w: spawn (%v, %v) outside arena", ErrInvalidArena, a.Spawn.X, a.Spawn.Y)
	}

	check := func(kind string, i int, r RectSpec) error {
		if r.Rect().Empty() {
			return fmt.Errorf("%w: %s %d has empty rect", ErrInvalidArena, kind, i)
		}
		return nil
	}
	for i, r := range a.Solids {
		if err := check("solid", i, r); err != nil {
			return err
		}
	}
	for i, c := range a.Crates {
		if err := check("crate", i, c.RectSpec); err != nil {
			return err
		}
		if c.Mass <= 0 {
			return fmt.Errorf("%w: crate %d mass %v", ErrInvalidArena, i, c.Mass)
		}
	}
	for i, p := range a.JumpPads {
		if err := check("jump pad", i, p.RectSpec); err != nil {
			return err
		}
		if p.Force <= 0 || p.RearmMs < 0 {
			return fmt.Errorf("%w: jump pad %d force %v rearm %dms", ErrInvalidArena, i, p.Force, p.RearmMs)
		}
	}
	for i, s := range a.Spikes {
		if err := check("spike", i, s.RectSpec); err != nil {
			return err
		}
		if s.Damage <= 0 {
			return fmt.Errorf("%w: spike %d damage %d", ErrInvalidArena, i, s.Damage)
		}
	}
	for i, m := range a.Manna {
		if err := check("manna", i, m.RectSpec); err != nil {
			return err
		}
		if m.Heal <= 0 {
			return fmt.Errorf("%w: manna %d heal %d", ErrInvalidArena, i, m.Heal)
		}
	}
	if a.HealthDrain.Amount < 0 || (a.HealthDrain.Amount > 0 && a.HealthDrain.IntervalMs <= 0) {
		return fmt.Errorf("%w: health drain %+v", ErrInvalidArena, a.HealthDrain)
	}
	return nil
}

// Rearm returns the pad's re-arm window.
func (p JumpPadSpec) Rearm() time.Duration { return ms(p.RearmMs) }

func (d DrainSpec) Interval() time.Duration { return ms(d.IntervalMs) }

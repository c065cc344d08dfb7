package player

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/wallkick/contact"
	"github.com/milk9111/wallkick/input"
	"github.com/milk9111/wallkick/timer"
)

const step = time.Second / 60

type fakeBody struct {
	x, y          float64
	vx, vy        float64
	fx, fy        float64
	mass          float64
	ignoreGravity bool
}

func (b *fakeBody) Position() (float64, float64) { return b.x, b.y }
func (b *fakeBody) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *fakeBody) SetVelocity(x, y float64) { b.vx, b.vy = x, y }
func (b *fakeBody) ApplyForce(x, y float64) { b.fx += x; b.fy += y }
func (b *fakeBody) Mass() float64 { return b.mass }
func (b *fakeBody) SetIgnoreGravity(ignore bool) { b.ignoreGravity = ignore }

type fakeContacts struct {
	state contact.State
}

func (c *fakeContacts) State() contact.State { return c.state }

type stop struct {
	key  string
	fade time.Duration
}

type shake struct {
	d         time.Duration
	intensity float64
}

type recorder struct {
	sounds   []Sound
	stops    []stop
	anims    []string
	flips    []bool
	squashes int
	shakes   []shake
	trail    []bool
}

func (r *recorder) PlaySound(s Sound) { r.sounds = append(r.sounds, s) }
func (r *recorder) StopSound(k string, f time.Duration) { r.stops = append(r.stops, stop{k, f}) }
func (r *recorder) Squash() { r.squashes++ }
func (r *recorder) EmitTrail(on bool) { r.trail = append(r.trail, on) }

func (r *recorder) PlayAnimation(key string, flipX bool) {
	r.anims = append(r.anims, key)
	r.flips = append(r.flips, flipX)
}

func (r *recorder) ShakeCamera(d time.Duration, intensity float64) {
	r.shakes = append(r.shakes, shake{d, intensity})
}

func (r *recorder) lastAnim() string {
	if len(r.anims) == 0 {
		return ""
	}
	return r.anims[len(r.anims)-1]
}

func (r *recorder) soundsWithKey(key string) []Sound {
	var out []Sound
	for _, s := range r.sounds {
		if s.Key == key {
			out = append(out, s)
		}
	}
	return out
}

type harness struct {
	p        *Player
	body     *fakeBody
	contacts *fakeContacts
	clock    *timer.Clock
	fx       *recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		body:     &fakeBody{mass: 2},
		contacts: &fakeContacts{},
		clock:    timer.NewClock(),
		fx:       &recorder{},
	}
	p, err := New(h.body, h.contacts, h.clock, h.fx, DefaultTuning(), rand.New(rand.NewPCG(7, 11)))
	require.NoError(t, err)
	h.p = p
	return h
}

// move runs one controller step and then advances the clock by the same
// step.
func (h *harness) move(dt time.Duration, in input.Intent) {
	h.body.fx, h.body.fy = 0, 0
	h.p.Move(dt, in)
	h.clock.Advance(dt)
}

func (h *harness) onFloor() { h.contacts.state = contact.State{Floor: true} }
func (h *harness) inAir() { h.contacts.state = contact.State{} }
func (h *harness) wall(d input.XDirection) {
	h.contacts.state = contact.State{LeftWall: d == input.Left, RightWall: d == input.Right}
}

func held(d input.XDirection) input.Intent {
	return input.Intent{X: d, AnyDirection: d != input.None}
}

func TestNewRejectsBadArguments(t *testing.T) {
	body := &fakeBody{mass: 1}
	contacts := &fakeContacts{}
	clock := timer.NewClock()

	_, err := New(nil, contacts, clock, nil, DefaultTuning(), nil)
	assert.Error(t, err)
	_, err = New(body, nil, clock, nil, DefaultTuning(), nil)
	assert.Error(t, err)
	_, err = New(body, contacts, nil, nil, DefaultTuning(), nil)
	assert.Error(t, err)

	bad := DefaultTuning()
	bad.Air.Curve = 0
	_, err = New(body, contacts, clock, nil, bad, nil)
	assert.ErrorIs(t, err, ErrInvalidTuning)

	p, err := New(body, contacts, clock, nil, DefaultTuning(), nil)
	require.NoError(t, err)
	assert.Equal(t, 150, p.Health())
	assert.Equal(t, DashAvailable, p.DashStatus())
	assert.True(t, p.TouchedSurfaceSinceLastDash())
}

func TestFloorRunSnapsToRunSpeed(t *testing.T) {
	h := newHarness(t)
	h.onFloor()
	h.body.vy = 12

	h.move(step, held(input.Right))
	assert.Equal(t, 336.0, h.body.vx)
	assert.Equal(t, 12.0, h.body.vy)
	assert.Zero(t, h.body.fx, "floor movement has no acceleration ramp")
	assert.Equal(t, AnimRun, h.fx.lastAnim())
	assert.False(t, h.p.FacingLeft())

	h.move(step, held(input.Left))
	assert.Equal(t, -336.0, h.body.vx)
	assert.True(t, h.p.FacingLeft())

	h.move(step, input.Intent{})
	assert.Zero(t, h.body.vx)
	assert.Equal(t, AnimIdle, h.fx.lastAnim())
	assert.True(t, h.p.FacingLeft(), "facing survives releasing the direction")
}

func TestRunningLoopStartsOnceAndStops(t *testing.T) {
	h := newHarness(t)
	h.onFloor()
	for i := 0; i < 10; i++ {
		h.move(step, held(input.Right))
	}

	running := h.fx.soundsWithKey(SoundRunning)
	require.Len(t, running, 1)
	assert.True(t, running[0].Loop)
	assert.Equal(t, runningVolume, running[0].Volume)
	assert.Zero(t, running[0].Seek%runningStepLength)
	assert.Less(t, running[0].Seek, runningStepCount*runningStepLength)

	h.inAir()
	h.move(step, held(input.Right))
	h.move(step, held(input.Right))
	assert.Equal(t, []stop{{SoundRunning, 0}}, h.fx.stops)
}

func TestAirDriftDecaysWithoutDirection(t *testing.T) {
	h := newHarness(t)
	h.inAir()
	h.body.vx = 200

	h.move(step, input.Intent{})
	air := DefaultTuning().Air
	want := ShapeSpeed(200, 0, air.Accel, air.Decel, air.Curve) * h.body.mass
	assert.InDelta(t, want, h.body.fx, 1e-9)
	assert.Less(t, h.body.fx, 0.0)
	assert.Equal(t, 200.0, h.body.vx, "air movement is a force, never a snap")
}

func TestAirPoseBands(t *testing.T) {
	cases := []struct {
		name string
		vy   float64
		want string
	}{
		{"rising", -50, AnimAirRise},
		{"apex", 100, AnimAirMid},
		{"falling", 500, AnimAirFall},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.inAir()
			h.body.vy = c.vy
			h.move(step, input.Intent{})
			assert.Equal(t, c.want, h.fx.lastAnim())
		})
	}
}

func TestFloorJump(t *testing.T) {
	h := newHarness(t)
	h.onFloor()
	h.move(step, input.Intent{})

	h.move(step, input.Intent{Jump: true, JumpFresh: true})
	assert.Equal(t, -636.0, h.body.vy)
	assert.True(t, h.p.Jumping())
	assert.Equal(t, 1, h.fx.squashes)

	jumps := h.fx.soundsWithKey(SoundJump)
	require.Len(t, jumps, 1)
	assert.GreaterOrEqual(t, jumps[0].Volume, 0.8)
	assert.LessOrEqual(t, jumps[0].Volume, 1.0)
	assert.GreaterOrEqual(t, jumps[0].Detune, -120)
	assert.LessOrEqual(t, jumps[0].Detune, 170)
}

func TestCoyoteWindow(t *testing.T) {
	cases := []struct {
		name     string
		airborne []time.Duration
		jumps    bool
	}{
		{"just_inside", []time.Duration{100 * time.Millisecond, 74 * time.Millisecond}, true},
		{"just_outside", []time.Duration{100 * time.Millisecond, 76 * time.Millisecond}, false},
		{"first_airborne_step", []time.Duration{step}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.onFloor()
			h.move(step, input.Intent{})

			h.inAir()
			last := len(c.airborne) - 1
			for _, dt := range c.airborne[:last] {
				h.move(dt, input.Intent{})
			}
			h.body.vy = 40
			h.move(c.airborne[last], input.Intent{Jump: true, JumpFresh: true})

			if c.jumps {
				assert.Equal(t, -636.0, h.body.vy)
			} else {
				assert.Equal(t, 40.0, h.body.vy)
				assert.False(t, h.p.Jumping())
			}
		})
	}
}

func TestCoyoteClocksRunThroughDash(t *testing.T) {
	dashOut := func(h *harness) {
		for i := 0; i < 20; i++ {
			h.move(step, input.Intent{})
		}
		require.Equal(t, DashRecharging, h.p.DashStatus())
	}

	t.Run("floor", func(t *testing.T) {
		h := newHarness(t)
		h.onFloor()
		h.move(step, input.Intent{})
		h.move(step, input.Intent{Jump: true, JumpFresh: true})
		require.True(t, h.p.Jumping())

		h.inAir()
		h.move(step, input.Intent{X: input.Right, AnyDirection: true, Dash: true, DashFresh: true})
		require.Equal(t, DashDashing, h.p.DashStatus())
		dashOut(h)

		h.body.vy = 40
		h.move(step, input.Intent{Jump: true, JumpFresh: true})
		assert.Equal(t, 40.0, h.body.vy)
		assert.False(t, h.p.Jumping())
		assert.Len(t, h.fx.soundsWithKey(SoundJump), 2, "one floor jump and the dash whoosh")
	})

	t.Run("wall", func(t *testing.T) {
		h := newHarness(t)
		h.wall(input.Right)
		h.body.vy = 300
		h.move(step, held(input.Right))

		h.inAir()
		h.move(step, input.Intent{X: input.Left, AnyDirection: true, Dash: true, DashFresh: true})
		require.Equal(t, DashDashing, h.p.DashStatus())
		dashOut(h)

		h.body.vx, h.body.vy = 0, 50
		h.move(step, input.Intent{Jump: true, JumpFresh: true})
		assert.Equal(t, 50.0, h.body.vy)
		assert.False(t, h.p.RecentlyWallJumped())
	})
}

func TestHeldJumpDoesNotRepeat(t *testing.T) {
	h := newHarness(t)
	h.inAir()
	h.move(time.Second, input.Intent{})

	h.body.vy = 200
	for i := 0; i < 30; i++ {
		h.move(step, input.Intent{Jump: true})
		assert.Equal(t, 200.0, h.body.vy)
	}
	assert.Empty(t, h.fx.soundsWithKey(SoundJump))

	// held on the floor: one jump per press
	h.onFloor()
	h.move(step, input.Intent{Jump: true, JumpFresh: true})
	require.Equal(t, -636.0, h.body.vy)
	h.body.vy = 0
	h.move(step, input.Intent{Jump: true})
	h.move(step, input.Intent{Jump: true})
	assert.Zero(t, h.body.vy)
	assert.Len(t, h.fx.soundsWithKey(SoundJump), 1)
}

func TestEarlyReleaseDampsAscent(t *testing.T) {
	h := newHarness(t)
	h.onFloor()
	h.move(step, input.Intent{Jump: true, JumpFresh: true})
	require.True(t, h.p.Jumping())

	h.inAir()
	h.move(step, input.Intent{Jump: true})
	assert.Equal(t, -636.0, h.body.vy, "held jump keeps full speed")

	h.move(step, input.Intent{})
	assert.InDelta(t, -636*0.9, h.body.vy, 1e-9)

	// nothing left to damp once falling
	h.body.vy = 30
	h.move(step, input.Intent{})
	assert.Equal(t, 30.0, h.body.vy)
}

func TestFallSpeedIsClamped(t *testing.T) {
	h := newHarness(t)
	h.inAir()
	h.body.vy = 5000
	h.move(step, input.Intent{})
	assert.Equal(t, 702.0, h.body.vy)

	h.onFloor()
	h.body.vy = 5000
	h.move(step, input.Intent{})
	assert.Equal(t, 5000.0, h.body.vy, "only airborne falls are clamped")
}

func TestWallSlide(t *testing.T) {
	h := newHarness(t)
	h.wall(input.Right)
	h.body.vy = 300

	h.move(step, held(input.Right))
	assert.Equal(t, 9.0, h.body.vy)
	assert.Equal(t, AnimWallSlide, h.fx.lastAnim())

	// sliding up is left alone
	h.body.vy = -100
	h.move(step, held(input.Right))
	assert.Equal(t, -100.0, h.body.vy)

	slide := h.fx.soundsWithKey(SoundWallSlide)
	require.Len(t, slide, 1, "slide loop fades in once")
	assert.Equal(t, wallSlideFadeIn, slide[0].FadeIn)
	assert.True(t, slide[0].Loop)
	assert.Equal(t, wallSlideVolume, slide[0].Volume)

	// pressing away from the wall stops sliding
	h.body.vy = 300
	h.move(step, held(input.Left))
	assert.Equal(t, 300.0, h.body.vy)
	assert.Contains(t, h.fx.stops, stop{SoundWallSlide, wallSlideFadeOut})
}

func TestWallSlideNeedsPressIntoContactedWall(t *testing.T) {
	h := newHarness(t)
	h.wall(input.Left)
	h.body.vy = 300
	h.move(step, held(input.Right))
	assert.Equal(t, 300.0, h.body.vy)
	assert.Empty(t, h.fx.soundsWithKey(SoundWallSlide))
}

func TestWallJump(t *testing.T) {
	cases := []struct {
		name   string
		wall   input.XDirection
		vy     float64
		wantVX float64
		wantVY float64
	}{
		{"off_right_wall_falling", input.Right, 100, -438, -420},
		{"off_left_wall_falling", input.Left, 100, 438, -420},
		{"keeps_part_of_upward_speed", input.Right, -800, -438, -420 - 800*0.53},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.wall(c.wall)
			h.body.vy = c.vy

			h.move(step, input.Intent{Jump: true, JumpFresh: true})
			assert.Equal(t, c.wantVX, h.body.vx)
			assert.InDelta(t, c.wantVY, h.body.vy, 1e-9)
			assert.True(t, h.p.RecentlyWallJumped())
			assert.Len(t, h.fx.soundsWithKey(SoundJump), 1)
		})
	}
}

func TestWallJumpWithStrongUpwardSpeedBeatsFlatImpulse(t *testing.T) {
	h := newHarness(t)
	h.wall(input.Right)
	h.body.vy = -900

	h.move(step, input.Intent{Jump: true, JumpFresh: true})
	assert.Less(t, h.body.vy, -420.0)
	assert.InDelta(t, -420-900*0.53, h.body.vy, 1e-9)
}

func TestWallJumpSuppressionWindow(t *testing.T) {
	h := newHarness(t)
	h.wall(input.Right)
	h.move(step, input.Intent{Jump: true, JumpFresh: true})
	require.True(t, h.p.RecentlyWallJumped())

	h.inAir()
	air := DefaultTuning().Air
	vx := h.body.vx
	h.move(step, held(input.Right))
	want := ShapeSpeed(vx, air.MaxSpeed, air.Accel*air.SuppressedControl, 0, air.Curve) * h.body.mass
	assert.InDelta(t, want, h.body.fx, 1e-9)

	// no deceleration while suppressed
	h.move(step, input.Intent{})
	assert.Zero(t, h.body.fx)

	h.clock.Advance(290 * time.Millisecond)
	assert.False(t, h.p.RecentlyWallJumped())

	h.move(step, input.Intent{})
	assert.NotZero(t, h.body.fx)
}

func TestWallJumpCoyote(t *testing.T) {
	h := newHarness(t)
	h.wall(input.Right)
	h.body.vy = 300
	h.move(step, held(input.Right))

	h.inAir()
	h.move(100*time.Millisecond, input.Intent{})
	h.move(step, input.Intent{Jump: true, JumpFresh: true})
	assert.Equal(t, -438.0, h.body.vx, "jumps away from the last slid wall")
	assert.Equal(t, -420.0, h.body.vy)

	// one slide buys one wall jump
	h.body.vx, h.body.vy = 0, 50
	h.move(step, input.Intent{Jump: true, JumpFresh: true})
	assert.Equal(t, 50.0, h.body.vy)
}

func TestWallJumpCoyoteExpires(t *testing.T) {
	h := newHarness(t)
	h.wall(input.Left)
	h.body.vy = 300
	h.move(step, held(input.Left))

	h.inAir()
	h.move(260*time.Millisecond, input.Intent{})
	h.body.vy = 50
	h.move(step, input.Intent{Jump: true, JumpFresh: true})
	assert.Equal(t, 50.0, h.body.vy)
	assert.False(t, h.p.RecentlyWallJumped())
}

func TestFloorJumpWinsOverWallJump(t *testing.T) {
	h := newHarness(t)
	h.onFloor()
	h.move(step, input.Intent{})

	h.wall(input.Right)
	h.move(step, input.Intent{Jump: true, JumpFresh: true})
	assert.Equal(t, -636.0, h.body.vy)
	assert.False(t, h.p.RecentlyWallJumped())
	assert.Len(t, h.fx.soundsWithKey(SoundJump), 1)
}

func TestDashLifecycle(t *testing.T) {
	h := newHarness(t)
	h.onFloor()
	h.move(step, held(input.Right))
	h.move(step, input.Intent{X: input.Right, AnyDirection: true, Jump: true, JumpFresh: true})
	require.Equal(t, -636.0, h.body.vy)

	h.inAir()
	h.move(step, input.Intent{X: input.Right, AnyDirection: true, Dash: true, DashFresh: true})
	assert.Equal(t, DashDashing, h.p.DashStatus())
	assert.Equal(t, 690.0, h.body.vx)
	assert.Zero(t, h.body.vy)
	assert.True(t, h.body.ignoreGravity)
	assert.False(t, h.p.TouchedSurfaceSinceLastDash())
	assert.Equal(t, []bool{true}, h.fx.trail)
	assert.Equal(t, []shake{{80 * time.Millisecond, 0.007}}, h.fx.shakes)
	assert.Equal(t, AnimDash, h.fx.lastAnim())

	// the override holds against anything the body does meanwhile
	h.body.vx, h.body.vy = 1, 2
	h.move(step, input.Intent{})
	assert.Equal(t, 690.0, h.body.vx)
	assert.Zero(t, h.body.vy)

	// the dash started one step ago; finish its duration
	h.clock.Advance(250*time.Millisecond - 2*step)
	assert.Equal(t, DashRecharging, h.p.DashStatus())
	assert.InDelta(t, 690*0.55, h.body.vx, 1e-9)
	assert.False(t, h.body.ignoreGravity)
	assert.Equal(t, []bool{true, false}, h.fx.trail)

	h.clock.Advance(549 * time.Millisecond)
	assert.Equal(t, DashRecharging, h.p.DashStatus())
	h.clock.Advance(time.Millisecond)
	assert.Equal(t, DashAvailable, h.p.DashStatus())
}

func TestDashEndsExactlyAfterDuration(t *testing.T) {
	h := newHarness(t)
	h.inAir()
	h.p.Move(step, input.Intent{X: input.Left, AnyDirection: true, DashFresh: true})
	require.Equal(t, DashDashing, h.p.DashStatus())
	assert.Equal(t, -690.0, h.body.vx)

	h.clock.Advance(249 * time.Millisecond)
	assert.Equal(t, DashDashing, h.p.DashStatus())
	h.clock.Advance(time.Millisecond)
	assert.Equal(t, DashRecharging, h.p.DashStatus())
	h.clock.Advance(550 * time.Millisecond)
	assert.Equal(t, DashAvailable, h.p.DashStatus())
}

func TestDashVertical(t *testing.T) {
	cases := []struct {
		name   string
		in     input.Intent
		wantVX float64
		wantVY float64
	}{
		{"up", input.Intent{Up: true, AnyDirection: true, DashFresh: true}, 0, -480},
		{"down_right", input.Intent{X: input.Right, Down: true, AnyDirection: true, DashFresh: true}, 690, 480},
		{"up_left", input.Intent{X: input.Left, Up: true, AnyDirection: true, DashFresh: true}, -690, -480},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.inAir()
			h.move(step, c.in)
			assert.Equal(t, c.wantVX, h.body.vx)
			assert.Equal(t, c.wantVY, h.body.vy)
		})
	}
}

func TestDashGuards(t *testing.T) {
	dash := input.Intent{X: input.Right, AnyDirection: true, Dash: true, DashFresh: true}
	cases := []struct {
		name  string
		setup func(h *harness)
		in    input.Intent
	}{
		{"on_floor", func(h *harness) { h.onFloor() }, dash},
		{"no_direction", func(h *harness) { h.inAir() }, input.Intent{Dash: true, DashFresh: true}},
		{"held_not_fresh", func(h *harness) { h.inAir() }, input.Intent{X: input.Right, AnyDirection: true, Dash: true}},
		{"pressing_into_wall", func(h *harness) { h.wall(input.Right) }, dash},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			c.setup(h)
			h.move(step, c.in)
			assert.Equal(t, DashAvailable, h.p.DashStatus())
			assert.True(t, h.p.TouchedSurfaceSinceLastDash())
		})
	}
}

func TestDashRearmsOnlyOnSurface(t *testing.T) {
	dash := input.Intent{X: input.Right, AnyDirection: true, DashFresh: true}

	h := newHarness(t)
	h.inAir()
	h.move(step, dash)
	require.Equal(t, DashDashing, h.p.DashStatus())

	h.clock.Advance(2 * time.Second)
	require.Equal(t, DashAvailable, h.p.DashStatus())
	assert.False(t, h.p.TouchedSurfaceSinceLastDash(), "time alone never re-arms")

	h.move(step, dash)
	assert.Equal(t, DashAvailable, h.p.DashStatus(), "no chained dash in the air")

	h.onFloor()
	h.move(step, input.Intent{})
	assert.True(t, h.p.TouchedSurfaceSinceLastDash())

	h.inAir()
	h.move(step, dash)
	assert.Equal(t, DashDashing, h.p.DashStatus())
}

func TestDashRearmsOnWallSlideAndWallJump(t *testing.T) {
	dash := input.Intent{X: input.Left, AnyDirection: true, DashFresh: true}

	h := newHarness(t)
	h.inAir()
	h.move(step, dash)
	h.clock.Advance(2 * time.Second)
	require.False(t, h.p.TouchedSurfaceSinceLastDash())

	h.wall(input.Left)
	h.move(step, held(input.Left))
	assert.True(t, h.p.TouchedSurfaceSinceLastDash(), "wall-slide re-arms")

	h2 := newHarness(t)
	h2.inAir()
	h2.move(step, dash)
	h2.clock.Advance(2 * time.Second)
	h2.wall(input.Right)
	h2.move(step, input.Intent{JumpFresh: true, Jump: true})
	assert.True(t, h2.p.RecentlyWallJumped())
	assert.True(t, h2.p.TouchedSurfaceSinceLastDash(), "wall jump re-arms")
}

func TestDashEndIsNoopWhenDead(t *testing.T) {
	h := newHarness(t)
	h.inAir()
	h.move(step, input.Intent{X: input.Right, AnyDirection: true, DashFresh: true})
	require.Equal(t, DashDashing, h.p.DashStatus())

	h.p.Damage(1000)
	require.True(t, h.p.Dead())
	h.clock.Advance(time.Second)
	assert.Equal(t, DashDashing, h.p.DashStatus())
	assert.Equal(t, 690.0, h.body.vx)
}

func TestJumpPadOverride(t *testing.T) {
	h := newHarness(t)
	h.inAir()
	h.move(time.Second, input.Intent{X: input.Right, AnyDirection: true, DashFresh: true})
	h.clock.Advance(2 * time.Second)
	require.False(t, h.p.TouchedSurfaceSinceLastDash())

	h.onFloor()
	h.p.HitJumpPad(0, -1132)
	assert.True(t, h.p.JumpPadActive())
	assert.True(t, h.p.TouchedSurfaceSinceLastDash())
	assert.Equal(t, -1132.0, h.body.vy)

	// the floor snap is held off while the pad is in charge
	h.move(step, held(input.Right))
	assert.Zero(t, h.body.vx)
	assert.NotZero(t, h.body.fx)

	h.clock.Advance(900*time.Millisecond - step)
	assert.False(t, h.p.JumpPadActive())

	h.move(step, held(input.Right))
	assert.Equal(t, 336.0, h.body.vx)
}

func TestSecondJumpPadRestartsWindow(t *testing.T) {
	h := newHarness(t)
	h.p.HitJumpPad(867, 0)
	h.clock.Advance(600 * time.Millisecond)
	h.p.HitJumpPad(-867, 0)
	h.clock.Advance(600 * time.Millisecond)
	assert.True(t, h.p.JumpPadActive())
	h.clock.Advance(300 * time.Millisecond)
	assert.False(t, h.p.JumpPadActive())
	assert.Zero(t, h.clock.Pending())
}

func TestDamageAndHeal(t *testing.T) {
	h := newHarness(t)
	h.p.Damage(1)
	assert.Equal(t, 149, h.p.Health())
	assert.Empty(t, h.fx.shakes, "small hits do not shake")

	h.p.Damage(20)
	assert.Equal(t, 129, h.p.Health())
	assert.Equal(t, []shake{{100 * time.Millisecond, 0.04}}, h.fx.shakes)

	h.p.Heal(8)
	assert.Equal(t, 137, h.p.Health())

	h.p.Damage(500)
	assert.True(t, h.p.Dead())
	h.p.Heal(8)
	assert.Equal(t, -363, h.p.Health(), "the dead do not heal")
}

func TestCleanUp(t *testing.T) {
	h := newHarness(t)
	h.onFloor()
	h.move(step, held(input.Right))
	h.wall(input.Right)
	h.body.vy = 100
	h.move(step, held(input.Right))
	h.move(step, input.Intent{X: input.Right, AnyDirection: true, JumpFresh: true})
	h.inAir()
	h.move(step, input.Intent{X: input.Left, AnyDirection: true, DashFresh: true})
	require.Equal(t, DashDashing, h.p.DashStatus())
	require.NotZero(t, h.clock.Pending())

	h.p.CleanUp()
	assert.True(t, h.p.CleanedUp())
	assert.Zero(t, h.clock.Pending())
	assert.False(t, h.body.ignoreGravity)
	assert.False(t, h.fx.trail[len(h.fx.trail)-1])

	stops := len(h.fx.stops)
	sounds := len(h.fx.sounds)
	h.p.CleanUp()
	h.move(step, input.Intent{X: input.Right, JumpFresh: true})
	h.p.HitJumpPad(0, -1000)
	assert.Len(t, h.fx.stops, stops)
	assert.Len(t, h.fx.sounds, sounds)
	assert.Equal(t, DashDashing, h.p.DashStatus())
}

package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestTuningValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero_run_speed", func(t *Tuning) { t.Floor.RunSpeed = 0 }},
		{"negative_jump_speed", func(t *Tuning) { t.Floor.JumpSpeed = -1 }},
		{"zero_curve", func(t *Tuning) { t.Air.Curve = 0 }},
		{"negative_decel", func(t *Tuning) { t.Air.Decel = -2 }},
		{"end_boost_above_one", func(t *Tuning) { t.Dash.EndBoost = 1.5 }},
		{"negative_preserve_up", func(t *Tuning) { t.WallJump.PreserveUp = -0.1 }},
		{"zero_dash_duration", func(t *Tuning) { t.Dash.Duration = 0 }},
		{"negative_coyote", func(t *Tuning) { t.Floor.Coyote = -time.Millisecond }},
		{"zero_pad_override", func(t *Tuning) { t.JumpPadOverride = 0 }},
		{"zero_health", func(t *Tuning) { t.Health = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tuning := DefaultTuning()
			c.mutate(&tuning)
			assert.ErrorIs(t, tuning.Validate(), ErrInvalidTuning)
		})
	}
}

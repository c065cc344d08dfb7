package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/wallkick/player"
)

func run(t *testing.T, name string) result {
	t.Helper()
	for _, sc := range scenarios {
		if sc.name == name {
			res, err := simulate(player.DefaultTuning(), sc, 600)
			require.NoError(t, err)
			return res
		}
	}
	t.Fatalf("no scenario %q", name)
	return result{}
}

func TestFullJumpHeight(t *testing.T) {
	res := run(t, "jump")
	assert.True(t, res.landed)
	// v²/2g is about 202px before damping
	assert.Greater(t, res.apex, 120.0)
	assert.Less(t, res.apex, 205.0)
	assert.InDelta(t, 0, res.distance, 1)
}

func TestHopIsLowerThanFullJump(t *testing.T) {
	full := run(t, "jump")
	hop := run(t, "hop")
	assert.True(t, hop.landed)
	assert.Less(t, hop.apex, full.apex/2)
	assert.Less(t, hop.airtime, full.airtime)
}

func TestRunJumpTravels(t *testing.T) {
	res := run(t, "run-jump")
	assert.True(t, res.landed)
	assert.Greater(t, res.distance, 100.0)
}

func TestDashCarriesFurther(t *testing.T) {
	dash := run(t, "jump-dash")
	assert.True(t, dash.landed)
	assert.Greater(t, dash.distance, 120.0)
}

func TestInvalidTuning(t *testing.T) {
	_, err := simulate(player.Tuning{}, scenarios[0], 10)
	assert.ErrorIs(t, err, player.ErrInvalidTuning)
}

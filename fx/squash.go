package fx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	squashScale = 0.85
	// squashLeg is the length of each of the in and back legs.
	squashLeg = 200 * time.Millisecond
)

// Squash narrows a sprite on take-off and springs it back.
type Squash struct {
	seq   *gween.Sequence
	scale float64
}

func NewSquash() *Squash {
	return &Squash{scale: 1}
}

// Start restarts the squash from full width.
func (s *Squash) Start() {
	leg := float32(squashLeg.Seconds())
	s.seq = gween.NewSequence(
		gween.New(1, squashScale, leg, ease.OutQuad),
		gween.New(squashScale, 1, leg, ease.InQuad),
	)
	s.scale = 1
}

// Update advances the squash and returns the horizontal scale.
func (s *Squash) Update(dt time.Duration) float64 {
	if s.seq == nil {
		return s.scale
	}
	v, _, done := s.seq.Update(float32(dt.Seconds()))
	s.scale = float64(v)
	if done {
		s.seq = nil
		s.scale = 1
	}
	return s.scale
}

func (s *Squash) Scale() float64 { return s.scale }

package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/wallkick/fx"
	"github.com/milk9111/wallkick/player"
)

const (
	sampleRate = 44100
	// 16-bit stereo
	bytesPerFrame = 4
)

type loop struct {
	player *audio.Player
	fader  *fx.Fader
}

// mixer plays the cues found in a directory of wav files. Missing cues are
// silently skipped.
type mixer struct {
	ctx      *audio.Context
	clips    map[string][]byte
	loops    map[string]*loop
	fading   []*loop
	oneShots []*audio.Player
}

func newMixer(dir string) *mixer {
	m := &mixer{
		ctx:   audio.NewContext(sampleRate),
		clips: make(map[string][]byte),
		loops: make(map[string]*loop),
	}
	if dir == "" {
		return m
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("audio: read %s: %v", dir, err)
		return m
	}
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || !strings.EqualFold(ext, ".wav") {
			continue
		}
		pcm, err := decodeWav(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Printf("audio: %v", err)
			continue
		}
		m.clips[strings.TrimSuffix(e.Name(), ext)] = pcm
	}
	log.Printf("audio: loaded %d cues from %s", len(m.clips), dir)
	return m
}

func decodeWav(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return pcm, nil
}

func (m *mixer) PlaySound(s player.Sound) {
	pcm, ok := m.clips[s.Key]
	if !ok {
		return
	}
	pcm = detune(pcm, s.Detune)

	if !s.Loop {
		p := m.ctx.NewPlayerFromBytes(pcm)
		p.SetVolume(s.Volume)
		p.Play()
		m.oneShots = append(m.oneShots, p)
		return
	}

	if _, playing := m.loops[s.Key]; playing {
		return
	}
	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	if err != nil {
		log.Printf("audio: loop %s: %v", s.Key, err)
		return
	}
	if s.Seek > 0 {
		if err := p.SetPosition(s.Seek); err != nil {
			log.Printf("audio: seek %s: %v", s.Key, err)
		}
	}
	l := &loop{player: p, fader: fx.NewFader(0, s.Volume, s.FadeIn)}
	p.SetVolume(l.fader.Volume())
	p.Play()
	m.loops[s.Key] = l
}

func (m *mixer) StopSound(key string, fade time.Duration) {
	l, ok := m.loops[key]
	if !ok {
		return
	}
	delete(m.loops, key)
	if fade <= 0 {
		_ = l.player.Close()
		return
	}
	l.fader = fx.NewFader(l.fader.Volume(), 0, fade)
	m.fading = append(m.fading, l)
}

// Update advances fades and releases finished players.
func (m *mixer) Update(dt time.Duration) {
	for _, l := range m.loops {
		l.player.SetVolume(l.fader.Update(dt))
	}

	fading := m.fading[:0]
	for _, l := range m.fading {
		l.player.SetVolume(l.fader.Update(dt))
		if l.fader.Done() {
			_ = l.player.Close()
			continue
		}
		fading = append(fading, l)
	}
	m.fading = fading

	shots := m.oneShots[:0]
	for _, p := range m.oneShots {
		if !p.IsPlaying() {
			_ = p.Close()
			continue
		}
		shots = append(shots, p)
	}
	m.oneShots = shots
}

// StopAll silences every loop at once.
func (m *mixer) StopAll() {
	for key := range m.loops {
		m.StopSound(key, 0)
	}
	for _, l := range m.fading {
		_ = l.player.Close()
	}
	m.fading = nil
}

// detune shifts pcm by cents with nearest-frame resampling, which changes
// pitch and length together.
func detune(pcm []byte, cents int) []byte {
	if cents == 0 || len(pcm) < bytesPerFrame {
		return pcm
	}
	ratio := math.Pow(2, float64(cents)/1200)
	frames := len(pcm) / bytesPerFrame
	n := int(float64(frames) / ratio)
	out := make([]byte, n*bytesPerFrame)
	for i := 0; i < n; i++ {
		src := int(float64(i) * ratio)
		if src >= frames {
			src = frames - 1
		}
		copy(out[i*bytesPerFrame:(i+1)*bytesPerFrame], pcm[src*bytesPerFrame:])
	}
	return out
}

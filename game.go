package main

import (
	"log"
	"math/rand/v2"
	"slices"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/wallkick/common"
	"github.com/milk9111/wallkick/player"
	"github.com/milk9111/wallkick/prefabs"
)

type Game struct {
	keys    keyboard
	sounds  *mixer
	watcher *prefabs.Watcher
	rng     *rand.Rand

	tuning player.Tuning
	arena  prefabs.ArenaSpec
	level  *Level

	paused  bool
	quit    bool
	debug   bool
	pauseUI *ebitenui.UI
}

func NewGame(soundsDir string, watch bool, seed uint64) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}
	arena, err := prefabs.LoadArena()
	if err != nil {
		return nil, err
	}

	g := &Game{
		sounds: newMixer(soundsDir),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		tuning: tuning,
		arena:  arena,
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}

	g.level, err = NewLevel(g.tuning, g.arena, g.keys, g.sounds, g.rng)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	g.reloadChanged()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.level.Update()
	g.sounds.Update(common.StepDuration)
	if g.level.RestartRequested() {
		g.restart()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.level.Draw(screen)
	if g.debug {
		g.level.DrawPhysics(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// restart replaces the level with a fresh attempt. The old level stays
// when the new one cannot be built.
func (g *Game) restart() {
	next, err := NewLevel(g.tuning, g.arena, g.keys, g.sounds, g.rng)
	if err != nil {
		log.Printf("level: restart: %v", err)
		return
	}
	g.level.Close()
	g.sounds.StopAll()
	g.level = next
}

func (g *Game) reloadChanged() {
	changed, err := g.watcher.Poll()
	if err != nil {
		log.Printf("prefabs: watch: %v", err)
	}
	if len(changed) == 0 {
		return
	}

	reload := false
	if slices.Contains(changed, prefabs.PlayerFile) {
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			log.Printf("prefabs: reload %s: %v", prefabs.PlayerFile, err)
		} else {
			g.tuning = tuning
			reload = true
		}
	}
	if slices.Contains(changed, prefabs.ArenaFile) {
		arena, err := prefabs.LoadArena()
		if err != nil {
			log.Printf("prefabs: reload %s: %v", prefabs.ArenaFile, err)
		} else {
			g.arena = arena
			reload = true
		}
	}
	if reload {
		log.Printf("prefabs: reloaded %v", changed)
		g.restart()
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
	g.level.Close()
	g.sounds.StopAll()
}

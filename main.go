package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/wallkick/common"
)

func main() {
	soundsDir := flag.String("sounds", "", "directory of .wav sound cues, named by cue key")
	watch := flag.Bool("watch", false, "rebuild the level when prefabs/*.yaml change")
	seed := flag.Uint64("seed", 1, "random seed for sound variation")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("wallkick")
	ebiten.SetTPS(common.TickRate)

	game, err := NewGame(*soundsDir, *watch, *seed)
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

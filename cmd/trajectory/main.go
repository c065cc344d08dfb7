// Command trajectory runs the movement controller headlessly on a flat
// floor and prints the shape of each scripted move, for checking tuning
// changes without playing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/milk9111/wallkick/common"
	"github.com/milk9111/wallkick/input"
	"github.com/milk9111/wallkick/physics"
	"github.com/milk9111/wallkick/player"
	"github.com/milk9111/wallkick/prefabs"
	"github.com/milk9111/wallkick/timer"
)

const (
	playerW    = 20
	playerH    = 40
	settleTick = 30
)

type scenario struct {
	name  string
	input func(tick int) input.Intent
}

var scenarios = []scenario{
	{"jump", func(tick int) input.Intent {
		return input.Intent{Jump: true, JumpFresh: tick == 0}
	}},
	{"hop", func(tick int) input.Intent {
		return input.Intent{Jump: tick == 0, JumpFresh: tick == 0}
	}},
	{"run-jump", func(tick int) input.Intent {
		in := input.Intent{X: input.Right, AnyDirection: true}
		if tick >= 10 {
			in.Jump = true
			in.JumpFresh = tick == 10
		}
		return in
	}},
	{"jump-dash", func(tick int) input.Intent {
		in := input.Intent{Jump: true, JumpFresh: tick == 0}
		if tick >= 20 {
			in.X = input.Right
			in.AnyDirection = true
			in.Dash = true
			in.DashFresh = tick == 20
		}
		return in
	}},
}

type result struct {
	apex     float64
	distance float64
	airtime  time.Duration
	landed   bool
}

func simulate(tuning player.Tuning, sc scenario, maxTicks int) (result, error) {
	world := physics.NewWorld()
	world.AddSolid(common.Rect{X: -10000, Y: 0, Width: 20000, Height: 100})
	body := world.SpawnPlayer(0, -playerH/2-1, playerW, playerH, 1)
	clock := timer.NewClock()
	p, err := player.New(body, world.Contacts(), clock, nil, tuning, nil)
	if err != nil {
		return result{}, err
	}
	defer p.CleanUp()

	step := func(in input.Intent) {
		clock.Advance(common.StepDuration)
		p.Move(common.StepDuration, in)
		world.Step(common.StepDuration)
	}
	for i := 0; i < settleTick; i++ {
		step(input.Intent{})
	}

	startX, startY := body.Position()
	minY := startY
	var res result
	airborne := false
	for tick := 0; tick < maxTicks; tick++ {
		step(sc.input(tick))
		_, y := body.Position()
		if y < minY {
			minY = y
		}
		floor := world.Contacts().State().Floor
		if !floor {
			airborne = true
			res.airtime += common.StepDuration
		} else if airborne {
			res.landed = true
			break
		}
	}

	x, _ := body.Position()
	res.apex = startY - minY
	res.distance = x - startX
	return res, nil
}

func main() {
	maxTicks := flag.Int("ticks", 600, "give up on a move after this many ticks")
	only := flag.String("move", "", "run a single move by name")
	flag.Parse()

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "move\tapex px\tdistance px\tairtime")
	for _, sc := range scenarios {
		if *only != "" && sc.name != *only {
			continue
		}
		res, err := simulate(tuning, sc, *maxTicks)
		if err != nil {
			log.Fatal(err)
		}
		air := res.airtime.Round(time.Millisecond).String()
		if !res.landed {
			air = "> " + air
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%s\n", sc.name, res.apex, res.distance, air)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}

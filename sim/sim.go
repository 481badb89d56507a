// Package sim drives a world without a window: scripted input, a fixed host
// frame rate, and a summary of where things ended up.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/coinhop/config"
	"github.com/automoto/coinhop/core"
	"github.com/charmbracelet/log"
)

var ErrInvalidScript = errors.New("invalid script")

// Script describes the input held during a headless run.
type Script struct {
	Duration  time.Duration
	FPS       int
	Left      bool
	Right     bool
	JumpEvery int // press jump every N host frames; 0 never jumps
}

// Summary is the state at the end of a run.
type Summary struct {
	Frames       int
	Steps        int
	Score        int
	PlayerX      float64
	PlayerY      float64
	Grounded     bool
	CoinsTaken   int
	BlocksHit    int
	EnemiesAlive int
	Cues         map[config.SoundID]int
}

type cueCounter map[config.SoundID]int

func (c cueCounter) Play(id config.SoundID) { c[id]++ }

// Run starts w, plays the script through a driver and returns the outcome.
func Run(w *core.World, s Script, logger *log.Logger) (Summary, error) {
	if s.FPS <= 0 || s.Duration < 0 || s.JumpEvery < 0 {
		return Summary{}, fmt.Errorf("%w: fps %d, duration %v, jump every %d", ErrInvalidScript, s.FPS, s.Duration, s.JumpEvery)
	}
	if logger == nil {
		logger = log.Default()
	}

	cues := cueCounter{}
	var sum Summary
	d := core.NewDriver(w, core.Deps{
		Audio:  cues,
		Logger: logger,
		OnReward: func(r core.Reward) {
			logger.Debug("reward", "source", r.Source, "index", r.Index, "points", r.Points)
		},
	})

	frame := time.Second / time.Duration(s.FPS)
	frames := int(s.Duration / frame)

	in := d.Input()
	d.Start()
	for i := 0; i < frames; i++ {
		in.Left, in.Right = s.Left, s.Right
		if s.JumpEvery > 0 && i%s.JumpEvery == 0 {
			in.JumpPressed = true
		}
		sum.Steps += d.Advance(frame)
	}
	d.Stop()

	var snap core.Snapshot
	w.Snapshot(&snap)

	sum.Frames = frames
	sum.Score = snap.Score
	sum.PlayerX, sum.PlayerY = snap.Player.X, snap.Player.Y
	sum.Grounded = snap.Grounded
	for _, c := range snap.Coins {
		if c.Taken {
			sum.CoinsTaken++
		}
	}
	for _, solid := range snap.Solids {
		if solid.Hit {
			sum.BlocksHit++
		}
	}
	for _, e := range snap.Enemies {
		if e.Alive {
			sum.EnemiesAlive++
		}
	}
	sum.Cues = cues
	return sum, nil
}

package systems

import (
	"bytes"
	"sync"

	"github.com/automoto/coinhop/assets"
	cfg "github.com/automoto/coinhop/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context - ebiten allows one per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// AudioSink plays synthesized cues through ebiten's audio context. Any
// playback failure silences it for the rest of the run; the simulation never
// notices.
type AudioSink struct {
	cfg    cfg.AudioConfig
	bank   *assets.SFXBank
	logger *log.Logger
	failed bool
}

func NewAudioSink(c cfg.AudioConfig, logger *log.Logger) *AudioSink {
	return &AudioSink{
		cfg:    c,
		bank:   assets.NewSFXBank(c),
		logger: logger,
	}
}

// Resume creates the audio context and renders the cue bank on the first
// start, so the first cue does not stall a frame.
func (a *AudioSink) Resume() {
	if a.cfg.Muted {
		return
	}
	a.init()
}

func (a *AudioSink) init() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(a.cfg.SampleRate)
		a.bank.Preload()
		a.logger.Debug("audio ready", "sample_rate", a.cfg.SampleRate)
	})
}

func (a *AudioSink) Play(id cfg.SoundID) {
	if a.cfg.Muted || a.failed {
		return
	}
	a.init()

	pcm := a.bank.PCM(id)
	if pcm == nil {
		return
	}
	player, err := globalAudioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		a.failed = true
		a.logger.Warn("audio disabled", "cue", id, "err", err)
		return
	}
	player.Play()
}

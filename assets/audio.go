package assets

import (
	"encoding/binary"
	"math"

	"github.com/automoto/coinhop/config"
)

const (
	bytesPerFrame = 4 // 16-bit little endian, two channels
	attackTime    = 0.01
	tailTime      = 0.02
	silence       = 0.0001
)

// SFXBank synthesizes cue PCM once and caches it. The output is signed 16-bit
// little-endian stereo, the format ebiten's audio players read.
type SFXBank struct {
	cfg   config.AudioConfig
	cache map[config.SoundID][]byte
}

// NewSFXBank creates a bank for the given cue table.
func NewSFXBank(cfg config.AudioConfig) *SFXBank {
	return &SFXBank{
		cfg:   cfg,
		cache: make(map[config.SoundID][]byte),
	}
}

// Preload renders every cue so first playback does not stall a frame.
func (b *SFXBank) Preload() {
	for id := range b.cfg.Cues {
		b.PCM(id)
	}
}

// PCM returns the rendered bytes for a cue, or nil if the cue is unknown.
func (b *SFXBank) PCM(id config.SoundID) []byte {
	if pcm, ok := b.cache[id]; ok {
		return pcm
	}
	tones, ok := b.cfg.Cues[id]
	if !ok || len(tones) == 0 {
		return nil
	}
	pcm := renderTones(tones, b.cfg.SampleRate, b.cfg.MasterGain)
	b.cache[id] = pcm
	return pcm
}

func renderTones(tones []config.Tone, sampleRate int, master float64) []byte {
	longest := 0.0
	for _, t := range tones {
		longest = math.Max(longest, t.Duration)
	}
	frames := int(math.Ceil((longest + tailTime) * float64(sampleRate)))
	mix := make([]float64, frames)

	for _, t := range tones {
		addTone(mix, t, sampleRate)
	}

	out := make([]byte, frames*bytesPerFrame)
	for i, v := range mix {
		s := int16(math.Round(clampUnit(v*master) * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(s))
	}
	return out
}

// addTone mixes one voice into buf: an exponential pitch sweep from Freq to
// SweepTo over the duration, with an exponential attack and decay.
func addTone(buf []float64, t config.Tone, sampleRate int) {
	if t.Duration <= 0 || t.Freq <= 0 {
		return
	}
	sweepTo := t.SweepTo
	if sweepTo <= 0 {
		sweepTo = t.Freq
	}
	gain := math.Max(silence, t.Gain)
	n := int(math.Ceil((t.Duration + tailTime) * float64(sampleRate)))
	if n > len(buf) {
		n = len(buf)
	}

	phase := 0.0
	for i := 0; i < n; i++ {
		sec := float64(i) / float64(sampleRate)
		progress := math.Min(sec/t.Duration, 1)
		freq := t.Freq * math.Pow(sweepTo/t.Freq, progress)

		buf[i] += oscillate(t.Wave, phase) * envelope(sec, t.Duration, gain)

		phase += 2 * math.Pi * freq / float64(sampleRate)
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}
}

func oscillate(wave config.Waveform, phase float64) float64 {
	s := math.Sin(phase)
	switch wave {
	case config.WaveSquare:
		if s >= 0 {
			return 1
		}
		return -1
	case config.WaveTriangle:
		return 2 / math.Pi * math.Asin(s)
	default:
		return s
	}
}

func envelope(sec, dur, gain float64) float64 {
	switch {
	case sec < attackTime:
		return silence * math.Pow(gain/silence, sec/attackTime)
	case sec < dur:
		return gain * math.Pow(silence/gain, (sec-attackTime)/(dur-attackTime))
	default:
		return 0
	}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

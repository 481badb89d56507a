package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundLand
	SoundCoin
	SoundBump
)

func (s SoundID) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundCoin:
		return "coin"
	case SoundBump:
		return "bump"
	default:
		return "none"
	}
}

// Waveform names an oscillator shape
type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveTriangle Waveform = "triangle"
)

// Tone describes one synthesized voice: an exponential frequency sweep under
// a short attack/decay envelope.
type Tone struct {
	Wave     Waveform `yaml:"wave"`
	Freq     float64  `yaml:"freq"`
	SweepTo  float64  `yaml:"sweep_to"`
	Duration float64  `yaml:"duration"` // seconds
	Gain     float64  `yaml:"gain"`
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int                `yaml:"sample_rate"`
	MasterGain float64            `yaml:"master_gain"`
	Muted      bool               `yaml:"muted"`
	Cues       map[SoundID][]Tone `yaml:"-"`
}

// DefaultAudio returns the stock cue table. Coin layers two voices.
func DefaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		MasterGain: 0.25,
		Cues: map[SoundID][]Tone{
			SoundJump: {{Wave: WaveSquare, Freq: 320, SweepTo: 820, Duration: 0.12, Gain: 0.45}},
			SoundLand: {{Wave: WaveTriangle, Freq: 140, SweepTo: 90, Duration: 0.08, Gain: 0.35}},
			SoundCoin: {
				{Wave: WaveSine, Freq: 880, SweepTo: 1320, Duration: 0.1, Gain: 0.45},
				{Wave: WaveSine, Freq: 1320, SweepTo: 1760, Duration: 0.08, Gain: 0.25},
			},
			SoundBump: {{Wave: WaveSquare, Freq: 520, SweepTo: 260, Duration: 0.06, Gain: 0.25}},
		},
	}
}

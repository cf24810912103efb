package audio

import (
	"time"

	"github.com/omnirun/omnirun/internal/game"
)

// Cue is a short sound effect.
type Cue uint8

const (
	CueJump Cue = iota
	CueTransform
	CueCoin
	CueGameOver
	CueUnlock
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueTransform:
		return "transform"
	case CueCoin:
		return "coin"
	case CueGameOver:
		return "gameover"
	case CueUnlock:
		return "unlock"
	default:
		return "unknown"
	}
}

// CueFor maps a game event to the cue it should trigger.
func CueFor(kind game.EventKind) (Cue, bool) {
	switch kind {
	case game.EventJump:
		return CueJump, true
	case game.EventTransform:
		return CueTransform, true
	case game.EventCoin:
		return CueCoin, true
	case game.EventGameOver:
		return CueGameOver, true
	case game.EventUnlock:
		return CueUnlock, true
	}
	return 0, false
}

// Wave is an oscillator shape.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
)

// Tone is a single swept note with exponential decay.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Wave     Wave
	Duration time.Duration
	Decay    float64 // envelope falls to exp(-Decay) by the end
	Gain     float64
}

var tones = [cueCount]Tone{
	CueJump:      {StartHz: 320, EndHz: 640, Wave: WaveSquare, Duration: 120 * time.Millisecond, Decay: 3, Gain: 0.35},
	CueTransform: {StartHz: 180, EndHz: 900, Wave: WaveSine, Duration: 300 * time.Millisecond, Decay: 2, Gain: 0.6},
	CueCoin:      {StartHz: 988, EndHz: 1319, Wave: WaveSquare, Duration: 90 * time.Millisecond, Decay: 2.5, Gain: 0.3},
	CueGameOver:  {StartHz: 440, EndHz: 110, Wave: WaveSquare, Duration: 700 * time.Millisecond, Decay: 2.5, Gain: 0.45},
	CueUnlock:    {StartHz: 523, EndHz: 1047, Wave: WaveSine, Duration: 450 * time.Millisecond, Decay: 1.5, Gain: 0.6},
}

// ToneFor returns the synth parameters of c.
func ToneFor(c Cue) Tone {
	if c >= cueCount {
		return Tone{}
	}
	return tones[c]
}

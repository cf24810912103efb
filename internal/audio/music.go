package audio

import (
	"math"
	"time"

	"github.com/omnirun/omnirun/internal/game"
)

// Music is a change to the background track.
type Music uint8

const (
	MusicPlay  Music = iota // start or resume from the current position
	MusicPause              // hold the current position
	MusicStop               // pause and rewind to the top
)

func (m Music) String() string {
	switch m {
	case MusicPlay:
		return "play"
	case MusicPause:
		return "pause"
	case MusicStop:
		return "stop"
	}
	return "unknown"
}

// MusicDirector turns phase changes into track changes. The zero value
// starts in the menu with the track stopped.
type MusicDirector struct {
	prev game.Phase
}

// Update reports the track change for entering phase, if any.
func (d *MusicDirector) Update(phase game.Phase) (Music, bool) {
	prev := d.prev
	d.prev = phase
	if prev == phase {
		return 0, false
	}
	switch phase {
	case game.PhasePlaying:
		return MusicPlay, true
	case game.PhasePaused:
		return MusicPause, true
	case game.PhaseMenu, game.PhaseGameOver:
		if prev == game.PhasePlaying || prev == game.PhasePaused {
			return MusicStop, true
		}
	}
	return 0, false
}

const (
	rest        = math.MinInt8
	noteLen     = 180 * time.Millisecond
	musicBaseHz = 220.0
	musicGain   = 0.2
)

// melody is the lead line in semitones above A3.
var melody = [...]int{
	0, 3, 7, 12, 7, 3, 0, rest,
	-2, 2, 5, 10, 5, 2, -2, rest,
}

// bassLine holds one root per half of the melody.
var bassLine = [...]int{-12, -14}

func noteHz(semitones int) float64 {
	return musicBaseHz * math.Pow(2, float64(semitones)/12)
}

// musicGen renders one pass of the background loop.
type musicGen struct {
	rate       int
	noteFrames int
	total      int
	pos        int
	lead       float64
	bass       float64
}

func newMusicGen(rate int) *musicGen {
	n := frames(noteLen, rate)
	return &musicGen{rate: rate, noteFrames: n, total: n * len(melody)}
}

func (g *musicGen) done() bool { return g.pos >= g.total }

func (g *musicGen) next() float64 {
	if g.done() {
		return 0
	}
	step := g.pos / g.noteFrames
	local := float64(g.pos%g.noteFrames) / float64(g.noteFrames)

	var v float64
	if note := melody[step]; note != rest {
		hz := noteHz(note)
		v += 0.6 * math.Sin(2*math.Pi*g.lead) * math.Exp(-3*local)
		g.lead += hz / float64(g.rate)
		g.lead -= math.Floor(g.lead)
	}
	root := bassLine[step*len(bassLine)/len(melody)]
	v += 0.4 * math.Sin(2*math.Pi*g.bass)
	g.bass += noteHz(root) / float64(g.rate)
	g.bass -= math.Floor(g.bass)

	g.pos++
	return v * musicGain
}

// MusicPCM renders one pass of the background loop as 16-bit little-endian
// stereo at SampleRate. Looping it end to end gives the full track.
func MusicPCM() []byte {
	g := newMusicGen(SampleRate)
	return encode(g.total, g.next)
}

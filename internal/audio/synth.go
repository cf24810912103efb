package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is shared by both backends.
const SampleRate = 44100

// toneGen produces the samples of one Tone.
type toneGen struct {
	tone  Tone
	rate  int
	total int
	pos   int
	phase float64
}

func newToneGen(t Tone, rate int) *toneGen {
	return &toneGen{
		tone:  t,
		rate:  rate,
		total: frames(t.Duration, rate),
	}
}

// frames converts d to a sample count the same way beep.SampleRate.N does.
func frames(d time.Duration, rate int) int {
	return int(d * time.Duration(rate) / time.Second)
}

func (g *toneGen) done() bool { return g.pos >= g.total }

// next returns the next sample in [-1, 1].
func (g *toneGen) next() float64 {
	if g.done() {
		return 0
	}
	p := float64(g.pos) / float64(g.total)
	freq := g.tone.StartHz + (g.tone.EndHz-g.tone.StartHz)*p
	env := math.Exp(-g.tone.Decay*p) * g.tone.Gain

	var v float64
	switch g.tone.Wave {
	case WaveSquare:
		if g.phase < 0.5 {
			v = 1
		} else {
			v = -1
		}
	default:
		v = math.Sin(2 * math.Pi * g.phase)
	}

	g.phase += freq / float64(g.rate)
	g.phase -= math.Floor(g.phase)
	g.pos++
	return v * env
}

// PCM renders c as 16-bit little-endian stereo at SampleRate.
func PCM(c Cue) []byte {
	g := newToneGen(ToneFor(c), SampleRate)
	return encode(g.total, g.next)
}

// encode writes n mono samples from next as 16-bit little-endian stereo.
func encode(n int, next func() float64) []byte {
	out := make([]byte, n*4)
	for i := 0; i < len(out); i += 4 {
		s := int16(clamp(next()) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i:], uint16(s))
		binary.LittleEndian.PutUint16(out[i+2:], uint16(s))
	}
	return out
}

func clamp(v float64) float64 {
	return min(max(v, -1), 1)
}

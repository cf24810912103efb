package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// toneStreamer adapts a toneGen to beep.Streamer.
type toneStreamer struct {
	gen *toneGen
}

func newToneStreamer(t Tone, rate beep.SampleRate) *toneStreamer {
	return &toneStreamer{gen: newToneGen(t, int(rate))}
}

func (s *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.gen.done() {
		return 0, false
	}
	for i := range samples {
		if s.gen.done() {
			return i, true
		}
		v := s.gen.next()
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// musicStreamer adapts one pass of musicGen to beep.Streamer.
type musicStreamer struct {
	gen *musicGen
}

func (s *musicStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.gen.done() {
		return 0, false
	}
	for i := range samples {
		if s.gen.done() {
			return i, true
		}
		v := s.gen.next()
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (s *musicStreamer) Err() error { return nil }

// musicTrack buffers one pass of the background loop so it can be rewound.
func musicTrack(rate beep.SampleRate) beep.StreamSeeker {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(&musicStreamer{gen: newMusicGen(int(rate))})
	return buf.Streamer(0, buf.Len())
}

// Beep plays cues on the system speaker through gopxl/beep. It suits shells
// that do not run an Ebitengine loop.
type Beep struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	track  beep.StreamSeeker
	music  *beep.Ctrl
	volume float64
	closed bool
}

// NewBeep initializes the speaker and starts an always-on mixer.
func NewBeep(volume float64) (*Beep, error) {
	rate := beep.SampleRate(SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	b := &Beep{mixer: &beep.Mixer{}, volume: volume}
	b.track = musicTrack(rate)
	b.music = &beep.Ctrl{
		Streamer: &effects.Volume{
			Streamer: beep.Loop(-1, b.track),
			Base:     2,
			Volume:   volumeToGain(volume * musicVolume),
			Silent:   volume <= 0,
		},
		Paused: true,
	}
	b.mixer.Add(b.music)
	speaker.Play(b.mixer)
	return b, nil
}

func (b *Beep) Play(c Cue) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || c >= cueCount {
		return
	}
	s := cueStreamer(c, b.volume)
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

func (b *Beep) Music(m Music) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	switch m {
	case MusicPlay:
		b.music.Paused = false
	case MusicPause:
		b.music.Paused = true
	case MusicStop:
		b.music.Paused = true
		_ = b.track.Seek(0)
	}
}

func (b *Beep) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

// cueStreamer builds the finite stream for one cue at volume 0..1.
func cueStreamer(c Cue, volume float64) beep.Streamer {
	rate := beep.SampleRate(SampleRate)
	t := ToneFor(c)
	s := beep.Take(rate.N(t.Duration), newToneStreamer(t, rate))
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeToGain(volume),
		Silent:   volume <= 0,
	}
}

// volumeToGain maps a linear 0..1 volume to effects.Volume's log2 scale.
func volumeToGain(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(min(v, 1))
}

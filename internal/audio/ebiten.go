package audio

import (
	"bytes"
	"fmt"
	"sync"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	ctxOnce sync.Once
	ctx     *eaudio.Context
)

// sharedContext returns the process-wide audio context; Ebitengine allows one.
func sharedContext() *eaudio.Context {
	ctxOnce.Do(func() {
		if c := eaudio.CurrentContext(); c != nil {
			ctx = c
			return
		}
		ctx = eaudio.NewContext(SampleRate)
	})
	return ctx
}

// musicVolume scales the background track under the cues.
const musicVolume = 0.5

// Ebiten plays cues through Ebitengine's audio context. Each cue is rendered
// once and rewound on replay.
type Ebiten struct {
	players [cueCount]*eaudio.Player
	music   *eaudio.Player
}

// NewEbiten renders every cue and prepares a player per cue at volume 0..1.
func NewEbiten(volume float64) (*Ebiten, error) {
	c := sharedContext()
	if c.SampleRate() != SampleRate {
		return nil, fmt.Errorf("audio context runs at %d Hz, want %d", c.SampleRate(), SampleRate)
	}
	e := &Ebiten{}
	for cue := Cue(0); cue < cueCount; cue++ {
		p := c.NewPlayerFromBytes(PCM(cue))
		p.SetVolume(volume)
		e.players[cue] = p
	}
	track := MusicPCM()
	m, err := c.NewPlayer(eaudio.NewInfiniteLoop(bytes.NewReader(track), int64(len(track))))
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("music player: %w", err)
	}
	m.SetVolume(volume * musicVolume)
	e.music = m
	return e, nil
}

func (e *Ebiten) Play(c Cue) {
	if c >= cueCount {
		return
	}
	p := e.players[c]
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

func (e *Ebiten) Music(m Music) {
	if e.music == nil {
		return
	}
	switch m {
	case MusicPlay:
		e.music.Play()
	case MusicPause:
		e.music.Pause()
	case MusicStop:
		e.music.Pause()
		_ = e.music.Rewind()
	}
}

func (e *Ebiten) Close() error {
	var first error
	if e.music != nil {
		first = e.music.Close()
		e.music = nil
	}
	for i, p := range e.players {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
		e.players[i] = nil
	}
	return first
}

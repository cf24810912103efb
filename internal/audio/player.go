package audio

import (
	"log"
)

// Player plays cues over a looping background track. Implementations never
// block the game loop.
type Player interface {
	Play(Cue)
	Music(Music)
	Close() error
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue)     {}
func (Nop) Music(Music)  {}
func (Nop) Close() error { return nil }

// Fallback returns p, or Nop when opening the backend failed.
func Fallback(p Player, err error) Player {
	if err != nil {
		log.Printf("audio: disabled: %v", err)
		return Nop{}
	}
	return p
}

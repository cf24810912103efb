package audio

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnirun/omnirun/internal/game"
)

func TestCueForCoversEveryEvent(t *testing.T) {
	kinds := []game.EventKind{game.EventJump, game.EventTransform, game.EventCoin, game.EventGameOver, game.EventUnlock}
	seen := map[Cue]bool{}
	for _, k := range kinds {
		c, ok := CueFor(k)
		require.True(t, ok, k.String())
		assert.Equal(t, k.String(), c.String())
		seen[c] = true
	}
	assert.Len(t, seen, int(cueCount))

	_, ok := CueFor(game.EventKind(200))
	assert.False(t, ok)
}

func TestPCMLengthAndRange(t *testing.T) {
	for c := Cue(0); c < cueCount; c++ {
		tone := ToneFor(c)
		data := PCM(c)
		n := frames(tone.Duration, SampleRate)
		require.Len(t, data, n*4, c.String())

		var peak int16
		for i := 0; i < len(data); i += 4 {
			l := int16(binary.LittleEndian.Uint16(data[i:]))
			r := int16(binary.LittleEndian.Uint16(data[i+2:]))
			require.Equal(t, l, r, "stereo channels differ")
			peak = max(peak, l, -l)
		}
		assert.Positive(t, peak, "%s is silent", c)
	}
}

func TestPCMDecays(t *testing.T) {
	data := PCM(CueGameOver)
	energy := func(from, to int) (sum float64) {
		for i := from; i < to; i += 4 {
			v := float64(int16(binary.LittleEndian.Uint16(data[i:])))
			sum += v * v
		}
		return sum
	}
	q := len(data) / 4 / 4 * 4
	assert.Greater(t, energy(0, q), energy(len(data)-q, len(data)))
}

func TestUnknownCueIsSilent(t *testing.T) {
	assert.Empty(t, PCM(Cue(99)))
}

func TestToneStreamerMatchesDuration(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	tone := ToneFor(CueCoin)
	s := newToneStreamer(tone, rate)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			require.InDelta(t, 0, buf[i][0], 1)
			require.Equal(t, buf[i][0], buf[i][1])
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, rate.N(tone.Duration), total)
	require.NoError(t, s.Err())
}

func TestVolumeToGain(t *testing.T) {
	assert.Equal(t, 0.0, volumeToGain(1))
	assert.Equal(t, -1.0, volumeToGain(0.5))
	assert.Equal(t, 0.0, volumeToGain(3))
	assert.Equal(t, 0.0, volumeToGain(0))
}

func TestFallback(t *testing.T) {
	assert.Equal(t, Player(Nop{}), Fallback(nil, errors.New("no device")))

	p := Nop{}
	assert.Equal(t, Player(p), Fallback(p, nil))
	assert.NoError(t, Nop{}.Close())
}

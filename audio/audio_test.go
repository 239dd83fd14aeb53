package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 1000)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = max(peak, sample[0], -sample[0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCueForLines(t *testing.T) {
	cases := map[int]Cue{1: CueSingle, 2: CueMulti, 3: CueMulti, 4: CueTetris, 7: CueTetris}
	for lines, want := range cases {
		got, ok := CueForLines(lines)
		assert.True(t, ok, "lines=%d", lines)
		assert.Equal(t, want, got, "lines=%d", lines)
	}

	_, ok := CueForLines(0)
	assert.False(t, ok)
}

func TestTone(t *testing.T) {
	rate := beep.SampleRate(48000)

	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw} {
		total, peak := drain(NewTone(440, 100*time.Millisecond, wave, rate))
		assert.Equal(t, rate.N(100*time.Millisecond), total, "wave %d", wave)
		assert.LessOrEqual(t, peak, 1.0, "wave %d", wave)
		assert.Greater(t, peak, 0.5, "wave %d", wave)
	}
}

func TestToneFadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewTone(250, 100*time.Millisecond, WaveSquare, rate)

	buf := make([][2]float64, 100)
	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 100, n)
	assert.Equal(t, 1.0, buf[0][0])
	assert.InDelta(t, 0.0, buf[99][0], 0.05)
	assert.Equal(t, buf[50][0], buf[50][1])
}

func TestSound(t *testing.T) {
	rate := beep.SampleRate(8000)

	for c := CueMove; c <= CueGameOver; c++ {
		want := 0
		for _, n := range voices[c].notes {
			want += rate.N(n.d)
		}
		total, peak := drain(Sound(c, rate, 1.0))
		assert.Equal(t, want, total, c.String())
		assert.Greater(t, peak, 0.0, c.String())
		assert.Greater(t, c.Duration(), time.Duration(0), c.String())
	}

	t.Run("default volume is audible", func(t *testing.T) {
		for c := CueMove; c <= CueGameOver; c++ {
			_, peak := drain(Sound(c, rate, DefaultVolume))
			assert.Greater(t, peak, 0.1, c.String())
		}
		assert.Equal(t, DefaultVolume, NewPlayer(DefaultVolume).volume)
	})

	t.Run("zero volume is silent", func(t *testing.T) {
		total, peak := drain(Sound(CueTetris, rate, 0))
		assert.Greater(t, total, 0)
		assert.Zero(t, peak)
	})
}

func TestPlayer(t *testing.T) {
	t.Run("uninitialized player stays quiet", func(t *testing.T) {
		p := NewPlayer(1.0)
		p.PieceLocked()
		assert.Zero(t, p.Plays(CueLock))
	})

	t.Run("events map to cues", func(t *testing.T) {
		p := NewPlayer(1.0)
		p.initialized = true

		p.PieceMoved()
		p.PieceMoved()
		p.PieceRotated()
		p.PieceLocked()
		p.LinesMatched(1)
		p.LinesMatched(3)
		p.LinesMatched(4)
		p.LinesMatched(0)
		p.GameOver()

		assert.Equal(t, 2, p.Plays(CueMove))
		assert.Equal(t, 1, p.Plays(CueRotate))
		assert.Equal(t, 1, p.Plays(CueLock))
		assert.Equal(t, 1, p.Plays(CueSingle))
		assert.Equal(t, 1, p.Plays(CueMulti))
		assert.Equal(t, 1, p.Plays(CueTetris))
		assert.Equal(t, 1, p.Plays(CueGameOver))

		p.Close()
		p.PieceMoved()
		assert.Equal(t, 2, p.Plays(CueMove))
	})
}

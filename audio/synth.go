package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator produces an endless square or saw wave.
type oscillator struct {
	freq  float64
	phase float64
	wave  Wave
	rate  beep.SampleRate
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade ends a fixed-length stream with a linear release so notes do not click
// when they stop.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if remaining := f.total - f.position; remaining < f.release {
			vol := float64(remaining) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// NewTone returns a streamer that plays freq for d and then ends.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	var src beep.Streamer = &oscillator{freq: freq, wave: wave, rate: rate}
	if wave == WaveSine {
		// SineTone rejects frequencies at or above Nyquist; those fall back to
		// silence rather than aliasing.
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			sine = beep.Silence(-1)
		}
		src = sine
	}

	total := rate.N(d)
	return &fade{
		streamer: beep.Take(total, src),
		total:    total,
		release:  total / 4,
	}
}

type note struct {
	freq float64
	d    time.Duration
}

type voice struct {
	wave  Wave
	gain  float64
	notes []note
}

var voices = [...]voice{
	CueMove:   {wave: WaveSquare, gain: 0.15, notes: []note{{220, 25 * time.Millisecond}}},
	CueRotate: {wave: WaveSquare, gain: 0.15, notes: []note{{330, 35 * time.Millisecond}}},
	CueLock:   {wave: WaveSaw, gain: 0.3, notes: []note{{110, 80 * time.Millisecond}}},
	CueSingle: {wave: WaveSine, gain: 0.5, notes: []note{{523.25, 120 * time.Millisecond}}},
	CueMulti: {wave: WaveSine, gain: 0.5, notes: []note{
		{523.25, 100 * time.Millisecond},
		{659.25, 140 * time.Millisecond},
	}},
	CueTetris: {wave: WaveSine, gain: 0.6, notes: []note{
		{523.25, 90 * time.Millisecond},
		{659.25, 90 * time.Millisecond},
		{783.99, 90 * time.Millisecond},
		{1046.50, 200 * time.Millisecond},
	}},
	CueGameOver: {wave: WaveSaw, gain: 0.4, notes: []note{
		{392.00, 200 * time.Millisecond},
		{311.13, 200 * time.Millisecond},
		{261.63, 400 * time.Millisecond},
	}},
}

// Duration returns how long c plays.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range voices[c].notes {
		d += n.d
	}
	return d
}

// Sound builds a streamer for c at the given master volume, 0 to 1.
func Sound(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	v := voices[c]
	parts := make([]beep.Streamer, len(v.notes))
	for i, n := range v.notes {
		parts[i] = NewTone(n.freq, n.d, v.wave, rate)
	}
	return newVolume(beep.Seq(parts...), v.gain*volume)
}

// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// DefaultVolume is full master volume.
const DefaultVolume = 1.0

// Player turns engine events into sound. It implements game.Observer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool

	plays [CueGameOver + 1]int
}

// NewPlayer creates a player with a master volume from 0 (silent) to 1.
// Nothing is heard until Initialize succeeds.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything that is still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play starts c on top of whatever is already playing.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.plays[c]++
	s := Sound(c, sampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Plays returns how many times c has started.
func (p *Player) Plays(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plays[c]
}

func (p *Player) PieceMoved() { p.Play(CueMove) }
func (p *Player) PieceRotated() { p.Play(CueRotate) }
func (p *Player) PieceLocked() { p.Play(CueLock) }
func (p *Player) GameOver() { p.Play(CueGameOver) }

func (p *Player) LinesMatched(count int) {
	if c, ok := CueForLines(count); ok {
		p.Play(c)
	}
}

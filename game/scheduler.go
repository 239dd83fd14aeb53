package game

import (
	"context"
	"math"
	"time"

	"github.com/kamstrup/intmap"
)

//go:generate go tool stringer -type=TimerID -trimprefix=Timer

// TimerID names one of the engine's periodic timers. Timers due at the same
// instant fire in declaration order.
type TimerID int

const (
	TimerMoveRepeat TimerID = iota
	TimerGravity
	TimerClearAnimation
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	Frames         int64
	IntentsApplied int64
	TotalFires     int64
	Timers         []TimerStats
}

// TimerStats provides execution statistics for a single timer.
type TimerStats struct {
	ID            TimerID
	Interval      time.Duration
	FireCount     int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type timerStatsInternal struct {
	fireCount     int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

type timer struct {
	id       TimerID
	interval time.Duration
	elapsed  time.Duration
	fire     func()
}

// Scheduler is the single timeline an engine runs on. It accumulates elapsed
// time into the three periodic timers and fires each one as often as its
// interval has passed.
type Scheduler struct {
	engine  *Engine
	timers  []*timer
	stats   *intmap.Map[TimerID, *timerStatsInternal]
	onFrame func()

	frames  int64
	intents int64
}

// NewScheduler creates a scheduler driving engine with the intervals from its
// Config.
func NewScheduler(engine *Engine) *Scheduler {
	cfg := engine.Config()
	s := &Scheduler{
		engine: engine,
		stats:  intmap.New[TimerID, *timerStatsInternal](3),
	}
	s.add(TimerMoveRepeat, cfg.MoveRepeatInterval, engine.MoveRepeatTick)
	s.add(TimerGravity, cfg.GravityInterval, engine.GravityTick)
	s.add(TimerClearAnimation, cfg.ClearAnimationInterval, engine.ClearAnimationTick)
	return s
}

func (s *Scheduler) add(id TimerID, interval time.Duration, fire func()) {
	if interval <= 0 {
		panic("game: timer " + id.String() + " needs a positive interval")
	}
	s.timers = append(s.timers, &timer{id: id, interval: interval, fire: fire})
	s.stats.Put(id, &timerStatsInternal{minDuration: time.Duration(1<<63 - 1)})
}

// Engine returns the engine this scheduler drives.
func (s *Scheduler) Engine() *Engine {
	return s.engine
}

// SetFrameHook installs fn to run after every Once and every applied intent.
// Frontends use it to redraw.
func (s *Scheduler) SetFrameHook(fn func()) {
	s.onFrame = fn
}

// Once advances the timeline by dt seconds. Due timers fire in time order
// across the whole frame, so a long frame interleaves them the way a series of
// short frames would.
func (s *Scheduler) Once(dt float64) {
	d := time.Duration(math.Round(dt * float64(time.Second)))

	var now time.Duration
	for !s.engine.Done() {
		next, at := s.nextDue(now)
		if next == nil || at > d {
			break
		}
		for _, t := range s.timers {
			t.elapsed += at - now
		}
		now = at
		next.elapsed = 0
		s.fire(next)
	}

	if s.engine.Done() {
		// Nothing left to tick; drop the backlog.
		for _, t := range s.timers {
			t.elapsed = 0
		}
	} else {
		for _, t := range s.timers {
			t.elapsed += d - now
		}
	}

	s.frames++
	if s.onFrame != nil {
		s.onFrame()
	}
}

// nextDue returns the timer that fires first after now and the frame offset
// it fires at. Ties go to the earlier timer.
func (s *Scheduler) nextDue(now time.Duration) (*timer, time.Duration) {
	var next *timer
	var at time.Duration
	for _, t := range s.timers {
		due := now + t.interval - t.elapsed
		if next == nil || due < at {
			next, at = t, due
		}
	}
	return next, at
}

func (s *Scheduler) fire(t *timer) {
	start := time.Now()
	t.fire()
	duration := time.Since(start)

	stats, _ := s.stats.Get(t.id)
	stats.fireCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

// Apply hands one intent to the engine on the scheduler's timeline.
func (s *Scheduler) Apply(intent Intent) {
	s.engine.Apply(intent)
	s.intents++
	if s.onFrame != nil {
		s.onFrame()
	}
}

// Run drives the engine at the given interval until the context is cancelled
// or the game is done. Intents received on the channel are applied between
// frames in arrival order. A nil or closed channel only stops intent delivery.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, intents <-chan Intent) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for !s.engine.Done() {
		select {
		case <-ctx.Done():
			return
		case intent, ok := <-intents:
			if !ok {
				intents = nil
				continue
			}
			s.Apply(intent)
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about timer execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		Frames:         s.frames,
		IntentsApplied: s.intents,
		Timers:         make([]TimerStats, len(s.timers)),
	}

	var totalFires int64
	for i, t := range s.timers {
		internal, _ := s.stats.Get(t.id)

		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.fireCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.fireCount)
		} else {
			minDuration = 0
		}

		stats.Timers[i] = TimerStats{
			ID:            t.id,
			Interval:      t.interval,
			FireCount:     internal.fireCount,
			MinDuration:   minDuration,
			MaxDuration:   internal.maxDuration,
			AvgDuration:   avgDuration,
			LastDuration:  internal.lastDuration,
			TotalDuration: internal.totalDuration,
		}
		totalFires += internal.fireCount
	}

	stats.TotalFires = totalFires
	return stats
}

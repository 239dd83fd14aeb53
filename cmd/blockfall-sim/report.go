package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/game"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Seed       uint64
	Step       time.Duration
	IntentRate float64

	// Results
	Games          int
	TotalFrames    int64
	TotalIntents   int64
	SimulatedTime  time.Duration
	Pieces         int
	Lines          int
	MaxLines       int
	Clears         [4]int
	Spawned        map[game.PieceType]int
	TimerFires     map[game.TimerID]int64
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// AddGame folds one finished game into the totals.
func (r *Report) AddGame(s *game.Scheduler) {
	snap := s.Engine().Snapshot()
	stats := s.GetStats()

	r.Games++
	r.TotalFrames += stats.Frames
	r.TotalIntents += stats.IntentsApplied
	r.SimulatedTime += time.Duration(stats.Frames) * r.Step
	r.Pieces += snap.Stats.Locked
	r.Lines += snap.Stats.LinesCleared
	r.MaxLines = max(r.MaxLines, snap.Stats.LinesCleared)
	for i, n := range snap.Stats.Clears {
		r.Clears[i] += n
	}

	if r.Spawned == nil {
		r.Spawned = make(map[game.PieceType]int)
	}
	for t := game.PieceType(0); t < game.PieceCount; t++ {
		r.Spawned[t] += snap.Stats.SpawnedOf(t)
	}

	if r.TimerFires == nil {
		r.TimerFires = make(map[game.TimerID]int64)
	}
	for _, timer := range stats.Timers {
		r.TimerFires[timer.ID] += timer.FireCount
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Frame Step:** {{.Step}}
- **Intent Rate:** {{printf "%.2f" .IntentRate}}

## Games
- **Games Finished:** {{.Games}}
- **Pieces Locked:** {{.Pieces}} ({{per .Pieces .Games}} per game)
- **Lines Cleared:** {{.Lines}} ({{per .Lines .Games}} per game, best {{.MaxLines}})
- **Clears:** single {{index .Clears 0}} | double {{index .Clears 1}} | triple {{index .Clears 2}} | tetris {{index .Clears 3}}
- **Spawns:**{{range $t, $n := .Spawned}} {{$t}}={{$n}}{{end}}
- **Intents Applied:** {{.TotalIntents}}
- **Simulated Time:** {{.SimulatedTime}}
{{range $id, $n := .TimerFires}}- **{{$id}} fires:** {{$n}}
{{end}}
## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Run Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"per": func(total, games int) string {
			if games == 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.1f", float64(total)/float64(games))
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

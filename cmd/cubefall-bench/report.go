package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/loop"
	"gopkg.in/yaml.v3"
)

type Report struct {
	// Configuration
	Duration   time.Duration `yaml:"duration"`
	DeltaTime  float64       `yaml:"dt"`
	Realtime   bool          `yaml:"realtime"`
	ActionRate float64       `yaml:"action_rate"`
	Config     game.Config   `yaml:"config"`

	// Results
	TotalTicks   int64          `yaml:"total_ticks"`
	TotalTime    time.Duration  `yaml:"total_time"`
	TickTime     Stats          `yaml:"tick_time"`
	Systems      []SystemReport `yaml:"systems"`
	BotActions   int64          `yaml:"bot_actions"`
	Locks        int            `yaml:"locks"`
	Games        []GameResult   `yaml:"games"`
	Summary      Summary        `yaml:"summary"`
	CurrentScore int            `yaml:"current_score"`

	MemStatsStart runtime.MemStats `yaml:"-"`
	MemStatsEnd   runtime.MemStats `yaml:"-"`
}

type Stats struct {
	Min     time.Duration   `yaml:"min"`
	Max     time.Duration   `yaml:"max"`
	Avg     time.Duration   `yaml:"avg"`
	P99     time.Duration   `yaml:"p99"`
	Samples []time.Duration `yaml:"-"`
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

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

type SystemReport struct {
	Name string        `yaml:"name"`
	Runs int64         `yaml:"runs"`
	Avg  time.Duration `yaml:"avg"`
	Max  time.Duration `yaml:"max"`
}

func systemReports(stats *loop.SchedulerStats) []SystemReport {
	out := make([]SystemReport, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		out = append(out, SystemReport{
			Name: s.Name,
			Runs: s.ExecutionCount,
			Avg:  s.AvgDuration,
			Max:  s.MaxDuration,
		})
	}
	return out
}

type Summary struct {
	Games     int     `yaml:"games"`
	BestScore int     `yaml:"best_score"`
	MeanScore float64 `yaml:"mean_score"`
	Lines     int     `yaml:"lines"`
	Pieces    int     `yaml:"pieces"`
}

func summarize(games []GameResult) Summary {
	s := Summary{Games: len(games)}
	if len(games) == 0 {
		return s
	}
	total := 0
	for _, g := range games {
		total += g.Score
		s.BestScore = max(s.BestScore, g.Score)
		s.Lines += g.Lines
		s.Pieces += g.Pieces
	}
	s.MeanScore = float64(total) / float64(len(games))
	return s
}

func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# cubefall Bench Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Mode:** {{if .Realtime}}realtime{{else}}as fast as possible{{end}}
- **Tick:** {{.DeltaTime}}s
- **Field:** {{.Config.Width}}x{{.Config.Depth}}x{{.Config.Height}}
- **Seed:** {{.Config.Seed}}
- **Bot Action Rate:** {{.ActionRate}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
{{- if .TickTime.Samples}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
  - **P99:** {{.TickTime.P99}}
{{- end}}

| System | Runs | Avg | Max |
|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.Runs}} | {{.Avg}} | {{.Max}} |
{{- end}}

## Games
- **Finished:** {{.Summary.Games}}
- **Best Score:** {{.Summary.BestScore}}
- **Mean Score:** {{printf "%.1f" .Summary.MeanScore}}
- **Layers Cleared:** {{.Summary.Lines}}
- **Pieces Locked:** {{.Locks}}
- **Bot Actions:** {{.BotActions}}
- **Unfinished Game Score:** {{.CurrentScore}}
{{if .Games}}
| Session | Score | Lines | Pieces | Duration |
|---|---|---|---|---|
{{- range .Games}}
| {{.Session}} | {{.Score}} | {{.Lines}} | {{.Pieces}} | {{.Duration}} |
{{- end}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
`

	fm := template.FuncMap{
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
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}

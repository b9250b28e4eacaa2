package main

import (
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/plus3/handtris/engine"
	"github.com/plus3/handtris/tetris"
)

type Report struct {
	// Configuration
	Script string
	Seed   uint64
	Pieces string
	Frames int
	DT     time.Duration

	// Results
	Session   string
	Snapshot  tetris.Snapshot
	Spawned   []KindCount
	Clears    [4]int
	Input     engine.InputStats
	Scheduler *engine.SchedulerStats
	Elapsed   time.Duration
}

type KindCount struct {
	Kind  tetris.Kind
	Count int
}

func (r *Report) Board() string {
	return RenderBoard(r.Snapshot)
}

// RenderBoard draws a snapshot as text: '#' locked, '@' current piece,
// '+' ghost and '.' empty.
func RenderBoard(s tetris.Snapshot) string {
	rows := make([][]byte, s.Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(".", s.Width))
		for x, b := range s.Cells[y] {
			if b.Filled {
				rows[y][x] = '#'
			}
		}
	}

	if !s.GameOver() {
		mark := func(dRow int, ch byte) {
			for _, c := range s.Current.Cells() {
				row := c.Row + dRow
				if row >= 0 && row < s.Height && c.Col >= 0 && c.Col < s.Width {
					rows[row][c.Col] = ch
				}
			}
		}
		mark(s.GhostRowOffset, '+')
		mark(0, '@')
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteByte('|')
		sb.Write(row)
		sb.WriteString("|\n")
	}
	sb.WriteString("+" + strings.Repeat("-", s.Width) + "+\n")
	return sb.String()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Replay Report

## Configuration
- **Script:** {{.Script}}
- **Seed:** {{.Seed}}{{if .Pieces}}
- **Pieces:** {{.Pieces}}{{end}}
- **Frames:** {{.Frames}}
- **Frame dt:** {{.DT}}

## Result
- **Session:** {{.Session}}
- **State:** {{.Snapshot.State}}
- **Score:** {{.Snapshot.Score}}
- **Level:** {{.Snapshot.Level}}
- **Lines:** {{.Snapshot.Lines}}
- **Run Time:** {{.Elapsed}}

## Pieces
{{range .Spawned}}- {{.Kind}}: {{.Count}}
{{end}}
## Line Clears
{{range $i, $n := .Clears}}- {{inc $i}} row(s): {{$n}}
{{end}}
## Input
- Applied:  {{.Input.Applied}}
- Rejected: {{.Input.Rejected}}
- Dropped:  {{.Input.Dropped}}

## Systems
| System | Executions | Avg | Min | Max |
|---|---|---|---|---|
{{range .Scheduler.Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Board
` + "```" + `
{{.Board}}` + "```" + `
`

	funcMap := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}

	tmpl, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

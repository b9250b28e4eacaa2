package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	applog "github.com/plus3/handtris/internal/log"
	"github.com/plus3/handtris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	script := `
# opening
move-left, MoveLeft
rotate-cw   hard_drop
idle 3
softdrop # trailing comment

idle
`
	frames, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)

	assert.Equal(t, []Frame{
		{tetris.MoveLeft, tetris.MoveLeft},
		{tetris.RotateCW, tetris.HardDrop},
		{}, {}, {},
		{tetris.SoftDrop},
		{},
	}, frames)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown token", "move_left\nwave\n", "line 2"},
		{"bad idle count", "idle x", "bad idle count"},
		{"negative idle count", "idle -1", "bad idle count"},
		{"idle extra args", "idle 1 2", "idle takes one count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tt.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds("iOt")
	require.NoError(t, err)
	assert.Equal(t, []tetris.Kind{tetris.I, tetris.O, tetris.T}, kinds)

	_, err = ParseKinds("IX")
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	logger := applog.NewWithWriter(io.Discard, applog.Options{})
	frames := []Frame{{tetris.HardDrop}, {}}

	report, err := Replay(tetris.DefaultConfig(), options{pieces: "O", dt: 0, maxPerTick: 1}, frames, logger)
	require.NoError(t, err)

	assert.Equal(t, 36, report.Snapshot.Score)
	assert.Equal(t, tetris.Playing, report.Snapshot.State)
	assert.Equal(t, int64(1), report.Input.Applied)
	assert.Equal(t, int64(2), report.Scheduler.Frames)
	assert.Equal(t, KindCount{Kind: tetris.O, Count: 2}, report.Spawned[tetris.O])

	board := strings.Split(RenderBoard(report.Snapshot), "\n")
	assert.Equal(t, "|....@@....|", board[0])
	assert.Equal(t, "|....@@....|", board[1])
	assert.Equal(t, "|....++....|", board[16])
	assert.Equal(t, "|....##....|", board[18])
	assert.Equal(t, "|....##....|", board[19])
	assert.Equal(t, "+----------+", board[20])

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	assert.Contains(t, out.String(), "- **Score:** 36")
	assert.Contains(t, out.String(), "| InputSystem | 2 |")
}

func TestReplayDropsExtraEvents(t *testing.T) {
	logger := applog.NewWithWriter(io.Discard, applog.Options{})
	frames := []Frame{{tetris.MoveLeft, tetris.MoveLeft, tetris.TogglePause}}

	report, err := Replay(tetris.DefaultConfig(), options{pieces: "T", maxPerTick: 1}, frames, logger)
	require.NoError(t, err)

	assert.Equal(t, int64(2), report.Input.Applied)
	assert.Equal(t, int64(1), report.Input.Dropped)
	assert.Equal(t, tetris.Paused, report.Snapshot.State)
	assert.Equal(t, 2, report.Snapshot.Current.Col)
}

func TestRootCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetIn(strings.NewReader("hard-drop\nidle 2\n"))
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--pieces", "O"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "- **Frames:** 3")
	assert.Contains(t, out.String(), "- **Script:** -")
}

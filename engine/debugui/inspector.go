package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/handtris/engine"
	"github.com/plus3/handtris/tetris"
)

// GameInspector shows the game state and piece statistics, and offers
// pause and reset buttons that go through the input queue.
type GameInspector struct {
	queue *engine.InputQueue
}

func NewGameInspector(queue *engine.InputQueue) *GameInspector {
	return &GameInspector{queue: queue}
}

func (gi *GameInspector) Render(frame *engine.UpdateFrame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(660, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 360), imgui.CondOnce)
	if !imgui.BeginV("Game Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	game := frame.Game
	current := game.Current()

	imgui.Text(fmt.Sprintf("Session: %s", frame.Session.ID))
	imgui.Text(fmt.Sprintf("State: %s", game.State()))
	imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", game.Score(), game.Level(), game.Lines()))
	imgui.Text(fmt.Sprintf("Current: %s rot=%d col=%d row=%d", current.Kind, current.Rotation, current.Col, current.Row))
	imgui.Text(fmt.Sprintf("Next: %s", game.Next().Kind))
	imgui.Text(fmt.Sprintf("Ghost offset: %d", game.GhostRowOffset()))
	imgui.Text(fmt.Sprintf("Fall timer: %s / %s", game.FallTimer(), game.Config().FallInterval))

	label := "Pause"
	if game.Paused() {
		label = "Resume"
	}
	if imgui.Button(label) {
		gi.queue.Push(tetris.TogglePause)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		gi.queue.Push(tetris.Reset)
	}

	imgui.Separator()

	interval := int32(game.Config().FallInterval.Milliseconds())
	imgui.SetNextItemWidth(120)
	if imgui.InputInt("Fall interval (ms)", &interval) {
		game.SetFallInterval(time.Duration(interval) * time.Millisecond)
	}
	catchUp := game.Config().CatchUp
	if imgui.Checkbox("Catch-up gravity", &catchUp) {
		game.SetCatchUp(catchUp)
	}

	imgui.Separator()

	stats := game.Stats()
	if imgui.TreeNodeStr(fmt.Sprintf("Pieces (%d)", stats.Pieces())) {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for _, kind := range tetris.Kinds() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawned(kind)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		for rows := 1; rows <= 4; rows++ {
			imgui.BulletText(fmt.Sprintf("%d row(s): %d", rows, stats.Clears(rows)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

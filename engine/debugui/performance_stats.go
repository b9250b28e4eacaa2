package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/handtris/engine"
)

// PerformanceStats plots frame times and shows per-system scheduler timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int

	scheduler *engine.Scheduler
	input     *engine.InputSystem
}

func NewPerformanceStats(historyFrames int, scheduler *engine.Scheduler, input *engine.InputSystem) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		scheduler:     scheduler,
		input:         input,
	}
}

// record stores a frame delta in seconds.
func (ps *PerformanceStats) record(deltaTime float64) {
	ps.frameHistory[ps.frameIndex] = float32(deltaTime * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// average returns the mean frame time in milliseconds over the history.
func (ps *PerformanceStats) average() float32 {
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(frame *engine.UpdateFrame) {
	ps.record(frame.DeltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(660, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 300), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.scheduler.GetStats()

	imgui.Text(fmt.Sprintf("Frames: %d (session %d)", stats.Frames, frame.Session.Frames))
	if avg := ps.average(); avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	if ps.input != nil {
		imgui.Text(fmt.Sprintf("Input: %d applied, %d rejected, %d dropped",
			ps.input.Stats.Applied, ps.input.Stats.Rejected, ps.input.Stats.Dropped))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

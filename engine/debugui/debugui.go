// Package debugui provides Dear ImGui panels for inspecting a running game.
// Panels are registered with an ImguiSystem, which defers their render
// functions to the end of the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/handtris/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func(frame *engine.UpdateFrame)
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Keyboard handlers should skip game input while WantCaptureKeyboard is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render functions of all items and refreshes the
// input capture state.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState *ImguiInputState
}

func NewImguiSystem() *ImguiSystem {
	return &ImguiSystem{InputState: &ImguiInputState{}}
}

// Add registers a render function.
func (i *ImguiSystem) Add(render func(frame *engine.UpdateFrame)) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(func() { item.Render(frame) })
	}
}

// Install registers the game inspector and the performance panel.
func Install(system *ImguiSystem, scheduler *engine.Scheduler, input *engine.InputSystem) {
	inspector := NewGameInspector(input.Queue)
	perf := NewPerformanceStats(120, scheduler, input)
	system.Add(inspector.Render)
	system.Add(perf.Render)
}

// Package debugui renders live game state in Dear ImGui windows.
// The Panel is a loop.System: register it on a Game and call Tick between the
// backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/loop"
)

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// Front ends should ignore game keys while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Panel groups the session, field and performance windows for one game.
type Panel struct {
	Visible bool
	Input   InputState

	game    *game.Game
	session SessionViewer
	field   FieldViewer
	perf    PerformanceStats
}

// NewPanel returns a hidden panel that keeps historyFrames frame times.
func NewPanel(g *game.Game, historyFrames int) *Panel {
	return &Panel{
		game: g,
		perf: NewPerformanceStats(historyFrames),
	}
}

// Toggle flips visibility.
func (p *Panel) Toggle() {
	p.Visible = !p.Visible
}

// Execute samples the frame and queues the windows to draw once the frame's
// systems have run.
func (p *Panel) Execute(frame *loop.UpdateFrame) {
	p.perf.Record(frame.DeltaTime)

	if !p.Visible {
		p.Input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	p.Input.WantCaptureMouse = io.WantCaptureMouse()
	p.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	frame.Commands.Defer(p.render)
}

func (p *Panel) render() {
	snap := p.game.Snapshot()
	p.session.Render(snap)
	p.field.Render(p.game.Field())
	p.perf.Render(p.game.Stats())
}

func (p *Panel) String() string {
	return "debugui.Panel"
}

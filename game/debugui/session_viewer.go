package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/game"
	"github.com/plus3/cubefall/piece"
)

type SessionViewer struct{}

func (sv *SessionViewer) Render(snap game.Snapshot) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 330), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Session: %s", snap.Session))
	if snap.State == game.Ended {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.Text(fmt.Sprintf("State: %s", snap.State))
	}
	imgui.Text(fmt.Sprintf("Elapsed: %s", snap.Elapsed.Round(time.Second/10)))
	imgui.Separator()

	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Pieces: %d", snap.Pieces))
	imgui.Text(fmt.Sprintf("Placed cubes: %d", snap.Placed))
	imgui.Text(fmt.Sprintf("Next: %s", snap.Next))
	imgui.Separator()

	if snap.Active == nil {
		imgui.Text("No active piece")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Active: %s at %s", snap.Active.Kind, snap.Active.Pivot))
	imgui.Text(fmt.Sprintf("Ghost: %s", snap.Ghost.Pivot))
	imgui.Text(fmt.Sprintf("Soft drop: %t", snap.SoftDrop))

	if imgui.TreeNodeStr(fmt.Sprintf("Orientation %s", snap.Active.Orientation)) {
		renderMatrix(snap.Active.Orientation)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Cells") {
		for _, c := range snap.Active.Cells() {
			imgui.BulletText(c.String())
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderMatrix(o piece.Orientation) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV("OrientationMatrix", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	for _, row := range o.Matrix() {
		imgui.TableNextRow()
		for _, v := range row {
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%2d", v))
		}
	}
	imgui.EndTable()
}

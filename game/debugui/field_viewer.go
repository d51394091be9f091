package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cubefall/game"
)

// LayerInfo summarises one horizontal layer of the field.
type LayerInfo struct {
	Y     int
	Count int
	Fill  float32
}

// Layers reports every non-empty layer from the top of the stack down.
// Layers above the ceiling are included when occupied.
func Layers(f *game.Field) []LayerInfo {
	b := f.Bounds()
	occ := f.Occupancy()
	size := b.LayerSize()

	top := b.Height - 1
	for c := range occ.All() {
		top = max(top, c.Y)
	}

	var out []LayerInfo
	for y := top; y >= 0; y-- {
		n := occ.LayerCount(y)
		if n == 0 {
			continue
		}
		out = append(out, LayerInfo{Y: y, Count: n, Fill: float32(n) / float32(size)})
	}
	return out
}

type FieldViewer struct{}

func (fv *FieldViewer) Render(f *game.Field) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 350), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 320), imgui.CondOnce)

	if !imgui.BeginV("Field", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b := f.Bounds()
	imgui.Text(fmt.Sprintf("Bounds: %dx%dx%d", b.Width, b.Depth, b.Height))
	imgui.Text(fmt.Sprintf("Top-out row: %d", f.TopOutRow()))
	imgui.Text(fmt.Sprintf("Cubes: %d", f.Occupancy().Len()))
	imgui.Separator()

	layers := Layers(f)
	if len(layers) == 0 {
		imgui.Text("Field is empty")
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("LayerTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Layer")
		imgui.TableSetupColumn("Cubes")
		imgui.TableSetupColumn("Fill")
		imgui.TableHeadersRow()

		for _, layer := range layers {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", layer.Y))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d/%d", layer.Count, b.LayerSize()))

			imgui.TableNextColumn()
			barWidth := layer.Fill * 80.0
			drawList := imgui.WindowDrawList()
			pos := imgui.CursorScreenPos()
			color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
			if layer.Y >= f.TopOutRow() {
				color = imgui.ColorU32Vec4(imgui.NewVec4(0.9, 0.2, 0.2, 0.8))
			}
			drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
		}

		imgui.EndTable()
	}

	imgui.End()
}

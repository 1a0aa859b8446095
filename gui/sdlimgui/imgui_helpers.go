// This file is part of Chippy8.
//
// Chippy8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chippy8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chippy8.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
)

// imguiRemainingWinHeight returns the height of the available space in the
// window.
func imguiRemainingWinHeight() float32 {
	return imgui.WindowHeight() - imgui.CursorPosY() -
		imgui.CurrentStyle().FramePadding().Y*2 - imgui.CurrentStyle().ItemInnerSpacing().Y
}

// imguiRemainingWinWidth returns the width of the available space in the
// window.
func imguiRemainingWinWidth() float32 {
	return imgui.WindowWidth() - imgui.CursorPosX()
}

// imguiDivideWinWidth divides the window width by the given number, leaving
// room for the frame padding.
func imguiDivideWinWidth(num int) float32 {
	return imgui.WindowWidth()/float32(num) - imgui.CurrentStyle().FramePadding().X*2
}

// imguiGetFrameDim returns the minimum Vec2{} required to fit any of the
// string values listed in the arguments.
func imguiGetFrameDim(s string, t ...string) imgui.Vec2 {
	w := imgui.CalcTextSize(s, false, 0)
	for i := range t {
		y := imgui.CalcTextSize(t[i], false, 0)
		if y.X > w.X {
			w = y
		}
	}

	w.Y = imgui.FontSize() + (imgui.CurrentStyle().FramePadding().Y * 2.5)

	// comboboxes in particular look better with a small amount of trailing
	// space
	w.X += imgui.CurrentStyle().FramePadding().X * 2.5

	return w
}

// imguiTextWidth provides a width in pixels for the number of characters.
func imguiTextWidth(digits int) float32 {
	if digits < 1 {
		return 0
	}
	return imguiGetFrameDim(strings.Repeat("X", digits)).X
}

// imguiLabel aligns text with sibling widgets. put the label before the
// widget it refers to.
func imguiLabel(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
	imgui.SameLine()
}

// imguiLabelEnd is the same as imguiLabel but without the SameLine() call.
func imguiLabelEnd(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
}

// imguiIndentText displays the text indented a little from the left edge of
// the window.
func imguiIndentText(text string) {
	p := imgui.CursorPos()
	p.X += 10
	imgui.SetCursorPos(p)
	imgui.Text(text)
}

// imguiMeasureHeight returns the height of the region drawn by the supplied
// function. the region must be drawn for the measurement to work, meaning
// the value is of most use on the next frame.
func imguiMeasureHeight(region func()) float32 {
	p := imgui.CursorPos()
	region()
	return imgui.CursorPos().Y - p.Y
}

// imguiSeparator with a small amount of spacing either side.
func imguiSeparator() {
	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()
}

// imguiToggleButton draws a custom toggle button in the fashion of a
// mechanical switch.
func imguiToggleButton(id string, v *bool, col imgui.Vec4) {
	bg := imgui.PackedColorFromVec4(col)

	p := imgui.CursorScreenPos()
	dl := imgui.WindowDrawList()

	height := imgui.FrameHeight() * 0.75
	width := height * 1.55
	radius := height * 0.50
	t := float32(0.0)
	if *v {
		t = 1.0
	}

	imgui.InvisibleButtonV(id, imgui.Vec2{X: width, Y: height}, imgui.ButtonFlagsMouseButtonLeft)
	if imgui.IsItemClicked() {
		*v = !*v
	}

	dl.AddRectFilledV(p, imgui.Vec2{X: p.X + width, Y: p.Y + height},
		bg, radius, imgui.DrawCornerFlagsAll)
	dl.AddCircleFilled(imgui.Vec2{X: p.X + radius + t*(width-radius*2.0), Y: p.Y + radius},
		radius-1.5, imgui.PackedColorFromVec4(imgui.Vec4{X: 1.0, Y: 1.0, Z: 1.0, W: 1.0}))
}

// imguiHexInput is a hexadecimal input field of the specified number of
// digits. returns true when the user has committed a new value with the
// return key.
func imguiHexInput(label string, digits int, content *string) bool {
	cb := func(d imgui.InputTextCallbackData) int32 {
		b := string(d.Buffer())

		// restrict length of input to the number of digits
		if len(b) > digits {
			d.DeleteBytes(0, len(b))
			b = b[:digits]
			d.InsertBytes(0, []byte(b))
			d.MarkBufferModified()
		}

		return 0
	}

	imgui.PushItemWidth(imguiTextWidth(digits))
	defer imgui.PopItemWidth()

	return imgui.InputTextV(label, content,
		imgui.InputTextFlagsCharsHexadecimal|imgui.InputTextFlagsCallbackAlways|
			imgui.InputTextFlagsEnterReturnsTrue|imgui.InputTextFlagsAutoSelectAll,
		cb)
}

// drawByteGrid displays a scrollable table of memory with editable cells.
//
// the commit function is called when the user has edited a cell. the before
// and after functions, which may be nil, are called either side of every
// cell; useful for changing the styling of individual cells.
func drawByteGrid(id string, data []uint8, origin uint16,
	before func(idx int), after func(idx int), commit func(idx int, value uint8)) {
	const numColumns = 16

	imgui.PushStyleVarVec2(imgui.StyleVarCellPadding, imgui.Vec2{X: 0.5, Y: 0.5})
	defer imgui.PopStyleVar()

	flgs := imgui.TableFlagsScrollY | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV(id, numColumns+1, flgs, imgui.Vec2{}, 0.0) {
		return
	}
	defer imgui.EndTable()

	// the first column is the address of the row. the other columns take
	// the low nibble from the header
	imgui.TableSetupColumnV("", imgui.TableColumnFlagsNone, imguiTextWidth(4), 0)
	for i := 0; i < numColumns; i++ {
		imgui.TableSetupColumnV(fmt.Sprintf("-%x", i), imgui.TableColumnFlagsNone, imguiTextWidth(2), 0)
	}

	imgui.TableSetupScrollFreeze(0, 1)
	imgui.TableHeadersRow()

	// the origin may not be aligned to the start of a row. the leading
	// cells on the first row are left blank
	leadingCells := int(origin) % numColumns

	numRows := (len(data) + leadingCells + numColumns - 1) / numColumns

	var clipper imgui.ListClipper
	clipper.Begin(numRows)
	for clipper.Step() {
		for row := clipper.DisplayStart; row < clipper.DisplayEnd; row++ {
			imgui.TableNextRow()
			imgui.TableNextColumn()

			rowOrigin := int(origin) - leadingCells + (row * numColumns)
			imgui.Text(fmt.Sprintf("%03x-", rowOrigin/numColumns))

			for col := 0; col < numColumns; col++ {
				imgui.TableNextColumn()

				idx := (row * numColumns) + col - leadingCells
				if idx < 0 || idx >= len(data) {
					continue
				}

				addr := int(origin) + idx

				if before != nil {
					before(idx)
				}

				s := fmt.Sprintf("%02x", data[idx])
				if imguiHexInput(fmt.Sprintf("%s##%08x", id, addr), 2, &s) {
					if v, err := strconv.ParseUint(s, 16, 8); err == nil {
						commit(idx, uint8(v))
					}
				}

				if after != nil {
					after(idx)
				}
			}
		}
	}
}

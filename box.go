// seehuhn.de/go/report - evidence reports in PDF format
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package report

import (
	"fmt"

	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/report/theme"
)

// Box represents marks on a page within a rectangular area of known size.
// The reference point of a box is on the baseline, at the left edge.
type Box interface {
	Extent() *BoxExtent
	Draw(page *document.Page, xPos, yPos float64)
}

// BoxExtent gives the dimensions of a Box.
type BoxExtent struct {
	Width, Height, Depth float64
	WhiteSpaceOnly       bool
}

func (ext BoxExtent) String() string {
	extra := ""
	if ext.WhiteSpaceOnly {
		extra = "W"
	}
	return fmt.Sprintf("%gx(%g%+g)%s", ext.Width, ext.Height, ext.Depth, extra)
}

// Extent allows for objects to embed a BoxExtent in order to implement part of
// the Box interface.
func (ext *BoxExtent) Extent() *BoxExtent {
	return ext
}

// Rule returns a box with the given dimensions, filled with the given color.
func Rule(width, height, depth float64, col theme.Color) Box {
	return &ruleBox{
		BoxExtent: BoxExtent{
			Width:  width,
			Height: height,
			Depth:  depth,
		},
		col: col,
	}
}

// A ruleBox is a rectangular region on the page filled with a solid color.
type ruleBox struct {
	BoxExtent
	col theme.Color
}

// Draw implements the [Box] interface.
func (obj *ruleBox) Draw(page *document.Page, xPos, yPos float64) {
	if obj.Width > 0 && obj.Depth+obj.Height > 0 {
		fillRect(page, xPos, yPos-obj.Depth, obj.Width, obj.Depth+obj.Height, obj.col)
	}
}

// Kern represents a fixed amount of space between boxes.
type Kern float64

// Extent implements the [Box] interface.
func (obj Kern) Extent() *BoxExtent {
	return &BoxExtent{
		Width:          float64(obj),
		Height:         float64(obj),
		WhiteSpaceOnly: true,
	}
}

// Draw implements the [Box] interface.
func (obj Kern) Draw(page *document.Page, xPos, yPos float64) {}

func rgb(col theme.Color) color.Color {
	return color.DeviceRGB(col.R, col.G, col.B)
}

func fillRect(page *document.Page, x, y, width, height float64, col theme.Color) {
	page.PushGraphicsState()
	page.SetFillColor(rgb(col))
	page.Rectangle(x, y, width, height)
	page.Fill()
	page.PopGraphicsState()
}

func strokeRect(page *document.Page, x, y, width, height, lineWidth float64, col theme.Color) {
	page.PushGraphicsState()
	page.SetStrokeColor(rgb(col))
	page.SetLineWidth(lineWidth)
	page.Rectangle(x, y, width, height)
	page.Stroke()
	page.PopGraphicsState()
}

func hLine(page *document.Page, x0, x1, y, lineWidth float64, col theme.Color) {
	page.PushGraphicsState()
	page.SetStrokeColor(rgb(col))
	page.SetLineWidth(lineWidth)
	page.MoveTo(x0, y)
	page.LineTo(x1, y)
	page.Stroke()
	page.PopGraphicsState()
}

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
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"

	"seehuhn.de/go/report/theme"
)

// TextBox represents a typeset string of characters as a Box object.
// The text is typeset using a single font and size.
type TextBox struct {
	F      font.Layouter
	Size   float64
	Color  theme.Color
	Glyphs *font.GlyphSeq
	Text   string
}

// Text returns a new TextBox for a single line of text.
func (c *Context) Text(v FontVariant, size float64, col theme.Color, text string) *TextBox {
	F := c.fonts[v]
	return &TextBox{
		F:      F,
		Size:   size,
		Color:  col,
		Glyphs: F.Layout(nil, size, text),
		Text:   text,
	}
}

// Extent implements the [Box] interface.
// Height and depth are taken from the font, not from the individual glyphs,
// so that all lines set in the same font have the same extent.
func (obj *TextBox) Extent() *BoxExtent {
	geom := obj.F.GetGeometry()
	return &BoxExtent{
		Width:  obj.Glyphs.TotalWidth(),
		Height: geom.Ascent * obj.Size,
		Depth:  -geom.Descent * obj.Size,
	}
}

// Draw implements the [Box] interface.
func (obj *TextBox) Draw(page *document.Page, xPos, yPos float64) {
	if len(obj.Glyphs.Seq) == 0 {
		return
	}
	page.TextBegin()
	page.TextSetFont(obj.F, obj.Size)
	page.SetFillColor(rgb(obj.Color))
	page.TextFirstLine(xPos, yPos)
	page.TextShowGlyphs(obj.Glyphs)
	page.TextEnd()
}

// baselineIn returns the baseline position which centers a line of text,
// set in font F at the given size, vertically in a line box of height lh
// whose top edge is at y.
func baselineIn(F font.Layouter, size, top, lh float64) float64 {
	geom := F.GetGeometry()
	asc := geom.Ascent * size
	desc := -geom.Descent * size
	pad := (lh - asc - desc) / 2
	return top - pad - asc
}

// Align gives the horizontal alignment of text within its column.
type Align int

// These are the supported alignments.
const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

func (a Align) offset(avail, width float64) float64 {
	switch a {
	case AlignRight:
		return avail - width
	case AlignCenter:
		return (avail - width) / 2
	default:
		return 0
	}
}

// drawLines draws lines which have been wrapped for the block b.
// The top of the first line box is at top.  The return value is the
// total height of the lines.
func (c *Context) drawLines(lines []string, b TextBlock, x, top float64, align Align, col theme.Color, kind Kind) float64 {
	lh := c.lineHeight(b)
	F := c.fonts[b.Font]
	for i, line := range lines {
		box := c.Text(b.Font, b.Size, col, line)
		y := baselineIn(F, b.Size, top-float64(i)*lh, lh)
		dx := align.offset(b.MaxWidth, box.Extent().Width)
		c.record(kind, box).Draw(c.page, x+dx, y)
	}
	return float64(len(lines)) * lh
}

// DrawBlock draws a text block with its top left corner at the cursor
// and returns the height used.  The cursor is not moved and no page
// break is inserted; callers reserve the space with
// [Context.MeasureBlockHeight] and [Context.EnsureSpace] first.
func (c *Context) DrawBlock(b TextBlock, x float64, align Align, col theme.Color) float64 {
	if !c.drawable() {
		return 0
	}
	return c.drawLines(c.WrapLines(b), b, x, c.cursor.Y, align, col, KindContent)
}

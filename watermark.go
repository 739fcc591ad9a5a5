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
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdf/graphics"
)

// WatermarkSpec describes the brand mark painted behind the page content.
type WatermarkSpec struct {
	Enabled bool

	// Logo is the image to use.  If this is nil, FallbackText is
	// drawn instead.
	Logo         *Image
	FallbackText string
}

// maxWatermarkSize limits the font size of text watermarks.
const maxWatermarkSize = 96

// Watermark paints a large, rotated, translucent brand mark centered on the
// current page.  To show the mark on every page, call this from the
// OnPageAdded callback.
func (c *Context) Watermark(w WatermarkSpec) {
	if !w.Enabled || !c.drawable() {
		return
	}
	if w.Logo == nil && w.FallbackText == "" {
		return
	}

	th := c.th
	ws := th.Watermark
	page := c.page
	cx, cy := th.PageWidth/2, th.PageHeight/2
	rot := matrix.Rotate(ws.Angle * math.Pi / 180)
	center := matrix.Translate(cx, cy)
	markW := ws.Scale * th.PageWidth

	page.PushGraphicsState()
	page.SetExtGState(&graphics.ExtGState{
		Set:         graphics.StateFillAlpha | graphics.StateStrokeAlpha,
		FillAlpha:   ws.Opacity,
		StrokeAlpha: ws.Opacity,
	})

	if w.Logo != nil {
		markH := w.Logo.HeightFor(markW)
		M := matrix.Scale(markW, markH).
			Mul(matrix.Translate(-markW/2, -markH/2)).
			Mul(rot).
			Mul(center)
		drawImage(page, w.Logo, M)
		c.records = append(c.records, Record{
			Page:   c.PageNo(),
			Kind:   KindWatermark,
			X:      cx - markW/2,
			Width:  markW,
			Top:    cy + markH/2,
			Bottom: cy - markH/2,
		})
	} else {
		F := c.fonts[Bold]
		text := cleanText(w.FallbackText)
		size := float64(maxWatermarkSize)
		if unit := c.TextWidth(Bold, 1, text); unit > 0 {
			size = min(size, markW/unit)
		}
		gg := F.Layout(nil, size, text)
		width := gg.TotalWidth()
		geom := F.GetGeometry()
		mid := (geom.Ascent + geom.Descent) / 2 * size

		page.TextBegin()
		page.TextSetFont(F, size)
		page.SetFillColor(rgb(th.Palette.Accent))
		page.TextSetMatrix(matrix.Translate(-width/2, -mid).Mul(rot).Mul(center))
		page.TextShowGlyphs(gg)
		page.TextEnd()

		c.records = append(c.records, Record{
			Page:   c.PageNo(),
			Kind:   KindWatermark,
			X:      cx - width/2,
			Width:  width,
			Top:    cy + geom.Ascent*size,
			Bottom: cy + geom.Descent*size,
			Text:   text,
		})
	}

	page.PopGraphicsState()
}

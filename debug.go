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
	"math"

	"seehuhn.de/go/report/theme"
)

var (
	geomColor  = theme.Color{R: 0, G: 0, B: 0.9}
	breakColor = theme.Color{R: 0.9, G: 0, B: 0}
)

// drawMarginFrame outlines the writable area and the footer band of the
// current page, for visual debugging.
func (c *Context) drawMarginFrame() {
	th := c.th
	page := c.page

	strokeRect(page, th.MarginLeft, th.MarginBottom,
		th.ContentWidth(), th.WritableHeight(), 0.25, geomColor)

	bandBottom := (th.MarginBottom - th.FooterHeight) / 2
	strokeRect(page, th.MarginLeft, bandBottom,
		th.ContentWidth(), th.FooterHeight, 0.25, breakColor)

	label := c.Text(Mono, 5, geomColor, fmt.Sprintf("page %d, %s, %s",
		c.PageNo(), th.Name, format(th.WritableHeight())))
	label.Draw(page, th.MarginLeft, th.Top()+2)
}

// outlineRecords draws the extent of every recorded line of text.
func (c *Context) outlineRecords() {
	th := c.th
	for _, r := range c.records {
		if r.Kind == KindWatermark {
			continue
		}
		col := geomColor
		if r.Kind != KindFooter && (r.Bottom < th.MarginBottom-eps || r.Top > th.Top()+eps) {
			col = breakColor
		}
		strokeRect(c.pages[r.Page-1], r.X, r.Bottom, r.Width, r.Top-r.Bottom, 0.1, col)
	}
}

func format(x float64) string {
	xInt := int(math.Round(x))
	if math.Abs(x-float64(xInt)) < 1e-6 {
		return fmt.Sprintf("%d", xInt)
	}
	if math.Abs(x) >= 1e7 {
		return fmt.Sprintf("%.6g", x)
	}
	return fmt.Sprintf("%.3f", x)
}

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
)

// FooterSpec describes the footer band at the bottom of every page.
type FooterSpec struct {
	Text string

	PoweredByBrand string
	PoweredByLogo  *Image
}

// Footer stamps the footer band onto every page of the report.
//
// This must be called once, after all content has been drawn, since the
// footer shows the total number of pages.  No content can be added
// afterwards.
func (c *Context) Footer(f FooterSpec) {
	if !c.drawable() {
		return
	}

	th := c.th
	pal := th.Palette
	size := th.SmallSize
	F := c.fonts[Regular]
	xMin := th.MarginLeft
	W := th.ContentWidth()

	bandBottom := (th.MarginBottom - th.FooterHeight) / 2
	bandTop := bandBottom + th.FooterHeight
	lh := th.Line(size)
	baseline := baselineIn(F, size, bandTop-(th.FooterHeight-lh)/2, lh)

	leftText := c.Ellipsize(Regular, size, f.Text, 0.45*W)

	n := len(c.pages)
	for i, page := range c.pages {
		pageNo := i + 1

		left := c.recordOn(pageNo, KindFooter, c.Text(Regular, size, pal.Muted, leftText))
		right := c.recordOn(pageNo, KindFooter,
			c.Text(Regular, size, pal.Muted, fmt.Sprintf("Page %d of %d", pageNo, n)))

		var center []Box
		if f.PoweredByLogo != nil {
			logoH := 1.6 * size
			logoW := logoH * float64(f.PoweredByLogo.Width) / float64(f.PoweredByLogo.Height)
			center = append(center, c.imageBox(f.PoweredByLogo, logoW, logoH, pageNo), Kern(4))
		}
		if f.PoweredByBrand != "" {
			center = append(center, c.recordOn(pageNo, KindFooter,
				c.Text(Regular, size, pal.Muted, "Powered by "+f.PoweredByBrand)))
		}

		row := []Box{left, HFill()}
		if len(center) > 0 {
			row = append(row, HBox(center...), HFill())
		}
		row = append(row, right)

		hLine(page, xMin, xMin+W, bandTop, 0.5, pal.Border)
		HBoxTo(W, row...).Draw(page, xMin, baseline)
	}

	c.finalized = true
}

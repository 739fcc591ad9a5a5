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
	"strings"

	"seehuhn.de/go/pdf/document"
)

// Kind classifies the recorded text lines.
type Kind int

// These are the kinds of text which are recorded.
const (
	KindContent Kind = iota
	KindHeader
	KindHeading
	KindTableHeader
	KindFooter
	KindWatermark
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindContent:
		return "content"
	case KindHeader:
		return "header"
	case KindHeading:
		return "heading"
	case KindTableHeader:
		return "table header"
	case KindFooter:
		return "footer"
	case KindWatermark:
		return "watermark"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Record describes one line of text, or one image, which has been drawn.
// For text, Top and Bottom give the vertical extent of the glyphs, as
// determined by the ascent and descent of the font.
type Record struct {
	Page   int // 1-based
	Kind   Kind
	X      float64
	Width  float64
	Top    float64
	Bottom float64
	Text   string
}

// Records returns all text lines and images drawn so far, in drawing order.
func (c *Context) Records() []Record {
	return c.records
}

// TextOf returns the text drawn on the given page, one line per record.
// If page is 0, the text of all pages is returned.
func (c *Context) TextOf(page int) string {
	var lines []string
	for _, r := range c.records {
		if page == 0 || r.Page == page {
			lines = append(lines, r.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// recordPageLocation wraps a box and records its position when drawn.
type recordPageLocation struct {
	Box
	c      *Context
	kind   Kind
	text   string
	pageNo int
}

func (c *Context) record(kind Kind, box *TextBox) Box {
	return c.recordOn(c.PageNo(), kind, box)
}

// recordOn is like record, for boxes drawn on a page other than the
// current one.
func (c *Context) recordOn(pageNo int, kind Kind, box *TextBox) Box {
	return &recordPageLocation{
		Box:    box,
		c:      c,
		kind:   kind,
		text:   box.Text,
		pageNo: pageNo,
	}
}

func (r *recordPageLocation) Draw(page *document.Page, xPos, yPos float64) {
	ext := r.Extent()
	r.c.records = append(r.c.records, Record{
		Page:   r.pageNo,
		Kind:   r.kind,
		X:      xPos,
		Width:  ext.Width,
		Top:    yPos + ext.Height,
		Bottom: yPos - ext.Depth,
		Text:   r.text,
	})

	r.Box.Draw(page, xPos, yPos)
}

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
	"go.uber.org/zap"

	"seehuhn.de/go/report/theme"
)

// HeaderSpec describes the header band at the top of the first page.
type HeaderSpec struct {
	Eyebrow  string
	Title    string
	Subtitle string

	// Meta lines are shown right-aligned, next to the title.
	Meta []string

	// Logo, if non-nil, is shown to the left of the title.
	Logo *Image

	// LogoWidth is the width of the logo.  If this is zero, the logo width
	// of the theme is used.
	LogoWidth float64
}

// Header draws the header band.  The band is at least as high as the
// header height of the theme.  The header is drawn only once per report.
func (c *Context) Header(h HeaderSpec) {
	if !c.drawable() {
		return
	}
	if c.headerDrawn {
		c.log.Warn("header already drawn", zap.String("title", h.Title))
		return
	}
	c.headerDrawn = true

	th := c.th
	pal := th.Palette
	W := c.cursor.Width()

	textX := c.cursor.XMin
	var logoW, logoH float64
	if h.Logo != nil {
		logoW = h.LogoWidth
		if logoW <= 0 {
			logoW = th.LogoWidth
		}
		logoW = min(logoW, W/3)
		logoH = h.Logo.HeightFor(logoW)
		textX += logoW + th.Gutter
	}

	metaW := 0.0
	if len(h.Meta) > 0 {
		metaW = W * 0.32
	}
	textW := c.cursor.XMax - textX
	if metaW > 0 {
		textW -= metaW + th.Gutter
	}

	eyebrow := TextBlock{Text: h.Eyebrow, MaxWidth: textW, Size: th.SmallSize, Font: Bold}
	title := TextBlock{Text: h.Title, MaxWidth: textW, Size: th.TitleSize, Font: Bold}
	subtitle := TextBlock{Text: h.Subtitle, MaxWidth: textW, Size: th.BodySize, Font: Regular}
	blocks := []TextBlock{eyebrow, title, subtitle}
	colors := []theme.Color{pal.Accent, pal.Text, pal.Muted}

	gap := th.Baseline
	var wrapped [3][]string
	textH := 0.0
	for i, b := range blocks {
		wrapped[i] = c.WrapLines(b)
		if len(wrapped[i]) > 0 {
			textH += float64(len(wrapped[i]))*c.lineHeight(b) + gap
		}
	}

	meta := TextBlock{MaxWidth: metaW, Size: th.SmallSize, Font: Regular}
	var metaLines []string
	for _, line := range h.Meta {
		meta.Text = line
		metaLines = append(metaLines, c.WrapLines(meta)...)
	}
	metaH := float64(len(metaLines)) * c.lineHeight(meta)

	bandH := max(th.HeaderHeight, textH+gap, metaH+gap, logoH+gap)
	if !c.EnsureSpace(bandH) {
		return
	}

	top := c.cursor.Y
	if h.Logo != nil {
		c.imageBox(h.Logo, logoW, logoH, c.PageNo()).Draw(c.page, c.cursor.XMin, top-logoH)
	}

	y := top
	for i, b := range blocks {
		if len(wrapped[i]) == 0 {
			continue
		}
		y -= c.drawLines(wrapped[i], b, textX, y, AlignLeft, colors[i], KindHeader)
		y -= gap
	}

	if len(metaLines) > 0 {
		c.drawLines(metaLines, meta, c.cursor.XMax-metaW, top, AlignRight, pal.Muted, KindHeader)
	}

	Rule(W, 0, 1.5, pal.Accent).Draw(c.page, c.cursor.XMin, top-bandH)
	c.Advance(bandH)
}

// KPI is a labelled value shown in a tile.
type KPI struct {
	Label string
	Value string
}

// KPIRow draws the items as tiles, in rows of the given number of columns.
// Only 2 or 3 columns are supported; other values select 3 columns.
func (c *Context) KPIRow(items []KPI, columns int) {
	if !c.drawable() || len(items) == 0 {
		return
	}
	if columns != 2 && columns != 3 {
		columns = 3
	}

	th := c.th
	pal := th.Palette
	gutter := th.Gutter
	tileW := (c.cursor.Width() - float64(columns-1)*gutter) / float64(columns)
	tileH := th.KPIHeight
	pad := 2 * th.Table.Padding
	innerW := tileW - 2*pad

	for start := 0; start < len(items); start += columns {
		if !c.EnsureSpace(tileH) {
			return
		}
		top := c.cursor.Y
		for j, item := range items[start:min(start+columns, len(items))] {
			x := c.cursor.XMin + float64(j)*(tileW+gutter)
			fillRect(c.page, x, top-tileH, tileW, tileH, pal.Panel)
			strokeRect(c.page, x, top-tileH, tileW, tileH, 0.5, pal.Border)

			label := c.Text(Regular, th.SmallSize, pal.Muted,
				c.Ellipsize(Regular, th.SmallSize, item.Label, innerW))
			value := c.Text(Bold, th.HeadingSize, pal.Text,
				c.Ellipsize(Bold, th.HeadingSize, item.Value, innerW))
			// label at the top, value at the bottom of the tile
			tile := VBoxTo(tileH-2*pad,
				c.record(KindContent, label),
				Glue(th.Baseline, 1, 1, 0, 0),
				c.record(KindContent, value),
			)
			tile.Draw(c.page, x+pad, top-tileH+pad+tile.Extent().Depth)
		}
		c.Advance(tileH)
	}
}

// Section draws a section heading, optionally followed by a subtitle.
// Space for one key/value row is reserved together with the heading, so
// that a heading never ends up alone at the bottom of a page.
func (c *Context) Section(title, subtitle string) {
	if !c.drawable() {
		return
	}

	th := c.th
	pal := th.Palette
	W := c.cursor.Width()

	sub := TextBlock{Text: subtitle, MaxWidth: W, Size: th.SmallSize, Font: Regular}
	subLines := c.WrapLines(sub)
	subH := float64(len(subLines)) * c.lineHeight(sub)

	headH := th.SectionHeight
	keep := th.Baseline + th.Line(th.BodySize) + 2*th.Table.Padding
	if !c.EnsureSpace(headH + subH + keep) {
		return
	}

	top := c.cursor.Y
	lh := th.Line(th.HeadingSize)
	heading := c.Text(Bold, th.HeadingSize, pal.Text,
		c.Ellipsize(Bold, th.HeadingSize, title, W))
	y := baselineIn(c.fonts[Bold], th.HeadingSize, top-headH+lh, lh)
	c.record(KindHeading, heading).Draw(c.page, c.cursor.XMin, y)
	hLine(c.page, c.cursor.XMin, c.cursor.XMax, top-headH, 0.5, pal.Border)

	if len(subLines) > 0 {
		c.drawLines(subLines, sub, c.cursor.XMin, top-headH, AlignLeft, pal.Muted, KindContent)
	}
	c.Advance(headH + subH)
}

// KeyValue is one row of a key/value list.
type KeyValue struct {
	Label string
	Value string

	// Mono selects the monospace font for the value.
	Mono bool
}

// missingValue is shown for empty values.
const missingValue = "—"

// KeyValueList draws a two-column list of labels and values.
// Labels and values are wrapped independently.  Rows are never split
// across pages.
func (c *Context) KeyValueList(rows []KeyValue) {
	if !c.drawable() || len(rows) == 0 {
		return
	}

	th := c.th
	pal := th.Palette
	pad := th.Table.Padding
	labelW := th.LabelWidth
	valueX := c.cursor.XMin + labelW + th.Gutter
	valueW := c.cursor.XMax - valueX

	for i, row := range rows {
		label := TextBlock{Text: row.Label, MaxWidth: labelW, Size: th.BodySize, Font: Bold}
		value := TextBlock{Text: row.Value, MaxWidth: valueW, Size: th.BodySize, Font: Regular}
		if row.Mono {
			value.Font = Mono
			value.Size = th.BodySize - 1
			value.LineHeight = th.Line(th.BodySize)
		}
		if value.Text == "" {
			value.Text = missingValue
		}

		labelLines := c.WrapLines(label)
		valueLines := c.WrapLines(value)
		rowH := max(float64(len(labelLines))*c.lineHeight(label),
			float64(len(valueLines))*c.lineHeight(value)) + 2*pad

		pageNo := c.PageNo()
		if !c.EnsureSpace(rowH) {
			return
		}
		top := c.cursor.Y
		if i > 0 && c.PageNo() == pageNo {
			hLine(c.page, c.cursor.XMin, c.cursor.XMax, top, 0.5, pal.Border)
		}

		c.drawLines(labelLines, label, c.cursor.XMin, top-pad, AlignLeft, pal.Text, KindContent)
		c.drawLines(valueLines, value, valueX, top-pad, AlignLeft, pal.Text, KindContent)
		c.moveDown(rowH)
	}
	c.Advance(0)
}

// NoteOptions control the appearance of a note.
type NoteOptions struct {
	Muted bool
}

// Note draws free text across the full content width.  Long notes
// continue on the next page.
func (c *Context) Note(text string, opt NoteOptions) {
	if !c.drawable() {
		return
	}

	th := c.th
	col := th.Palette.Text
	if opt.Muted {
		col = th.Palette.Muted
	}

	b := TextBlock{Text: text, MaxWidth: c.cursor.Width(), Size: th.BodySize, Font: Regular}
	lh := c.lineHeight(b)
	lines := c.WrapLines(b)
	for _, line := range lines {
		if !c.EnsureSpace(lh) {
			return
		}
		c.drawLines([]string{line}, b, c.cursor.XMin, c.cursor.Y, AlignLeft, col, KindContent)
		c.moveDown(lh)
	}
	if len(lines) > 0 {
		c.Advance(0)
	}
}

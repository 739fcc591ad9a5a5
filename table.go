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

// ColumnSpec gives the width constraints of a table column.
type ColumnSpec struct {
	// Width, if positive, makes the column a fixed-width column.
	Width float64

	// Weight determines the share of the remaining width a flexible
	// column receives.  Zero means 1.
	Weight float64

	// MinWidth is the smallest width a flexible column should have.
	MinWidth float64
}

func (s ColumnSpec) fixed() bool {
	return s.Width > 0
}

func (s ColumnSpec) weight() float64 {
	if s.Weight > 0 {
		return s.Weight
	}
	return 1
}

// ColumnLayout gives the resolved column geometry of a table.
type ColumnLayout struct {
	Widths []float64

	// X gives the left edge of every column, relative to the left edge
	// of the table.
	X []float64

	// Degraded is set if the columns had to be shrunk below their
	// declared widths.
	Degraded bool
}

// AllocateColumns distributes the total width over the columns.
//
// Fixed columns get their declared width.  The remaining width, after
// subtracting the gutters between columns, is shared among the flexible
// columns in proportion to their weights, but no flexible column gets less
// than its minimum width.  If the minimum widths do not fit, all flexible
// columns are shrunk by the same factor; if not even the fixed columns
// fit, all columns are shrunk.  In both cases the layout is marked as
// degraded.
//
// As long as total exceeds the combined gutter width, the widths plus the
// gutters add up to total.
func AllocateColumns(total, gutter float64, cols []ColumnSpec) ColumnLayout {
	n := len(cols)
	res := ColumnLayout{
		Widths: make([]float64, n),
		X:      make([]float64, n),
	}
	if n == 0 {
		return res
	}

	avail := total - gutter*float64(n-1)
	if avail <= 0 {
		// not even the gutters fit
		res.Degraded = true
		res.setX(gutter)
		return res
	}

	var fixedSum, minSum, natSum float64
	var flex []int
	for i, col := range cols {
		if col.fixed() {
			fixedSum += col.Width
			natSum += col.Width
			continue
		}
		flex = append(flex, i)
		m := max(col.MinWidth, 0)
		minSum += m
		natSum += m
	}
	remaining := avail - fixedSum

	switch {
	case len(flex) == 0:
		// Only fixed columns: scale them to fill the table.
		res.Degraded = fixedSum > avail+eps
		q := avail / fixedSum
		for i, col := range cols {
			res.Widths[i] = col.Width * q
		}

	case remaining >= minSum:
		for i, col := range cols {
			if col.fixed() {
				res.Widths[i] = col.Width
			}
		}
		waterFill(res.Widths, cols, flex, remaining)

	case remaining > 0:
		// The minimum widths do not fit, shrink flexible columns uniformly.
		res.Degraded = true
		q := remaining / minSum
		for i, col := range cols {
			if col.fixed() {
				res.Widths[i] = col.Width
			} else {
				res.Widths[i] = max(col.MinWidth, 0) * q
			}
		}

	default:
		// Even the fixed columns overflow.  Shrink everything.
		res.Degraded = true
		if natSum <= 0 {
			for i := range cols {
				res.Widths[i] = avail / float64(n)
			}
			break
		}
		q := avail / natSum
		for i, col := range cols {
			if col.fixed() {
				res.Widths[i] = col.Width * q
			} else {
				res.Widths[i] = max(col.MinWidth, 0) * q
			}
		}
	}

	res.setX(gutter)
	return res
}

// waterFill shares width among the flexible columns in proportion to their
// weights.  Columns whose share would fall below their minimum width are
// pinned to the minimum, and the rest is shared among the other columns.
// The caller guarantees that the minimum widths fit into width.
func waterFill(widths []float64, cols []ColumnSpec, flex []int, width float64) {
	active := append([]int(nil), flex...)
	for {
		totalWeight := 0.0
		for _, i := range active {
			totalWeight += cols[i].weight()
		}

		var pinned []int
		free := active[:0:0]
		for _, i := range active {
			share := width * cols[i].weight() / totalWeight
			if share < cols[i].MinWidth {
				pinned = append(pinned, i)
			} else {
				free = append(free, i)
			}
		}

		if len(pinned) == 0 {
			for _, i := range active {
				widths[i] = width * cols[i].weight() / totalWeight
			}
			return
		}
		for _, i := range pinned {
			widths[i] = cols[i].MinWidth
			width -= cols[i].MinWidth
		}
		if len(free) == 0 {
			return
		}
		active = free
	}
}

func (l *ColumnLayout) setX(gutter float64) {
	x := 0.0
	for i, w := range l.Widths {
		l.X[i] = x
		x += w + gutter
	}
}

// Column describes one column of a table with rows of type R.
type Column[R any] struct {
	Header string

	// Width, Weight and MinWidth are described in [ColumnSpec].
	Width    float64
	Weight   float64
	MinWidth float64

	Align Align
	Mono  bool

	// Value extracts the text of the cell from a row.
	Value func(R) string
}

// Table describes a table with rows of type R.
type Table[R any] struct {
	Columns []Column[R]

	// RepeatHeader causes the header band to be repeated at the top of
	// every page the table continues on.
	RepeatHeader bool
}

// DrawTable draws the table at the cursor position.
//
// Column widths are computed once, before any row is drawn.  Rows are
// never split across pages.  The resolved column layout is returned.
func DrawTable[R any](c *Context, t *Table[R], rows []R) ColumnLayout {
	if !c.drawable() || len(t.Columns) == 0 {
		return ColumnLayout{}
	}

	th := c.th
	ts := th.Table
	pal := th.Palette
	pad := ts.Padding

	specs := make([]ColumnSpec, len(t.Columns))
	for i, col := range t.Columns {
		specs[i] = ColumnSpec{Width: col.Width, Weight: col.Weight, MinWidth: col.MinWidth}
	}
	x0 := c.cursor.XMin
	tableW := c.cursor.Width()
	layout := AllocateColumns(tableW, ts.Gutter, specs)
	if layout.Degraded {
		c.log.Warn("table columns shrunk below their declared widths",
			zap.Float64("width", tableW),
			zap.Float64s("columns", layout.Widths))
	}

	// header
	headBlocks := make([]TextBlock, len(t.Columns))
	headLines := make([][]string, len(t.Columns))
	headH := 0.0
	for j, col := range t.Columns {
		headBlocks[j] = TextBlock{
			Text:     col.Header,
			MaxWidth: layout.Widths[j] - 2*pad,
			Size:     ts.HeaderSize,
			Font:     Bold,
		}
		headLines[j] = c.WrapLines(headBlocks[j])
		headH = max(headH, float64(len(headLines[j]))*c.lineHeight(headBlocks[j]))
	}
	headH += 2 * pad

	drawHeader := func(c *Context) {
		top := c.cursor.Y
		fillRect(c.page, x0, top-headH, tableW, headH, pal.Panel)
		for j, col := range t.Columns {
			c.drawLines(headLines[j], headBlocks[j], x0+layout.X[j]+pad, top-pad,
				col.Align, pal.Text, KindTableHeader)
		}
		hLine(c.page, x0, x0+tableW, top-headH, 0.75, pal.Border)
		c.moveDown(headH)
	}

	// rows
	blocks := make([]TextBlock, len(t.Columns))
	lines := make([][]string, len(t.Columns))
	measure := func(row R) float64 {
		rowH := th.Line(ts.FontSize)
		for j, col := range t.Columns {
			font := Regular
			size := ts.FontSize
			if col.Mono {
				font = Mono
				size = ts.FontSize - 0.5
			}
			blocks[j] = TextBlock{
				Text:       col.Value(row),
				MaxWidth:   layout.Widths[j] - 2*pad,
				Size:       size,
				LineHeight: th.Line(ts.FontSize),
				Font:       font,
			}
			lines[j] = c.WrapLines(blocks[j])
			rowH = max(rowH, float64(len(lines[j]))*c.lineHeight(blocks[j]))
		}
		return rowH + 2*pad
	}

	firstH := 0.0
	if len(rows) > 0 {
		firstH = measure(rows[0])
	}
	if !c.EnsureSpace(headH + firstH) {
		return layout
	}
	drawHeader(c)
	if t.RepeatHeader {
		pop := c.PushPageHook(drawHeader)
		defer pop()
	}

	stripe := mix(pal.Panel, pal.White, 0.5)
	for i, row := range rows {
		rowH := firstH
		if i > 0 {
			rowH = measure(row)
		}
		if !c.EnsureSpace(rowH) {
			return layout
		}

		top := c.cursor.Y
		if ts.Striped && i%2 == 1 {
			fillRect(c.page, x0, top-rowH, tableW, rowH, stripe)
		}
		for j, col := range t.Columns {
			c.drawLines(lines[j], blocks[j], x0+layout.X[j]+pad, top-pad,
				col.Align, pal.Text, KindContent)
		}
		hLine(c.page, x0, x0+tableW, top-rowH, 0.25, pal.Border)
		c.moveDown(rowH)
	}
	c.Advance(0)

	return layout
}

// mix returns the color a*(1-t) + b*t.
func mix(a, b theme.Color, t float64) theme.Color {
	return theme.Color{
		R: a.R*(1-t) + b.R*t,
		G: a.G*(1-t) + b.G*t,
		B: a.B*(1-t) + b.B*t,
	}
}

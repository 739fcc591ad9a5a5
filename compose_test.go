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
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/report/theme"
)

const lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do " +
	"eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad " +
	"minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip " +
	"ex ea commodo consequat. https://example.com/a/very/long/path/name"

func countRecords(c *Context, kind Kind) int {
	n := 0
	for _, r := range c.Records() {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// TestMeasureMatchesDraw checks that the measured height of a block agrees
// with what is actually drawn.
func TestMeasureMatchesDraw(t *testing.T) {
	for _, version := range []string{"v2", "v3"} {
		c := newTestContext(t, version, nil)
		th := c.Theme()

		for _, text := range []string{"", "x", lorem, strings.Repeat("word ", 50), "a\nb\n\nc"} {
			b := TextBlock{
				Text:     text,
				MaxWidth: c.Cursor().Width(),
				Size:     th.BodySize,
				Font:     Regular,
			}
			predicted := c.WrapLines(b)
			height := c.MeasureBlockHeight(b)
			if want := float64(len(predicted)) * th.Line(th.BodySize); math.Abs(height-want) > 1e-9 {
				t.Errorf("%s: height %g, want %g", version, height, want)
			}

			c.NewPage()
			before := len(c.Records())
			y0 := c.Cursor().Y
			c.Note(text, NoteOptions{})
			drawn := c.Records()[before:]

			if len(drawn) != len(predicted) {
				t.Fatalf("%s: %d lines drawn, %d predicted", version, len(drawn), len(predicted))
			}
			for i, r := range drawn {
				if r.Text != predicted[i] {
					t.Errorf("%s: line %d: drawn %q, predicted %q", version, i, r.Text, predicted[i])
				}
			}
			if len(predicted) > 0 {
				used := y0 - c.Cursor().Y
				if want := height + th.Baseline; math.Abs(used-want) > 1e-6 {
					t.Errorf("%s: cursor moved by %g, want %g", version, used, want)
				}
			}
		}
		if c.Err != nil {
			t.Fatal(c.Err)
		}
	}
}

func TestNotePagination(t *testing.T) {
	c := newTestContext(t, "v2", nil)
	text := strings.Repeat(lorem+"\n", 60)
	c.Note(text, NoteOptions{Muted: true})
	if c.Err != nil {
		t.Fatal(c.Err)
	}
	if c.NumPages() < 2 {
		t.Fatalf("long note fits on %d page", c.NumPages())
	}
	checkPagination(t, c)

	b := TextBlock{Text: text, MaxWidth: c.Cursor().Width(), Size: c.Theme().BodySize}
	if got, want := c.TextOf(0), strings.Join(c.WrapLines(b), "\n"); got != want {
		t.Error("drawn text differs from the wrapped text")
	}
}

func TestKeyValueList(t *testing.T) {
	c := newTestContext(t, "v3", nil)
	var rows []KeyValue
	for i := range 120 {
		rows = append(rows, KeyValue{
			Label: fmt.Sprintf("label %d", i),
			Value: strings.Repeat("value ", i%25),
			Mono:  i%3 == 0,
		})
	}
	c.KeyValueList(rows)
	if c.Err != nil {
		t.Fatal(c.Err)
	}
	if c.NumPages() < 2 {
		t.Fatal("expected a page break")
	}
	checkPagination(t, c)

	// a row is never split across pages
	labelPage := map[string]int{}
	for _, r := range c.Records() {
		if strings.HasPrefix(r.Text, "label ") {
			labelPage[r.Text] = r.Page
		}
	}
	if len(labelPage) != len(rows) {
		t.Fatalf("found %d labels, want %d", len(labelPage), len(rows))
	}
	var prev Record
	for _, r := range c.Records() {
		if strings.HasPrefix(r.Text, "label ") {
			prev = r
			continue
		}
		if r.Text == missingValue || strings.HasPrefix(r.Text, "value") {
			if r.Page != prev.Page {
				t.Errorf("value of %q on page %d, label on page %d", prev.Text, r.Page, prev.Page)
			}
		}
	}
}

func TestHeaderOnce(t *testing.T) {
	c := newTestContext(t, "v2", nil)
	h := HeaderSpec{
		Eyebrow:  "Evidence record",
		Title:    "Employee handbook",
		Subtitle: "Acknowledgement report",
		Meta:     []string{"Generated 2024-01-01", "ID abc123"},
	}
	c.Header(h)
	n := countRecords(c, KindHeader)
	if n != 5 {
		t.Errorf("header has %d lines, want 5", n)
	}
	if y, th := c.Cursor().Y, c.Theme(); y > th.Top()-th.HeaderHeight {
		t.Errorf("cursor at %g, inside the header band", y)
	}

	c.Header(h)
	if countRecords(c, KindHeader) != n {
		t.Error("header drawn twice")
	}
	checkPagination(t, c)
}

func TestKPIRow(t *testing.T) {
	c := newTestContext(t, "v3", nil)
	th := c.Theme()
	items := []KPI{
		{"Status", "Active"},
		{"Acknowledgements", "42"},
		{"Latest", "2024-05-01 10:00 UTC"},
		{"Extra", "1"},
		{"Very long label which will not fit into the tile", strings.Repeat("9", 200)},
	}
	y0 := c.Cursor().Y
	c.KPIRow(items, 3)
	if c.Err != nil {
		t.Fatal(c.Err)
	}
	if got := countRecords(c, KindContent); got != 2*len(items) {
		t.Errorf("got %d text lines, want %d", got, 2*len(items))
	}
	if used, want := y0-c.Cursor().Y, 2*(th.KPIHeight+th.Baseline); math.Abs(used-want) > 1e-6 {
		t.Errorf("KPI rows used %g, want %g", used, want)
	}
	for _, r := range c.Records() {
		if r.X+r.Width > c.Cursor().XMax+1e-6 {
			t.Errorf("%q extends into the right margin", r.Text)
		}
	}
	checkPagination(t, c)
}

// TestSectionKeepWithNext checks that a heading is moved to the next page
// if no line of content fits below it.
func TestSectionKeepWithNext(t *testing.T) {
	c := newTestContext(t, "v2", nil)
	th := c.Theme()
	c.moveDown(th.WritableHeight() - th.SectionHeight - 1)

	c.Section("Submissions", "")
	for _, r := range c.Records() {
		if r.Kind == KindHeading && r.Page != 2 {
			t.Errorf("heading on page %d, want 2", r.Page)
		}
	}
	checkPagination(t, c)
}

// TestSectionFirstRow checks that a heading stays on the page of the
// first key/value row below it.
func TestSectionFirstRow(t *testing.T) {
	for _, version := range theme.Versions() {
		th, err := theme.Lookup(version)
		if err != nil {
			t.Fatal(err)
		}
		row := th.Line(th.BodySize) + 2*th.Table.Padding
		cases := []struct {
			room     float64
			wantPage int
		}{
			{th.SectionHeight + th.Line(th.BodySize), 2},
			{th.SectionHeight + th.Baseline + row - 0.5, 2},
			{th.SectionHeight + th.Baseline + row + 0.5, 1},
		}
		for _, test := range cases {
			c := newTestContext(t, version, nil)
			c.moveDown(th.WritableHeight() - test.room)

			c.Section("Heading", "")
			c.KeyValueList([]KeyValue{{Label: "Label", Value: "Value"}})
			if c.Err != nil {
				t.Fatal(c.Err)
			}

			var headingPage, rowPage int
			for _, r := range c.Records() {
				switch {
				case r.Kind == KindHeading:
					headingPage = r.Page
				case r.Text == "Label":
					rowPage = r.Page
				}
			}
			if headingPage != test.wantPage || rowPage != test.wantPage {
				t.Errorf("%s, room %g: heading on page %d, first row on page %d, want %d",
					version, test.room, headingPage, rowPage, test.wantPage)
			}
			checkPagination(t, c)
		}
	}
}

func TestFooterAllPages(t *testing.T) {
	c := newTestContext(t, "v2", nil)
	c.NewPage()
	c.NewPage()
	c.Footer(FooterSpec{Text: "Confidential", PoweredByBrand: "Acme"})
	if c.Err != nil {
		t.Fatal(c.Err)
	}

	th := c.Theme()
	for pageNo := 1; pageNo <= 3; pageNo++ {
		text := c.TextOf(pageNo)
		want := fmt.Sprintf("Page %d of 3", pageNo)
		if !strings.Contains(text, want) || !strings.Contains(text, "Powered by Acme") {
			t.Errorf("page %d: footer missing, got %q", pageNo, text)
		}
	}
	for _, r := range c.Records() {
		if r.Kind == KindFooter && (r.Top > th.MarginBottom || r.Bottom < 0) {
			t.Errorf("footer %q outside the bottom margin", r.Text)
		}
	}

	c.Note("too late", NoteOptions{})
	if !errors.Is(c.Err, ErrFinalized) {
		t.Errorf("expected ErrFinalized, got %v", c.Err)
	}
}

func TestWatermarkEveryPage(t *testing.T) {
	c := newTestContext(t, "v3", &Options{
		OnPageAdded: func(c *Context) {
			c.Watermark(WatermarkSpec{Enabled: true, FallbackText: "ACME"})
		},
	})
	c.Note(strings.Repeat(lorem+"\n\n", 40), NoteOptions{})
	if c.Err != nil {
		t.Fatal(c.Err)
	}
	pages := c.NumPages()
	if pages < 2 {
		t.Fatal("expected more than one page")
	}
	if got := countRecords(c, KindWatermark); got != pages {
		t.Errorf("%d watermarks on %d pages", got, pages)
	}

	d := newTestContext(t, "v3", &Options{
		OnPageAdded: func(c *Context) {
			c.Watermark(WatermarkSpec{Enabled: false, FallbackText: "ACME"})
		},
	})
	if countRecords(d, KindWatermark) != 0 {
		t.Error("disabled watermark drawn")
	}
}

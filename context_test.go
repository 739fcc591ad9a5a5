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
	"math"
	"testing"

	"seehuhn.de/go/report/theme"
)

func newTestContext(t *testing.T, version string, opt *Options) *Context {
	t.Helper()
	th, err := theme.Lookup(version)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(th, opt)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// checkPagination verifies that no text has been drawn outside the
// writable area of the page.
func checkPagination(t *testing.T, c *Context) {
	t.Helper()
	th := c.Theme()
	for _, r := range c.Records() {
		if r.Kind == KindFooter || r.Kind == KindWatermark {
			continue
		}
		if r.Bottom < th.MarginBottom-1e-6 {
			t.Errorf("page %d: %s %q below the bottom margin (%g < %g)",
				r.Page, r.Kind, r.Text, r.Bottom, th.MarginBottom)
		}
		if r.Top > th.Top()+1e-6 {
			t.Errorf("page %d: %s %q above the top margin (%g > %g)",
				r.Page, r.Kind, r.Text, r.Top, th.Top())
		}
	}
}

func TestNewRunsPageHook(t *testing.T) {
	calls := 0
	c := newTestContext(t, "v2", &Options{
		OnPageAdded: func(c *Context) { calls++ },
	})
	if calls != 1 {
		t.Fatalf("hook called %d times, want 1", calls)
	}
	if c.NumPages() != 1 {
		t.Fatalf("got %d pages, want 1", c.NumPages())
	}

	th := c.Theme()
	want := Cursor{
		XMin: th.MarginLeft,
		XMax: th.PageWidth - th.MarginRight,
		Y:    th.Top(),
	}
	if got := c.Cursor(); got != want {
		t.Errorf("initial cursor %v, want %v", got, want)
	}
}

func TestEnsureSpace(t *testing.T) {
	calls := 0
	c := newTestContext(t, "v3", &Options{
		OnPageAdded: func(c *Context) { calls++ },
	})
	th := c.Theme()

	if !c.EnsureSpace(100) {
		t.Fatal(c.Err)
	}
	if c.NumPages() != 1 {
		t.Fatalf("unexpected page break")
	}

	// leave 50pt on the page
	c.moveDown(th.WritableHeight() - 50)
	if !c.EnsureSpace(50) {
		t.Fatal(c.Err)
	}
	if c.NumPages() != 1 {
		t.Fatalf("unexpected page break for a block which fits exactly")
	}

	if !c.EnsureSpace(51) {
		t.Fatal(c.Err)
	}
	if c.NumPages() != 2 || calls != 2 {
		t.Fatalf("got %d pages and %d hook calls, want 2 and 2", c.NumPages(), calls)
	}
	if y := c.Cursor().Y; y != th.Top() {
		t.Errorf("cursor at %g after page break, want %g", y, th.Top())
	}
}

func TestEnsureSpaceTooTall(t *testing.T) {
	c := newTestContext(t, "v2", nil)
	th := c.Theme()

	if c.EnsureSpace(th.WritableHeight() + 1) {
		t.Fatal("oversize block accepted")
	}
	if !errors.Is(c.Err, ErrBlockTooTall) {
		t.Fatalf("expected ErrBlockTooTall, got %v", c.Err)
	}
	if c.NumPages() != 1 {
		t.Errorf("blank page added for an oversize block")
	}

	// the error is sticky
	if c.EnsureSpace(1) {
		t.Error("drawing continued after an error")
	}
	if _, err := c.Finish(Metadata{Title: "test"}); !errors.Is(err, ErrBlockTooTall) {
		t.Errorf("Finish returned %v", err)
	}
}

// TestEnsureSpaceAfterHook checks the case where the page decorations
// leave no room for the block.
func TestEnsureSpaceAfterHook(t *testing.T) {
	c := newTestContext(t, "v2", &Options{
		OnPageAdded: func(c *Context) {
			c.moveDown(c.Theme().WritableHeight() - 10)
		},
	})
	if c.EnsureSpace(20) {
		t.Fatal("block accepted")
	}
	if !errors.Is(c.Err, ErrBlockTooTall) {
		t.Fatalf("expected ErrBlockTooTall, got %v", c.Err)
	}
	if c.NumPages() != 2 {
		t.Errorf("got %d pages, want 2", c.NumPages())
	}
}

func TestAdvance(t *testing.T) {
	c := newTestContext(t, "v2", nil)
	th := c.Theme()

	y0 := c.Cursor().Y
	c.Advance(10)
	if got, want := c.Cursor().Y, y0-10-th.Baseline; math.Abs(got-want) > 1e-9 {
		t.Errorf("cursor at %g, want %g", got, want)
	}

	c.Advance(1e6)
	if got := c.Cursor().Y; got != th.MarginBottom {
		t.Errorf("cursor at %g, want %g", got, th.MarginBottom)
	}
	if c.NumPages() != 1 {
		t.Error("Advance added a page")
	}
}

func TestPushPageHook(t *testing.T) {
	var order []string
	c := newTestContext(t, "v2", &Options{
		OnPageAdded: func(c *Context) { order = append(order, "watermark") },
	})
	pop := c.PushPageHook(func(c *Context) { order = append(order, "table") })

	c.NewPage()
	pop()
	c.NewPage()

	want := []string{"watermark", "watermark", "table", "watermark"}
	if len(order) != len(want) {
		t.Fatalf("hooks ran as %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("hooks ran as %v, want %v", order, want)
		}
	}
}

func TestFontFailure(t *testing.T) {
	th, _ := theme.Lookup("v3")
	_, err := New(th, &Options{
		Fonts: &FontFiles{Bold: []byte("not a font")},
	})
	if err == nil {
		t.Fatal("invalid font accepted")
	}
}

func TestLoadStandardFonts(t *testing.T) {
	fonts, err := loadFonts(theme.FamilyStandard, nil)
	if err != nil {
		t.Fatal(err)
	}
	for v, F := range fonts {
		if F == nil {
			t.Errorf("no %s font", FontVariant(v))
		}
	}
}

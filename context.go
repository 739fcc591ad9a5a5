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

// Package report draws multi-page PDF reports.
//
// A [Context] tracks the cursor on the current page.  Every block is
// measured first, then [Context.EnsureSpace] starts a new page if needed,
// then the block is drawn.  Page decorations are painted by page hooks
// as soon as a page is created, and the footer is stamped onto all pages
// in a final pass.
package report

import (
	"bytes"
	"fmt"
	"time"

	"go.uber.org/zap"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/report/theme"
)

// Options control the creation of a [Context].
type Options struct {
	// OnPageAdded, if set, is called immediately after every new page has
	// been created, including the first one.  This is used to paint
	// decorations like watermarks which must appear on every page.
	OnPageAdded func(c *Context)

	// Deterministic pins all time stamps and file identifiers, so that
	// identical input gives byte-identical output.
	Deterministic bool

	// Timestamp is used as the creation and modification date in
	// deterministic mode.  If this is zero, a fixed date is used.
	Timestamp time.Time

	// Fonts optionally replaces the fonts of the theme.
	Fonts *FontFiles

	// Logger receives diagnostic messages.  If this is nil, nothing
	// is logged.
	Logger *zap.Logger

	// Debug outlines the page margins and the footer band on every page,
	// and the extent of every text line drawn.
	Debug bool
}

// Cursor gives the next writable position on the current page.
// Y is the top of the next block.
type Cursor struct {
	XMin, XMax float64
	Y          float64
}

// Width returns the horizontal space between XMin and XMax.
func (c Cursor) Width() float64 {
	return c.XMax - c.XMin
}

type pageHook struct {
	id int
	fn func(*Context)
}

// Context holds the state of one report while it is being drawn.
//
// Drawing methods do not return errors.  Instead, the first error which
// occurs is stored in Err and all further drawing operations are skipped.
// A Context must not be used concurrently.
type Context struct {
	// Err is the first error encountered while drawing.
	Err error

	th  *theme.Theme
	log *zap.Logger

	buf   *bytes.Buffer
	doc   *document.MultiPage
	fonts fontSet
	pages []*document.Page
	page  *document.Page

	cursor Cursor

	hooks      []pageHook
	nextHookID int
	inHook     bool

	records     []Record
	headerDrawn bool

	deterministic bool
	timestamp     time.Time
	debug         bool
	finalized     bool
	closed        bool
}

// New starts a new report.
//
// The fonts of the theme are loaded, the first page is created, and the
// cursor is placed at the top margin.  Failure to load a font is an error.
func New(th *theme.Theme, opt *Options) (*Context, error) {
	if th == nil {
		var err error
		th, err = theme.Lookup(theme.DefaultVersion)
		if err != nil {
			return nil, err
		}
	}
	if opt == nil {
		opt = &Options{}
	}

	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}

	fonts, err := loadFonts(th.Fonts, opt.Fonts)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	buf := &bytes.Buffer{}
	paper := &pdf.Rectangle{URx: th.PageWidth, URy: th.PageHeight}
	doc, err := document.WriteMultiPage(buf, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	c := &Context{
		th:            th,
		log:           log,
		buf:           buf,
		doc:           doc,
		fonts:         fonts,
		deterministic: opt.Deterministic,
		timestamp:     opt.Timestamp,
		debug:         opt.Debug,
	}
	if opt.OnPageAdded != nil {
		c.PushPageHook(opt.OnPageAdded)
	}
	c.startPage()

	return c, nil
}

// Theme returns the theme used by the report.
func (c *Context) Theme() *theme.Theme {
	return c.th
}

// Logger returns the logger of the report.
func (c *Context) Logger() *zap.Logger {
	return c.log
}

// Cursor returns the current cursor position.
func (c *Context) Cursor() Cursor {
	return c.cursor
}

// Page returns the current page.
func (c *Context) Page() *document.Page {
	return c.page
}

// NumPages returns the number of pages created so far.
func (c *Context) NumPages() int {
	return len(c.pages)
}

// PageNo returns the 1-based number of the current page.
func (c *Context) PageNo() int {
	return len(c.pages)
}

// Available returns the vertical space left on the current page.
func (c *Context) Available() float64 {
	return c.cursor.Y - c.th.MarginBottom
}

// drawable reports whether drawing operations may proceed.
func (c *Context) drawable() bool {
	if c.Err != nil {
		return false
	}
	if c.finalized {
		c.Err = ErrFinalized
		return false
	}
	return true
}

func (c *Context) fail(err error) {
	if c.Err == nil {
		c.Err = err
		c.log.Error("report generation failed",
			zap.Int("page", c.PageNo()),
			zap.Error(err))
	}
}

// PushPageHook registers a function which is called after every new page
// has been created.  Hooks run in the order in which they were registered.
// The returned function removes the hook again.
func (c *Context) PushPageHook(fn func(*Context)) (pop func()) {
	id := c.nextHookID
	c.nextHookID++
	c.hooks = append(c.hooks, pageHook{id: id, fn: fn})
	return func() {
		for i, h := range c.hooks {
			if h.id == id {
				c.hooks = append(c.hooks[:i], c.hooks[i+1:]...)
				return
			}
		}
	}
}

func (c *Context) startPage() {
	c.page = c.doc.AddPage()
	c.pages = append(c.pages, c.page)
	c.cursor = Cursor{
		XMin: c.th.MarginLeft,
		XMax: c.th.PageWidth - c.th.MarginRight,
		Y:    c.th.Top(),
	}
	c.log.Debug("page added", zap.Int("page", len(c.pages)))

	if c.debug {
		c.drawMarginFrame()
	}

	c.inHook = true
	for _, h := range c.hooks {
		h.fn(c)
		if c.Err != nil {
			break
		}
	}
	c.inHook = false
}

// NewPage starts a new page and runs the page hooks.
func (c *Context) NewPage() {
	if !c.drawable() {
		return
	}
	if c.inHook {
		c.fail(fmt.Errorf("%w: page hook needs a page break", ErrBlockTooTall))
		return
	}
	c.startPage()
}

// EnsureSpace makes sure that a block of the given height fits between
// the cursor and the bottom margin, starting a new page if needed.
// It returns false if the block cannot be placed; in this case Err is set.
func (c *Context) EnsureSpace(height float64) bool {
	if !c.drawable() {
		return false
	}
	if c.fits(height) {
		return true
	}

	if height > c.th.WritableHeight()+eps {
		c.fail(fmt.Errorf("%w: need %.1fpt, page has %.1fpt",
			ErrBlockTooTall, height, c.th.WritableHeight()))
		return false
	}

	c.NewPage()
	if c.Err != nil {
		return false
	}
	if !c.fits(height) {
		// the page hooks used up too much of the new page
		c.fail(fmt.Errorf("%w: need %.1fpt, %.1fpt left after page decorations",
			ErrBlockTooTall, height, c.Available()))
		return false
	}
	return true
}

func (c *Context) fits(height float64) bool {
	return c.cursor.Y-height >= c.th.MarginBottom-eps
}

// Advance moves the cursor down by the given height plus the baseline
// offset of the theme.  Nothing is drawn.  The cursor never moves below
// the bottom margin.
func (c *Context) Advance(height float64) {
	c.moveDown(height + c.th.Baseline)
}

func (c *Context) moveDown(height float64) {
	c.cursor.Y = max(c.cursor.Y-height, c.th.MarginBottom)
}

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
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// TextBlock describes a piece of text which is word-wrapped to a given width.
type TextBlock struct {
	Text     string
	MaxWidth float64
	Size     float64

	// LineHeight is the distance between consecutive lines.
	// If this is zero, the line height of the theme is used.
	LineHeight float64

	Font FontVariant
}

// WrapLines breaks the text of the block into lines.
//
// The result depends only on the block and on the font metrics.  The
// drawing code uses the same function, so a block always occupies exactly
// the height returned by [Context.MeasureBlockHeight].
func (c *Context) WrapLines(b TextBlock) []string {
	width := func(s string) float64 {
		return c.TextWidth(b.Font, b.Size, s)
	}
	return wrapText(b.Text, b.MaxWidth, c.th.BreakChars, width)
}

// MeasureBlockHeight returns the height the block occupies when drawn.
func (c *Context) MeasureBlockHeight(b TextBlock) float64 {
	return float64(len(c.WrapLines(b))) * c.lineHeight(b)
}

func (c *Context) lineHeight(b TextBlock) float64 {
	if b.LineHeight > 0 {
		return b.LineHeight
	}
	return c.th.Line(b.Size)
}

// TextWidth returns the width of a single line of text.
func (c *Context) TextWidth(v FontVariant, size float64, s string) float64 {
	if s == "" {
		return 0
	}
	F := c.fonts[v]
	return F.Layout(nil, size, s).TotalWidth()
}

// Ellipsize shortens s so that it fits into maxWidth, marking the cut
// with an ellipsis.
func (c *Context) Ellipsize(v FontVariant, size float64, s string, maxWidth float64) string {
	width := func(s string) float64 {
		return c.TextWidth(v, size, s)
	}
	return ellipsize(cleanText(s), maxWidth, width)
}

// wrapText implements greedy line breaking.  Hard line breaks are kept.
// Within a line, tokens end after one of the break characters and are
// added to the current line for as long as the line, without trailing
// spaces, fits into maxWidth.  A token which is wider than maxWidth on
// its own is put on a line by itself.
func wrapText(text string, maxWidth float64, breakChars string, width func(string) float64) []string {
	text = cleanText(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var lines []string
	for _, hard := range strings.Split(text, "\n") {
		cur := ""
		soft := false
		for _, tok := range tokenize(hard, breakChars) {
			if cur == "" {
				if soft {
					// no leading spaces on continuation lines
					tok = strings.TrimLeft(tok, " ")
				}
				cur = tok
				continue
			}

			cand := cur + tok
			if width(strings.TrimRight(cand, " ")) <= maxWidth+eps {
				cur = cand
				continue
			}

			lines = append(lines, strings.TrimRight(cur, " "))
			cur = strings.TrimLeft(tok, " ")
			soft = true
		}
		lines = append(lines, strings.TrimRight(cur, " "))
	}
	return lines
}

// tokenize splits a line into tokens.  Every token except possibly the
// last one ends with a break character.
func tokenize(line, breakChars string) []string {
	var res []string
	start := 0
	for i, r := range line {
		if !strings.ContainsRune(breakChars, r) {
			continue
		}
		end := i + utf8.RuneLen(r)
		res = append(res, line[start:end])
		start = end
	}
	if start < len(line) {
		res = append(res, line[start:])
	}
	return res
}

// cleanText normalizes text before it is measured or drawn.
// Line endings are converted to '\n' and all other control characters
// are replaced by spaces.
func cleanText(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return ' '
		}
		return r
	}, s)
}

const ellipsis = "…"

func ellipsize(s string, maxWidth float64, width func(string) float64) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if width(s) <= maxWidth+eps {
		return s
	}
	rr := []rune(s)
	for n := len(rr) - 1; n > 0; n-- {
		cand := strings.TrimRight(string(rr[:n]), " ") + ellipsis
		if width(cand) <= maxWidth+eps {
			return cand
		}
	}
	return ellipsis
}

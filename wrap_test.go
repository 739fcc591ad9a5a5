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
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// runeWidth gives every character a width of one unit.
func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"abc", []string{"abc"}},
		{"a b", []string{"a ", "b"}},
		{"a  b", []string{"a ", " ", "b"}},
		{"well-known/path ", []string{"well-", "known/", "path "}},
		{"ünï cödé", []string{"ünï ", "cödé"}},
	}
	for _, test := range cases {
		got := tokenize(test.in, " -/")
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("tokenize(%q): %s", test.in, d)
		}
	}
}

func TestWrapText(t *testing.T) {
	cases := []struct {
		in    string
		width float64
		want  []string
	}{
		{"", 10, nil},
		{"   ", 10, nil},
		{"hello", 10, []string{"hello"}},
		{"hello world", 11, []string{"hello world"}},
		{"hello world", 10, []string{"hello", "world"}},
		// trailing spaces do not count towards the width
		{"hello ", 5, []string{"hello"}},
		// an oversize token is never split
		{"a verylongtoken b", 5, []string{"a", "verylongtoken", "b"}},
		{"verylongtoken", 5, []string{"verylongtoken"}},
		// lines may be broken after hyphens and slashes
		{"state-of-the-art", 9, []string{"state-of-", "the-art"}},
		{"/usr/local/bin", 7, []string{"/usr/", "local/", "bin"}},
		// hard line breaks are kept, including empty lines
		{"one\n\ntwo", 10, []string{"one", "", "two"}},
		{"one\r\ntwo", 10, []string{"one", "two"}},
		// no leading spaces after a soft break
		{"aaaa   bbbb", 5, []string{"aaaa", "bbbb"}},
		// tabs and control characters become spaces
		{"a\tb\x00c", 10, []string{"a b c"}},
	}
	for _, test := range cases {
		got := wrapText(test.in, test.width, " -/", runeWidth)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("wrapText(%q, %g): %s", test.in, test.width, d)
		}
	}
}

// TestWrapTextWidth checks that only oversize tokens exceed the line width.
func TestWrapTextWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet, consectetur adipiscing elit ", 20)
	for width := 1.0; width < 80; width += 3 {
		lines := wrapText(text, width, " ", runeWidth)
		for _, line := range lines {
			if runeWidth(line) > width && strings.Contains(line, " ") {
				t.Fatalf("width %g: line %q too long", width, line)
			}
		}

		// no text is lost
		joined := strings.Join(lines, " ")
		if joined != strings.TrimSpace(text) {
			t.Fatalf("width %g: text changed", width)
		}
	}
}

func TestWrapTextIdempotent(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog.\nPack my box with five dozen liquor jugs."
	a := wrapText(text, 17, " -", runeWidth)
	b := wrapText(text, 17, " -", runeWidth)
	if d := cmp.Diff(a, b); d != "" {
		t.Error(d)
	}

	// wrapping the wrapped lines again gives the same result
	var c []string
	for _, line := range a {
		c = append(c, wrapText(line, 17, " -", runeWidth)...)
	}
	if d := cmp.Diff(a, c); d != "" {
		t.Error(d)
	}
}

func TestEllipsize(t *testing.T) {
	cases := []struct {
		in    string
		width float64
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is much too long", 10, "this is m…"},
		{"word and more", 6, "word…"},
		{"abc", 0, "…"},
	}
	for _, test := range cases {
		got := ellipsize(test.in, test.width, runeWidth)
		if got != test.want {
			t.Errorf("ellipsize(%q, %g) = %q, want %q", test.in, test.width, got, test.want)
		}
	}
}

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

package evidence

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// missing is shown in table cells for values which were not recorded.
const missing = "—"

// formatTime formats a time stamp in UTC.  The zero time gives the empty
// string.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05 UTC")
}

// formatShortTime is like formatTime, but omits the seconds and the zone.
func formatShortTime(t time.Time) string {
	if t.IsZero() {
		return missing
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func formatPercent(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.0f%%", *p)
}

// formatDuration formats a duration with at most two units,
// for example "42s", "3m 07s" or "1h 02m".
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}

// maxSlugLength limits the length of the title part of a file name.
const maxSlugLength = 60

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// slug converts s into lower-case ASCII letters and digits, separated by
// single dashes.  Accents are removed, other characters act as separators.
func slug(s string, maxLen int) string {
	s, _, err := transform.String(stripMarks, s)
	if err != nil {
		return ""
	}

	b := &strings.Builder{}
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			if b.Len() >= maxLen {
				break
			}
			continue
		}
		dash = true
	}
	return b.String()
}

// Filename returns a file name for a report, derived from the report
// title and the identifier of the underlying record.  The result only
// contains lower-case ASCII letters, digits, dashes and the ".pdf"
// suffix.
func Filename(title, id string) string {
	name := slug(title, maxSlugLength)
	if name == "" {
		name = "evidence"
	}
	if id := slug(id, maxSlugLength); id != "" {
		name += "-" + id
	}
	return name + ".pdf"
}

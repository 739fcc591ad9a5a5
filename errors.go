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

import "errors"

var (
	// ErrBlockTooTall is set when a single block of content is higher
	// than the writable area of a page.
	ErrBlockTooTall = errors.New("report: block does not fit on a page")

	// ErrFinalized is returned when content is added to a report after the
	// footer pass, or when a report is finished twice.
	ErrFinalized = errors.New("report: already finalized")

	// ErrNoImage indicates that image data could not be used.
	ErrNoImage = errors.New("report: unusable image")

	errNoGlyf = errors.New("no glyf outlines in font")
)

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
	"bytes"
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/font/truetype"

	"seehuhn.de/go/report/theme"
)

// FontVariant selects one of the fonts of a report.
type FontVariant int

// These are the font variants available in every report.
const (
	Regular FontVariant = iota
	Bold
	Mono
	numVariants
)

func (v FontVariant) String() string {
	switch v {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Mono:
		return "mono"
	default:
		return fmt.Sprintf("FontVariant(%d)", int(v))
	}
}

// FontFiles holds TrueType font data which replaces the fonts of the theme.
// Variants left empty use the font of the theme.
type FontFiles struct {
	Regular []byte
	Bold    []byte
	Mono    []byte
}

func (ff *FontFiles) get(v FontVariant) []byte {
	if ff == nil {
		return nil
	}
	switch v {
	case Regular:
		return ff.Regular
	case Bold:
		return ff.Bold
	case Mono:
		return ff.Mono
	}
	return nil
}

// fontSet holds one font per variant.  Each font is created once per
// report, so that it is embedded into the PDF file only once.
type fontSet [numVariants]font.Layouter

var goFontData = [numVariants][]byte{
	Regular: goregular.TTF,
	Bold:    gobold.TTF,
	Mono:    gomono.TTF,
}

var standardFonts = [numVariants]standard.Font{
	Regular: standard.Helvetica,
	Bold:    standard.HelveticaBold,
	Mono:    standard.Courier,
}

func loadFonts(family theme.Family, files *FontFiles) (fontSet, error) {
	var res fontSet
	for v := Regular; v < numVariants; v++ {
		data := files.get(v)
		if data == nil && family == theme.FamilyGo {
			data = goFontData[v]
		}

		if data == nil {
			F, err := standardFonts[v].New(nil)
			if err != nil {
				return res, fmt.Errorf("%s font: %w", v, err)
			}
			res[v] = F
			continue
		}

		F, err := loadTrueType(data)
		if err != nil {
			return res, fmt.Errorf("%s font: %w", v, err)
		}
		res[v] = F
	}
	return res, nil
}

func loadTrueType(data []byte) (font.Layouter, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if !info.IsGlyf() {
		return nil, errNoGlyf
	}
	return truetype.New(info, nil)
}

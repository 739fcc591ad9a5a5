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

// Package theme holds the layout constants for the supported report styles.
//
// A theme is selected once, when a report is started, and is never changed
// afterwards.  All geometry is given in PDF points.
package theme

import (
	"errors"
	"fmt"
)

// ErrUnknownVersion is returned by [Lookup] for unsupported style versions.
var ErrUnknownVersion = errors.New("theme: unknown style version")

// DefaultVersion is used when no style version is given.
const DefaultVersion = "v3"

// Family selects the fonts used for a theme.
type Family int

// These are the supported font families.
const (
	// FamilyStandard uses the standard 14 PDF fonts (Helvetica and Courier).
	// These fonts are not embedded.
	FamilyStandard Family = iota

	// FamilyGo uses the Go font family, embedded as TrueType fonts.
	FamilyGo
)

func (f Family) String() string {
	switch f {
	case FamilyStandard:
		return "standard"
	case FamilyGo:
		return "go"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Color is an RGB color with components in the range [0, 1].
type Color struct {
	R, G, B float64
}

// Palette lists the named colors of a theme.
type Palette struct {
	Text   Color
	Muted  Color
	Border Color
	Panel  Color
	Accent Color
	White  Color
}

// TableStyle gives the defaults for tables.
type TableStyle struct {
	FontSize   float64
	HeaderSize float64
	Padding    float64
	Gutter     float64
	Striped    bool
}

// WatermarkStyle describes the diagonal brand mark.
type WatermarkStyle struct {
	Angle   float64 // degrees, counter-clockwise
	Opacity float64 // in (0, 1]

	// Scale gives the width of the mark as a fraction of the page width.
	Scale float64
}

// Theme is a complete set of layout constants.
type Theme struct {
	Name string

	PageWidth, PageHeight float64

	MarginTop, MarginBottom float64
	MarginLeft, MarginRight float64

	TitleSize   float64
	HeadingSize float64
	BodySize    float64
	SmallSize   float64

	// LineHeight is the distance between baselines, as a multiple of
	// the font size.
	LineHeight float64

	// Baseline is the extra space added after every block.
	Baseline float64

	Gutter float64

	// BreakChars lists the characters after which a line may be broken.
	BreakChars string

	LabelWidth    float64
	HeaderHeight  float64
	FooterHeight  float64
	KPIHeight     float64
	SectionHeight float64
	LogoWidth     float64

	Table     TableStyle
	Watermark WatermarkStyle
	Palette   Palette
	Fonts     Family
}

// A4 paper size in PDF points.
const (
	A4Width  = 595.276
	A4Height = 841.890
)

// v2 is the older, more compact report style.
var v2 = Theme{
	Name:       "v2",
	PageWidth:  A4Width,
	PageHeight: A4Height,

	MarginTop:    56,
	MarginBottom: 56,
	MarginLeft:   48,
	MarginRight:  48,

	TitleSize:   20,
	HeadingSize: 13,
	BodySize:    10,
	SmallSize:   8,
	LineHeight:  1.35,
	Baseline:    4,
	Gutter:      10,
	BreakChars:  " -/",

	LabelWidth:    150,
	HeaderHeight:  86,
	FooterHeight:  28,
	KPIHeight:     46,
	SectionHeight: 24,
	LogoWidth:     96,

	Table: TableStyle{
		FontSize:   8,
		HeaderSize: 8,
		Padding:    4,
		Gutter:     4,
		Striped:    true,
	},
	Watermark: WatermarkStyle{
		Angle:   35,
		Opacity: 0.06,
		Scale:   0.6,
	},
	Palette: Palette{
		Text:   Color{0.11, 0.12, 0.14},
		Muted:  Color{0.42, 0.45, 0.50},
		Border: Color{0.85, 0.87, 0.90},
		Panel:  Color{0.96, 0.97, 0.98},
		Accent: Color{0.13, 0.35, 0.85},
		White:  Color{1, 1, 1},
	},
	Fonts: FamilyStandard,
}

// v3 is the current report style.
var v3 = Theme{
	Name:       "v3",
	PageWidth:  A4Width,
	PageHeight: A4Height,

	MarginTop:    64,
	MarginBottom: 60,
	MarginLeft:   56,
	MarginRight:  56,

	TitleSize:   22,
	HeadingSize: 14,
	BodySize:    10,
	SmallSize:   8,
	LineHeight:  1.4,
	Baseline:    6,
	Gutter:      12,
	BreakChars:  " -/_",

	LabelWidth:    160,
	HeaderHeight:  96,
	FooterHeight:  32,
	KPIHeight:     52,
	SectionHeight: 28,
	LogoWidth:     110,

	Table: TableStyle{
		FontSize:   8,
		HeaderSize: 8.5,
		Padding:    5,
		Gutter:     4,
		Striped:    true,
	},
	Watermark: WatermarkStyle{
		Angle:   45,
		Opacity: 0.08,
		Scale:   0.7,
	},
	Palette: Palette{
		Text:   Color{0.07, 0.09, 0.15},
		Muted:  Color{0.39, 0.43, 0.51},
		Border: Color{0.82, 0.84, 0.88},
		Panel:  Color{0.95, 0.96, 0.98},
		Accent: Color{0.31, 0.27, 0.90},
		White:  Color{1, 1, 1},
	},
	Fonts: FamilyGo,
}

var registry = map[string]*Theme{
	v2.Name: &v2,
	v3.Name: &v3,
}

// Versions returns the supported style versions.
func Versions() []string {
	return []string{v2.Name, v3.Name}
}

// Lookup returns a copy of the theme for the given style version.
// The empty string selects [DefaultVersion].
func Lookup(version string) (*Theme, error) {
	if version == "" {
		version = DefaultVersion
	}
	th, ok := registry[version]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVersion, version)
	}
	res := *th
	return &res, nil
}

// ContentWidth returns the width between the left and right margins.
func (th *Theme) ContentWidth() float64 {
	return th.PageWidth - th.MarginLeft - th.MarginRight
}

// WritableHeight returns the height between the top and bottom margins.
func (th *Theme) WritableHeight() float64 {
	return th.PageHeight - th.MarginTop - th.MarginBottom
}

// Top returns the y coordinate of the top margin.
func (th *Theme) Top() float64 {
	return th.PageHeight - th.MarginTop
}

// Line returns the baseline distance for text set at the given size.
func (th *Theme) Line(size float64) float64 {
	return size * th.LineHeight
}

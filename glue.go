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
	"seehuhn.de/go/pdf/document"
)

type stretcher interface {
	Stretch() stretchAmount
}

type shrinker interface {
	Shrink() stretchAmount
}

// stretchAmount gives the stretchability of glue.  Glue of a higher
// order takes precedence over all glue of lower orders.
type stretchAmount struct {
	Val   float64
	Order int
}

func (s *stretchAmount) Add(other stretchAmount) {
	if other.Order > s.Order {
		s.Val = other.Val
		s.Order = other.Order
	} else if other.Order == s.Order {
		s.Val += other.Val
	}
}

// Glue returns a new "glue" box with the given natural length and
// stretchability.
func Glue(length float64, plus float64, plusLevel int, minus float64, minusLevel int) *GlueBox {
	return &GlueBox{
		Length: length,
		Plus:   stretchAmount{plus, plusLevel},
		Minus:  stretchAmount{minus, minusLevel},
	}
}

// HFill returns glue which takes up all remaining space in a row.
func HFill() *GlueBox {
	return Glue(0, 1, 1, 0, 0)
}

// GlueBox is white space of variable length.
type GlueBox struct {
	Length float64
	Plus   stretchAmount
	Minus  stretchAmount
}

// Extent implements the [Box] interface.
func (obj *GlueBox) Extent() *BoxExtent {
	return &BoxExtent{
		Width:          obj.Length,
		Height:         obj.Length,
		WhiteSpaceOnly: true,
	}
}

// Draw implements the [Box] interface.
func (obj *GlueBox) Draw(page *document.Page, xPos, yPos float64) {}

// Stretch implements the stretcher interface.
func (obj *GlueBox) Stretch() stretchAmount {
	return obj.Plus
}

// Shrink implements the shrinker interface.
func (obj *GlueBox) Shrink() stretchAmount {
	return obj.Minus
}

// Add adds the natural length and the stretchability of other to obj.
func (obj *GlueBox) Add(other *GlueBox) {
	if other == nil {
		return
	}
	obj.Length += other.Length
	obj.Plus.Add(other.Plus)
	obj.Minus.Add(other.Minus)
}

func (obj *GlueBox) addStretch(box Box) {
	if stretch, ok := box.(stretcher); ok {
		obj.Plus.Add(stretch.Stretch())
	}
	if shrink, ok := box.(shrinker); ok {
		obj.Minus.Add(shrink.Shrink())
	}
}

// totalWidthAndGlue returns the combined width and glue of a row of boxes.
func totalWidthAndGlue(boxes []Box) *GlueBox {
	res := &GlueBox{}
	for _, box := range boxes {
		res.Length += box.Extent().Width
		res.addStretch(box)
	}
	return res
}

// totalHeightAndGlue returns the combined height and glue of a column of
// boxes, measured from the top of the first box to the bottom of the last.
func totalHeightAndGlue(boxes []Box) *GlueBox {
	res := &GlueBox{}
	for _, box := range boxes {
		ext := box.Extent()
		res.Length += ext.Height + ext.Depth
		res.addStretch(box)
	}
	return res
}

func getStretch(box Box, order int) float64 {
	stretch, ok := box.(stretcher)
	if !ok {
		return 0
	}
	s := stretch.Stretch()
	if s.Order != order {
		return 0
	}
	return s.Val
}

func getShrink(box Box, order int) float64 {
	shrink, ok := box.(shrinker)
	if !ok {
		return 0
	}
	s := shrink.Shrink()
	if s.Order != order {
		return 0
	}
	return s.Val
}

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

const eps = 1e-3

// VBoxTo creates a VBox with the given height and contents.
// The baseline of the box is at the baseline of the last child box.
func VBoxTo(height float64, contents ...Box) Box {
	res := &vBox{
		BoxExtent: BoxExtent{
			Height: height,
		},
		Contents: contents,
	}
	if len(contents) > 0 {
		res.Depth = contents[len(contents)-1].Extent().Depth
		res.Height -= res.Depth
	}
	for _, box := range contents {
		ext := box.Extent()
		if ext.Width > res.Width && !ext.WhiteSpaceOnly {
			res.Width = ext.Width
		}
	}
	return res
}

type vBox struct {
	BoxExtent
	Contents []Box
}

func (obj *vBox) Draw(page *document.Page, xPos, yPos float64) {
	yy := verticalLayout(yPos+obj.Height, obj.Height+obj.Depth, obj.Contents...)
	for i, box := range obj.Contents {
		box.Draw(page, xPos, yy[i])
	}
}

// verticalLayout returns the baseline positions of boxes stacked
// downwards from yTop, distributing glue to fill the given height.
func verticalLayout(yTop, height float64, boxes ...Box) []float64 {
	y := yTop
	yy := make([]float64, 0, len(boxes))
	total := totalHeightAndGlue(boxes)
	if total.Length < height-eps && total.Plus.Val > 0 {
		// contents are too short, stretch all available glue
		q := (height - total.Length) / total.Plus.Val
		for _, box := range boxes {
			ext := box.Extent()
			y -= ext.Height + q*getStretch(box, total.Plus.Order)
			yy = append(yy, y)
			y -= ext.Depth
		}
	} else if total.Length > height+eps && total.Minus.Val > 0 {
		// contents are too tall, shrink all available glue
		q := (total.Length - height) / total.Minus.Val
		if total.Minus.Order == 0 && q > 1 {
			q = 1
		}
		for _, box := range boxes {
			ext := box.Extent()
			y -= ext.Height - q*getShrink(box, total.Minus.Order)
			yy = append(yy, y)
			y -= ext.Depth
		}
	} else {
		// lay out contents at their natural height+depth
		for _, box := range boxes {
			ext := box.Extent()
			y -= ext.Height
			yy = append(yy, y)
			y -= ext.Depth
		}
	}
	return yy
}

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
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/document"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
)

// MaxImagePixels limits the size of decoded images.
const MaxImagePixels = 25_000_000

// Image is a decoded raster image which can be drawn in a report.
//
// All pages which draw the same Image share one image object in the PDF
// file.  An Image must only be used in one report at a time.
type Image struct {
	Width, Height int // in pixels
	Format        string

	xobj *pdfimage.PNG
}

// DecodeImage decodes PNG, JPEG, GIF, WebP, BMP or TIFF data.
func DecodeImage(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no data", ErrNoImage)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty %s image", ErrNoImage, format)
	}
	if cfg.Width*cfg.Height > MaxImagePixels {
		return nil, fmt.Errorf("%w: %s image too large (%dx%d)",
			ErrNoImage, format, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoImage, err)
	}

	b := img.Bounds()
	return &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: format,
		xobj:   &pdfimage.PNG{Data: img},
	}, nil
}

// LoadImage is like [DecodeImage], but failures are only logged.
// If data is empty or cannot be used, nil is returned.
func LoadImage(data []byte, log *zap.Logger, name string) *Image {
	if len(data) == 0 {
		return nil
	}
	img, err := DecodeImage(data)
	if err != nil {
		if log != nil {
			log.Warn("image ignored",
				zap.String("image", name),
				zap.Int("bytes", len(data)),
				zap.Error(err))
		}
		return nil
	}
	return img
}

// HeightFor returns the height of the image when scaled to the given width.
func (img *Image) HeightFor(width float64) float64 {
	return width * float64(img.Height) / float64(img.Width)
}

// imageBox draws an image with its bottom edge on the baseline.
type imageBox struct {
	BoxExtent
	img *Image
	c   *Context
	pg  int
}

func (c *Context) imageBox(img *Image, width, height float64, pageNo int) Box {
	return &imageBox{
		BoxExtent: BoxExtent{Width: width, Height: height},
		img:       img,
		c:         c,
		pg:        pageNo,
	}
}

func (obj *imageBox) Draw(page *document.Page, xPos, yPos float64) {
	drawImage(page, obj.img, matrix.Scale(obj.Width, obj.Height).Mul(matrix.Translate(xPos, yPos)))
	obj.c.records = append(obj.c.records, Record{
		Page:   obj.pg,
		Kind:   KindImage,
		X:      xPos,
		Width:  obj.Width,
		Top:    yPos + obj.Height,
		Bottom: yPos,
	})
}

// drawImage paints the unit square of the image, transformed by M.
func drawImage(page *document.Page, img *Image, M matrix.Matrix) {
	page.PushGraphicsState()
	page.Transform(M)
	page.DrawXObject(img.xobj)
	page.PopGraphicsState()
}

// DrawImage draws an image with its top left corner at the cursor,
// scaled to the given width.  The cursor is not moved.
func (c *Context) DrawImage(img *Image, x, width float64) float64 {
	if img == nil || !c.drawable() {
		return 0
	}
	h := img.HeightFor(width)
	c.imageBox(img, width, h, c.PageNo()).Draw(c.page, x, c.cursor.Y-h)
	return h
}

// seehuhn.de/go/pdfdraw - drawing primitives and barcodes for PDF pages
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

package document

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register decoders
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/pdfdraw/internal/float"
	"seehuhn.de/go/pdfdraw/pdf"
)

// imageInfo describes an image XObject.
type imageInfo struct {
	resName pdf.Name
	width   int
	height  int

	colorSpace pdf.Name
	filter     pdf.Name
	data       []byte
}

type imageRegistry struct {
	byPath map[string]*imageInfo
	order  []*imageInfo
}

func newImageRegistry() *imageRegistry {
	return &imageRegistry{byPath: make(map[string]*imageInfo)}
}

// SetImagePath sets a directory in which [Document.Image] looks for image
// files given by relative names.
func (doc *Document) SetImagePath(dir string) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	doc.imagePath = abs
}

// ImagePath returns the directory set by [Document.SetImagePath].
func (doc *Document) ImagePath() string {
	return doc.imagePath
}

// resolveImage returns the file name to use for the given image name.  If
// the name cannot be read as given, it is looked up in the image path.
func (doc *Document) resolveImage(name string) string {
	if _, err := os.Stat(name); err == nil || doc.imagePath == "" {
		return name
	}
	alt := filepath.Join(doc.imagePath, name)
	if _, err := os.Stat(alt); err == nil {
		return alt
	}
	return name
}

// Image places an image with top-left corner (x, y) and size w x h.  If
// both w and h are zero, the image is shown at 96 dpi.  If one of them is
// zero, it is computed from the other one, keeping the aspect ratio.
//
// JPEG files are embedded unchanged.  PNG, GIF, BMP, TIFF and WebP files
// are decoded and embedded as compressed RGB data; transparent regions are
// shown in white.
func (doc *Document) Image(file string, x, y, w, h float64) {
	p := doc.current()
	if p == nil {
		return
	}

	name := doc.resolveImage(file)
	img, ok := doc.images.byPath[name]
	if !ok {
		var err error
		img, err = loadImage(name)
		if err != nil {
			doc.fail("Image", err)
			return
		}
		img.resName = pdf.Name("I" + strconv.Itoa(len(doc.images.order)+1))
		doc.images.byPath[name] = img
		doc.images.order = append(doc.images.order, img)
	}

	switch {
	case w == 0 && h == 0:
		w = float64(img.width) * 72 / 96 / doc.k
		h = float64(img.height) * 72 / 96 / doc.k
	case w == 0:
		w = h * float64(img.width) / float64(img.height)
	case h == 0:
		h = w * float64(img.height) / float64(img.width)
	}

	dx, dy := p.draw.Device(x, y+h)
	p.AppendRaw("q " + float.Format(w*doc.k, 2) + " 0 0 " + float.Format(h*doc.k, 2) + " " +
		float.Format(dx, 2) + " " + float.Format(dy, 2) + " cm /" + string(img.resName) + " Do Q")
}

func loadImage(name string) (*imageInfo, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, name, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %s: empty image", ErrUnsupportedImage, name)
	}

	if format == "jpeg" {
		info := &imageInfo{
			width:      cfg.Width,
			height:     cfg.Height,
			colorSpace: "DeviceRGB",
			filter:     "DCTDecode",
			data:       data,
		}
		switch cfg.ColorModel {
		case color.GrayModel:
			info.colorSpace = "DeviceGray"
		case color.CMYKModel:
			info.colorSpace = "DeviceCMYK"
		}
		return info, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, name, err)
	}
	return &imageInfo{
		width:      cfg.Width,
		height:     cfg.Height,
		colorSpace: "DeviceRGB",
		data:       rgbPixels(src),
	}, nil
}

// rgbPixels returns the pixels of img as 8-bit RGB triples, composited
// over a white background.
func rgbPixels(img image.Image) []byte {
	b := img.Bounds()
	res := make([]byte, 0, 3*b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			white := 0xffff - a
			res = append(res,
				byte((r+white)>>8),
				byte((g+white)>>8),
				byte((bl+white)>>8))
		}
	}
	return res
}

func (img *imageInfo) dict() pdf.Dict {
	d := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(img.width),
		"Height":           pdf.Integer(img.height),
		"ColorSpace":       img.colorSpace,
		"BitsPerComponent": pdf.Integer(8),
	}
	if img.filter != "" {
		d["Filter"] = img.filter
	}
	if img.colorSpace == "DeviceCMYK" {
		// Adobe applications write inverted CMYK JPEG data
		d["Decode"] = pdf.Array{
			pdf.Integer(1), pdf.Integer(0), pdf.Integer(1), pdf.Integer(0),
			pdf.Integer(1), pdf.Integer(0), pdf.Integer(1), pdf.Integer(0),
		}
	}
	return d
}

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
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdraw/graphics"
)

// Page represents a page of a [Document].
//
// A Page records its content stream in memory.  The stream is written to
// the PDF file when the document is output, so that the alias for the
// total number of pages can be replaced in all pages.
type Page struct {
	// Number is the page number, starting at 1.
	Number int

	// MediaBox is the page size in PDF points.
	MediaBox rect.Rect

	scale    float64
	content  *graphics.Recorder
	draw     *graphics.Emitter
	rotation *graphics.Rotation
	closed   bool
}

func newPage(number int, mediaBox rect.Rect, scale float64) *Page {
	p := &Page{
		Number:   number,
		MediaBox: mediaBox,
		scale:    scale,
		content:  &graphics.Recorder{},
	}
	p.draw = graphics.NewEmitter(p, p)
	p.rotation = graphics.NewRotation(p, p)
	return p
}

// HeightUnits returns the page height in user units.
// This implements the [graphics.PageSpace] interface.
func (p *Page) HeightUnits() float64 {
	return (p.MediaBox.URy - p.MediaBox.LLy) / p.scale
}

// WidthUnits returns the page width in user units.
func (p *Page) WidthUnits() float64 {
	return (p.MediaBox.URx - p.MediaBox.LLx) / p.scale
}

// Scale returns the number of PDF points per user unit.
// This implements the [graphics.PageSpace] interface.
func (p *Page) Scale() float64 {
	return p.scale
}

// AppendRaw appends an operator to the content stream of the page.
// Operators appended after the page has been closed are discarded.
// This implements the [graphics.Sink] interface.
func (p *Page) AppendRaw(token string) {
	if p.closed {
		return
	}
	p.content.AppendRaw(token)
}

// Content returns the operators of the content stream recorded so far.
func (p *Page) Content() []string {
	return p.content.Tokens()
}

// Close ends the page.  An active rotation is reset, so that the graphics
// state nesting of the content stream is balanced.  Calling Close more
// than once has no effect.
func (p *Page) Close() {
	if p.closed {
		return
	}
	p.rotation.EndPage()
	p.closed = true
}

// IsClosed reports whether the page has been closed.
func (p *Page) IsClosed() bool {
	return p.closed
}

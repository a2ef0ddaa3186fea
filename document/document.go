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

// Package document implements multi-page PDF documents with an FPDF-style
// drawing interface.
//
// A [Document] keeps track of the current page, the pen position, the
// current font and the drawing colours.  Coordinates are given in user
// units, with the origin in the top-left corner of the page.
//
// Errors are sticky: after the first failed operation, the error is stored
// in the Err field, all further drawing operations are ignored, and the
// error is returned when the document is written.
//
// A Document is not safe for concurrent use.
package document

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/internal/float"
)

var (
	// ErrNoPage is returned when drawing is attempted before the first
	// call to [Document.AddPage].
	ErrNoPage = errors.New("document: no page")

	// ErrClosed is returned when a document is modified after it has been
	// written.
	ErrClosed = errors.New("document: already written")

	// ErrUnknownFont is returned when a font family or style has not been
	// registered.
	ErrUnknownFont = errors.New("document: unknown font")

	// ErrUnsupportedImage is returned for image files which cannot be
	// decoded.
	ErrUnsupportedImage = errors.New("document: unsupported image")
)

// DefaultAlias is the default placeholder for the total number of pages.
const DefaultAlias = "{{{nb}}}"

// Document represents a PDF document under construction.
type Document struct {
	// Err, if non-nil, is the first error encountered while building the
	// document.
	Err error

	// PageEnd, if set, is called before a page is closed.  This can be
	// used to draw page footers.
	PageEnd func(doc *Document)

	// BeforeOutput, if set, is called once before the document is
	// written.
	BeforeOutput func(doc *Document)

	// CreationDate is stored in the document information dictionary and
	// in the XMP metadata.
	CreationDate time.Time

	opt      Options
	k        float64
	pageSize rect.Rect

	pages      []*Page
	page       *Page
	pagesAdded int
	alias      string

	x, y float64

	lineWidth float64
	drawColor string
	fillColor string

	fonts     *fontRegistry
	font      *fontState
	fontSize  float64
	underline bool
	cMargin   float64

	images    *imageRegistry
	imagePath string

	info info

	outputStarted bool
}

// New creates a new, empty document.  If opt is nil, A4 portrait pages,
// millimetres as the user unit, a margin of 20mm and PDF version 1.7 are
// used.
func New(opt *Options) (*Document, error) {
	o := defaultOptions
	if opt != nil {
		o = *opt
	}
	if o.PageSize == (rect.Rect{}) {
		o.PageSize = A4
	}
	if o.Version == 0 {
		o.Version = defaultOptions.Version
	}
	if _, err := o.Version.ToString(); err != nil {
		return nil, err
	}
	if o.Margin < 0 {
		return nil, fmt.Errorf("negative margin %g", o.Margin)
	}

	size := o.PageSize
	if o.Orientation == Landscape {
		size = rect.Rect{URx: size.URy - size.LLy, URy: size.URx - size.LLx}
	}

	doc := &Document{
		CreationDate: time.Now(),
		opt:          o,
		k:            o.Unit.Scale(),
		pageSize:     size,
		alias:        DefaultAlias,
		lineWidth:    0.567 / o.Unit.Scale(),
		drawColor:    "0 G",
		fillColor:    "0 g",
		fonts:        newFontRegistry(),
		fontSize:     12,
		cMargin:      2.835 / o.Unit.Scale(),
		images:       newImageRegistry(),
	}
	return doc, nil
}

// AddPage ends the current page, if any, and starts a new one.
// The pen is moved to the top-left margin corner of the new page, and the
// line width, colours and font of the previous page are carried over.
func (doc *Document) AddPage() {
	if !doc.usable() {
		return
	}
	doc.endPage()

	doc.pagesAdded++
	doc.page = newPage(len(doc.pages)+1, doc.pageSize, doc.k)
	doc.pages = append(doc.pages, doc.page)
	doc.x, doc.y = doc.opt.Margin, doc.opt.Margin

	doc.out(float.Format(doc.lineWidth*doc.k, 2) + " w")
	if doc.drawColor != "0 G" {
		doc.out(doc.drawColor)
	}
	if doc.fillColor != "0 g" {
		doc.out(doc.fillColor)
	}
	if doc.font != nil {
		doc.selectFont()
	}
}

func (doc *Document) endPage() {
	if doc.page == nil || doc.page.IsClosed() {
		return
	}
	if doc.PageEnd != nil {
		doc.PageEnd(doc)
	}
	doc.page.Close()
}

// PagesAdded returns the number of calls to [Document.AddPage] so far.
// This is not the total number of pages of the finished document, use
// [Document.TotalPagesNo] to print that.
func (doc *Document) PagesAdded() int {
	return doc.pagesAdded
}

// PageNo returns the number of the current page, or 0 if no page has been
// started.
func (doc *Document) PageNo() int {
	if doc.page == nil {
		return 0
	}
	return doc.page.Number
}

// Page returns the current page, or nil if no page has been started.
func (doc *Document) Page() *Page {
	return doc.page
}

// Pages returns all pages of the document.
func (doc *Document) Pages() []*Page {
	return append([]*Page(nil), doc.pages...)
}

// AliasNbPages sets the placeholder which is replaced by the total number
// of pages when the document is written.  An empty alias disables the
// replacement.
func (doc *Document) AliasNbPages(alias string) {
	doc.alias = alias
}

// TotalPagesNo returns a string which is replaced by the total number of
// pages when the document is written.
func (doc *Document) TotalPagesNo() string {
	return doc.alias
}

// PaginationStr returns a string of the form "3/{{{nb}}}", consisting of
// the current page number, the delimiter and the placeholder for the total
// number of pages.
func (doc *Document) PaginationStr(delim string) string {
	return strconv.Itoa(doc.PageNo()) + delim + doc.TotalPagesNo()
}

// Unit returns the user unit of the document.
func (doc *Document) Unit() Unit {
	return doc.opt.Unit
}

// Margin returns the page margin in user units.
func (doc *Document) Margin() float64 {
	return doc.opt.Margin
}

// PageWidth returns the width of the pages in user units.
func (doc *Document) PageWidth() float64 {
	return (doc.pageSize.URx - doc.pageSize.LLx) / doc.k
}

// PageHeight returns the height of the pages in user units.
func (doc *Document) PageHeight() float64 {
	return (doc.pageSize.URy - doc.pageSize.LLy) / doc.k
}

// X returns the horizontal pen position.
func (doc *Document) X() float64 {
	return doc.x
}

// Y returns the vertical pen position.
func (doc *Document) Y() float64 {
	return doc.y
}

// Pen returns the pen position.
func (doc *Document) Pen() vec.Vec2 {
	return vec.Vec2{X: doc.x, Y: doc.y}
}

// SetXY moves the pen to (x, y).
func (doc *Document) SetXY(x, y float64) {
	doc.x, doc.y = x, y
}

// SetX sets the horizontal pen position.  A negative value is measured
// from the right edge of the page.
func (doc *Document) SetX(x float64) {
	if x < 0 {
		x += doc.PageWidth()
	}
	doc.x = x
}

// SetY sets the vertical pen position and moves the pen back to the left
// margin.  A negative value is measured from the bottom edge of the page.
func (doc *Document) SetY(y float64) {
	if y < 0 {
		y += doc.PageHeight()
	}
	doc.x = doc.opt.Margin
	doc.y = y
}

// MoveX moves the pen horizontally by dx.
func (doc *Document) MoveX(dx float64) {
	doc.SetX(doc.x + dx)
}

// MoveY moves the pen vertically by dy.  The horizontal position is kept.
func (doc *Document) MoveY(dy float64) {
	doc.SetXY(doc.x, doc.y+dy)
}

// SetLineWidth sets the line width in user units.
func (doc *Document) SetLineWidth(w float64) {
	if !doc.usable() {
		return
	}
	doc.lineWidth = w
	if doc.page != nil {
		doc.out(float.Format(w*doc.k, 2) + " w")
	}
}

// SetDrawColor sets the stroking colour.  The components are in the range
// 0 to 255.  Equal components select a grey level.
func (doc *Document) SetDrawColor(r, g, b int) {
	if !doc.usable() {
		return
	}
	doc.drawColor = colorOp(r, g, b, "G", "RG")
	if doc.page != nil {
		doc.out(doc.drawColor)
	}
}

// SetFillColor sets the colour for filled shapes and for text.
// The components are in the range 0 to 255.  Equal components select a
// grey level.
func (doc *Document) SetFillColor(r, g, b int) {
	if !doc.usable() {
		return
	}
	doc.fillColor = colorOp(r, g, b, "g", "rg")
	if doc.page != nil {
		doc.out(doc.fillColor)
	}
}

func colorOp(r, g, b int, grey, rgb string) string {
	c := func(x int) string {
		return float.Format(float64(min(max(x, 0), 255))/255, 3)
	}
	if r == g && g == b {
		return c(r) + " " + grey
	}
	return c(r) + " " + c(g) + " " + c(b) + " " + rgb
}

// usable reports whether the document can still be modified.  If not,
// the reason is recorded in doc.Err.
func (doc *Document) usable() bool {
	if doc.Err != nil {
		return false
	}
	if doc.outputStarted {
		doc.Err = ErrClosed
		return false
	}
	return true
}

// current returns the current page, ready for drawing.
func (doc *Document) current() *Page {
	if !doc.usable() {
		return nil
	}
	if doc.page == nil {
		doc.Err = ErrNoPage
		return nil
	}
	return doc.page
}

func (doc *Document) out(token string) {
	if p := doc.current(); p != nil {
		p.AppendRaw(token)
	}
}

// fail records err as the document error, if it is the first one.
func (doc *Document) fail(op string, err error) {
	if err != nil && doc.Err == nil {
		doc.Err = fmt.Errorf("%s: %w", op, err)
	}
}

var _ graphics.PageSpace = (*Page)(nil)

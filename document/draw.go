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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw/graphics"
)

// Rect draws a rectangle with top-left corner (x, y).  The width and
// height must be positive.
func (doc *Document) Rect(x, y, w, h float64, style graphics.Style) {
	if p := doc.current(); p != nil {
		doc.fail("Rect", p.draw.Rect(x, y, w, h, style))
	}
}

// Line draws a line from (x1, y1) to (x2, y2).
func (doc *Document) Line(x1, y1, x2, y2 float64) {
	if p := doc.current(); p != nil {
		doc.fail("Line", p.draw.Line(x1, y1, x2, y2))
	}
}

// RoundedRect draws a rectangle with rounded corners.  See
// [graphics.Emitter.RoundedRect] for the meaning of the arguments.
func (doc *Document) RoundedRect(x, y, w, h, r float64, corners string, style graphics.Style) {
	if p := doc.current(); p != nil {
		doc.fail("RoundedRect", p.draw.RoundedRect(x, y, w, h, r, corners, style))
	}
}

// Arc appends a Bézier segment from the current point to (x3, y3), with
// control points (x1, y1) and (x2, y2).
func (doc *Document) Arc(x1, y1, x2, y2, x3, y3 float64) {
	if p := doc.current(); p != nil {
		doc.fail("Arc", p.draw.Arc(x1, y1, x2, y2, x3, y3))
	}
}

// Circle draws a circle with centre (x, y) and radius r.
func (doc *Document) Circle(x, y, r float64, style graphics.Style) {
	if p := doc.current(); p != nil {
		doc.fail("Circle", p.draw.Circle(x, y, r, style))
	}
}

// Ellipse draws an ellipse with centre (x, y) and radii rx and ry.
func (doc *Document) Ellipse(x, y, rx, ry float64, style graphics.Style) {
	if p := doc.current(); p != nil {
		doc.fail("Ellipse", p.draw.Ellipse(x, y, rx, ry, style))
	}
}

// Polygon draws a closed polygon.  The vertices are given as a flat list
// of coordinates x0, y0, x1, y1, ...
func (doc *Document) Polygon(points []float64, style graphics.Style) {
	if p := doc.current(); p != nil {
		doc.fail("Polygon", p.draw.Polygon(points, style))
	}
}

// Code128 draws a Code 128 barcode with top-left corner (x, y).  Each
// module is barWidth units wide, and the bars are barHeight units high.
func (doc *Document) Code128(x, y float64, value string, barWidth, barHeight float64) {
	if p := doc.current(); p != nil {
		doc.fail("Code128", p.draw.Code128(x, y, value, barWidth, barHeight))
	}
}

// Rotate rotates everything drawn afterwards by angle degrees
// counterclockwise, around the current pen position.  An angle of 0
// removes the rotation.  Rotations do not accumulate: each call replaces
// the previous rotation.
func (doc *Document) Rotate(angle float64) {
	doc.RotateAt(angle, doc.x, doc.y)
}

// RotateAt is like [Document.Rotate], but rotates around (x, y).
func (doc *Document) RotateAt(angle, x, y float64) {
	p := doc.current()
	if p == nil {
		return
	}
	restores := p.rotation.State() == graphics.RotationActive
	if err := p.rotation.Rotate(angle, vec.Vec2{X: x, Y: y}); err != nil {
		doc.fail("RotateAt", err)
		return
	}
	if restores {
		doc.reselectFont()
	}
}

// Angle returns the current rotation angle in degrees.
func (doc *Document) Angle() float64 {
	if doc.page == nil {
		return 0
	}
	return doc.page.rotation.Angle()
}

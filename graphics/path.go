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

package graphics

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// kappa is the distance of the control points from the end points, for a
// cubic Bézier approximation of a quarter circle of radius 1.
var kappa = 4.0 / 3.0 * (math.Sqrt2 - 1)

// RoundedRect draws a rectangle with top-left corner (x, y), width w and
// height h, where the corners listed in corners are rounded with radius r.
//
// The corners are numbered in the order in which the outline is traversed:
// '1' is at (x, y), '2' at (x+w, y), '3' at (x+w, y+h) and '4' at (x, y+h).
// Corners not listed are drawn sharp.  If r is zero, all corners are sharp.
func (e *Emitter) RoundedRect(x, y, w, h, r float64, corners string, style Style) error {
	if !finite(x, y, w, h, r) {
		return fmt.Errorf("%w: non-finite rectangle %gx%g at (%g, %g), radius %g",
			ErrInvalidArgument, w, h, x, y, r)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: rectangle size %gx%g", ErrInvalidArgument, w, h)
	}
	if r < 0 {
		return fmt.Errorf("%w: negative corner radius %g", ErrInvalidArgument, r)
	}
	for _, c := range corners {
		if c < '1' || c > '4' {
			return fmt.Errorf("%w: unknown corner %q", ErrInvalidArgument, c)
		}
	}
	round := func(c byte) bool {
		return r > 0 && strings.IndexByte(corners, c) >= 0
	}
	arc := kappa * r

	p := e.newPath()
	p.moveTo(x+r, y)

	xc := x + w - r
	yc := y + r
	p.lineTo(xc, y)
	if round('2') {
		p.curveTo(xc+arc, yc-r, xc+r, yc-arc, xc+r, yc)
	} else {
		p.lineTo(x+w, y)
	}

	xc = x + w - r
	yc = y + h - r
	p.lineTo(x+w, yc)
	if round('3') {
		p.curveTo(xc+r, yc+arc, xc+arc, yc+r, xc, yc+r)
	} else {
		p.lineTo(x+w, y+h)
	}

	xc = x + r
	yc = y + h - r
	p.lineTo(xc, y+h)
	if round('4') {
		p.curveTo(xc-arc, yc+r, xc-r, yc+arc, xc-r, yc)
	} else {
		p.lineTo(x, y+h)
	}

	xc = x + r
	yc = y + r
	p.lineTo(x, yc)
	if round('1') {
		p.curveTo(xc-r, yc-arc, xc-arc, yc-r, xc, yc-r)
	} else {
		p.lineTo(x, y)
		p.lineTo(x+r, y)
	}

	p.paint(style.paintOp())
	p.flush()
	return nil
}

// Circle draws a circle with centre (x, y) and radius r.
func (e *Emitter) Circle(x, y, r float64, style Style) error {
	return e.Ellipse(x, y, r, r, style)
}

// Ellipse draws an axis-parallel ellipse with centre (x, y) and radii rx
// and ry.  The outline consists of four Bézier segments, starting at
// (x+rx, y).
func (e *Emitter) Ellipse(x, y, rx, ry float64, style Style) error {
	if !finite(x, y, rx, ry) || rx <= 0 || ry <= 0 {
		return fmt.Errorf("%w: ellipse at (%g, %g) with radii %g, %g",
			ErrInvalidArgument, x, y, rx, ry)
	}
	lx := kappa * rx
	ly := kappa * ry

	p := e.newPath()
	p.moveTo(x+rx, y)
	p.curveTo(x+rx, y-ly, x+lx, y-ry, x, y-ry)
	p.curveTo(x-lx, y-ry, x-rx, y-ly, x-rx, y)
	p.curveTo(x-rx, y+ly, x-lx, y+ry, x, y+ry)
	p.curveTo(x+lx, y+ry, x+rx, y+ly, x+rx, y)
	p.paint(style.paintOp())
	p.flush()
	return nil
}

// Polygon draws a closed polygon.  The vertices are given as a flat list
// of coordinates x0, y0, x1, y1, ...
func (e *Emitter) Polygon(points []float64, style Style) error {
	if len(points) == 0 || len(points)%2 != 0 {
		return fmt.Errorf("%w: %d polygon coordinates", ErrInvalidArgument, len(points))
	}
	if !finite(points...) {
		return fmt.Errorf("%w: non-finite polygon coordinate", ErrInvalidArgument)
	}

	p := e.newPath()
	p.moveTo(points[0], points[1])
	for i := 2; i < len(points); i += 2 {
		p.lineTo(points[i], points[i+1])
	}
	p.paint(style.closeOp())
	p.flush()
	return nil
}

// PolygonPoints draws a closed polygon with the given vertices.
func (e *Emitter) PolygonPoints(vertices []vec.Vec2, style Style) error {
	points := make([]float64, 0, 2*len(vertices))
	for _, v := range vertices {
		points = append(points, v.X, v.Y)
	}
	return e.Polygon(points, style)
}

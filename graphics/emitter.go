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

	"seehuhn.de/go/pdfdraw/internal/float"
)

// An Emitter writes shapes to a content stream.
//
// Coordinates passed to the methods of an Emitter are in user space.
// They are converted to device space using
//
//	deviceX = x * scale
//	deviceY = (height - y) * scale
//
// where height and scale are taken from the [PageSpace] at the time of
// the call.
type Emitter struct {
	sink  Sink
	space PageSpace
}

// NewEmitter returns an Emitter which writes to sink, using the coordinate
// system described by space.
func NewEmitter(sink Sink, space PageSpace) *Emitter {
	return &Emitter{sink: sink, space: space}
}

// Device converts a point from user space to device space.
func (e *Emitter) Device(x, y float64) (float64, float64) {
	k := e.space.Scale()
	return x * k, (e.space.HeightUnits() - y) * k
}

// Rect draws a rectangle with top-left corner (x, y), width w and height
// h.  The width and height must be positive.
//
// This uses the PDF graphics operator "re".
func (e *Emitter) Rect(x, y, w, h float64, style Style) error {
	if !finite(x, y, w, h) || w <= 0 || h <= 0 {
		return fmt.Errorf("%w: rectangle %gx%g at (%g, %g)", ErrInvalidArgument, w, h, x, y)
	}
	p := e.newPath()
	p.rect(x, y, w, h)
	p.paint(style.paintOp())
	p.flush()
	return nil
}

// Line draws a straight line from (x1, y1) to (x2, y2).
func (e *Emitter) Line(x1, y1, x2, y2 float64) error {
	if !finite(x1, y1, x2, y2) {
		return fmt.Errorf("%w: line from (%g, %g) to (%g, %g)", ErrInvalidArgument, x1, y1, x2, y2)
	}
	p := e.newPath()
	p.moveTo(x1, y1)
	p.lineTo(x2, y2)
	p.paint("S")
	p.flush()
	return nil
}

// Arc appends a cubic Bézier segment to the current path.  The segment
// starts at the current point, uses (x1, y1) and (x2, y2) as control points
// and ends at (x3, y3).
//
// This uses the PDF graphics operator "c".
func (e *Emitter) Arc(x1, y1, x2, y2, x3, y3 float64) error {
	if !finite(x1, y1, x2, y2, x3, y3) {
		return fmt.Errorf("%w: non-finite curve point", ErrInvalidArgument)
	}
	p := e.newPath()
	p.curveTo(x1, y1, x2, y2, x3, y3)
	p.flush()
	return nil
}

// finite reports whether none of the values is NaN or infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// path collects the operators of one shape, so that nothing reaches the
// sink before the shape is complete.
type path struct {
	e      *Emitter
	k, h   float64
	tokens []string
}

func (e *Emitter) newPath() *path {
	return &path{
		e: e,
		k: e.space.Scale(),
		h: e.space.HeightUnits(),
	}
}

func (p *path) point(x, y float64) string {
	return float.Format(x*p.k, 2) + " " + float.Format((p.h-y)*p.k, 2)
}

func (p *path) moveTo(x, y float64) {
	p.tokens = append(p.tokens, p.point(x, y)+" m")
}

func (p *path) lineTo(x, y float64) {
	p.tokens = append(p.tokens, p.point(x, y)+" l")
}

func (p *path) curveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.tokens = append(p.tokens,
		strings.Join([]string{p.point(x1, y1), p.point(x2, y2), p.point(x3, y3), "c"}, " "))
}

func (p *path) rect(x, y, w, h float64) {
	p.tokens = append(p.tokens,
		strings.Join([]string{
			p.point(x, y),
			float.Format(w*p.k, 2),
			float.Format(-h*p.k, 2),
			"re",
		}, " "))
}

// paint appends a painting operator.  For rectangles, the operator is
// merged into the preceding "re" token.
func (p *path) paint(op string) {
	n := len(p.tokens)
	if n > 0 && strings.HasSuffix(p.tokens[n-1], " re") {
		p.tokens[n-1] += " " + op
		return
	}
	p.tokens = append(p.tokens, op)
}

func (p *path) flush() {
	for _, tok := range p.tokens {
		p.e.sink.AppendRaw(tok)
	}
	p.tokens = nil
}

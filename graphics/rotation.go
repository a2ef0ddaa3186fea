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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw/internal/float"
)

// RotationState tells whether a rotation is in effect.
type RotationState int

// These are the two states of a [Rotation].
const (
	// RotationIdle means that no rotation is in effect and no graphics state
	// has been saved.
	RotationIdle RotationState = iota

	// RotationActive means that the graphics state has been saved and a
	// rotation has been applied.  A matching "Q" is still outstanding.
	RotationActive
)

func (s RotationState) String() string {
	if s == RotationActive {
		return "active"
	}
	return "idle"
}

// A Rotation rotates the content of a page around an anchor point.
//
// Each rotation saves the graphics state with "q" before changing the
// current transformation matrix.  A new rotation first restores the state
// saved by the previous one, so at most one "q" is outstanding at any
// time.  [Rotation.EndPage] must be called before the content stream of the
// page is completed.
type Rotation struct {
	sink  Sink
	space PageSpace

	state  RotationState
	angle  float64
	anchor vec.Vec2

	// ctm is the product of all matrices emitted since the last "q".
	ctm matrix.Matrix
}

// NewRotation returns a Rotation in the idle state.
func NewRotation(sink Sink, space PageSpace) *Rotation {
	return &Rotation{sink: sink, space: space, ctm: matrix.Identity}
}

// Rotate sets the rotation angle, in degrees counterclockwise, for content
// drawn from now on.  The rotation is around the anchor point, given in
// user space.  An angle of 0 removes any rotation.
//
// If the angle or the anchor are not finite, an error is returned and the
// current rotation is left unchanged.
func (r *Rotation) Rotate(angle float64, anchor vec.Vec2) error {
	if angle != 0 && !finite(angle, anchor.X, anchor.Y) {
		return fmt.Errorf("%w: rotation by %g around %v", ErrInvalidArgument, angle, anchor)
	}

	r.restore()
	if angle == 0 {
		return nil
	}

	r.state = RotationActive
	r.angle = angle
	r.anchor = anchor

	c, s := r.cosSin()
	cx, cy := r.center()
	r.sink.AppendRaw("q")
	r.transform(matrix.Matrix{c, s, -s, c, cx, cy})
	r.transform(matrix.Matrix{1, 0, 0, 1, -cx, -cy})
	return nil
}

// transform concatenates m to the current transformation matrix.
//
// This uses the PDF graphics operator "cm".
func (r *Rotation) transform(m matrix.Matrix) {
	r.ctm = m.Mul(r.ctm)
	r.sink.AppendRaw(strings.Join([]string{
		float.Format(m[0], 5), float.Format(m[1], 5),
		float.Format(m[2], 5), float.Format(m[3], 5),
		float.Format(m[4], 2), float.Format(m[5], 2),
		"cm",
	}, " "))
}

// restore emits "Q" if a rotation is active.
func (r *Rotation) restore() {
	if r.state == RotationActive {
		r.sink.AppendRaw("Q")
	}
	r.state = RotationIdle
	r.angle = 0
	r.ctm = matrix.Identity
}

// EndPage restores the graphics state if a rotation is active.
// This must be called once the page content is complete.
func (r *Rotation) EndPage() {
	r.restore()
}

// RotatedDraw calls draw with the given rotation in effect, and removes the
// rotation afterwards.  The rotation is removed even if draw returns an
// error.  If the rotation is invalid, draw is not called.
func (r *Rotation) RotatedDraw(angle float64, anchor vec.Vec2, draw func() error) error {
	if err := r.Rotate(angle, anchor); err != nil {
		return err
	}
	defer r.restore()
	return draw()
}

// State returns the current state.
func (r *Rotation) State() RotationState {
	return r.state
}

// Angle returns the current rotation angle in degrees.
// The angle is zero while the rotation is idle.
func (r *Rotation) Angle() float64 {
	return r.angle
}

// Anchor returns the point, in user space, around which content is
// currently rotated.  The second return value is false if no rotation is
// active.
func (r *Rotation) Anchor() (vec.Vec2, bool) {
	return r.anchor, r.state == RotationActive
}

// Matrix returns the transformation applied to device space coordinates
// by the current rotation.  This is the product of the matrices written to
// the content stream since the graphics state was saved.
func (r *Rotation) Matrix() matrix.Matrix {
	return r.ctm
}

func (r *Rotation) cosSin() (float64, float64) {
	phi := r.angle * math.Pi / 180
	return math.Cos(phi), math.Sin(phi)
}

// center returns the anchor point in device space.
func (r *Rotation) center() (float64, float64) {
	k := r.space.Scale()
	return r.anchor.X * k, (r.space.HeightUnits() - r.anchor.Y) * k
}

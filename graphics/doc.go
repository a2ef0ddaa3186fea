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

// Package graphics emits vector shapes, barcodes and rotations into PDF
// content streams.
//
// Shapes are specified in user space, which has its origin in the top-left
// corner of the page and the y-axis pointing downwards.  An [Emitter] maps
// user space to PDF device space using the page height and the scale factor
// of a [PageSpace], and hands the resulting operators to a [Sink].
//
// Every drawing method validates its arguments before any output is
// produced: a method which returns an error has not written anything.
//
// A [Rotation] keeps track of the "q"/"Q" pairs used to rotate parts of a
// page, so that the graphics state nesting stays balanced when a page ends.
package graphics

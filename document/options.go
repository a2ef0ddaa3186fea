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

	"seehuhn.de/go/pdfdraw/pdf"
)

// Options control the page layout and the output format of a [Document].
type Options struct {
	// Orientation is the orientation of all pages.
	Orientation Orientation

	// Unit is the unit for all coordinates and lengths passed to the
	// document, except for font sizes which are always given in points.
	Unit Unit

	// PageSize is the paper size in portrait orientation, in PDF points.
	// The zero value selects A4.
	PageSize rect.Rect

	// Margin is the page margin in user units.  The pen is placed at the
	// top-left margin corner when a new page is started.
	Margin float64

	// Version is the PDF version of the output.  The zero value selects
	// PDF 1.7.
	Version pdf.Version

	// Uncompressed disables compression of the content streams.
	Uncompressed bool

	// HumanReadable makes the output easier to inspect, by disabling
	// compression and adding comments.
	HumanReadable bool
}

// defaultOptions are used when nil is passed to [New].
var defaultOptions = Options{
	Orientation: Portrait,
	Unit:        Millimetre,
	PageSize:    A4,
	Margin:      20,
	Version:     pdf.V1_7,
}

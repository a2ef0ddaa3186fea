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
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Default paper sizes, in PDF points.
var (
	A3     = rect.Rect{URx: 841.89, URy: 1190.55}
	A4     = rect.Rect{URx: 595.28, URy: 841.89}
	A5     = rect.Rect{URx: 420.94, URy: 595.28}
	Letter = rect.Rect{URx: 612, URy: 792}
	Legal  = rect.Rect{URx: 612, URy: 1008}
)

// PaperSize returns the paper size with the given name.  The names "A3",
// "A4", "A5", "Letter" and "Legal" are recognised, ignoring case.
func PaperSize(name string) (rect.Rect, error) {
	switch strings.ToLower(name) {
	case "a3":
		return A3, nil
	case "a4":
		return A4, nil
	case "a5":
		return A5, nil
	case "letter":
		return Letter, nil
	case "legal":
		return Legal, nil
	}
	return rect.Rect{}, fmt.Errorf("unknown paper size %q", name)
}

// Unit is the user unit of a document.
type Unit int

// These are the supported user units.
const (
	Millimetre Unit = iota
	Point
	Centimetre
	Inch
)

// Scale returns the size of the unit in PDF points.
func (u Unit) Scale() float64 {
	switch u {
	case Point:
		return 1
	case Centimetre:
		return 72 / 2.54
	case Inch:
		return 72
	default:
		return 72 / 25.4
	}
}

func (u Unit) String() string {
	switch u {
	case Point:
		return "pt"
	case Centimetre:
		return "cm"
	case Inch:
		return "in"
	default:
		return "mm"
	}
}

// ParseUnit converts one of the unit names "pt", "mm", "cm" or "in" into
// a [Unit].
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "pt":
		return Point, nil
	case "mm":
		return Millimetre, nil
	case "cm":
		return Centimetre, nil
	case "in":
		return Inch, nil
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

// Orientation selects portrait or landscape pages.
type Orientation int

// These are the supported page orientations.
const (
	Portrait Orientation = iota
	Landscape
)

// ParseOrientation converts "P"/"portrait" or "L"/"landscape" into an
// [Orientation].
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "p", "portrait":
		return Portrait, nil
	case "l", "landscape":
		return Landscape, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

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

// Style selects how a closed shape is painted.
type Style int

// These are the supported painting styles.
const (
	Stroke Style = iota
	Fill
	FillAndStroke
)

// ParseStyle converts a style string in the traditional notation into a
// [Style].  "F" selects filling, "FD" and "DF" select filling and stroking.
// Any other value, including the empty string and "D", selects stroking.
func ParseStyle(s string) Style {
	switch s {
	case "F":
		return Fill
	case "FD", "DF":
		return FillAndStroke
	default:
		return Stroke
	}
}

func (s Style) String() string {
	switch s {
	case Fill:
		return "F"
	case FillAndStroke:
		return "FD"
	default:
		return "D"
	}
}

// paintOp returns the operator which paints a path that is already closed
// or which should be painted without closing it.
func (s Style) paintOp() string {
	switch s {
	case Fill:
		return "f"
	case FillAndStroke:
		return "B"
	default:
		return "S"
	}
}

// closeOp returns the operator which closes the current subpath before
// painting it.
func (s Style) closeOp() string {
	switch s {
	case Fill:
		return "f"
	case FillAndStroke:
		return "b"
	default:
		return "s"
	}
}

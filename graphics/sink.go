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

import "errors"

// ErrInvalidArgument is returned when the dimensions or options of a shape
// are invalid.
var ErrInvalidArgument = errors.New("graphics: invalid argument")

// A Sink receives content stream operators.  Each token is a complete
// operator together with its operands, for example "10 20 m".
type Sink interface {
	AppendRaw(token string)
}

// PageSpace describes the user coordinate system of a page.
type PageSpace interface {
	// HeightUnits returns the page height in user units.
	HeightUnits() float64

	// Scale returns the number of PDF points per user unit.
	Scale() float64
}

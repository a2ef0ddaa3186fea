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

	"seehuhn.de/go/pdfdraw/code128"
)

// Code128 draws a Code 128 barcode for value, with the top-left corner of
// the start symbol at (x, y).  Each module is barWidth user units wide and
// all bars are barHeight units high.  The value must consist of printable
// ASCII characters.
//
// Every bar is drawn as a filled rectangle.  If an error is returned,
// nothing has been drawn.
func (e *Emitter) Code128(x, y float64, value string, barWidth, barHeight float64) error {
	if !finite(x, y, barWidth, barHeight) || barWidth <= 0 || barHeight <= 0 {
		return fmt.Errorf("%w: bar size %gx%g at (%g, %g)",
			ErrInvalidArgument, barWidth, barHeight, x, y)
	}
	bars, _, err := code128.Layout(value)
	if err != nil {
		return err
	}

	p := e.newPath()
	for _, bar := range bars {
		p.rect(x+float64(bar.Offset)*barWidth, y, float64(bar.Width)*barWidth, barHeight)
		p.paint(Fill.paintOp())
	}
	p.flush()
	return nil
}

// Code128Width returns the width of the barcode for value in user units.
func Code128Width(value string, barWidth float64) (float64, error) {
	_, modules, err := code128.Layout(value)
	if err != nil {
		return 0, err
	}
	return float64(modules) * barWidth, nil
}

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

	"seehuhn.de/go/pdfdraw/graphics"
)

// LineMove tells [Document.Cell] where to place the pen after the cell is
// drawn.
type LineMove int

// These are the possible pen movements after a cell.
const (
	// MoveRight places the pen at the top-right corner of the cell.
	MoveRight LineMove = iota

	// MoveNextLine places the pen at the left margin, below the cell.
	MoveNextLine

	// MoveBelow places the pen at the bottom-left corner of the cell.
	MoveBelow
)

// CellMargin returns the horizontal space between the border of a cell
// and its text, in user units.
func (doc *Document) CellMargin() float64 {
	return doc.cMargin
}

// SetCellMargin sets the horizontal space between the border of a cell
// and its text.  The default is 1mm.
func (doc *Document) SetCellMargin(m float64) {
	doc.cMargin = m
}

// currentMetrics returns the metrics of the current font.  If no metrics are
// available, the document error is set and nil is returned.
func (doc *Document) currentMetrics(op string) *fontMetrics {
	switch {
	case doc.Err != nil:
		return nil
	case doc.font == nil:
		doc.fail(op, fmt.Errorf("%w: no font selected", ErrUnknownFont))
		return nil
	case doc.font.metrics == nil:
		doc.fail(op, fmt.Errorf("%w: no metrics for %s", ErrUnknownFont, doc.font.BaseFont))
		return nil
	}
	return doc.font.metrics
}

// StringWidth returns the width of s in the current font, in user units.
func (doc *Document) StringWidth(s string) float64 {
	m := doc.currentMetrics("StringWidth")
	if m == nil {
		return 0
	}
	return m.width(encodeWinAnsi(s)) * doc.fontSize / 1000 / doc.k
}

// Cell draws a cell with top-left corner at the pen position, optionally
// with borders, background and a single line of text.
//
// If w is 0, the cell extends to the right margin.  The border is either
// "" for no border, "1" for a frame, or a combination of the letters 'L',
// 'T', 'R' and 'B' for individual sides.  The text is vertically centred
// and aligned according to align, which is "L" (the default), "C" or "R".
// If fill is set, the background is painted with the fill colour.  After
// the call, the pen is moved as given by ln.
func (doc *Document) Cell(w, h float64, txt, border string, ln LineMove, align string, fill bool) {
	doc.cell("Cell", w, h, encodeWinAnsi(txt), border, ln, align, fill)
}

func (doc *Document) cell(op string, w, h float64, txt []byte, border string, ln LineMove, align string, fill bool) {
	p := doc.current()
	if p == nil {
		return
	}
	var m *fontMetrics
	if len(txt) > 0 {
		if m = doc.currentMetrics(op); m == nil {
			return
		}
	}

	if w == 0 {
		w = doc.PageWidth() - doc.opt.Margin - doc.x
	}
	x, y := doc.x, doc.y

	if (fill || border == "1") && w > 0 && h > 0 {
		style := graphics.Stroke
		if fill && border == "1" {
			style = graphics.FillAndStroke
		} else if fill {
			style = graphics.Fill
		}
		doc.fail(op, p.draw.Rect(x, y, w, h, style))
	}
	if border != "1" {
		if strings.Contains(border, "L") {
			doc.fail(op, p.draw.Line(x, y, x, y+h))
		}
		if strings.Contains(border, "T") {
			doc.fail(op, p.draw.Line(x, y, x+w, y))
		}
		if strings.Contains(border, "R") {
			doc.fail(op, p.draw.Line(x+w, y, x+w, y+h))
		}
		if strings.Contains(border, "B") {
			doc.fail(op, p.draw.Line(x, y+h, x+w, y+h))
		}
	}

	if len(txt) > 0 {
		size := doc.fontSize / doc.k
		var dx float64
		switch align {
		case "R":
			dx = w - doc.cMargin - m.width(txt)*size/1000
		case "C":
			dx = (w - m.width(txt)*size/1000) / 2
		default:
			dx = doc.cMargin
		}
		doc.showText(op, x+dx, y+.5*h+.3*size, txt)
	}
	if doc.Err != nil {
		return
	}

	switch ln {
	case MoveNextLine:
		doc.x = doc.opt.Margin
		doc.y += h
	case MoveBelow:
		doc.y += h
	default:
		doc.x += w
	}
}

// Write prints text starting at the pen position, in lines of height h.
// Lines are broken at spaces when the right margin is reached, or at
// newline characters.  Continuation lines start at the left margin.  A
// word which is too long for a whole line is broken between characters.
// After the call, the pen is placed at the end of the text.
func (doc *Document) Write(h float64, txt string) {
	if doc.current() == nil {
		return
	}
	m := doc.currentMetrics("Write")
	if m == nil {
		return
	}

	s := encodeWinAnsi(strings.ReplaceAll(txt, "\r", ""))
	size := doc.fontSize / doc.k
	left := doc.opt.Margin

	var w, wMax float64
	setWidth := func() {
		w = doc.PageWidth() - doc.opt.Margin - doc.x
		wMax = (w - 2*doc.cMargin) * 1000 / size
	}
	setWidth()

	first := true
	newLine := func() {
		if first {
			doc.x = left
			setWidth()
		}
		first = false
	}

	sep, i, j := -1, 0, 0
	var l float64
	for i < len(s) && doc.Err == nil {
		c := s[i]
		if c == '\n' {
			doc.cell("Write", w, h, s[j:i], "", MoveBelow, "", false)
			i++
			sep, j, l = -1, i, 0
			newLine()
			continue
		}
		if c == ' ' {
			sep = i
		}
		l += m.widths[c]
		if l <= wMax {
			i++
			continue
		}

		if sep == -1 {
			if doc.x > left {
				// continue the word at the start of the next line
				doc.x = left
				doc.y += h
				setWidth()
				i++
				first = false
				continue
			}
			if i == j {
				i++
			}
			doc.cell("Write", w, h, s[j:i], "", MoveBelow, "", false)
		} else {
			doc.cell("Write", w, h, s[j:sep], "", MoveBelow, "", false)
			i = sep + 1
		}
		sep, j, l = -1, i, 0
		newLine()
	}
	if i != j && doc.Err == nil {
		doc.cell("Write", l*size/1000, h, s[j:], "", MoveRight, "", false)
	}
}

// WriteXY moves the pen to (x, y) and then calls [Document.Write].
func (doc *Document) WriteXY(x, y, h float64, txt string) {
	doc.SetXY(x, y)
	doc.Write(h, txt)
}

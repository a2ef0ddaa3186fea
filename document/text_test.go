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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
)

func TestStandardMetrics(t *testing.T) {
	var names []string
	for _, styles := range standardFonts {
		names = append(names, styles[:]...)
	}
	for _, name := range symbolicFonts {
		names = append(names, name)
	}
	for _, name := range names {
		m := standardMetrics(name)
		if m == nil {
			t.Errorf("%s: no metrics", name)
			continue
		}
		for code, w := range m.widths {
			if w <= 0 {
				t.Errorf("%s: width %g for code %d", name, w, code)
				break
			}
		}
	}

	if m := standardMetrics("Courier-Bold"); m.width([]byte("Wi ll")) != 5*600 {
		t.Errorf("Courier-Bold is not fixed pitch")
	}

	helvetica := standardMetrics("Helvetica")
	cases := []struct {
		code byte
		want float64
	}{
		{'A', 667},
		{'i', 222},
		{0xE9, 556}, // eacute, measured as e
		{0xC4, 667}, // Adieresis, measured as A
		{0x80, 556}, // Euro, measured as the digit zero
	}
	for _, c := range cases {
		if got := helvetica.widths[c.code]; got != c.want {
			t.Errorf("Helvetica code %d: width %g, want %g", c.code, got, c.want)
		}
	}

	if standardMetrics("Custom-Heavy") != nil {
		t.Error("metrics for an unknown font")
	}
}

func TestStringWidth(t *testing.T) {
	doc := newPointDoc(t)
	cases := []struct {
		family, style string
		size          float64
		text          string
		want          float64
	}{
		{"Helvetica", "", 10, "Hello", 22.78},
		{"Helvetica", "U", 10, "Hello", 22.78},
		{"Helvetica", "B", 10, "Hello", 24.45},
		{"Courier", "BI", 12, "abc", 21.6},
		{"Times", "", 10, "Hello", 22.22},
		{"Helvetica", "", 10, "é", 5.56},
		{"Symbol", "", 10, "a", 6.31},
		{"Helvetica", "", 10, "", 0},
	}
	for _, c := range cases {
		doc.SetFont(c.family, c.style, c.size)
		got := doc.StringWidth(c.text)
		if doc.Err != nil {
			t.Fatal(doc.Err)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s %q %g: width of %q is %g, want %g",
				c.family, c.style, c.size, c.text, got, c.want)
		}
	}

	// widths are returned in user units
	mm, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	mm.SetFont("Helvetica", "", 10)
	if got, want := mm.StringWidth("Hello"), 22.78*25.4/72; math.Abs(got-want) > 1e-9 {
		t.Errorf("width in mm: got %g, want %g", got, want)
	}

	// fonts added under a different family keep their metrics
	doc.AddFont("Sans", "", "Helvetica")
	doc.SetFont("Sans", "", 10)
	if got := doc.StringWidth("Hello"); math.Abs(got-22.78) > 1e-9 {
		t.Errorf("added standard font: width %g", got)
	}
}

func TestStringWidthUnknown(t *testing.T) {
	doc := newPointDoc(t)
	doc.StringWidth("x")
	if !errors.Is(doc.Err, ErrUnknownFont) {
		t.Errorf("no font: got %v", doc.Err)
	}

	doc = newPointDoc(t)
	doc.AddFont("Custom", "", "Custom-Regular")
	doc.SetFont("Custom", "", 10)
	if w := doc.StringWidth("x"); w != 0 || !errors.Is(doc.Err, ErrUnknownFont) {
		t.Errorf("font without metrics: width %g, error %v", w, doc.Err)
	}
}

func TestUnderline(t *testing.T) {
	doc := newPointDoc(t)
	doc.AddPage()
	doc.SetFont("Helvetica", "U", 10)
	doc.Text(10, 20, "Hello")
	tokens := doc.Page().Content()
	want := []string{
		"BT 10 821.89 Td (Hello) Tj ET",
		"10 820.89 22.78 -.5 re f",
	}
	if diff := cmp.Diff(tokens[len(tokens)-2:], want); diff != "" {
		t.Errorf("underlined text (-got +want):\n%s", diff)
	}

	// empty strings are not underlined
	n := len(doc.Page().Content())
	doc.Text(10, 20, "")
	if got := len(doc.Page().Content()) - n; got != 1 {
		t.Errorf("empty text: %d tokens", got)
	}

	doc.SetFont("Helvetica", "", 10)
	doc.Text(10, 20, "Hello")
	if tok := lastToken(doc.Page()); !strings.HasSuffix(tok, " Tj ET") {
		t.Errorf("text without underline ends with %q", tok)
	}

	// underlining needs metrics
	doc = newPointDoc(t)
	doc.AddPage()
	doc.AddFont("Custom", "", "Custom-Regular")
	doc.SetFont("Custom", "U", 10)
	n = len(doc.Page().Content())
	doc.Text(10, 20, "Hello")
	if !errors.Is(doc.Err, ErrUnknownFont) || len(doc.Page().Content()) != n {
		t.Errorf("underline without metrics: got %v", doc.Err)
	}
}

func TestCell(t *testing.T) {
	doc := newPointDoc(t)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)
	start := len(doc.Page().Content())

	doc.SetXY(10, 20)
	doc.Cell(100, 20, "Hi", "1", MoveRight, "C", true)
	if !penAt(doc, 110, 20) {
		t.Errorf("pen after MoveRight: (%g, %g)", doc.X(), doc.Y())
	}
	doc.Cell(0, 10, "", "LB", MoveNextLine, "", false)
	if !penAt(doc, 10, 30) {
		t.Errorf("pen after MoveNextLine: (%g, %g)", doc.X(), doc.Y())
	}
	doc.SetCellMargin(2)
	doc.Cell(50, 10, "Hi", "", MoveBelow, "R", false)
	if !penAt(doc, 10, 40) {
		t.Errorf("pen after MoveBelow: (%g, %g)", doc.X(), doc.Y())
	}
	if doc.Err != nil {
		t.Fatal(doc.Err)
	}

	want := []string{
		"10 821.89 100 -20 re B",
		"BT 55.28 808.89 Td (Hi) Tj ET",
		"110 821.89 m",
		"110 811.89 l",
		"S",
		"110 811.89 m",
		"585.28 811.89 l",
		"S",
		"BT 48.56 803.89 Td (Hi) Tj ET",
	}
	if diff := cmp.Diff(doc.Page().Content()[start:], want); diff != "" {
		t.Errorf("cells (-got +want):\n%s", diff)
	}
}

func penAt(doc *Document, x, y float64) bool {
	return math.Abs(doc.X()-x) < 1e-9 && math.Abs(doc.Y()-y) < 1e-9
}

func newNarrowDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := New(&Options{
		Unit:     Point,
		Margin:   10,
		PageSize: rect.Rect{URx: 100, URy: 200},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc.AddPage()
	doc.SetFont("Courier", "", 10)
	doc.SetCellMargin(0)
	return doc
}

func shownText(p *Page) []string {
	var res []string
	for _, tok := range p.Content() {
		if strings.HasSuffix(tok, " Tj ET") {
			res = append(res, tok)
		}
	}
	return res
}

func TestWrite(t *testing.T) {
	doc := newNarrowDoc(t)

	// 13 characters of 6pt fit into the 80pt between the margins
	doc.SetXY(10, 20)
	doc.Write(10, "aaaa bbbb cccc dddd")
	if !penAt(doc, 64, 30) {
		t.Errorf("pen after first text: (%g, %g)", doc.X(), doc.Y())
	}

	doc.Write(10, "ee\nff")
	if !penAt(doc, 22, 40) {
		t.Errorf("pen after newline: (%g, %g)", doc.X(), doc.Y())
	}

	// a word which does not fit into the rest of the line
	doc.Write(10, "hhhhhhhhhhhh")
	if !penAt(doc, 82, 50) {
		t.Errorf("pen after moved word: (%g, %g)", doc.X(), doc.Y())
	}

	// a word which is longer than a line
	doc.SetXY(10, 100)
	doc.Write(10, strings.Repeat("i", 15))
	if !penAt(doc, 22, 110) {
		t.Errorf("pen after broken word: (%g, %g)", doc.X(), doc.Y())
	}

	doc.WriteXY(30, 150, 10, "z")
	if !penAt(doc, 36, 150) {
		t.Errorf("pen after WriteXY: (%g, %g)", doc.X(), doc.Y())
	}
	if doc.Err != nil {
		t.Fatal(doc.Err)
	}

	want := []string{
		"BT 10 172 Td (aaaa bbbb) Tj ET",
		"BT 10 162 Td (cccc dddd) Tj ET",
		"BT 64 162 Td (ee) Tj ET",
		"BT 10 152 Td (ff) Tj ET",
		"BT 10 142 Td (hhhhhhhhhhhh) Tj ET",
		"BT 10 92 Td (iiiiiiiiiiiii) Tj ET",
		"BT 10 82 Td (ii) Tj ET",
		"BT 30 42 Td (z) Tj ET",
	}
	if diff := cmp.Diff(shownText(doc.Page()), want); diff != "" {
		t.Errorf("written lines (-got +want):\n%s", diff)
	}
}

func TestWriteErrors(t *testing.T) {
	doc := newPointDoc(t)
	doc.Write(10, "no page")
	if !errors.Is(doc.Err, ErrNoPage) {
		t.Errorf("no page: got %v", doc.Err)
	}

	doc = newPointDoc(t)
	doc.AddPage()
	n := len(doc.Page().Content())
	doc.Write(10, "no font")
	if !errors.Is(doc.Err, ErrUnknownFont) {
		t.Errorf("no font: got %v", doc.Err)
	}

	doc = newPointDoc(t)
	doc.AddPage()
	n = len(doc.Page().Content())
	doc.Cell(10, 10, "no font", "", MoveRight, "", false)
	if !errors.Is(doc.Err, ErrUnknownFont) || len(doc.Page().Content()) != n {
		t.Errorf("cell without font: got %v", doc.Err)
	}
}

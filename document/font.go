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
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/internal/float"
	"seehuhn.de/go/pdfdraw/pdf"
)

// fontState describes one registered font.
type fontState struct {
	Family   string
	Style    string
	BaseFont string

	// metrics is nil for fonts other than the standard 14 fonts.
	metrics *fontMetrics

	resName pdf.Name
	used    bool
}

// fontRegistry holds the fonts known to a document.  Fonts are referenced
// by name and must be available in the PDF viewer, as is the case for the
// standard 14 fonts.
type fontRegistry struct {
	fonts map[string]*fontState // keyed by family + style
	order []*fontState

	// added lists the styles registered with AddFont, per family.
	added map[string][]string
}

var standardFonts = map[string][4]string{
	"courier":   {"Courier", "Courier-Bold", "Courier-Oblique", "Courier-BoldOblique"},
	"helvetica": {"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique"},
	"times":     {"Times-Roman", "Times-Bold", "Times-Italic", "Times-BoldItalic"},
}

var symbolicFonts = map[string]string{
	"symbol":       "Symbol",
	"zapfdingbats": "ZapfDingbats",
}

var styleIndex = map[string]int{"": 0, "B": 1, "I": 2, "BI": 3}

func newFontRegistry() *fontRegistry {
	return &fontRegistry{
		fonts: make(map[string]*fontState),
		added: make(map[string][]string),
	}
}

// lookup returns the font for the given family and normalised style.
// Standard fonts are registered on first use.
func (r *fontRegistry) lookup(family, style string) *fontState {
	if f, ok := r.fonts[family+style]; ok {
		return f
	}
	if names, ok := standardFonts[family]; ok {
		return r.register(family, style, names[styleIndex[style]])
	}
	if name, ok := symbolicFonts[family]; ok && style == "" {
		return r.register(family, style, name)
	}
	return nil
}

func (r *fontRegistry) register(family, style, baseFont string) *fontState {
	f := &fontState{
		Family:   family,
		Style:    style,
		BaseFont: baseFont,
		metrics:  standardMetrics(baseFont),
		resName:  pdf.Name("F" + strconv.Itoa(len(r.order)+1)),
	}
	r.fonts[family+style] = f
	r.order = append(r.order, f)
	return f
}

// normalizeFamily converts a family name to the registry key.
func normalizeFamily(family string) string {
	family = strings.ToLower(family)
	if family == "arial" {
		family = "helvetica"
	}
	return family
}

// normalizeStyle removes the underline flag from style and returns the
// remaining style in canonical form.
func normalizeStyle(style string) (string, bool) {
	style = strings.ToUpper(style)
	underline := strings.Contains(style, "U")
	bold := strings.Contains(style, "B")
	italic := strings.Contains(style, "I")
	res := ""
	if bold {
		res += "B"
	}
	if italic {
		res += "I"
	}
	return res, underline
}

// AddFont makes a font available under the given family name and style.
// The style is "", "B", "I" or "BI".  The font is referenced by its
// PostScript name baseFont, which must be known to the PDF viewer.  If
// baseFont is empty, the name is derived from the family and the style.
//
// Text widths are only known if baseFont is one of the standard 14 fonts.
// For other fonts, [Document.StringWidth], [Document.Cell],
// [Document.Write] and underlined text fail with [ErrUnknownFont].
func (doc *Document) AddFont(family, style, baseFont string) {
	if !doc.usable() {
		return
	}
	key := normalizeFamily(family)
	st, _ := normalizeStyle(style)
	if key == "" {
		doc.fail("AddFont", fmt.Errorf("%w: empty family name", ErrUnknownFont))
		return
	}
	if baseFont == "" {
		baseFont = family
		switch st {
		case "B":
			baseFont += "-Bold"
		case "I":
			baseFont += "-Italic"
		case "BI":
			baseFont += "-BoldItalic"
		}
	}

	r := doc.fonts
	if f, ok := r.fonts[key+st]; ok {
		f.BaseFont = baseFont
		f.metrics = standardMetrics(baseFont)
	} else {
		r.register(key, st, baseFont)
	}
	if !slices.Contains(r.added[key], st) {
		r.added[key] = append(r.added[key], st)
	}
}

// AddedFonts returns the families and styles registered with
// [Document.AddFont].
func (doc *Document) AddedFonts() map[string][]string {
	res := make(map[string][]string, len(doc.fonts.added))
	for family, styles := range doc.fonts.added {
		res[family] = append([]string(nil), styles...)
	}
	return res
}

// SetFont selects the font used for text.  The style may
// contain 'B' for bold, 'I' for italic and 'U' for underlined text.  If
// the family was registered with [Document.AddFont] but not in the
// requested style, the plain style is used if available, and otherwise
// the first style registered.  A size of 0 keeps the current size.
func (doc *Document) SetFont(family, style string, size float64) {
	if !doc.usable() {
		return
	}
	key := normalizeFamily(family)
	st, underline := normalizeStyle(style)
	if _, ok := symbolicFonts[key]; ok {
		st = ""
	}

	if styles, ok := doc.fonts.added[key]; ok && !slices.Contains(styles, st) {
		if slices.Contains(styles, "") {
			st = ""
		} else {
			st = styles[0]
		}
	}

	f := doc.fonts.lookup(key, st)
	if f == nil {
		doc.fail("SetFont", fmt.Errorf("%w: %s %q", ErrUnknownFont, family, st))
		return
	}
	if size > 0 {
		doc.fontSize = size
	}
	doc.font = f
	doc.underline = underline
	if doc.page != nil {
		doc.selectFont()
	}
}

// Font returns the family, style and size of the current font.  The
// style includes "U" if underlining was requested.
func (doc *Document) Font() (family, style string, size float64) {
	if doc.font == nil {
		return "", "", 0
	}
	style = doc.font.Style
	if doc.underline {
		style += "U"
	}
	return doc.font.Family, style, doc.fontSize
}

// reselectFont sets the current font again after "Q" has discarded a
// font selected while the graphics state was saved.
func (doc *Document) reselectFont() {
	if doc.font != nil {
		doc.selectFont()
	}
}

func (doc *Document) selectFont() {
	doc.font.used = true
	doc.out("BT /" + string(doc.font.resName) + " " + float.Format(doc.fontSize, 2) + " Tf ET")
}

// Text prints s with its baseline starting at (x, y).  The text is given
// in UTF-8; characters which are not available in the WinAnsi encoding are
// replaced by question marks.  If the font style includes "U", the text is
// underlined.
func (doc *Document) Text(x, y float64, s string) {
	doc.showText("Text", x, y, encodeWinAnsi(s))
}

// showText prints the WinAnsi-encoded string s.
func (doc *Document) showText(op string, x, y float64, s []byte) {
	p := doc.current()
	if p == nil {
		return
	}
	if doc.font == nil {
		doc.fail(op, fmt.Errorf("%w: no font selected", ErrUnknownFont))
		return
	}
	underline := doc.underline && len(s) > 0
	var m *fontMetrics
	if underline {
		if m = doc.currentMetrics(op); m == nil {
			return
		}
	}
	doc.font.used = true

	dx, dy := p.draw.Device(x, y)
	p.AppendRaw("BT " + float.Format(dx, 2) + " " + float.Format(dy, 2) + " Td " +
		pdf.Format(pdf.String(s)) + " Tj ET")

	if underline {
		size := doc.fontSize / doc.k
		w := m.width(s) * size / 1000
		top := y - underlinePosition*size/1000
		doc.fail(op, p.draw.Rect(x, top, w, underlineThickness*size/1000, graphics.Fill))
	}
}

// RotatedText prints s rotated by angle degrees counterclockwise around
// the start of its baseline at (x, y).
func (doc *Document) RotatedText(x, y float64, s string, angle float64) {
	p := doc.current()
	if p == nil {
		return
	}
	// A font selected under an earlier rotation is lost with its "Q".
	restores := p.rotation.State() == graphics.RotationActive
	err := p.rotation.RotatedDraw(angle, vec.Vec2{X: x, Y: y}, func() error {
		if restores {
			doc.reselectFont()
		}
		doc.Text(x, y, s)
		return doc.Err
	})
	doc.fail("RotatedText", err)
	if restores && err == nil && angle != 0 {
		doc.reselectFont()
	}
}

// encodeWinAnsi converts a UTF-8 string to the Windows-1252 encoding.
func encodeWinAnsi(s string) []byte {
	res := make([]byte, 0, len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		res = append(res, b)
	}
	return res
}

// used returns the fonts which are referenced by the content streams, in
// registration order.
func (r *fontRegistry) used() []*fontState {
	var res []*fontState
	for _, f := range r.order {
		if f.used {
			res = append(res, f)
		}
	}
	return res
}

func (f *fontState) dict() pdf.Dict {
	d := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(f.BaseFont),
	}
	if _, symbolic := symbolicFonts[f.Family]; !symbolic {
		d["Encoding"] = pdf.Name("WinAnsiEncoding")
	}
	return d
}

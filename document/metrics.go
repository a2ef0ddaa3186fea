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
	"embed"
	"strings"
	"sync"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/postscript/afm"
)

// The metrics files list the advance widths of the printable ASCII
// characters.  Other characters are measured by their base letter, see
// [fontMetrics.fill].
//
//go:embed afm/*.afm
var afmFiles embed.FS

// The standard 14 fonts all place the underline at the same position,
// in 1/1000 of the font size.
const (
	underlinePosition  = -100
	underlineThickness = 50
)

// fontMetrics holds the glyph widths of a standard font, indexed by
// character code, in 1/1000 of the font size.
type fontMetrics struct {
	widths [256]float64
}

var (
	metricsMu    sync.Mutex
	metricsCache = map[string]*fontMetrics{}
)

// standardMetrics returns the metrics for one of the standard 14 fonts.
// The result is nil if no metrics are available for baseFont.
func standardMetrics(baseFont string) *fontMetrics {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	if m, ok := metricsCache[baseFont]; ok {
		return m
	}

	var m *fontMetrics
	fd, err := afmFiles.Open("afm/" + baseFont + ".afm")
	if err == nil {
		defer fd.Close()
		info, err := afm.Read(fd)
		if err != nil {
			panic("corrupted metrics for " + baseFont + ": " + err.Error())
		}

		m = &fontMetrics{}
		for code, name := range info.Encoding {
			if code >= 256 {
				break
			}
			if g, ok := info.Glyphs[name]; ok {
				m.widths[code] = g.WidthX
			}
		}
		m.fill(!isSymbolic(baseFont))
	}
	metricsCache[baseFont] = m
	return m
}

// fill assigns widths to the character codes not covered by the metrics
// file.  For text fonts, accented letters get the width of their base
// letter.  All remaining codes get the width of the digit zero.
func (m *fontMetrics) fill(text bool) {
	missing := m.widths['0']
	for code := range m.widths {
		if m.widths[code] != 0 {
			continue
		}
		w := missing
		if text && code >= 0x80 {
			r := charmap.Windows1252.DecodeByte(byte(code))
			base := norm.NFD.String(string(r))
			if b := base[0]; len(base) > 1 && b < 0x80 && m.widths[b] != 0 {
				w = m.widths[b]
			}
		}
		m.widths[code] = w
	}
}

// width returns the width of the WinAnsi-encoded string s, in 1/1000 of
// the font size.
func (m *fontMetrics) width(s []byte) float64 {
	var w float64
	for _, c := range s {
		w += m.widths[c]
	}
	return w
}

func isSymbolic(baseFont string) bool {
	for _, name := range symbolicFonts {
		if strings.EqualFold(name, baseFont) {
			return true
		}
	}
	return false
}

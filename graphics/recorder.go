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
	"io"
	"strings"
)

// A Recorder is a [Sink] which records content stream operators.
// The recorded operators can later be replayed into another sink, using
// the [Recorder.ApplyTo] method, or written out as a content stream.
type Recorder struct {
	tokens []string
}

// AppendRaw records a content stream operator.
func (r *Recorder) AppendRaw(token string) {
	r.tokens = append(r.tokens, token)
}

// Len returns the number of recorded operators.
func (r *Recorder) Len() int {
	return len(r.tokens)
}

// Tokens returns a copy of the recorded operators.
func (r *Recorder) Tokens() []string {
	return append([]string(nil), r.tokens...)
}

// Reset discards all recorded operators.
func (r *Recorder) Reset() {
	r.tokens = r.tokens[:0]
}

// ApplyTo appends all recorded operators to the given sink.
func (r *Recorder) ApplyTo(s Sink) {
	for _, tok := range r.tokens {
		s.AppendRaw(tok)
	}
}

// WriteContent writes the recorded operators as a content stream, one
// operator per line.  If replace is not nil, it is applied to each operator
// before it is written.
func (r *Recorder) WriteContent(w io.Writer, replace *strings.Replacer) error {
	for _, tok := range r.tokens {
		if replace != nil {
			tok = replace.Replace(tok)
		}
		if _, err := io.WriteString(w, tok+"\n"); err != nil {
			return err
		}
	}
	return nil
}

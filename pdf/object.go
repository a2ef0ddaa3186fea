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

// Package pdf implements the PDF object model and a writer for PDF files.
//
// Only the features needed to produce simple documents are supported:
// indirect objects, optionally Flate compressed streams, and a
// cross-reference table.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/unicode"
	"seehuhn.de/go/geom/rect"
)

// Object represents an object in a PDF file.  The basic object types
// [Array], [Bool], [Dict], [Integer], [Name], [Real], [Reference],
// [*Stream] and [String] implement this interface.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	s := "false"
	if x {
		s = "true"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents a real number in a PDF file.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// String represents a raw string in a PDF file.  The character set
// encoding, if any, is determined by the context.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	level := 0
	for _, c := range x {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	var funny []int
	for i, c := range x {
		if c < 32 || c == '\\' || !balanced && (c == '(' || c == ')') {
			funny = append(funny, i)
		}
	}

	buf := &bytes.Buffer{}
	if 3*len(funny) > len(x) {
		fmt.Fprintf(buf, "<%x>", []byte(x))
		_, err := w.Write(buf.Bytes())
		return err
	}

	buf.WriteByte('(')
	pos := 0
	for _, i := range funny {
		buf.Write(x[pos:i])
		switch c := x[i]; c {
		case '\r':
			buf.WriteString(`\r`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		default:
			fmt.Fprintf(buf, `\%03o`, c)
		}
		pos = i + 1
	}
	buf.Write(x[pos:])
	buf.WriteByte(')')

	_, err := w.Write(buf.Bytes())
	return err
}

// TextString creates a String object using the "text string" encoding.
// Printable ASCII strings are stored unchanged, all other strings are
// stored in UTF-16BE encoding with a byte order mark.
func TextString(s string) String {
	plain := true
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 127 || c < 32 && c != '\n' && c != '\r' && c != '\t' {
			plain = false
			break
		}
	}
	if plain {
		return String(s)
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	buf, err := enc.Bytes([]byte(s))
	if err != nil {
		// invalid UTF-8 is replaced, so this cannot happen
		panic(err)
	}
	return String(buf)
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:]
	return String(s)
}

// Name represents a name object in a PDF file.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for i := 0; i < len(x); i++ {
		c := x[i]
		if c < 0x21 || c > 0x7e || c == '#' || strings.IndexByte("()<>[]{}/%", c) >= 0 {
			fmt.Fprintf(buf, "#%02x", c)
			continue
		}
		buf.WriteByte(c)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Array represents an array of objects in a PDF file.
type Array []Object

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err = io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		err = writeObject(w, val)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "]")
	return err
}

// Dict represents a dictionary object in a PDF file.
// Entries with value nil are omitted when the dictionary is written.
type Dict map[Name]Object

// PDF implements the [Object] interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	keys := make([]Name, 0, len(x))
	for key, val := range x {
		if val != nil {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	_, err := io.WriteString(w, "<<")
	if err != nil {
		return err
	}
	for _, name := range keys {
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = x[name].PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n>>")
	return err
}

// Stream represents a stream object in a PDF file.
// The stream data is read from R when the stream is written.
type Stream struct {
	Dict
	R io.Reader
}

// PDF implements the [Object] interface.
func (x *Stream) PDF(w io.Writer) error {
	err := x.Dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = io.Copy(w, x.R)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream")
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
// The lower 32 bits represent the object number, the next 16 bits the
// generation number.
type Reference uint64

// NewReference creates a new reference object.
func NewReference(number uint32, generation uint16) Reference {
	return Reference(uint64(number) | uint64(generation)<<32)
}

// Number returns the object number of the reference.
func (x Reference) Number() uint32 {
	return uint32(x)
}

// Generation returns the generation number of the reference.
func (x Reference) Generation() uint16 {
	return uint16(x >> 32)
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	if x>>48 != 0 {
		return fmt.Errorf("invalid reference: 0x%016x", uint64(x))
	}
	_, err := fmt.Fprintf(w, "%d %d R", x.Number(), x.Generation())
	return err
}

// Rectangle converts a rectangle into a PDF array.
func Rectangle(r rect.Rect) Array {
	return Array{
		Number(r.LLx), Number(r.LLy), Number(r.URx), Number(r.URy),
	}
}

// Number returns an Integer if x is integral, and a Real rounded to
// four decimal digits otherwise.
func Number(x float64) Object {
	if x == float64(int64(x)) {
		return Integer(int64(x))
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 4, 64), 64)
	return Real(r)
}

func writeObject(w io.Writer, obj Object) error {
	if obj == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return obj.PDF(w)
}

// Format formats a PDF object as a string, in the same way as it would be
// written to a PDF file.
func Format(obj Object) string {
	buf := &bytes.Buffer{}
	err := writeObject(buf, obj)
	if err != nil {
		panic(err)
	}
	return buf.String()
}

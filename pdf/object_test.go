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

package pdf

import (
	"testing"
	"time"

	"seehuhn.de/go/geom/rect"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		obj  Object
		want string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-12), "-12"},
		{Real(1), "1."},
		{Real(0.5), "0.5"},
		{Name("Type"), "/Type"},
		{Name("A B#"), "/A#20B#23"},
		{String("a(b)c"), "(a(b)c)"},
		{String(")("), "<2928>"},
		{String(`a\b`), `(a\\b)`},
		{String("x\ny"), `(x\ny)`},
		{Array{Integer(1), Name("X"), nil}, "[1 /X null]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{NewReference(12, 0), "12 0 R"},
		{Rectangle(rect.Rect{URx: 595.276, URy: 841.89}), "[0 0 595.276 841.89]"},
	}
	for _, c := range cases {
		got := Format(c.obj)
		if got != c.want {
			t.Errorf("Format(%#v) = %q, want %q", c.obj, got, c.want)
		}
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got := string(Date(d))
	want := "D:20240102030405+00'00"
	if got != want {
		t.Errorf("Date() = %q, want %q", got, want)
	}
}

func TestTextString(t *testing.T) {
	if got := string(TextString("Hello")); got != "Hello" {
		t.Errorf("ASCII text string: got %q", got)
	}

	s := TextString("Grüße")
	if len(s) != 2+2*5 || s[0] != 0xFE || s[1] != 0xFF {
		t.Errorf("UTF-16 text string: got % x", []byte(s))
	}
}

func TestNumber(t *testing.T) {
	if _, ok := Number(12).(Integer); !ok {
		t.Error("Number(12) is not an Integer")
	}
	if got := Number(1.23456); got != Real(1.2346) {
		t.Errorf("Number(1.23456) = %v", got)
	}
}

func TestVersion(t *testing.T) {
	for _, s := range []string{"1.4", "1.5", "1.6", "1.7", "2.0"} {
		v, err := ParseVersion(s)
		if err != nil {
			t.Fatal(err)
		}
		if v.String() != s {
			t.Errorf("ParseVersion(%q).String() = %q", s, v.String())
		}
	}
	if _, err := ParseVersion("1.3"); err == nil {
		t.Error("PDF 1.3 accepted")
	}
}

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

package float

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		x    float64
		prec int
		want string
	}{
		{0, 2, "0"},
		{1, 2, "1"},
		{12.5, 2, "12.5"},
		{12.346, 2, "12.35"},
		{0.5, 2, ".5"},
		{-0.5, 2, "-.5"},
		{-0.001, 2, "0"},
		{100, 0, "100"},
		{841.89, 2, "841.89"},
		{0.70710678, 5, ".70711"},
		{-1, 5, "-1"},
	}
	for _, c := range cases {
		got := Format(c.x, c.prec)
		if got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.prec, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(1.23456, 2); got != 1.23 {
		t.Errorf("Round(1.23456, 2) = %g", got)
	}
	if got := Round(2.5e-3, 1); got != 0 {
		t.Errorf("Round(2.5e-3, 1) = %g", got)
	}
}

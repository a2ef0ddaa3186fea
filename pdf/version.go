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
	"errors"
	"strconv"
)

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this library.
const (
	_ Version = iota
	V1_4
	V1_5
	V1_6
	V1_7
	V2_0
)

var errVersion = errors.New("unsupported PDF version")

// ParseVersion parses a PDF version string like "1.7".
func ParseVersion(s string) (Version, error) {
	switch s {
	case "1.4":
		return V1_4, nil
	case "1.5":
		return V1_5, nil
	case "1.6":
		return V1_6, nil
	case "1.7":
		return V1_7, nil
	case "2.0":
		return V2_0, nil
	}
	return 0, errVersion
}

// ToString returns the string representation of ver, e.g. "1.7".
func (ver Version) ToString() (string, error) {
	switch {
	case ver >= V1_4 && ver <= V1_7:
		return "1." + strconv.Itoa(int(ver-V1_4)+4), nil
	case ver == V2_0:
		return "2.0", nil
	}
	return "", errVersion
}

func (ver Version) String() string {
	s, err := ver.ToString()
	if err != nil {
		return "pdf.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return s
}

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

// Package code128 implements the symbol table and the checksum of the
// Code 128 linear barcode symbology.
//
// Symbols are threaded through the code as ordinary bytes: the printable
// characters 32-126 stand for symbols 0-94, and the bytes 200-211 stand for
// the control and framing symbols 95-106.  A framed barcode is thus a byte
// string consisting of [StartA], the payload, a checksum byte and [Stop].
//
// Only code set A framing is produced.  There is no switching between code
// sets, so payloads are restricted to the printable ASCII characters and
// each payload byte occupies one symbol.
package code128

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for symbol indices outside 0-106.
	ErrOutOfRange = errors.New("code128: symbol index out of range")

	// ErrInvalidSymbol is returned for bytes which do not represent a
	// symbol in the given context.
	ErrInvalidSymbol = errors.New("code128: invalid symbol byte")

	// ErrChecksumMismatch is returned by [Decode] if the check symbol does
	// not match the payload.
	ErrChecksumMismatch = errors.New("code128: checksum mismatch")
)

// PatternOf returns the bar pattern of the symbol with the given index.
// The returned slice is a copy and may be modified by the caller.
func PatternOf(index int) (Pattern, error) {
	if index < 0 || index >= NumSymbols {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	return append(Pattern(nil), symbols[index]...), nil
}

// ByteToIndex maps a symbol byte to the corresponding symbol index.
func ByteToIndex(b byte) (int, error) {
	switch {
	case b >= 32 && b <= 126:
		return int(b) - 32, nil
	case b >= 200 && b <= 211:
		return int(b) - 105, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidSymbol, b)
	}
}

// IndexToByte maps a symbol index to the byte which represents the symbol.
// This is the inverse of [ByteToIndex].
func IndexToByte(index int) (byte, error) {
	switch {
	case index >= 0 && index < 95:
		return byte(index + 32), nil
	case index >= 95 && index < NumSymbols:
		return byte(index + 105), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
}

// Checksum computes the modulo 103 check symbol for the given payload.
// The start symbol of code set A contributes with weight 1, payload byte i
// (counting from zero) contributes with weight i+1.
//
// All payload bytes must be printable ASCII characters.
func Checksum(value string) (int, error) {
	sum := IndexStartA
	for i := 0; i < len(value); i++ {
		idx, err := payloadIndex(value[i])
		if err != nil {
			return 0, fmt.Errorf("byte %d of %q: %w", i, value, err)
		}
		sum += (i + 1) * idx
	}
	return sum % 103, nil
}

func payloadIndex(b byte) (int, error) {
	if b < 32 || b > 126 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSymbol, b)
	}
	return int(b) - 32, nil
}

// Frame returns the complete symbol string for value, consisting of the
// code set A start symbol, the payload, the check symbol and the stop
// symbol.
func Frame(value string) (string, error) {
	check, err := Checksum(value)
	if err != nil {
		return "", err
	}
	checkByte, err := IndexToByte(check)
	if err != nil {
		return "", err
	}

	buf := make([]byte, 0, len(value)+3)
	buf = append(buf, StartA)
	buf = append(buf, value...)
	buf = append(buf, checkByte, Stop)
	return string(buf), nil
}

// Symbols converts a symbol string into the list of symbol indices.
func Symbols(framed string) ([]int, error) {
	res := make([]int, len(framed))
	for i := 0; i < len(framed); i++ {
		idx, err := ByteToIndex(framed[i])
		if err != nil {
			return nil, err
		}
		res[i] = idx
	}
	return res, nil
}

// Decode checks a framed symbol string, as produced by [Frame], and
// returns the payload.
func Decode(framed string) (string, error) {
	n := len(framed)
	if n < 3 {
		return "", fmt.Errorf("%w: framed string too short", ErrInvalidSymbol)
	}
	if framed[0] != StartA {
		return "", fmt.Errorf("%w: missing start symbol", ErrInvalidSymbol)
	}
	if framed[n-1] != Stop {
		return "", fmt.Errorf("%w: missing stop symbol", ErrInvalidSymbol)
	}

	value := framed[1 : n-2]
	want, err := Checksum(value)
	if err != nil {
		return "", err
	}
	got, err := ByteToIndex(framed[n-2])
	if err != nil {
		return "", err
	}
	if got != want {
		return "", fmt.Errorf("%w: got %d, want %d", ErrChecksumMismatch, got, want)
	}
	return value, nil
}

// Bar is a dark bar of a rendered barcode.  Offset and Width are given in
// modules, measured from the left edge of the start symbol.
type Bar struct {
	Offset int
	Width  int
}

// Layout computes the bars of the barcode for the given payload.
// The second return value is the total width of the barcode in modules,
// including the spaces between the bars.
func Layout(value string) ([]Bar, int, error) {
	framed, err := Frame(value)
	if err != nil {
		return nil, 0, err
	}

	var bars []Bar
	d := 0
	j := 0
	for i := 0; i < len(framed); i++ {
		idx, err := ByteToIndex(framed[i])
		if err != nil {
			return nil, 0, err
		}
		for _, w := range symbols[idx] {
			if j%2 == 0 {
				bars = append(bars, Bar{Offset: d, Width: w})
			}
			d += w
			j++
		}
	}
	return bars, d, nil
}

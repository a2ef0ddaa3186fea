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

package code128

// Pattern lists the module widths of one symbol, alternating between bars
// and spaces and starting with a bar.
type Pattern []int

// Modules returns the total number of modules covered by the pattern.
func (p Pattern) Modules() int {
	n := 0
	for _, w := range p {
		n += w
	}
	return n
}

// NumSymbols is the number of entries in the symbol table.
const NumSymbols = 107

// Symbol indices of the special symbols.
const (
	IndexFNC3   = 96
	IndexFNC2   = 97
	IndexShift  = 98
	IndexCodeC  = 99
	IndexCodeB  = 100
	IndexCodeA  = 101
	IndexFNC1   = 102
	IndexStartA = 103
	IndexStartB = 104
	IndexStartC = 105
	IndexStop   = 106
)

// Byte values used to represent the framing symbols inside a byte string.
const (
	StartA byte = 208
	StartB byte = 209
	StartC byte = 210
	Stop   byte = 211
)

// symbols holds the bar patterns, indexed by symbol value.
// Indices 0-94 are the printable characters 32-126 in code set B order.
var symbols = [NumSymbols]Pattern{
	{2, 1, 2, 2, 2, 2}, // 0: ' '
	{2, 2, 2, 1, 2, 2}, // 1: '!'
	{2, 2, 2, 2, 2, 1}, // 2: '"'
	{1, 2, 1, 2, 2, 3}, // 3: '#'
	{1, 2, 1, 3, 2, 2}, // 4: '$'
	{1, 3, 1, 2, 2, 2}, // 5: '%'
	{1, 2, 2, 2, 1, 3}, // 6: '&'
	{1, 2, 2, 3, 1, 2}, // 7: '\''
	{1, 3, 2, 2, 1, 2}, // 8: '('
	{2, 2, 1, 2, 1, 3}, // 9: ')'
	{2, 2, 1, 3, 1, 2}, // 10: '*'
	{2, 3, 1, 2, 1, 2}, // 11: '+'
	{1, 1, 2, 2, 3, 2}, // 12: ','
	{1, 2, 2, 1, 3, 2}, // 13: '-'
	{1, 2, 2, 2, 3, 1}, // 14: '.'
	{1, 1, 3, 2, 2, 2}, // 15: '/'
	{1, 2, 3, 1, 2, 2}, // 16: '0'
	{1, 2, 3, 2, 2, 1}, // 17: '1'
	{2, 2, 3, 2, 1, 1}, // 18: '2'
	{2, 2, 1, 1, 3, 2}, // 19: '3'
	{2, 2, 1, 2, 3, 1}, // 20: '4'
	{2, 1, 3, 2, 1, 2}, // 21: '5'
	{2, 2, 3, 1, 1, 2}, // 22: '6'
	{3, 1, 2, 1, 3, 1}, // 23: '7'
	{3, 1, 1, 2, 2, 2}, // 24: '8'
	{3, 2, 1, 1, 2, 2}, // 25: '9'
	{3, 2, 1, 2, 2, 1}, // 26: ':'
	{3, 1, 2, 2, 1, 2}, // 27: ';'
	{3, 2, 2, 1, 1, 2}, // 28: '<'
	{3, 2, 2, 2, 1, 1}, // 29: '='
	{2, 1, 2, 1, 2, 3}, // 30: '>'
	{2, 1, 2, 3, 2, 1}, // 31: '?'
	{2, 3, 2, 1, 2, 1}, // 32: '@'
	{1, 1, 1, 3, 2, 3}, // 33: 'A'
	{1, 3, 1, 1, 2, 3}, // 34: 'B'
	{1, 3, 1, 3, 2, 1}, // 35: 'C'
	{1, 1, 2, 3, 1, 3}, // 36: 'D'
	{1, 3, 2, 1, 1, 3}, // 37: 'E'
	{1, 3, 2, 3, 1, 1}, // 38: 'F'
	{2, 1, 1, 3, 1, 3}, // 39: 'G'
	{2, 3, 1, 1, 1, 3}, // 40: 'H'
	{2, 3, 1, 3, 1, 1}, // 41: 'I'
	{1, 1, 2, 1, 3, 3}, // 42: 'J'
	{1, 1, 2, 3, 3, 1}, // 43: 'K'
	{1, 3, 2, 1, 3, 1}, // 44: 'L'
	{1, 1, 3, 1, 2, 3}, // 45: 'M'
	{1, 1, 3, 3, 2, 1}, // 46: 'N'
	{1, 3, 3, 1, 2, 1}, // 47: 'O'
	{3, 1, 3, 1, 2, 1}, // 48: 'P'
	{2, 1, 1, 3, 3, 1}, // 49: 'Q'
	{2, 3, 1, 1, 3, 1}, // 50: 'R'
	{2, 1, 3, 1, 1, 3}, // 51: 'S'
	{2, 1, 3, 3, 1, 1}, // 52: 'T'
	{2, 1, 3, 1, 3, 1}, // 53: 'U'
	{3, 1, 1, 1, 2, 3}, // 54: 'V'
	{3, 1, 1, 3, 2, 1}, // 55: 'W'
	{3, 3, 1, 1, 2, 1}, // 56: 'X'
	{3, 1, 2, 1, 1, 3}, // 57: 'Y'
	{3, 1, 2, 3, 1, 1}, // 58: 'Z'
	{3, 3, 2, 1, 1, 1}, // 59: '['
	{3, 1, 4, 1, 1, 1}, // 60: '\\'
	{2, 2, 1, 4, 1, 1}, // 61: ']'
	{4, 3, 1, 1, 1, 1}, // 62: '^'
	{1, 1, 1, 2, 2, 4}, // 63: '_'
	{1, 1, 1, 4, 2, 2}, // 64: '`'
	{1, 2, 1, 1, 2, 4}, // 65: 'a'
	{1, 2, 1, 4, 2, 1}, // 66: 'b'
	{1, 4, 1, 1, 2, 2}, // 67: 'c'
	{1, 4, 1, 2, 2, 1}, // 68: 'd'
	{1, 1, 2, 2, 1, 4}, // 69: 'e'
	{1, 1, 2, 4, 1, 2}, // 70: 'f'
	{1, 2, 2, 1, 1, 4}, // 71: 'g'
	{1, 2, 2, 4, 1, 1}, // 72: 'h'
	{1, 4, 2, 1, 1, 2}, // 73: 'i'
	{1, 4, 2, 2, 1, 1}, // 74: 'j'
	{2, 4, 1, 2, 1, 1}, // 75: 'k'
	{2, 2, 1, 1, 1, 4}, // 76: 'l'
	{4, 1, 3, 1, 1, 1}, // 77: 'm'
	{2, 4, 1, 1, 1, 2}, // 78: 'n'
	{1, 3, 4, 1, 1, 1}, // 79: 'o'
	{1, 1, 1, 2, 4, 2}, // 80: 'p'
	{1, 2, 1, 1, 4, 2}, // 81: 'q'
	{1, 2, 1, 2, 4, 1}, // 82: 'r'
	{1, 1, 4, 2, 1, 2}, // 83: 's'
	{1, 2, 4, 1, 1, 2}, // 84: 't'
	{1, 2, 4, 2, 1, 1}, // 85: 'u'
	{4, 1, 1, 2, 1, 2}, // 86: 'v'
	{4, 2, 1, 1, 1, 2}, // 87: 'w'
	{4, 2, 1, 2, 1, 1}, // 88: 'x'
	{2, 1, 2, 1, 4, 1}, // 89: 'y'
	{2, 1, 4, 1, 2, 1}, // 90: 'z'
	{4, 1, 2, 1, 2, 1}, // 91: '{'
	{1, 1, 1, 1, 4, 3}, // 92: '|'
	{1, 1, 1, 3, 4, 1}, // 93: '}'
	{1, 3, 1, 1, 4, 1}, // 94: '~'
	{1, 1, 4, 1, 1, 3}, // 95: DEL
	{1, 1, 4, 3, 1, 1}, // 96: FNC3
	{4, 1, 1, 1, 1, 3}, // 97: FNC2
	{4, 1, 1, 3, 1, 1}, // 98: SHIFT
	{1, 1, 3, 1, 4, 1}, // 99: code C
	{1, 1, 4, 1, 3, 1}, // 100: code B
	{3, 1, 1, 1, 4, 1}, // 101: code A
	{4, 1, 1, 1, 3, 1}, // 102: FNC1

	{2, 1, 1, 4, 1, 2},    // 103: start A
	{2, 1, 1, 2, 1, 4},    // 104: start B
	{2, 1, 1, 2, 3, 2},    // 105: start C
	{2, 3, 3, 1, 1, 1, 2}, // 106: stop
}

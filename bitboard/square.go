/*
 * MIT License
 *
 * Copyright (c) 2024 mc-chess contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package bitboard

import "fmt"

// Square indexes one of the 64 board squares, A1=0 through H8=63, file-minor
// (A1, B1, ..., H1, A2, ...).
type Square int8

// None is the sentinel for "no square", used for an absent en-passant target
// and similar optional-square fields.
const None Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Cardinality is the number of squares on the board.
const Cardinality = 64

// FileIndex indexes a file, A=0 through H=7.
type FileIndex int8

// RankIndex indexes a rank, 1=0 through 8=7.
type RankIndex int8

// IsValid reports whether s is one of the 64 board squares.
func (s Square) IsValid() bool {
	return s >= A1 && s <= H8
}

// File returns the file of s.
func (s Square) File() FileIndex {
	return FileIndex(s & 7)
}

// Rank returns the rank of s.
func (s Square) Rank() RankIndex {
	return RankIndex(s >> 3)
}

// Bitboard returns the singleton bitboard containing only s.
func (s Square) Bitboard() Bitboard {
	return Bitboard(1) << uint(s)
}

// SquareOf builds the square at the given file and rank.
func SquareOf(f FileIndex, r RankIndex) Square {
	return Square(int8(r)*8 + int8(f))
}

// FlipVertically mirrors s across the board's horizontal midline, e.g. A1 <-> A8.
func (s Square) FlipVertically() Square {
	return Square(int8(s) ^ 56)
}

var fileNames = "abcdefgh"
var rankNames = "12345678"

// String renders s in coordinate notation, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", fileNames[s.File()], rankNames[s.Rank()])
}

// ParseSquare parses coordinate notation such as "e4" into a Square.
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return None, false
	}
	f := int8(-1)
	for i := 0; i < 8; i++ {
		if text[0] == fileNames[i] {
			f = int8(i)
			break
		}
	}
	r := int8(-1)
	for i := 0; i < 8; i++ {
		if text[1] == rankNames[i] {
			r = int8(i)
			break
		}
	}
	if f < 0 || r < 0 {
		return None, false
	}
	return SquareOf(FileIndex(f), RankIndex(r)), true
}

// Index returns the single set square of a non-empty, single-member bitboard.
// The caller is responsible for only calling this on singleton bitboards;
// behavior on an empty or multi-member bitboard is that of LSB.
func Index(b Bitboard) Square {
	return b.LSB()
}

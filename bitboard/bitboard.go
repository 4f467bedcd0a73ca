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

// Package bitboard implements the 64-bit set representation used throughout
// the engine, along with the square indexing and partition lookup tables
// (files, ranks, diagonals, antidiagonals) that the attack generators are
// built on.
package bitboard

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares packed one bit per square, A1 at bit 0
// through H8 at bit 63.
type Bitboard uint64

const (
	Empty Bitboard = 0
	All   Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File bitboards, A through H.
const (
	FileA Bitboard = 0x0101010101010101 << iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank bitboards, rank 1 through rank 8.
const (
	Rank1 Bitboard = 0xFF << (8 * iota)
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// LSB returns the Square of the least-significant set bit. Callers must not
// call LSB on an empty bitboard; use IsEmpty to guard.
func (b Bitboard) LSB() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB returns the least-significant set square and the bitboard with that
// square cleared, implementing the classic "clear lowest set bit" trick.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	s := b.LSB()
	return s, b & (b - 1)
}

// Count returns the number of set squares.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// IsEmpty reports whether the bitboard has no set squares.
func (b Bitboard) IsEmpty() bool {
	return b == Empty
}

// Has reports whether s is a member of b.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bitboard() != 0
}

// With returns b with s added.
func (b Bitboard) With(s Square) Bitboard {
	return b | s.Bitboard()
}

// Without returns b with s removed.
func (b Bitboard) Without(s Square) Bitboard {
	return b &^ s.Bitboard()
}

// ByteSwap reverses the byte order of b, used by the Hyperbola Quintessence
// sliding attack formula to obtain the "reverse occupancy" for a line.
func (b Bitboard) ByteSwap() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// FlipVertically mirrors b across the fourth and fifth ranks, swapping rank 1
// with rank 8, rank 2 with rank 7, and so on. Equivalent to a byte swap.
func (b Bitboard) FlipVertically() Bitboard {
	return b.ByteSwap()
}

// ForEach calls f once for every set square in b, in ascending order.
func (b Bitboard) ForEach(f func(Square)) {
	for b != Empty {
		var s Square
		s, b = b.PopLSB()
		f(s)
	}
}

// Squares returns the set squares of b as a slice, in ascending order.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.Count())
	b.ForEach(func(s Square) { squares = append(squares, s) })
	return squares
}

// String renders b as an 8x8 board, rank 8 at the top, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := RankIndex(7); r >= 0; r-- {
		for f := FileIndex(0); f < 8; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

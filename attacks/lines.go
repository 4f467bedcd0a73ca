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

package attacks

import "github.com/frankkopp/mc-chess/bitboard"

// InBetween returns the squares strictly between a and b, assuming they
// share a rank, file or diagonal; otherwise it returns the empty set. Used
// by check evasion to find the squares a non-king piece could move to in
// order to block a sliding check.
//
// This reuses the slide formula rather than a dedicated 64x64 table: sliding
// a rook (or bishop) from a with the other square as its only blocker gives
// every square from a up to and including b; intersecting that with the
// equivalent ray from b back to a leaves exactly the squares between them,
// since each ray excludes its own source square.
func InBetween(a, b bitboard.Square) bitboard.Bitboard {
	aBB, bBB := a.Bitboard(), b.Bitboard()
	switch {
	case a.File() == b.File() || a.Rank() == b.Rank():
		return RookAttacks(a, bBB) & RookAttacks(b, aBB)
	case bitboard.DiagonalIndex(a) == bitboard.DiagonalIndex(b),
		bitboard.AntidiagonalIndex(a) == bitboard.AntidiagonalIndex(b):
		return BishopAttacks(a, bBB) & BishopAttacks(b, aBB)
	default:
		return bitboard.Empty
	}
}

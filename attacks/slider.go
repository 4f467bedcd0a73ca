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

// slide computes sliding attacks along a single line using the Hyperbola
// Quintessence trick: subtracting the source from the occupancy (masked to
// the line) propagates a "ray" up to and including the first blocker, in
// both directions at once via a byte-swapped mirror subtraction.
// https://www.chessprogramming.org/Hyperbola_Quintessence
func slide(occupancy, sources, mobility bitboard.Bitboard) bitboard.Bitboard {
	forward := occupancy & mobility
	reverse := forward.ByteSwap()
	forward -= sources
	reverse -= sources.ByteSwap()
	forward ^= reverse.ByteSwap()
	forward &= mobility
	return forward
}

// rankOntoA1H8 projects the occupancy of a single rank onto the a1-h8
// diagonal, so that slide's byte-swap trick (which only reverses whole
// bytes) can be reused for horizontal rook attacks -- a byte swap does
// nothing to reorder the bits within a single rank's own byte.
func rankOntoA1H8(b bitboard.Bitboard, rank bitboard.RankIndex) bitboard.Bitboard {
	b = (b >> uint(rank*8)) & 0xff
	b = bitboard.Bitboard(uint64(b)*0x0101010101010101) & bitboard.MainDiagonal
	return b
}

func a1h8OntoRank(b bitboard.Bitboard, rank bitboard.RankIndex) bitboard.Bitboard {
	b &= bitboard.MainDiagonal
	b = bitboard.Bitboard(uint64(b) * 0x0101010101010101)
	b >>= 56
	b <<= uint(rank * 8)
	return b
}

func slideRank(occupancy, sources bitboard.Bitboard, rank bitboard.RankIndex) bitboard.Bitboard {
	occ := rankOntoA1H8(occupancy, rank)
	src := rankOntoA1H8(sources, rank)
	attacks := slide(occ, src, bitboard.MainDiagonal&^src)
	return a1h8OntoRank(attacks, rank)
}

// BishopAttacks returns every square a bishop on source attacks given occupancy.
func BishopAttacks(source bitboard.Square, occupancy bitboard.Bitboard) bitboard.Bitboard {
	sources := source.Bitboard()
	return slide(occupancy, sources, bitboard.DiagonalOf(source)&^sources) |
		slide(occupancy, sources, bitboard.AntidiagonalOf(source)&^sources)
}

// RookAttacks returns every square a rook on source attacks given occupancy.
func RookAttacks(source bitboard.Square, occupancy bitboard.Bitboard) bitboard.Bitboard {
	sources := source.Bitboard()
	return slide(occupancy, sources, bitboard.FileOf(source)&^sources) |
		slideRank(occupancy, sources, source.Rank())
}

// QueenAttacks returns every square a queen on source attacks given occupancy.
func QueenAttacks(source bitboard.Square, occupancy bitboard.Bitboard) bitboard.Bitboard {
	return BishopAttacks(source, occupancy) | RookAttacks(source, occupancy)
}

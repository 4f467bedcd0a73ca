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

package enum

import "github.com/frankkopp/mc-chess/bitboard"

// Castle identifies kingside or queenside castling.
type Castle int8

const (
	Kingside Castle = iota
	Queenside
	CastleCardinality
)

// Castles enumerates both castle sides.
var Castles = [CastleCardinality]Castle{Kingside, Queenside}

func (c Castle) String() string {
	if c == Kingside {
		return "kingside"
	}
	return "queenside"
}

// Symbol renders a castling right in FEN notation (KQkq).
func Symbol(c Color, castle Castle) byte {
	switch {
	case c == White && castle == Kingside:
		return 'K'
	case c == White && castle == Queenside:
		return 'Q'
	case c == Black && castle == Kingside:
		return 'k'
	default:
		return 'q'
	}
}

var (
	kingSource = [ColorCardinality]bitboard.Square{White: bitboard.E1, Black: bitboard.E8}
	kingTarget = [ColorCardinality][CastleCardinality]bitboard.Square{
		White: {Kingside: bitboard.G1, Queenside: bitboard.C1},
		Black: {Kingside: bitboard.G8, Queenside: bitboard.C8},
	}
	rookSource = [ColorCardinality][CastleCardinality]bitboard.Square{
		White: {Kingside: bitboard.H1, Queenside: bitboard.A1},
		Black: {Kingside: bitboard.H8, Queenside: bitboard.A8},
	}
	rookTarget = [ColorCardinality][CastleCardinality]bitboard.Square{
		White: {Kingside: bitboard.F1, Queenside: bitboard.D1},
		Black: {Kingside: bitboard.F8, Queenside: bitboard.D8},
	}
	safeSquares = [ColorCardinality][CastleCardinality]bitboard.Bitboard{
		White: {
			Kingside:  bitboard.E1.Bitboard() | bitboard.F1.Bitboard() | bitboard.G1.Bitboard(),
			Queenside: bitboard.E1.Bitboard() | bitboard.D1.Bitboard() | bitboard.C1.Bitboard(),
		},
		Black: {
			Kingside:  bitboard.E8.Bitboard() | bitboard.F8.Bitboard() | bitboard.G8.Bitboard(),
			Queenside: bitboard.E8.Bitboard() | bitboard.D8.Bitboard() | bitboard.C8.Bitboard(),
		},
	}
	freeSquares = [ColorCardinality][CastleCardinality]bitboard.Bitboard{
		White: {
			Kingside:  bitboard.F1.Bitboard() | bitboard.G1.Bitboard(),
			Queenside: bitboard.D1.Bitboard() | bitboard.C1.Bitboard() | bitboard.B1.Bitboard(),
		},
		Black: {
			Kingside:  bitboard.F8.Bitboard() | bitboard.G8.Bitboard(),
			Queenside: bitboard.D8.Bitboard() | bitboard.C8.Bitboard() | bitboard.B8.Bitboard(),
		},
	}
)

// KingSource returns the king's home square for color c.
func KingSource(c Color) bitboard.Square { return kingSource[c] }

// KingTarget returns where the king lands after castling.
func KingTarget(c Color, castle Castle) bitboard.Square { return kingTarget[c][castle] }

// RookSource returns the castling rook's home square.
func RookSource(c Color, castle Castle) bitboard.Square { return rookSource[c][castle] }

// RookTarget returns where the castling rook lands.
func RookTarget(c Color, castle Castle) bitboard.Square { return rookTarget[c][castle] }

// SafeSquares returns the squares the king must not be attacked on (its
// source, transit, and destination) for castle to be legal.
func SafeSquares(c Color, castle Castle) bitboard.Bitboard { return safeSquares[c][castle] }

// FreeSquares returns the squares between king and rook that must be empty.
func FreeSquares(c Color, castle Castle) bitboard.Bitboard { return freeSquares[c][castle] }

// CastleFromKingTarget reports which castle, for color c, lands the king on
// target -- used by make/unmake move to recover which rook needs to shift
// when a move is marked IsCastle, given only the king's destination square.
func CastleFromKingTarget(c Color, target bitboard.Square) (Castle, bool) {
	for _, castle := range Castles {
		if kingTarget[c][castle] == target {
			return castle, true
		}
	}
	return 0, false
}

// Involving reports which castle, if any, is associated with a rook sitting
// on rookSq for color c -- i.e. whether moving or capturing a rook on that
// square should revoke a castling right. The C++ original
// (castles::involving) returns boost::none for every square but the two
// rook home squares; ok is false in exactly that case, and callers must
// check it rather than use the zero Castle value as "none".
func Involving(rookSq bitboard.Square, c Color) (Castle, bool) {
	switch c {
	case White:
		switch rookSq {
		case bitboard.H1:
			return Kingside, true
		case bitboard.A1:
			return Queenside, true
		}
	case Black:
		switch rookSq {
		case bitboard.H8:
			return Kingside, true
		case bitboard.A8:
			return Queenside, true
		}
	}
	return 0, false
}

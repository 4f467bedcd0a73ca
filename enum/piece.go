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

import "fmt"

// Piece is a piece type, independent of color.
type Piece int8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceCardinality
)

// Pieces enumerates every piece type, in the order the engine iterates a
// halfboard's piece-type bitboards.
var Pieces = [PieceCardinality]Piece{Pawn, Knight, Bishop, Rook, Queen, King}

func (p Piece) String() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return fmt.Sprintf("Piece(%d)", int8(p))
	}
}

// Symbol renders p in FEN piece notation for the given color (uppercase for
// white, lowercase for black).
func (p Piece) Symbol(c Color) byte {
	var letters = "pnbrqk"
	b := letters[p]
	if c == White {
		b -= 'a' - 'A'
	}
	return b
}

// PieceFromSymbol maps a FEN piece letter (case-insensitive) to a Piece.
func PieceFromSymbol(b byte) (Piece, bool) {
	switch b {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return 0, false
	}
}

// ColoredPiece pairs a piece type with its owning color, used wherever a
// single occupant of a square needs to be reported (FEN dump, debug print).
type ColoredPiece struct {
	Color Color
	Piece Piece
}

// Symbol renders the colored piece in FEN notation.
func (cp ColoredPiece) Symbol() byte {
	return cp.Piece.Symbol(cp.Color)
}

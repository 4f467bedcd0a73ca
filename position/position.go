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

// Package position holds the reversible, incrementally-hashed board state
// that movegen and mcts operate on: Position plus MakeMove/UnmakeMove.
// Everything here is pure state manipulation; reading and writing positions
// as text (FEN, coordinate/algebraic notation) lives in notation instead, so
// that a rollout-heavy MCTS search never links against a regexp-based parser
// it never calls.
package position

import (
	"fmt"

	"github.com/frankkopp/mc-chess/attacks"
	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/zobrist"
)

// ColoredPiece names a piece together with its owner.
type ColoredPiece struct {
	Color enum.Color
	Piece enum.Piece
}

// Board is a color's halfboards side by side; board[color][piece] is the
// set of squares occupied by that color's pieces of that type.
type Board [enum.ColorCardinality]attacks.Halfboard

// CastlingRights records, per color per side, whether the right to castle
// that way has not yet been forfeited by a king or rook move.
type CastlingRights [enum.ColorCardinality][enum.CastleCardinality]bool

// Position is a complete, self-contained chess position: whose move it is,
// where every piece stands, castling and en-passant status, and the
// redundant fields (flattened occupancy, the side-to-move's opponent's
// attack set, and a Zobrist hash) that are kept in sync on every MakeMove so
// that reading them is O(1).
type Position struct {
	Us, Them enum.Color

	Board Board

	CastlingRights CastlingRights

	// EnPassantSquare, if nonzero, is the square a capturing pawn will land
	// on; it is not the square of the pawn that double-pushed.
	EnPassantSquare bitboard.Bitboard

	// HalfmoveClock counts halfmoves since the last capture or pawn move.
	// It does not participate in the hash.
	HalfmoveClock int

	Occupancy     [enum.ColorCardinality]bitboard.Bitboard
	FlatOccupancy bitboard.Bitboard
	TheirAttacks  bitboard.Bitboard
	Hash          zobrist.Hash
}

// New returns the standard starting position.
func New() *Position {
	p := &Position{}
	p.SetInitialConfiguration()
	return p
}

// SetInitialConfiguration resets p to the standard starting position.
func (p *Position) SetInitialConfiguration() {
	p.Board = Board{}

	p.Board[enum.White][enum.Pawn] = bitboard.Rank2
	p.Board[enum.White][enum.Knight] = bitboard.B1.Bitboard() | bitboard.G1.Bitboard()
	p.Board[enum.White][enum.Bishop] = bitboard.C1.Bitboard() | bitboard.F1.Bitboard()
	p.Board[enum.White][enum.Rook] = bitboard.A1.Bitboard() | bitboard.H1.Bitboard()
	p.Board[enum.White][enum.Queen] = bitboard.D1.Bitboard()
	p.Board[enum.White][enum.King] = bitboard.E1.Bitboard()

	p.Board[enum.Black][enum.Pawn] = bitboard.Rank7
	p.Board[enum.Black][enum.Knight] = bitboard.B8.Bitboard() | bitboard.G8.Bitboard()
	p.Board[enum.Black][enum.Bishop] = bitboard.C8.Bitboard() | bitboard.F8.Bitboard()
	p.Board[enum.Black][enum.Rook] = bitboard.A8.Bitboard() | bitboard.H8.Bitboard()
	p.Board[enum.Black][enum.Queen] = bitboard.D8.Bitboard()
	p.Board[enum.Black][enum.King] = bitboard.E8.Bitboard()

	for _, c := range enum.Colors {
		for _, castle := range enum.Castles {
			p.CastlingRights[c][castle] = true
		}
	}

	p.EnPassantSquare = bitboard.Empty
	p.Us, p.Them = enum.White, enum.Black
	p.HalfmoveClock = 0

	p.ComputeOccupancy()
	p.ComputeTheirAttacks()
	p.ComputeHash()
}

// ComputeOccupancy recomputes Occupancy and FlatOccupancy from Board.
func (p *Position) ComputeOccupancy() {
	for _, c := range enum.Colors {
		var occ bitboard.Bitboard
		for _, piece := range p.Board[c] {
			occ |= piece
		}
		p.Occupancy[c] = occ
	}
	p.FlatOccupancy = p.Occupancy[enum.White] | p.Occupancy[enum.Black]
}

// ComputeTheirAttacks recomputes TheirAttacks, the set of squares attacked
// by the side not to move, from scratch.
func (p *Position) ComputeTheirAttacks() {
	p.TheirAttacks = attacks.Attacks(p.Them, p.FlatOccupancy, p.Board[p.Them])
}

// ComputeHash recomputes Hash from scratch. This is the safety net
// UnmakeMove relies on instead of reversing the incremental hash updates,
// and the reference point debug builds check the incremental hash against.
func (p *Position) ComputeHash() {
	var h zobrist.Hash
	for _, c := range enum.Colors {
		for _, piece := range enum.Pieces {
			p.Board[c][piece].ForEach(func(s bitboard.Square) {
				h ^= zobrist.ColoredPieceAtSquare(c, piece, s)
			})
		}
		for _, castle := range enum.Castles {
			if p.CastlingRights[c][castle] {
				h ^= zobrist.CanCastle(c, castle)
			}
		}
	}
	if p.Us == enum.Black {
		h ^= zobrist.BlackToMove()
	}
	if p.EnPassantSquare != bitboard.Empty {
		h ^= zobrist.EnPassant(p.EnPassantSquare)
	}
	p.Hash = h
}

// ColoredPieceAt returns the piece occupying s, if any.
func (p *Position) ColoredPieceAt(s bitboard.Square) (ColoredPiece, bool) {
	b := s.Bitboard()
	for _, c := range enum.Colors {
		for _, piece := range enum.Pieces {
			if p.Board[c][piece]&b != 0 {
				return ColoredPiece{c, piece}, true
			}
		}
	}
	return ColoredPiece{}, false
}

// PieceAt returns the piece color owns on s. It panics if color has no
// piece there -- callers must know one is present, exactly as the
// reference implementation's piece_at does.
func (p *Position) PieceAt(s bitboard.Square, color enum.Color) enum.Piece {
	b := s.Bitboard()
	for _, piece := range enum.Pieces {
		if p.Board[color][piece]&b != 0 {
			return piece
		}
	}
	panic(fmt.Sprintf("position: no %s piece at %s", color, s))
}

// CanCastle reports whether the side to move may still castle the given
// way: the right hasn't been forfeited, the king isn't passing through or
// landing on an attacked square, and the squares between king and rook are
// empty.
func (p *Position) CanCastle(castle enum.Castle) bool {
	return p.CastlingRights[p.Us][castle] &&
		enum.SafeSquares(p.Us, castle)&p.TheirAttacks == 0 &&
		enum.FreeSquares(p.Us, castle)&p.FlatOccupancy == 0
}

// InCheck reports whether the side to move's king is attacked.
func (p *Position) InCheck() bool {
	return p.TheirAttacks&p.Board[p.Us][enum.King] != 0
}

// TheirKingAttacked reports whether the side NOT to move's king is
// attacked by the side to move -- true exactly when the side that just
// moved left its own king attacked (an illegal position), and is used to
// filter such moves out.
func (p *Position) TheirKingAttacked() bool {
	return attacks.AnyAttacked(p.Board[p.Them][enum.King], p.FlatOccupancy, p.Us, p.Board[p.Us])
}

// OurKingCaptured reports whether the side to move no longer has a king on
// the board.
func (p *Position) OurKingCaptured() bool {
	return p.Board[p.Us][enum.King] == bitboard.Empty
}

// DrawnBy50 reports whether the 50-halfmove no-progress rule has been
// reached.
func (p *Position) DrawnBy50() bool {
	return p.HalfmoveClock >= 50
}

// GameDefinitelyOver reports whether the game is over for a reason that is
// cheap to check. It may return false on games that are in fact over (e.g.
// stalemate, checkmate -- those require generating moves to detect) but
// never returns true on a game that isn't.
func (p *Position) GameDefinitelyOver() bool {
	return p.DrawnBy50() || p.OurKingCaptured()
}

// Winner returns the side that has won, assuming the game is already known
// to be over (GameDefinitelyOver or an empty legal move list). It returns
// ok=false for a draw.
func (p *Position) Winner() (enum.Color, bool) {
	if p.DrawnBy50() {
		return 0, false
	}
	if p.InCheck() || p.OurKingCaptured() {
		return p.Them, true
	}
	return 0, false
}

// Clone returns a deep copy of p. Board and CastlingRights are plain arrays
// so a struct copy already duplicates them; Clone exists to make that
// explicit at call sites that mutate the result (e.g. rollouts).
func (p *Position) Clone() *Position {
	clone := *p
	return &clone
}

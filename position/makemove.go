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

package position

import (
	"fmt"

	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/zobrist"
)

// behindPush returns the one-rank pawn-push offset for color c, as a
// function from a target square's bitboard to the square one rank behind
// it -- used to find the pawn a double push left behind, and the pawn an
// en-passant capture actually removes.
func behindPush(c enum.Color, b bitboard.Bitboard) bitboard.Bitboard {
	if c == enum.White {
		return b >> 8
	}
	return b << 8
}

// MakeMove applies move to p, mutating it in place, and returns an Undo
// that UnmakeMove can later use to restore p exactly. move is assumed
// pseudolegal; MakeMove does not check legality.
func (p *Position) MakeMove(move Move) Undo {
	var undo Undo
	undo.Move = move

	source := move.Source().Bitboard()
	target := move.Target().Bitboard()
	piece := p.PieceAt(move.Source(), p.Us)

	p.updateCastlingRights(move, &undo, piece, target)
	p.makeMoveOnOurHalfboard(move, piece, source, target)
	p.makeMoveOnTheirHalfboard(move, &undo, piece, target)
	p.makeMoveOnOccupancy(move, piece, source, target)
	p.updateEnPassantSquare(move, &undo, piece, target)

	p.Us, p.Them = p.Them, p.Us
	p.Hash ^= zobrist.BlackToMove()

	undo.PriorHalfmoveClock = p.HalfmoveClock
	if piece == enum.Pawn || move.IsCapture() {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	p.ComputeTheirAttacks()

	return undo
}

// UnmakeMove reverses a prior MakeMove, restoring p to exactly the state it
// was in beforehand. undo must be the value MakeMove returned for that
// move; calling UnmakeMove with any other Undo is undefined.
func (p *Position) UnmakeMove(undo Undo) {
	p.Us, p.Them = p.Them, p.Us

	move := undo.Move
	piece := p.PieceAt(move.Target(), p.Us)

	p.Board[p.Us][piece] &^= move.Target().Bitboard()
	if move.IsPromotion() {
		p.Board[p.Us][enum.Pawn] |= move.Source().Bitboard()
	} else {
		p.Board[p.Us][piece] |= move.Source().Bitboard()
	}

	if move.IsCastle() {
		if castle, ok := enum.CastleFromKingTarget(p.Us, move.Target()); ok {
			p.Board[p.Us][enum.Rook] &^= enum.RookTarget(p.Us, castle).Bitboard()
			p.Board[p.Us][enum.Rook] |= enum.RookSource(p.Us, castle).Bitboard()
		}
	}

	if move.IsCapture() {
		p.Board[p.Them][undo.CapturedPiece] |= undo.CaptureSquare
	}

	p.HalfmoveClock = undo.PriorHalfmoveClock
	p.EnPassantSquare = undo.PriorEnPassantSquare
	p.CastlingRights = undo.PriorCastlingRights

	p.ComputeHash()
	p.ComputeOccupancy()
	p.ComputeTheirAttacks()
}

// updateCastlingRights revokes the moving side's castling right when the
// king or a rook on its home square moves, and revokes the opponent's
// right when one of their home-square rooks is captured.
func (p *Position) updateCastlingRights(move Move, undo *Undo, piece enum.Piece, target bitboard.Bitboard) {
	undo.PriorCastlingRights = p.CastlingRights

	switch piece {
	case enum.King:
		for _, castle := range enum.Castles {
			if p.CastlingRights[p.Us][castle] {
				p.CastlingRights[p.Us][castle] = false
				p.Hash ^= zobrist.CanCastle(p.Us, castle)
			}
		}
	case enum.Rook:
		if castle, ok := enum.Involving(move.Source(), p.Us); ok && p.CastlingRights[p.Us][castle] {
			p.CastlingRights[p.Us][castle] = false
			p.Hash ^= zobrist.CanCastle(p.Us, castle)
		}
	}

	if move.IsCapture() && target&p.Board[p.Them][enum.Rook] != 0 {
		if castle, ok := enum.Involving(move.Target(), p.Them); ok && p.CastlingRights[p.Them][castle] {
			p.CastlingRights[p.Them][castle] = false
			p.Hash ^= zobrist.CanCastle(p.Them, castle)
		}
	}
}

// updateEnPassantSquare clears any en-passant square from the prior move
// and sets a new one behind a pawn that just double-pushed.
func (p *Position) updateEnPassantSquare(move Move, undo *Undo, piece enum.Piece, target bitboard.Bitboard) {
	undo.PriorEnPassantSquare = p.EnPassantSquare

	if p.EnPassantSquare != bitboard.Empty {
		p.Hash ^= zobrist.EnPassant(p.EnPassantSquare)
	}

	if move.Type() == enum.DoublePush {
		p.EnPassantSquare = behindPush(p.Us, target)
		p.Hash ^= zobrist.EnPassant(p.EnPassantSquare)
	} else {
		p.EnPassantSquare = bitboard.Empty
	}
}

// makeMoveOnTheirHalfboard removes a captured piece, if any, from the
// opponent's halfboard, handling the en-passant special case where the
// captured pawn does not stand on the move's target square.
func (p *Position) makeMoveOnTheirHalfboard(move Move, undo *Undo, piece enum.Piece, target bitboard.Bitboard) {
	if !move.IsCapture() {
		undo.CapturedPiece = enum.Pawn
		undo.CaptureSquare = bitboard.Empty
		return
	}

	theirHalfboard := &p.Board[p.Them]

	if target == p.EnPassantSquare {
		captureSquare := behindPush(p.Us, target)
		theirHalfboard[enum.Pawn] &^= captureSquare
		zobrist.Toggle(&p.Hash, p.Them, enum.Pawn, captureSquare.LSB())
		undo.CapturedPiece = enum.Pawn
		undo.CaptureSquare = captureSquare
		return
	}

	for _, capturee := range enum.Pieces {
		if theirHalfboard[capturee]&target != 0 {
			theirHalfboard[capturee] &^= target
			zobrist.Toggle(&p.Hash, p.Them, capturee, move.Target())
			undo.CapturedPiece = capturee
			undo.CaptureSquare = target
			return
		}
	}

	panic(fmt.Sprintf("position: capture move %s has no captured piece", move))
}

// makeMoveOnOurHalfboard moves the piece itself (including the castling
// rook and a promoted pawn's change of type).
func (p *Position) makeMoveOnOurHalfboard(move Move, piece enum.Piece, source, target bitboard.Bitboard) {
	ourHalfboard := &p.Board[p.Us]

	ourHalfboard[piece] &^= source
	zobrist.Toggle(&p.Hash, p.Us, piece, move.Source())
	ourHalfboard[piece] |= target
	zobrist.Toggle(&p.Hash, p.Us, piece, move.Target())

	switch move.Type() {
	case enum.CastleKingside, enum.CastleQueenside:
		castle, ok := enum.CastleFromKingTarget(p.Us, move.Target())
		if !ok {
			panic(fmt.Sprintf("position: castle move %s does not land the king on a known castle target", move))
		}
		rookSource := enum.RookSource(p.Us, castle)
		rookTarget := enum.RookTarget(p.Us, castle)
		ourHalfboard[enum.Rook] &^= rookSource.Bitboard()
		zobrist.Toggle(&p.Hash, p.Us, enum.Rook, rookSource)
		ourHalfboard[enum.Rook] |= rookTarget.Bitboard()
		zobrist.Toggle(&p.Hash, p.Us, enum.Rook, rookTarget)
	default:
		if promotee, ok := move.Promotion(); ok {
			ourHalfboard[enum.Pawn] &^= target
			zobrist.Toggle(&p.Hash, p.Us, enum.Pawn, move.Target())
			ourHalfboard[promotee] |= target
			zobrist.Toggle(&p.Hash, p.Us, promotee, move.Target())
		}
	}
}

// makeMoveOnOccupancy updates the flattened occupancy bitboards to match
// the halfboard changes already applied.
func (p *Position) makeMoveOnOccupancy(move Move, piece enum.Piece, source, target bitboard.Bitboard) {
	p.Occupancy[p.Us] &^= source
	p.Occupancy[p.Us] |= target

	switch move.Type() {
	case enum.CastleKingside, enum.CastleQueenside:
		castle, _ := enum.CastleFromKingTarget(p.Us, move.Target())
		p.Occupancy[p.Us] &^= enum.RookSource(p.Us, castle).Bitboard()
		p.Occupancy[p.Us] |= enum.RookTarget(p.Us, castle).Bitboard()
	default:
		if move.IsCapture() {
			captureSquare := target
			if target == p.EnPassantSquare {
				captureSquare = behindPush(p.Us, target)
			}
			p.Occupancy[p.Them] &^= captureSquare
		}
	}

	p.FlatOccupancy = p.Occupancy[enum.White] | p.Occupancy[enum.Black]
}

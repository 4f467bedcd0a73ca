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

// Package movegen generates pseudolegal and legal moves for a position,
// plus the random-move sampling used by MCTS rollouts. Moves returned by
// the pseudolegal generators may leave the moving side's own king attacked;
// LegalMoves filters those out by trial application.
package movegen

import (
	"github.com/frankkopp/mc-chess/attacks"
	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/position"
)

// Moves returns the pseudolegal moves available to the side to move. If
// their king is already attacked (the prior move captured it, or left it
// in an illegal pseudolegal position), only the captures of their king are
// returned, one per attacking piece -- generating a full move list in that
// position is wasted work, since the game is effectively already decided.
func Moves(p *position.Position) []enum.Move {
	var moves []enum.Move

	if p.GameDefinitelyOver() {
		return moves
	}

	if p.TheirKingAttacked() {
		return capturing(moves, p, p.Board[p.Them][enum.King].LSB(), false)
	}

	moves = make([]enum.Move, 0, 50)

	if p.InCheck() {
		return checkEvadingMoves(moves, p)
	}

	for _, piece := range enum.Pieces {
		moves = generatePiece(moves, p, piece, p.Board[p.Us][piece])
	}
	moves = castleMoves(moves, p)

	return moves
}

func generatePiece(moves []enum.Move, p *position.Position, piece enum.Piece, sources bitboard.Bitboard) []enum.Move {
	switch piece {
	case enum.Pawn:
		return pawnMoves(moves, p, sources)
	case enum.Knight:
		return sliderLikeMoves(moves, p, sources, attacks.KnightAttacks)
	case enum.Bishop:
		return sliderMoves(moves, p, sources, attacks.BishopAttacks)
	case enum.Rook:
		return sliderMoves(moves, p, sources, attacks.RookAttacks)
	case enum.Queen:
		return sliderMoves(moves, p, sources, attacks.QueenAttacks)
	case enum.King:
		return kingMoves(moves, p, sources)
	default:
		return moves
	}
}

// addQuietsAndCaptures appends, for a single source square, a normal move
// for every empty target and a capture for every target occupied by the
// opponent. Not used for pawns, whose quiet and capturing moves follow
// different geometry.
func addQuietsAndCaptures(moves []enum.Move, p *position.Position, source bitboard.Square, targets bitboard.Bitboard) []enum.Move {
	(targets &^ p.FlatOccupancy).ForEach(func(t bitboard.Square) {
		moves = append(moves, enum.NewMove(source, t, enum.Normal))
	})
	(targets & p.Occupancy[p.Them]).ForEach(func(t bitboard.Square) {
		moves = append(moves, enum.NewMove(source, t, enum.Capture))
	})
	return moves
}

func sliderMoves(moves []enum.Move, p *position.Position, sources bitboard.Bitboard, attack func(bitboard.Square, bitboard.Bitboard) bitboard.Bitboard) []enum.Move {
	sources.ForEach(func(source bitboard.Square) {
		moves = addQuietsAndCaptures(moves, p, source, attack(source, p.FlatOccupancy))
	})
	return moves
}

// sliderLikeMoves is sliderMoves specialized for attack functions that
// don't take an occupancy argument (the knight).
func sliderLikeMoves(moves []enum.Move, p *position.Position, sources bitboard.Bitboard, attack func(bitboard.Square) bitboard.Bitboard) []enum.Move {
	sources.ForEach(func(source bitboard.Square) {
		moves = addQuietsAndCaptures(moves, p, source, attack(source))
	})
	return moves
}

func kingMoves(moves []enum.Move, p *position.Position, sources bitboard.Bitboard) []enum.Move {
	if sources.IsEmpty() {
		return moves
	}
	source := sources.LSB()
	targets := attacks.KingAttacks(sources) &^ p.TheirAttacks
	return addQuietsAndCaptures(moves, p, source, targets)
}

// maybePromoting appends a single move, or all four (capturing-)promotion
// moves in its place, depending on whether target lands on the promotion
// rank.
func maybePromoting(moves []enum.Move, p *position.Position, source, target bitboard.Square, capture bool) []enum.Move {
	if target.Bitboard()&attacks.PromotionRank(p.Us) == 0 {
		t := enum.Normal
		if capture {
			t = enum.Capture
		}
		return append(moves, enum.NewMove(source, target, t))
	}
	types := [4]enum.MoveType{enum.PromotionKnight, enum.PromotionBishop, enum.PromotionRook, enum.PromotionQueen}
	if capture {
		types = [4]enum.MoveType{enum.CapturingPromotionKnight, enum.CapturingPromotionBishop, enum.CapturingPromotionRook, enum.CapturingPromotionQueen}
	}
	for _, t := range types {
		moves = append(moves, enum.NewMove(source, target, t))
	}
	return moves
}

// pawnPushSource returns the square a pawn must have started from to reach
// target after a single- or double-square push.
func pawnPushSource(c enum.Color, target bitboard.Square, ranks int) bitboard.Square {
	offset := int8(8 * ranks)
	if c == enum.White {
		return bitboard.Square(int8(target) - offset)
	}
	return bitboard.Square(int8(target) + offset)
}

func pawnMoves(moves []enum.Move, p *position.Position, sources bitboard.Bitboard) []enum.Move {
	us := p.Us

	attacks.PawnSinglePushTargets(us, sources, p.FlatOccupancy).ForEach(func(target bitboard.Square) {
		source := pawnPushSource(us, target, 1)
		moves = maybePromoting(moves, p, source, target, false)
	})

	attacks.PawnDoublePushTargets(us, sources, p.FlatOccupancy).ForEach(func(target bitboard.Square) {
		source := pawnPushSource(us, target, 2)
		moves = append(moves, enum.NewMove(source, target, enum.DoublePush))
	})

	// Pawn captures need each attacking pawn's own source square, not just
	// the union of targets, since more than one pawn can attack the same
	// square -- walk sources directly rather than targets.
	captureTargets := p.Occupancy[p.Them] | p.EnPassantSquare
	sources.ForEach(func(source bitboard.Square) {
		attacks.PawnAttacks(us, source.Bitboard()).ForEach(func(target bitboard.Square) {
			if target.Bitboard()&captureTargets != 0 {
				moves = maybePromoting(moves, p, source, target, true)
			}
		})
	})

	return moves
}

func castleMoves(moves []enum.Move, p *position.Position) []enum.Move {
	for _, castle := range enum.Castles {
		if p.CanCastle(castle) {
			moves = append(moves, enum.CastleMove(p.Us, castle))
		}
	}
	return moves
}

// capturing generates moves that capture the piece on target. When
// toBlockCheck is set, the moving side's king is excluded as a possible
// source, since a king move that captures the checking piece is handled
// by kingMoves (which already respects TheirAttacks) instead.
func capturing(moves []enum.Move, p *position.Position, target bitboard.Square, toBlockCheck bool) []enum.Move {
	sources := attacks.Attackers(target.Bitboard(), p.FlatOccupancy, p.Us, p.Board[p.Us])
	sources &^= p.Board[p.Us][enum.Pawn]
	if toBlockCheck {
		sources &^= p.Board[p.Us][enum.King]
	}
	sources.ForEach(func(source bitboard.Square) {
		moves = append(moves, enum.NewMove(source, target, enum.Capture))
	})
	return pawnCapturing(moves, p, target)
}

// occupying generates moves that land a piece on the (assumed vacant)
// target square.
func occupying(moves []enum.Move, p *position.Position, target bitboard.Square, toBlockCheck bool) []enum.Move {
	sources := attacks.Attackers(target.Bitboard(), p.FlatOccupancy, p.Us, p.Board[p.Us])
	sources &^= p.Board[p.Us][enum.Pawn]
	if toBlockCheck {
		sources &^= p.Board[p.Us][enum.King]
	}
	sources.ForEach(func(source bitboard.Square) {
		moves = append(moves, enum.NewMove(source, target, enum.Normal))
	})

	moves = pawnOccupying(moves, p, target)

	if !toBlockCheck {
		for _, castle := range enum.Castles {
			if (enum.KingTarget(p.Us, castle) == target || enum.RookTarget(p.Us, castle) == target) && p.CanCastle(castle) {
				moves = append(moves, enum.CastleMove(p.Us, castle))
			}
		}
	}

	return moves
}

func pawnOccupying(moves []enum.Move, p *position.Position, target bitboard.Square) []enum.Move {
	targetBB := target.Bitboard()
	ourPawns := p.Board[p.Us][enum.Pawn]

	if targetBB&attacks.PawnSinglePushTargets(p.Us, ourPawns, p.FlatOccupancy) != 0 {
		source := pawnPushSource(p.Us, target, 1)
		moves = maybePromoting(moves, p, source, target, false)
	}
	if targetBB&attacks.PawnDoublePushTargets(p.Us, ourPawns, p.FlatOccupancy) != 0 {
		source := pawnPushSource(p.Us, target, 2)
		moves = append(moves, enum.NewMove(source, target, enum.DoublePush))
	}
	return moves
}

func pawnCapturing(moves []enum.Move, p *position.Position, target bitboard.Square) []enum.Move {
	targets := target.Bitboard()

	if p.EnPassantSquare != bitboard.Empty {
		doublePushedPawn := behindPush(p.Us, p.EnPassantSquare)
		if targets&doublePushedPawn != 0 {
			targets |= p.EnPassantSquare
		}
	}

	ourPawns := p.Board[p.Us][enum.Pawn]
	ourPawns.ForEach(func(source bitboard.Square) {
		attacks.PawnAttacks(p.Us, source.Bitboard()).ForEach(func(t bitboard.Square) {
			if t.Bitboard()&targets != 0 {
				moves = maybePromoting(moves, p, source, t, true)
			}
		})
	})
	return moves
}

func behindPush(c enum.Color, b bitboard.Bitboard) bitboard.Bitboard {
	if c == enum.White {
		return b >> 8
	}
	return b << 8
}

// checkEvadingMoves generates pseudolegal check evasions: every king move,
// plus, if there is exactly one checking piece, every move that captures
// it or blocks its line of attack.
func checkEvadingMoves(moves []enum.Move, p *position.Position) []enum.Move {
	kingBB := p.Board[p.Us][enum.King]
	king := kingBB.LSB()

	moves = kingMoves(moves, p, kingBB)

	attackers := attacks.Attackers(kingBB, p.FlatOccupancy, p.Them, p.Board[p.Them])
	if attackers.Count() == 1 {
		attacker := attackers.LSB()
		moves = capturing(moves, p, attacker, true)
		attacks.InBetween(attacker, king).ForEach(func(target bitboard.Square) {
			moves = occupying(moves, p, target, true)
		})
	}

	return moves
}

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

import (
	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
)

// Attacks returns every square attacked by color c's pieces (as laid out in
// halfboard), including squares occupied by c's own pieces.
func Attacks(c enum.Color, occupancy bitboard.Bitboard, halfboard Halfboard) bitboard.Bitboard {
	var result bitboard.Bitboard

	result |= PawnAttacks(c, halfboard[enum.Pawn])

	result |= KnightJumpAttacks(halfboard[enum.Knight])

	halfboard[enum.Bishop].ForEach(func(s bitboard.Square) {
		result |= BishopAttacks(s, occupancy)
	})
	halfboard[enum.Rook].ForEach(func(s bitboard.Square) {
		result |= RookAttacks(s, occupancy)
	})
	halfboard[enum.Queen].ForEach(func(s bitboard.Square) {
		result |= QueenAttacks(s, occupancy)
	})

	result |= KingAttacks(halfboard[enum.King])

	return result
}

// KnightJumpAttacks returns every square attacked by any knight set in sources,
// i.e. the union of KnightAttacks over every member square. Used where a
// whole piece-type bitboard, rather than a single source square, is attacked
// from at once.
func KnightJumpAttacks(sources bitboard.Bitboard) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for _, ka := range knightAttackTypes {
		attacks |= ka.attacks(sources)
	}
	return attacks
}

// Attackers finds every square in attacker's halfboard that attacks at
// least one square in targets. This is the "superpiece" trick: a piece is
// placed on each target square and its attack pattern is intersected with
// the actual attacker pieces of matching mobility. Pawns are handled by
// projecting with the defending color's push direction, since a pawn's
// attack is not its own mirror image.
func Attackers(targets, occupancy bitboard.Bitboard, attacker enum.Color, attackerPieces Halfboard) bitboard.Bitboard {
	defender := attacker.Opposite()

	var sources bitboard.Bitboard

	for _, pa := range pawnAttackTypes {
		sources |= pawnAttacksOne(targets, pawnDingbats[defender], pa) & attackerPieces[enum.Pawn]
	}

	sources |= KnightJumpAttacks(targets) & attackerPieces[enum.Knight]

	targets.ForEach(func(source bitboard.Square) {
		diag := BishopAttacks(source, occupancy)
		orth := RookAttacks(source, occupancy)
		sources |= diag & (attackerPieces[enum.Bishop] | attackerPieces[enum.Queen])
		sources |= orth & (attackerPieces[enum.Rook] | attackerPieces[enum.Queen])
	})

	sources |= KingAttacks(targets) & attackerPieces[enum.King]

	return sources
}

// AnyAttacked reports whether any square in targets is attacked by attacker's
// pieces, short-circuiting as soon as one attacker is found rather than
// accumulating the full attacker set that Attackers would.
func AnyAttacked(targets, occupancy bitboard.Bitboard, attacker enum.Color, attackerPieces Halfboard) bool {
	defender := attacker.Opposite()

	for _, pa := range pawnAttackTypes {
		if pawnAttacksOne(targets, pawnDingbats[defender], pa)&attackerPieces[enum.Pawn] != 0 {
			return true
		}
	}

	if KnightJumpAttacks(targets)&attackerPieces[enum.Knight] != 0 {
		return true
	}

	found := false
	targets.ForEach(func(source bitboard.Square) {
		if found {
			return
		}
		diag := BishopAttacks(source, occupancy)
		orth := RookAttacks(source, occupancy)
		if diag&(attackerPieces[enum.Bishop]|attackerPieces[enum.Queen]) != 0 {
			found = true
			return
		}
		if orth&(attackerPieces[enum.Rook]|attackerPieces[enum.Queen]) != 0 {
			found = true
		}
	})
	if found {
		return true
	}

	return KingAttacks(targets)&attackerPieces[enum.King] != 0
}

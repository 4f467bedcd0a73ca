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

import (
	"fmt"

	"github.com/frankkopp/mc-chess/bitboard"
)

// MoveType classifies a Move beyond its source and target squares -- whether
// it is a capture, a double pawn push, a castle, or a promotion (optionally
// combined with a capture).
type MoveType uint8

const (
	Normal MoveType = iota
	DoublePush
	CastleKingside
	CastleQueenside
	Capture
	KingCapture
	PromotionKnight
	PromotionBishop
	PromotionRook
	PromotionQueen
	CapturingPromotionKnight
	CapturingPromotionBishop
	CapturingPromotionRook
	CapturingPromotionQueen
	moveTypeCardinality
)

func (t MoveType) String() string {
	names := [...]string{
		"normal", "double_push", "castle_kingside", "castle_queenside",
		"capture", "king_capture",
		"promotion_knight", "promotion_bishop", "promotion_rook", "promotion_queen",
		"capturing_promotion_knight", "capturing_promotion_bishop",
		"capturing_promotion_rook", "capturing_promotion_queen",
	}
	if int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("MoveType(%d)", t)
}

// Move is a 16-bit packed move word: 4 bits of MoveType at offset 0, 6 bits
// of source square at offset 4, 6 bits of target square at offset 10. The
// field widths come from the reference implementation's Move class
// (move.hpp); a move carries no other state, so two moves that reach the
// same square pair by the same move type are equal.
type Move uint16

const (
	moveTypeBits   = 4
	moveSourceBits = 6
	moveTargetBits = 6

	moveTypeOffset   = 0
	moveSourceOffset = moveTypeOffset + moveTypeBits
	moveTargetOffset = moveSourceOffset + moveSourceBits

	moveTypeMask   = (1 << moveTypeBits) - 1
	moveSquareMask = (1 << moveSourceBits) - 1
)

// NewMove packs a source square, target square and move type into a Move.
func NewMove(source, target bitboard.Square, t MoveType) Move {
	return Move(uint16(t)&moveTypeMask) |
		Move(uint16(source)&moveSquareMask)<<moveSourceOffset |
		Move(uint16(target)&moveSquareMask)<<moveTargetOffset
}

// Type returns the move's MoveType.
func (m Move) Type() MoveType {
	return MoveType((m >> moveTypeOffset) & moveTypeMask)
}

// Source returns the move's source square.
func (m Move) Source() bitboard.Square {
	return bitboard.Square((m >> moveSourceOffset) & moveSquareMask)
}

// Target returns the move's target square.
func (m Move) Target() bitboard.Square {
	return bitboard.Square((m >> moveTargetOffset) & moveSquareMask)
}

// IsCastle reports whether m castles.
func (m Move) IsCastle() bool {
	switch m.Type() {
	case CastleKingside, CastleQueenside:
		return true
	default:
		return false
	}
}

// IsCapture reports whether m captures a piece (including en-passant,
// king captures, and capturing promotions).
func (m Move) IsCapture() bool {
	switch m.Type() {
	case Capture, KingCapture,
		CapturingPromotionKnight, CapturingPromotionBishop,
		CapturingPromotionRook, CapturingPromotionQueen:
		return true
	default:
		return false
	}
}

// IsKingCapture reports whether m has type KingCapture. The move generator
// never produces this type: a capture of the king is an ordinary Capture.
func (m Move) IsKingCapture() bool {
	return m.Type() == KingCapture
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	_, ok := m.Promotion()
	return ok
}

// Promotion returns the piece a pawn promotes to, if m is a promotion.
func (m Move) Promotion() (Piece, bool) {
	switch m.Type() {
	case PromotionKnight, CapturingPromotionKnight:
		return Knight, true
	case PromotionBishop, CapturingPromotionBishop:
		return Bishop, true
	case PromotionRook, CapturingPromotionRook:
		return Rook, true
	case PromotionQueen, CapturingPromotionQueen:
		return Queen, true
	default:
		return 0, false
	}
}

func (m Move) String() string {
	return fmt.Sprintf("%s%s(%s)", m.Source(), m.Target(), m.Type())
}

var castleMoves [ColorCardinality][CastleCardinality]Move

func init() {
	for _, c := range Colors {
		castleMoves[c][Kingside] = NewMove(KingSource(c), KingTarget(c, Kingside), CastleKingside)
		castleMoves[c][Queenside] = NewMove(KingSource(c), KingTarget(c, Queenside), CastleQueenside)
	}
}

// CastleMove returns the canonical Move for castling on the given side.
func CastleMove(c Color, castle Castle) Move {
	return castleMoves[c][castle]
}

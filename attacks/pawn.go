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

// Package attacks computes the squares a piece attacks from a given
// occupancy, using Hyperbola Quintessence for sliding pieces and small
// data-driven shift tables for pawns, knights and kings.
package attacks

import (
	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
)

// Halfboard is one color's set of per-piece-type bitboards, indexed by
// enum.Piece.
type Halfboard [enum.PieceCardinality]bitboard.Bitboard

// pawnDingbat packages the color-specific shift amounts used to push a
// color's pawns forward. leftshift/rightshift rather than a signed offset
// avoid negative shift counts, as in the reference implementation.
type pawnDingbat struct {
	leftshift, rightshift   uint
	doublePushTargetRank    bitboard.Bitboard
	promotionRank            bitboard.Bitboard
}

func (pd pawnDingbat) singlePushTargets(pawns, occupied bitboard.Bitboard) bitboard.Bitboard {
	return (pawns << pd.leftshift >> pd.rightshift) &^ occupied
}

func (pd pawnDingbat) doublePushTargets(pawns, occupied bitboard.Bitboard) bitboard.Bitboard {
	single := pd.singlePushTargets(pawns, occupied)
	return (single << pd.leftshift >> pd.rightshift) &^ occupied & pd.doublePushTargetRank
}

func (pd pawnDingbat) singlePushDirection() int {
	return int(pd.leftshift) - int(pd.rightshift)
}

func (pd pawnDingbat) doublePushDirection() int {
	return 2 * pd.singlePushDirection()
}

var pawnDingbats = [enum.ColorCardinality]pawnDingbat{
	enum.White: {leftshift: 8, rightshift: 0, doublePushTargetRank: bitboard.Rank4, promotionRank: bitboard.Rank8},
	enum.Black: {leftshift: 0, rightshift: 8, doublePushTargetRank: bitboard.Rank5, promotionRank: bitboard.Rank1},
}

// PawnDingbat exposes the per-color pawn push geometry to movegen.
type PawnDingbat = pawnDingbat

// Dingbat returns the pawn push geometry for color c.
func Dingbat(c enum.Color) PawnDingbat { return pawnDingbats[c] }

// pawnAttackType describes one of a pawn's two diagonal capture directions,
// relative to the forward shift already applied by pawnDingbat.
type pawnAttackType struct {
	leftshift, rightshift uint
	badTarget             bitboard.Bitboard
}

var pawnAttackTypes = [2]pawnAttackType{
	{leftshift: 0, rightshift: 1, badTarget: bitboard.FileH},
	{leftshift: 1, rightshift: 0, badTarget: bitboard.FileA},
}

func pawnAttacksOne(pawns bitboard.Bitboard, pd pawnDingbat, pa pawnAttackType) bitboard.Bitboard {
	return (pawns << (pd.leftshift + pa.leftshift) >> (pd.rightshift + pa.rightshift)) &^ pa.badTarget
}

// PawnAttacks returns every square attacked by the given color's pawns.
func PawnAttacks(c enum.Color, pawns bitboard.Bitboard) bitboard.Bitboard {
	pd := pawnDingbats[c]
	var attacks bitboard.Bitboard
	for _, pa := range pawnAttackTypes {
		attacks |= pawnAttacksOne(pawns, pd, pa)
	}
	return attacks
}

// PawnPushDirection returns the board-index delta of a single pawn push for
// color c (+8 for white, -8 for black), used by movegen to recover a pawn's
// source square from a push target.
func PawnPushDirection(c enum.Color) int {
	return pawnDingbats[c].singlePushDirection()
}

// PawnDoublePushDirection returns the board-index delta of a double pawn push.
func PawnDoublePushDirection(c enum.Color) int {
	return pawnDingbats[c].doublePushDirection()
}

// PawnSinglePushTargets returns the squares a color's pawns can advance to
// by one step given the current occupancy.
func PawnSinglePushTargets(c enum.Color, pawns, occupied bitboard.Bitboard) bitboard.Bitboard {
	return pawnDingbats[c].singlePushTargets(pawns, occupied)
}

// PawnDoublePushTargets returns the squares a color's pawns can advance to
// by two steps given the current occupancy.
func PawnDoublePushTargets(c enum.Color, pawns, occupied bitboard.Bitboard) bitboard.Bitboard {
	return pawnDingbats[c].doublePushTargets(pawns, occupied)
}

// PromotionRank returns the rank on which color c's pawns promote.
func PromotionRank(c enum.Color) bitboard.Bitboard {
	return pawnDingbats[c].promotionRank
}

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

package notation

import (
	"regexp"

	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/movegen"
	"github.com/frankkopp/mc-chess/position"
)

// algebraicPattern mirrors the reference implementation's
// notation::algebraic regex: an optional piece letter, optional source file
// and/or rank for disambiguation, an optional capture marker, the target
// square, an optional promotion, or one of the two castle spellings. A
// trailing check/mate marker is accepted and ignored.
var algebraicPattern = regexp.MustCompile(
	`^(?:([NBRQK]?)([a-h])?([1-8])?(x)?([a-h][1-8])(?:=([NBRQ]))?|(O-O-O|0-0-0)|(O-O|0-0))[+#]?$`)

// ParseAlgebraic parses a standard algebraic move string such as "Nf3",
// "exd5", "e8=Q", or "O-O" and matches it against p's legal moves. It
// returns AmbiguousMoveError if more than one legal move fits the string,
// and IllegalMoveError if none does.
func ParseAlgebraic(s string, p *position.Position) (enum.Move, error) {
	m := algebraicPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, &ParseError{Input: s, Reason: "does not match algebraic move grammar"}
	}

	var predicate func(move enum.Move) bool
	switch {
	case m[7] != "":
		predicate = func(move enum.Move) bool { return move == enum.CastleMove(p.Us, enum.Queenside) }
	case m[8] != "":
		predicate = func(move enum.Move) bool { return move == enum.CastleMove(p.Us, enum.Kingside) }
	default:
		piece := enum.Pawn
		if m[1] != "" {
			piece, _ = enum.PieceFromSymbol(m[1][0])
		}

		var sourceFile bitboard.FileIndex = -1
		var sourceRank bitboard.RankIndex = -1
		if m[2] != "" {
			sourceFile = bitboard.FileIndex(m[2][0] - 'a')
		}
		if m[3] != "" {
			sourceRank = bitboard.RankIndex(m[3][0] - '1')
		}

		isCapture := m[4] != ""
		target, _ := bitboard.ParseSquare(m[5])

		var promotion enum.Piece
		wantsPromotion := m[6] != ""
		if wantsPromotion {
			promotion, _ = enum.PieceFromSymbol(m[6][0])
		}

		predicate = func(move enum.Move) bool {
			cp, ok := p.ColoredPieceAt(move.Source())
			if !ok || cp.Color != p.Us || cp.Piece != piece {
				return false
			}
			if sourceFile >= 0 && move.Source().File() != sourceFile {
				return false
			}
			if sourceRank >= 0 && move.Source().Rank() != sourceRank {
				return false
			}
			if isCapture != move.IsCapture() {
				return false
			}
			promoted, isPromotion := move.Promotion()
			if isPromotion != wantsPromotion {
				return false
			}
			if isPromotion && promoted != promotion {
				return false
			}
			return move.Target() == target
		}
	}

	var candidates []enum.Move
	for _, move := range movegen.LegalMoves(p) {
		if predicate(move) {
			candidates = append(candidates, move)
		}
	}

	switch len(candidates) {
	case 0:
		return 0, &IllegalMoveError{Input: s}
	case 1:
		return candidates[0], nil
	default:
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = FormatCoordinate(c)
		}
		return 0, &AmbiguousMoveError{Input: s, Candidates: names}
	}
}

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

var coordinatePattern = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrq])?$`)

// ParseCoordinate parses a coordinate move such as "e2e4" or "e7e8q" and
// matches it against p's legal moves.
func ParseCoordinate(s string, p *position.Position) (enum.Move, error) {
	m := coordinatePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, &ParseError{Input: s, Reason: "does not match coordinate move grammar"}
	}
	source, _ := bitboard.ParseSquare(m[1])
	target, _ := bitboard.ParseSquare(m[2])
	var promotion enum.Piece
	wantsPromotion := m[3] != ""
	if wantsPromotion {
		promotion, _ = enum.PieceFromSymbol(m[3][0])
	}

	for _, move := range movegen.LegalMoves(p) {
		if move.Source() != source || move.Target() != target {
			continue
		}
		promoted, isPromotion := move.Promotion()
		if isPromotion != wantsPromotion {
			continue
		}
		if isPromotion && promoted != promotion {
			continue
		}
		return move, nil
	}
	return 0, &IllegalMoveError{Input: s}
}

// FormatCoordinate renders move in coordinate notation, e.g. "e7e8q".
func FormatCoordinate(move enum.Move) string {
	s := move.Source().String() + move.Target().String()
	if promotion, ok := move.Promotion(); ok {
		s += string(promotion.Symbol(enum.Black))
	}
	return s
}

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

package movegen

import (
	"math/rand/v2"

	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/position"
)

// MaybeFastRandomMove picks a random occupied square, generates moves for
// just that one piece, and returns a uniformly random one of those -- much
// cheaper than generating every move in the position, at the cost of
// sometimes (when the chosen piece happens to have no moves) finding
// nothing. It does not reliably find king-capture moves, so callers in
// check or with their king already attacked should not rely on it alone.
func MaybeFastRandomMove(p *position.Position, r *rand.Rand) (enum.Move, bool) {
	source := bitboard.RandomSquare(p.Occupancy[p.Us], r)
	piece := p.PieceAt(source, p.Us)

	candidates := generatePiece(nil, p, piece, source.Bitboard())
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[r.IntN(len(candidates))], true
}

// RandomMove returns a random pseudolegal move, or ok=false if none exist.
// It tries the fast path a few times before falling back to generating the
// full move list; the fast path picks a piece first, so not every move is
// equally likely.
func RandomMove(p *position.Position, r *rand.Rand) (enum.Move, bool) {
	if p.GameDefinitelyOver() {
		return 0, false
	}

	if !p.InCheck() && !p.TheirKingAttacked() {
		for i := 0; i < 3; i++ {
			if move, ok := MaybeFastRandomMove(p, r); ok {
				return move, true
			}
		}
	}

	moves := Moves(p)
	if len(moves) == 0 {
		return 0, false
	}
	return moves[r.IntN(len(moves))], true
}

// MaybeMakeFastRandomLegalMove tries MaybeFastRandomMove and, if it finds a
// move, plays it -- but only if it turns out to be legal; otherwise it is
// unmade and reported as not found.
func MaybeMakeFastRandomLegalMove(p *position.Position, r *rand.Rand) (enum.Move, bool) {
	move, ok := MaybeFastRandomMove(p, r)
	if !ok {
		return 0, false
	}
	undo := p.MakeMove(move)
	if p.TheirKingAttacked() {
		p.UnmakeMove(undo)
		return 0, false
	}
	return move, true
}

// MakeRandomLegalMove plays and returns a random legal move, or ok=false if
// the position has none. Like RandomMove it tries the fast path first, so
// not every move is equally likely; the fallback picks uniformly from the
// full legal move list.
func MakeRandomLegalMove(p *position.Position, r *rand.Rand) (enum.Move, bool) {
	if p.GameDefinitelyOver() {
		return 0, false
	}

	if !p.InCheck() {
		for i := 0; i < 3; i++ {
			if move, ok := MaybeMakeFastRandomLegalMove(p, r); ok {
				return move, true
			}
		}
	}

	moves := LegalMoves(p)
	if len(moves) == 0 {
		return 0, false
	}
	move := moves[r.IntN(len(moves))]
	p.MakeMove(move)
	return move, true
}

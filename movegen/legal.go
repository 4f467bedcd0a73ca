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
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/position"
)

// LegalMoves returns every pseudolegal move that does not leave the moving
// side's own king attacked. It mutates p transiently (each candidate move
// is made and unmade) but leaves it unchanged on return.
func LegalMoves(p *position.Position) []enum.Move {
	moves := Moves(p)
	return EraseIllegalMoves(moves, p)
}

// EraseIllegalMoves filters moves in place, keeping only those that don't
// leave the moving side's own king attacked after being played, and
// returns the kept slice.
func EraseIllegalMoves(moves []enum.Move, p *position.Position) []enum.Move {
	kept := moves[:0]
	for _, move := range moves {
		undo := p.MakeMove(move)
		if !p.TheirKingAttacked() {
			kept = append(kept, move)
		}
		p.UnmakeMove(undo)
	}
	return kept
}

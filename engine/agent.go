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

// Package engine turns an mcts.Tree into something a game loop can hold a
// conversation with: set a position, let it think in the background between
// moves, and ask it to commit to one when time runs out.
package engine

import (
	"context"

	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/position"
)

// Agent is the decision-making surface xboard drives. Every method is safe
// to call while pondering is active; implementations are responsible for
// coordinating with their own background work.
type Agent interface {
	// SetState replaces the position under consideration with p, discarding
	// any tree built for a different game.
	SetState(p *position.Position)

	// AdvanceState plays move on the current position. Implementations
	// should keep whatever analysis they already have for the resulting
	// position rather than starting over.
	AdvanceState(move enum.Move)

	// StartPondering begins analyzing the current position in the
	// background, continuing until StopPondering is called.
	StartPondering()

	// StopPondering halts background analysis. It is a no-op if pondering
	// was not active.
	StopPondering()

	// StartDecision begins deciding on a move for the current position and
	// returns a channel that receives exactly one move once the decision is
	// final -- either because ctx was canceled, or FinalizeDecision or
	// AbortDecision was called. The channel is closed without a value if
	// AbortDecision was called or the position had no legal move.
	StartDecision(ctx context.Context) <-chan enum.Move

	// FinalizeDecision ends an in-flight decision immediately, delivering
	// whatever move the search currently favors.
	FinalizeDecision()

	// AbortDecision ends an in-flight decision immediately without
	// delivering a move.
	AbortDecision()

	// AcceptDraw reports whether the agent would agree to a draw offer in
	// the current position.
	AcceptDraw() bool
}

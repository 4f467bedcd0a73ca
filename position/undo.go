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
	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
)

// Undo is everything UnmakeMove needs to restore a Position after MakeMove,
// besides what MakeMove already leaves cheap to recompute (occupancy,
// their-attacks and the hash are all recomputed from scratch rather than
// reversed, since reversing them correctly for every move type is more
// failure-prone than recomputing).
type Undo struct {
	Move Move

	PriorHalfmoveClock   int
	PriorEnPassantSquare bitboard.Bitboard
	PriorCastlingRights  CastlingRights

	// CapturedPiece and CaptureSquare describe what MakeMove removed from
	// the opponent's halfboard, if anything. CaptureSquare is zero and
	// CapturedPiece is meaningless when the move was not a capture --
	// callers must check Move.IsCapture() first, exactly as the reference
	// implementation's Undo does by defaulting captured_piece to pawn.
	CapturedPiece enum.Piece
	CaptureSquare bitboard.Bitboard
}

// Move is a re-export of enum.Move so callers that only import position
// rarely need to import enum directly for move plumbing.
type Move = enum.Move

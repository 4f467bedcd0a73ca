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

// Package zobrist holds the process-wide random feature tables used to
// maintain a Position's incremental hash. Every feature is generated once,
// from a fixed seed, at package init time: two processes built from the
// same binary always agree on a position's hash, which matters for
// reproducing a game from its move list alone.
package zobrist

import (
	"math/rand/v2"

	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
)

// Hash is a 64-bit incremental position fingerprint, XOR-combined from the
// features below. It is recomputable from scratch at any time via
// Position.ComputeHash, which UnmakeMove uses to restore the hash.
type Hash uint64

const seed = 1070372

var (
	blackToMove          Hash
	coloredPieceAtSquare [bitboard.Cardinality][enum.ColorCardinality][enum.PieceCardinality]Hash
	canCastle            [enum.ColorCardinality][enum.CastleCardinality]Hash
	enPassantFile        [8]Hash
)

func init() {
	r := rand.New(rand.NewPCG(seed, seed))
	next := func() Hash { return Hash(r.Uint64()) }

	blackToMove = next()
	for s := bitboard.A1; s <= bitboard.H8; s++ {
		for _, c := range enum.Colors {
			for _, p := range enum.Pieces {
				coloredPieceAtSquare[s][c][p] = next()
			}
		}
	}
	for _, c := range enum.Colors {
		for castle := enum.Castle(0); castle < enum.CastleCardinality; castle++ {
			canCastle[c][castle] = next()
		}
	}
	for f := bitboard.FileIndex(0); f < 8; f++ {
		enPassantFile[f] = next()
	}
}

// BlackToMove is XORed into the hash whenever it becomes black's turn to
// move, and XORed back out when it becomes white's again.
func BlackToMove() Hash {
	return blackToMove
}

// ColoredPieceAtSquare returns the feature for a piece of color c occupying
// square s.
func ColoredPieceAtSquare(c enum.Color, p enum.Piece, s bitboard.Square) Hash {
	return coloredPieceAtSquare[s][c][p]
}

// CanCastle returns the feature for color c still holding castling right
// castle.
func CanCastle(c enum.Color, castle enum.Castle) Hash {
	return canCastle[c][castle]
}

// EnPassant returns the feature for an en passant capture being available
// on the file underlying enPassantSquare, a singleton bitboard.
func EnPassant(enPassantSquare bitboard.Bitboard) Hash {
	return enPassantFile[enPassantSquare.LSB().File()]
}

// Toggle XORs the feature for (c, p, s) into hash, in place. Calling it
// twice with the same arguments is a no-op, which is what lets make/unmake
// move toggle a piece off its source square and back on again cheaply.
func Toggle(hash *Hash, c enum.Color, p enum.Piece, s bitboard.Square) {
	*hash ^= ColoredPieceAtSquare(c, p, s)
}

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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankkopp/mc-chess/attacks"
	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/position"
)

func TestMovesFromStartingPositionCountsTwenty(t *testing.T) {
	p := position.New()
	moves := Moves(p)
	require.Len(t, moves, 20)
}

func TestLegalMovesFromStartingPositionMatchesPseudolegal(t *testing.T) {
	p := position.New()
	moves := LegalMoves(p)
	require.Len(t, moves, 20)
}

func TestLegalMovesExcludesMovesThatExposeOwnKing(t *testing.T) {
	p := position.New()

	// Clear the board down to bare kings plus a white rook pinned by a
	// black rook on the same file, and confirm the rook cannot step off
	// the file even though it pseudolegally can.
	p.Board[enum.White] = attacks.Halfboard{}
	p.Board[enum.Black] = attacks.Halfboard{}
	p.Board[enum.White][enum.King] = bitboard.E1.Bitboard()
	p.Board[enum.White][enum.Rook] = bitboard.E2.Bitboard()
	p.Board[enum.Black][enum.King] = bitboard.E8.Bitboard()
	p.Board[enum.Black][enum.Rook] = bitboard.E7.Bitboard()
	p.Us, p.Them = enum.White, enum.Black
	p.ComputeOccupancy()
	p.ComputeTheirAttacks()
	p.ComputeHash()

	for _, move := range LegalMoves(p) {
		if move.Source() == bitboard.E2 {
			require.Equal(t, bitboard.E2.File(), move.Target().File(), "pinned rook must stay on the e-file: %s", move)
		}
	}
}

func TestCheckEvadingMovesOnlyCaptureOrBlockOrMoveKing(t *testing.T) {
	p := position.New()

	p.Board[enum.White] = attacks.Halfboard{}
	p.Board[enum.Black] = attacks.Halfboard{}
	p.Board[enum.White][enum.King] = bitboard.E1.Bitboard()
	p.Board[enum.White][enum.Knight] = bitboard.D2.Bitboard()
	p.Board[enum.Black][enum.King] = bitboard.E8.Bitboard()
	p.Board[enum.Black][enum.Rook] = bitboard.E5.Bitboard()
	p.Us, p.Them = enum.White, enum.Black
	p.ComputeOccupancy()
	p.ComputeTheirAttacks()
	p.ComputeHash()

	require.True(t, p.InCheck())

	moves := Moves(p)
	require.NotEmpty(t, moves)
	between := attacks.InBetween(bitboard.E1, bitboard.E5)
	for _, move := range moves {
		switch {
		case move.Source() == bitboard.E1:
			// king move, always allowed to be generated pseudolegally
		case move.Target() == bitboard.E5:
			// captures the checking rook
		case move.Target().Bitboard()&between != 0:
			// blocks on the e-file between king and rook
		default:
			t.Fatalf("move %s neither moves the king, captures the checker, nor blocks", move)
		}
	}
}

func TestCastleMovesAppearWhenRightsAndSquaresAllow(t *testing.T) {
	p := position.New()
	p.Board[enum.White][enum.Bishop] = bitboard.Empty
	p.Board[enum.White][enum.Knight] &^= bitboard.G1.Bitboard()
	p.ComputeOccupancy()
	p.ComputeTheirAttacks()
	p.ComputeHash()

	found := false
	for _, move := range Moves(p) {
		if move.Type() == enum.CastleKingside {
			found = true
		}
	}
	require.True(t, found, "expected kingside castle to be available once f1/g1 are clear")
}

func TestRandomMoveIsAlwaysAmongLegalMoves(t *testing.T) {
	p := position.New()
	legal := LegalMoves(p)

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		move, ok := RandomMove(p, r)
		require.True(t, ok)
		require.Contains(t, legal, move)
	}
}

func TestMakeRandomLegalMovePlaysAndReturnsAMove(t *testing.T) {
	p := position.New()
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 20 && !p.GameDefinitelyOver(); i++ {
		before := p.Hash
		move, ok := MakeRandomLegalMove(p, r)
		require.True(t, ok)
		require.NotEqual(t, before, p.Hash, "move %s should change the hash", move)
		require.False(t, p.TheirKingAttacked())
	}
}

func TestRandomMoveOnCheckmateFindsNothing(t *testing.T) {
	p := position.New()

	// Fool's mate position: black has just delivered checkmate and it is
	// white to move with no legal response.
	p.MakeMove(enum.NewMove(bitboard.F2, bitboard.F3, enum.Normal))
	p.MakeMove(enum.NewMove(bitboard.E7, bitboard.E5, enum.DoublePush))
	p.MakeMove(enum.NewMove(bitboard.G2, bitboard.G4, enum.DoublePush))
	p.MakeMove(enum.NewMove(bitboard.D8, bitboard.H4, enum.Normal))

	require.True(t, p.InCheck())
	require.Empty(t, LegalMoves(p))
	_, ok := RandomMove(p, rand.New(rand.NewPCG(5, 6)))
	require.False(t, ok)
}

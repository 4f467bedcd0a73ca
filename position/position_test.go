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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
)

func TestNewIsConsistent(t *testing.T) {
	p := New()
	require.Equal(t, enum.White, p.Us)
	require.Equal(t, 16, p.Occupancy[enum.White].Count())
	require.Equal(t, 16, p.Occupancy[enum.Black].Count())
	require.False(t, p.InCheck())

	wantHash := p.Hash
	p.ComputeHash()
	require.Equal(t, wantHash, p.Hash, "incremental hash and recomputed hash must agree")
}

func TestMakeUnmakeRoundTripsNormalMove(t *testing.T) {
	p := New()
	before := *p

	move := enum.NewMove(bitboard.E2, bitboard.E4, enum.DoublePush)
	undo := p.MakeMove(move)

	require.Equal(t, enum.Black, p.Us)
	require.True(t, p.Board[enum.White][enum.Pawn]&bitboard.E4.Bitboard() != 0)
	require.Equal(t, p.EnPassantSquare, bitboard.E3.Bitboard())

	p.UnmakeMove(undo)
	require.Equal(t, before, *p)
}

func TestMakeUnmakeRoundTripsCapture(t *testing.T) {
	p := New()
	// March a white pawn to d5 then let it capture a black pawn on e6.
	p.MakeMove(enum.NewMove(bitboard.D2, bitboard.D4, enum.DoublePush))
	p.MakeMove(enum.NewMove(bitboard.E7, bitboard.E5, enum.DoublePush))
	p.MakeMove(enum.NewMove(bitboard.D4, bitboard.D5, enum.Normal))
	p.MakeMove(enum.NewMove(bitboard.E5, bitboard.E6, enum.Normal))

	before := *p
	move := enum.NewMove(bitboard.D5, bitboard.E6, enum.Capture)
	undo := p.MakeMove(move)

	require.Equal(t, enum.Pawn, undo.CapturedPiece)
	require.True(t, p.Board[enum.White][enum.Pawn]&bitboard.E6.Bitboard() != 0)
	require.True(t, p.Board[enum.Black][enum.Pawn]&bitboard.E6.Bitboard() == 0)

	p.UnmakeMove(undo)
	require.Equal(t, before, *p)
}

func TestMakeUnmakeRoundTripsEnPassant(t *testing.T) {
	p := New()
	p.MakeMove(enum.NewMove(bitboard.E2, bitboard.E4, enum.DoublePush))
	p.MakeMove(enum.NewMove(bitboard.A7, bitboard.A6, enum.Normal))
	p.MakeMove(enum.NewMove(bitboard.E4, bitboard.E5, enum.Normal))
	p.MakeMove(enum.NewMove(bitboard.D7, bitboard.D5, enum.DoublePush))

	before := *p
	move := enum.NewMove(bitboard.E5, bitboard.D6, enum.Capture)
	undo := p.MakeMove(move)

	require.Equal(t, enum.Pawn, undo.CapturedPiece)
	require.Equal(t, bitboard.D5.Bitboard(), undo.CaptureSquare)
	require.True(t, p.Board[enum.Black][enum.Pawn]&bitboard.D5.Bitboard() == 0)
	require.True(t, p.Board[enum.White][enum.Pawn]&bitboard.D6.Bitboard() != 0)

	p.UnmakeMove(undo)
	require.Equal(t, before, *p)
}

func TestMakeUnmakeRoundTripsCastle(t *testing.T) {
	p := New()
	p.Board[enum.White][enum.Bishop] &^= bitboard.F1.Bitboard()
	p.Board[enum.White][enum.Knight] &^= bitboard.G1.Bitboard()
	p.ComputeOccupancy()
	p.ComputeHash()

	before := *p
	move := enum.CastleMove(enum.White, enum.Kingside)
	undo := p.MakeMove(move)

	require.True(t, p.Board[enum.White][enum.King]&bitboard.G1.Bitboard() != 0)
	require.True(t, p.Board[enum.White][enum.Rook]&bitboard.F1.Bitboard() != 0)
	require.False(t, p.CastlingRights[enum.White][enum.Kingside])

	p.UnmakeMove(undo)
	require.Equal(t, before, *p)
}

func TestMakeUnmakeRoundTripsPromotion(t *testing.T) {
	p := New()
	p.Board[enum.White][enum.Pawn] &^= bitboard.A2.Bitboard()
	p.Board[enum.White][enum.Pawn] |= bitboard.A7.Bitboard()
	p.Board[enum.Black][enum.Pawn] &^= bitboard.A7.Bitboard()
	p.ComputeOccupancy()
	p.ComputeHash()

	before := *p
	move := enum.NewMove(bitboard.A7, bitboard.A8, enum.PromotionQueen)
	undo := p.MakeMove(move)

	require.True(t, p.Board[enum.White][enum.Queen]&bitboard.A8.Bitboard() != 0)
	require.True(t, p.Board[enum.White][enum.Pawn]&bitboard.A8.Bitboard() == 0)

	p.UnmakeMove(undo)
	require.Equal(t, before, *p)
}

func TestCanCastleRequiresSafeAndFreeSquares(t *testing.T) {
	p := New()
	require.False(t, p.CanCastle(enum.Kingside), "bishop and knight still block f1/g1")

	p.Board[enum.White][enum.Bishop] &^= bitboard.F1.Bitboard()
	p.Board[enum.White][enum.Knight] &^= bitboard.G1.Bitboard()
	p.ComputeOccupancy()
	require.True(t, p.CanCastle(enum.Kingside))
}

func TestWinnerIsNoneBeforeGameOver(t *testing.T) {
	p := New()
	_, ok := p.Winner()
	require.False(t, ok)
}

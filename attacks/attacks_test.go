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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankkopp/mc-chess/bitboard"
)

func TestRookAttacksOnEmptyBoard(t *testing.T) {
	got := RookAttacks(bitboard.D4, bitboard.Empty)
	want := bitboard.FileOf(bitboard.D4) | bitboard.RankOf(bitboard.D4)
	want = want.Without(bitboard.D4)
	require.Equal(t, want, got)
}

func TestRookAttacksStopAtBlocker(t *testing.T) {
	occ := bitboard.D6.Bitboard()
	got := RookAttacks(bitboard.D4, occ)
	require.True(t, got.Has(bitboard.D5))
	require.True(t, got.Has(bitboard.D6))
	require.False(t, got.Has(bitboard.D7))
}

func TestBishopAttacksOnEmptyBoard(t *testing.T) {
	got := BishopAttacks(bitboard.D4, bitboard.Empty)
	want := bitboard.DiagonalOf(bitboard.D4) | bitboard.AntidiagonalOf(bitboard.D4)
	want = want.Without(bitboard.D4)
	require.Equal(t, want, got)
}

func TestKnightAttacksFromCorner(t *testing.T) {
	got := KnightAttacks(bitboard.A1)
	require.Equal(t, bitboard.B3.Bitboard()|bitboard.C2.Bitboard(), got)
}

func TestKingAttacksFromCorner(t *testing.T) {
	got := KingAttacks(bitboard.A1.Bitboard())
	require.Equal(t, 3, got.Count())
	require.True(t, got.Has(bitboard.A2))
	require.True(t, got.Has(bitboard.B1))
	require.True(t, got.Has(bitboard.B2))
}

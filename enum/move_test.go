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

package enum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankkopp/mc-chess/bitboard"
)

func TestMovePacksAndUnpacks(t *testing.T) {
	m := NewMove(bitboard.E2, bitboard.E4, DoublePush)
	require.Equal(t, bitboard.E2, m.Source())
	require.Equal(t, bitboard.E4, m.Target())
	require.Equal(t, DoublePush, m.Type())
	require.False(t, m.IsCapture())
	require.False(t, m.IsPromotion())
}

func TestMovePromotionAndCapture(t *testing.T) {
	m := NewMove(bitboard.B7, bitboard.A8, CapturingPromotionQueen)
	require.True(t, m.IsCapture())
	piece, ok := m.Promotion()
	require.True(t, ok)
	require.Equal(t, Queen, piece)
}

func TestCastleMoveRoundTrip(t *testing.T) {
	m := CastleMove(White, Kingside)
	require.True(t, m.IsCastle())
	require.Equal(t, bitboard.E1, m.Source())
	require.Equal(t, bitboard.G1, m.Target())
}

func TestCastleInvolvingOnlyHomeSquares(t *testing.T) {
	_, ok := Involving(bitboard.H1, White)
	require.True(t, ok)
	_, ok = Involving(bitboard.H1, Black)
	require.False(t, ok)
	_, ok = Involving(bitboard.D4, White)
	require.False(t, ok)
}

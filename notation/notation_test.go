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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankkopp/mc-chess/position"
)

func TestFormatFENOfStartingPositionMatchesStandardDump(t *testing.T) {
	require.Equal(t,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
		FormatFEN(position.New()))
}

func TestParseFENRoundTripsThroughFormatFEN(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"
	p, err := ParseFEN(fen)
	require.NoError(t, err)
	require.Equal(t, fen, FormatFEN(p))
}

func TestParseFENRecoversEnPassantTargetAndSideToMove(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	require.Equal(t, "d6", p.EnPassantSquare.LSB().String())
	require.Equal(t, "white", p.Us.String())
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	_, err := ParseFEN("not a fen string")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseCoordinateMatchesALegalMove(t *testing.T) {
	move, err := ParseCoordinate("e2e4", position.New())
	require.NoError(t, err)
	require.Equal(t, "e2e4", FormatCoordinate(move))
}

func TestParseCoordinateRejectsAnIllegalMove(t *testing.T) {
	_, err := ParseCoordinate("e2e5", position.New())
	require.Error(t, err)
	var illegal *IllegalMoveError
	require.ErrorAs(t, err, &illegal)
}

func TestParseAlgebraicResolvesAPawnPush(t *testing.T) {
	move, err := ParseAlgebraic("e4", position.New())
	require.NoError(t, err)
	require.Equal(t, "e2e4", FormatCoordinate(move))
}

func TestParseAlgebraicResolvesAKnightDevelopingMove(t *testing.T) {
	move, err := ParseAlgebraic("Nf3", position.New())
	require.NoError(t, err)
	require.Equal(t, "g1f3", FormatCoordinate(move))
}

func TestParseAlgebraicDisambiguatesBySourceFile(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	move, err := ParseAlgebraic("Rad1", p)
	require.NoError(t, err)
	require.Equal(t, "a1d1", FormatCoordinate(move))
}

func TestParseAlgebraicCastleKingside(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	move, err := ParseAlgebraic("O-O", p)
	require.NoError(t, err)
	require.True(t, move.IsCastle())
}

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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankkopp/mc-chess/position"
)

// perft counts the leaf positions reached by playing every legal move to
// depth, recursing over the resulting positions. It exists to cross-check
// LegalMoves against known node counts from the starting position, not as a
// production diagnostic.
func perft(p *position.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	nodes := 0
	for _, move := range LegalMoves(p) {
		undo := p.MakeMove(move)
		nodes += perft(p, depth-1)
		p.UnmakeMove(undo)
	}
	return nodes
}

func TestPerftFromStartingPositionMatchesKnownNodeCounts(t *testing.T) {
	cases := []struct {
		depth int
		nodes int
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		p := position.New()
		require.Equal(t, c.nodes, perft(p, c.depth), "perft(%d)", c.depth)
	}
}

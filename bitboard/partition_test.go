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

package bitboard

import "testing"

// every square belongs to exactly one file, one rank, one diagonal and one
// antidiagonal; the partitions are disjoint and exhaustive.
func TestPartitionsExhaustiveAndDisjoint(t *testing.T) {
	var fileUnion, rankUnion, diagUnion, antidiagUnion Bitboard
	for f := FileIndex(0); f < 8; f++ {
		if fileUnion&FileBB(f) != 0 {
			t.Fatalf("file %d overlaps a previous file", f)
		}
		fileUnion |= FileBB(f)
	}
	for r := RankIndex(0); r < 8; r++ {
		if rankUnion&RankBB(r) != 0 {
			t.Fatalf("rank %d overlaps a previous rank", r)
		}
		rankUnion |= RankBB(r)
	}
	if fileUnion != All || rankUnion != All {
		t.Fatalf("files or ranks do not cover the board")
	}

	seenDiag := map[int]bool{}
	seenAntidiag := map[int]bool{}
	for s := A1; s <= H8; s++ {
		di, ai := DiagonalIndex(s), AntidiagonalIndex(s)
		if !seenDiag[di] {
			seenDiag[di] = true
			diagUnion |= DiagonalOf(s)
		}
		if !seenAntidiag[ai] {
			seenAntidiag[ai] = true
			antidiagUnion |= AntidiagonalOf(s)
		}
	}
	if diagUnion != All || antidiagUnion != All {
		t.Fatalf("diagonals or antidiagonals do not cover the board")
	}
}

func TestMainDiagonalContainsCorners(t *testing.T) {
	if !MainDiagonal.Has(A1) || !MainDiagonal.Has(H8) {
		t.Fatalf("main diagonal should contain a1 and h8")
	}
	if MainDiagonal.Has(A8) || MainDiagonal.Has(H1) {
		t.Fatalf("main diagonal should not contain a8 or h1")
	}
}

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

// The board is partitioned several different ways: into 8 files, 8 ranks,
// 15 diagonals (constant rank-file, the "/" direction) and 15 antidiagonals
// (constant rank+file, the "\" direction). Each partition's by-square lookup
// table is built once, by testing every square against every part, rather
// than hand-transcribed, so the tables are self-evidently exhaustive and
// disjoint within a partition.

var (
	fileBB         [8]Bitboard
	rankBB         [8]Bitboard
	diagonalBB     [15]Bitboard
	antidiagonalBB [15]Bitboard

	// MainDiagonal is the a1-h8 diagonal, used by the rank-slide projection
	// trick (see attacks.slideRank) as a convenient eight-square spread to
	// project a rank's occupancy onto and back.
	MainDiagonal Bitboard
)

func init() {
	for s := A1; s <= H8; s++ {
		fileBB[s.File()] = fileBB[s.File()].With(s)
		rankBB[s.Rank()] = rankBB[s.Rank()].With(s)
		diagonalBB[DiagonalIndex(s)] = diagonalBB[DiagonalIndex(s)].With(s)
		antidiagonalBB[AntidiagonalIndex(s)] = antidiagonalBB[AntidiagonalIndex(s)].With(s)
	}
	MainDiagonal = diagonalBB[DiagonalIndex(A1)]
}

// DiagonalIndex returns which of the 15 "/" diagonals (constant rank-file)
// s lies on, in the range [0,15).
func DiagonalIndex(s Square) int {
	return int(s.Rank()) - int(s.File()) + 7
}

// AntidiagonalIndex returns which of the 15 "\" diagonals (constant
// rank+file) s lies on, in the range [0,15).
func AntidiagonalIndex(s Square) int {
	return int(s.Rank()) + int(s.File())
}

// FileBB returns every square on file f.
func FileBB(f FileIndex) Bitboard { return fileBB[f] }

// RankBB returns every square on rank r.
func RankBB(r RankIndex) Bitboard { return rankBB[r] }

// FileOf returns every square sharing a file with s.
func FileOf(s Square) Bitboard { return fileBB[s.File()] }

// RankOf returns every square sharing a rank with s.
func RankOf(s Square) Bitboard { return rankBB[s.Rank()] }

// DiagonalOf returns every square on the same "/" diagonal as s.
func DiagonalOf(s Square) Bitboard { return diagonalBB[DiagonalIndex(s)] }

// AntidiagonalOf returns every square on the same "\" diagonal as s.
func AntidiagonalOf(s Square) Bitboard { return antidiagonalBB[AntidiagonalIndex(s)] }

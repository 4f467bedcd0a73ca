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

func TestPopLSB(t *testing.T) {
	b := A1.Bitboard() | D4.Bitboard() | H8.Bitboard()
	var got []Square
	for b != Empty {
		var s Square
		s, b = b.PopLSB()
		got = append(got, s)
	}
	want := []Square{A1, D4, H8}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCount(t *testing.T) {
	if c := All.Count(); c != 64 {
		t.Fatalf("All.Count() = %d, want 64", c)
	}
	if c := Empty.Count(); c != 0 {
		t.Fatalf("Empty.Count() = %d, want 0", c)
	}
}

func TestByteSwapFlipsRanks(t *testing.T) {
	b := Rank1
	if got := b.ByteSwap(); got != Rank8 {
		t.Fatalf("Rank1.ByteSwap() = %#x, want Rank8 %#x", uint64(got), uint64(Rank8))
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for s := A1; s <= H8; s++ {
		text := s.String()
		got, ok := ParseSquare(text)
		if !ok || got != s {
			t.Fatalf("ParseSquare(%q) = %v, %v; want %v, true", text, got, ok, s)
		}
	}
}

func TestFlipVertically(t *testing.T) {
	cases := map[Square]Square{A1: A8, H1: H8, E4: E5, D8: D1}
	for s, want := range cases {
		if got := s.FlipVertically(); got != want {
			t.Fatalf("%v.FlipVertically() = %v, want %v", s, got, want)
		}
	}
}

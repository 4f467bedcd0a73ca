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

import "github.com/frankkopp/mc-chess/bitboard"

// knightAttackType is one of a knight's eight L-shaped jumps, expressed as a
// pair of shifts (to avoid negative shift counts) plus the file mask that
// must be excluded to prevent the jump from wrapping around the board edge.
type knightAttackType struct {
	leftshift, rightshift uint
	badTarget             bitboard.Bitboard
}

func (ka knightAttackType) direction() int {
	return int(ka.leftshift) - int(ka.rightshift)
}

func (ka knightAttackType) attacks(sources bitboard.Bitboard) bitboard.Bitboard {
	return (sources << ka.leftshift >> ka.rightshift) &^ ka.badTarget
}

var knightAttackTypes = [8]knightAttackType{
	{leftshift: 2*8 + 1, rightshift: 0, badTarget: bitboard.FileA},
	{leftshift: 1, rightshift: 2 * 8, badTarget: bitboard.FileA},
	{leftshift: 2 * 8, rightshift: 1, badTarget: bitboard.FileH},
	{leftshift: 0, rightshift: 2*8 + 1, badTarget: bitboard.FileH},
	{leftshift: 8 + 2, rightshift: 0, badTarget: bitboard.FileA | bitboard.FileB},
	{leftshift: 2, rightshift: 8, badTarget: bitboard.FileA | bitboard.FileB},
	{leftshift: 8, rightshift: 2, badTarget: bitboard.FileG | bitboard.FileH},
	{leftshift: 0, rightshift: 8 + 2, badTarget: bitboard.FileG | bitboard.FileH},
}

// KnightAttacks returns every square attacked by a knight on source.
func KnightAttacks(source bitboard.Square) bitboard.Bitboard {
	sources := source.Bitboard()
	var attacks bitboard.Bitboard
	for _, ka := range knightAttackTypes {
		attacks |= ka.attacks(sources)
	}
	return attacks
}

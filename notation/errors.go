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

import "fmt"

// ParseError reports that a FEN, coordinate, or algebraic string did not
// match the grammar it was parsed against.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("can't parse %q: %s", e.Input, e.Reason)
}

// IllegalMoveError reports that a syntactically valid move string names no
// move the position to move against actually has.
type IllegalMoveError struct {
	Input string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("no match for move: %s", e.Input)
}

// AmbiguousMoveError reports that an algebraic move string, stripped of the
// disambiguation the position would require, matches more than one legal
// move.
type AmbiguousMoveError struct {
	Input      string
	Candidates []string
}

func (e *AmbiguousMoveError) Error() string {
	return fmt.Sprintf("ambiguous move %q, candidates: %v", e.Input, e.Candidates)
}

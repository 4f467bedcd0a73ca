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

// Package notation reads and writes the text formats the CORE itself stays
// silent on: FEN board dumps and coordinate/algebraic move strings. Keeping
// this apart from position means the rollout-heavy search never links
// against a regexp-based parser it never calls.
package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/mc-chess/bitboard"
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/position"
)

var fenPattern = regexp.MustCompile(
	`^([1-8pnbrqkPNBRQK]+(?:/[1-8pnbrqkPNBRQK]+){7})\s+([bw])\s+(K?Q?k?q?|-)\s+([a-h][1-8]|-)\s+(\d+)\s+\d+$`)

// ParseFEN parses Forsyth-Edwards Notation into a Position. It accepts the
// full six-field FEN (board, side to move, castling rights, en-passant
// target, halfmove clock, fullmove number), matching dump_fen's own output.
func ParseFEN(fen string) (*position.Position, error) {
	m := fenPattern.FindStringSubmatch(strings.TrimSpace(fen))
	if m == nil {
		return nil, &ParseError{Input: fen, Reason: "does not match FEN grammar"}
	}

	p := &position.Position{}

	ranks := strings.Split(m[1], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	for rank, row := range ranks {
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if file >= 8 {
				return nil, &ParseError{Input: fen, Reason: fmt.Sprintf("rank %d is wider than 8 files", rank+1)}
			}
			piece, ok := enum.PieceFromSymbol(byte(c))
			if !ok {
				return nil, &ParseError{Input: fen, Reason: fmt.Sprintf("invalid piece symbol %q", c)}
			}
			color := enum.White
			if c >= 'a' && c <= 'z' {
				color = enum.Black
			}
			sq := bitboard.Square(rank*8 + file)
			p.Board[color][piece] |= sq.Bitboard()
			file++
		}
		if file != 8 {
			return nil, &ParseError{Input: fen, Reason: fmt.Sprintf("rank %d has width unequal to 8", rank+1)}
		}
	}

	if m[2] == "w" {
		p.Us, p.Them = enum.White, enum.Black
	} else {
		p.Us, p.Them = enum.Black, enum.White
	}

	rights := m[3]
	p.CastlingRights[enum.White][enum.Kingside] = strings.Contains(rights, "K")
	p.CastlingRights[enum.White][enum.Queenside] = strings.Contains(rights, "Q")
	p.CastlingRights[enum.Black][enum.Kingside] = strings.Contains(rights, "k")
	p.CastlingRights[enum.Black][enum.Queenside] = strings.Contains(rights, "q")

	if m[4] != "-" {
		sq, ok := bitboard.ParseSquare(m[4])
		if !ok {
			return nil, &ParseError{Input: fen, Reason: fmt.Sprintf("invalid en-passant square %q", m[4])}
		}
		p.EnPassantSquare = sq.Bitboard()
	}

	halfmove, err := strconv.Atoi(m[5])
	if err != nil {
		return nil, &ParseError{Input: fen, Reason: "invalid halfmove clock"}
	}
	p.HalfmoveClock = halfmove

	p.ComputeOccupancy()
	p.ComputeTheirAttacks()
	p.ComputeHash()
	return p, nil
}

// FormatFEN renders p as a FEN string, the inverse of ParseFEN.
func FormatFEN(p *position.Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := bitboard.Square(rank*8 + file)
			cp, ok := p.ColoredPieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(cp.Piece.Symbol(cp.Color))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.Us == enum.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	rights := ""
	if p.CastlingRights[enum.White][enum.Kingside] {
		rights += "K"
	}
	if p.CastlingRights[enum.White][enum.Queenside] {
		rights += "Q"
	}
	if p.CastlingRights[enum.Black][enum.Kingside] {
		rights += "k"
	}
	if p.CastlingRights[enum.Black][enum.Queenside] {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	if p.EnPassantSquare == bitboard.Empty {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.EnPassantSquare.LSB().String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteString(" 0")

	return sb.String()
}

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

package xboard

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/movegen"
	"github.com/frankkopp/mc-chess/position"
)

// stubAgent is a minimal engine.Agent that always decides on the first
// legal move it's handed, so tests can drive Handler without depending on
// MCTSAgent's pondering behavior.
type stubAgent struct {
	state *position.Position
}

func (s *stubAgent) SetState(p *position.Position) { s.state = p }
func (s *stubAgent) AdvanceState(move enum.Move)    {}
func (s *stubAgent) StartPondering()                {}
func (s *stubAgent) StopPondering()                 {}
func (s *stubAgent) AbortDecision()                 {}
func (s *stubAgent) FinalizeDecision()              {}
func (s *stubAgent) AcceptDraw() bool               { return true }

func (s *stubAgent) StartDecision(ctx context.Context) <-chan enum.Move {
	result := make(chan enum.Move, 1)
	if s.state != nil {
		if moves := movegen.LegalMoves(s.state); len(moves) > 0 {
			result <- moves[0]
		}
	}
	close(result)
	return result
}

func TestHandlerProtoverRepliesWithFeatures(t *testing.T) {
	h := NewHandler(&stubAgent{})
	result := h.Command("protover 2")
	require.Contains(t, result, `feature myname="mc-chess"`)
	require.Contains(t, result, "feature done=1")
}

func TestHandlerPingEchoesItsArgument(t *testing.T) {
	h := NewHandler(&stubAgent{})
	require.Equal(t, "pong 7\n", h.Command("ping 7"))
}

func TestHandlerUsermoveRejectsAnIllegalMove(t *testing.T) {
	h := NewHandler(&stubAgent{})
	result := h.Command("usermove e2e5")
	require.Contains(t, result, "Illegal move: e2e5")
}

func TestHandlerUsermoveAcceptsALegalMoveAndAdvancesHistory(t *testing.T) {
	h := NewHandler(&stubAgent{})
	h.Command("force")
	h.Command("usermove e2e4")
	require.Equal(t, 2, len(h.history))
}

func TestHandlerSetboardLoadsAPosition(t *testing.T) {
	h := NewHandler(&stubAgent{})
	result := h.Command("setboard 4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.Empty(t, result)
	require.Equal(t, "white", h.current().Us.String())
}

func TestHandlerUndoRevertsTheLastMove(t *testing.T) {
	h := NewHandler(&stubAgent{})
	h.Command("force")
	h.Command("usermove e2e4")
	h.Command("undo")
	require.Equal(t, 1, len(h.history))
}

func TestHandlerLoopStopsOnQuit(t *testing.T) {
	h := NewHandler(&stubAgent{})
	h.InIo = bufio.NewScanner(strings.NewReader("xboard\nprotover 2\nquit\n"))
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.Loop()
	require.Contains(t, buf.String(), "feature done=1")
}

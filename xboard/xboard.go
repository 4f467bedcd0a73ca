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

// Package xboard handles the xboard/winboard protocol conversation between
// a chess GUI and an engine.Agent: reading commands from stdin, keeping the
// game's position history, and reporting the agent's moves back.
package xboard

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/frankkopp/mc-chess/engine"
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/logging"
	"github.com/frankkopp/mc-chess/notation"
	"github.com/frankkopp/mc-chess/position"
)

var log = logging.GetXBoardLog()

// features is the reply to "protover", advertising which optional parts of
// the protocol this engine understands. Kept close to the reference
// implementation's own feature list.
var features = []string{
	"done=0",
	"ping=1",
	"setboard=1",
	"playother=1",
	"san=1",
	"usermove=1",
	"time=0",
	"draw=1",
	"sigint=0",
	"sigterm=0",
	"reuse=1",
	"analyze=0",
	`myname="mc-chess"`,
	`feature="normal"`,
	"colors=0",
	"ics=0",
	"name=0",
	"pause=0",
	"nps=0",
	"debug=0",
	"memory=0",
	"smp=0",
	"done=1",
}

// Handler drives one xboard session: a position history (for undo/remove)
// and the engine.Agent assigned to at most one side at a time.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	agent engine.Agent

	mu         sync.Mutex
	history    []*position.Position
	agentColor *enum.Color
	cancel     context.CancelFunc
}

// NewHandler returns a Handler that drives agent, starting from the
// standard starting position with no side assigned to the engine (force
// mode), reading xboard commands from stdin and writing replies to stdout.
func NewHandler(agent engine.Agent) *Handler {
	start := position.New()
	agent.SetState(start)
	return &Handler{
		InIo:    bufio.NewScanner(os.Stdin),
		OutIo:   bufio.NewWriter(os.Stdout),
		agent:   agent,
		history: []*position.Position{start},
	}
}

// Loop reads and dispatches commands until "quit" is received or input ends.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handleCommand(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single line through the handler and returns whatever it
// wrote in response, for debugging and unit testing outside Loop.
func (h *Handler) Command(line string) string {
	out := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handleCommand(line)
	_ = h.OutIo.Flush()
	h.OutIo = out
	return buf.String()
}

func (h *Handler) current() *position.Position {
	return h.history[len(h.history)-1]
}

// handleCommand dispatches one line. It returns true once "quit" has been
// processed and Loop should stop reading.
func (h *Handler) handleCommand(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	log.Debugf("<< %s", line)

	switch tokens[0] {
	case "xboard":
	case "protover":
		h.sendFeatures()
	case "accepted", "rejected":
	case "new":
		p := position.New()
		h.mu.Lock()
		h.history = []*position.Position{p}
		black := enum.Black
		h.agentColor = &black
		h.mu.Unlock()
		h.agent.SetState(p)
	case "variant":
	case "quit":
		h.agent.AbortDecision()
		h.agent.StopPondering()
		return true
	case "random":
	case "force":
		h.mu.Lock()
		h.agentColor = nil
		h.mu.Unlock()
		h.agent.AbortDecision()
		h.agent.StopPondering()
	case "go":
		h.mu.Lock()
		color := h.current().Us
		h.agentColor = &color
		h.mu.Unlock()
		h.startThinking()
	case "playother":
		h.mu.Lock()
		color := h.current().Us.Opposite()
		h.agentColor = &color
		h.mu.Unlock()
	case "level", "st", "sd", "nps", "time", "otim":
	case "usermove":
		if len(tokens) < 2 {
			return false
		}
		h.handleUserMove(tokens[1])
	case "?":
		h.agent.FinalizeDecision()
	case "ping":
		ack := ""
		if len(tokens) > 1 {
			ack = tokens[1]
		}
		h.send(fmt.Sprintf("pong %s", ack))
	case "draw":
		h.mu.Lock()
		assigned := h.agentColor != nil
		h.mu.Unlock()
		if assigned && h.agent.AcceptDraw() {
			h.send("offer draw")
		}
	case "result":
		h.agent.AbortDecision()
		h.agent.StopPondering()
	case "setboard":
		h.setBoard(strings.Join(tokens[1:], " "))
	case "edit", "hint", "analyze":
	case "bk":
	case "undo":
		h.mu.Lock()
		if len(h.history) > 1 {
			h.history = h.history[:len(h.history)-1]
		}
		h.mu.Unlock()
	case "remove":
		h.mu.Lock()
		for i := 0; i < 2 && len(h.history) > 1; i++ {
			h.history = h.history[:len(h.history)-1]
		}
		h.mu.Unlock()
	case "hard", "easy", "post", "nopost":
	case "name", "rating", "computer", "egtpath", "option":
	case "pause":
		h.agent.StopPondering()
	case "resume":
		h.mu.Lock()
		assigned := h.agentColor != nil
		h.mu.Unlock()
		if assigned {
			h.agent.StartPondering()
		}
	case "memory", "cores":
	default:
		log.Warningf("unsupported command: %s", line)
		h.send(fmt.Sprintf("Error (unsupported): %s", tokens[0]))
	}
	return false
}

func (h *Handler) handleUserMove(text string) {
	p := h.current()
	move, err := notation.ParseAlgebraic(text, p)
	if err != nil {
		move, err = notation.ParseCoordinate(text, p)
	}
	if err != nil {
		h.send(fmt.Sprintf("Illegal move: %s", text))
		return
	}

	next := p.Clone()
	next.MakeMove(move)
	h.mu.Lock()
	h.history = append(h.history, next)
	assigned := h.agentColor != nil
	h.mu.Unlock()

	h.agent.AdvanceState(move)
	if assigned {
		h.startThinking()
	}
}

// startThinking hands the current position to the agent and asynchronously
// waits for its decision, so Loop keeps reading commands (ping, draw
// offers, an early "?") while the agent thinks.
func (h *Handler) startThinking() {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.mu.Unlock()

	h.agent.StartPondering()
	decision := h.agent.StartDecision(ctx)

	go func() {
		move, ok := <-decision
		if !ok {
			return
		}
		h.deliverMove(move)
	}()
}

func (h *Handler) deliverMove(move enum.Move) {
	h.mu.Lock()
	next := h.current().Clone()
	next.MakeMove(move)
	h.history = append(h.history, next)
	h.mu.Unlock()

	h.agent.AdvanceState(move)
	h.send(fmt.Sprintf("move %s", notation.FormatCoordinate(move)))
}

func (h *Handler) setBoard(fen string) {
	p, err := notation.ParseFEN(fen)
	if err != nil {
		h.send(fmt.Sprintf("Error (bad FEN): %s", fen))
		return
	}
	h.mu.Lock()
	h.history = []*position.Position{p}
	h.mu.Unlock()
	h.agent.SetState(p)
}

func (h *Handler) sendFeatures() {
	for _, f := range features {
		h.send(fmt.Sprintf("feature %s", f))
	}
}

func (h *Handler) send(s string) {
	log.Debugf(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}

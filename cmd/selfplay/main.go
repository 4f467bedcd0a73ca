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

// Command selfplay runs one MCTSAgent against itself from the starting
// position to game end, printing each move as it's decided. Grounded on
// selfplay.cpp's loop (set_state once, then start_decision/advance_state
// until game_over), translated into this module's context-based decision API.
package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/mc-chess/config"
	"github.com/frankkopp/mc-chess/engine"
	"github.com/frankkopp/mc-chess/notation"
	"github.com/frankkopp/mc-chess/position"
)

var out = message.NewPrinter(language.English)

func main() {
	moveBudget := flag.Duration("movetime", 300*time.Millisecond, "time budget per move")
	ponderers := flag.Int("ponderers", 2, "number of pondering goroutines")
	flag.Parse()

	config.Setup()

	p := position.New()
	agent := engine.NewMCTSAgent(*ponderers)
	agent.SetState(p)

	for ply := 1; !p.GameDefinitelyOver(); ply++ {
		ctx, cancel := context.WithTimeout(context.Background(), *moveBudget)
		move := <-agent.StartDecision(ctx)
		cancel()

		if move == 0 {
			out.Printf("%d. no legal move, game over\n", ply)
			break
		}

		out.Printf("%d. %s\n", ply, notation.FormatCoordinate(move))
		p.MakeMove(move)
		agent.AdvanceState(move)
	}

	if winner, ok := p.Winner(); ok {
		out.Printf("result: %s wins\n", winner)
	} else {
		out.Println("result: draw")
	}
}

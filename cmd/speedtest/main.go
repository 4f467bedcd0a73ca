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

// Command speedtest measures how many MCTS iterations (select, expand,
// rollout, backpropagate) this build can run per second from the starting
// position, printing a cumulative-duration line every 1000 iterations.
// Grounded on speedtest.cpp's graph.sample loop over the initial state.
package main

import (
	"flag"
	"math/rand/v2"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/mc-chess/mcts"
	"github.com/frankkopp/mc-chess/position"
)

var out = message.NewPrinter(language.English)

func main() {
	iterations := flag.Int("iterations", 10000, "number of MCTS iterations to run")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	out.Println("cumulative sampling durations for initial state:")

	tree := mcts.NewTree(position.New())
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	start := time.Now()
	for i := 1; i <= *iterations; i++ {
		tree.RunIteration(r)
		if i%1000 == 0 {
			out.Printf("%d %dms\n", i, time.Since(start).Milliseconds())
		}
	}
}

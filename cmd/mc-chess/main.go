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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/frankkopp/mc-chess/config"
	"github.com/frankkopp/mc-chess/engine"
	"github.com/frankkopp/mc-chess/xboard"
)

func main() {
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	ponderers := flag.Int("ponderers", 0, "number of pondering goroutines (0 keeps the config.toml value)")
	flag.Parse()

	config.Setup()
	if *logLvl != "" {
		config.Settings.Log.LogLvl = *logLvl
	}
	if *ponderers > 0 {
		config.Settings.MCTS.Ponderers = *ponderers
	}

	agent := engine.NewMCTSAgent(config.Settings.MCTS.Ponderers)
	handler := xboard.NewHandler(agent)

	fmt.Fprintln(os.Stderr, "mc-chess ready, speaking xboard protocol on stdin/stdout")
	handler.Loop()
}

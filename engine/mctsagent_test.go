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

package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/frankkopp/mc-chess/position"
)

func TestSetStateThenStartDecisionDeliversAMove(t *testing.T) {
	a := NewMCTSAgent(2)
	a.SetState(position.New())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	move := <-a.StartDecision(ctx)
	require.NotZero(t, move)
}

func TestFinalizeDecisionDeliversTheCurrentBestMove(t *testing.T) {
	a := NewMCTSAgent(2)
	a.SetState(position.New())

	result := a.StartDecision(context.Background())
	time.Sleep(20 * time.Millisecond)
	a.FinalizeDecision()

	move := <-result
	require.NotZero(t, move)
}

func TestAbortDecisionDeliversNoMove(t *testing.T) {
	a := NewMCTSAgent(2)
	a.SetState(position.New())

	result := a.StartDecision(context.Background())
	time.Sleep(20 * time.Millisecond)
	a.AbortDecision()

	move, ok := <-result
	require.False(t, ok)
	require.Zero(t, move)
}

func TestStartPonderingGrowsTheTreeThenStopPonderingHalts(t *testing.T) {
	a := NewMCTSAgent(4)
	a.SetState(position.New())

	a.StartPondering()
	time.Sleep(30 * time.Millisecond)
	a.StopPondering()

	a.mu.Lock()
	tree := a.tree
	a.mu.Unlock()
	require.Positive(t, tree.Visits())
}

func TestAdvanceStateWhilePonderingDoesNotDeadlock(t *testing.T) {
	a := NewMCTSAgent(4)
	a.SetState(position.New())
	a.StartPondering()

	time.Sleep(10 * time.Millisecond)
	a.mu.Lock()
	tree := a.tree
	a.mu.Unlock()
	move, ok := tree.BestMove()
	require.True(t, ok)

	a.AdvanceState(move)
	time.Sleep(10 * time.Millisecond)
	a.StopPondering()
}

func TestAcceptDrawIsRoughlyTenPercent(t *testing.T) {
	a := NewMCTSAgent(1)

	accepted := 0
	const trials = 20000
	for i := 0; i < trials; i++ {
		if a.AcceptDraw() {
			accepted++
		}
	}

	rate := float64(accepted) / float64(trials)
	require.InDelta(t, 0.1, rate, 0.02)
}

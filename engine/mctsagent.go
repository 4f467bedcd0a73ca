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
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/frankkopp/mc-chess/config"
	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/logging"
	"github.com/frankkopp/mc-chess/mcts"
	"github.com/frankkopp/mc-chess/position"
)

var log = logging.GetEngineLog()

// pauseRound is one round of the quiescence barrier betweenPonderings uses
// to get every ponderer goroutine to check in before it touches the shared
// tree. before is counted down once per ponderer as each one parks; after
// is released once, by the caller, to let them all go again.
type pauseRound struct {
	before sync.WaitGroup
	after  sync.WaitGroup
}

// MCTSAgent is an Agent backed by a single shared mcts.Tree, explored by a
// fixed-size pool of ponderer goroutines between moves and during decisions.
// Grounded on mcts_agent.hpp's field shapes (a generator, a pool of
// ponderers, a barrier pair coordinating changes to shared state with
// running ponderers); its C++ method bodies were left unimplemented
// (start_pondering/stop_pondering/decide/accept_draw are stubs or throw),
// so the bodies here are newly authored against that shape.
type MCTSAgent struct {
	mu    sync.Mutex
	tree  *mcts.Tree
	round *pauseRound // non-nil exactly while a pause is in progress

	ponderers    int
	ponderCtx    context.Context
	ponderCancel context.CancelFunc
	ponderGroup  *errgroup.Group

	decision *decisionState
	rng      *rand.Rand
}

// decisionState tracks one in-flight StartDecision call. abort distinguishes
// AbortDecision (no move should be delivered) from everything else that can
// end a decision -- FinalizeDecision, or ctx running out -- which all
// deliver the tree's current best move.
type decisionState struct {
	cancel context.CancelFunc
	abort  atomic.Bool
}

// NewMCTSAgent returns an agent that ponders with ponderers goroutines. It
// starts with no position set; call SetState before pondering or deciding.
func NewMCTSAgent(ponderers int) *MCTSAgent {
	return &MCTSAgent{
		ponderers: ponderers,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// betweenPonderings runs change with every ponderer goroutine parked, so
// change can swap out or restructure the shared tree without racing a
// goroutine that is mid-iteration against the old one. If no ponderers are
// running it just runs change directly.
func (a *MCTSAgent) betweenPonderings(change func()) {
	a.mu.Lock()
	n := a.activePonderers()
	if n == 0 {
		a.mu.Unlock()
		change()
		return
	}

	round := &pauseRound{}
	round.before.Add(n)
	round.after.Add(1)
	a.round = round
	a.mu.Unlock()

	round.before.Wait()

	change()

	a.mu.Lock()
	a.round = nil
	a.mu.Unlock()

	round.after.Done()
}

// activePonderers reports how many ponderer goroutines are currently
// running. Callers must hold a.mu.
func (a *MCTSAgent) activePonderers() int {
	if a.ponderCtx == nil {
		return 0
	}
	return a.ponderers
}

func (a *MCTSAgent) ponder(ctx context.Context, r *rand.Rand) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		a.mu.Lock()
		round, tree := a.round, a.tree
		a.mu.Unlock()

		if round != nil {
			round.before.Done()
			round.after.Wait()
			continue
		}

		if tree == nil {
			continue
		}
		tree.RunIteration(r)
	}
}

// SetState replaces the tree with a fresh one rooted at p. Any analysis
// accumulated for the previous position is discarded.
func (a *MCTSAgent) SetState(p *position.Position) {
	a.betweenPonderings(func() {
		a.mu.Lock()
		a.tree = mcts.NewTree(p)
		a.mu.Unlock()
	})
}

// AdvanceState plays move on the current tree, reusing whatever subtree was
// already explored under it.
func (a *MCTSAgent) AdvanceState(move enum.Move) {
	a.betweenPonderings(func() {
		a.mu.Lock()
		tree := a.tree
		a.mu.Unlock()
		if tree != nil {
			tree.Advance(move)
		}
	})
}

// StartPondering launches the ponderer pool against the current tree. It is
// a no-op if pondering is already active.
func (a *MCTSAgent) StartPondering() {
	a.mu.Lock()
	if a.ponderCtx != nil {
		a.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	group, gctx := errgroup.WithContext(ctx)
	a.ponderCtx, a.ponderCancel, a.ponderGroup = ctx, cancel, group
	n := a.ponderers
	a.mu.Unlock()

	log.Debugf("pondering started with %d ponderers", n)
	for i := 0; i < n; i++ {
		r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		group.Go(func() error {
			return a.ponder(gctx, r)
		})
	}
}

// StopPondering halts the ponderer pool and waits for it to exit.
func (a *MCTSAgent) StopPondering() {
	a.mu.Lock()
	cancel, group := a.ponderCancel, a.ponderGroup
	a.ponderCtx, a.ponderCancel, a.ponderGroup = nil, nil, nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	_ = group.Wait()
	log.Debug("pondering stopped")
}

// StartDecision returns a move once thinking stops, driven either by ctx
// ending or by an explicit FinalizeDecision/AbortDecision call. If the root
// has no legal move, the channel closes without a value. If ponderers are
// already running against
// the current tree, StartDecision rides along on their work instead of
// spinning up a redundant search.
func (a *MCTSAgent) StartDecision(ctx context.Context) <-chan enum.Move {
	decisionCtx, cancel := context.WithCancel(ctx)
	ds := &decisionState{cancel: cancel}

	a.mu.Lock()
	a.decision = ds
	pondering := a.ponderCtx != nil
	a.mu.Unlock()

	result := make(chan enum.Move, 1)

	go func() {
		defer close(result)
		defer cancel()

		if !pondering {
			r := a.rng
			for decisionCtx.Err() == nil {
				a.mu.Lock()
				tree := a.tree
				a.mu.Unlock()
				if tree == nil {
					return
				}
				tree.RunIteration(r)
			}
		} else {
			<-decisionCtx.Done()
		}

		if ds.abort.Load() {
			return
		}

		a.mu.Lock()
		tree := a.tree
		a.mu.Unlock()
		if tree == nil {
			return
		}

		if move, ok := tree.BestMove(); ok {
			result <- move
		}
	}()

	return result
}

// FinalizeDecision ends the in-flight decision, which will deliver whatever
// move the tree currently favors.
func (a *MCTSAgent) FinalizeDecision() {
	a.mu.Lock()
	ds := a.decision
	a.mu.Unlock()
	if ds != nil {
		ds.cancel()
	}
}

// AbortDecision ends the in-flight decision without delivering a move.
func (a *MCTSAgent) AbortDecision() {
	a.mu.Lock()
	ds := a.decision
	a.decision = nil
	a.mu.Unlock()
	if ds != nil {
		ds.abort.Store(true)
		ds.cancel()
	}
}

// AcceptDraw flips a biased coin rather than evaluating the position: this
// agent has no static evaluator (see SPEC_FULL.md's Non-goals), so accepting
// a draw is a Bernoulli trial rather than a judgment call.
func (a *MCTSAgent) AcceptDraw() bool {
	return a.rng.Float64() < config.Settings.MCTS.DrawAcceptanceProbability
}

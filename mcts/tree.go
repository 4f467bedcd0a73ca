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

package mcts

import (
	"math/rand/v2"
	"sync"

	"github.com/frankkopp/mc-chess/enum"
	"github.com/frankkopp/mc-chess/movegen"
	"github.com/frankkopp/mc-chess/position"
)

// Tree is a persistent search tree rooted at a position. RunIteration grows
// it one sample at a time; Advance reuses the subtree under a played move as
// the new tree instead of starting over, exactly as a human keeps their own
// analysis of a line after the opponent plays into it.
type Tree struct {
	mu    sync.Mutex
	root  Node
	state *position.Position
}

// NewTree starts a fresh tree at state. state is cloned; the tree never
// mutates the caller's copy.
func NewTree(state *position.Position) *Tree {
	return &Tree{state: state.Clone()}
}

// RunIteration performs one select/expand/rollout/backprop sample. It is
// safe to call concurrently from multiple goroutines sharing t, as ponderers
// do: the tree-mutating select/expand step is serialized, but the expensive
// random rollout runs unlocked against a private clone of the position.
func (t *Tree) RunIteration(r *rand.Rand) {
	t.mu.Lock()
	state := t.state.Clone()
	leaf := t.root.selectDown(state)
	leaf = leaf.expand(state)
	t.mu.Unlock()

	result := rollout(state, r)

	t.mu.Lock()
	backprop(leaf, result)
	t.mu.Unlock()
}

// selectDown descends from n, always moving to the child the UCT criterion
// favors, until it reaches a node with no children, and returns that node.
// It plays each move it descends through on state, so that on return state
// reflects the position at the returned node.
func (n *Node) selectDown(state *position.Position) *Node {
	node := n
	for node.childCount() > 0 {
		node = node.selectBy((*Node).uctScore)
		state.MakeMove(node.lastMove)
	}
	return node
}

// expand generates every legal move from state and gives n one child per
// move, then descends into one of them (the first unvisited, since every
// fresh child ties at unvisitedScore) and returns it. If state has no legal
// moves, n is left childless and returned unchanged.
func (n *Node) expand(state *position.Position) *Node {
	moves := movegen.LegalMoves(state)
	n.children = make([]Node, len(moves))
	for i, move := range moves {
		n.children[i] = Node{parent: n, lastMove: move}
	}
	return n.selectDown(state)
}

// rollout plays uniformly random pseudolegal moves from state until the
// game ends (no move available, which covers checkmate, stalemate, and a
// finished king-capture) or the 50-halfmove rule is reached, and scores the
// result from the perspective of the player who made the move into state,
// i.e. the opponent of the side to move when rollout was called: winValue
// if that player wins, lossValue if the side to move wins.
func rollout(state *position.Position, r *rand.Rand) float64 {
	initialPlayer := state.Us

	for {
		if state.DrawnBy50() {
			return drawValue
		}
		move, ok := movegen.RandomMove(state, r)
		if !ok {
			break
		}
		state.MakeMove(move)
	}

	winner, ok := state.Winner()
	if !ok {
		return drawValue
	}
	if winner == initialPlayer {
		return lossValue
	}
	return winValue
}

// backprop credits result to node and every ancestor up to the root,
// inverting it at each step since a position's result for the side to move
// is the loss/win/draw of the opponent's result one ply up.
func backprop(node *Node, result float64) {
	for node != nil {
		node.update(result)
		result = invertResult(result)
		node = node.parent
	}
}

func (n *Node) update(result float64) {
	n.totalResult += result
	n.visitCount++
}

// BestMove returns the move whose child was visited the most, which MCTS
// trusts more than raw win rate since UCT spends most of its samples
// refining the move it already favors. ok is false if the tree has not been
// expanded yet (RunIteration was never called).
func (t *Tree) BestMove() (enum.Move, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	child := t.root.selectBy((*Node).mostVisited)
	if child == nil {
		return 0, false
	}
	return child.lastMove, true
}

// Visits reports how many iterations have run against the current root,
// which callers use to observe pondering progress without reaching into the
// tree's internals.
func (t *Tree) Visits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root.visitCount
}

// Advance replays move on the tree's position and keeps the subtree under
// it (if any was already explored) as the new root, discarding every
// sibling line of play that didn't happen. This is the tree-reuse that
// makes pondering during the opponent's turn pay off: work already done
// analyzing the move they played is not thrown away.
func (t *Tree) Advance(move enum.Move) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.MakeMove(move)

	for i := range t.root.children {
		if t.root.children[i].lastMove == move {
			t.root = t.root.children[i]
			t.root.parent = nil
			// t.root just moved to a new address (a field of t, not the old
			// children slice slot), but its own children slice still aliases
			// the same backing array, so only its direct children's parent
			// pointers need repointing -- everything deeper already points
			// into array slots that haven't moved.
			for j := range t.root.children {
				t.root.children[j].parent = &t.root
			}
			return
		}
	}
	t.root = Node{}
}

// Position returns a clone of the position the tree is currently rooted at.
func (t *Tree) Position() *position.Position {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

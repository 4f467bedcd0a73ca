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

// Package mcts implements Monte-Carlo tree search over a position: a tree of
// Nodes rooted at the position currently being decided, grown one rollout at
// a time by Select/Expand/Rollout/Backprop, and reused across moves by
// Tree.Advance.
package mcts

import (
	"math"

	"github.com/frankkopp/mc-chess/enum"
)

const (
	lossValue = 0.0
	drawValue = 0.5
	winValue  = 1.0

	// unvisitedScore is returned by uctScore for a child that has never
	// been sampled, so Select always tries every child at least once
	// before any get revisited.
	unvisitedScore = 1e6
)

func invertResult(result float64) float64 {
	return 1 - result
}

// Node is one position in the search tree: the move that reached it from
// its parent, and the running totals backprop accumulates. Children are
// all created together by expand, so the slice never grows after that.
type Node struct {
	parent   *Node
	children []Node

	// lastMove is the move that produced this node from its parent. It is
	// the zero Move for the root, which has no parent.
	lastMove enum.Move

	totalResult float64
	visitCount  int
}

// winrate returns n's empirical win rate, or a neutral 0.5 before n has
// ever been visited.
func (n *Node) winrate() float64 {
	if n.visitCount == 0 {
		return drawValue
	}
	return n.totalResult / float64(n.visitCount)
}

// uctScore is the UCT selection criterion: empirical win rate plus an
// exploration bonus that shrinks as the child accumulates visits relative
// to its parent. A never-visited child scores unvisitedScore so it is
// always preferred to an explored one.
func (n *Node) uctScore() float64 {
	if n.visitCount == 0 {
		return unvisitedScore
	}
	return n.winrate() + math.Sqrt(2*math.Log(float64(n.parent.visitCount))/float64(n.visitCount))
}

// mostVisited is the selection criterion used to pick the move actually
// played: the child explored the most is trusted most, since UCT spends
// most of its samples on the move it currently considers best.
func (n *Node) mostVisited() float64 {
	return float64(n.visitCount)
}

// selectBy returns a pointer to whichever child of n scores highest under
// key, or nil if n has no children.
func (n *Node) selectBy(key func(*Node) float64) *Node {
	var best *Node
	var bestScore float64
	for i := range n.children {
		child := &n.children[i]
		score := key(child)
		if best == nil || score > bestScore {
			best, bestScore = child, score
		}
	}
	return best
}

// childCount reports how many children n has, 0 for a leaf.
func (n *Node) childCount() int {
	return len(n.children)
}

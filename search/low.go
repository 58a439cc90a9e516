package search

import (
	"context"

	"github.com/cnf/structhash"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/world"
)

// LowNode is a world snapshot used by the inner, arm-primitive A* search
// (§4.6). Its canonical id is the joined representation of stacks + arm +
// held identifier, so structurally identical snapshots collapse to one
// node regardless of how they were reached.
type LowNode struct {
	W *world.WorldState
}

// ID implements Node.
func (n LowNode) ID() string {
	return structhash.Sha1(canonicalLow{Stacks: n.W.Stacks, Holding: n.W.Holding, Arm: n.W.Arm}, 1)
}

type canonicalLow struct {
	Stacks  [][]shrdlite.ObjectID
	Holding shrdlite.ObjectID
	Arm     int
}

// LowSuccessors returns the legal arm-primitive transitions out of n
// (§4.6): left/right (bounded by the number of columns), pick (arm over a
// non-empty column, holding nothing), and drop (legality governed by
// §4.2).
func LowSuccessors(n LowNode) []Edge {
	w := n.W
	var out []Edge

	if w.Arm > 0 {
		nw := w.Clone()
		nw.Arm--
		out = append(out, Edge{Action: string(shrdlite.Left), Cost: 1, To: LowNode{W: nw}})
	}
	if w.Arm < len(w.Stacks)-1 {
		nw := w.Clone()
		nw.Arm++
		out = append(out, Edge{Action: string(shrdlite.Right), Cost: 1, To: LowNode{W: nw}})
	}
	if w.Holding == world.Empty && !w.IsEmptyColumn(w.Arm) {
		nw := w.Clone()
		top := nw.Top(w.Arm)
		nw.Stacks[w.Arm] = nw.Stacks[w.Arm][:len(nw.Stacks[w.Arm])-1]
		nw.Holding = top
		out = append(out, Edge{Action: string(shrdlite.Pick), Cost: 1, To: LowNode{W: nw}})
	}
	if w.Holding != world.Empty {
		target := w.Top(w.Arm)
		var base shrdlite.ObjectID = shrdlite.Floor
		if target != world.Empty {
			base = target
		}
		if world.CanPlace(w, w.Holding, base) {
			nw := w.Clone()
			nw.Stacks[w.Arm] = append(nw.Stacks[w.Arm], nw.Holding)
			nw.Holding = world.Empty
			out = append(out, Edge{Action: string(shrdlite.Drop), Cost: 1, To: LowNode{W: nw}})
		}
	}
	return out
}

// RunLow runs a low-level A* search from w until fulfilled holds,
// guided by heuristic, within timeout. It is the evaluator invoked once
// per high-level edge (§4.6).
func RunLow(ctx context.Context, w *world.WorldState, fulfilled func(*world.WorldState) bool, heuristic func(*world.WorldState) float64) Result {
	start := LowNode{W: w}
	isGoal := func(n Node) bool { return fulfilled(n.(LowNode).W) }
	successors := func(n Node) []Edge { return LowSuccessors(n.(LowNode)) }
	h := func(n Node) float64 { return heuristic(n.(LowNode).W) }
	return Run(ctx, start, isGoal, successors, h)
}

// ActionsToTokens converts the Path of a low-level Result into
// shrdlite.ActionTokens, suitable for the executor.
func ActionsToTokens(path []string) []shrdlite.ActionToken {
	out := make([]shrdlite.ActionToken, len(path))
	for i, a := range path {
		out[i] = shrdlite.ActionToken(a)
	}
	return out
}

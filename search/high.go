package search

import (
	"context"
	"strings"
	"time"

	"github.com/cnf/structhash"

	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/dnf"
	"github.com/npillmayer/shrdlite/goaltree"
	"github.com/npillmayer/shrdlite/world"
)

// tokenSeparator joins a high-level edge's human annotation with its
// low-level action tokens inside one Edge.Action string, so the generic
// engine's single-string-per-edge path can still carry a whole low-level
// plan. AssembleTokens splits it back apart.
const tokenSeparator = "\x1f"

// HighNode pairs a goal-tree cursor with a low-level world snapshot
// (§4.6). The cursor is always the tree's root: which sub-goals are
// currently active is recomputed from the snapshot on every expansion,
// rather than stored as mutable progress state.
type HighNode struct {
	Tree *goaltree.Tree
	W    *world.WorldState
}

// ID implements Node: two HighNodes are the same search state when their
// underlying low-level snapshots coincide (the tree is shared and
// constant for one plan call).
func (n HighNode) ID() string {
	return structhash.Sha1(canonicalLow{Stacks: n.W.Stacks, Holding: n.W.Holding, Arm: n.W.Arm}, 1)
}

// LowTimeout and HighTimeout are the default wall-clock budgets for the
// two nested searches (§5).
const (
	LowTimeout  = 10 * time.Second
	HighTimeout = 10 * time.Second
)

// PlanResult is the outcome of a full two-level plan call.
type PlanResult struct {
	Status Status
	Tokens []shrdlite.ActionToken
	Cost   float64
}

// Plan runs the two-level A* search of §4.6 to satisfy f starting at w.
// It returns an empty token sequence annotated "already true" when the
// formula is already satisfied (§8, property 7).
func Plan(ctx context.Context, w *world.WorldState, f dnf.Formula, tree *goaltree.Tree) PlanResult {
	if f.Satisfied(w) {
		return PlanResult{Status: Success, Tokens: []shrdlite.ActionToken{"already true"}}
	}

	start := HighNode{Tree: tree, W: w}
	isGoal := func(n Node) bool { return f.Satisfied(n.(HighNode).W) }
	successors := func(n Node) []Edge { return highSuccessors(ctx, n.(HighNode)) }
	heuristic := func(n Node) float64 { return highHeuristic(n.(HighNode)) }

	hctx, cancel := context.WithTimeout(ctx, HighTimeout)
	defer cancel()

	result := Run(hctx, start, isGoal, successors, heuristic)
	tracer().Infof("high-level search %s: %d nodes added to frontier, cost %.0f", result.Status, result.FrontierCount, result.Cost)
	if result.Status != Success {
		return PlanResult{Status: result.Status}
	}
	return PlanResult{Status: Success, Tokens: AssembleTokens(result.Path), Cost: result.Cost}
}

// highSuccessors evaluates every currently active leaf goal via a nested
// low-level search from n's snapshot, producing one high-level edge per
// successful evaluation (§4.6).
func highSuccessors(ctx context.Context, n HighNode) []Edge {
	leaves := n.Tree.ActiveLeaves(n.Tree.Root, n.W)
	out := make([]Edge, 0, len(leaves))
	for _, leafIdx := range leaves {
		if n.Tree.Nodes[leafIdx].Kind == goaltree.KindFinal {
			continue // nothing left to search for
		}
		fulfilled := func(w *world.WorldState) bool { return n.Tree.Fulfilled(leafIdx, w) }
		heuristic := func(w *world.WorldState) float64 { return n.Tree.EffectiveHeuristic(leafIdx, w) }

		lctx, cancel := context.WithTimeout(ctx, LowTimeout)
		result := RunLow(lctx, n.W, fulfilled, heuristic)
		cancel()
		if result.Status != Success {
			continue
		}
		action := n.Tree.Describe(leafIdx) + tokenSeparator + strings.Join(result.Path, tokenSeparator)
		nextW := applyLowPath(n.W, result.Path)
		out = append(out, Edge{Action: action, Cost: result.Cost, To: HighNode{Tree: n.Tree, W: nextW}})
	}
	return out
}

func highHeuristic(n HighNode) float64 {
	best := -1.0
	for _, leafIdx := range n.Tree.ActiveLeaves(n.Tree.Root, n.W) {
		h := n.Tree.EffectiveHeuristic(leafIdx, n.W)
		if best < 0 || h < best {
			best = h
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// applyLowPath replays a sequence of arm-primitive tokens onto a clone of
// w, yielding the snapshot at the end of the path.
func applyLowPath(w *world.WorldState, path []string) *world.WorldState {
	cur := w
	for _, tok := range path {
		cur = applyPrimitive(cur, shrdlite.ActionToken(tok))
	}
	return cur
}

func applyPrimitive(w *world.WorldState, tok shrdlite.ActionToken) *world.WorldState {
	nw := w.Clone()
	switch tok {
	case shrdlite.Left:
		nw.Arm--
	case shrdlite.Right:
		nw.Arm++
	case shrdlite.Pick:
		top := nw.Top(nw.Arm)
		nw.Stacks[nw.Arm] = nw.Stacks[nw.Arm][:len(nw.Stacks[nw.Arm])-1]
		nw.Holding = top
	case shrdlite.Drop:
		nw.Stacks[nw.Arm] = append(nw.Stacks[nw.Arm], nw.Holding)
		nw.Holding = world.Empty
	}
	return nw
}

// AssembleTokens splits a high-level Result's Path (each entry a
// separator-joined annotation + action-token run) back into the flat
// sequence handed to the executor (§6).
func AssembleTokens(path []string) []shrdlite.ActionToken {
	var out []shrdlite.ActionToken
	for _, edge := range path {
		for _, part := range strings.Split(edge, tokenSeparator) {
			if part == "" {
				continue
			}
			out = append(out, shrdlite.ActionToken(part))
		}
	}
	return out
}

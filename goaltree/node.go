package goaltree

import (
	"github.com/npillmayer/shrdlite"
	"github.com/npillmayer/shrdlite/dnf"
	"github.com/npillmayer/shrdlite/world"
)

// widenStackCap bounds the WidenStack approximation (§4.7).
const widenStackCap = 10

// Node is one arena-owned entry of a Tree. Parent and HeuristicParent are
// indices into the same arena (-1 for none), never pointers, so the tree
// can express its heuristic-parent relationship without a cycle (§9).
type Node struct {
	Kind     Kind
	Item     shrdlite.ObjectID // PickUp/Holding/ClearStack/ClearOnStack/OnStack/SameStack/WidenStack/MoveToStack/MoveOnTop/MoveAbove subject
	Goal     shrdlite.ObjectID // MoveOnTop/MoveAbove/WidenStack/SameStack/MoveToStack object
	Rel      world.Relation    // SameStack relation (ontop or above)
	RelA     world.Relation    // MoveBidirectional: relation used for the a->b direction
	RelB     world.Relation    // MoveBidirectional: relation used for the b->a direction
	Pred     StackPredicate    // OnStack/ClearOnStack predicate
	A, B     shrdlite.ObjectID // MoveBidirectional's two candidate identifiers

	Parent          int
	HeuristicParent int
	Children        []int
}

// Tree is the arena: every Node of a plan lives in Nodes, referenced by
// index.
type Tree struct {
	Nodes []Node
	Root  int
	Final int
}

func (t *Tree) add(n Node) int {
	t.Nodes = append(t.Nodes, n)
	return len(t.Nodes) - 1
}

// Build constructs a goal tree from a DNF formula (§4.7). Built once per
// plan call.
func Build(f dnf.Formula) *Tree {
	t := &Tree{}
	finalIdx := t.add(Node{Kind: KindFinal, Parent: -1, HeuristicParent: -1})
	t.Final = finalIdx

	root := Node{Kind: KindDnf, Parent: -1, HeuristicParent: -1}
	rootIdx := t.add(root)
	t.Root = rootIdx

	children := make([]int, 0, len(f))
	for _, conj := range f {
		ci := t.buildConjunction(conj, rootIdx)
		children = append(children, ci)
	}
	t.Nodes[rootIdx].Children = children
	return t
}

func (t *Tree) buildConjunction(conj dnf.Conjunction, parent int) int {
	n := Node{Kind: KindConjunction, Parent: parent, HeuristicParent: parent}
	idx := t.add(n)
	children := make([]int, 0, len(conj))
	for _, lit := range conj {
		children = append(children, t.buildLiteralGoal(lit, idx))
	}
	t.Nodes[idx].Children = children
	return idx
}

// buildLiteralGoal translates one DNF literal into a (possibly composite)
// sub-goal, per the decomposition table of §4.7.
func (t *Tree) buildLiteralGoal(lit dnf.Literal, parent int) int {
	a, b := lit.Args[0], lit.Args[1]
	switch lit.Relation {
	case world.HoldingRel:
		return t.buildPickUp(a, parent)
	case world.LeftOf:
		return t.buildMoveToStack(a, b, StackPredicate{Kind: PredRightOf, Of: b}, parent)
	case world.RightOf:
		return t.buildMoveToStack(a, b, StackPredicate{Kind: PredLeftOf, Of: b}, parent)
	case world.Beside:
		return t.buildMoveBidirectional(a, b, parent)
	case world.OnTop:
		return t.buildMoveOnTop(a, b, world.OnTop, parent)
	case world.Inside:
		return t.buildMoveOnTop(a, b, world.Inside, parent)
	case world.Above:
		return t.buildMoveAbove(a, b, parent)
	case world.Under:
		return t.buildMoveAbove(b, a, parent)
	default:
		// AnyLocation: trivially satisfied; model as a Final-like leaf.
		idx := t.add(Node{Kind: KindFinal, Parent: parent, HeuristicParent: parent})
		return idx
	}
}

func (t *Tree) buildPickUp(item shrdlite.ObjectID, parent int) int {
	n := Node{Kind: KindPickUp, Item: item, Parent: parent, HeuristicParent: parent}
	idx := t.add(n)
	clear := t.add(Node{Kind: KindClearStack, Item: item, Parent: idx, HeuristicParent: idx})
	holding := t.add(Node{Kind: KindHolding, Item: item, Parent: idx, HeuristicParent: idx})
	t.Nodes[idx].Children = []int{clear, holding}
	return idx
}

func (t *Tree) buildMoveToStack(item, goal shrdlite.ObjectID, pred StackPredicate, parent int) int {
	n := Node{Kind: KindMoveToStack, Item: item, Goal: goal, Pred: pred, Parent: parent, HeuristicParent: parent}
	idx := t.add(n)
	clearOn := t.add(Node{Kind: KindClearOnStack, Item: item, Pred: pred, Parent: idx, HeuristicParent: idx})
	pickup := t.buildPickUp(item, idx)
	onStack := t.add(Node{Kind: KindOnStack, Item: item, Pred: pred, Parent: idx, HeuristicParent: idx})
	t.Nodes[idx].Children = []int{clearOn, pickup, onStack}
	return idx
}

func (t *Tree) buildMoveOnTop(item, goal shrdlite.ObjectID, rel world.Relation, parent int) int {
	n := Node{Kind: KindMoveOnTop, Item: item, Goal: goal, Rel: rel, Parent: parent, HeuristicParent: parent}
	idx := t.add(n)
	clearStack := t.add(Node{Kind: KindClearStack, Item: goal, Parent: idx, HeuristicParent: idx})
	pickup := t.buildPickUp(item, idx)
	same := t.add(Node{Kind: KindSameStack, Item: item, Goal: goal, Rel: rel, Parent: idx, HeuristicParent: idx})
	t.Nodes[idx].Children = []int{clearStack, pickup, same}
	return idx
}

func (t *Tree) buildMoveAbove(item, goal shrdlite.ObjectID, parent int) int {
	n := Node{Kind: KindMoveAbove, Item: item, Goal: goal, Rel: world.Above, Parent: parent, HeuristicParent: parent}
	idx := t.add(n)
	widen := t.add(Node{Kind: KindWidenStack, Item: item, Goal: goal, Parent: idx, HeuristicParent: idx})
	pickup := t.buildPickUp(item, idx)
	same := t.add(Node{Kind: KindSameStack, Item: item, Goal: goal, Rel: world.Above, Parent: idx, HeuristicParent: idx})
	t.Nodes[idx].Children = []int{widen, pickup, same}
	return idx
}

func (t *Tree) buildMoveBidirectional(a, b shrdlite.ObjectID, parent int) int {
	n := Node{Kind: KindMoveBidirectional, A: a, B: b, Parent: parent, HeuristicParent: -1}
	idx := t.add(n)
	toB := t.buildMoveToStack(a, b, StackPredicate{Kind: PredBeside, Of: b}, idx)
	toA := t.buildMoveToStack(b, a, StackPredicate{Kind: PredBeside, Of: a}, idx)
	t.Nodes[idx].Children = []int{toB, toA}
	return idx
}

// Fulfilled reports whether node idx's goal already holds in w.
func (t *Tree) Fulfilled(idx int, w *world.WorldState) bool {
	n := &t.Nodes[idx]
	switch n.Kind {
	case KindFinal:
		return true
	case KindDnf, KindMoveBidirectional:
		for _, c := range n.Children {
			if t.Fulfilled(c, w) {
				return true
			}
		}
		return false
	case KindConjunction:
		for _, c := range n.Children {
			if !t.Fulfilled(c, w) {
				return false
			}
		}
		return true
	case KindPickUp:
		return t.Fulfilled(n.Children[1], w) // Holding(x)
	case KindMoveToStack:
		return t.Fulfilled(n.Children[2], w) // OnStack
	case KindMoveOnTop, KindMoveAbove:
		return t.Fulfilled(n.Children[2], w) // SameStack
	case KindHolding:
		return w.Holding == n.Item
	case KindClearStack:
		return t.clearStackFulfilled(n.Item, w)
	case KindOnStack:
		col, ok := w.ColumnOf(n.Item)
		if !ok {
			return false
		}
		return n.Pred.Satisfied(w, col)
	case KindClearOnStack:
		return t.clearOnStackFulfilled(n.Item, n.Pred, w)
	case KindSameStack:
		return world.Test(w, n.Rel, n.Item, n.Goal)
	case KindWidenStack:
		return t.widenStackFulfilled(n.Item, n.Goal, w)
	}
	return false
}

func (t *Tree) clearStackFulfilled(item shrdlite.ObjectID, w *world.WorldState) bool {
	if item == shrdlite.Floor {
		for col := range w.Stacks {
			if w.IsEmptyColumn(col) {
				return true
			}
		}
		return false
	}
	col, ok := w.ColumnOf(item)
	if !ok {
		return true // held, or otherwise off the stacks: trivially clear
	}
	return w.Top(col) == item
}

func (t *Tree) clearOnStackFulfilled(item shrdlite.ObjectID, pred StackPredicate, w *world.WorldState) bool {
	for col := range w.Stacks {
		if !pred.Satisfied(w, col) {
			continue
		}
		top := w.Top(col)
		if top == world.Empty {
			if world.CanPlace(w, item, shrdlite.Floor) {
				return true
			}
			continue
		}
		if world.CanPlace(w, item, top) {
			return true
		}
	}
	return false
}

func (t *Tree) widenStackFulfilled(item, goal shrdlite.ObjectID, w *world.WorldState) bool {
	if goal == shrdlite.Floor {
		return true
	}
	col, ok := w.ColumnOf(goal)
	if !ok {
		return true
	}
	top := w.Top(col)
	if top == world.Empty {
		return true
	}
	return world.CanPlace(w, item, top)
}

// Heuristic returns node idx's own admissible-enough heuristic (§4.7),
// ignoring heuristic-parent composition.
func (t *Tree) Heuristic(idx int, w *world.WorldState) float64 {
	n := &t.Nodes[idx]
	switch n.Kind {
	case KindDnf, KindConjunction, KindMoveBidirectional, KindFinal:
		return 0
	case KindHolding:
		h := armDistance(w, n.Item)
		if w.Holding != world.Empty && w.Holding != n.Item {
			h++
		}
		return h
	case KindClearStack:
		return t.clearStackHeuristic(n.Item, w)
	case KindOnStack:
		return t.onStackHeuristic(n.Item, n.Pred, w)
	case KindClearOnStack:
		return t.clearOnStackHeuristic(n.Item, n.Pred, w)
	case KindSameStack:
		return t.sameStackHeuristic(n.Item, n.Goal, w)
	case KindWidenStack:
		return t.widenStackHeuristic(n.Goal, w)
	case KindPickUp, KindMoveToStack, KindMoveOnTop, KindMoveAbove:
		// composite: heuristic is whichever child is currently active.
		for _, c := range n.Children {
			if !t.Fulfilled(c, w) {
				return t.Heuristic(c, w)
			}
		}
		return 0
	}
	return 0
}

// EffectiveHeuristic composes idx's own heuristic with the path-up sum
// through HeuristicParent links: half its own plus half the sum along the
// chain (§4.7, §9).
func (t *Tree) EffectiveHeuristic(idx int, w *world.WorldState) float64 {
	own := t.Heuristic(idx, w)
	parent := t.Nodes[idx].HeuristicParent
	if parent < 0 {
		return own
	}
	return 0.5*own + 0.5*t.pathUpSum(parent, w)
}

func (t *Tree) pathUpSum(idx int, w *world.WorldState) float64 {
	sum := 0.0
	for idx >= 0 {
		sum += t.Heuristic(idx, w)
		idx = t.Nodes[idx].HeuristicParent
	}
	return sum
}

func armDistance(w *world.WorldState, item shrdlite.ObjectID) float64 {
	col, ok := w.ColumnOf(item)
	if !ok {
		if item == w.Holding {
			return 0
		}
		col = w.Arm
	}
	d := w.Arm - col
	if d < 0 {
		d = -d
	}
	return float64(d)
}

func (t *Tree) clearStackHeuristic(item shrdlite.ObjectID, w *world.WorldState) float64 {
	extra := 0.0
	if w.Holding != world.Empty {
		extra = 1
	}
	if item == shrdlite.Floor {
		best := -1.0
		for col, stack := range w.Stacks {
			d := w.Arm - col
			if d < 0 {
				d = -d
			}
			cost := float64(d + len(stack))
			if best < 0 || cost < best {
				best = cost
			}
		}
		if best < 0 {
			return extra
		}
		return best + extra
	}
	col, ok := w.ColumnOf(item)
	if !ok {
		return extra
	}
	_, idx, _ := w.IndexOf(item)
	above := len(w.Stacks[col]) - idx - 1
	d := w.Arm - col
	if d < 0 {
		d = -d
	}
	return float64(d+above) + extra
}

func (t *Tree) onStackHeuristic(item shrdlite.ObjectID, pred StackPredicate, w *world.WorldState) float64 {
	start, ok := w.ColumnOf(item)
	if !ok {
		start = w.Arm
	}
	best := -1
	for col := range w.Stacks {
		if !pred.Satisfied(w, col) {
			continue
		}
		d := start - col
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return float64(best)
}

func (t *Tree) clearOnStackHeuristic(item shrdlite.ObjectID, pred StackPredicate, w *world.WorldState) float64 {
	best := -1.0
	for col, stack := range w.Stacks {
		if !pred.Satisfied(w, col) {
			continue
		}
		n := itemsToClear(w, col, item)
		d := w.Arm - col
		if d < 0 {
			d = -d
		}
		_ = stack
		cost := float64(n + d)
		if best < 0 || cost < best {
			best = cost
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// itemsToClear counts how many topmost objects of column col would need
// removing before item can legally be placed on the new top (§4.2).
func itemsToClear(w *world.WorldState, col int, item shrdlite.ObjectID) int {
	stack := w.Stacks[col]
	n := 0
	for i := len(stack) - 1; i >= 0; i-- {
		top := stack[i]
		if world.CanPlace(w, item, top) {
			return n
		}
		n++
	}
	return n
}

func (t *Tree) sameStackHeuristic(item, goal shrdlite.ObjectID, w *world.WorldState) float64 {
	colX, ok := w.ColumnOf(item)
	if !ok {
		colX = w.Arm
	}
	if goal == shrdlite.Floor {
		return 0
	}
	colG, ok := w.ColumnOf(goal)
	if !ok {
		colG = colX
	}
	d := colX - colG
	if d < 0 {
		d = -d
	}
	return float64(d)
}

// widenStackHeuristic approximates the number of intermediate objects
// that must be stacked below item to widen goal's column enough to
// accept it, bounded at widenStackCap (§4.7: "approximate").
func (t *Tree) widenStackHeuristic(goal shrdlite.ObjectID, w *world.WorldState) float64 {
	if goal == shrdlite.Floor {
		return 0
	}
	col, ok := w.ColumnOf(goal)
	if !ok {
		return 0
	}
	n := len(w.Stacks[col])
	if n > widenStackCap {
		return widenStackCap
	}
	return float64(n)
}

// ActiveLeaves recursively descends from idx through every currently
// active composite child (§4.6: "asking the goal cursor for its current
// children") until it reaches the leaves that a low-level search can
// actually evaluate — Holding, ClearStack, OnStack, ClearOnStack,
// SameStack, WidenStack, or the terminal Final node.
func (t *Tree) ActiveLeaves(idx int, w *world.WorldState) []int {
	if !t.Nodes[idx].Kind.composite() {
		return []int{idx}
	}
	var out []int
	for _, c := range t.Children(idx, w) {
		out = append(out, t.ActiveLeaves(c, w)...)
	}
	return out
}

// Describe renders a short human explanation of node idx's goal, used to
// annotate the high-level plan (§4.6).
func (t *Tree) Describe(idx int) string {
	n := &t.Nodes[idx]
	switch n.Kind {
	case KindHolding:
		return "picking up " + string(n.Item)
	case KindClearStack:
		return "clearing " + string(n.Item)
	case KindOnStack:
		return "placing " + string(n.Item) + " " + n.Pred.String()
	case KindClearOnStack:
		return "making room for " + string(n.Item) + " " + n.Pred.String()
	case KindSameStack:
		return "moving " + string(n.Item) + " " + n.Rel.String() + " " + string(n.Goal)
	case KindWidenStack:
		return "widening the stack under " + string(n.Goal)
	default:
		return "already true"
	}
}

// Children returns the set of currently-active successor node indices for
// idx: a composite precondition chain descends depth-first into its first
// unfulfilled child; once that child is fulfilled it delegates to the
// next child in the chain (§9's traversal rule). Dnf and Conjunction
// return every still-relevant child, since they branch rather than chain.
func (t *Tree) Children(idx int, w *world.WorldState) []int {
	n := &t.Nodes[idx]
	switch n.Kind {
	case KindDnf, KindMoveBidirectional:
		var out []int
		for _, c := range n.Children {
			if !t.Fulfilled(c, w) {
				out = append(out, c)
			}
		}
		return out
	case KindConjunction:
		var out []int
		for _, c := range n.Children {
			if !t.Fulfilled(c, w) {
				out = append(out, c)
			}
		}
		return out
	case KindPickUp, KindMoveToStack, KindMoveOnTop, KindMoveAbove:
		for _, c := range n.Children {
			if !t.Fulfilled(c, w) {
				return []int{c}
			}
		}
		return nil
	default:
		return nil
	}
}

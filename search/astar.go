package search

import (
	"context"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/trees/binaryheap"
)

// Node is anything the A* engine can search over: it must expose a
// canonical, comparable identity for visited/closed-set deduplication
// (§4.8: "the canonical id... duplicates are suppressed by a visited
// set").
type Node interface {
	ID() string
}

// Edge is one successor transition out of a Node, carrying the action
// that produced it (an arm primitive token, or a high-level explanation)
// and its (always positive) cost.
type Edge struct {
	Action string
	Cost   float64
	To     Node
}

// Status classifies how a Run concluded.
type Status int

const (
	// Success: a goal node was dequeued; Path/Cost are valid.
	Success Status = iota
	// Timeout: the wall-clock budget elapsed before a goal was found.
	Timeout
	// Failure: the frontier was exhausted without reaching a goal.
	Failure
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Timeout:
		return "timeout"
	default:
		return "failure"
	}
}

// Result is the structured outcome of a Run (§4.8).
type Result struct {
	Status        Status
	Path          []string // actions along the path, excluding the start node
	Cost          float64
	FrontierCount int // nodes ever added to the frontier
}

type frontierItem struct {
	node Node
	g    float64
	f    float64
	path []string
	seq  uint64
}

// frontierComparator orders by total cost f, breaking ties FIFO on
// insertion sequence (§4.8: "Tie-breaking: FIFO on equal total cost").
func frontierComparator(a, b interface{}) int {
	ia, ib := a.(frontierItem), b.(frontierItem)
	switch {
	case ia.f < ib.f:
		return -1
	case ia.f > ib.f:
		return 1
	case ia.seq < ib.seq:
		return -1
	case ia.seq > ib.seq:
		return 1
	default:
		return 0
	}
}

// Run performs a generic A* search from start until isGoal holds,
// expanding successors and scoring with heuristic, subject to ctx's
// deadline. The heuristic runs in "consistent-enough" mode: a cheaper
// path to an already-discovered node is re-inserted with updated cost,
// while the closed set blocks re-expansion of nodes already dequeued at
// their optimal cost (§4.8).
func Run(ctx context.Context, start Node, isGoal func(Node) bool, successors func(Node) []Edge, heuristic func(Node) float64) Result {
	open := binaryheap.NewWith(frontierComparator)
	closed := hashset.New()
	gScore := make(map[string]float64)

	var seq uint64
	push := func(n Node, g float64, path []string) int {
		id := n.ID()
		if best, ok := gScore[id]; ok && best <= g {
			return 0
		}
		gScore[id] = g
		seq++
		open.Push(frontierItem{node: n, g: g, f: g + heuristic(n), path: path, seq: seq})
		return 1
	}

	frontierCount := push(start, 0, nil)

	for {
		select {
		case <-ctx.Done():
			return Result{Status: Timeout, FrontierCount: frontierCount}
		default:
		}

		raw, ok := open.Pop()
		if !ok {
			return Result{Status: Failure, FrontierCount: frontierCount}
		}
		item := raw.(frontierItem)
		id := item.node.ID()
		if closed.Contains(id) {
			continue
		}
		if best := gScore[id]; item.g > best {
			continue // stale entry superseded by a cheaper push
		}
		if isGoal(item.node) {
			return Result{Status: Success, Path: item.path, Cost: item.g, FrontierCount: frontierCount}
		}
		closed.Add(id)

		for _, edge := range successors(item.node) {
			if closed.Contains(edge.To.ID()) {
				continue
			}
			ng := item.g + edge.Cost
			path := append(append([]string(nil), item.path...), edge.Action)
			frontierCount += push(edge.To, ng, path)
		}
	}
}

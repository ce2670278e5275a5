// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// criteria.go - candidate ranking.
//
// A candidate is an unordered pair of movable vertices; the smaller id
// survives. Candidates are ordered in a red-black tree keyed by
// (score, cost, survivor, removed), so ties always break on ids and the
// branching order is deterministic.

package exact

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/twinwidth/trigraph"
)

// Strategy selects the primary ranking score.
type Strategy int

const (
	// ByCost ranks by the survivor's red degree after the merge.
	ByCost Strategy = iota
	// ByNewRed ranks by the red edges the merge creates (cost - carried).
	ByNewRed
	// ByCarriedRed ranks by the red edges the merged vertex inherits.
	ByCarriedRed
)

// Strategies is the portfolio order: worker i uses Strategies[i%len].
var Strategies = []Strategy{ByCost, ByNewRed, ByCarriedRed}

// StrategyFor returns the strategy of the given attempt number.
func StrategyFor(attempt int) Strategy {
	if attempt < 0 {
		attempt = -attempt
	}

	return Strategies[attempt%len(Strategies)]
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case ByCost:
		return "cost"
	case ByNewRed:
		return "new-red"
	case ByCarriedRed:
		return "carried-red"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a String() value back to its Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	for _, s := range Strategies {
		if s.String() == name {
			return s, true
		}
	}

	return ByCost, false
}

func (s Strategy) valid() bool { return s >= ByCost && s <= ByCarriedRed }

func (s Strategy) score(cost, carried int) int {
	switch s {
	case ByNewRed:
		return cost - carried
	case ByCarriedRed:
		return carried
	default:
		return cost
	}
}

type candidateKey struct {
	score, cost, survivor, removed int
}

func compareCandidates(a, b interface{}) int {
	x, y := a.(candidateKey), b.(candidateKey)
	switch {
	case x.score != y.score:
		return cmpInt(x.score, y.score)
	case x.cost != y.cost:
		return cmpInt(x.cost, y.cost)
	case x.survivor != y.survivor:
		return cmpInt(x.survivor, y.survivor)
	default:
		return cmpInt(x.removed, y.removed)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// rankCandidates returns the movable pairs with cost below upper, best
// first. limit > 0 keeps only the first limit pairs; truncated reports
// whether any were dropped.
// Complexity: O(m² log m) for m movable vertices.
func rankCandidates(g Searchable, s Strategy, upper, limit int) (out []trigraph.Pair, truncated bool) {
	tree := redblacktree.Tree{Comparator: compareCandidates}
	movable := g.Movable()
	for i, u := range movable {
		for _, v := range movable[i+1:] {
			cost := g.Cost(u, v)
			if cost >= upper {
				continue
			}
			carried := 0
			if s != ByCost {
				carried = g.Criteria(u, v)
			}
			tree.Put(candidateKey{score: s.score(cost, carried), cost: cost, survivor: u, removed: v}, nil)
		}
	}

	it := tree.Iterator()
	for it.Next() {
		if limit > 0 && len(out) == limit {
			return out, true
		}
		k := it.Key().(candidateKey)
		out = append(out, trigraph.Pair{Removed: k.removed, Survivor: k.survivor})
	}

	return out, false
}

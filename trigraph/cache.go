// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// cache.go - Cost Cache and Greedy Criteria.
//
//	Cost(u,v)     = |N(u) ∪ N(v) \ {u,v}| − |B(u) ∩ B(v) \ {u,v}|
//	Criteria(u,v) = |R(u) ∪ R(v) \ {u,v}|
//
// Full builds need an empty journal. After that, Contract refreshes every
// pair with an endpoint in the affected set and journals the overwritten
// values, so Undo restores the tables exactly. Setup edits refresh the cost
// table in place and mark the criteria table stale.

package trigraph

import "fmt"

// symDiff computes Cost(u, v) from the adjacency.
func (t *TriGraph) symDiff(u, v int) int {
	union := 0
	t.eachNeighbor(u, func(w int) bool {
		if w != v {
			union++
		}

		return true
	})
	t.eachNeighbor(v, func(w int) bool {
		if w != u && t.color(u, w) == None {
			union++
		}

		return true
	})
	common := 0
	t.black.each(u, func(w int) bool {
		if w != v && t.black.has(v, w) {
			common++
		}

		return true
	})

	return union - common
}

// carried computes Criteria(u, v) from the adjacency.
func (t *TriGraph) carried(u, v int) int {
	c := 0
	t.red.each(u, func(w int) bool {
		if w != v {
			c++
		}

		return true
	})
	t.red.each(v, func(w int) bool {
		if w != u && !t.red.has(u, w) {
			c++
		}

		return true
	})

	return c
}

// Cost returns the red degree the survivor would have after contracting
// {u, v}. Served from the cache when it is ready.
func (t *TriGraph) Cost(u, v int) int {
	if t.costReady {
		return t.cost.get(u, v)
	}

	return t.symDiff(u, v)
}

// Criteria returns the number of red edges the merged vertex would inherit.
// Served from the table when it is ready.
func (t *TriGraph) Criteria(u, v int) int {
	if t.CriteriaReady() {
		return t.criteria.get(u, v)
	}

	return t.carried(u, v)
}

// CostReady reports whether the Cost Cache is built.
func (t *TriGraph) CostReady() bool { return t.costReady }

// CriteriaReady reports whether the criteria table is built and current.
func (t *TriGraph) CriteriaReady() bool { return t.criteriaReady && !t.criteriaStale }

// CriteriaStale reports whether a setup edit invalidated the criteria table.
func (t *TriGraph) CriteriaStale() bool { return t.criteriaReady && t.criteriaStale }

// ComputeAllPairsSymmetricDifferences builds the Cost Cache over all active
// pairs.
// Errors: ErrJournalNotEmpty while contractions are outstanding.
// Complexity: O(n² · d).
func (t *TriGraph) ComputeAllPairsSymmetricDifferences() error {
	if len(t.frames) > 0 {
		return fmt.Errorf("ComputeAllPairsSymmetricDifferences: %w", ErrJournalNotEmpty)
	}
	t.cost = newPairTable(t.storage, t.n)
	vs := t.Vertices()
	for i, u := range vs {
		for _, v := range vs[i+1:] {
			t.cost.set(u, v, t.symDiff(u, v))
		}
	}
	t.costReady = true

	return nil
}

// ComputeGreedyCriteria builds the criteria table over all active pairs and
// clears the stale mark.
// Errors: ErrJournalNotEmpty while contractions are outstanding.
// Complexity: O(n² · d).
func (t *TriGraph) ComputeGreedyCriteria() error {
	if len(t.frames) > 0 {
		return fmt.Errorf("ComputeGreedyCriteria: %w", ErrJournalNotEmpty)
	}
	t.criteria = newPairTable(t.storage, t.n)
	vs := t.Vertices()
	for i, u := range vs {
		for _, v := range vs[i+1:] {
			t.criteria.set(u, v, t.carried(u, v))
		}
	}
	t.criteriaReady = true
	t.criteriaStale = false

	return nil
}

// RecomputeGreedyCriteria rebuilds the criteria table if it is missing or
// stale and is a no-op otherwise.
func (t *TriGraph) RecomputeGreedyCriteria() error {
	if t.CriteriaReady() {
		return nil
	}

	return t.ComputeGreedyCriteria()
}

// refreshPairs recomputes every table entry with an endpoint in affected.
// When journal is set, overwritten values are journaled for Undo.
func (t *TriGraph) refreshPairs(affected []int, journal bool) {
	doCriteria := t.CriteriaReady()
	if !t.costReady && !doCriteria {
		return
	}
	vs := t.Vertices()
	done := make(map[int]struct{}, len(affected))
	for _, x := range affected {
		if _, ok := done[x]; ok || !t.active[x] {
			continue
		}
		done[x] = struct{}{}
		for _, y := range vs {
			if y == x {
				continue
			}
			if t.costReady {
				if nv, old := t.symDiff(x, y), t.cost.get(x, y); nv != old {
					if journal {
						t.journal = append(t.journal, entry{kind: opCost, u: x, v: y, old: old})
					}
					t.cost.set(x, y, nv)
				}
			}
			if doCriteria {
				if nv, old := t.carried(x, y), t.criteria.get(x, y); nv != old {
					if journal {
						t.journal = append(t.journal, entry{kind: opCriteria, u: x, v: y, old: old})
					}
					t.criteria.set(x, y, nv)
				}
			}
		}
	}
}

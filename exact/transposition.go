// SPDX-License-Identifier: MIT
// Package: twinwidth/exact
//
// transposition.go - visited-state table.
//
// Two merge orders that reach the same vertex partition reach the same
// trigraph. A state revisited with a running width no better than the one
// it was first expanded with cannot lead to a better sequence, so it is
// skipped. Once full, the table stops admitting keys; known keys still
// prune and tighten.

package exact

type transpositionTable struct {
	limit int
	best  map[string]int
	hits  int64
}

func newTranspositionTable(limit int) *transpositionTable {
	if limit <= 0 {
		return nil
	}

	return &transpositionTable{limit: limit, best: make(map[string]int)}
}

// visit reports whether the state must be expanded, recording running.
func (t *transpositionTable) visit(key string, running int) bool {
	if old, ok := t.best[key]; ok {
		if running >= old {
			t.hits++

			return false
		}
		t.best[key] = running

		return true
	}
	if len(t.best) < t.limit {
		t.best[key] = running
	}

	return true
}

func (t *transpositionTable) size() int { return len(t.best) }

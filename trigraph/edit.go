// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// edit.go - setup edits and freezing.
//
// Setup edits shape the starting trigraph (a partially solved instance, a
// test scenario) and are legal only while the journal is empty. They refresh
// the Cost Cache entries of the touched vertices and mark the criteria table
// stale; call RecomputeGreedyCriteria afterwards.

package trigraph

import "fmt"

func (t *TriGraph) setupGuard(op string) error {
	if len(t.frames) > 0 {
		return fmt.Errorf("%s: %w", op, ErrJournalNotEmpty)
	}

	return nil
}

func (t *TriGraph) afterSetup(touched []int) {
	t.refreshPairs(touched, false)
	if t.criteriaReady {
		t.criteriaStale = true
	}
}

// RemoveVertex deletes v and all its edges.
func (t *TriGraph) RemoveVertex(v int) error {
	const op = "RemoveVertex"
	if err := t.setupGuard(op); err != nil {
		return err
	}
	if err := t.checkVertex(op, v); err != nil {
		return err
	}
	var touched []int
	t.eachNeighbor(v, func(w int) bool {
		touched = append(touched, w)

		return true
	})
	for _, w := range touched {
		t.recolor(v, w, None)
	}
	t.active[v] = false
	t.frozen[v] = false
	t.numActive--
	t.afterSetup(touched)

	return nil
}

// MakeEdgeRed recolours the existing edge {u, v} red.
func (t *TriGraph) MakeEdgeRed(u, v int) error {
	const op = "MakeEdgeRed"
	if err := t.setupGuard(op); err != nil {
		return err
	}
	if err := t.checkPair(op, u, v); err != nil {
		return err
	}
	if t.color(u, v) == None {
		return fmt.Errorf("%s(%d,%d): %w", op, u, v, ErrEdgeNotFound)
	}
	t.recolor(u, v, Red)
	t.afterSetup([]int{u, v})

	return nil
}

// AddEdge inserts the new edge {u, v} with colour c (Black or Red).
func (t *TriGraph) AddEdge(u, v int, c Color) error {
	const op = "AddEdge"
	if err := t.setupGuard(op); err != nil {
		return err
	}
	if err := t.checkPair(op, u, v); err != nil {
		return err
	}
	if c != Black && c != Red {
		return fmt.Errorf("%s(%d,%d,%s): %w", op, u, v, c, ErrBadColor)
	}
	if t.color(u, v) != None {
		return fmt.Errorf("%s(%d,%d): %w", op, u, v, ErrEdgeExists)
	}
	t.link(u, v, c)
	t.afterSetup([]int{u, v})

	return nil
}

// Freeze pins v: it is excluded from candidate pairs and can never be the
// removed vertex of a contraction. Freezing is not journaled.
func (t *TriGraph) Freeze(v int) error {
	if err := t.checkVertex("Freeze", v); err != nil {
		return err
	}
	t.frozen[v] = true

	return nil
}

// Thaw clears the frozen flag of v.
func (t *TriGraph) Thaw(v int) error {
	if err := t.checkVertex("Thaw", v); err != nil {
		return err
	}
	t.frozen[v] = false

	return nil
}

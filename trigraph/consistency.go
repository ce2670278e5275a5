// SPDX-License-Identifier: MIT
// Package: twinwidth/trigraph
//
// consistency.go - debug validator for the trigraph invariants.

package trigraph

import "fmt"

// CheckConsistency recomputes every derived quantity from the adjacency rows
// and compares. It never mutates the trigraph.
//
// Checked: symmetric and disjoint colour rows, no self-loops, no edges at
// inactive vertices, degree counters, the active count, frozen ⊆ active,
// and (when ready) every Cost Cache and criteria entry over active pairs.
//
// Errors: the first violation found, wrapping ErrInconsistentState.
// Complexity: O(n² · d).
func (t *TriGraph) CheckConsistency() error {
	active := 0
	for u := 0; u < t.n; u++ {
		if t.active[u] {
			active++
		} else if t.frozen[u] {
			return inconsistent("vertex %d is frozen but inactive", u)
		}
		for _, c := range [...]Color{Black, Red} {
			deg := 0
			var err error
			t.rows(c).each(u, func(v int) bool {
				deg++
				switch {
				case v == u:
					err = inconsistent("self-loop at %d", u)
				case !t.rows(c).has(v, u):
					err = inconsistent("%s edge %d-%d is not symmetric", c, u, v)
				case !t.active[u] || !t.active[v]:
					err = inconsistent("%s edge %d-%d touches an inactive vertex", c, u, v)
				case c == Black && t.red.has(u, v):
					err = inconsistent("edge %d-%d is both black and red", u, v)
				}

				return err == nil
			})
			if err != nil {
				return err
			}
			want := t.blackDeg[u]
			if c == Red {
				want = t.redDeg[u]
			}
			if deg != want {
				return inconsistent("%s degree of %d is %d, counter says %d", c, u, deg, want)
			}
		}
	}
	if active != t.numActive {
		return inconsistent("%d active vertices, counter says %d", active, t.numActive)
	}

	vs := t.Vertices()
	for i, u := range vs {
		for _, v := range vs[i+1:] {
			if t.costReady {
				if got, want := t.cost.get(u, v), t.symDiff(u, v); got != want {
					return inconsistent("cost(%d,%d) cached %d, recomputed %d", u, v, got, want)
				}
			}
			if t.CriteriaReady() {
				if got, want := t.criteria.get(u, v), t.carried(u, v); got != want {
					return inconsistent("criteria(%d,%d) cached %d, recomputed %d", u, v, got, want)
				}
			}
		}
	}

	return nil
}

func inconsistent(format string, args ...any) error {
	return fmt.Errorf("CheckConsistency: %s: %w", fmt.Sprintf(format, args...), ErrInconsistentState)
}

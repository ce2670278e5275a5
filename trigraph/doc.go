// Package trigraph implements the undoable trigraph at the heart of the exact
// twin-width search.
//
// A TriGraph holds the current state of a contraction sequence: which
// vertices are still active, which are frozen, and the black (original) and
// red (derived) edges between them. Contract(removed, survivor) merges two
// vertices following the twin-width rule:
//
//   - a third vertex adjacent to exactly one of the pair becomes red-adjacent
//     to the survivor;
//   - a third vertex adjacent to both, with at least one red edge, becomes
//     red-adjacent to the survivor;
//   - edges black to both stay black.
//
// Every Contract pushes a frame on an internal journal and returns a Token.
// Undo(token) pops the frame and restores the adjacency, the degree counters,
// the Cost Cache and the Greedy Criteria exactly. Tokens are strictly LIFO.
//
// Caches:
//
//	Cost(u,v)     = |N(u) ∪ N(v) \ {u,v}| − |B(u) ∩ B(v) \ {u,v}|
//	Criteria(u,v) = |R(u) ∪ R(v) \ {u,v}|
//
// Cost is the red degree of the survivor right after contracting {u,v};
// Criteria counts the red edges that survive the merge. Both tables are
// optional: build them with ComputeAllPairsSymmetricDifferences and
// ComputeGreedyCriteria, after which Contract and Undo keep them current.
// Without a table the query is computed on demand.
//
// Storage: adjacency rows are github.com/soniakeys/bits bitsets (Dense) or
// hash sets (Sparse). Auto picks Dense up to DenseLimit vertices.
//
// Concurrency: a TriGraph is not safe for concurrent use. Parallel searches
// work on private copies obtained with Clone.
//
// Errors: every failure wraps one of ErrInvalidInput, ErrInvalidOperation
// or ErrInconsistentState; branch with errors.Is.
package trigraph

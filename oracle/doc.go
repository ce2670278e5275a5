// Package oracle provides a SAT-based lower-bound oracle for the exact
// twin-width search.
//
// SAT answers "can the active part of this trigraph be contracted down to a
// single movable vertex with red degree at most k throughout?" by encoding a
// fixed-length contraction sequence into CNF and handing it to the gini
// solver (github.com/go-air/gini). An Unsatisfiable answer at k proves the
// twin-width of the snapshot exceeds k; the exact package uses it to raise
// lower bounds and to cut subtrees.
//
// The encoding is time-indexed. For every step t it has alive, removed and
// survivor variables per vertex and edge/red variables per vertex pair:
//
//   - exactly one removed and one survivor per step, survivor id below the
//     removed id;
//   - edges of untouched pairs carry over unchanged, a removed vertex loses
//     all its edges, and a survivor is adjacent to w iff either merged vertex
//     was;
//   - red only grows: an untouched red edge stays red, and the survivor's edge
//     to w is red when either old edge was red or exactly one existed;
//   - every vertex has red degree at most k at every step, step 0 included,
//     via a sequential counter.
//
// Frozen vertices never move. The encoding grows as O(n⁴) clauses, so
// snapshots above WithMaxVertices are answered Unknown without solving.
package oracle

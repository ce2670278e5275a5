// Package builder provides deterministic, functional-options generators for
// the graphs the twin-width solvers are tested and benchmarked on.
//
// BuildGraph(bopts, cons...) starts from an empty core.Graph and applies each
// Constructor in order. Every constructor appends its own block of fresh
// vertex ids, so composing constructors yields a disjoint union:
//
//	g, err := builder.BuildGraph(nil, builder.Path(5), builder.Complete(3))
//	// vertices 0..4 form P5, vertices 5..7 form K3
//
// Constructors: Path, Cycle, Complete, Star, Wheel, CompleteBipartite, Grid,
// PlatonicSolid, Named (Chvatal, Durer, Petersen) and RandomSparse.
//
// Options:
//   - WithSeed / WithRand: RNG for RandomSparse (required when 0 < p < 1).
//   - WithName: label forwarded to core.WithName.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrOptionViolation, ErrConstructFailed) wrapped with
// the constructor name; branch on them with errors.Is. Option constructors
// panic on meaningless input (WithRand(nil)); constructors never panic.
package builder

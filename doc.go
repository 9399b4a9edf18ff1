// Package cubezdd computes multi-dimensional aggregate counts over
// hierarchically structured observations.
//
// # Overview
//
// Each observation is a labeled tree (or a set of such trees). Given a
// weighted stream of observations, the package answers, for any query
// tree, the sum of weights of observations whose subtree decompositions
// contain the query. Equivalently, it evaluates associative/commutative
// aggregations across arbitrary combinations of hierarchical dimensions
// (URL path x demographic path x time path, for example), exploiting the
// combinatorial sharing of a Zero-suppressed Binary Decision Diagram
// (ZDD) to keep the representation compact when the cube of dimension
// combinations would otherwise be exponential.
//
// # Key Features
//
//   - A hash-consed, canonical ZDD Store with memoized set operations
//     (union, intersection, difference) and their cross-product variants
//   - Memoized ZDD-number arithmetic: little-endian digit vectors of
//     ZDDs in binary (nonnegative) and negabinary (signed) bases
//   - A symbolic tree algebra (Top, Bot, Path, Prefix, Cross, Sum) and
//     its compiler into "all subtrees of a set of trees"
//   - An aggregator that folds a weighted sequence of tree expressions
//     into one ZDD-number and answers containment-count queries
//
// # Basic Usage
//
//	store := cubezdd.NewStore(cubezdd.WithLogger(logger))
//	compiler := cubezdd.NewCompiler(store)
//
//	a := cubezdd.Cross(cubezdd.PathOf("a", "b"), cubezdd.PathOf("a", "c"))
//	b := cubezdd.Cross(cubezdd.PathOf("a", "b"), cubezdd.PathOf("a", "d"))
//
//	acc := cubezdd.Nil
//	acc = cubezdd.Accumulate(store, compiler, acc, 1, a)
//	acc = cubezdd.Accumulate(store, compiler, acc, 1, b)
//
//	n, err := cubezdd.Count(store, compiler, acc, cubezdd.PathOf("a", "b"))
//	// n == 2
//
// # Concurrency
//
// A Store is safe for concurrent use: the node table and every
// operation's memo cache are protected so that two racing callers
// computing the same thing converge on one canonical handle. Accumulate,
// Merge and Count have no mutable state of their own; the Store they
// share is the only shared mutable state, and Merge is the intended
// reduce step for an embarrassingly parallel fold over an observation
// stream.
package cubezdd

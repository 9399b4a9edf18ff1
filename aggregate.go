package cubezdd

// This file implements the aggregator: folding a weighted stream of
// tree expressions into one ZDD-number and answering containment-count
// queries against it. None of the three operations below carry state of
// their own; the Store and Compiler they are handed are the only shared
// mutable state, and Merge is the intended reduce step for a parallel
// fold over an observation stream.

// Accumulate compiles t to its subtree ZDD, promotes weight*subtrees
// into a ZDD-number, and folds it into acc with negabinary addition.
// acc's neutral element is Nil, the empty ZDD-number.
func Accumulate(store *Store, c *Compiler, acc Number, weight int64, t Expr) Number {
	s := c.Subtrees(t)
	z := Negabinary(weight, s)
	return NegabinaryAdd(store, acc, z)
}

// Merge folds two ZDD-numbers together with negabinary addition.
// Associative, commutative, with Nil as identity -- the reduce step for
// combining Accumulate results computed on different goroutines or in
// different orders.
func Merge(store *Store, a, b Number) Number {
	return NegabinaryAdd(store, a, b)
}

// Sub subtracts b from a. Used to undo an Accumulate given the same
// weight and expression it was built from: there is no way to undo an
// accumulation without knowing the original (weight, expr) pair that
// produced it, since the accumulator carries no record of its inputs.
func Sub(store *Store, a, b Number) Number {
	return NegabinarySub(store, a, b)
}

// Count compiles query to its full-tree ZDD and returns that singleton
// set's coefficient within acc. It returns ErrNonSingletonQuery if query
// does not denote exactly one tree -- count_trees is only defined
// against a single set of variables, not a family of them.
func Count(store *Store, c *Compiler, acc Number, query Expr) (int64, error) {
	q := c.Trees(query)
	if !IsSingleton(store, q) {
		return 0, ErrNonSingletonQuery
	}
	return Coefficient(store, acc, q, true), nil
}

// WeightedExpr pairs a signed weight with the tree expression it
// weights, the unit sum_subtrees folds over.
type WeightedExpr struct {
	Weight int64
	Tree   Expr
}

// SumSubtrees folds Accumulate over a sequence of weighted tree
// expressions:
// Merge(subtrees(w1, t1), subtrees(w2, t2), ...).
func SumSubtrees(store *Store, c *Compiler, observations []WeightedExpr) Number {
	acc := Nil
	for _, obs := range observations {
		acc = Accumulate(store, c, acc, obs.Weight, obs.Tree)
	}
	return acc
}

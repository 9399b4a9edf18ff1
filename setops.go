package cubezdd

// This file implements the ZDD store's family of set operations: union,
// intersection, difference, and their cross-product variants. Every
// operation is memoized on the pair (or, for commutative operations, the
// unordered pair) of argument handles, using the Store's opCache. All
// recursion is driven by a variable-ordering comparison that treats a
// terminal Top as having an "infinite" variable -- larger than any real
// variable -- which lets the recursive cases for "one side terminal, one
// side internal" fall out of the same code path as "both internal,
// distinct variables" without special-casing every operation twice.

// infiniteVar marks a terminal operand in a variable comparison: it
// compares as strictly greater than every real Variable.
const infiniteVar = ^Variable(0)

func (s *Store) compareVar(id NodeID) Variable {
	if v, ok := s.varOf(id); ok {
		return v
	}
	return infiniteVar
}

// Union returns the ZDD denoting the union of the set families a and b.
func (s *Store) Union(a, b NodeID) NodeID {
	if a == b {
		return a
	}
	if a == Bot {
		return b
	}
	if b == Bot {
		return a
	}

	key := commutativeKey(a, b)
	if r, ok := s.unionCache.get(key); ok {
		return r
	}

	va, vb := s.compareVar(a), s.compareVar(b)
	var result NodeID
	switch {
	case va < vb:
		na, _ := s.GetNode(a)
		result = s.mk(va, s.Union(na.Lo, b), na.Hi)
	case vb < va:
		nb, _ := s.GetNode(b)
		result = s.mk(vb, s.Union(a, nb.Lo), nb.Hi)
	default:
		na, _ := s.GetNode(a)
		nb, _ := s.GetNode(b)
		result = s.mk(va, s.Union(na.Lo, nb.Lo), s.Union(na.Hi, nb.Hi))
	}

	s.unionCache.put(key, result)
	return result
}

// Intersection returns the ZDD denoting the intersection of the set
// families a and b.
func (s *Store) Intersection(a, b NodeID) NodeID {
	if a == b {
		return a
	}
	if a == Bot || b == Bot {
		return Bot
	}

	key := commutativeKey(a, b)
	if r, ok := s.intersectCache.get(key); ok {
		return r
	}

	va, vb := s.compareVar(a), s.compareVar(b)
	var result NodeID
	switch {
	case va < vb:
		na, _ := s.GetNode(a)
		result = s.Intersection(na.Lo, b)
	case vb < va:
		nb, _ := s.GetNode(b)
		result = s.Intersection(a, nb.Lo)
	default:
		na, _ := s.GetNode(a)
		nb, _ := s.GetNode(b)
		result = s.mk(va, s.Intersection(na.Lo, nb.Lo), s.Intersection(na.Hi, nb.Hi))
	}

	s.intersectCache.put(key, result)
	return result
}

// Difference returns the ZDD denoting the set family a with every set
// appearing in b removed.
func (s *Store) Difference(a, b NodeID) NodeID {
	if a == Bot || b == Bot {
		if b == Bot {
			return a
		}
		return Bot
	}
	if a == b {
		return Bot
	}

	key := pairKey{a, b}
	if r, ok := s.differenceCache.get(key); ok {
		return r
	}

	va, vb := s.compareVar(a), s.compareVar(b)
	var result NodeID
	switch {
	case va < vb:
		na, _ := s.GetNode(a)
		result = s.mk(va, s.Difference(na.Lo, b), na.Hi)
	case vb < va:
		nb, _ := s.GetNode(b)
		result = s.Difference(a, nb.Lo)
	default:
		na, _ := s.GetNode(a)
		nb, _ := s.GetNode(b)
		result = s.mk(va, s.Difference(na.Lo, nb.Lo), s.Difference(na.Hi, nb.Hi))
	}

	s.differenceCache.put(key, result)
	return result
}

// symDiff is the symmetric difference x triangle y = (x union y) minus
// (x intersect y), the "sum with no carry" primitive ZDD-number
// arithmetic (number.go) is built from.
func symDiff(s *Store, a, b NodeID) NodeID {
	return s.Difference(s.Union(a, b), s.Intersection(a, b))
}

// addVar returns the ZDD obtained by prefixing every set in x with v:
// { S union {v} : S in x }. It is mk(v, Bot, x), spelled out because the
// cross-product operations below use it by name in several places.
func (s *Store) addVar(v Variable, x NodeID) NodeID {
	if x == Bot {
		return Bot
	}
	return s.mk(v, Bot, x)
}

// CrossUnion is the cross-union (cross-product-then-union) of two set
// families: for every Sa in a and Sb in b, emit Sa union Sb.
func (s *Store) CrossUnion(a, b NodeID) NodeID {
	if a == Bot || b == Bot {
		return Bot
	}
	if a == Top {
		return b
	}
	if b == Top {
		return a
	}

	key := commutativeKey(a, b)
	if r, ok := s.crossUnionCache.get(key); ok {
		return r
	}

	na, _ := s.GetNode(a)
	nb, _ := s.GetNode(b)

	var result NodeID
	switch {
	case na.Var < nb.Var:
		result = s.mk(na.Var, s.CrossUnion(na.Lo, b), s.CrossUnion(na.Hi, b))
	case nb.Var < na.Var:
		result = s.mk(nb.Var, s.CrossUnion(a, nb.Lo), s.CrossUnion(a, nb.Hi))
	default:
		loLo := s.CrossUnion(na.Lo, nb.Lo)
		hiLo := s.CrossUnion(na.Hi, nb.Lo)
		loHi := s.CrossUnion(na.Lo, nb.Hi)
		hiHi := s.CrossUnion(na.Hi, nb.Hi)
		result = s.mk(na.Var, loLo, s.Union(hiLo, s.Union(loHi, hiHi)))
	}

	s.crossUnionCache.put(key, result)
	return result
}

// CrossIntersection is the cross-product-then-intersection of two set
// families: for every Sa in a and Sb in b, emit Sa intersect Sb.
func (s *Store) CrossIntersection(a, b NodeID) NodeID {
	if a == Bot || b == Bot {
		return Bot
	}
	if a == Top || b == Top {
		return Top
	}

	key := commutativeKey(a, b)
	if r, ok := s.crossInterCache.get(key); ok {
		return r
	}

	na, _ := s.GetNode(a)
	nb, _ := s.GetNode(b)

	var result NodeID
	switch {
	case na.Var < nb.Var:
		result = s.Union(s.CrossIntersection(na.Lo, b), s.CrossIntersection(na.Hi, b))
	case nb.Var < na.Var:
		result = s.Union(s.CrossIntersection(a, nb.Lo), s.CrossIntersection(a, nb.Hi))
	default:
		loLo := s.CrossIntersection(na.Lo, nb.Lo)
		loHi := s.CrossIntersection(na.Lo, nb.Hi)
		hiLo := s.CrossIntersection(na.Hi, nb.Lo)
		hiHi := s.addVar(na.Var, s.CrossIntersection(na.Hi, nb.Hi))
		result = s.Union(s.Union(loLo, loHi), s.Union(hiLo, hiHi))
	}

	s.crossInterCache.put(key, result)
	return result
}

// CrossDifference is the cross-product-then-difference of two set
// families: for every Sa in a and Sb in b, emit Sa minus Sb.
func (s *Store) CrossDifference(a, b NodeID) NodeID {
	if a == Bot || b == Bot {
		return Bot
	}
	if a == Top {
		return Top
	}
	if b == Top {
		return a
	}

	key := pairKey{a, b}
	if r, ok := s.crossDiffCache.get(key); ok {
		return r
	}

	na, _ := s.GetNode(a)
	nb, _ := s.GetNode(b)

	var result NodeID
	switch {
	case na.Var < nb.Var:
		result = s.mk(na.Var, s.CrossDifference(na.Lo, b), s.CrossDifference(na.Hi, b))
	case nb.Var < na.Var:
		result = s.Union(s.CrossDifference(a, nb.Lo), s.CrossDifference(a, nb.Hi))
	default:
		loLo := s.CrossDifference(na.Lo, nb.Lo)
		loHi := s.CrossDifference(na.Lo, nb.Hi)
		hiLo := s.addVar(na.Var, s.CrossDifference(na.Hi, nb.Lo))
		hiHi := s.CrossDifference(na.Hi, nb.Hi)
		result = s.Union(s.Union(loLo, loHi), s.Union(hiLo, hiHi))
	}

	s.crossDiffCache.put(key, result)
	return result
}

// Subset reports whether every set in the family a is also a member of
// the family b.
func (s *Store) Subset(a, b NodeID) bool {
	if a == Bot {
		return true
	}
	if a == b {
		return true
	}
	if b == Bot {
		return false
	}

	key := pairKey{a, b}
	if r, ok := s.subsetCache.get(key); ok {
		return r
	}

	va, vb := s.compareVar(a), s.compareVar(b)
	var result bool
	switch {
	case va == vb:
		na, _ := s.GetNode(a)
		nb, _ := s.GetNode(b)
		result = s.Subset(na.Lo, nb.Lo) && s.Subset(na.Hi, nb.Hi)
	case va < vb:
		na, _ := s.GetNode(a)
		result = na.Hi == Bot && s.Subset(na.Lo, b)
	default:
		nb, _ := s.GetNode(b)
		result = s.Subset(a, nb.Lo)
	}

	s.subsetCache.put(key, result)
	return result
}

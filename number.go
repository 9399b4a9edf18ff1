package cubezdd

// Number is a ZDD-number: a little-endian sequence of ZDD digits.
// Digit 0 is the units place. Interpreted in binary, the coefficient of
// a set S is the nonnegative integer whose bit i is 1 iff S is a member
// of Number[i]; interpreted in negabinary (base -2), the same bit
// pattern names a signed integer. A canonical Number never ends in a
// Bot digit; Nil (the empty Number) denotes the all-zero coefficient
// vector and is the neutral element of both Add variants below.
type Number []NodeID

// Nil is the neutral element of ZDD-number addition: every coefficient
// is zero.
var Nil Number

func digitAt(n Number, i int) NodeID {
	if i < len(n) {
		return n[i]
	}
	return Bot
}

// trim drops trailing Bot digits so a Number stays in canonical form.
func trim(n Number) Number {
	i := len(n)
	for i > 0 && n[i-1] == Bot {
		i--
	}
	return n[:i]
}

// BinaryAdd adds two nonnegative ZDD-numbers, digit by digit, using a
// textbook ripple-carry recast over ZDD set operations: at each position
// the sum-with-no-carry is the symmetric difference of the two digits
// and the incoming carry, and the new carry is the union of the
// pairwise intersections (the "majority" of the three inputs).
func BinaryAdd(s *Store, xs, ys Number) Number {
	var result Number
	carry := Bot
	for i := 0; i < len(xs) || i < len(ys) || carry != Bot; i++ {
		x := digitAt(xs, i)
		y := digitAt(ys, i)

		sum1 := symDiff(s, x, y)
		carry1 := s.Intersection(x, y)
		sum := symDiff(s, sum1, carry)
		carryFromSum := s.Intersection(sum1, carry)
		newCarry := s.Union(carry1, carryFromSum)

		result = append(result, sum)
		carry = newCarry
	}
	return trim(result)
}

// negabinaryFullAdd computes one digit of a negabinary addition, given
// the two input digits and a signed incoming carry split into its
// positive part cp and negative part cm (cp and cm are always disjoint
// set families). It returns the output digit and the new split carry.
//
// Base -2 means the carry out of position i contributes to position i+1
// with its sign flipped relative to ordinary binary addition: a
// carry-in of -1 can arise, which this representation keeps as "member
// of cm" rather than trying to force a signed ZDD digit into existence.
func negabinaryFullAdd(s *Store, x, y, cp, cm NodeID) (b, newCp, newCm NodeID) {
	sXorY := symDiff(s, x, y)
	pXandY := s.Intersection(x, y)
	cpcm := s.Union(cp, cm)
	xy := s.Union(x, y)

	// c=0, exactly one of x,y set: value_in=1, b=1.
	t1 := s.Difference(sXorY, cpcm)
	// c=+1, x=y=0: value_in=1, b=1.
	t2 := s.Difference(cp, xy)
	// c=+1, x=y=1: value_in=3, b=1, carry=-1.
	t3 := s.Intersection(pXandY, cp)
	// c=-1, x=y=0: value_in=-1, b=1, carry=+1.
	t4 := s.Difference(cm, xy)
	// c=-1, x=y=1: value_in=1, b=1.
	t5 := s.Intersection(pXandY, cm)

	b = s.Union(t1, s.Union(t2, s.Union(t3, s.Union(t4, t5))))

	// c=0, x=y=1: value_in=2, carry=-1.
	u1 := s.Difference(pXandY, cpcm)
	// c=+1, exactly one of x,y: value_in=2, carry=-1.
	u2 := s.Intersection(sXorY, cp)
	newCm = s.Union(u1, s.Union(u2, t3))

	newCp = t4

	return b, newCp, newCm
}

// NegabinaryAdd adds two signed ZDD-numbers in base -2.
func NegabinaryAdd(s *Store, xs, ys Number) Number {
	var result Number
	cp, cm := Bot, Bot
	for i := 0; i < len(xs) || i < len(ys) || cp != Bot || cm != Bot; i++ {
		x := digitAt(xs, i)
		y := digitAt(ys, i)

		b, ncp, ncm := negabinaryFullAdd(s, x, y, cp, cm)
		result = append(result, b)
		cp, cm = ncp, ncm
	}
	return trim(result)
}

// negabinaryFullSub computes one digit of xs - ys in base -2, with the
// carry convention of negabinaryFullAdd. It is the subtraction variant
// of the same full-adder, derived from the same value_in = digit +
// (-2)*carry_out recurrence applied to x-y+c instead of x+y+c.
func negabinaryFullSub(s *Store, x, y, cp, cm NodeID) (b, newCp, newCm NodeID) {
	diffXNotY := s.Difference(x, y)
	diffYNotX := s.Difference(y, x)
	cpcm := s.Union(cp, cm)
	dxy := s.Union(diffXNotY, diffYNotX)

	// c=0, x-y=+1: value_in=1, b=1.
	r1 := s.Difference(diffXNotY, cpcm)
	// c=0, x-y=-1: value_in=-1, b=1, carry=+1.
	r2 := s.Difference(diffYNotX, cpcm)
	// c=+1, x=y: value_in=1, b=1.
	r3 := s.Difference(cp, dxy)
	// c=-1, x=y: value_in=-1, b=1, carry=+1.
	r4 := s.Difference(cm, dxy)
	// c=+1, x-y=+1: value_in=2, carry=-1.
	r5 := s.Intersection(diffXNotY, cp)
	// c=-1, x-y=-1: value_in=-2, carry=+1.
	r6 := s.Intersection(diffYNotX, cm)

	b = s.Union(s.Union(r1, r2), s.Union(r3, r4))
	newCp = s.Union(s.Union(r2, r6), r4)
	newCm = r5
	return b, newCp, newCm
}

// NegabinarySub subtracts ys from xs in base -2.
func NegabinarySub(s *Store, xs, ys Number) Number {
	var result Number
	cp, cm := Bot, Bot
	for i := 0; i < len(xs) || i < len(ys) || cp != Bot || cm != Bot; i++ {
		x := digitAt(xs, i)
		y := digitAt(ys, i)

		b, ncp, ncm := negabinaryFullSub(s, x, y, cp, cm)
		result = append(result, b)
		cp, cm = ncp, ncm
	}
	return trim(result)
}

// Binary promotes a (weight, set-family) pair into a nonnegative
// ZDD-number whose coefficient of every set in z is w: write w in
// binary and emit z at every 1-bit position, Bot elsewhere.
func Binary(w uint64, z NodeID) Number {
	if w == 0 || z == Bot {
		return Nil
	}
	var n Number
	for w > 0 {
		if w&1 == 1 {
			n = append(n, z)
		} else {
			n = append(n, Bot)
		}
		w >>= 1
	}
	return trim(n)
}

// Negabinary promotes a (signed weight, set-family) pair into a
// ZDD-number whose coefficient of every set in z is w, using the unique
// base -2 representation of w.
func Negabinary(w int64, z NodeID) Number {
	if w == 0 || z == Bot {
		return Nil
	}
	var n Number
	for w != 0 {
		d := ((w % 2) + 2) % 2
		if d == 1 {
			n = append(n, z)
		} else {
			n = append(n, Bot)
		}
		w = (w - d) / -2
	}
	return trim(n)
}

// IsSingleton reports whether id denotes a family containing exactly
// one set: Top (the family {empty set}) or a chain of internal nodes
// each with Lo == Bot terminating in Top.
func IsSingleton(s *Store, id NodeID) bool {
	for {
		switch id {
		case Top:
			return true
		case Bot:
			return false
		}
		node, err := s.GetNode(id)
		if err != nil {
			return false
		}
		if node.Lo != Bot {
			return false
		}
		id = node.Hi
	}
}

// Coefficient returns the coefficient of the singleton family q within
// the ZDD-number n, interpreted in binary (base 2) if negabinary is
// false, or base -2 if true. The membership test at each digit is the
// store's Subset predicate applied to the singleton q.
func Coefficient(s *Store, n Number, q NodeID, negabinary bool) int64 {
	var total, weight int64 = 0, 1
	for _, d := range n {
		if s.Subset(q, d) {
			total += weight
		}
		if negabinary {
			weight *= -2
		} else {
			weight *= 2
		}
	}
	return total
}

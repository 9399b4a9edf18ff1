package cubezdd

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Variable names a single node position in the label universe: it is
// the 64-bit key ZDD nodes branch on. Variable 0 is reserved for "no
// parent" (the root context) and must never be produced by Intern or
// used as a real node variable.
//
// A Variable packs a 16-bit depth in its high bits and a 48-bit label
// hash in its low bits. The store's ordering invariant (a node's
// variable is less than each of its internal children's) only needs to
// hold between an ancestor and its descendants along one tree path, not
// between unrelated siblings -- and depth strictly increases by one at
// every Prefix nesting, so putting depth in the dominant bits makes
// that invariant true by construction, for free, without a mutable
// table tracking which variable was interned before which.
type Variable uint64

// rootVariable is the parent variable used when interning a label at
// the root of a tree; depth 0.
const rootVariable Variable = 0

const (
	depthBits  = 16
	depthShift = 64 - depthBits
	hashMask   = (uint64(1) << depthShift) - 1
	maxDepth   = (uint64(1) << depthBits) - 1
)

func depthOf(v Variable) uint64 {
	return uint64(v) >> depthShift
}

// Intern maps a (parent variable, label) pair to a Variable one depth
// level below parent.
//
// Intern is a pure function: identical inputs yield identical outputs
// across invocations within a process, and across processes, since the
// hash carries no process-specific salt. This lets identical labeled
// paths from the root of a tree share a Variable regardless of which
// goroutine or which expression first names that position -- the ZDD
// store's hash-consing then gives them one shared node for free.
//
// The pair is hashed as parent (8 bytes, big-endian) followed by the raw
// label bytes, which keeps (parent=1, label="ab") distinct from
// (parent=0, label=concat of something that hashes the same way) --
// the fixed-width parent prefix prevents the two fields from being
// confused by a length-extension-style collision. Trees nested deeper
// than maxDepth are outside this package's scope; Intern does not guard
// against the depth field overflowing past it.
func Intern(parent Variable, label []byte) Variable {
	var prefix [8]byte
	binary.BigEndian.PutUint64(prefix[:], uint64(parent))

	d := xxhash.New()
	d.Write(prefix[:])
	d.Write(label)
	h := d.Sum64() & hashMask

	depth := depthOf(parent) + 1
	v := Variable(depth<<depthShift | h)

	if v == rootVariable {
		// Unreachable once depth >= 1 contributes a nonzero high bit,
		// kept only so the contract never silently produces the
		// reserved sentinel.
		v |= 1
	}
	return v
}

// InternString is a convenience wrapper for string labels, the
// recommended label encoding per the package's external interface.
func InternString(parent Variable, label string) Variable {
	return Intern(parent, []byte(label))
}

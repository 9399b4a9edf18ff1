package cubezdd

import (
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// NodeID is an opaque handle to a ZDD node inside a Store. Identity
// equality of two NodeIDs returned by the same Store implies semantic
// equality of the sets of sets they denote -- that is the hash-consing
// invariant the rest of this package leans on.
type NodeID uint64

// Bot and Top are the two ZDD terminals. Bot denotes the empty set of
// sets; Top denotes the set containing only the empty set.
const (
	Bot NodeID = 0
	Top NodeID = 1
)

// Node is an internal ZDD node: Lo is the "without Var" branch, Hi is
// the "with Var" branch. See the doc on Store.mk for the invariants a
// Node must satisfy before it is ever stored.
type Node struct {
	Var Variable
	Lo  NodeID
	Hi  NodeID
}

// IsTerminal reports whether id names Bot or Top.
func IsTerminal(id NodeID) bool {
	return id == Bot || id == Top
}

// Store is a hash-consed, canonical ZDD node table plus the memo caches
// for every set operation defined on it. A Store is safe for concurrent
// use: two callers racing to build the same node, or to compute the same
// union, converge on one shared handle.
//
// Nodes are never removed once created: their NodeIDs stay valid for the
// lifetime of the Store. Memo cache entries may be evicted (when a
// bounded cache policy is configured via WithOpCacheSize) without
// affecting correctness -- a cache miss just recomputes the same
// canonical result.
type Store struct {
	mu    sync.RWMutex
	nodes []Node
	index map[Node]NodeID

	logger            zerolog.Logger
	growthLogInterval int
	lastLoggedSize    int

	unionCache      *opCache
	intersectCache  *opCache
	differenceCache *opCache
	crossUnionCache *opCache
	crossInterCache *opCache
	crossDiffCache  *opCache
	subsetCache     *boolCache
}

// NewStore creates an empty Store with the two terminal slots
// pre-allocated.
func NewStore(opts ...Option) *Store {
	cfg := newConfig(opts...)

	s := &Store{
		nodes:             make([]Node, 2), // Bot, Top placeholders
		index:             make(map[Node]NodeID),
		logger:            cfg.Logger,
		growthLogInterval: cfg.GrowthLogInterval,
		unionCache:        newOpCache(cfg.OpCacheSize),
		intersectCache:    newOpCache(cfg.OpCacheSize),
		differenceCache:   newOpCache(cfg.OpCacheSize),
		crossUnionCache:   newOpCache(cfg.OpCacheSize),
		crossInterCache:   newOpCache(cfg.OpCacheSize),
		crossDiffCache:    newOpCache(cfg.OpCacheSize),
		subsetCache:       newBoolCache(cfg.OpCacheSize),
	}
	return s
}

// Size returns the number of internal nodes in the store (terminals
// excluded).
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes) - 2
}

// GetNode retrieves a node's fields by handle. It returns
// ErrInvalidNode for a terminal or out-of-range id -- terminals carry no
// Node record because they branch on nothing.
func (s *Store) GetNode(id NodeID) (Node, error) {
	if IsTerminal(id) {
		return Node{}, fmt.Errorf("%w: node %d is a terminal", ErrInvalidNode, id)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if int(id) >= len(s.nodes) {
		return Node{}, fmt.Errorf("%w: node %d out of range", ErrInvalidNode, id)
	}
	return s.nodes[id], nil
}

// varOf returns the variable a handle branches on, and false for a
// terminal (which branches on nothing).
func (s *Store) varOf(id NodeID) (Variable, bool) {
	if IsTerminal(id) {
		return 0, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nodes[id].Var, true
}

// mk is the canonical ZDD node constructor. It applies zero-suppression
// and hash-consing, and is the sole place the ordering invariant is
// enforced: every Store method that builds new nodes must route
// through mk.
//
// Violating the ordering invariant (v >= an internal child's variable)
// is a programming error inside this package, not a condition a caller
// can trigger with valid inputs -- it panics rather than returning an
// error.
func (s *Store) mk(v Variable, lo, hi NodeID) NodeID {
	if v == 0 {
		invariantf("mk: variable 0 is reserved")
	}
	if hi == Bot {
		// Zero-suppression: a node whose hi-arc leads nowhere collapses
		// to its lo-arc.
		return lo
	}
	if loVar, ok := s.varOf(lo); ok && v >= loVar {
		invariantf("mk: ordering invariant violated: v=%d >= lo.Var=%d", v, loVar)
	}
	if hiVar, ok := s.varOf(hi); ok && v >= hiVar {
		invariantf("mk: ordering invariant violated: v=%d >= hi.Var=%d", v, hiVar)
	}

	node := Node{Var: v, Lo: lo, Hi: hi}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.index[node]; ok {
		return existing
	}

	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, node)
	s.index[node] = id

	s.logGrowthLocked()

	return id
}

// logGrowthLocked emits a milestone log line every GrowthLogInterval
// newly created nodes. Called with s.mu held.
func (s *Store) logGrowthLocked() {
	if s.growthLogInterval <= 0 {
		return
	}
	size := len(s.nodes) - 2
	if size-s.lastLoggedSize >= s.growthLogInterval {
		s.lastLoggedSize = size
		s.logger.Debug().Int("nodes", size).Msg("zdd store growth milestone")
	}
}

func invariantf(format string, args ...interface{}) {
	panic(fmt.Sprintf("cubezdd: invariant violation: "+format, args...))
}

// opCache is a memo cache from a pair of handles to a resulting NodeID. It
// backs every set operation's memoization. By default it is an
// unbounded map guarded by a mutex, matching the teacher's NodeTable
// discipline; when a Store is built WithOpCacheSize(n), it becomes a
// bounded LRU instead. Purging an entry is always safe: correctness
// never depends on a memo entry surviving.
type opCache struct {
	mu      sync.RWMutex
	m       map[pairKey]NodeID
	lru     *lru.Cache[pairKey, NodeID]
	hits    atomic.Int64
	misses  atomic.Int64
}

type pairKey struct {
	A, B NodeID
}

func newOpCache(size int) *opCache {
	if size > 0 {
		c, err := lru.New[pairKey, NodeID](size)
		if err != nil {
			// Only returns an error for size <= 0, already excluded above.
			panic(err)
		}
		return &opCache{lru: c}
	}
	return &opCache{m: make(map[pairKey]NodeID)}
}

func (c *opCache) get(k pairKey) (NodeID, bool) {
	v, ok := c.lookup(k)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

func (c *opCache) lookup(k pairKey) (NodeID, bool) {
	if c.lru != nil {
		return c.lru.Get(k)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[k]
	return v, ok
}

func (c *opCache) put(k pairKey, v NodeID) {
	if c.lru != nil {
		c.lru.Add(k, v)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	// Idempotent: a racing insert of the same key/value is harmless.
	c.m[k] = v
}

// boolCache memoizes the Subset predicate, keyed on the ordered pair
// (a, b) since subset is not commutative.
type boolCache struct {
	mu     sync.RWMutex
	m      map[pairKey]bool
	lru    *lru.Cache[pairKey, bool]
	hits   atomic.Int64
	misses atomic.Int64
}

func newBoolCache(size int) *boolCache {
	if size > 0 {
		c, err := lru.New[pairKey, bool](size)
		if err != nil {
			panic(err)
		}
		return &boolCache{lru: c}
	}
	return &boolCache{m: make(map[pairKey]bool)}
}

func (c *boolCache) get(k pairKey) (bool, bool) {
	v, ok := c.lookup(k)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

func (c *boolCache) lookup(k pairKey) (bool, bool) {
	if c.lru != nil {
		return c.lru.Get(k)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[k]
	return v, ok
}

func (c *boolCache) put(k pairKey, v bool) {
	if c.lru != nil {
		c.lru.Add(k, v)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[k] = v
}

// commutativeKey canonicalizes a pair for a commutative operation so
// that Union(a, b) and Union(b, a) share one memo entry.
func commutativeKey(a, b NodeID) pairKey {
	if a <= b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

package globtrie

import "sort"

// NodeID indexes a node within a trie's arena. The zero value identifies
// the root; NodeID is never negative and is stable for the lifetime of
// the trie (augment only appends, it never relocates a node).
type NodeID uint32

// edge is one outgoing transition of a node. child is an arena index
// rather than a pointer: the trie owns a contiguous arena of nodes, and
// edges reference children by ID so the arena can grow (and reallocate
// its backing slice) without invalidating existing edges.
type edge[T any] struct {
	key   edgeKey
	kind  edgeKind
	lit   byte
	class []byte
	child NodeID
}

// node is one vertex of the trie. edges is kept sorted by descending
// specificity weight, so that anything walking it in order sees the
// most-specific transitions first; hasTerm/value/seq are only
// meaningful when hasTerm is true.
type node[T any] struct {
	edges   []edge[T]
	hasTerm bool
	value   T
	seq     uint64 // insertion order, for tie-breaking equally specific matches
}

// trie is the shared arena both GlobTrie and PathTrie are built on. T is
// the terminal payload: a user value for GlobTrie, the stored path
// string for PathTrie.
type trie[T any] struct {
	nodes []node[T]
	seq   uint64
}

func newTrie[T any]() *trie[T] {
	return &trie[T]{nodes: []node[T]{{}}}
}

func (t *trie[T]) root() NodeID { return 0 }

func (t *trie[T]) newNode() NodeID {
	t.nodes = append(t.nodes, node[T]{})
	return NodeID(len(t.nodes) - 1)
}

// findOrCreateEdge returns the child reached by tok from id, creating
// the edge (and its target node) if it doesn't already exist. Edge
// lookup and insertion always re-index t.nodes by id rather than
// holding a *node across newNode, since appending to the arena may
// reallocate its backing array.
func (t *trie[T]) findOrCreateEdge(id NodeID, tok token) NodeID {
	key := tokenKey(tok)
	for _, e := range t.nodes[id].edges {
		if e.key == key {
			return e.child
		}
	}
	child := t.newNode()
	e := edge[T]{key: key, kind: tok.kind, lit: tok.lit, class: tok.class, child: child}
	t.nodes[id].edges = insertBySpecificity(t.nodes[id].edges, e)
	return child
}

// insertBySpecificity inserts e into edges, keeping the slice sorted by
// descending specificityWeight (most specific first).
func insertBySpecificity[T any](edges []edge[T], e edge[T]) []edge[T] {
	w := e.kind.specificityWeight()
	idx := sort.Search(len(edges), func(i int) bool {
		return edges[i].kind.specificityWeight() < w
	})
	edges = append(edges, edge[T]{})
	copy(edges[idx+1:], edges[idx:])
	edges[idx] = e
	return edges
}

// augment walks toks from the root, creating edges as needed, and sets
// the terminal on the final node. It reports the previous value and
// whether a terminal already existed there.
func (t *trie[T]) augment(toks []token, value T) (old T, existed bool) {
	id := t.root()
	for _, tok := range toks {
		id = t.findOrCreateEdge(id, tok)
	}
	n := &t.nodes[id]
	old = n.value
	existed = n.hasTerm
	n.value = value
	n.hasTerm = true
	if !existed {
		t.seq++
		n.seq = t.seq
	}
	return old, existed
}

// stateKey packs a (node, position) pair into a single comparable key,
// for deduplicating NFA frontier states during matching.
func stateKey(id NodeID, pos int) uint64 {
	return uint64(id)<<32 | uint64(uint32(pos))
}

// reachableWithinSegment returns every node reachable from id by
// consuming zero or more consecutive Lit edges, without crossing a Sep
// edge. It backs PathTrie's matching of a single-segment "*".
func (t *trie[T]) reachableWithinSegment(id NodeID) []NodeID {
	seen := map[NodeID]bool{id: true}
	out := []NodeID{id}
	frontier := []NodeID{id}
	for len(frontier) > 0 {
		var next []NodeID
		for _, cur := range frontier {
			for _, e := range t.nodes[cur].edges {
				if e.kind == kindLit && !seen[e.child] {
					seen[e.child] = true
					out = append(out, e.child)
					next = append(next, e.child)
				}
			}
		}
		frontier = next
	}
	return out
}

// reachableSubtree returns every node reachable from id via any
// sequence of edges, of any kind and any length, including id itself.
// It backs PathTrie's matching of a bare "**" not immediately followed
// by "/", which (mirroring collectMatches' kindDoubleStar case) may
// consume any number of arbitrary path characters, slashes included.
func (t *trie[T]) reachableSubtree(id NodeID) []NodeID {
	seen := map[NodeID]bool{id: true}
	out := []NodeID{id}
	frontier := []NodeID{id}
	for len(frontier) > 0 {
		var next []NodeID
		for _, cur := range frontier {
			for _, e := range t.nodes[cur].edges {
				if !seen[e.child] {
					seen[e.child] = true
					out = append(out, e.child)
					next = append(next, e.child)
				}
			}
		}
		frontier = next
	}
	return out
}

// reachableWholeSegments returns every node reachable from id by
// consuming zero or more complete path segments (each a run of Lit
// edges followed by one Sep edge). It backs PathTrie's matching of a
// fused "**/"  token, the dual of GlobTrie's kindDoubleStarSep.
func (t *trie[T]) reachableWholeSegments(id NodeID) []NodeID {
	seen := map[NodeID]bool{id: true}
	out := []NodeID{id}
	frontier := []NodeID{id}
	for len(frontier) > 0 {
		var next []NodeID
		for _, cur := range frontier {
			for _, dst := range t.oneSegment(cur) {
				if !seen[dst] {
					seen[dst] = true
					out = append(out, dst)
					next = append(next, dst)
				}
			}
		}
		frontier = next
	}
	return out
}

// oneSegment returns every node reached by consuming exactly one
// complete segment from id: zero or more Lit edges followed by exactly
// one Sep edge.
func (t *trie[T]) oneSegment(id NodeID) []NodeID {
	var out []NodeID
	for _, e := range t.nodes[id].edges {
		switch e.kind {
		case kindSep:
			out = append(out, e.child)
		case kindLit:
			out = append(out, t.oneSegment(e.child)...)
		}
	}
	return out
}

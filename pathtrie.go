package globtrie

import "iter"

// PathTrie is the dual of GlobTrie: it stores a set of concrete paths,
// and GetAllMatches queries it with a glob pattern to find every
// stored path the pattern matches.
//
// A zero PathTrie is not ready to use; construct one with NewPathTrie.
// Concurrency follows GlobTrie: many readers may call GetAllMatches
// concurrently with each other, but Augment must not run concurrently
// with either GetAllMatches or another Augment.
type PathTrie struct {
	t   *trie[string]
	cfg config
}

// NewPathTrie constructs an empty PathTrie.
func NewPathTrie(opts ...Option) *PathTrie {
	return &PathTrie{
		t:   newTrie[string](),
		cfg: newConfig(opts),
	}
}

// Augment adds path to the set, returning true if it was already
// present. Augment returns a *MalformedPathError if path is empty,
// contains "//", or starts/ends with "/".
func (p *PathTrie) Augment(path string) (existed bool, err error) {
	stored := path
	if p.cfg.foldCase {
		stored = foldASCII(stored)
	}
	toks, err := tokenizePath(stored)
	if err != nil {
		return false, err
	}
	_, existed = p.t.augment(toks, stored)
	return existed, nil
}

// GetAllMatches returns an iterator over every stored path that glob
// matches, using the same pattern semantics as GlobTrie.Augment. Order
// is unspecified.
//
// GetAllMatches returns a *MalformedGlobError if glob contains an
// unterminated or empty character class.
func (p *PathTrie) GetAllMatches(glob string) (iter.Seq[string], error) {
	if p.cfg.foldCase {
		glob = foldASCII(glob)
	}
	toks, err := tokenizeGlob(glob)
	if err != nil {
		return nil, err
	}

	termNodes := make(map[NodeID]bool)
	visited := make(map[uint64]bool)

	var recurse func(id NodeID, tokIdx int)
	recurse = func(id NodeID, tokIdx int) {
		key := stateKey(id, tokIdx)
		if visited[key] {
			return
		}
		visited[key] = true

		n := &p.t.nodes[id]
		if tokIdx == len(toks) {
			if n.hasTerm {
				termNodes[id] = true
			}
			return
		}

		tok := toks[tokIdx]
		switch tok.kind {
		case kindSep:
			for _, e := range n.edges {
				if e.kind == kindSep {
					recurse(e.child, tokIdx+1)
				}
			}
		case kindLit:
			for _, e := range n.edges {
				if e.kind == kindLit && e.lit == tok.lit {
					recurse(e.child, tokIdx+1)
				}
			}
		case kindClass:
			for _, e := range n.edges {
				if e.kind == kindLit && inClass(tok.class, e.lit) {
					recurse(e.child, tokIdx+1)
				}
			}
		case kindNegClass:
			for _, e := range n.edges {
				if e.kind == kindLit && !inClass(tok.class, e.lit) {
					recurse(e.child, tokIdx+1)
				}
			}
		case kindAnyChar:
			for _, e := range n.edges {
				if e.kind == kindLit {
					recurse(e.child, tokIdx+1)
				}
			}
		case kindStarSeg:
			for _, dst := range p.t.reachableWithinSegment(id) {
				recurse(dst, tokIdx+1)
			}
		case kindDoubleStar:
			for _, dst := range p.t.reachableSubtree(id) {
				recurse(dst, tokIdx+1)
			}
		case kindDoubleStarSep:
			for _, dst := range p.t.reachableWholeSegments(id) {
				recurse(dst, tokIdx+1)
			}
		}
	}
	recurse(p.t.root(), 0)

	return func(yield func(string) bool) {
		for id := range termNodes {
			if !yield(p.t.nodes[id].value) {
				return
			}
		}
	}, nil
}

package globtrie

import "github.com/arcesium/glob-tries/internal/stringutil"

// foldASCII lowercases the ASCII letters of s, leaving everything else
// unchanged. It backs WithCaseInsensitive for both GlobTrie and
// PathTrie: the option folds whatever is tokenized, whether that's an
// inserted glob/path or a queried one, so stored and queried case
// always agree.
func foldASCII(s string) string {
	out := []byte(s)
	changed := false
	for i := 0; i < len(out); i++ {
		lower := stringutil.ToLowerASCII(out[i])
		if lower != out[i] {
			if !changed {
				changed = true
			}
			out[i] = lower
		}
	}
	if !changed {
		return s
	}
	return string(out)
}

// candidate is one terminal reached while matching a path against a
// GlobTrie: the value it carries, the specificity of the particular
// match that reached it (see acc), and the insertion sequence number
// used to break ties in favor of whichever glob was augmented first.
type candidate[T any] struct {
	value T
	acc   acc
	seq   uint64
}

// acc tracks the specificity of one partial match in progress: the
// weight of the least specific edge kind used so far (worst), and how
// many path characters have been consumed by edges of exactly that
// kind (worstChars). noWildcard is worst's initial value, ranking above
// every real edge weight, so the first non-separator edge a match takes
// always becomes its worst.
//
// "Most specific wins" is not a sum over a pattern's tokens: two globs
// that both match a path can differ only in how much ground their
// least specific edge had to cover, e.g. "bar/**" and
// "**/bar/**/foo.py" both matching "bar/eggs/foo.py" by falling back to
// a double-star, but the second one's double-star only has to cover one
// segment ("eggs/") before resuming literal matching on "foo.py", while
// the first one's has to swallow "eggs/foo.py" whole. acc captures
// exactly that: the worst kind a match relied on, and how much of the
// path it had to cover with it.
type acc struct {
	worst      int
	worstChars int
}

const noWildcard = 1 << 30

// extend folds one edge traversal of the given kind, covering n path
// characters, into a. Sep never contributes: it carries no specificity
// of its own. An edge weaker than a's current worst replaces it
// outright (a new low point dominates); one at the same weight adds to
// worstChars; one stronger than a's current worst leaves a unchanged,
// since it isn't where this match is weakest.
func (a acc) extend(kind edgeKind, n int) acc {
	if kind == kindSep {
		return a
	}
	w := kind.specificityWeight()
	switch {
	case w < a.worst:
		return acc{worst: w, worstChars: n}
	case w == a.worst:
		return acc{worst: w, worstChars: a.worstChars + n}
	default:
		return a
	}
}

// moreSpecific reports whether a represents a strictly more specific
// match than b: a weaker worst-case edge kind loses outright; a tie at
// the same kind is broken by whichever covered less ground with it.
func (a acc) moreSpecific(b acc) bool {
	if a.worst != b.worst {
		return a.worst > b.worst
	}
	return a.worstChars < b.worstChars
}

// collectMatches runs path as an NFA query against the trie, returning
// every terminal reached when the whole path has been consumed, each
// tagged with the specificity of the match that reached it.
//
// This can't stop at the first terminal a depth-first, most-specific-
// edge-first walk finds: such a walk can settle for a shallow match
// (e.g. "bar/**" against "bar/eggs/foo.py") via a node it reached
// through the most specific available edges, without ever considering
// a sibling branch — rooted in a less specific edge overall — whose
// match turns out to rely on its wildcard for less of the path (e.g.
// "**/bar/**/foo.py", whose double-star only has to absorb "eggs/").
// So every terminal reachable once the path is exhausted is collected,
// each carrying the acc of the specific match that reached it, and Get
// picks the most specific one afterward.
//
// The frontier is deduplicated by (node, position), keeping only the
// most specific acc seen for each state and re-expanding a state's
// descendants whenever a better acc reaches it: since acc.extend only
// ever holds a weight fixed or replaces it with a strictly worse one,
// a state's descendants can never reorder two accs that already
// differ, so the best acc reaching (node, position) also yields the
// best completion from there on, and a dominated arrival can be
// discarded without exploring it. This bounds the walk to
// O(nodes × len(path)) states even against adversarial patterns like
// "**/**/**".
func (t *trie[T]) collectMatches(path string) []candidate[T] {
	best := make(map[uint64]acc)
	terms := make(map[NodeID]candidate[T])

	var walk func(id NodeID, pos int, a acc)
	walk = func(id NodeID, pos int, a acc) {
		key := stateKey(id, pos)
		if prev, ok := best[key]; ok && !a.moreSpecific(prev) {
			return
		}
		best[key] = a

		n := &t.nodes[id]
		if pos == len(path) && n.hasTerm {
			if prev, ok := terms[id]; !ok || a.moreSpecific(prev.acc) {
				terms[id] = candidate[T]{value: n.value, acc: a, seq: n.seq}
			}
		}

		for _, e := range n.edges {
			switch e.kind {
			case kindSep:
				if pos < len(path) && path[pos] == '/' {
					walk(e.child, pos+1, a.extend(e.kind, 1))
				}
			case kindLit:
				if pos < len(path) && path[pos] == e.lit && path[pos] != '/' {
					walk(e.child, pos+1, a.extend(e.kind, 1))
				}
			case kindClass:
				if pos < len(path) && path[pos] != '/' && inClass(e.class, path[pos]) {
					walk(e.child, pos+1, a.extend(e.kind, 1))
				}
			case kindNegClass:
				if pos < len(path) && path[pos] != '/' && !inClass(e.class, path[pos]) {
					walk(e.child, pos+1, a.extend(e.kind, 1))
				}
			case kindAnyChar:
				if pos < len(path) && path[pos] != '/' {
					walk(e.child, pos+1, a.extend(e.kind, 1))
				}
			case kindStarSeg:
				end := pos
				for end < len(path) && path[end] != '/' {
					end++
				}
				for c := pos; c <= end; c++ {
					walk(e.child, c, a.extend(e.kind, c-pos))
				}
			case kindDoubleStar:
				for c := pos; c <= len(path); c++ {
					walk(e.child, c, a.extend(e.kind, c-pos))
				}
			case kindDoubleStarSep:
				// Zero whole segments: resume right here, without
				// requiring a literal '/' to be present in the path.
				walk(e.child, pos, a.extend(e.kind, 0))
				// One or more whole segments: resume just past every
				// '/' at or beyond pos.
				for i := pos; i < len(path); i++ {
					if path[i] == '/' {
						walk(e.child, i+1, a.extend(e.kind, i+1-pos))
					}
				}
			}
		}
	}
	walk(t.root(), 0, acc{worst: noWildcard})

	out := make([]candidate[T], 0, len(terms))
	for _, c := range terms {
		out = append(out, c)
	}
	return out
}

package globtrie

// edgeKind is the closed set of ways a trie edge can consume input.
// Matching dispatches on this tag rather than on an interface, since the
// set of edge shapes is fixed by glob syntax.
type edgeKind uint8

const (
	// kindLit matches one byte equal to a fixed literal, never '/'.
	kindLit edgeKind = iota
	// kindClass matches one byte that is a member of a fixed set, never '/'.
	kindClass
	// kindNegClass matches one byte that is absent from a fixed set and is not '/'.
	kindNegClass
	// kindAnyChar ('?') matches exactly one byte that is not '/'.
	kindAnyChar
	// kindSep matches exactly the '/' byte and marks a segment boundary.
	kindSep
	// kindStarSeg ('*') matches zero or more bytes, none of which is '/'.
	kindStarSeg
	// kindDoubleStar ('**' not fused with a following separator) matches
	// zero or more arbitrary bytes, including '/'.
	kindDoubleStar
	// kindDoubleStarSep is '**' immediately followed by '/' in the source
	// glob, fused into one edge at tokenization time so that it can also
	// match zero whole segments without requiring a literal '/' to be
	// present in the input. See token.go's fuseDoubleStarSep.
	kindDoubleStarSep
)

// specificityWeight ranks an edge kind from most specific (highest) to
// least specific (lowest), per the total order: literal > class (ties
// broken in favor of class over negated class) > any-char > star >
// double-star. Sep carries no specificity of its own; it only ever
// matches '/' and never competes with another kind at the same node.
//
// insertBySpecificity orders a node's outgoing edges by this weight so
// a walk always tries the most specific transition first, and match.go
// uses it again to rank competing matches by the least specific edge
// kind each one actually had to fall back on.
func (k edgeKind) specificityWeight() int {
	switch k {
	case kindLit:
		return 4
	case kindClass:
		return 3
	case kindNegClass:
		return 2
	case kindAnyChar:
		return 1
	case kindSep:
		return 0
	case kindStarSeg:
		return -1
	case kindDoubleStar, kindDoubleStarSep:
		return -2
	default:
		return 0
	}
}

// edgeKey identifies an outgoing edge of a node uniquely, so that
// augment can find-or-create the correct child instead of creating a
// duplicate edge for the same token shape.
type edgeKey struct {
	kind  edgeKind
	lit   byte
	class string // canonical sorted class body; only set for kindClass/kindNegClass
}

func tokenKey(tok token) edgeKey {
	switch tok.kind {
	case kindLit:
		return edgeKey{kind: kindLit, lit: tok.lit}
	case kindClass, kindNegClass:
		return edgeKey{kind: tok.kind, class: string(tok.class)}
	default:
		return edgeKey{kind: tok.kind}
	}
}

// inClass reports whether c is a member of the canonical (sorted,
// slash-free) class body set.
func inClass(set []byte, c byte) bool {
	for _, b := range set {
		if b == c {
			return true
		}
		if b > c {
			return false
		}
	}
	return false
}

package globtrie

import (
	"slices"
	"strings"
)

// token is one edge descriptor produced by tokenizing a glob or a path.
// It carries just enough payload to build an edgeKey and an edge: a
// literal byte for kindLit, a canonical class body for
// kindClass/kindNegClass, nothing extra for the rest.
type token struct {
	kind  edgeKind
	lit   byte
	class []byte
}

// tokenizeGlob converts a glob pattern into its edge-descriptor stream.
//
// A run of '*' characters collapses to a single token: a lone '*' is
// kindStarSeg (bounded to its own segment); a run of two or more is
// kindDoubleStar (crosses '/'), regardless of whether the run is fused
// to literal text on one side in the same segment — "baz**/foo.py"
// must cross segments to match "baz/spam/foo.py", so the run can't be
// treated as segment-local just because "baz" precedes it. A
// kindDoubleStar token immediately followed by a separator is then
// fused into kindDoubleStarSep by fuseDoubleStarSep.
func tokenizeGlob(glob string) ([]token, error) {
	toks := make([]token, 0, len(glob))
	n := len(glob)
	for i := 0; i < n; {
		c := glob[i]
		switch {
		case c == '/':
			toks = append(toks, token{kind: kindSep})
			i++
		case c == '?':
			toks = append(toks, token{kind: kindAnyChar})
			i++
		case c == '*':
			j := i
			for j < n && glob[j] == '*' {
				j++
			}
			if j-i >= 2 {
				toks = append(toks, token{kind: kindDoubleStar})
			} else {
				toks = append(toks, token{kind: kindStarSeg})
			}
			i = j
		case c == '[':
			tok, next, err := tokenizeClass(glob, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next
		default:
			toks = append(toks, token{kind: kindLit, lit: c})
			i++
		}
	}
	return fuseDoubleStarSep(toks), nil
}

// tokenizeClass parses a "[...]" or "[!...]" construct starting at
// glob[start] == '['. It returns the resulting token and the index just
// past the closing ']'. A ']' immediately after the opening bracket (or
// after a leading '!') is taken as a literal member of the class rather
// than the terminator, so "[]ab]" is a class containing ']', 'a', 'b'
// rather than an empty class followed by stray literals.
func tokenizeClass(glob string, start int) (token, int, error) {
	n := len(glob)
	i := start + 1
	if i >= n {
		return token{}, 0, &MalformedGlobError{Glob: glob, Offset: start, Reason: "unterminated character class"}
	}

	neg := false
	if glob[i] == '!' {
		neg = true
		i++
	}

	bodyStart := i
	if i < n && glob[i] == ']' {
		i++
	}
	for i < n && glob[i] != ']' {
		i++
	}
	if i >= n {
		return token{}, 0, &MalformedGlobError{Glob: glob, Offset: start, Reason: "unterminated character class"}
	}

	body := glob[bodyStart:i]
	if body == "" {
		return token{}, 0, &MalformedGlobError{Glob: glob, Offset: start, Reason: "empty character class"}
	}

	kind := kindClass
	if neg {
		kind = kindNegClass
	}
	return token{kind: kind, class: canonicalClass(body)}, i + 1, nil
}

// canonicalClass returns the sorted, deduplicated, slash-free byte set
// named by a class body, so that two classes with the same members but
// a different spelling ("[ab]" vs "[ba]") produce the same edgeKey.
func canonicalClass(body string) []byte {
	var seen [256]bool
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		b := body[i]
		if b == '/' {
			continue
		}
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	slices.Sort(out)
	return out
}

// fuseDoubleStarSep merges an adjacent (kindDoubleStar, kindSep) pair
// into a single kindDoubleStarSep token. See edge.go's kindDoubleStarSep
// doc comment for why this fusion matters at match time.
func fuseDoubleStarSep(toks []token) []token {
	out := make([]token, 0, len(toks))
	for i := 0; i < len(toks); i++ {
		if toks[i].kind == kindDoubleStar && i+1 < len(toks) && toks[i+1].kind == kindSep {
			out = append(out, token{kind: kindDoubleStarSep})
			i++
			continue
		}
		out = append(out, toks[i])
	}
	return out
}

// validGetQuery reports whether path is acceptable as a GlobTrie.Get
// query. Unlike a stored path (tokenizePath), a single trailing '/' is
// permitted: it denotes an empty final segment, so "bar/" can match
// "bar/*" by consuming zero characters in the final StarSeg/DoubleStar.
// A leading '/' or any interior "//" is still rejected.
func validGetQuery(path string) bool {
	if path == "" {
		return false
	}
	if path[0] == '/' {
		return false
	}
	return !strings.Contains(path, "//")
}

// tokenizePath converts a concrete path into its edge-descriptor
// stream: every byte is a literal except '/', which is a separator.
// Unlike tokenizeGlob there is no wildcard handling — a path has no
// metacharacters to interpret.
func tokenizePath(path string) ([]token, error) {
	if path == "" {
		return nil, &MalformedPathError{Path: path, Reason: "empty path"}
	}
	if path[0] == '/' || path[len(path)-1] == '/' || strings.Contains(path, "//") {
		return nil, &MalformedPathError{Path: path, Reason: "illegal empty path segment"}
	}

	toks := make([]token, 0, len(path))
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			toks = append(toks, token{kind: kindSep})
		} else {
			toks = append(toks, token{kind: kindLit, lit: path[i]})
		}
	}
	return toks, nil
}

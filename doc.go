// Package globtrie indexes glob patterns and filesystem-style paths in a
// shared character-level trie, and provides two dual lookups over it:
//
//   - GlobTrie[V] stores glob patterns, each carrying a value of type V,
//     and resolves a concrete path to the value of its most specific
//     matching glob.
//   - PathTrie stores concrete paths and, given a glob, enumerates every
//     stored path the glob matches.
//
// Both types share the same trie core (token.go, edge.go, node.go): a
// glob or a path is first tokenized into a stream of edge
// descriptors (literal character, character class, negated class,
// single-character wildcard, single-segment wildcard, cross-segment
// wildcard, segment separator), then augmented into the trie one token
// at a time. Matching walks the trie as an NFA, since a glob may have
// more than one way to consume a given path.
//
// # Specificity
//
// When several inserted globs match the same path, GlobTrie.Get returns
// the value of the most specific one: literal characters outrank
// character classes, which outrank "?", which outranks "*", which
// outranks "**". Ties are broken by insertion order.
//
// # Concurrency
//
// A trie is a single-writer, many-reader structure with no internal
// locking. Augment must not be called concurrently with Get,
// GetAllMatches, or another Augment; concurrent reads among themselves
// are safe.
//
// # Construction
//
//	g := globtrie.NewGlobTrie[string]()
//	g.Augment("**/*.go", "go-source")
//	v, ok := g.Get("internal/trie/node.go")
//
//	p := globtrie.NewPathTrie()
//	p.Augment("internal/trie/node.go")
//	matches, _ := p.GetAllMatches("**/*.go")
//	for path := range matches {
//	    fmt.Println(path)
//	}
package globtrie

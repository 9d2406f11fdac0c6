package globtrie

// GlobTrie maps glob patterns to values of type V, sharing storage
// across patterns with a common prefix. Get queries it with a
// concrete path and returns the value registered under the most
// specific matching glob.
//
// A zero GlobTrie is not ready to use; construct one with NewGlobTrie.
// Concurrency: many readers may call Get concurrently with each other,
// but Augment must not run concurrently with either Get or another
// Augment.
type GlobTrie[V any] struct {
	t   *trie[V]
	cfg config
}

// NewGlobTrie constructs an empty GlobTrie.
func NewGlobTrie[V any](opts ...Option) *GlobTrie[V] {
	return &GlobTrie[V]{
		t:   newTrie[V](),
		cfg: newConfig(opts),
	}
}

// Augment registers glob with value, returning true if glob was already
// present (its previous value is then replaced). glob is tokenized with "/"
// separating segments, "?" matching one non-separator character,
// "[...]"/"[!...]" matching or excluding a character class, a lone "*"
// matching within one segment, and a run of two or more "*" matching
// across segment boundaries including zero segments.
//
// Augment returns a *MalformedGlobError if glob contains an
// unterminated or empty character class.
func (g *GlobTrie[V]) Augment(glob string, value V) (existed bool, err error) {
	if g.cfg.foldCase {
		glob = foldASCII(glob)
	}
	toks, err := tokenizeGlob(glob)
	if err != nil {
		return false, err
	}
	_, existed = g.t.augment(toks, value)
	return existed, nil
}

// Get returns the value registered under the most specific glob
// matching path, and true if any glob matched. Specificity is
// determined per match, not per pattern: literal characters outrank
// character classes, which outrank "?", which outranks a single-segment
// "*", which outranks a cross-segment "**"; when two matching globs
// fall back on the same kind of wildcard, the one that needed less of
// the path to satisfy it wins. Ties are broken in favor of whichever
// glob was augmented first.
//
// Get reports no match (zero value, false) if path is empty, starts
// with "/", or contains "//". A single trailing "/" is accepted and
// denotes an empty final segment, so "bar/" can match "bar/*".
func (g *GlobTrie[V]) Get(path string) (value V, ok bool) {
	if g.cfg.foldCase {
		path = foldASCII(path)
	}
	if !validGetQuery(path) {
		var zero V
		return zero, false
	}

	candidates := g.t.collectMatches(path)
	if len(candidates) == 0 {
		var zero V
		return zero, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.acc.moreSpecific(best.acc) || (c.acc == best.acc && c.seq < best.seq) {
			best = c
		}
	}
	return best.value, true
}

package globtrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrieAugmentSharesCommonPrefix(t *testing.T) {
	tr := newTrie[string]()
	toksA, err := tokenizeGlob("foo/bar")
	require.NoError(t, err)
	toksB, err := tokenizeGlob("foo/baz")
	require.NoError(t, err)

	_, existed := tr.augment(toksA, "a")
	require.False(t, existed)
	_, existed = tr.augment(toksB, "b")
	require.False(t, existed)

	// Walk "foo/ba" by hand; both inserts should share every edge up to
	// the final diverging literal.
	id := tr.root()
	for _, tok := range toksA[:len(toksA)-1] {
		id = tr.findOrCreateEdge(id, tok)
	}
	// Re-walking the shared prefix from root with toksB up to the same
	// point must land on the very same node.
	id2 := tr.root()
	for _, tok := range toksB[:len(toksB)-1] {
		id2 = tr.findOrCreateEdge(id2, tok)
	}
	assert.Equal(t, id, id2)
}

func TestTrieAugmentReportsExisting(t *testing.T) {
	tr := newTrie[string]()
	toks, _ := tokenizeGlob("foo")
	old, existed := tr.augment(toks, "first")
	assert.False(t, existed)
	assert.Equal(t, "", old)

	old, existed = tr.augment(toks, "second")
	assert.True(t, existed)
	assert.Equal(t, "first", old)
}

func TestTrieEdgesSortedBySpecificity(t *testing.T) {
	tr := newTrie[string]()
	for _, g := range []string{"**", "*", "?", "[abc]", "x"} {
		toks, err := tokenizeGlob(g)
		require.NoError(t, err)
		tr.augment(toks, g)
	}
	edges := tr.nodes[tr.root()].edges
	require.Len(t, edges, 5)
	for i := 1; i < len(edges); i++ {
		assert.GreaterOrEqual(t, edges[i-1].kind.specificityWeight(), edges[i].kind.specificityWeight())
	}
}

func TestFindOrCreateEdgeIsIdempotent(t *testing.T) {
	tr := newTrie[string]()
	tok := token{kind: kindLit, lit: 'a'}
	id1 := tr.findOrCreateEdge(tr.root(), tok)
	id2 := tr.findOrCreateEdge(tr.root(), tok)
	assert.Equal(t, id1, id2)
	assert.Len(t, tr.nodes[tr.root()].edges, 1)
}

func TestStateKeyDistinguishesNodeAndPosition(t *testing.T) {
	a := stateKey(1, 2)
	b := stateKey(1, 3)
	c := stateKey(2, 2)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, stateKey(1, 2))
}

func TestReachableWithinSegmentStopsAtSeparator(t *testing.T) {
	tr := newTrie[string]()
	toks, _ := tokenizePath("ab/c")
	tr.augment(toks, "ab/c")

	reachable := tr.reachableWithinSegment(tr.root())
	// root, +a, +ab : three nodes reachable without crossing the '/'.
	assert.Len(t, reachable, 3)
}

func TestReachableWholeSegmentsCrossesExactlyOnSeparators(t *testing.T) {
	tr := newTrie[string]()
	toks, _ := tokenizePath("a/b/c")
	tr.augment(toks, "a/b/c")

	reachable := tr.reachableWholeSegments(tr.root())
	// zero segments (root), one segment (past "a/"), two segments (past "a/b/").
	assert.Len(t, reachable, 3)
}

func TestReachableSubtreeCoversEveryDescendant(t *testing.T) {
	tr := newTrie[string]()
	toks, _ := tokenizePath("a/b")
	tr.augment(toks, "a/b")

	reachable := tr.reachableSubtree(tr.root())
	assert.Len(t, reachable, len(tr.nodes))
}

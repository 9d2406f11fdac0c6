package globtrie

import (
	"strconv"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// segmentAlphabet excludes '/', '*', '?', '[', ']', '!' so the fuzzer
// only ever generates literal segments: these tests are about the
// trie's insertion/lookup plumbing holding up under arbitrary literal
// content, not about glob syntax itself.
var segmentAlphabet = fuzz.UnicodeRanges{
	{First: 0x30, Last: 0x39},
	{First: 0x41, Last: 0x5A},
	{First: 0x61, Last: 0x7A},
}

func TestFuzzGlobTrieLiteralRoundTrip(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 6).Funcs(segmentAlphabet.CustomStringFuzzFunc())

	g := NewGlobTrie[int]()
	paths := make(map[string]int)

	for i := 0; i < 2000; i++ {
		var a, b string
		f.Fuzz(&a)
		f.Fuzz(&b)
		if a == "" || b == "" {
			continue
		}
		path := a + "/" + b
		paths[path] = i
		_, err := g.Augment(path, i)
		require.NoError(t, err)
	}

	for path, want := range paths {
		got, ok := g.Get(path)
		require.True(t, ok, "expected a match for %q", path)
		require.Equal(t, want, got, "path %q", path)
	}
}

func TestFuzzGlobTrieNoPanics(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(2000, 4000)
	g := NewGlobTrie[struct{}]()

	globs := make(map[string]struct{})
	f.Fuzz(&globs)

	for glob := range globs {
		if glob == "" {
			continue
		}
		require.NotPanics(t, func() {
			_, _ = g.Augment(glob, struct{}{})
		}, "glob=%q", glob)
	}

	require.NotPanics(t, func() {
		for i := 0; i < 500; i++ {
			_, _ = g.Get("a/b/c/" + strconv.Itoa(i))
		}
	})
}

func TestFuzzPathTrieNoPanics(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(2000, 4000).Funcs(segmentAlphabet.CustomStringFuzzFunc())
	p := NewPathTrie()

	var segs []string
	f.Fuzz(&segs)

	for _, s := range segs {
		if s == "" {
			continue
		}
		require.NotPanics(t, func() {
			_, _ = p.Augment(s)
		}, "path=%q", s)
	}

	require.NotPanics(t, func() {
		for _, glob := range []string{"**", "*", "?", "[abc]*", "**/x"} {
			_, err := p.GetAllMatches(glob)
			require.NoError(t, err)
		}
	})
}

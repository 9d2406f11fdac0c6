package globtrie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedGlobErrorMessage(t *testing.T) {
	err := &MalformedGlobError{Glob: "foo[bar", Offset: 3, Reason: "unterminated character class"}
	assert.Contains(t, err.Error(), "foo[bar")
	assert.Contains(t, err.Error(), "unterminated character class")
	assert.True(t, errors.Is(err, ErrMalformedGlob))
}

func TestMalformedPathErrorMessage(t *testing.T) {
	err := &MalformedPathError{Path: "/foo", Reason: "illegal empty path segment"}
	assert.Contains(t, err.Error(), "/foo")
	assert.True(t, errors.Is(err, ErrMalformedPath))
}

func TestMalformedGlobErrorIsNotMalformedPathError(t *testing.T) {
	err := &MalformedGlobError{Glob: "x[", Offset: 1, Reason: "unterminated character class"}
	assert.False(t, errors.Is(err, ErrMalformedPath))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRay(t *testing.T) {
	r, err := parseRay("0.5, 0.5, 10, 0, 0, -2")
	require.NoError(t, err)
	assert.Equal(t, 10.0, r.Origin.Z)
	assert.Equal(t, -1.0, r.Dir.Z)

	_, err = parseRay("1,2,3")
	assert.ErrorContains(t, err, "want 6")
	_, err = parseRay("0,0,0,0,0,0")
	assert.ErrorContains(t, err, "zero direction")
	_, err = parseRay("0,0,0,a,0,1")
	assert.Error(t, err)
}

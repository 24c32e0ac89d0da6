package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTrace_BasicLifecycle(t *testing.T) {
	trace := strings.NewReader(`
# comment
a x 64
a y 32
r x 128
f y
f x
`)
	stats, err := runTrace(trace, true)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Allocs)
	assert.Equal(t, 2, stats.Frees)
	assert.Equal(t, 1, stats.Reallocs)
	assert.Equal(t, 5, stats.Checks)
}

func TestRunTrace_UnboundIDIsAnError(t *testing.T) {
	_, err := runTrace(strings.NewReader("f x\n"), false)
	assert.Error(t, err)
}

func TestRunTrace_UnknownOpIsAnError(t *testing.T) {
	_, err := runTrace(strings.NewReader("z x 1\n"), false)
	assert.Error(t, err)
}

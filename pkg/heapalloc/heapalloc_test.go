package heapalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsUsableAllocator(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	p, err := a.Alloc(64)
	require.NoError(t, err)
	assert.NotZero(t, p)
	require.NoError(t, a.Check())

	a.Free(p)
	require.NoError(t, a.Check())
}

func TestPackageLevelAllocFreeRoundTrip(t *testing.T) {
	p := Alloc(32)
	assert.NotZero(t, p)
	Free(p)

	a, err := Default()
	require.NoError(t, err)
	assert.NoError(t, a.Check())
}

func TestSerializedDelegates(t *testing.T) {
	a, err := New()
	require.NoError(t, err)
	s := NewSerialized(a)

	p, err := s.Alloc(16)
	require.NoError(t, err)
	assert.NotZero(t, p)
	assert.NoError(t, s.Check())
}

package arena

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceMemory_GrowthIsContiguousAndAppendOnly(t *testing.T) {
	m := NewSliceMemory(0)

	base1, err := m.RequestMore(16)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), base1)
	assert.Equal(t, uint32(16), m.CurrentHighAddress())

	base2, err := m.RequestMore(32)
	require.NoError(t, err)
	assert.Equal(t, uint32(16), base2)
	assert.Equal(t, uint32(48), m.CurrentHighAddress())

	view := m.View()
	assert.Len(t, view, 48)

	stats := m.Stats()
	assert.Equal(t, uint64(2), stats.Grows)
	assert.Equal(t, uint64(48), stats.BytesGrew)
}

func TestSliceMemory_ZeroRequestIsNoop(t *testing.T) {
	m := NewSliceMemory(0)
	_, _ = m.RequestMore(8)
	before := m.CurrentHighAddress()

	base, err := m.RequestMore(0)
	require.NoError(t, err)
	assert.Equal(t, before, base)
	assert.Equal(t, before, m.CurrentHighAddress())
}

func TestSliceMemory_ViewReflectsWrites(t *testing.T) {
	m := NewSliceMemory(0)
	_, _ = m.RequestMore(8)

	view := m.View()
	view[0] = 0xAB
	assert.Equal(t, byte(0xAB), m.View()[0])
}

func TestWazeroMemory_GrowsAcrossPageBoundary(t *testing.T) {
	ctx := context.Background()
	m, err := NewWazeroMemory(ctx)
	require.NoError(t, err)
	defer func() { _ = m.Close(ctx) }()

	base, err := m.RequestMore(wasmPageSize - 8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), base)
	assert.Equal(t, uint32(wasmPageSize-8), m.CurrentHighAddress())

	// Crosses into a second page; logical high address still grows by
	// exactly the requested byte count even though the backing memory grew
	// by whole pages.
	base2, err := m.RequestMore(16)
	require.NoError(t, err)
	assert.Equal(t, uint32(wasmPageSize-8), base2)
	assert.Equal(t, uint32(wasmPageSize+8), m.CurrentHighAddress())

	view := m.View()
	assert.Len(t, view, int(wasmPageSize+8))
}

func TestWazeroMemory_ViewReflectsWrites(t *testing.T) {
	ctx := context.Background()
	m, err := NewWazeroMemory(ctx)
	require.NoError(t, err)
	defer func() { _ = m.Close(ctx) }()

	_, err = m.RequestMore(64)
	require.NoError(t, err)

	view := m.View()
	view[10] = 0x42
	assert.Equal(t, byte(0x42), m.View()[10])
}

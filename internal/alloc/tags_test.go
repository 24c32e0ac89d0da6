package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustedSize(t *testing.T) {
	cases := []struct {
		n    uint32
		want uint32
	}{
		{0, minBlockSize},
		{1, minBlockSize},
		{7, minBlockSize},
		{8, minBlockSize},
		{9, 24},
		{16, 24},
		{17, 32},
		{24, 32},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, adjustedSize(c.n), "adjustedSize(%d)", c.n)
	}
}

func TestAlignUp(t *testing.T) {
	assert.Equal(t, uint32(0), alignUp(0))
	assert.Equal(t, uint32(8), alignUp(1))
	assert.Equal(t, uint32(8), alignUp(8))
	assert.Equal(t, uint32(16), alignUp(9))
}

func TestPackWordRoundTrip(t *testing.T) {
	w := packWord(128, true)
	assert.Equal(t, uint32(128), sizeField(w))
	assert.True(t, allocField(w))

	w = packWord(64, false)
	assert.Equal(t, uint32(64), sizeField(w))
	assert.False(t, allocField(w))
}

func TestReadWriteWord(t *testing.T) {
	mem := make([]byte, 16)
	writeWord(mem, 4, 0xdeadbeef)
	assert.Equal(t, uint32(0xdeadbeef), readWord(mem, 4))
}

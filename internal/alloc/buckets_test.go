package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketIndexSmallClasses(t *testing.T) {
	assert.Equal(t, 1, bucketIndex(16))
	assert.Equal(t, 2, bucketIndex(24))
	assert.Equal(t, 62, bucketIndex(504))
}

func TestBucketIndexLargeClasses(t *testing.T) {
	assert.Equal(t, 70, bucketIndex(512))
	assert.Equal(t, 71, bucketIndex(1024))
}

func TestBucketIndexNeverOutOfRange(t *testing.T) {
	sizes := []uint32{16, 504, 512, 1 << 20, 1 << 31}
	for _, s := range sizes {
		idx := bucketIndex(s)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, numBuckets)
	}
}

package fiemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorGrowthPreservesOrder(t *testing.T) {
	// Uneven chunk sizes force several growths of the backing storage.
	chunkSizes := []int{1, 1024, 3}

	var acc accumulator
	var want []Extent
	next := uint64(0)

	for _, size := range chunkSizes {
		chunk := contiguousChunk(next, size, 4096, false)
		want = append(want, chunk...)
		next += uint64(size) * 4096

		acc.append(chunk)
		assert.Equal(t, len(want), acc.count)
	}

	got := acc.finalize()
	require.Len(t, got, 1028)
	assert.Equal(t, want, got, "growth must not drop or reorder accumulated extents")
}

func TestAccumulatorAppendCopiesChunk(t *testing.T) {
	chunk := contiguousChunk(0, 4, 4096, false)

	var acc accumulator
	acc.append(chunk)

	// Mutating the transient chunk buffer after the append, as the query
	// loop does when it reuses the buffer, must not affect accumulated data.
	original := chunk[0]
	chunk[0] = Extent{Logical: 0xdead, Physical: 0xbeef, Length: 1, Flags: 0xffff}

	got := acc.finalize()
	require.Len(t, got, 4)
	assert.Equal(t, original, got[0])
}

func TestAccumulatorLast(t *testing.T) {
	var acc accumulator
	acc.append(contiguousChunk(0, 2, 4096, false))
	acc.append(contiguousChunk(2*4096, 3, 4096, true))

	last := acc.last()
	assert.Equal(t, uint64(4*4096), last.Logical)
	assert.True(t, last.IsLast())
}

func TestAccumulatorFinalizeTransfersOwnership(t *testing.T) {
	var acc accumulator
	acc.append(contiguousChunk(0, 8, 4096, false))

	got := acc.finalize()
	assert.Len(t, got, 8)
	assert.Equal(t, 0, acc.count)
	assert.Nil(t, acc.extents)
}

func TestAccumulatorRelease(t *testing.T) {
	var acc accumulator
	acc.append(contiguousChunk(0, 100, 4096, false))
	require.Equal(t, 100, acc.count)

	acc.release()
	assert.Equal(t, 0, acc.count)
	assert.Nil(t, acc.extents)
}

func TestAccumulatorEmptyFinalize(t *testing.T) {
	var acc accumulator
	got := acc.finalize()
	assert.Empty(t, got)
}

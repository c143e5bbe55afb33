package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRangeDistinctAndBounded(t *testing.T) {
	min, max := uint64(1<<40), uint64(1<<40+1_000_000)
	got := SampleRange(min, max, 500, 7)
	require.Len(t, got, 500)
	for i, v := range got {
		assert.GreaterOrEqual(t, v, min)
		assert.Less(t, v, max)
		if i > 0 {
			assert.Less(t, got[i-1], v, "samples must be sorted and distinct")
		}
	}
	assert.Equal(t, got, SampleRange(min, max, 500, 7), "same seed must reproduce the sample")
}

func TestSampleRangeSmallRange(t *testing.T) {
	assert.Equal(t, []uint64{3, 4, 5}, SampleRange(3, 6, 10, 1))
	assert.Nil(t, SampleRange(6, 6, 10, 1))
	assert.Nil(t, SampleRange(0, 10, 0, 1))
}

func TestSampleRangeFullDomain(t *testing.T) {
	got := SampleRange(0, ^uint64(0), 64, 99)
	assert.Len(t, got, 64)
}

func TestShuffledIsPermutation(t *testing.T) {
	got := Shuffled(10, 110, 3)
	require.Len(t, got, 100)
	seen := make(map[uint64]bool)
	for _, v := range got {
		assert.False(t, seen[v])
		seen[v] = true
		assert.True(t, v >= 10 && v < 110)
	}
	assert.Nil(t, Shuffled(5, 5, 3))
}

func TestProgressLogger(t *testing.T) {
	var buf bytes.Buffer
	pl := NewProgressLogger(&buf, 100, "walk: ", true)
	for i := 0; i < 100; i++ {
		pl.Add(1)
	}
	pl.Finalize()

	out := buf.String()
	assert.Contains(t, out, "walk: 5%\n")
	assert.Contains(t, out, "walk: 50%\n")
	assert.Contains(t, out, "walk: 100%\n")
	assert.Contains(t, out, "walk: done in ")
	assert.Equal(t, 20, strings.Count(out, "%\n"), "one line per 5 percent step")
}

func TestProgressLoggerDisabled(t *testing.T) {
	var buf bytes.Buffer
	pl := NewProgressLogger(&buf, 100, "x", false)
	pl.Add(100)
	pl.Finalize()
	assert.Empty(t, buf.String())

	empty := NewProgressLogger(&buf, 0, "x", true)
	empty.Add(1)
	empty.Finalize()
	assert.Empty(t, buf.String())
}

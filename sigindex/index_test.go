package sigindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vanaluk/anagram-chain/signature"
	"github.com/vanaluk/anagram-chain/wordstore"
)

func buildFrom(t *testing.T, words []string, minBuckets, maxIDsPerSig int) (*Index, wordstore.Store) {
	t.Helper()
	s := wordstore.NewHeapStore(len(words), 256)
	for _, w := range words {
		_, err := s.Add([]byte(w))
		require.NoError(t, err)
	}
	return Build(s, minBuckets, maxIDsPerSig), s
}

func TestFindReturnsAllIDsForSharedSignature(t *testing.T) {
	idx, _ := buildFrom(t, []string{"abc", "cab", "bac", "abcd"}, 1024, 0)

	ids, ok := idx.Find(signature.Compute([]byte("abc")))
	require.True(t, ok)
	assert.ElementsMatch(t, []int{0, 1, 2}, ids)

	ids, ok = idx.Find(signature.Compute([]byte("abcd")))
	require.True(t, ok)
	assert.Equal(t, []int{3}, ids)
}

func TestFindAbsentSignature(t *testing.T) {
	idx, _ := buildFrom(t, []string{"abc"}, 1024, 0)
	_, ok := idx.Find(signature.Compute([]byte("xyz")))
	assert.False(t, ok)
}

func TestMaxIDsPerSigCapsEntrySilently(t *testing.T) {
	idx, _ := buildFrom(t, []string{"abc", "cab", "bac", "cba"}, 1024, 2)
	ids, ok := idx.Find(signature.Compute([]byte("abc")))
	require.True(t, ok)
	assert.Len(t, ids, 2)
}

func TestBuildOverEmptyStore(t *testing.T) {
	s := wordstore.NewHeapStore(0, 256)
	idx := Build(s, 1024, 0)
	_, ok := idx.Find(signature.Compute([]byte("abc")))
	assert.False(t, ok)
}

func TestBucketCountAtLeastMinimum(t *testing.T) {
	idx, _ := buildFrom(t, []string{"a"}, 1024, 0)
	assert.GreaterOrEqual(t, len(idx.buckets), 1024)
}

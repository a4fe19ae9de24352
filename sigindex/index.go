// Package sigindex implements the signature-index component: a mapping
// from signature bytes to the list of word-store ids sharing that
// signature, keyed by an FNV-1a hash table with chained buckets.
package sigindex

import (
	"errors"

	"github.com/vanaluk/anagram-chain/wordstore"
)

// FNV-1a 64-bit constants (matching hash/fnv's unexported offset64/
// prime64). Computed inline rather than via hash/fnv.New64a() because
// that returns a heap-allocated hash.Hash64 — spec §4.C requires Find
// (and therefore the hash computation it performs) to never allocate.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

func fnv1a64(data []byte) uint64 {
	h := fnvOffset64
	for _, b := range data {
		h ^= uint64(b)
		h *= fnvPrime64
	}
	return h
}

// ErrBuildFailed names an index-build failure. Build does not return it:
// Build has no error result, and an allocation failure while building
// panics in Go's allocator rather than being reported as an error.
var ErrBuildFailed = errors.New("sigindex: build failed")

// minHostBuckets is the minimum bucket-array size on the host regime,
// per spec §4.C ("≥ a minimum such as 1024 on the host regime").
const minHostBuckets = 1024

// entry holds one signature's bucket-chain node. Signature bytes are
// borrowed from the word store, never copied — the store must outlive
// the index.
type entry struct {
	sig []byte
	ids []int
}

// Index is the closed-addressing hash table over signatures. A lookup
// never allocates.
type Index struct {
	buckets      [][]entry
	maxIDsPerSig int // 0 means unbounded (heap regime)
}

// Build constructs an index over every currently live id in store. The
// bucket array size is max(store.Count(), minBuckets), rounded to the
// next power of two so the modulo reduces to a mask. maxIDsPerSig caps
// each entry's id list (0 = unbounded); exceeding it silently drops
// further ids for that entry, per spec §4.C.
func Build(store wordstore.Store, minBuckets, maxIDsPerSig int) *Index {
	if minBuckets <= 0 {
		minBuckets = minHostBuckets
	}
	n := store.Count()
	bucketCount := nextPow2(max(n, minBuckets))
	if bucketCount == 0 {
		bucketCount = 1
	}

	idx := &Index{
		buckets:      make([][]entry, bucketCount),
		maxIDsPerSig: maxIDsPerSig,
	}

	for id := 0; id < n; id++ {
		idx.insert(store.Signature(id), id)
	}
	return idx
}

func (idx *Index) insert(sig []byte, id int) {
	h := idx.bucketFor(sig)
	bucket := idx.buckets[h]
	for i := range bucket {
		if bytesEqual(bucket[i].sig, sig) {
			if idx.maxIDsPerSig > 0 && len(bucket[i].ids) >= idx.maxIDsPerSig {
				return // cap reached: silent drop, per spec §4.C/§7
			}
			bucket[i].ids = append(bucket[i].ids, id)
			return
		}
	}
	idx.buckets[h] = append(bucket, entry{sig: sig, ids: []int{id}})
}

// Find returns the ids sharing signature, or ok=false if no entry exists
// for it. The call does not allocate.
func (idx *Index) Find(sig []byte) (ids []int, ok bool) {
	bucket := idx.buckets[idx.bucketFor(sig)]
	for i := range bucket {
		if bytesEqual(bucket[i].sig, sig) {
			return bucket[i].ids, true
		}
	}
	return nil, false
}

func (idx *Index) bucketFor(sig []byte) uint64 {
	return fnv1a64(sig) & uint64(len(idx.buckets)-1)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Package chain implements the chain enumerator (component D) and the
// longest-only accumulator (component E) from spec §4.D/§4.E.
package chain

import (
	"github.com/vanaluk/anagram-chain/config"
	"github.com/vanaluk/anagram-chain/sigindex"
	"github.com/vanaluk/anagram-chain/signature"
	"github.com/vanaluk/anagram-chain/wordstore"
)

// FindLongest resolves start to its id in store and runs the depth-first
// enumeration described in spec §4.D, seeded by that id. If start is
// absent from store, an empty Result is returned — this is a normal
// outcome, not an error, per spec §7.
func FindLongest(idx *sigindex.Index, store wordstore.Store, start []byte, cfg config.Profile) Result {
	startID, ok := store.FindID(start)
	if !ok {
		return Result{}
	}

	e := &enumerator{
		idx:      idx,
		store:    store,
		acc:      newAccumulator(cfg.MaxChains),
		maxDepth: cfg.MaxChainDepth,
		path:     make([]int, 1, cfg.MaxChainDepth),
	}
	e.path[0] = startID
	e.step(1)
	return e.acc.snapshot()
}

// enumerator holds the transient per-search scratch: the shared path
// buffer the recursive step mutates in place. Its extent never exceeds
// maxDepth, per spec §3.
type enumerator struct {
	idx      *sigindex.Index
	store    wordstore.Store
	acc      *accumulator
	maxDepth int
	path     []int
}

// step is the recursive DFS step at depth d (1-based, matching chain
// length so far) on the id held in path[d-1]. Because signatures
// strictly grow in length with depth, no id can reappear within one DFS
// stack — cycles are structurally impossible and no visited set is
// required.
func (e *enumerator) step(depth int) {
	if depth >= e.maxDepth {
		// Recursion bound exhaustion is a silent leaf cut: emit the
		// current chain as-is rather than recursing further.
		e.acc.emit(e.path[:depth])
		return
	}

	s := e.store.Signature(e.path[depth-1])
	foundAny := false

	for c := byte(signature.MinByte); c <= signature.MaxByte; c++ {
		candidate := signature.InsertSorted(s, c)
		ids, ok := e.idx.Find(candidate)
		if !ok {
			continue
		}
		for _, j := range ids {
			foundAny = true
			if depth < len(e.path) {
				e.path[depth] = j
			} else {
				e.path = append(e.path, j)
			}
			e.step(depth + 1)
		}
	}

	if !foundAny {
		e.acc.emit(e.path[:depth])
	}
}

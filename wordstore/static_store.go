package wordstore

import "github.com/vanaluk/anagram-chain/signature"

// StaticStore is the static-pool memory regime: compile-time-sized
// backing arrays for word bytes and signature bytes, shaped
// (MaxWords × MaxWordLen), with a monotonically increasing extent
// counter walking the backing array — the same arena-walk idiom as
// itgcl-ahocorasick's trie/extent pool. The pools are allocated once by
// NewStaticStore and never grow; Add still allocates one temporary
// signature slice per call (via signature.Compute) before copying it into
// the pool.
type StaticStore struct {
	maxWords   int
	maxWordLen int

	wordsBacking []byte
	wordLens     []int

	sigsBacking []byte
	sigLens     []int

	extent int // number of ids successfully added
}

// NewStaticStore allocates the fixed-size arenas up front; maxWords and
// maxWordLen are the compile-time bounds for this deployment (embedded:
// MAX_WORDS × 32; host: a generous bound × 256).
func NewStaticStore(maxWords, maxWordLen int) *StaticStore {
	return &StaticStore{
		maxWords:     maxWords,
		maxWordLen:   maxWordLen,
		wordsBacking: make([]byte, maxWords*maxWordLen),
		wordLens:     make([]int, maxWords),
		sigsBacking:  make([]byte, maxWords*maxWordLen),
		sigLens:      make([]int, maxWords),
	}
}

func (s *StaticStore) MaxWordLength() int { return s.maxWordLen }

// Add validates word, then writes it and its signature into the next free
// slot. If the pool is full the store is left unchanged (no partial
// insert) and ErrCapacityExceeded is returned.
func (s *StaticStore) Add(word []byte) (int, error) {
	if err := validate(word, s.maxWordLen); err != nil {
		return 0, err
	}
	if s.extent >= s.maxWords {
		return 0, ErrCapacityExceeded
	}
	sig := signature.Compute(word)

	id := s.extent
	base := id * s.maxWordLen
	copy(s.wordsBacking[base:base+len(word)], word)
	s.wordLens[id] = len(word)
	copy(s.sigsBacking[base:base+len(sig)], sig)
	s.sigLens[id] = len(sig)

	s.extent++
	return id, nil
}

// FindID returns the lowest id whose bytes equal word via a linear scan.
func (s *StaticStore) FindID(word []byte) (int, bool) {
	for id := 0; id < s.extent; id++ {
		if bytesEqual(s.wordAt(id), word) {
			return id, true
		}
	}
	return 0, false
}

func (s *StaticStore) Word(id int) []byte      { return s.wordAt(id) }
func (s *StaticStore) Signature(id int) []byte { return s.sigAt(id) }
func (s *StaticStore) Count() int              { return s.extent }

func (s *StaticStore) wordAt(id int) []byte {
	base := id * s.maxWordLen
	return s.wordsBacking[base : base+s.wordLens[id]]
}

func (s *StaticStore) sigAt(id int) []byte {
	base := id * s.maxWordLen
	return s.sigsBacking[base : base+s.sigLens[id]]
}

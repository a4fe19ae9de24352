package wordstore

import "github.com/vanaluk/anagram-chain/signature"

// averageWordLenHint sizes the initial arena allocation; the arenas still
// grow geometrically past this guess via append.
const averageWordLenHint = 8

type span struct {
	offset, length int
}

// HeapStore is the heap-pool memory regime: two byte arenas (words,
// signatures) that grow geometrically, with id tables holding offsets
// into the arenas rather than pointers, so a reallocation never needs to
// rebase a stored id. Adding N words results in O(1) amortized arena
// reallocations, since Go's append already grows slices geometrically.
type HeapStore struct {
	maxWordLen int

	wordsArena []byte
	sigArena   []byte

	words []span
	sigs  []span
}

// NewHeapStore returns an empty heap-pool store. capacityHint sizes the
// pre-allocated arenas and id tables; it is advisory only — Add never
// fails because the hint was exceeded.
func NewHeapStore(capacityHint, maxWordLen int) *HeapStore {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &HeapStore{
		maxWordLen: maxWordLen,
		wordsArena: make([]byte, 0, capacityHint*averageWordLenHint),
		sigArena:   make([]byte, 0, capacityHint*averageWordLenHint),
		words:      make([]span, 0, capacityHint),
		sigs:       make([]span, 0, capacityHint),
	}
}

func (s *HeapStore) MaxWordLength() int { return s.maxWordLen }

// Add validates word, appends its bytes and signature to the arenas, and
// returns the new id. Duplicate words are accepted and receive distinct
// ids — idempotence is not a contract of Add.
func (s *HeapStore) Add(word []byte) (int, error) {
	if err := validate(word, s.maxWordLen); err != nil {
		return 0, err
	}
	sig := signature.Compute(word)

	wOff := len(s.wordsArena)
	s.wordsArena = append(s.wordsArena, word...)
	s.words = append(s.words, span{offset: wOff, length: len(word)})

	sOff := len(s.sigArena)
	s.sigArena = append(s.sigArena, sig...)
	s.sigs = append(s.sigs, span{offset: sOff, length: len(sig)})

	return len(s.words) - 1, nil
}

// FindID returns the lowest id whose bytes equal word via a linear scan.
func (s *HeapStore) FindID(word []byte) (int, bool) {
	for id, sp := range s.words {
		if bytesEqual(s.wordsArena[sp.offset:sp.offset+sp.length], word) {
			return id, true
		}
	}
	return 0, false
}

func (s *HeapStore) Word(id int) []byte {
	sp := s.words[id]
	return s.wordsArena[sp.offset : sp.offset+sp.length]
}

func (s *HeapStore) Signature(id int) []byte {
	sp := s.sigs[id]
	return s.sigArena[sp.offset : sp.offset+sp.length]
}

func (s *HeapStore) Count() int { return len(s.words) }

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

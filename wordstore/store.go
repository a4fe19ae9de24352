// Package wordstore owns the canonical text of each accepted word plus its
// signature, and assigns dense integer ids. It provides two memory
// regimes — a growable heap-pool store and a fixed-capacity static-pool
// store — behind the same Store contract, per spec §4.F.
package wordstore

import (
	"errors"

	"github.com/vanaluk/anagram-chain/signature"
)

// ErrCapacityExceeded is returned by StaticStore.Add when the static
// regime's pool is full. HeapStore.Add never returns it: a failure to grow
// the heap arenas is not reported as an error.
var ErrCapacityExceeded = errors.New("wordstore: capacity exceeded")

// Store is the contract both memory regimes satisfy. add/find_id/word/
// signature/count from spec §4.B.
type Store interface {
	// Add validates word, then appends it and its signature. It returns
	// the assigned id, or an error if the word fails validation or the
	// static regime is full. The heap regime does not report a failure to
	// grow.
	Add(word []byte) (id int, err error)

	// FindID returns the lowest id whose bytes equal word, or ok=false.
	FindID(word []byte) (id int, ok bool)

	// Word returns the original bytes accepted for id.
	Word(id int) []byte

	// Signature returns the canonical signature bytes for id.
	Signature(id int) []byte

	// Count returns the current number of live ids.
	Count() int

	// MaxWordLength is the configured validation bound for Add.
	MaxWordLength() int
}

var _ Store = (*HeapStore)(nil)
var _ Store = (*StaticStore)(nil)

func validate(word []byte, maxLen int) error {
	return signature.Validate(word, maxLen)
}

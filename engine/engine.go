// Package engine wires the word store, signature index, enumerator and
// accumulator into the single caller-facing surface described in spec
// §6. It mirrors the teacher's SearchEngine: a thin struct exposing a
// small public surface over heavier internals
// (wordstore.Store/sigindex.Index), matching the state machine in spec
// §4.F: [idle] -> create -> [loading] -> build -> [ready] -> find_longest
// -> [ready].
package engine

import (
	"errors"

	"github.com/vanaluk/anagram-chain/chain"
	"github.com/vanaluk/anagram-chain/config"
	"github.com/vanaluk/anagram-chain/sigindex"
	"github.com/vanaluk/anagram-chain/wordstore"
)

// ErrAlreadyBuilt is returned by Load when called after Build: once build
// runs, the store is frozen for the lifetime of the index — transitions
// from [ready] back to [loading] are disallowed in one session, per spec
// §4.F.
var ErrAlreadyBuilt = errors.New("engine: store is frozen after Build")

// Engine owns one store and, once built, one index — together they form
// one session's worth of state. It is not safe for concurrent use: spec
// §5 states one search owns the engine at a time.
type Engine struct {
	cfg   config.Profile
	store wordstore.Store
	index *sigindex.Index
	built bool
}

// New selects the store's memory regime from cfg.Regime — the build-time
// selector named in spec §4.F/§9 — and returns an Engine in the [loading]
// state.
func New(cfg config.Profile) *Engine {
	var store wordstore.Store
	switch cfg.Regime {
	case config.RegimeStatic:
		store = wordstore.NewStaticStore(cfg.MaxWords, cfg.MaxWordLength)
	default:
		store = wordstore.NewHeapStore(cfg.MaxWords, cfg.MaxWordLength)
	}
	return &Engine{cfg: cfg, store: store}
}

// Load validates and appends word to the store, returning its id. It is
// only valid in the [loading] state, i.e. before Build runs.
func (e *Engine) Load(word []byte) (int, error) {
	if e.built {
		return 0, ErrAlreadyBuilt
	}
	return e.store.Add(word)
}

// Count returns the number of words successfully loaded so far.
func (e *Engine) Count() int { return e.store.Count() }

// Build constructs the signature index over every word loaded so far and
// transitions the engine to [ready]. Calling Load afterward fails with
// ErrAlreadyBuilt.
func (e *Engine) Build() {
	e.index = sigindex.Build(e.store, e.cfg.HashBuckets, e.cfg.MaxIDsPerSig)
	e.built = true
}

// FindLongest runs the chain enumeration seeded at start, per spec §4.D.
// It must only be called after Build; calling it before Build panics,
// since that represents a programming error rather than a normal
// outcome (spec §7 reserves "returns empty result-set" for a start word
// that is merely absent from an already-built index).
func (e *Engine) FindLongest(start []byte) chain.Result {
	if !e.built {
		panic("engine: FindLongest called before Build")
	}
	return chain.FindLongest(e.index, e.store, start, e.cfg)
}

// Store exposes the underlying word store for callers that need to
// render words by id (e.g. the host driver's output formatter).
func (e *Engine) Store() wordstore.Store { return e.store }

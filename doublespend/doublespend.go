// Package doublespend is a small, in-memory stand-in for the
// already-seen-coins set that Brands' scheme assumes a receiver or
// issuer keeps. The core package deliberately has no notion of
// storage; this package is the minimal caller-side collaborator that
// exercises core.SpentCoin.RevealIdentity against a second sighting of
// the same coin.
package doublespend

import (
	"errors"
	"sync"

	"brandscash/core"
)

// ErrExistingCoin is returned by Set.Observe when the coin's first
// component (C1) has already been recorded: a double-spend. The stored
// spend transcript is not compared with the new one, so observing the
// same SpentCoin a second time also reports this error.
var ErrExistingCoin = errors.New("doublespend: coin already spent")

// Set records one SpentCoin per coin first-component (C1), keyed by
// its decimal string. It is safe for concurrent use.
type Set struct {
	mu   sync.Mutex
	seen map[string]core.SpentCoin
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seen: make(map[string]core.SpentCoin)}
}

// Observe records sc. If a SpentCoin whose Coin has the same first
// component C1 was already observed, Observe returns the prior SpentCoin and ErrExistingCoin,
// and leaves the stored entry untouched. The caller is expected to
// pass both SpentCoins to core.SpentCoin.RevealIdentity.
func (s *Set) Observe(sc core.SpentCoin) (core.SpentCoin, error) {
	key := sc.Coin.C1.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	prior, exists := s.seen[key]
	if exists {
		return prior, ErrExistingCoin
	}
	s.seen[key] = sc
	return core.SpentCoin{}, nil
}

// ExtractIdentity is a convenience wrapper: it calls Observe, and on a
// detected double-spend immediately runs RevealIdentity against the
// prior sighting.
func ExtractIdentity(s *Set, sc core.SpentCoin, params core.Params) (*core.Identity, error) {
	prior, err := s.Observe(sc)
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, ErrExistingCoin) {
		return nil, err
	}
	return sc.RevealIdentity(prior, params)
}

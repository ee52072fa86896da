// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "github.com/1pcpool/cardano-wallet/internal/assets"

// InputID opaquely identifies a UTxO entry. Concrete wallets use a
// transaction hash plus output index encoded as a string; this package
// never interprets the value.
type InputID string

// Filter selects which entries of a UTxOIndex are eligible for random
// sampling.
type Filter int

const (
	// Any matches every entry.
	Any Filter = iota

	// WithAdaOnly matches entries whose bundle carries no native assets.
	WithAdaOnly

	// WithAsset matches entries whose bundle's token map contains the
	// asset named by SelectRandom's asset argument.
	WithAsset
)

// UTxOIndex is a set of (InputID -> TokenBundle) entries with auxiliary
// indices that make random, filtered sampling O(1)/O(log n) instead of a
// linear scan: an ada-only set and a per-asset set, both kept in sync on
// insert/remove. Each aux set is paired with an insertion-ordered slice so
// that sampling over it is reproducible given the same Source: Go map
// iteration order is not stable, so ranging a map directly would make two
// runs with the same seed diverge.
type UTxOIndex struct {
	entries map[InputID]assets.TokenBundle

	// adaOnly is the insertion-ordered list of ada-only entries.
	adaOnly []InputID

	// byAsset maps an asset to the insertion-ordered list of entries
	// whose bundle carries it.
	byAsset map[assets.AssetID][]InputID

	// order is the insertion-ordered list of every entry, backing the
	// Any filter.
	order []InputID
}

// NewUTxOIndex builds a UTxOIndex from a snapshot. Entries are inserted in
// the iteration order of the provided slice, not the map, so callers that
// need deterministic categorisation
// should pass entries pre-sorted into their natural UTxO order.
func NewUTxOIndex(entries []UTxOEntry) *UTxOIndex {
	ix := &UTxOIndex{
		entries: make(map[InputID]assets.TokenBundle, len(entries)),
		byAsset: make(map[assets.AssetID][]InputID),
	}
	for _, e := range entries {
		ix.Insert(e.ID, e.Bundle)
	}
	return ix
}

// UTxOEntry is a single (InputID, TokenBundle) pair, used when building or
// draining a UTxOIndex in bulk.
type UTxOEntry struct {
	ID     InputID
	Bundle assets.TokenBundle
}

// Insert adds or overwrites an entry.
func (ix *UTxOIndex) Insert(id InputID, bundle assets.TokenBundle) {
	if _, exists := ix.entries[id]; exists {
		ix.Remove(id)
	}

	ix.entries[id] = bundle
	ix.order = append(ix.order, id)

	if bundle.Tokens.IsEmpty() {
		ix.adaOnly = append(ix.adaOnly, id)
	}
	for _, a := range bundle.GetAssets() {
		ix.byAsset[a] = append(ix.byAsset[a], id)
	}
}

// Remove deletes an entry, if present.
func (ix *UTxOIndex) Remove(id InputID) {
	bundle, ok := ix.entries[id]
	if !ok {
		return
	}
	delete(ix.entries, id)
	ix.order = removeID(ix.order, id)

	if bundle.Tokens.IsEmpty() {
		ix.adaOnly = removeID(ix.adaOnly, id)
	}
	for _, a := range bundle.GetAssets() {
		list := removeID(ix.byAsset[a], id)
		if len(list) == 0 {
			delete(ix.byAsset, a)
		} else {
			ix.byAsset[a] = list
		}
	}
}

func removeID(list []InputID, id InputID) []InputID {
	for i, v := range list {
		if v == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// Size returns the number of entries in the index.
func (ix *UTxOIndex) Size() int {
	return len(ix.entries)
}

// Get returns the bundle for id, if present.
func (ix *UTxOIndex) Get(id InputID) (assets.TokenBundle, bool) {
	b, ok := ix.entries[id]
	return b, ok
}

// Balance returns the aggregated sum of every bundle in the index.
func (ix *UTxOIndex) Balance() assets.TokenBundle {
	var total assets.TokenBundle
	for _, b := range ix.entries {
		total = total.Add(b)
	}
	return total
}

// Entries returns every (InputID, TokenBundle) pair in insertion order.
func (ix *UTxOIndex) Entries() []UTxOEntry {
	out := make([]UTxOEntry, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, UTxOEntry{ID: id, Bundle: ix.entries[id]})
	}
	return out
}

// matching returns the insertion-ordered candidate list for a filter.
func (ix *UTxOIndex) matching(filter Filter, asset assets.AssetID) []InputID {
	switch filter {
	case WithAdaOnly:
		return ix.adaOnly
	case WithAsset:
		return ix.byAsset[asset]
	default:
		return ix.order
	}
}

// SelectRandom samples uniformly over the entries matching filter (and, for
// WithAsset, the given asset), removes the sampled entry from ix in place,
// and returns it. The second return value is false when no entry matches.
func (ix *UTxOIndex) SelectRandom(filter Filter, asset assets.AssetID, rng Source) (UTxOEntry, bool) {
	candidates := ix.matching(filter, asset)
	if len(candidates) == 0 {
		return UTxOEntry{}, false
	}

	idx := rng.UintN(uint64(len(candidates)))
	id := candidates[idx]
	bundle := ix.entries[id]

	ix.Remove(id)

	return UTxOEntry{ID: id, Bundle: bundle}, true
}

// Clone returns a deep copy of ix, so the engine can fork working state
// without entries in one branch being visible to another.
func (ix *UTxOIndex) Clone() *UTxOIndex {
	out := NewUTxOIndex(nil)
	for _, e := range ix.Entries() {
		out.Insert(e.ID, e.Bundle)
	}
	return out
}

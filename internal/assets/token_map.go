// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import "sort"

// TokenQuantity is a non-negative quantity of a single native asset. The
// protocol-level maximum a single output may carry is imposed by the
// Constraints the caller supplies (in practice 2^64-1), not by this type.
type TokenQuantity = uint64

// TokenMap is a mapping from AssetID to TokenQuantity. It maintains the
// invariant that no entry has quantity zero: every constructor and mutator
// normalises zero-quantity entries out, so callers can never observe one.
type TokenMap struct {
	entries map[AssetID]TokenQuantity
}

// EmptyTokenMap is the TokenMap with no entries.
var EmptyTokenMap = TokenMap{}

// NewTokenMap builds a normalised TokenMap from raw entries, dropping any
// zero-quantity entries.
func NewTokenMap(raw map[AssetID]TokenQuantity) TokenMap {
	m := TokenMap{entries: make(map[AssetID]TokenQuantity, len(raw))}
	for id, q := range raw {
		if q != 0 {
			m.entries[id] = q
		}
	}
	return m
}

// Get returns the quantity of id in m, or 0 if absent.
func (m TokenMap) Get(id AssetID) TokenQuantity {
	return m.entries[id]
}

// Len returns the number of non-zero entries.
func (m TokenMap) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether m has no entries.
func (m TokenMap) IsEmpty() bool {
	return len(m.entries) == 0
}

// Assets returns the set of AssetIDs present in m with non-zero quantity,
// sorted by AssetID.Less for deterministic iteration.
func (m TokenMap) Assets() []AssetID {
	out := make([]AssetID, 0, len(m.entries))
	for id := range m.entries {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Flat returns the (AssetID, TokenQuantity) pairs of m, sorted by AssetID.
func (m TokenMap) Flat() []struct {
	ID       AssetID
	Quantity TokenQuantity
} {
	ids := m.Assets()
	out := make([]struct {
		ID       AssetID
		Quantity TokenQuantity
	}, len(ids))
	for i, id := range ids {
		out[i].ID = id
		out[i].Quantity = m.entries[id]
	}
	return out
}

// InsertAdding returns a TokenMap with q added to id's existing quantity.
func (m TokenMap) InsertAdding(id AssetID, q TokenQuantity) TokenMap {
	raw := m.cloneRaw()
	raw[id] += q
	return NewTokenMap(raw)
}

// Add returns the normalised union-sum of m and o.
func (m TokenMap) Add(o TokenMap) TokenMap {
	raw := m.cloneRaw()
	for id, q := range o.entries {
		raw[id] += q
	}
	return NewTokenMap(raw)
}

// Subtract returns (m-o, true) iff o <= m component-wise, else (TokenMap{}, false).
func (m TokenMap) Subtract(o TokenMap) (TokenMap, bool) {
	if !o.Leq(m) {
		return TokenMap{}, false
	}
	raw := m.cloneRaw()
	for id, q := range o.entries {
		raw[id] -= q
	}
	return NewTokenMap(raw), true
}

// Leq reports whether m <= o component-wise: for every asset in m, m's
// quantity is at most o's quantity (missing entries in o count as 0).
func (m TokenMap) Leq(o TokenMap) bool {
	for id, q := range m.entries {
		if q > o.entries[id] {
			return false
		}
	}
	return true
}

// Equal reports whether m and o hold identical entries.
func (m TokenMap) Equal(o TokenMap) bool {
	if len(m.entries) != len(o.entries) {
		return false
	}
	for id, q := range m.entries {
		if o.entries[id] != q {
			return false
		}
	}
	return true
}

func (m TokenMap) cloneRaw() map[AssetID]TokenQuantity {
	raw := make(map[AssetID]TokenQuantity, len(m.entries))
	for id, q := range m.entries {
		raw[id] = q
	}
	return raw
}

// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	"encoding/hex"
)

// PolicyIDSize is the length in bytes of a native-asset policy ID hash.
const PolicyIDSize = 28

// MaxAssetNameSize is the maximum length in bytes of an asset name.
const MaxAssetNameSize = 32

// AssetID identifies a native-asset class: a minting policy ID paired with
// an asset name under that policy. It is comparable by value and usable as
// a map key directly.
type AssetID struct {
	PolicyID [PolicyIDSize]byte
	Name     assetName
}

// assetName is a fixed-capacity comparable encoding of a variable-length
// (up to MaxAssetNameSize) asset name, so AssetID can be used directly as
// a Go map key without a side table.
type assetName struct {
	len  uint8
	data [MaxAssetNameSize]byte
}

// NewAssetID constructs an AssetID from a policy ID and asset name. It
// panics if policyID is not PolicyIDSize bytes or name exceeds
// MaxAssetNameSize: both are caller-supplied constants in practice, never
// derived from untrusted input at this layer.
func NewAssetID(policyID []byte, name []byte) AssetID {
	if len(policyID) != PolicyIDSize {
		panic("assets: policy id must be 28 bytes")
	}
	if len(name) > MaxAssetNameSize {
		panic("assets: asset name exceeds 32 bytes")
	}

	var id AssetID
	copy(id.PolicyID[:], policyID)
	id.Name.len = uint8(len(name))
	copy(id.Name.data[:], name)
	return id
}

// NameBytes returns the asset name as a byte slice.
func (a AssetID) NameBytes() []byte {
	return a.Name.data[:a.Name.len]
}

// Less gives AssetID a total order: by policy ID, then by asset name.
func (a AssetID) Less(o AssetID) bool {
	if c := bytes.Compare(a.PolicyID[:], o.PolicyID[:]); c != 0 {
		return c < 0
	}
	return bytes.Compare(a.NameBytes(), o.NameBytes()) < 0
}

// String renders the asset id as "<policy-hex>.<name-hex>" for logging and
// test fixtures.
func (a AssetID) String() string {
	return hex.EncodeToString(a.PolicyID[:]) + "." + hex.EncodeToString(a.NameBytes())
}

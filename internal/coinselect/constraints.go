// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coinselect implements the random round-robin coin selection
// engine and wallet migration planner: given a UTxO snapshot, a list of
// payment targets, and a Constraints implementation describing a target
// protocol's size and fee rules, it decides which entries to spend and how
// to construct change that satisfies minimum-value and size constraints.
package coinselect

import "github.com/1pcpool/cardano-wallet/internal/assets"

// Constraints is supplied by the caller and answers every size/cost
// question the selection engine needs. It is the only point where
// protocol-specific knowledge enters the engine: the same algorithm drives
// any target protocol by swapping the Constraints implementation.
type Constraints interface {
	// BaseCost is the fixed per-transaction fee component.
	BaseCost() assets.Coin

	// BaseSize is the fixed per-transaction encoded size component.
	BaseSize() int

	// InputCost is the marginal fee cost of adding one input.
	InputCost() assets.Coin

	// InputSize is the marginal encoded size cost of adding one input.
	InputSize() int

	// OutputCost is the encoded-fee cost of an output carrying bundle b.
	OutputCost(b assets.TokenBundle) assets.Coin

	// OutputSize is the encoded size of an output carrying bundle b.
	OutputSize(b assets.TokenBundle) int

	// OutputCoinCost is the fee cost of an ada-only output holding c.
	OutputCoinCost(c assets.Coin) assets.Coin

	// OutputCoinSize is the encoded size of an ada-only output holding c.
	OutputCoinSize(c assets.Coin) int

	// MinAdaFor is the minimum ada an output carrying the given asset set
	// must hold.
	MinAdaFor(assetIDs []assets.AssetID) assets.Coin

	// MaxOutputSize is the largest encoded size a single output may have.
	MaxOutputSize() int

	// MaxTxSize is the largest encoded size the whole transaction may have.
	MaxTxSize() int

	// MaxAssetQuantity is the largest quantity a single token may carry in
	// one output.
	MaxAssetQuantity() assets.TokenQuantity

	// RewardWithdrawalCost is the fee cost of a reward withdrawal of c.
	// It is zero for c == 0.
	RewardWithdrawalCost(c assets.Coin) assets.Coin

	// RewardWithdrawalSize is the encoded size cost of a reward
	// withdrawal of c. It is zero for c == 0.
	RewardWithdrawalSize(c assets.Coin) int
}

// OutputHasValidSize reports whether b's encoded output size fits under
// cs.MaxOutputSize.
func OutputHasValidSize(cs Constraints, b assets.TokenBundle) bool {
	return cs.OutputSize(b) <= cs.MaxOutputSize()
}

// OutputHasValidTokenQuantities reports whether every token quantity in b
// is within cs.MaxAssetQuantity.
func OutputHasValidTokenQuantities(cs Constraints, b assets.TokenBundle) bool {
	max := cs.MaxAssetQuantity()
	for _, entry := range b.Tokens.Flat() {
		if entry.Quantity > max {
			return false
		}
	}
	return true
}

// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "github.com/1pcpool/cardano-wallet/internal/assets"

// ProtocolParams carries the handful of linear coefficients a UTxO-based
// protocol publishes for fee and minimum-ada calculation. Field names
// mirror Cardano's protocol parameter set; a different target protocol
// supplies different magnitudes through the same shape.
type ProtocolParams struct {
	// TxFeeFixed is the fixed per-transaction fee component (lovelace).
	TxFeeFixed assets.Coin

	// TxFeePerByte is the marginal fee cost of one additional byte of
	// serialized transaction size (lovelace).
	TxFeePerByte assets.Coin

	// UtxoCostPerByte prices one byte of an output's serialized size into
	// its minimum ada requirement.
	UtxoCostPerByte assets.Coin

	// MaxTxSizeBytes is the largest serialized transaction size the
	// network will relay.
	MaxTxSizeBytes int

	// MaxValueSizeBytes is the largest serialized size a single output's
	// value (coin plus token map) may have.
	MaxValueSizeBytes int

	// MaxTokenQuantity bounds a single token's quantity in one output,
	// normally 2^64-1; kept configurable for networks imposing a tighter
	// limit.
	MaxTokenQuantity assets.TokenQuantity
}

// Fixed per-entity byte costs used by the worst-case size estimator below.
// These mirror the fixed CBOR overhead of a UTxO input reference, an
// output's address plus structure, and one policy/asset-name pair added to
// an output's token map; they are not protocol parameters themselves; a
// network with a different wire encoding would need different constants
// here, not a different Constraints shape.
const (
	inputRefSize      = 41 // 32-byte tx hash + index + array/tag overhead
	outputOverhead    = 38 // address bytes + array/map overhead, worst-case Shelley address
	perAssetEntrySize = 12 // asset-name length-prefix + quantity, amortized
	withdrawalSize    = 34 // reward account key hash + amount
)

// cborUintSize returns the number of bytes CBOR major type 0 (an unsigned
// integer) takes to encode n, following the same width breakpoints as
// Cardano's ledger binary spec for a TxOut's coin field: the serialized
// size of a coin grows with its magnitude, not just its presence.
func cborUintSize(n uint64) int {
	switch {
	case n < 24:
		return 1
	case n <= 0xFF:
		return 2
	case n <= 0xFFFF:
		return 3
	case n <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

// LinearConstraints implements Constraints over a ProtocolParams, the
// coefficient shape real UTxO protocol parameters take: every cost and
// size figure is either a fixed constant or linear in the number of bytes
// or entries added.
type LinearConstraints struct {
	params ProtocolParams
}

// NewLinearConstraints builds a LinearConstraints from a loaded protocol
// parameter set.
func NewLinearConstraints(params ProtocolParams) LinearConstraints {
	return LinearConstraints{params: params}
}

func (c LinearConstraints) BaseCost() assets.Coin {
	return c.params.TxFeeFixed
}

func (c LinearConstraints) BaseSize() int {
	return 0
}

func (c LinearConstraints) InputCost() assets.Coin {
	return c.feeForBytes(inputRefSize)
}

func (c LinearConstraints) InputSize() int {
	return inputRefSize
}

func (c LinearConstraints) OutputCost(b assets.TokenBundle) assets.Coin {
	return c.feeForBytes(c.OutputSize(b))
}

func (c LinearConstraints) OutputSize(b assets.TokenBundle) int {
	return outputOverhead + cborUintSize(uint64(b.Coin)) + perAssetEntrySize*b.Tokens.Len()
}

func (c LinearConstraints) OutputCoinCost(coin assets.Coin) assets.Coin {
	return c.feeForBytes(c.OutputCoinSize(coin))
}

func (c LinearConstraints) OutputCoinSize(coin assets.Coin) int {
	return outputOverhead + cborUintSize(uint64(coin))
}

// MinAdaFor prices an output's minimum ada as its worst-case serialized
// size times the per-byte UTxO cost, the same rule Cardano's
// `utxoCostPerByte` parameter expresses. The coin being solved for is not
// known yet, so its CBOR width is priced at the 9-byte worst case.
func (c LinearConstraints) MinAdaFor(assetIDs []assets.AssetID) assets.Coin {
	size := outputOverhead + cborUintSize(^uint64(0)) + perAssetEntrySize*len(assetIDs)
	return assets.Coin(size) * c.params.UtxoCostPerByte
}

func (c LinearConstraints) MaxOutputSize() int {
	return c.params.MaxValueSizeBytes
}

func (c LinearConstraints) MaxTxSize() int {
	return c.params.MaxTxSizeBytes
}

func (c LinearConstraints) MaxAssetQuantity() assets.TokenQuantity {
	return c.params.MaxTokenQuantity
}

func (c LinearConstraints) RewardWithdrawalCost(coin assets.Coin) assets.Coin {
	if coin == 0 {
		return 0
	}
	return c.feeForBytes(withdrawalSize)
}

func (c LinearConstraints) RewardWithdrawalSize(coin assets.Coin) int {
	if coin == 0 {
		return 0
	}
	return withdrawalSize
}

func (c LinearConstraints) feeForBytes(n int) assets.Coin {
	return c.params.TxFeePerByte * assets.Coin(n)
}

// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "github.com/1pcpool/cardano-wallet/internal/assets"

// MinAdaFunc computes the minimum ada an output carrying the given asset
// set must hold. Production callers pass cs.MinAdaFor; change-shape
// prediction (selection engine Phase C) passes a function that always
// returns zero.
type MinAdaFunc func(assetIDs []assets.AssetID) assets.Coin

// MakeChangeArgs bundles MakeChange's inputs.
type MakeChangeArgs struct {
	MinAdaFor    MinAdaFunc
	RequiredCost assets.Coin
	ExtraSource  assets.Coin
	Inputs       []assets.TokenBundle
	Outputs      []assets.TokenBundle
}

// MakeChange computes change bundles from a pre-balance excess, following
// the nine-step change construction process. Preconditions (enforced by the caller):
// sum(outputs) <= sum(inputs)+extra, and sum(outputs).Coin > 0. Violating
// either is a programming error and panics rather than returning an error.
func MakeChange(args MakeChangeArgs) ([]assets.TokenBundle, error) {
	if len(args.Outputs) == 0 {
		invariantf("MakeChange called with no target outputs")
	}

	totalIn := assets.SumBundles(args.Inputs...).Add(assets.FromCoin(args.ExtraSource))
	totalOut := assets.SumBundles(args.Outputs...)

	if !totalOut.Leq(totalIn) {
		invariantf("sum(outputs) exceeds sum(inputs)+extra")
	}
	if totalOut.Coin == 0 {
		invariantf("sum(outputs).Coin must be > 0")
	}

	// Step 1-2: excess = sum(inputs)+extra - sum(outputs), split into
	// excess_coin and excess_assets.
	excess := totalIn.SubtractUnchecked(totalOut)
	excessCoin := excess.Coin
	excessAssets := excess.Tokens

	// Step 3: unknown assets (present in inputs, absent from outputs),
	// each carrying the list of individual quantities from input bundles.
	outputAssetSet := make(map[assets.AssetID]struct{})
	for _, o := range args.Outputs {
		for _, a := range o.GetAssets() {
			outputAssetSet[a] = struct{}{}
		}
	}

	unknownQuantities := make(map[assets.AssetID][]uint64)
	var unknownOrder []assets.AssetID
	for _, in := range args.Inputs {
		for _, entry := range in.Tokens.Flat() {
			if _, known := outputAssetSet[entry.ID]; known {
				continue
			}
			if _, seen := unknownQuantities[entry.ID]; !seen {
				unknownOrder = append(unknownOrder, entry.ID)
			}
			unknownQuantities[entry.ID] = append(unknownQuantities[entry.ID], entry.Quantity)
		}
	}

	n := len(args.Outputs)

	// Step 4: for every asset present in outputs with excess quantity,
	// distribute proportionally to each output's holding of that asset.
	changeMaps := make([]map[assets.AssetID]uint64, n)
	for i := range changeMaps {
		changeMaps[i] = make(map[assets.AssetID]uint64)
	}

	for _, a := range excessAssets.Assets() {
		q := excessAssets.Get(a)
		weights := make([]uint64, n)
		for i, o := range args.Outputs {
			weights[i] = o.Tokens.Get(a)
		}
		shares := PartitionNatural(q, weights)
		for i, s := range shares {
			if s > 0 {
				changeMaps[i][a] += s
			}
		}
	}

	// Step 5: unknown assets distributed via pad-coalesce.
	for _, a := range unknownOrder {
		shares := PadCoalesce(unknownQuantities[a], n)
		for i, s := range shares {
			if s > 0 {
				changeMaps[i][a] += s
			}
		}
	}

	// Step 6: combine into a list of TokenMaps.
	tokenMaps := make([]assets.TokenMap, n)
	for i, m := range changeMaps {
		tokenMaps[i] = assets.NewTokenMap(m)
	}

	return assignChangeCoins(args, tokenMaps, excessCoin)
}

// assignChangeCoins implements steps 7-9: subtract the required cost from
// the excess coin, assign each position's minimum ada in order, then
// distribute the remainder proportionally to the corresponding target
// output's coin amount.
func assignChangeCoins(args MakeChangeArgs, tokenMaps []assets.TokenMap, excessCoin assets.Coin) ([]assets.TokenBundle, error) {
	// Step 7.
	remaining, ok := excessCoin.SafeSub(args.RequiredCost)
	if !ok {
		missing, _ := args.RequiredCost.SafeSub(excessCoin)
		return nil, UnableToConstructChangeError{Missing: missing}
	}

	// Step 8: assign minimum ada per position, in order.
	minAdas := make([]assets.Coin, len(tokenMaps))
	for i, m := range tokenMaps {
		minAdas[i] = args.MinAdaFor(m.Assets())
	}

	assigned := make([]assets.Coin, len(tokenMaps))
	for i, minAda := range minAdas {
		if remaining < minAda {
			shortfall, _ := minAda.SafeSub(remaining)
			var stillNeeded assets.Coin
			for _, m := range minAdas[i+1:] {
				stillNeeded = stillNeeded.Add(m)
			}
			return nil, UnableToConstructChangeError{Missing: shortfall.Add(stillNeeded)}
		}
		assigned[i] = minAda
		remaining, _ = remaining.SafeSub(minAda)
	}

	// Step 9: distribute the remainder proportionally to each position's
	// corresponding target output coin amount.
	weights := make([]uint64, len(args.Outputs))
	for i, o := range args.Outputs {
		weights[i] = o.Coin.Uint64()
	}
	extraShares := PartitionNatural(remaining.Uint64(), weights)

	result := make([]assets.TokenBundle, len(tokenMaps))
	for i, m := range tokenMaps {
		coin := assigned[i].Add(assets.CoinFromUint64(extraShares[i]))
		result[i] = assets.TokenBundle{Coin: coin, Tokens: m}
	}

	return result, nil
}

// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/1pcpool/cardano-wallet/internal/assets"
)

// jsonAsset is the wire shape of one native-asset quantity in a fixture or
// printed result.
type jsonAsset struct {
	Policy   string `json:"policy"`
	Name     string `json:"name"`
	Quantity uint64 `json:"quantity"`
}

// jsonBundle is the wire shape of a TokenBundle in a fixture or printed
// result.
type jsonBundle struct {
	Coin   int64       `json:"coin"`
	Assets []jsonAsset `json:"assets,omitempty"`
}

func (b jsonBundle) toBundle() (assets.TokenBundle, error) {
	raw := make(map[assets.AssetID]assets.TokenQuantity, len(b.Assets))
	for _, a := range b.Assets {
		policy, err := hex.DecodeString(a.Policy)
		if err != nil {
			return assets.TokenBundle{}, fmt.Errorf("asset policy %q: %w", a.Policy, err)
		}
		name, err := hex.DecodeString(a.Name)
		if err != nil {
			return assets.TokenBundle{}, fmt.Errorf("asset name %q: %w", a.Name, err)
		}
		if len(policy) != assets.PolicyIDSize {
			return assets.TokenBundle{}, fmt.Errorf("asset policy %q: must decode to %d bytes, got %d",
				a.Policy, assets.PolicyIDSize, len(policy))
		}
		if len(name) > assets.MaxAssetNameSize {
			return assets.TokenBundle{}, fmt.Errorf("asset name %q: must decode to at most %d bytes, got %d",
				a.Name, assets.MaxAssetNameSize, len(name))
		}
		raw[assets.NewAssetID(policy, name)] = a.Quantity
	}

	coin, err := assets.NewCoin(b.Coin)
	if err != nil {
		return assets.TokenBundle{}, err
	}

	return assets.TokenBundle{Coin: coin, Tokens: assets.NewTokenMap(raw)}, nil
}

func bundleToJSON(b assets.TokenBundle) jsonBundle {
	out := jsonBundle{Coin: int64(b.Coin)}
	for _, entry := range b.Tokens.Flat() {
		out.Assets = append(out.Assets, jsonAsset{
			Policy:   hex.EncodeToString(entry.ID.PolicyID[:]),
			Name:     hex.EncodeToString(entry.ID.NameBytes()),
			Quantity: entry.Quantity,
		})
	}
	return out
}

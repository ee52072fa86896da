// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBundleAddSubtract(t *testing.T) {
	b1 := TokenBundle{Coin: 10, Tokens: NewTokenMap(map[AssetID]TokenQuantity{assetA(): 3})}
	b2 := TokenBundle{Coin: 4, Tokens: NewTokenMap(map[AssetID]TokenQuantity{assetA(): 1})}

	sum := b1.Add(b2)
	require.Equal(t, Coin(14), sum.Coin)
	require.Equal(t, TokenQuantity(4), sum.Tokens.Get(assetA()))

	diff, ok := b1.Subtract(b2)
	require.True(t, ok)
	require.Equal(t, Coin(6), diff.Coin)
	require.Equal(t, TokenQuantity(2), diff.Tokens.Get(assetA()))

	_, ok = b2.Subtract(b1)
	require.False(t, ok)
}

func TestBundleSubtractUncheckedPanicsOnViolation(t *testing.T) {
	b1 := TokenBundle{Coin: 1}
	b2 := TokenBundle{Coin: 2}
	require.Panics(t, func() {
		b1.SubtractUnchecked(b2)
	})
}

func TestBundleLeq(t *testing.T) {
	b1 := TokenBundle{Coin: 1, Tokens: NewTokenMap(map[AssetID]TokenQuantity{assetA(): 1})}
	b2 := TokenBundle{Coin: 5, Tokens: NewTokenMap(map[AssetID]TokenQuantity{assetA(): 2})}
	require.True(t, b1.Leq(b2))
	require.False(t, b2.Leq(b1))
}

func TestFromCoinIsEmptyTokens(t *testing.T) {
	b := FromCoin(Coin(5))
	require.Equal(t, Coin(5), b.Coin)
	require.True(t, b.Tokens.IsEmpty())
}

func TestSumBundles(t *testing.T) {
	b1 := FromCoin(Coin(1))
	b2 := FromCoin(Coin(2))
	b3 := TokenBundle{Coin: 3, Tokens: NewTokenMap(map[AssetID]TokenQuantity{assetA(): 9})}
	total := SumBundles(b1, b2, b3)
	require.Equal(t, Coin(6), total.Coin)
	require.Equal(t, TokenQuantity(9), total.Tokens.Get(assetA()))
}

// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func policyA() [PolicyIDSize]byte {
	var p [PolicyIDSize]byte
	p[0] = 0xAA
	return p
}

func assetA() AssetID {
	p := policyA()
	return NewAssetID(p[:], []byte("A"))
}

func assetB() AssetID {
	p := policyA()
	return NewAssetID(p[:], []byte("B"))
}

func TestTokenMapNormalisesZeros(t *testing.T) {
	m := NewTokenMap(map[AssetID]TokenQuantity{assetA(): 0, assetB(): 5})
	require.Equal(t, 1, m.Len())
	require.Equal(t, TokenQuantity(0), m.Get(assetA()))
	require.Equal(t, TokenQuantity(5), m.Get(assetB()))
}

func TestTokenMapAdd(t *testing.T) {
	m1 := NewTokenMap(map[AssetID]TokenQuantity{assetA(): 3})
	m2 := NewTokenMap(map[AssetID]TokenQuantity{assetA(): 2, assetB(): 7})
	sum := m1.Add(m2)
	require.Equal(t, TokenQuantity(5), sum.Get(assetA()))
	require.Equal(t, TokenQuantity(7), sum.Get(assetB()))
}

func TestTokenMapSubtract(t *testing.T) {
	m1 := NewTokenMap(map[AssetID]TokenQuantity{assetA(): 5, assetB(): 2})
	m2 := NewTokenMap(map[AssetID]TokenQuantity{assetA(): 2})

	diff, ok := m1.Subtract(m2)
	require.True(t, ok)
	require.Equal(t, TokenQuantity(3), diff.Get(assetA()))
	require.Equal(t, TokenQuantity(2), diff.Get(assetB()))

	// Subtracting more than available fails.
	_, ok = m2.Subtract(m1)
	require.False(t, ok)
}

func TestTokenMapSubtractNormalisesToZeroLen(t *testing.T) {
	m1 := NewTokenMap(map[AssetID]TokenQuantity{assetA(): 5})
	m2 := NewTokenMap(map[AssetID]TokenQuantity{assetA(): 5})
	diff, ok := m1.Subtract(m2)
	require.True(t, ok)
	require.True(t, diff.IsEmpty())
}

func TestTokenMapLeq(t *testing.T) {
	m1 := NewTokenMap(map[AssetID]TokenQuantity{assetA(): 3})
	m2 := NewTokenMap(map[AssetID]TokenQuantity{assetA(): 5, assetB(): 1})
	require.True(t, m1.Leq(m2))
	require.False(t, m2.Leq(m1))
	require.True(t, EmptyTokenMap.Leq(m1))
}

func TestTokenMapAssetsSorted(t *testing.T) {
	m := NewTokenMap(map[AssetID]TokenQuantity{assetB(): 1, assetA(): 1})
	ids := m.Assets()
	require.Len(t, ids, 2)
	require.True(t, ids[0].Less(ids[1]))
}

// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/1pcpool/cardano-wallet/internal/assets"
	"github.com/stretchr/testify/require"
)

// TestCategorizeUTxOThreePools exercises the three categorisation outcomes:
// ignorable, freerider, and supporter.
func TestCategorizeUTxOThreePools(t *testing.T) {
	cs := defaultStubConstraints()
	cs.minAdaAssetless = 2

	utxo := []UTxOEntry{
		{ID: "ignorable", Bundle: assets.FromCoin(1)},
		{ID: "freerider", Bundle: assets.FromCoin(2)},
		{ID: "supporter", Bundle: assets.FromCoin(10)},
	}

	categorized := CategorizeUTxO(cs, utxo)

	require.Len(t, categorized.Ignorables, 1)
	require.Equal(t, InputID("ignorable"), categorized.Ignorables[0].ID)

	require.Len(t, categorized.Freeriders, 1)
	require.Equal(t, InputID("freerider"), categorized.Freeriders[0].ID)

	require.Len(t, categorized.Supporters, 1)
	require.Equal(t, InputID("supporter"), categorized.Supporters[0].ID)
}

// TestCategorizeUTxOConsistentWithCreate verifies an entry is categorised
// Supporter exactly when Create(constraints, 0, [b]) succeeds on its own,
// and that every Ignorable entry is ada-only with coin <= input cost.
func TestCategorizeUTxOConsistentWithCreate(t *testing.T) {
	cs := defaultStubConstraints()
	cs.minAdaAssetless = 2
	a := testAssetID('A')

	utxo := []UTxOEntry{
		{ID: "e1", Bundle: assets.FromCoin(1)},
		{ID: "e2", Bundle: assets.FromCoin(2)},
		{ID: "e3", Bundle: assets.FromCoin(10)},
		{ID: "e4", Bundle: assets.TokenBundle{Coin: 1, Tokens: assets.NewTokenMap(
			map[assets.AssetID]assets.TokenQuantity{a: 3})}},
	}

	categorized := CategorizeUTxO(cs, utxo)

	for _, e := range categorized.Supporters {
		_, err := Create(cs, 0, []UTxOEntry{e})
		require.NoErrorf(t, err, "entry %s categorised Supporter must stand alone", e.ID)
	}
	for _, e := range categorized.Freeriders {
		_, err := Create(cs, 0, []UTxOEntry{e})
		require.Errorf(t, err, "entry %s categorised Freerider must not stand alone", e.ID)
	}
	for _, e := range categorized.Ignorables {
		require.True(t, e.Bundle.Tokens.IsEmpty())
		require.LessOrEqual(t, e.Bundle.Coin, cs.InputCost())
	}
}

// TestCategorizeUTxOPartitionsInput verifies every input entry appears in
// exactly one output pool.
func TestCategorizeUTxOPartitionsInput(t *testing.T) {
	cs := defaultStubConstraints()
	cs.minAdaAssetless = 2

	utxo := []UTxOEntry{
		{ID: "e1", Bundle: assets.FromCoin(1)},
		{ID: "e2", Bundle: assets.FromCoin(2)},
		{ID: "e3", Bundle: assets.FromCoin(10)},
		{ID: "e4", Bundle: assets.FromCoin(20)},
	}

	categorized := CategorizeUTxO(cs, utxo)

	seen := make(map[InputID]int)
	for _, e := range categorized.Supporters {
		seen[e.ID]++
	}
	for _, e := range categorized.Freeriders {
		seen[e.ID]++
	}
	for _, e := range categorized.Ignorables {
		seen[e.ID]++
	}

	require.Len(t, seen, len(utxo))
	for _, e := range utxo {
		require.Equal(t, 1, seen[e.ID])
	}
}

// TestCreatePlanMergesSupportersIntoOneSelection verifies two supporters
// with no freeriders merge into a single selection instead of two.
func TestCreatePlanMergesSupportersIntoOneSelection(t *testing.T) {
	cs := defaultStubConstraints()

	categorized := CategorizedUTxO{
		Supporters: []UTxOEntry{
			{ID: "i1", Bundle: assets.FromCoin(10)},
			{ID: "i2", Bundle: assets.FromCoin(10)},
		},
	}

	plan := CreatePlan(cs, categorized, 0)

	require.Len(t, plan.Selections, 1)
	sel := plan.Selections[0]
	require.Len(t, sel.Inputs, 2)
	require.Equal(t, assets.Coin(3), sel.Fee)
	require.Len(t, sel.Change, 1)
	require.NotEqual(t, assets.Coin(0), sel.Change[0].Coin)
	require.Equal(t, plan.TotalFee, sel.Fee)
	require.Empty(t, plan.Unselected.Supporters)
	require.True(t, Check(cs, &sel).OK())
}

// TestCreatePlanWithdrawalOnlyOnFirstSelection verifies the reward
// withdrawal is spent by the first selection and zero on every later one.
func TestCreatePlanWithdrawalOnlyOnFirstSelection(t *testing.T) {
	cs := defaultStubConstraints()
	cs.maxTxSize = 4 // forces each supporter into its own selection

	categorized := CategorizedUTxO{
		Supporters: []UTxOEntry{
			{ID: "i1", Bundle: assets.FromCoin(10)},
			{ID: "i2", Bundle: assets.FromCoin(10)},
		},
	}

	plan := CreatePlan(cs, categorized, 5)
	require.Len(t, plan.Selections, 2)
	require.Equal(t, assets.Coin(5), plan.Selections[0].RewardWithdrawal)
	require.Equal(t, assets.Coin(0), plan.Selections[1].RewardWithdrawal)
}

// TestCreatePlanExtendsWithFreeriders verifies a supporter seed pulls in a
// freerider it can afford.
func TestCreatePlanExtendsWithFreeriders(t *testing.T) {
	cs := defaultStubConstraints()

	categorized := CategorizedUTxO{
		Supporters: []UTxOEntry{{ID: "supporter", Bundle: assets.FromCoin(20)}},
		Freeriders: []UTxOEntry{{ID: "freerider", Bundle: assets.FromCoin(2)}},
	}

	plan := CreatePlan(cs, categorized, 0)

	require.Len(t, plan.Selections, 1)
	require.Len(t, plan.Selections[0].Inputs, 2)
	require.Empty(t, plan.Unselected.Freeriders)
}

// TestCreatePlanPartitionsInput verifies every categorised entry appears in
// exactly one of the plan's selections or its Unselected pools, no
// Supporter is ever stranded, and total fee is the sum of each
// selection's fee.
func TestCreatePlanPartitionsInput(t *testing.T) {
	cs := defaultStubConstraints()

	categorized := CategorizedUTxO{
		Supporters: []UTxOEntry{
			{ID: "s1", Bundle: assets.FromCoin(10)},
			{ID: "s2", Bundle: assets.FromCoin(10)},
		},
		Freeriders: []UTxOEntry{{ID: "f1", Bundle: assets.FromCoin(2)}},
		Ignorables: []UTxOEntry{{ID: "ig1", Bundle: assets.FromCoin(1)}},
	}

	plan := CreatePlan(cs, categorized, 0)

	require.Empty(t, plan.Unselected.Supporters)

	var sumFee assets.Coin
	selected := make(map[InputID]bool)
	for _, sel := range plan.Selections {
		sumFee = sumFee.Add(sel.Fee)
		for _, in := range sel.Inputs {
			selected[in.ID] = true
		}
	}
	require.Equal(t, plan.TotalFee, sumFee)

	total := len(categorized.Supporters) + len(categorized.Freeriders) + len(categorized.Ignorables)
	unselectedCount := len(plan.Unselected.Supporters) + len(plan.Unselected.Freeriders) + len(plan.Unselected.Ignorables)
	require.Equal(t, total, len(selected)+unselectedCount)
}

func TestMinimizeFeeRedistributesExcess(t *testing.T) {
	cs := defaultStubConstraints()
	sel := &Selection{
		Inputs:  []UTxOEntry{{ID: "i1", Bundle: assets.FromCoin(20)}},
		Outputs: []assets.TokenBundle{assets.FromCoin(1)},
		Change:  []assets.TokenBundle{assets.FromCoin(5)},
		Fee:     10, // overstated: true excess = 20-1-5-10 = 4
	}

	MinimizeFee(cs, sel)

	require.Equal(t, assets.Coin(9), sel.Change[0].Coin)
	require.Equal(t, assets.Coin(10), sel.Fee)

	coinIn := assets.Coin(20)
	coinOut := sel.Outputs[0].Coin.Add(sel.Change[0].Coin).Add(sel.Fee)
	require.Equal(t, coinIn, coinOut)
}

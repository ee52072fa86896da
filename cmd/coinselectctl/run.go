// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/1pcpool/cardano-wallet/internal/assets"
	"github.com/1pcpool/cardano-wallet/internal/coinselect"
)

func runSelect(cs coinselect.LinearConstraints, snapshot *coinselect.UTxOIndex) int {
	if opts.OutputsFixture == "" {
		fatalf("-outputs is required in select mode")
	}

	raw, err := os.ReadFile(opts.OutputsFixture)
	if err != nil {
		fatalf("reading outputs fixture: %v", err)
	}

	var jsonOutputs []jsonBundle
	if err := json.Unmarshal(raw, &jsonOutputs); err != nil {
		fatalf("parsing outputs fixture: %v", err)
	}

	outputs := make([]assets.TokenBundle, len(jsonOutputs))
	for i, jb := range jsonOutputs {
		b, err := jb.toBundle()
		if err != nil {
			fatalf("output %d: %v", i, err)
		}
		outputs[i] = b
	}

	withdrawal, err := assets.NewCoin(opts.Withdrawal)
	if err != nil {
		fatalf("-withdrawal: %v", err)
	}

	result, err := coinselect.PerformSelection(cs, coinselect.DefaultCostFunc, coinselect.SelectionCriteria{
		OutputsToCover:  outputs,
		UTxOAvailable:   snapshot,
		SelectionLimit:  coinselect.NoLimit(),
		ExtraCoinSource: withdrawal,
	}, coinselect.NewMathRandSource(opts.Seed))
	if err != nil {
		fatalf("selection failed: %v", err)
	}

	printJSON(selectionToJSON(result.Selection))
	return 0
}

func runMigrate(cs coinselect.LinearConstraints, snapshot *coinselect.UTxOIndex) int {
	withdrawal, err := assets.NewCoin(opts.Withdrawal)
	if err != nil {
		fatalf("-withdrawal: %v", err)
	}

	categorized := coinselect.CategorizeUTxO(cs, snapshot.Entries())
	plan := coinselect.CreatePlan(cs, categorized, withdrawal)

	printJSON(planToJSON(plan))
	return 0
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatalf("encoding result: %v", err)
	}
}

type jsonSelection struct {
	Inputs           []string     `json:"inputs"`
	Outputs          []jsonBundle `json:"outputs"`
	Change           []jsonBundle `json:"change"`
	Fee              int64        `json:"fee"`
	RewardWithdrawal int64        `json:"reward_withdrawal"`
}

func selectionToJSON(sel coinselect.Selection) jsonSelection {
	ids := make([]string, len(sel.Inputs))
	for i, e := range sel.Inputs {
		ids[i] = string(e.ID)
	}

	outputs := make([]jsonBundle, len(sel.Outputs))
	for i, o := range sel.Outputs {
		outputs[i] = bundleToJSON(o)
	}
	change := make([]jsonBundle, len(sel.Change))
	for i, c := range sel.Change {
		change[i] = bundleToJSON(c)
	}

	return jsonSelection{
		Inputs:           ids,
		Outputs:          outputs,
		Change:           change,
		Fee:              int64(sel.Fee),
		RewardWithdrawal: int64(sel.RewardWithdrawal),
	}
}

type jsonPlan struct {
	Selections           []jsonSelection `json:"selections"`
	TotalFee             int64           `json:"total_fee"`
	UnselectedSupporters int             `json:"unselected_supporters"`
	UnselectedFreeriders int             `json:"unselected_freeriders"`
	UnselectedIgnorables int             `json:"unselected_ignorables"`
}

func planToJSON(plan coinselect.MigrationPlan) jsonPlan {
	selections := make([]jsonSelection, len(plan.Selections))
	for i, sel := range plan.Selections {
		selections[i] = selectionToJSON(sel)
	}

	return jsonPlan{
		Selections:           selections,
		TotalFee:             int64(plan.TotalFee),
		UnselectedSupporters: len(plan.Unselected.Supporters),
		UnselectedFreeriders: len(plan.Unselected.Freeriders),
		UnselectedIgnorables: len(plan.Unselected.Ignorables),
	}
}

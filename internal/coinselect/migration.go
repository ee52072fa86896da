// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "github.com/1pcpool/cardano-wallet/internal/assets"

// CategorizedUTxO partitions a UTxO snapshot into the three pools the
// migration planner operates on. Entries within each pool
// preserve the natural order they were categorised in, which keeps a plan
// deterministic given a fixed random source.
type CategorizedUTxO struct {
	// Supporters can, alone, fund their own base and input cost.
	Supporters []UTxOEntry

	// Freeriders carry value but cannot fund themselves; they must be
	// bundled with a supporter.
	Freeriders []UTxOEntry

	// Ignorables are ada-only and worth no more than their own input cost:
	// spending them costs more in marginal fee than they are worth.
	Ignorables []UTxOEntry
}

// CategorizeUTxO classifies every entry of utxo. Ignorable is checked first
// (cheap, no Selection attempt needed); Supporter is decided by whether the
// entry can stand alone in Create.
func CategorizeUTxO(cs Constraints, utxo []UTxOEntry) CategorizedUTxO {
	var out CategorizedUTxO

	for _, e := range utxo {
		if e.Bundle.Tokens.IsEmpty() && e.Bundle.Coin <= cs.InputCost() {
			log.Debugf("categorize: %v is ignorable (coin=%d <= input cost)", e.ID, e.Bundle.Coin)
			out.Ignorables = append(out.Ignorables, e)
			continue
		}

		if _, err := Create(cs, 0, []UTxOEntry{e}); err == nil {
			log.Debugf("categorize: %v is a supporter", e.ID)
			out.Supporters = append(out.Supporters, e)
		} else {
			log.Debugf("categorize: %v is a freerider (%v)", e.ID, err)
			out.Freeriders = append(out.Freeriders, e)
		}
	}

	return out
}

// MigrationPlan is the outcome of CreatePlan: a list of self-funding
// selections, their total fee, and whatever could not be placed into any
// selection.
type MigrationPlan struct {
	Selections []Selection
	TotalFee   assets.Coin
	Unselected CategorizedUTxO
}

// CreatePlan runs the plan loop: repeatedly seed a
// selection around one supporter, greedily extend it with freeriders (and,
// when a freerider's own ada isn't enough, with another supporter), run fee
// minimisation, and accumulate. reward_withdrawal is used only by the first
// successfully produced selection; every later selection withdraws zero.
//
// CreatePlan never fails: a seed that no longer supports itself (or any
// other per-attempt SelectionError) is skipped rather than aborting the
// whole run, and whatever remains unplaced is reported in Unselected.
func CreatePlan(cs Constraints, categorized CategorizedUTxO, withdrawal assets.Coin) MigrationPlan {
	supporters := append([]UTxOEntry(nil), categorized.Supporters...)
	freeriders := append([]UTxOEntry(nil), categorized.Freeriders...)

	var selections []Selection
	var skipped []UTxOEntry
	totalFee := assets.ZeroCoin
	usedWithdrawal := false

	for len(supporters) > 0 {
		seed := supporters[0]
		supporters = supporters[1:]

		w := assets.ZeroCoin
		if !usedWithdrawal {
			w = withdrawal
		}

		sel, err := Create(cs, w, []UTxOEntry{seed})
		if err != nil {
			log.Debugf("plan: seed %v no longer supports itself, skipping (%v)", seed.ID, err)
			skipped = append(skipped, seed)
			continue
		}
		usedWithdrawal = true

		sel, supporters, freeriders = extendSelection(cs, sel, supporters, freeriders)
		MinimizeFee(cs, sel)

		log.Debugf("plan: closed selection with %d inputs, fee=%d", len(sel.Inputs), sel.Fee)
		selections = append(selections, *sel)
		totalFee = totalFee.Add(sel.Fee)
	}

	return MigrationPlan{
		Selections: selections,
		TotalFee:   totalFee,
		Unselected: CategorizedUTxO{
			Supporters: append(skipped, supporters...),
			Freeriders: freeriders,
			Ignorables: categorized.Ignorables,
		},
	}
}

// extendSelection implements plan-loop step 3. Phase one greedily extends
// sel with freeriders; when extending with the freerider at the head of
// the queue fails for a reason other than the selection being full, it
// tries extending with one supporter instead and, on success, resumes
// freerider extension. Phase one stops once a freerider can be funded by
// neither path, or the selection is full.
//
// Phase two then drains any supporters still left in the queue directly
// into the same selection: a supporter can always stand alone, so merging
// it here (rather than letting the outer plan loop pop it as a fresh seed)
// is what keeps a wallet holding only supporters down to one transaction
// instead of one per input, matching the planner's stated goal of a
// minimal number of transactions.
func extendSelection(cs Constraints, sel *Selection, supporters, freeriders []UTxOEntry) (*Selection, []UTxOEntry, []UTxOEntry) {
	for len(freeriders) > 0 {
		candidate := freeriders[0]

		extended, err := Extend(cs, sel, candidate)
		if err == nil {
			sel = extended
			freeriders = freeriders[1:]
			continue
		}
		if _, full := err.(SelectionFullError); full {
			return sel, supporters, freeriders
		}
		if len(supporters) == 0 {
			break
		}

		extendedBySupporter, err := Extend(cs, sel, supporters[0])
		if err != nil {
			if _, full := err.(SelectionFullError); full {
				return sel, supporters, freeriders
			}
			break
		}
		sel = extendedBySupporter
		supporters = supporters[1:]
		// Resume freerider extension: retry the same freerider head now
		// that the selection carries more ada.
	}

	for len(supporters) > 0 {
		extended, err := Extend(cs, sel, supporters[0])
		if err != nil {
			break
		}
		sel = extended
		supporters = supporters[1:]
	}

	return sel, supporters, freeriders
}

// MinimizeFee implements fee minimisation: given
// fee_excess = coin(inputs)+withdrawal - coin(outputs) - coin(change) - fee,
// push as much of it as possible into the change outputs, in order,
// stopping a position once moving one more unit into it would cost at
// least as much in incremental output_coin_cost as it gains. It mutates sel
// in place.
//
// Selections produced by Create/Extend already satisfy fee_excess == 0 by
// construction (MakeChange's step 9 distributes the full remaining coin),
// so this is a structural no-op on the engine's own output; it is exported
// and exercised directly so the mechanism itself is verified, and so a
// caller assembling a Selection by hand (or a future cost_for that reserves
// a safety margin) can still benefit from it.
func MinimizeFee(cs Constraints, sel *Selection) {
	for {
		coinIn := sumCoin(bundlesOf(sel.Inputs)).Add(sel.RewardWithdrawal)
		coinOut := sumCoin(sel.Outputs).Add(sumCoin(sel.Change)).Add(sel.Fee)

		excess, ok := coinIn.SafeSub(coinOut)
		if !ok || excess == 0 {
			return
		}
		log.Tracef("fee minimisation: redistributing excess %d across %d change positions",
			excess, len(sel.Change))

		progressed := false
		for i := range sel.Change {
			if excess == 0 {
				break
			}
			added, costIncrease := maxAddable(cs, sel.Change[i].Coin, excess)
			if added == 0 {
				continue
			}
			sel.Change[i].Coin = sel.Change[i].Coin.Add(added)
			sel.Fee = sel.Fee.Add(costIncrease)
			excess, _ = excess.SafeSub(added.Add(costIncrease))
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

// maxAddable binary-searches the largest d in [0, maxExcess] such that
// moving d into an output currently holding coin costs no more than d in
// incremental output_coin_cost, and d plus that cost increase still fits
// within maxExcess, assuming OutputCoinCost is non-decreasing in its
// argument.
func maxAddable(cs Constraints, coin, maxExcess assets.Coin) (added, costIncrease assets.Coin) {
	if maxExcess == 0 {
		return 0, 0
	}

	baseCost := cs.OutputCoinCost(coin)
	lo, hi := assets.ZeroCoin, maxExcess
	var bestAdded, bestIncrease assets.Coin

	for lo <= hi {
		mid := lo + (hi-lo)/2
		inc := cs.OutputCoinCost(coin.Add(mid)) - baseCost
		if inc < 0 {
			inc = 0
		}
		if inc <= mid && mid+inc <= maxExcess {
			bestAdded, bestIncrease = mid, inc
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return bestAdded, bestIncrease
}

func sumCoin(bundles []assets.TokenBundle) assets.Coin {
	var total assets.Coin
	for _, b := range bundles {
		total = total.Add(b.Coin)
	}
	return total
}

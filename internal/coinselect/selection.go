// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "github.com/1pcpool/cardano-wallet/internal/assets"

// SelectionLimit bounds how many inputs the engine may select.
type SelectionLimit struct {
	unlimited bool
	max       int
}

// NoLimit returns a SelectionLimit that never rejects an additional input.
func NoLimit() SelectionLimit {
	return SelectionLimit{unlimited: true}
}

// MaximumInputLimit returns a SelectionLimit that rejects selecting beyond
// n inputs.
func MaximumInputLimit(n int) SelectionLimit {
	return SelectionLimit{max: n}
}

// Allows reports whether selecting one more input, bringing the total to
// currentCount+1, is permitted.
func (l SelectionLimit) Allows(currentCount int) bool {
	return l.unlimited || currentCount < l.max
}

// SelectionCriteria describes one PerformSelection call.
type SelectionCriteria struct {
	// OutputsToCover is the non-empty list of target output bundles to
	// fund.
	OutputsToCover []assets.TokenBundle

	// UTxOAvailable is the snapshot the engine selects from. Ownership is
	// consumed: the caller must not use it after the call.
	UTxOAvailable *UTxOIndex

	// SelectionLimit bounds the number of inputs the engine may select.
	SelectionLimit SelectionLimit

	// ExtraCoinSource is an optional reward-withdrawal coin the engine may
	// draw on in addition to selected inputs.
	ExtraCoinSource assets.Coin
}

// Selection is one valid transaction in the abstract: inputs consumed,
// outputs paid, change emitted, fee paid.
type Selection struct {
	Inputs           []UTxOEntry
	Outputs          []assets.TokenBundle
	Change           []assets.TokenBundle
	Fee              assets.Coin
	RewardWithdrawal assets.Coin
}

// SelectionResult is the successful outcome of PerformSelection: the
// Selection plus the UTxOIndex of everything not selected.
type SelectionResult struct {
	Selection
	UTxORemaining *UTxOIndex
}

// SelectionSkeleton carries everything a CostFunc needs to price a
// selection before its change quantities are known: input count, the
// target outputs, the predicted per-position change asset sets (not
// quantities), and the reward withdrawal amount.
type SelectionSkeleton struct {
	InputCount       int
	Outputs          []assets.TokenBundle
	ChangeAssetSets  []assets.TokenMap
	RewardWithdrawal assets.Coin
}

// CostFunc prices a SelectionSkeleton under a Constraints implementation.
type CostFunc func(cs Constraints, skeleton SelectionSkeleton) assets.Coin

// DefaultCostFunc is the natural CostFunc derived directly from a
// Constraints implementation: base cost, plus per-input cost, plus the
// cost of every target output, plus the cost of an output shaped like each
// predicted change position (priced at zero coin, since quantities are not
// yet known), plus the reward-withdrawal cost.
func DefaultCostFunc(cs Constraints, skeleton SelectionSkeleton) assets.Coin {
	cost := cs.BaseCost().Add(mulCoin(cs.InputCost(), skeleton.InputCount))

	for _, o := range skeleton.Outputs {
		cost = cost.Add(cs.OutputCost(o))
	}
	for _, changeAssets := range skeleton.ChangeAssetSets {
		cost = cost.Add(cs.OutputCost(assets.TokenBundle{Tokens: changeAssets}))
	}

	return cost.Add(cs.RewardWithdrawalCost(skeleton.RewardWithdrawal))
}

func mulCoin(c assets.Coin, n int) assets.Coin {
	return assets.Coin(int64(c) * int64(n))
}

// lens drives one dimension (ada or one asset) of the round-robin
// selection loop. It is the target-language re-architecture of the
// source's three-closure SelectionLens: one small interface,
// one implementation per dimension, instead of a bag of closures.
type lens interface {
	// current returns this dimension's quantity already held by st.selected
	// (plus, for the coin dimension, any extra coin source).
	current(st *workingState) uint64

	// minimum returns this dimension's quantity in the required balance.
	minimum() uint64

	// peek samples one more candidate entry from st.leftover matching this
	// dimension's filter, removing it from st.leftover. It returns the
	// candidate and its contribution to this dimension, or ok=false if no
	// candidate matches. A rejected candidate must be reinserted into
	// st.leftover by the caller.
	peek(st *workingState, rng Source) (candidate UTxOEntry, contribution uint64, ok bool)
}

// workingState is the engine's private, mutable selection state. It is
// never observable outside a single PerformSelection/Create/Extend call.
type workingState struct {
	selected *UTxOIndex
	leftover *UTxOIndex
	extra    assets.Coin
	limit    SelectionLimit
}

type coinLens struct {
	requiredCoin assets.Coin
}

func (l coinLens) minimum() uint64 { return l.requiredCoin.Uint64() }

func (l coinLens) current(st *workingState) uint64 {
	return st.selected.Balance().Coin.Add(st.extra).Uint64()
}

func (l coinLens) peek(st *workingState, rng Source) (UTxOEntry, uint64, bool) {
	if entry, ok := st.leftover.SelectRandom(WithAdaOnly, assets.AssetID{}, rng); ok {
		return entry, entry.Bundle.Coin.Uint64(), true
	}
	if entry, ok := st.leftover.SelectRandom(Any, assets.AssetID{}, rng); ok {
		return entry, entry.Bundle.Coin.Uint64(), true
	}
	return UTxOEntry{}, 0, false
}

type assetLens struct {
	id       assets.AssetID
	required assets.TokenQuantity
}

func (l assetLens) minimum() uint64 { return l.required }

func (l assetLens) current(st *workingState) uint64 {
	return st.selected.Balance().Tokens.Get(l.id)
}

func (l assetLens) peek(st *workingState, rng Source) (UTxOEntry, uint64, bool) {
	entry, ok := st.leftover.SelectRandom(WithAsset, l.id, rng)
	if !ok {
		return UTxOEntry{}, 0, false
	}
	return entry, entry.Bundle.Tokens.Get(l.id), true
}

func distance(a, b uint64) uint64 {
	if a < b {
		return b - a
	}
	return a - b
}

// roundRobinStep runs one step of one lens:
// unconditional accept while below minimum, otherwise accept only if doing
// so brings current closer to the target 2*minimum, else reject and signal
// the lens should be dropped from the rotation.
func roundRobinStep(l lens, st *workingState, rng Source) bool {
	if !st.limit.Allows(st.selected.Size()) {
		return false
	}

	current := l.current(st)
	minimum := l.minimum()

	candidate, contribution, ok := l.peek(st, rng)
	if !ok {
		return false
	}

	if current < minimum {
		log.Tracef("round-robin: accepting %v below minimum (current=%d min=%d)",
			candidate.ID, current, minimum)
		st.selected.Insert(candidate.ID, candidate.Bundle)
		return true
	}

	target := 2 * minimum
	if distance(current+contribution, target) < distance(current, target) {
		log.Tracef("round-robin: accepting %v, improves distance to target %d",
			candidate.ID, target)
		st.selected.Insert(candidate.ID, candidate.Bundle)
		return true
	}

	log.Tracef("round-robin: rejecting %v, dropping lens from rotation", candidate.ID)
	st.leftover.Insert(candidate.ID, candidate.Bundle)
	return false
}

// runRoundRobin drives every lens in rotation until each has dropped out.
func runRoundRobin(st *workingState, lenses []lens, rng Source) {
	active := make([]lens, len(lenses))
	copy(active, lenses)

	for len(active) > 0 {
		next := active[:0]
		for _, l := range active {
			if roundRobinStep(l, st, rng) {
				next = append(next, l)
			}
		}
		active = next
	}
}

func requiredLenses(required assets.TokenBundle, extra assets.Coin) []lens {
	lenses := []lens{coinLens{requiredCoin: required.Coin}}
	for _, entry := range required.Tokens.Flat() {
		lenses = append(lenses, assetLens{id: entry.ID, required: entry.Quantity})
	}
	return lenses
}

// checkBalance reports the BalanceInsufficientError for the given
// available/required bundles, or nil if available covers required.
func checkBalance(available, required assets.TokenBundle) error {
	if required.Leq(available) {
		return nil
	}
	return BalanceInsufficientError{Available: available, Required: required}
}

// checkMinCoinValues implements Phase A's second check: every target
// output's coin must meet its own asset set's minimum ada.
func checkMinCoinValues(cs Constraints, outputs []assets.TokenBundle) error {
	var violations []MinCoinViolation
	for _, o := range outputs {
		min := cs.MinAdaFor(o.GetAssets())
		if o.Coin < min {
			violations = append(violations, MinCoinViolation{Output: o, ExpectedMin: min})
		}
	}
	if len(violations) > 0 {
		return InsufficientMinCoinValuesError{Violations: violations}
	}
	return nil
}

// predictChangeShape runs Phase C: MakeChange with zero cost and zero
// minimum ada, which by construction of the caller (balance already
// checked) is guaranteed to succeed, and pins down len(change) and each
// position's asset set.
func predictChangeShape(inputs []assets.TokenBundle, outputs []assets.TokenBundle, extra assets.Coin) []assets.TokenMap {
	predicted, err := MakeChange(MakeChangeArgs{
		MinAdaFor:   func([]assets.AssetID) assets.Coin { return 0 },
		ExtraSource: extra,
		Inputs:      inputs,
		Outputs:     outputs,
	})
	if err != nil {
		invariantf("change-shape prediction failed despite a pre-validated balance: %v", err)
	}

	shapes := make([]assets.TokenMap, len(predicted))
	for i, b := range predicted {
		shapes[i] = b.Tokens
	}
	return shapes
}

// computeChangeAndFee runs Phases C and D over a fixed set of inputs: it
// predicts the change shape, prices the resulting skeleton, and settles
// the final change and fee. It does not draw additional inputs on
// UnableToConstructChangeError; callers that can supply more inputs (the
// engine's round-robin loop) retry themselves.
func computeChangeAndFee(cs Constraints, costFor CostFunc, inputs []assets.TokenBundle,
	outputs []assets.TokenBundle, withdrawal assets.Coin) ([]assets.TokenBundle, assets.Coin, error) {

	shape := predictChangeShape(inputs, outputs, withdrawal)

	skeleton := SelectionSkeleton{
		InputCount:       len(inputs),
		Outputs:          outputs,
		ChangeAssetSets:  shape,
		RewardWithdrawal: withdrawal,
	}
	cost := costFor(cs, skeleton)

	change, err := MakeChange(MakeChangeArgs{
		MinAdaFor:    cs.MinAdaFor,
		RequiredCost: cost,
		ExtraSource:  withdrawal,
		Inputs:       inputs,
		Outputs:      outputs,
	})
	if err != nil {
		return nil, 0, err
	}

	return change, cost, nil
}

func bundlesOf(entries []UTxOEntry) []assets.TokenBundle {
	out := make([]assets.TokenBundle, len(entries))
	for i, e := range entries {
		out[i] = e.Bundle
	}
	return out
}

// Create builds a Selection from a fixed, non-empty list of inputs with no
// further search. It is used directly by
// the migration planner both to seed a selection around a supporter and to
// test whether a single entry can stand alone (categorize_utxo).
func Create(cs Constraints, withdrawal assets.Coin, inputs []UTxOEntry) (*Selection, error) {
	if len(inputs) == 0 {
		invariantf("Create called with no inputs")
	}

	outputs := []assets.TokenBundle{assets.FromCoin(cs.MinAdaFor(nil))}

	if err := checkBalance(assets.SumBundles(bundlesOf(inputs)...).Add(assets.FromCoin(withdrawal)),
		assets.SumBundles(outputs...)); err != nil {
		return nil, err
	}

	change, fee, err := computeChangeAndFee(cs, DefaultCostFunc, bundlesOf(inputs), outputs, withdrawal)
	if err != nil {
		return nil, err
	}

	return &Selection{
		Inputs:           append([]UTxOEntry(nil), inputs...),
		Outputs:          outputs,
		Change:           change,
		Fee:              fee,
		RewardWithdrawal: withdrawal,
	}, nil
}

// estimatedSize is the encoded size of a selection's inputs and target
// outputs, without its change outputs. Extend uses it to reject a
// transaction that already overflows MaxTxSize before doing the (more
// expensive) change-construction work, then adds the change outputs' sizes
// once they are known.
func estimatedSize(cs Constraints, inputCount int, outputs []assets.TokenBundle) int {
	size := cs.BaseSize() + cs.InputSize()*inputCount
	for _, o := range outputs {
		size += cs.OutputSize(o)
	}
	return size
}

// Extend adds one more input to an existing Selection, recomputing change
// and fee. It returns SelectionFullError
// if doing so would overflow MaxTxSize.
func Extend(cs Constraints, sel *Selection, input UTxOEntry) (*Selection, error) {
	newCount := len(sel.Inputs) + 1

	if required := estimatedSize(cs, newCount, sel.Outputs); required > cs.MaxTxSize() {
		return nil, SelectionFullError{RequiredSize: required, MaximumSize: cs.MaxTxSize()}
	}

	newInputs := append(append([]UTxOEntry(nil), sel.Inputs...), input)

	change, fee, err := computeChangeAndFee(cs, DefaultCostFunc, bundlesOf(newInputs), sel.Outputs, sel.RewardWithdrawal)
	if err != nil {
		return nil, err
	}

	required := estimatedSize(cs, newCount, sel.Outputs)
	for _, c := range change {
		required += cs.OutputSize(c)
	}
	if required > cs.MaxTxSize() {
		return nil, SelectionFullError{RequiredSize: required, MaximumSize: cs.MaxTxSize()}
	}

	return &Selection{
		Inputs:           newInputs,
		Outputs:          sel.Outputs,
		Change:           change,
		Fee:              fee,
		RewardWithdrawal: sel.RewardWithdrawal,
	}, nil
}

// Correctness is the result of Selection.Check.
type Correctness struct {
	Violations []string
}

// OK reports whether no violation was found.
func (c Correctness) OK() bool { return len(c.Violations) == 0 }

// Check validates every invariant placed on a Selection:
// balance preservation, per-output and per-change validity, and overall
// transaction size.
func Check(cs Constraints, sel *Selection) Correctness {
	var violations []string

	inputTotal := assets.SumBundles(bundlesOf(sel.Inputs)...).Add(assets.FromCoin(sel.RewardWithdrawal))
	outputTotal := assets.SumBundles(sel.Outputs...).Add(assets.SumBundles(sel.Change...)).Add(assets.FromCoin(sel.Fee))
	if !inputTotal.Equal(outputTotal) {
		violations = append(violations, "balance preservation violated")
	}

	for _, o := range sel.Outputs {
		if !OutputHasValidSize(cs, o) {
			violations = append(violations, "output exceeds max output size")
		}
		if !OutputHasValidTokenQuantities(cs, o) {
			violations = append(violations, "output has an over-quantity token")
		}
		if o.Coin < cs.MinAdaFor(o.GetAssets()) {
			violations = append(violations, "output below minimum ada")
		}
	}
	for _, c := range sel.Change {
		if !OutputHasValidSize(cs, c) {
			violations = append(violations, "change output exceeds max output size")
		}
		if !OutputHasValidTokenQuantities(cs, c) {
			violations = append(violations, "change output has an over-quantity token")
		}
		if c.Coin < cs.MinAdaFor(c.GetAssets()) {
			violations = append(violations, "change output below minimum ada")
		}
	}

	totalSize := cs.BaseSize() + cs.InputSize()*len(sel.Inputs)
	for _, o := range sel.Outputs {
		totalSize += cs.OutputSize(o)
	}
	for _, c := range sel.Change {
		totalSize += cs.OutputSize(c)
	}
	if totalSize > cs.MaxTxSize() {
		violations = append(violations, "transaction exceeds max tx size")
	}

	minFee := DefaultCostFunc(cs, SelectionSkeleton{
		InputCount:       len(sel.Inputs),
		Outputs:          sel.Outputs,
		ChangeAssetSets:  changeAssetSets(sel.Change),
		RewardWithdrawal: sel.RewardWithdrawal,
	})
	if sel.Fee < minFee {
		violations = append(violations, "fee below computed cost")
	}

	return Correctness{Violations: violations}
}

func changeAssetSets(change []assets.TokenBundle) []assets.TokenMap {
	out := make([]assets.TokenMap, len(change))
	for i, c := range change {
		out[i] = c.Tokens
	}
	return out
}

// PerformSelection is the engine's top-level entry point.
func PerformSelection(cs Constraints, costFor CostFunc, criteria SelectionCriteria, rng Source) (*SelectionResult, error) {
	if len(criteria.OutputsToCover) == 0 {
		invariantf("PerformSelection called with no outputs to cover")
	}
	if costFor == nil {
		costFor = DefaultCostFunc
	}

	required := assets.SumBundles(criteria.OutputsToCover...)
	available := criteria.UTxOAvailable.Balance().Add(assets.FromCoin(criteria.ExtraCoinSource))

	// Phase A.
	if err := checkBalance(available, required); err != nil {
		return nil, err
	}
	if err := checkMinCoinValues(cs, criteria.OutputsToCover); err != nil {
		return nil, err
	}

	// Phase B.
	st := &workingState{
		selected: NewUTxOIndex(nil),
		leftover: criteria.UTxOAvailable,
		extra:    criteria.ExtraCoinSource,
		limit:    criteria.SelectionLimit,
	}
	lenses := requiredLenses(required, criteria.ExtraCoinSource)
	runRoundRobin(st, lenses, rng)

	selectedBalance := st.selected.Balance().Add(assets.FromCoin(criteria.ExtraCoinSource))
	if !required.Leq(selectedBalance) {
		return nil, SelectionInsufficientError{
			InputsSelected: st.selected.Size(),
			Required:       required,
		}
	}

	// Phases C & D, with the ada-only-input retry from Phase D.
	for {
		inputs := bundlesOf(st.selected.Entries())
		change, fee, err := computeChangeAndFee(cs, costFor, inputs, criteria.OutputsToCover, criteria.ExtraCoinSource)
		if err == nil {
			return &SelectionResult{
				Selection: Selection{
					Inputs:           st.selected.Entries(),
					Outputs:          criteria.OutputsToCover,
					Change:           change,
					Fee:              fee,
					RewardWithdrawal: criteria.ExtraCoinSource,
				},
				UTxORemaining: st.leftover,
			}, nil
		}

		if _, ok := err.(UnableToConstructChangeError); !ok {
			return nil, err
		}

		entry, ok := st.leftover.SelectRandom(WithAdaOnly, assets.AssetID{}, rng)
		if !ok || !st.limit.Allows(st.selected.Size()) {
			return nil, err
		}
		log.Debugf("phase D: change construction failed, drawing extra ada-only input %v", entry.ID)
		st.selected.Insert(entry.ID, entry.Bundle)
	}
}

// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"fmt"

	"github.com/1pcpool/cardano-wallet/internal/assets"
)

// BalanceInsufficientError is returned when the aggregated available UTxO
// balance cannot cover the aggregated required output balance, regardless
// of input limit.
type BalanceInsufficientError struct {
	Available assets.TokenBundle
	Required  assets.TokenBundle
}

func (e BalanceInsufficientError) Error() string {
	return fmt.Sprintf("coinselect: insufficient balance: available=%+v required=%+v",
		e.Available, e.Required)
}

// SelectionInsufficientError is returned when the configured input limit
// prevents the engine from reaching the required balance.
type SelectionInsufficientError struct {
	InputsSelected int
	Required       assets.TokenBundle
}

func (e SelectionInsufficientError) Error() string {
	return fmt.Sprintf("coinselect: selection limit reached with %d inputs, "+
		"still short of required=%+v", e.InputsSelected, e.Required)
}

// MinCoinViolation names one output whose coin amount falls below the
// minimum ada its asset set requires.
type MinCoinViolation struct {
	Output      assets.TokenBundle
	ExpectedMin assets.Coin
}

// InsufficientMinCoinValuesError is returned when one or more target
// outputs carry less ada than MinAdaFor requires for their asset set.
type InsufficientMinCoinValuesError struct {
	Violations []MinCoinViolation
}

func (e InsufficientMinCoinValuesError) Error() string {
	return fmt.Sprintf("coinselect: %d output(s) below minimum ada", len(e.Violations))
}

// UnableToConstructChangeError is returned when change cannot be funded
// even after draining every available ada-only input. Missing is the
// smallest additional coin that would have allowed the change to succeed.
type UnableToConstructChangeError struct {
	Missing assets.Coin
}

func (e UnableToConstructChangeError) Error() string {
	return fmt.Sprintf("coinselect: unable to construct change, missing %d lovelace", e.Missing)
}

// SelectionFullError is returned by Selection.Extend when adding the next
// input would overflow the transaction's maximum encoded size.
type SelectionFullError struct {
	RequiredSize int
	MaximumSize  int
}

func (e SelectionFullError) Error() string {
	return fmt.Sprintf("coinselect: selection full: required size %d exceeds maximum %d",
		e.RequiredSize, e.MaximumSize)
}

// invariantf terminates the process with a diagnostic. It is used only for
// precondition violations that indicate a programming error, not a
// reachable runtime condition: MakeChange's preconditions (sum(outputs) <=
// sum(inputs)+extra, sum(outputs).Coin > 0, at least one target output),
// Create called with no inputs, PerformSelection called with no outputs,
// and a failed change-shape prediction over an already-checked balance.
func invariantf(format string, args ...any) {
	panic(fmt.Sprintf("coinselect: precondition violated: "+format, args...))
}

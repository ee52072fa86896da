// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

// TokenBundle is an ada coin paired with a map of native-asset quantities.
// The zero value is the empty bundle (0, ∅).
type TokenBundle struct {
	Coin   Coin
	Tokens TokenMap
}

// FromCoin lifts a bare Coin into a TokenBundle with no native assets.
func FromCoin(c Coin) TokenBundle {
	return TokenBundle{Coin: c}
}

// GetCoin returns the bundle's ada component.
func (b TokenBundle) GetCoin() Coin {
	return b.Coin
}

// SetCoin returns a copy of b with its ada component replaced by c.
func (b TokenBundle) SetCoin(c Coin) TokenBundle {
	return TokenBundle{Coin: c, Tokens: b.Tokens}
}

// Add returns the component-wise sum of b and o.
func (b TokenBundle) Add(o TokenBundle) TokenBundle {
	return TokenBundle{
		Coin:   b.Coin.Add(o.Coin),
		Tokens: b.Tokens.Add(o.Tokens),
	}
}

// Subtract returns (b-o, true) iff o <= b component-wise (coin and every
// asset quantity), else (TokenBundle{}, false).
func (b TokenBundle) Subtract(o TokenBundle) (TokenBundle, bool) {
	coin, ok := b.Coin.SafeSub(o.Coin)
	if !ok {
		return TokenBundle{}, false
	}
	tokens, ok := b.Tokens.Subtract(o.Tokens)
	if !ok {
		return TokenBundle{}, false
	}
	return TokenBundle{Coin: coin, Tokens: tokens}, true
}

// SubtractUnchecked returns b-o without validating o <= b. Callers must
// have already proven the subtraction is safe (e.g. via Leq); violating
// that precondition is a programming error.
func (b TokenBundle) SubtractUnchecked(o TokenBundle) TokenBundle {
	result, ok := b.Subtract(o)
	if !ok {
		panic("assets: SubtractUnchecked called without a proven b >= o")
	}
	return result
}

// Leq reports whether b <= o component-wise.
func (b TokenBundle) Leq(o TokenBundle) bool {
	return b.Coin.Leq(o.Coin) && b.Tokens.Leq(o.Tokens)
}

// Equal reports whether b and o hold the same coin and the same token
// quantities.
func (b TokenBundle) Equal(o TokenBundle) bool {
	return b.Coin == o.Coin && b.Tokens.Equal(o.Tokens)
}

// GetAssets returns the set of AssetIDs present in b's token map with
// non-zero quantity.
func (b TokenBundle) GetAssets() []AssetID {
	return b.Tokens.Assets()
}

// SumBundles folds Add over bs, starting from the empty bundle.
func SumBundles(bs ...TokenBundle) TokenBundle {
	var total TokenBundle
	for _, b := range bs {
		total = total.Add(b)
	}
	return total
}

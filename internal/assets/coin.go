// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package assets implements the value model shared by the coin selection
// and migration planning core: coins, native-asset quantities, asset
// identifiers, token maps and token bundles, along with the arithmetic
// invariants the rest of the module relies on.
package assets

import (
	"errors"
	"fmt"
)

// MaxCoin is the protocol maximum lovelace quantity a single Coin may hold:
// 45 billion ada expressed in lovelace (1 ada = 1e6 lovelace).
const MaxCoin = 45_000_000_000_000_000

// ErrCoinNegative is returned by NewCoin when given a negative quantity.
var ErrCoinNegative = errors.New("assets: coin value is negative")

// ErrCoinOverflow is returned by NewCoin when a quantity would exceed
// MaxCoin. (Add panics on overflow instead of returning an error.)
var ErrCoinOverflow = errors.New("assets: coin value exceeds protocol maximum")

// Coin is a non-negative lovelace quantity bounded by MaxCoin.
type Coin int64

// ZeroCoin is the additive identity.
const ZeroCoin Coin = 0

// NewCoin validates and constructs a Coin from a raw lovelace quantity.
func NewCoin(lovelace int64) (Coin, error) {
	if lovelace < 0 {
		return 0, ErrCoinNegative
	}
	if lovelace > MaxCoin {
		return 0, ErrCoinOverflow
	}
	return Coin(lovelace), nil
}

// Add returns c+o. It panics if the result would exceed MaxCoin: both
// operands are already-validated Coin values, so overflow here is a
// programming error, not an expected runtime outcome.
func (c Coin) Add(o Coin) Coin {
	sum := c + o
	if sum > MaxCoin {
		panic(fmt.Sprintf("assets: Coin.Add overflow: %d + %d", c, o))
	}
	return sum
}

// SafeSub returns (c-o, true) when c >= o, else (0, false).
func (c Coin) SafeSub(o Coin) (Coin, bool) {
	if c < o {
		return 0, false
	}
	return c - o, true
}

// Distance returns |c-o|.
func (c Coin) Distance(o Coin) Coin {
	if c < o {
		return o - c
	}
	return c - o
}

// Leq reports whether c <= o.
func (c Coin) Leq(o Coin) bool {
	return c <= o
}

// Uint64 returns the coin's value as a uint64, for use in the round-robin
// lens arithmetic which treats both coin and asset quantities uniformly.
func (c Coin) Uint64() uint64 {
	return uint64(c)
}

// CoinFromUint64 is the inverse of Uint64, used when folding lens
// arithmetic results back into a Coin.
func CoinFromUint64(v uint64) Coin {
	return Coin(v)
}

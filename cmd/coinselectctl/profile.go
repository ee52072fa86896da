// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/1pcpool/cardano-wallet/internal/assets"
	"github.com/1pcpool/cardano-wallet/internal/coinselect"
)

// jsonProtocolParams is the wire shape of a protocol parameter profile,
// mirroring coinselect.ProtocolParams field-for-field.
type jsonProtocolParams struct {
	TxFeeFixed        int64  `json:"tx_fee_fixed"`
	TxFeePerByte      int64  `json:"tx_fee_per_byte"`
	UtxoCostPerByte   int64  `json:"utxo_cost_per_byte"`
	MaxTxSizeBytes    int    `json:"max_tx_size_bytes"`
	MaxValueSizeBytes int    `json:"max_value_size_bytes"`
	MaxTokenQuantity  uint64 `json:"max_token_quantity"`
}

func loadProtocolParams(path string) (coinselect.ProtocolParams, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return coinselect.ProtocolParams{}, fmt.Errorf("reading profile: %w", err)
	}

	var p jsonProtocolParams
	if err := json.Unmarshal(raw, &p); err != nil {
		return coinselect.ProtocolParams{}, fmt.Errorf("parsing profile: %w", err)
	}

	return coinselect.ProtocolParams{
		TxFeeFixed:        assets.Coin(p.TxFeeFixed),
		TxFeePerByte:      assets.Coin(p.TxFeePerByte),
		UtxoCostPerByte:   assets.Coin(p.UtxoCostPerByte),
		MaxTxSizeBytes:    p.MaxTxSizeBytes,
		MaxValueSizeBytes: p.MaxValueSizeBytes,
		MaxTokenQuantity:  p.MaxTokenQuantity,
	}, nil
}

func newLinearConstraintsFrom(params coinselect.ProtocolParams) coinselect.LinearConstraints {
	return coinselect.NewLinearConstraints(params)
}

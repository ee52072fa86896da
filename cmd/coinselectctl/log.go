// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/1pcpool/cardano-wallet/internal/coinselect"
)

// useStderrLogger wires internal/coinselect's package logger to a btclog
// backend writing to stderr at debug level, for -v runs.
func useStderrLogger() {
	backend := btclog.NewBackend(os.Stderr)
	logger := backend.Logger("CSEL")
	logger.SetLevel(btclog.LevelDebug)
	coinselect.UseLogger(logger)
}

// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// coinselectctl is a standalone driver for the coin selection and
// migration planning core: it loads a protocol parameter profile and a
// UTxO snapshot, runs one perform_selection or create_plan call, and
// prints the resulting Selection or MigrationPlan as JSON. It never
// appears as an import of internal/coinselect or internal/assets from the
// other side: it is a pure consumer exercising the core as a library.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

var newlineBytes = []byte{'\n'}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Stderr.Write(newlineBytes)
	os.Exit(1)
}

// Flags.
var opts = struct {
	Mode           string `long:"mode" description:"Operation to run: select or migrate" required:"true"`
	ProfilePath    string `long:"profile" description:"Path to a protocol parameter profile JSON file" required:"true"`
	UTxODBPath     string `long:"utxo-db" description:"Path to a SQLite database with a utxos table"`
	UTxOFixture    string `long:"utxo-fixture" description:"Path to a UTxO snapshot JSON fixture, used if -utxo-db is unset"`
	OutputsFixture string `long:"outputs" description:"Path to a target-outputs JSON fixture (select mode only)"`
	Withdrawal     int64  `long:"withdrawal" description:"Reward withdrawal amount in lovelace"`
	Seed           uint64 `long:"seed" description:"Seed for the random input sampler"`
	Verbose        bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}{
	Seed: 1,
}

func init() {
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	if opts.Mode != "select" && opts.Mode != "migrate" {
		fatalf("-mode must be `select` or `migrate`, got %q", opts.Mode)
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	if opts.Verbose {
		useStderrLogger()
	}

	params, err := loadProtocolParams(opts.ProfilePath)
	if err != nil {
		fatalf("loading profile: %v", err)
	}
	cs := newLinearConstraintsFrom(params)

	snapshot, err := loadUTxOSnapshot(opts.UTxODBPath, opts.UTxOFixture)
	if err != nil {
		fatalf("loading utxo snapshot: %v", err)
	}

	switch opts.Mode {
	case "select":
		return runSelect(cs, snapshot)
	case "migrate":
		return runMigrate(cs, snapshot)
	default:
		fatalf("unknown mode %q", opts.Mode)
		return 1
	}
}

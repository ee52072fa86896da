// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/1pcpool/cardano-wallet/internal/coinselect"
	_ "modernc.org/sqlite"
)

// loadUTxOSnapshot builds a UTxOIndex from a SQLite database (a utxos
// table with columns input_id, coin, assets_json) when dbPath is set, or
// from a JSON fixture file otherwise.
func loadUTxOSnapshot(dbPath, fixturePath string) (*coinselect.UTxOIndex, error) {
	if dbPath != "" {
		return loadUTxOSnapshotFromDB(dbPath)
	}
	if fixturePath != "" {
		return loadUTxOSnapshotFromFixture(fixturePath)
	}
	return nil, fmt.Errorf("neither -utxo-db nor -utxo-fixture was given")
}

func loadUTxOSnapshotFromDB(dbPath string) (*coinselect.UTxOIndex, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT input_id, coin, assets_json FROM utxos`)
	if err != nil {
		return nil, fmt.Errorf("querying utxos: %w", err)
	}
	defer rows.Close()

	var entries []coinselect.UTxOEntry
	for rows.Next() {
		var id string
		var coin int64
		var assetsJSON string
		if err := rows.Scan(&id, &coin, &assetsJSON); err != nil {
			return nil, fmt.Errorf("scanning utxos row: %w", err)
		}

		var jsonAssets []jsonAsset
		if assetsJSON != "" {
			if err := json.Unmarshal([]byte(assetsJSON), &jsonAssets); err != nil {
				return nil, fmt.Errorf("utxo %s: parsing assets_json: %w", id, err)
			}
		}

		bundle, err := jsonBundle{Coin: coin, Assets: jsonAssets}.toBundle()
		if err != nil {
			return nil, fmt.Errorf("utxo %s: %w", id, err)
		}
		entries = append(entries, coinselect.UTxOEntry{ID: coinselect.InputID(id), Bundle: bundle})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coinselect.NewUTxOIndex(entries), nil
}

type jsonUTxOEntry struct {
	ID     string     `json:"id"`
	Bundle jsonBundle `json:"bundle"`
}

func loadUTxOSnapshotFromFixture(path string) (*coinselect.UTxOIndex, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading utxo fixture: %w", err)
	}

	var fixture []jsonUTxOEntry
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return nil, fmt.Errorf("parsing utxo fixture: %w", err)
	}

	entries := make([]coinselect.UTxOEntry, len(fixture))
	for i, e := range fixture {
		bundle, err := e.Bundle.toBundle()
		if err != nil {
			return nil, fmt.Errorf("utxo %s: %w", e.ID, err)
		}
		entries[i] = coinselect.UTxOEntry{ID: coinselect.InputID(e.ID), Bundle: bundle}
	}

	return coinselect.NewUTxOIndex(entries), nil
}

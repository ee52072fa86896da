// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONBundleRoundTrip(t *testing.T) {
	jb := jsonBundle{
		Coin: 1000000,
		Assets: []jsonAsset{
			{
				Policy:   "00112233445566778899aabbccddeeff00112233445566778899aabb",
				Name:     "74657374",
				Quantity: 42,
			},
		},
	}

	b, err := jb.toBundle()
	require.NoError(t, err)
	require.Equal(t, int64(1000000), int64(b.Coin))
	require.Equal(t, 1, b.Tokens.Len())

	back := bundleToJSON(b)
	require.Equal(t, jb.Coin, back.Coin)
	require.Len(t, back.Assets, 1)
	require.Equal(t, jb.Assets[0].Policy, back.Assets[0].Policy)
	require.Equal(t, jb.Assets[0].Name, back.Assets[0].Name)
	require.Equal(t, jb.Assets[0].Quantity, back.Assets[0].Quantity)
}

func TestJSONBundleRejectsBadPolicyHex(t *testing.T) {
	jb := jsonBundle{Coin: 1, Assets: []jsonAsset{{Policy: "zz", Name: "", Quantity: 1}}}
	_, err := jb.toBundle()
	require.Error(t, err)
}

func TestJSONBundleRejectsShortPolicy(t *testing.T) {
	jb := jsonBundle{Coin: 1, Assets: []jsonAsset{{Policy: "aa", Name: "", Quantity: 1}}}
	_, err := jb.toBundle()
	require.Error(t, err)
}

func TestJSONBundleRejectsOverlongName(t *testing.T) {
	jb := jsonBundle{
		Coin: 1,
		Assets: []jsonAsset{{
			Policy:   "00112233445566778899aabbccddeeff00112233445566778899aabb",
			Name:     "000000000000000000000000000000000000000000000000000000000000000000",
			Quantity: 1,
		}},
	}
	_, err := jb.toBundle()
	require.Error(t, err)
}

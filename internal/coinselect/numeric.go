// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "sort"

// PartitionNatural distributes n over len(weights) positions in proportion
// to weights, so that the shares sum exactly to n. Each position first gets
// floor(n*weight[i]/sum(weights)); the residual is then handed out one unit
// at a time to the positions with the largest fractional remainder,
// breaking ties by ascending index. If every weight is zero, the
// distribution is all zeros.
func PartitionNatural(n uint64, weights []uint64) []uint64 {
	shares := make([]uint64, len(weights))
	if len(weights) == 0 || n == 0 {
		return shares
	}

	var totalWeight uint64
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight == 0 {
		return shares
	}

	type remainder struct {
		index int
		num   uint64 // remainder numerator over totalWeight
	}
	remainders := make([]remainder, len(weights))

	var distributed uint64
	for i, w := range weights {
		product := n * w
		shares[i] = product / totalWeight
		remainders[i] = remainder{index: i, num: product % totalWeight}
		distributed += shares[i]
	}

	residual := n - distributed

	sort.Slice(remainders, func(i, j int) bool {
		if remainders[i].num != remainders[j].num {
			return remainders[i].num > remainders[j].num
		}
		return remainders[i].index < remainders[j].index
	})

	for i := uint64(0); i < residual; i++ {
		shares[remainders[i].index]++
	}

	return shares
}

// PadCoalesce reshapes values to exactly targetLen entries while
// preserving their total sum. When len(values) > targetLen, the smallest
// entries are repeatedly merged (summed) together until the count reaches
// targetLen, so larger-variance sets of values end up coalesced into fewer
// positions. When len(values) < targetLen, the slice is padded with zeros.
// When len(values) == targetLen, values is returned as-is (copied).
func PadCoalesce(values []uint64, targetLen int) []uint64 {
	out := make([]uint64, len(values))
	copy(out, values)

	if len(out) == targetLen {
		return out
	}

	if len(out) < targetLen {
		for len(out) < targetLen {
			out = append(out, 0)
		}
		return out
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	for len(out) > targetLen {
		// Merge the two smallest entries into one and re-sort.
		out[1] += out[0]
		out = out[1:]
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	}

	return out
}

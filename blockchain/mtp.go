// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "sort"

// medianTimePastWindow is the number of most-recent ancestors (including
// the entry itself) the median-time-past oracle considers.
const medianTimePastWindow = 11

// calcMedianTimePast returns the median nTime of the medianTimePastWindow
// most recent ancestors ending at node, inclusive. Fewer are used once the
// chain is shorter than the window. Digishield v3 uses this, rather than a
// block's raw nTime, at both ends of its actual-timespan measurement to
// resist timestamp manipulation across a reorg.
func calcMedianTimePast(node HeaderCtx) int64 {
	timestamps := make([]int64, 0, medianTimePastWindow)
	for n := node; n != nil && len(timestamps) < medianTimePastWindow; n = n.Parent() {
		timestamps = append(timestamps, n.Timestamp().Unix())
	}

	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	// An even-length window (only possible near the tip of a very young
	// chain) takes the lower of the two middle values.
	return timestamps[(len(timestamps)-1)/2]
}

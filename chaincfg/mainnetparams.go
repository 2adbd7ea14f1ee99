// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/litecoinz-project/litecoinzd/math/uint256"

// MainNetParams returns the network parameters for litecoinzd's main
// network. PowLimit is 2^243 - 1, giving Equihash (200,9) plenty of
// headroom at launch difficulty.
func MainNetParams() *Params {
	return &Params{
		Name: "mainnet",
		Net:  Main,

		PowLimit:                    uint256.One.Lsh(243).Sub(uint256.One),
		PowNoRetargeting:            false,
		PowAllowMinDifficultyBlocks: false,

		ZawyLWMAHeight:     139200,
		EquihashForkHeight: 0,

		DigishieldAveragingWindow: 17,
		DigishieldTargetSpacing:   150,

		PowTargetSpacing:        150,
		ZawyLwmaAveragingWindow: 45,
		ZawyLwmaAdjustedWeight:  3450,
		ZawyLwmaMinDenominator:  10,

		ZawyLwmaSolvetimeLimitation: true,
	}
}

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/litecoinz-project/litecoinzd/math/uint256"

// RegNetParams returns the network parameters for litecoinzd's regression
// test network. PowNoRetargeting is set so every call to the retarget
// engine returns the parent's nBits unchanged, giving test harnesses a
// fixed, predictable difficulty.
func RegNetParams() *Params {
	return &Params{
		Name: "regtest",
		Net:  Regtest,

		PowLimit:                    uint256.One.Lsh(251).Sub(uint256.One),
		PowNoRetargeting:            true,
		PowAllowMinDifficultyBlocks: true,

		ZawyLWMAHeight:     150,
		EquihashForkHeight: 1,

		DigishieldAveragingWindow: 17,
		DigishieldTargetSpacing:   150,

		PowTargetSpacing:        150,
		ZawyLwmaAveragingWindow: 45,
		ZawyLwmaAdjustedWeight:  3450,
		ZawyLwmaMinDenominator:  10,

		ZawyLwmaSolvetimeLimitation: true,
	}
}

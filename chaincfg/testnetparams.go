// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/litecoinz-project/litecoinzd/math/uint256"

// TestNetParams returns the network parameters for litecoinzd's test
// network. It allows min-difficulty blocks and switches to LWMA much
// earlier than mainnet to keep the testnet's history short.
func TestNetParams() *Params {
	return &Params{
		Name: "testnet",
		Net:  Test,

		PowLimit:                    uint256.One.Lsh(251).Sub(uint256.One),
		PowNoRetargeting:            false,
		PowAllowMinDifficultyBlocks: true,

		ZawyLWMAHeight:     2500,
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

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/litecoinz-project/litecoinzd/math/uint256"

// Network identifies one of the three networks a Params bundle can describe.
type Network uint8

// The set of networks the retarget engine treats specially. Only Test
// and Regtest ever flip the min-difficulty escapes or the fork-reset
// window's non-mainnet branch.
const (
	Main Network = iota
	Test
	Regtest
)

// String returns the human-readable name of n.
func (n Network) String() string {
	switch n {
	case Main:
		return "main"
	case Test:
		return "test"
	case Regtest:
		return "regtest"
	default:
		return "unknown"
	}
}

// Params is the immutable, per-network configuration bundle the retarget
// engine and header validator are evaluated against. Every instance is
// built fresh by one of the MainNetParams/TestNetParams/RegNetParams
// constructors below rather than shared as a package-level var, so a test
// (or a caller preparing a synthetic scenario) can freely mutate its own
// copy.
type Params struct {
	// Name is the network's canonical name and Net its identifying tag.
	Name string
	Net  Network

	// PowLimit is the highest (easiest) target this network ever permits.
	PowLimit uint256.Uint256

	// PowNoRetargeting short-circuits every retarget call to return the
	// parent's nBits unchanged. Used by regtest.
	PowNoRetargeting bool

	// PowAllowMinDifficultyBlocks enables the testnet/regtest escape that
	// lets a block far behind schedule claim the easiest target.
	PowAllowMinDifficultyBlocks bool

	// ZawyLWMAHeight is the exclusive height at which the retarget engine
	// switches from Digishield v3 to Zawy LWMA.
	ZawyLWMAHeight int64

	// EquihashForkHeight is the height at which Equihash mining replaced
	// this network's pre-fork proof of work. Only consulted by the
	// non-mainnet branch of the Digishield fork-reset window; mainnet uses
	// the hard-coded historical constant digishieldMainnetForkHeight
	// instead (see difficulty.go).
	EquihashForkHeight int64

	// DigishieldAveragingWindow is the number of ancestor blocks
	// Digishield v3 averages over.
	DigishieldAveragingWindow int64

	// DigishieldTargetSpacing is the target seconds between blocks
	// Digishield v3 aims for.
	DigishieldTargetSpacing int64

	// PowTargetSpacing is the target seconds between blocks Zawy LWMA
	// aims for.
	PowTargetSpacing int64

	// ZawyLwmaAveragingWindow is the number of solvetimes Zawy LWMA
	// averages over.
	ZawyLwmaAveragingWindow int64

	// ZawyLwmaAdjustedWeight is Zawy LWMA's k factor. A chain holds its
	// target block rate when this is PowTargetSpacing*(N+1)/2 for the
	// configured averaging window N.
	ZawyLwmaAdjustedWeight int64

	// ZawyLwmaMinDenominator floors the weighted solvetime accumulator.
	ZawyLwmaMinDenominator int64

	// ZawyLwmaSolvetimeLimitation enables clamping anomalously large
	// solvetimes within the LWMA window.
	ZawyLwmaSolvetimeLimitation bool
}

// DigishieldAveragingWindowTimespan returns the target duration, in
// seconds, of the full Digishield averaging window.
func (p *Params) DigishieldAveragingWindowTimespan() int64 {
	return p.DigishieldAveragingWindow * p.DigishieldTargetSpacing
}

// DigishieldMinActualTimespan returns the lower bound of the asymmetric
// clamp applied to Digishield's dampened actual timespan: 84% of the
// target window.
func (p *Params) DigishieldMinActualTimespan() int64 {
	return (p.DigishieldAveragingWindowTimespan() * (100 - 16)) / 100
}

// DigishieldMaxActualTimespan returns the upper bound of the asymmetric
// clamp applied to Digishield's dampened actual timespan: 132% of the
// target window.
func (p *Params) DigishieldMaxActualTimespan() int64 {
	return (p.DigishieldAveragingWindowTimespan() * (100 + 32)) / 100
}

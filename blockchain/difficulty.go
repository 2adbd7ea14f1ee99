// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/litecoinz-project/litecoinzd/blockchain/standalone"
	"github.com/litecoinz-project/litecoinzd/chaincfg"
	"github.com/litecoinz-project/litecoinzd/math/uint256"
)

// digishieldMainnetForkHeight is the literal height at which mainnet's
// Digishield fork-reset window begins. It MUST stay a hard-coded constant
// rather than be replaced by chaincfg.Params.EquihashForkHeight: blocks
// already mined against this exact value depend on it for replay, and
// mainnet's real Equihash activation height is not this number.
const digishieldMainnetForkHeight = 95005

// NextWorkRequired computes the nBits the next block after parent must
// carry. parent is nil only for the genesis call, which always returns
// powLimit. candidateTime is the proposed timestamp of the block being
// built on top of parent; it is only consulted by the two networks' min-
// difficulty escape hatches.
func NextWorkRequired(parent HeaderCtx, candidateTime int64, chain ChainCtx) (uint32, error) {
	params := chain.ChainParams()

	if parent == nil {
		return standalone.EncodeCompact(params.PowLimit), nil
	}

	h := parent.Height() + 1
	if h < params.ZawyLWMAHeight {
		log.Tracef("height %d: retargeting with digishield", h)
		return calcNextRequiredDifficultyDigishield(parent, candidateTime, params)
	}
	log.Tracef("height %d: retargeting with zawy lwma", h)
	return calcNextRequiredDifficultyLWMA(parent, candidateTime, params)
}

// calcNextRequiredDifficultyDigishield implements the Digishield v3
// retarget: a dampened, asymmetrically clamped moving average over
// params.DigishieldAveragingWindow ancestors.
func calcNextRequiredDifficultyDigishield(parent HeaderCtx, candidateTime int64, params *chaincfg.Params) (uint32, error) {
	window := params.DigishieldAveragingWindow

	// Min-difficulty escape: testnet/regtest blocks that arrive far behind
	// schedule may claim the easiest target rather than stall.
	if params.PowAllowMinDifficultyBlocks &&
		candidateTime > parent.Timestamp().Unix()+6*params.DigishieldTargetSpacing {
		log.Debugf("height %d: min-difficulty escape triggered, candidate time %d stale against parent %d",
			parent.Height()+1, candidateTime, parent.Timestamp().Unix())
		return standalone.EncodeCompact(params.PowLimit), nil
	}

	// Difficulty reset window around the Equihash fork. Mainnet anchors the
	// lower edge to a literal historical height; every other network uses
	// its own configured fork height.
	h := parent.Height() + 1
	forkHeight := params.EquihashForkHeight
	if params.Net == chaincfg.Main {
		forkHeight = digishieldMainnetForkHeight
	}
	if h >= forkHeight && parent.Height() < forkHeight+window {
		log.Debugf("height %d: inside digishield fork-reset window starting at %d", h, forkHeight)
		return standalone.EncodeCompact(params.PowLimit), nil
	}

	// Walk back `window` ancestors from parent, summing their decoded
	// targets. The walk finishes one block below the averaged window; that
	// block's median time past anchors the actual-timespan measurement, so
	// a full window's worth of solvetimes lands between the two MTP
	// endpoints. Running off the front of the chain first means there is
	// not enough history yet to retarget.
	var total uint256.Uint256
	first := parent
	for i := int64(0); i < window && first != nil; i++ {
		target, _, _ := standalone.DecodeCompact(first.Bits())
		total = total.Add(target)
		first = first.Parent()
	}
	if first == nil {
		return standalone.EncodeCompact(params.PowLimit), nil
	}

	avg := total.DivUint64(uint64(window))
	firstMTP := calcMedianTimePast(first)

	if params.PowNoRetargeting {
		return parent.Bits(), nil
	}

	targetTimespan := params.DigishieldAveragingWindowTimespan()
	actual := calcMedianTimePast(parent) - firstMTP

	// Dampened actual timespan. Go's integer division on signed operands
	// already truncates toward zero, matching the required rounding rule
	// for this step without any extra adjustment.
	actual = targetTimespan + (actual-targetTimespan)/4

	minTimespan := params.DigishieldMinActualTimespan()
	maxTimespan := params.DigishieldMaxActualTimespan()
	switch {
	case actual < minTimespan:
		actual = minTimespan
	case actual > maxTimespan:
		actual = maxTimespan
	}

	// next = avg / targetTimespan; next *= actual. Performed in this order,
	// exactly as the reference algorithm does, to bound intermediate
	// magnitude.
	next := avg.DivUint64(uint64(targetTimespan)).MulUint64(uint64(actual))
	if next.GreaterThan(params.PowLimit) {
		next = params.PowLimit
	}

	bits := standalone.EncodeCompact(next)
	log.Debugf("height %d: digishield actual timespan %d (target %d), new bits %08x",
		h, actual, targetTimespan, bits)
	return bits, nil
}

// calcNextRequiredDifficultyLWMA implements Zawy's linearly weighted
// moving average retarget. The caller must only invoke this once
// parent.Height()+1 exceeds params.ZawyLwmaAveragingWindow; calling it any
// earlier is a programmer error and returns an AssertError rather than a
// numeric result.
func calcNextRequiredDifficultyLWMA(parent HeaderCtx, candidateTime int64, params *chaincfg.Params) (uint32, error) {
	n := params.ZawyLwmaAveragingWindow
	h := parent.Height() + 1
	if h <= n {
		return 0, AssertError("calcNextRequiredDifficultyLWMA called before chain reached its averaging window")
	}

	target := params.PowTargetSpacing
	k := params.ZawyLwmaAdjustedWeight
	dnorm := params.ZawyLwmaMinDenominator
	limitST := params.ZawyLwmaSolvetimeLimitation

	if params.PowAllowMinDifficultyBlocks &&
		candidateTime > parent.Timestamp().Unix()+2*target {
		log.Debugf("height %d: lwma min-difficulty escape triggered", h)
		return standalone.EncodeCompact(params.PowLimit), nil
	}

	if params.PowNoRetargeting {
		return parent.Bits(), nil
	}

	divisor := uint64(k) * uint64(n) * uint64(n)

	// Walk the window oldest-to-newest. parent is ancestor 0 back from
	// itself, so the block at absolute height i is parent.RelativeAncestorCtx(h-1-i)
	// and its predecessor is one further back.
	var t int64
	var sumTarget uint256.Uint256
	for i := h - n; i < h; i++ {
		block := parent.RelativeAncestorCtx(h - 1 - i)
		prev := parent.RelativeAncestorCtx(h - i)

		solvetime := block.Timestamp().Unix() - prev.Timestamp().Unix()
		if limitST && solvetime > 6*target {
			solvetime = 6 * target
		}

		j := i - (h - n) + 1
		t += solvetime * j

		blockTarget, _, _ := standalone.DecodeCompact(block.Bits())
		sumTarget = sumTarget.Add(blockTarget.DivUint64(divisor))
	}

	floor := n * k / dnorm
	if t < floor {
		t = floor
	}

	next := sumTarget.MulUint64(uint64(t))
	if next.GreaterThan(params.PowLimit) {
		next = params.PowLimit
	}

	bits := standalone.EncodeCompact(next)
	log.Debugf("height %d: lwma weighted solvetime sum %d, new bits %08x", h, t, bits)
	return bits, nil
}

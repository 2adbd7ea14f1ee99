// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"errors"
	"testing"
	"time"

	"github.com/litecoinz-project/litecoinzd/blockchain/standalone"
	"github.com/litecoinz-project/litecoinzd/chaincfg"
)

// testStart is the timestamp the synthetic chains below grow from. The
// concrete value is irrelevant; only the deltas between blocks matter.
var testStart = time.Unix(1600000000, 0).UTC()

// testDigishieldBits decodes to a target whose value divides evenly by the
// Digishield averaging window timespan (2550s), so an exactly-on-schedule
// chain is a fixed point of the retarget with no truncation drift: the
// mantissa 0x01f20c is 2550 * 50.
const testDigishieldBits = 0x1f01f20c

func powLimitBits(params *chaincfg.Params) uint32 {
	return standalone.EncodeCompact(params.PowLimit)
}

// flatChain builds count blocks all carrying bits, spaced evenly.
func flatChain(params *chaincfg.Params, count int, bits uint32, spacing int64) *testChain {
	c := newTestChain(params)
	c.addBlocks(count, bits, testStart, spacing)
	return c
}

func TestNextWorkRequiredGenesis(t *testing.T) {
	for _, params := range []*chaincfg.Params{
		chaincfg.MainNetParams(), chaincfg.TestNetParams(), chaincfg.RegNetParams(),
	} {
		chain := newTestChain(params)
		got, err := NextWorkRequired(nil, testStart.Unix(), chain)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", params.Name, err)
		}
		if want := powLimitBits(params); got != want {
			t.Errorf("%s: genesis difficulty = %08x, want %08x", params.Name, got, want)
		}
	}
}

// TestDigishieldFlatChain checks that a chain mined exactly on schedule at a
// constant difficulty keeps that difficulty: the measured timespan equals
// the target timespan, the dampening and clamp are identities, and the
// average collapses back to the shared per-block target.
func TestDigishieldFlatChain(t *testing.T) {
	params := chaincfg.MainNetParams()
	chain := flatChain(params, 40, testDigishieldBits, params.DigishieldTargetSpacing)
	parent := chain.tip()

	got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+params.DigishieldTargetSpacing, chain)
	if err != nil {
		t.Fatal(err)
	}
	if got != testDigishieldBits {
		t.Errorf("flat chain retargeted %08x -> %08x, want unchanged", testDigishieldBits, got)
	}
}

// TestDigishieldShortChain checks the walk-off-the-chain escape: a chain too
// young to fill the averaging window retargets to the proof-of-work limit.
func TestDigishieldShortChain(t *testing.T) {
	params := chaincfg.MainNetParams()
	chain := flatChain(params, 10, testDigishieldBits, params.DigishieldTargetSpacing)
	parent := chain.tip()

	got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+150, chain)
	if err != nil {
		t.Fatal(err)
	}
	if want := powLimitBits(params); got != want {
		t.Errorf("short chain difficulty = %08x, want pow limit %08x", got, want)
	}
}

// TestDigishieldClamp drives the measured timespan to both extremes and
// checks the dampened value is pinned to the asymmetric clamp bounds, with
// the retarget output exactly avg/targetTimespan*bound.
func TestDigishieldClamp(t *testing.T) {
	params := chaincfg.MainNetParams()
	target, _, _ := standalone.DecodeCompact(testDigishieldBits)
	timespan := uint64(params.DigishieldAveragingWindowTimespan())

	tests := []struct {
		name    string
		spacing int64
		bound   uint64
	}{
		// 30s blocks: dampened timespan falls below the 84% floor
		{"fast blocks pin the lower bound", 30, uint64(params.DigishieldMinActualTimespan())},
		// 600s blocks: dampened timespan exceeds the 132% ceiling
		{"slow blocks pin the upper bound", 600, uint64(params.DigishieldMaxActualTimespan())},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chain := flatChain(params, 40, testDigishieldBits, tc.spacing)
			parent := chain.tip()

			got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+tc.spacing, chain)
			if err != nil {
				t.Fatal(err)
			}
			want := standalone.EncodeCompact(target.DivUint64(timespan).MulUint64(tc.bound))
			if got != want {
				t.Errorf("clamped retarget = %08x, want %08x", got, want)
			}

			gotTarget, _, _ := standalone.DecodeCompact(got)
			if tc.bound < timespan && !gotTarget.LessThan(target) {
				t.Error("fast blocks must lower the target")
			}
			if tc.bound > timespan && !gotTarget.GreaterThan(target) {
				t.Error("slow blocks must raise the target")
			}
		})
	}
}

// TestDigishieldForkResetWindow checks the difficulty reset around the
// Equihash activation: any block whose parent still falls inside the
// averaging window that follows the fork height mines at the pow limit.
func TestDigishieldForkResetWindow(t *testing.T) {
	params := chaincfg.TestNetParams()
	params.EquihashForkHeight = 100
	chain := flatChain(params, 130, testDigishieldBits, params.DigishieldTargetSpacing)

	tests := []struct {
		parentHeight int64
		reset        bool
	}{
		{98, false},  // h = 99, below the fork
		{100, true},  // h = 101, just past the fork height
		{110, true},  // h = 111, inside the window
		{116, true},  // h = 117, parent is the last in-window block
		{117, false}, // h = 118, parent past the window
	}
	for _, tc := range tests {
		parent := chain.nodes[tc.parentHeight]
		got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+params.DigishieldTargetSpacing, chain)
		if err != nil {
			t.Fatal(err)
		}
		isReset := got == powLimitBits(params)
		if isReset != tc.reset {
			t.Errorf("parent height %d: reset = %v (bits %08x), want %v",
				tc.parentHeight, isReset, got, tc.reset)
		}
	}
}

// TestDigishieldMainNetResetHeight checks that mainnet anchors its reset
// window to the historical height 95005 rather than the configured Equihash
// fork height, which on mainnet is unrelated to this branch.
func TestDigishieldMainNetResetHeight(t *testing.T) {
	params := chaincfg.MainNetParams()
	window := params.DigishieldAveragingWindow
	chain := flatChain(params, 95040, testDigishieldBits, params.DigishieldTargetSpacing)

	tests := []struct {
		parentHeight int64
		reset        bool
	}{
		{95003, false},             // h = 95004, below the literal
		{95005, true},              // h = 95006, inside
		{95005 + window - 1, true}, // h = 95022, parent is last in-window
		{95005 + window, false},    // h = 95023, past the window
	}
	for _, tc := range tests {
		parent := chain.nodes[tc.parentHeight]
		got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+params.DigishieldTargetSpacing, chain)
		if err != nil {
			t.Fatal(err)
		}
		isReset := got == powLimitBits(params)
		if isReset != tc.reset {
			t.Errorf("parent height %d: reset = %v (bits %08x), want %v",
				tc.parentHeight, isReset, got, tc.reset)
		}
	}
}

// TestDigishieldMinDifficultyEscape checks the testnet escape hatch: a
// candidate more than six spacings behind schedule claims the pow limit,
// while one exactly six spacings behind does not.
func TestDigishieldMinDifficultyEscape(t *testing.T) {
	params := chaincfg.TestNetParams()
	chain := flatChain(params, 40, testDigishieldBits, params.DigishieldTargetSpacing)
	parent := chain.tip()
	limit := 6 * params.DigishieldTargetSpacing

	got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+limit+1, chain)
	if err != nil {
		t.Fatal(err)
	}
	if want := powLimitBits(params); got != want {
		t.Errorf("stale candidate difficulty = %08x, want pow limit %08x", got, want)
	}

	got, err = NextWorkRequired(parent, parent.Timestamp().Unix()+limit, chain)
	if err != nil {
		t.Fatal(err)
	}
	if got == powLimitBits(params) {
		t.Error("candidate exactly at the limit must not claim min difficulty")
	}
}

// TestNoRetargeting checks the regression-test fixed point on both
// algorithms: with retargeting disabled, every call hands back the parent's
// bits untouched.
func TestNoRetargeting(t *testing.T) {
	params := chaincfg.RegNetParams()
	const bits = 0x1e010000

	// Digishield side: past the fork-reset window, full averaging window
	// available.
	chain := flatChain(params, 40, bits, params.DigishieldTargetSpacing)
	parent := chain.tip()
	got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+params.DigishieldTargetSpacing, chain)
	if err != nil {
		t.Fatal(err)
	}
	if got != bits {
		t.Errorf("digishield with no retargeting = %08x, want parent bits %08x", got, bits)
	}

	// LWMA side: parent beyond the algorithm hand-off height.
	chain = flatChain(params, 161, bits, params.PowTargetSpacing)
	parent = chain.tip()
	got, err = NextWorkRequired(parent, parent.Timestamp().Unix()+params.PowTargetSpacing, chain)
	if err != nil {
		t.Fatal(err)
	}
	if got != bits {
		t.Errorf("lwma with no retargeting = %08x, want parent bits %08x", got, bits)
	}
}

// lwmaParams returns testnet params with the LWMA hand-off pulled down to a
// height a small synthetic chain can reach.
func lwmaParams() *chaincfg.Params {
	params := chaincfg.TestNetParams()
	params.ZawyLWMAHeight = 50
	return params
}

// TestLWMASteadyState checks that a window of on-schedule solvetimes at a
// constant difficulty reproduces that difficulty. The per-addend division
// of each target by k*N*N truncates, so the result may sit one mantissa
// unit below the input encoding; anything further off is a real error.
func TestLWMASteadyState(t *testing.T) {
	params := lwmaParams()
	bits := standalone.EncodeCompact(params.PowLimit.DivUint64(4))
	chain := flatChain(params, 60, bits, params.PowTargetSpacing)
	parent := chain.tip()

	got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+params.PowTargetSpacing, chain)
	if err != nil {
		t.Fatal(err)
	}
	if got != bits && got != bits-1 {
		t.Errorf("steady state retarget = %08x, want %08x (or one mantissa unit below)", got, bits)
	}
}

// TestLWMASolvetimeClamp places a single hundredfold solvetime inside the
// window and checks the limiter caps its weight: the clamped run must
// produce a strictly smaller (harder) target than the unclamped run of the
// same chain.
func TestLWMASolvetimeClamp(t *testing.T) {
	const bits = 0x1f3fffff
	build := func(params *chaincfg.Params) *testChain {
		c := newTestChain(params)
		c.addBlocks(50, bits, testStart, params.PowTargetSpacing)
		// one block a hundred spacings late, then back on schedule
		c.addBlock(bits, c.tip().timestamp.Add(time.Duration(100*params.PowTargetSpacing)*time.Second))
		c.addBlocks(9, bits, testStart, params.PowTargetSpacing)
		return c
	}

	clamped := lwmaParams()
	clamped.ZawyLwmaSolvetimeLimitation = true
	unclamped := lwmaParams()
	unclamped.ZawyLwmaSolvetimeLimitation = false

	chainC, chainU := build(clamped), build(unclamped)

	gotC, err := NextWorkRequired(chainC.tip(), chainC.tip().Timestamp().Unix()+150, chainC)
	if err != nil {
		t.Fatal(err)
	}
	gotU, err := NextWorkRequired(chainU.tip(), chainU.tip().Timestamp().Unix()+150, chainU)
	if err != nil {
		t.Fatal(err)
	}

	targetC, _, _ := standalone.DecodeCompact(gotC)
	targetU, _, _ := standalone.DecodeCompact(gotU)
	if !targetC.LessThan(targetU) {
		t.Errorf("clamped target %08x must be strictly below unclamped %08x", gotC, gotU)
	}
}

// TestLWMANegativeSolvetimeFloor feeds the window nothing but negative
// solvetimes; the weighted accumulator must be floored to N*k/denominator
// rather than go negative, so two chains with different degrees of clock
// skew produce the identical floored result.
func TestLWMANegativeSolvetimeFloor(t *testing.T) {
	const bits = 0x1f3fffff
	build := func(params *chaincfg.Params, skew int64) *testChain {
		c := newTestChain(params)
		c.addBlocks(15, bits, testStart, params.PowTargetSpacing)
		for i := 0; i < 45; i++ {
			c.addBlock(bits, c.tip().timestamp.Add(-time.Duration(skew)*time.Second))
		}
		return c
	}

	params := lwmaParams()
	chainA := build(params, 150)
	chainB := build(lwmaParams(), 300)

	gotA, err := NextWorkRequired(chainA.tip(), chainA.tip().Timestamp().Unix()+150, chainA)
	if err != nil {
		t.Fatal(err)
	}
	gotB, err := NextWorkRequired(chainB.tip(), chainB.tip().Timestamp().Unix()+150, chainB)
	if err != nil {
		t.Fatal(err)
	}

	if gotA != gotB {
		t.Errorf("floored retargets differ: %08x vs %08x", gotA, gotB)
	}
	target, _, _ := standalone.DecodeCompact(gotA)
	if target.GreaterThan(params.PowLimit) {
		t.Error("floored target exceeds the pow limit")
	}
}

// TestLWMAOverflowFreedom runs the widest inputs the algorithm admits (every
// target at the pow limit, every solvetime at the clamp ceiling) and checks
// the arithmetic saturates cleanly at the pow limit instead of wrapping.
func TestLWMAOverflowFreedom(t *testing.T) {
	params := lwmaParams()
	params.PowAllowMinDifficultyBlocks = false
	bits := powLimitBits(params)
	chain := flatChain(params, 60, bits, 6*params.PowTargetSpacing)
	parent := chain.tip()

	got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+params.PowTargetSpacing, chain)
	if err != nil {
		t.Fatal(err)
	}
	if got != bits {
		t.Errorf("saturated retarget = %08x, want pow limit %08x", got, bits)
	}
}

// TestLWMAMinDifficultyEscape checks the testnet escape on the LWMA side:
// the threshold is two target spacings, exclusive.
func TestLWMAMinDifficultyEscape(t *testing.T) {
	params := lwmaParams()
	const bits = 0x1f3fffff
	chain := flatChain(params, 60, bits, params.PowTargetSpacing)
	parent := chain.tip()
	limit := 2 * params.PowTargetSpacing

	got, err := NextWorkRequired(parent, parent.Timestamp().Unix()+limit+1, chain)
	if err != nil {
		t.Fatal(err)
	}
	if want := powLimitBits(params); got != want {
		t.Errorf("stale candidate difficulty = %08x, want pow limit %08x", got, want)
	}

	got, err = NextWorkRequired(parent, parent.Timestamp().Unix()+limit, chain)
	if err != nil {
		t.Fatal(err)
	}
	if got == powLimitBits(params) {
		t.Error("candidate exactly at the limit must not claim min difficulty")
	}
}

// TestLWMABeforeWindowIsAssertError confirms the documented precondition:
// dispatching LWMA before the chain has outgrown its averaging window is a
// programmer error surfaced as an AssertError, not a numeric result.
func TestLWMABeforeWindowIsAssertError(t *testing.T) {
	params := lwmaParams()
	params.ZawyLWMAHeight = 10
	chain := flatChain(params, 30, 0x1f3fffff, params.PowTargetSpacing)
	parent := chain.tip() // h = 30, within the 45-block window

	_, err := NextWorkRequired(parent, parent.Timestamp().Unix()+150, chain)
	var aerr AssertError
	if !errors.As(err, &aerr) {
		t.Fatalf("got err %v, want an AssertError", err)
	}
}

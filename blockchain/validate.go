// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/litecoinz-project/litecoinzd/blockchain/standalone"
	"github.com/litecoinz-project/litecoinzd/chaincfg"
	"github.com/litecoinz-project/litecoinzd/chaincfg/chainhash"
	"github.com/litecoinz-project/litecoinzd/equihash"
	"github.com/litecoinz-project/litecoinzd/math/uint256"
	"github.com/litecoinz-project/litecoinzd/wire"
)

// equihashParams maps an Equihash solution's byte length to the (n, k) pair
// that produced it. This is the only context CheckEquihashSolution ever uses
// to pick parameters; there is no per-height switch, so a network that wants
// to change its Equihash parameters must change its solution length.
type equihashParams struct {
	n, k int
}

var solutionLengthParams = map[int]equihashParams{
	1344: {200, 9},
	400:  {192, 7},
	100:  {144, 5},
	68:   {96, 5},
	36:   {48, 5},
}

// CheckProofOfWork reports whether powHash satisfies the difficulty target
// nBits decodes to, under params.PowLimit. A header whose nBits is negative,
// overflowing, zero, or whose decoded target exceeds powLimit never passes,
// regardless of how small powHash is.
func CheckProofOfWork(powHash chainhash.Hash, nBits uint32, params *chaincfg.Params) bool {
	target, negative, overflow := standalone.DecodeCompact(nBits)
	if negative || overflow || target.IsZero() {
		return false
	}
	if target.GreaterThan(params.PowLimit) {
		return false
	}

	hashNum := uint256.NewFromBigEndianBytes(reverseHash(powHash))
	ok := !hashNum.GreaterThan(target)
	log.Tracef("pow check: hash %s target %s -> %v", hashNum, target, ok)
	return ok
}

// reverseHash returns the big-endian byte order of a chainhash.Hash, which
// stores its bytes internally in wire (little-endian) order.
func reverseHash(h chainhash.Hash) []byte {
	b := h.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// CheckEquihashSolution reports whether header's nNonce and nSolution
// together solve the Equihash challenge posed by the header's other fields.
// The (n, k) parameter pair is selected solely by the byte length of
// header.Solution; an unrecognized length fails closed without invoking the
// verifier at all.
func CheckEquihashSolution(header *wire.BlockHeader) bool {
	params, ok := solutionLengthParams[len(header.Solution)]
	if !ok {
		return false
	}

	indices, err := equihash.ExpandSolutionIndices(header.Solution, params.n, params.k)
	if err != nil {
		return false
	}

	input := append(header.PowHeaderBytes(), header.Nonce[:]...)
	valid, err := equihash.ValidateSolution(params.n, params.k, nil, input, indices, equihash.DefaultPersonPrefix)
	if err != nil {
		return false
	}
	return valid
}

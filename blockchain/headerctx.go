// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/litecoinz-project/litecoinzd/chaincfg"
)

// HeaderCtx is the minimal view of a block index entry the retarget engine
// and median-time-past oracle need: its height, bits, timestamp, and a way
// to walk to its parent or to any ancestor by relative offset. Callers
// backing this with a real chain index are expected to make RelativeAncestorCtx
// O(1) amortised (a height-indexed slice) or O(log h) (a skip list); this
// package never caches results between calls.
type HeaderCtx interface {
	// Height returns this entry's height in the chain.
	Height() int64

	// Bits returns the nBits this block carried.
	Bits() uint32

	// Timestamp returns this block's nTime.
	Timestamp() time.Time

	// Parent returns the immediate ancestor, or nil at genesis.
	Parent() HeaderCtx

	// RelativeAncestorCtx returns the ancestor distance blocks back, or nil
	// if the walk runs off the front of the chain.
	RelativeAncestorCtx(distance int64) HeaderCtx
}

// ChainCtx supplies the network-wide parameters a retarget call is
// evaluated against. Implementations are expected to be backed by a single
// immutable *chaincfg.Params per network.
type ChainCtx interface {
	// ChainParams returns the network parameters in effect.
	ChainParams() *chaincfg.Params
}

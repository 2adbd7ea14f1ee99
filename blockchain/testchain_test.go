// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/litecoinz-project/litecoinzd/chaincfg"
)

// testHeader is an in-memory HeaderCtx implementation: a synthetic
// ancestor chain a test can build by hand without touching a real block
// index, database, or wire encoding.
type testHeader struct {
	height    int64
	bits      uint32
	timestamp time.Time
	chain     *testChain
}

func (h *testHeader) Height() int64        { return h.height }
func (h *testHeader) Bits() uint32         { return h.bits }
func (h *testHeader) Timestamp() time.Time { return h.timestamp }

func (h *testHeader) Parent() HeaderCtx {
	if h.height == 0 {
		return nil
	}
	return h.chain.nodes[h.height-1]
}

func (h *testHeader) RelativeAncestorCtx(distance int64) HeaderCtx {
	target := h.height - distance
	if target < 0 || target > h.height {
		return nil
	}
	return h.chain.nodes[target]
}

// testChain is a linear, height-indexed ancestor chain plus the params a
// ChainCtx exposes. It is built incrementally with addBlock so a test can
// script a specific sequence of bits/timestamps and then run the retarget
// engine over it.
type testChain struct {
	params *chaincfg.Params
	nodes  []*testHeader
}

func newTestChain(params *chaincfg.Params) *testChain {
	return &testChain{params: params}
}

func (c *testChain) ChainParams() *chaincfg.Params { return c.params }

// addBlock appends a new tip at bits/timestamp and returns it.
func (c *testChain) addBlock(bits uint32, timestamp time.Time) *testHeader {
	h := &testHeader{
		height:    int64(len(c.nodes)),
		bits:      bits,
		timestamp: timestamp,
		chain:     c,
	}
	c.nodes = append(c.nodes, h)
	return h
}

// tip returns the most recently added block, or nil if the chain is empty.
func (c *testChain) tip() *testHeader {
	if len(c.nodes) == 0 {
		return nil
	}
	return c.nodes[len(c.nodes)-1]
}

// addBlocks appends count blocks, each spacing seconds after the previous
// tip's timestamp (or start, for the first one added to an empty chain),
// all carrying the same bits. This is the common case for building a flat,
// on-schedule chain to feed the retarget engine.
func (c *testChain) addBlocks(count int, bits uint32, start time.Time, spacing int64) {
	t := start
	if tip := c.tip(); tip != nil {
		t = tip.timestamp
	}
	for i := 0; i < count; i++ {
		t = t.Add(time.Duration(spacing) * time.Second)
		c.addBlock(bits, t)
	}
}

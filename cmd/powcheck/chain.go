// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/litecoinz-project/litecoinzd/blockchain"
	"github.com/litecoinz-project/litecoinzd/chaincfg/chainhash"
	"github.com/litecoinz-project/litecoinzd/wire"
)

// jsonHeader is the on-disk representation of a single header in a chain
// file: every BlockHeader field, hex-encoded where binary, plus nothing
// else. Height is implicit in a header's position in the file; element 0
// is always genesis.
type jsonHeader struct {
	Version    int32  `json:"version"`
	PrevBlock  string `json:"prevBlock"`
	MerkleRoot string `json:"merkleRoot"`
	Reserved   string `json:"reserved"`
	Time       int64  `json:"time"`
	Bits       string `json:"bits"`
	Nonce      string `json:"nonce"`
	Solution   string `json:"solution"`
}

// toBlockHeader decodes a jsonHeader's hex fields into a wire.BlockHeader.
func (j jsonHeader) toBlockHeader() (*wire.BlockHeader, error) {
	h := &wire.BlockHeader{
		Version:   j.Version,
		Timestamp: time.Unix(j.Time, 0).UTC(),
	}

	if err := decodeHashField("prevBlock", j.PrevBlock, &h.PrevBlock); err != nil {
		return nil, err
	}
	if err := decodeHashField("merkleRoot", j.MerkleRoot, &h.MerkleRoot); err != nil {
		return nil, err
	}
	if err := decodeHashField("reserved", j.Reserved, &h.Reserved); err != nil {
		return nil, err
	}

	bits, err := hex.DecodeString(j.Bits)
	if err != nil || len(bits) != 4 {
		return nil, fmt.Errorf("bits must be 4 bytes of hex: %q", j.Bits)
	}
	h.Bits = uint32(bits[0])<<24 | uint32(bits[1])<<16 | uint32(bits[2])<<8 | uint32(bits[3])

	nonce, err := hex.DecodeString(j.Nonce)
	if err != nil || len(nonce) != 32 {
		return nil, fmt.Errorf("nonce must be 32 bytes of hex: %q", j.Nonce)
	}
	copy(h.Nonce[:], nonce)

	solution, err := hex.DecodeString(j.Solution)
	if err != nil {
		return nil, fmt.Errorf("solution is not valid hex: %q", j.Solution)
	}
	h.Solution = solution

	return h, nil
}

func decodeHashField(name, s string, out *chainhash.Hash) error {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != chainhash.HashSize {
		return fmt.Errorf("%s must be %d bytes of hex: %q", name, chainhash.HashSize, s)
	}
	copy(out[:], b)
	return nil
}

// loadChainFile reads a JSON array of jsonHeader entries from path and
// decodes each into a wire.BlockHeader, in file order (ascending height,
// starting at genesis).
func loadChainFile(path string) ([]*wire.BlockHeader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []jsonHeader
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	headers := make([]*wire.BlockHeader, len(entries))
	for i, e := range entries {
		h, err := e.toBlockHeader()
		if err != nil {
			return nil, fmt.Errorf("header at height %d: %w", i, err)
		}
		headers[i] = h
	}
	return headers, nil
}

// headerNode adapts a decoded wire.BlockHeader, plus its position in an
// in-memory slice of ancestors, to blockchain.HeaderCtx. A plain slice
// stands in for a real block index, since powcheck only ever replays a
// single linear chain supplied up front.
type headerNode struct {
	height int64
	header *wire.BlockHeader
	chain  []*headerNode
}

func (n *headerNode) Height() int64        { return n.height }
func (n *headerNode) Bits() uint32         { return n.header.Bits }
func (n *headerNode) Timestamp() time.Time { return n.header.Timestamp }

// Parent and RelativeAncestorCtx return the blockchain.HeaderCtx interface
// type, not *headerNode, and return a bare nil (not a nil *headerNode) when
// there is no such ancestor: blockchain's retarget code tests the result
// against nil directly, and a nil pointer boxed into a non-nil interface
// value would defeat that check.
func (n *headerNode) Parent() blockchain.HeaderCtx {
	if n.height == 0 {
		return nil
	}
	return n.chain[n.height-1]
}

func (n *headerNode) RelativeAncestorCtx(distance int64) blockchain.HeaderCtx {
	target := n.height - distance
	if target < 0 || target > n.height {
		return nil
	}
	return n.chain[target]
}

// buildChain wraps a slice of decoded headers into a linked headerNode
// chain, indexed by height.
func buildChain(headers []*wire.BlockHeader) []*headerNode {
	nodes := make([]*headerNode, len(headers))
	for i, h := range headers {
		nodes[i] = &headerNode{height: int64(i), header: h, chain: nodes}
	}
	return nodes
}

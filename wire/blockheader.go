// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/litecoinz-project/litecoinzd/chaincfg/chainhash"
)

// BlockHeader carries the proof-of-work relevant fields of a block header:
// the consensus version tag, the links to the previous block and this
// block's transaction/commitment trees, the timestamp and difficulty bits
// the retarget engine and proof-of-work check consume, and the Equihash
// nonce/solution pair. Full transaction and stake-tree serialization is out
// of scope for this repository.
type BlockHeader struct {
	// Version is the consensus block version.
	Version int32

	// PrevBlock is the hash of the previous block in the chain.
	PrevBlock chainhash.Hash

	// MerkleRoot is the merkle tree reference to hash of all transactions
	// for the block.
	MerkleRoot chainhash.Hash

	// Reserved is a Zcash-style reserved commitment field, carried through
	// verbatim but otherwise unused by this repository's consensus checks.
	Reserved chainhash.Hash

	// Timestamp is the time at which the block was solved.
	Timestamp time.Time

	// Bits is the compact representation of the target difficulty used
	// when the block was solved.
	Bits uint32

	// Nonce is the Equihash extranonce: a 256-bit value absorbed into the
	// BLAKE2b state before the solution is validated.
	Nonce [32]byte

	// Solution is the variable-length Equihash solution. Its length alone
	// determines which (n, k) parameter pair produced it.
	Solution []byte
}

// powHeaderLen is the fixed-width serialization produced by PowHeaderBytes:
// 4 (Version) + 32 (PrevBlock) + 32 (MerkleRoot) + 32 (Reserved) + 4
// (Timestamp) + 4 (Bits) bytes.
const powHeaderLen = 4 + 32 + 32 + 32 + 4 + 4

// PowHeaderBytes serializes the fields that feed the Equihash input string
// I: everything in the header except the nonce and solution, little-endian,
// fixed width. The nonce is absorbed separately by the Equihash verifier
// once I is primed into the hash state.
func (h *BlockHeader) PowHeaderBytes() []byte {
	buf := make([]byte, 0, powHeaderLen)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.Version))
	buf = append(buf, h.PrevBlock[:]...)
	buf = append(buf, h.MerkleRoot[:]...)
	buf = append(buf, h.Reserved[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.Timestamp.Unix()))
	buf = binary.LittleEndian.AppendUint32(buf, h.Bits)
	return buf
}

// BlockHash returns the double sha256 of the full proof-of-work header
// (including the nonce, excluding the solution), the hash the header
// validator's proof-of-work check compares against a decoded target.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	var buf bytes.Buffer
	buf.Write(h.PowHeaderBytes())
	buf.Write(h.Nonce[:])
	return chainhash.HashH(buf.Bytes())
}

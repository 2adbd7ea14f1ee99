// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the Hash type used throughout the consensus
// core to identify blocks and the other 32-byte digests headers reference.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashSize is the size of array used to store the hash, in bytes.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that does not have the right number of characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is used in several of the consensus messages and refers to the
// double sha256 of data, stored internally in the byte order produced by
// the hash function it came from. Methods here reverse that order when
// producing the conventional big-endian display/compare form, exactly as
// the Bitcoin/Decred family's chainhash.Hash does.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash.
func (h Hash) String() string {
	var reversed Hash
	for i, b := range h[:] {
		reversed[HashSize-1-i] = b
	}
	return hex.EncodeToString(reversed[:])
}

// Bytes returns the bytes which represent the hash as a byte slice.
func (h Hash) Bytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, h[:])
	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	nhlen := len(newHash)
	if nhlen != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", nhlen, HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// IsEqual returns true if target is the same as the hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// HashB calculates the double sha256 hash of the byte slice and returns it
// as a byte slice.
func HashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// HashH calculates the double sha256 hash of the byte slice and returns it
// as a Hash.
func HashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// NewHash returns a new Hash from a byte slice.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	err := sh.SetBytes(newHash)
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

// NewHashFromStr creates a Hash from a hash string. The string should be
// the hexadecimal string of a byte-reversed hash, but any missing
// characters result in zero padding at the end of the Hash.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	err := Decode(ret, hash)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the byte-reversed hexadecimal string encoding of a Hash to
// a destination.
func Decode(dst *Hash, src string) error {
	reversedHashStr := src
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}

	var srcBytes []byte
	if len(reversedHashStr)%2 == 0 {
		srcBytes = []byte(reversedHashStr)
	} else {
		srcBytes = make([]byte, 1+len(reversedHashStr))
		srcBytes[0] = '0'
		copy(srcBytes[1:], reversedHashStr)
	}

	var reversedHash Hash
	_, err := hex.Decode(reversedHash[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}

	for i, b := range reversedHash[:HashSize/2] {
		reversedHash[i], reversedHash[HashSize-1-i] = reversedHash[HashSize-1-i], b
	}
	*dst = reversedHash
	return nil
}

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package standalone houses consensus algorithms that can run without a
// fully instantiated chain: today that is the compact ("nBits") target
// codec. Downstream tools that only want difficulty math can import it
// without pulling in the rest of blockchain.
package standalone

import "github.com/litecoinz-project/litecoinzd/math/uint256"

// DecodeCompact expands the compact representation used in a block header's
// nBits field to a full 256-bit target.
//
// The compact format is a representation of a whole number N using an
// unsigned 32-bit number similar to a floating point format. The high 8 bits
// are the unsigned exponent of a base-256 number (meaning that the exponent
// allows the number to be expressed as a number of 256 bytes). The low 23
// bits are the mantissa, and bit 24 (0x00800000) is the sign bit.
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// negative is reported whenever the sign bit is set, independent of the
// mantissa's value: an all-zero mantissa with the sign bit set still decodes
// to a negative zero target, which is invalid and distinct from the
// unsigned all-zero encoding. overflow is reported when the magnitude would
// require more than 256 bits to represent, following the same three-clause
// byte-count test the reference Bitcoin/Zcash arith_uint256::SetCompact uses
// (a flat "exponent > 34" test alone misses overflowing values whose
// exponent is 33 or 34 but whose mantissa itself spans more than two or one
// significant bytes, respectively).
func DecodeCompact(nBits uint32) (target uint256.Uint256, negative bool, overflow bool) {
	exponent := nBits >> 24
	mantissa := nBits & 0x007fffff
	negative = nBits&0x00800000 != 0
	overflow = mantissa != 0 &&
		(exponent > 34 ||
			(mantissa > 0xff && exponent > 33) ||
			(mantissa > 0xffff && exponent > 32))

	m := uint256.NewFromUint64(uint64(mantissa))
	if exponent <= 3 {
		target = m.Rsh8(uint(3 - exponent))
	} else {
		target = m.Lsh8(uint(exponent - 3))
	}
	return target, negative, overflow
}

// EncodeCompact converts a 256-bit target to a compact representation using
// the same encoding DecodeCompact reverses. It always produces a canonical,
// non-negative encoding: the sign bit is never set, matching the fact that
// every target this core ever encodes (a retarget result, clamped against
// powLimit) is already known non-negative.
func EncodeCompact(target uint256.Uint256) uint32 {
	if target.IsZero() {
		return 0
	}

	exponent := uint32(target.ByteLen())
	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(target.Uint64())
		mantissa <<= 8 * (3 - exponent)
	} else {
		mantissa = uint32(target.Rsh8(uint(exponent) - 3).Uint64())
	}

	// If the mantissa's high bit would collide with the sign bit, shift one
	// more byte into the exponent so the encoding stays unambiguous and
	// non-negative.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	return exponent<<24 | mantissa
}

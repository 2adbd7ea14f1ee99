// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package equihash implements verification of Equihash proof-of-work
// solutions: Wagner's algorithm for the generalized birthday problem over a
// personalized BLAKE2b hash. Only the verification side lives here; finding
// solutions is a miner's job and out of scope for this repository. The
// verifier is a pure function of the challenge input, the (n, k) parameter
// pair, and the claimed solution indices.
package equihash

import (
	"encoding/binary"
	"errors"
	"hash"
	"math/big"
	"reflect"

	"github.com/minio/blake2b-simd"
)

const (
	// wordSize is the width of the accumulator expandArray packs bits
	// through, which bounds the bit lengths it can handle.
	wordSize = 32
	wordMask = (1 << wordSize) - 1
	byteMask = 0xFF

	// N and K are the Equihash parameters litecoinz mainnet mines with.
	N = 200
	K = 9

	// DefaultPersonPrefix is the BLAKE2b personalization prefix
	// Zcash-derived Equihash networks use ahead of the little-endian
	// (n, k) pair.
	DefaultPersonPrefix = "ZcashPoW"

	// CollisionBitLength is the number of bits a single reduction stage
	// must collide on for the mainnet (N, K) pair.
	CollisionBitLength = N / (K + 1)

	// SolutionWidth is the wire size, in bytes, of a mainnet solution:
	// 2^K indices of CollisionBitLength+1 bits each.
	SolutionWidth = (1 << K) * (CollisionBitLength + 1) / 8
)

var (
	errBadArg           = errors.New("invalid argument")
	errWriteLen         = errors.New("didn't write full len")
	errKLarge           = errors.New("k should be less than n")
	errCollisionLen     = errors.New("collision length too big")
	errSmallBitLen      = errors.New("bitLen < 8")
	errSmallWordSize    = errors.New("wordSize < 7+bitLen")
	errBadOutLen        = errors.New("outLen != 8*outWidth*len(in)/bitLen")
	errDuplicateIndices = errors.New("duplicate indices")
	errPairWiseOrdering = errors.New("bad pair-wise ordering")
	errBadWord          = errors.New("bad word")
	errNullHash         = errors.New("empty hash")
	errEmptyIndices     = errors.New("empty indices")
	bigZero             = big.NewInt(0)
)

// person builds the BLAKE2b personalization string for a given (n, k): the
// prefix followed by the little-endian n and k parameters.
func person(prefix string, n, k int) []byte {
	nb, kb := writeU32(uint32(n)), writeU32(uint32(k))
	return append([]byte(prefix), append(nb, kb...)...)
}

// newHash creates a blake2b hash state personalized with personalization,
// sized for the equihash params (n, k).
func newHash(n, k int, personalization []byte) (hash.Hash, error) {
	h, err := blake2b.New(&blake2b.Config{
		Person: personalization,
		Size:   uint8((512 / n) * n / 8),
	})
	return h, err
}

// hashDigest returns the current digest of h without disturbing its state.
func hashDigest(h hash.Hash) []byte {
	return h.Sum(nil)
}

// expandArray unpacks a bit stream of bitLen-wide values into byte-aligned
// output groups of (bitLen+7)/8 bytes each, left-padded with bytePad zero
// bytes. outLen must be the exact output size the input implies; a mismatch
// means the caller's length bookkeeping is wrong, not that the input is
// merely short.
func expandArray(in []byte, outLen, bitLen, bytePad int) ([]byte, error) {
	if bitLen < 8 {
		return nil, errSmallBitLen
	}
	if wordSize < 7+bitLen {
		return nil, errSmallWordSize
	}
	outWidth := (bitLen+7)/8 + bytePad
	if outLen != 8*outWidth*len(in)/bitLen {
		return nil, errBadOutLen
	}

	out, bitLenMask := make([]byte, outLen), (1<<uint(bitLen))-1
	accBits, accValue, j := 0, 0, 0
	for _, val := range in {
		accValue = (accValue<<8)&wordMask | int(val&0xFF)
		accBits += 8

		if accBits >= bitLen {
			accBits -= bitLen
			for x := bytePad; x < outWidth; x++ {
				a := accValue >> uint(accBits+8*(outWidth-x-1))
				b := (bitLenMask >> uint(8*(outWidth-x-1))) & byteMask
				out[j+x] = byte(a & b)
			}
			j += outWidth
		}
	}

	return out, nil
}

// indicesPerHashOutput is how many n-bit words one BLAKE2b invocation
// yields.
func indicesPerHashOutput(n int) int {
	return 512 / n
}

// hasDuplicateIndices reports whether any index repeats within the
// solution.
func hasDuplicateIndices(indices []int) bool {
	if len(indices) <= 1 {
		return false
	}
	set := make(map[int]bool)
	for _, index := range indices {
		if set[index] {
			return true
		}
		set[index] = true
	}
	return false
}

// writeBytesToHash writes the whole of b to h, treating a short write as an
// error.
func writeBytesToHash(h hash.Hash, b []byte) error {
	n, err := h.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return errWriteLen
	}
	return nil
}

// writeU32 encodes a 32-bit unsigned int to a little-endian byte slice.
func writeU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// copyHash deep-copies a hash state so a shared, header-primed state can be
// extended with per-index data without re-absorbing the header each time.
func copyHash(src hash.Hash) hash.Hash {
	if src == nil {
		return nil
	}
	typ := reflect.TypeOf(src)
	val := reflect.ValueOf(src)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
		val = val.Elem()
	}
	elem := reflect.New(typ).Elem()
	elem.Set(val)
	return elem.Addr().Interface().(hash.Hash)
}

// generateWord hashes the challenge state extended with the hash-output
// ordinal idx selects, then folds the n-bit slice idx addresses into a
// big-endian word.
func generateWord(n int, h hash.Hash, idx int) (*big.Int, error) {
	if h == nil {
		return nil, errNullHash
	}

	bytesPerWord := n / 8
	wordsPerHash := indicesPerHashOutput(n)

	hidx := idx / wordsPerHash
	hrem := idx % wordsPerHash

	idxdata := writeU32(uint32(hidx))
	ctx1 := copyHash(h)
	err := writeBytesToHash(ctx1, idxdata)
	if err != nil {
		return nil, err
	}
	digest := hashDigest(ctx1)

	// fold word
	word := big.NewInt(0)
	for i := hrem * bytesPerWord; i < hrem*bytesPerWord+bytesPerWord; i++ {
		word = word.Lsh(word, 8)
		word = word.Or(word, big.NewInt(int64(digest[i])&0xFF))
	}
	return word, nil
}

// solutionLength is the number of indices a k-round solution carries.
func solutionLength(k int) int {
	return powOf2(k)
}

// generateWords produces the hash word for every index in the claimed
// solution, in solution order.
func generateWords(n, k int, indices []int, h hash.Hash) ([]*big.Int, error) {
	if h == nil {
		return nil, errNullHash
	}
	if len(indices) == 0 {
		return nil, errEmptyIndices
	}
	solutionLen := solutionLength(k)
	var words []*big.Int
	for i := 0; i < solutionLen; i++ {
		word, err := generateWord(n, h, indices[i])
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

func validateNonEmptySolutionParams(header []byte, solutionIndices []int) error {
	if len(header) == 0 {
		return errors.New("empty header")
	}
	if len(solutionIndices) == 0 {
		return errors.New("empty solution indices")
	}
	return nil
}

func validateSolutionIndices(k int, indices []int) error {
	solutionLen := powOf2(k)
	if len(indices) != solutionLen {
		return errBadArg
	}
	if hasDuplicateIndices(indices) {
		return errDuplicateIndices
	}
	return nil
}

func validateSolutionParams(n, k int, header []byte, indices []int) error {
	err := validateEquihashParams(n, k)
	if err != nil {
		return err
	}

	err = validateNonEmptySolutionParams(header, indices)
	if err != nil {
		return err
	}

	return validateSolutionIndices(k, indices)
}

// newValidateHash builds the challenge hash state: a personalized blake2b
// primed with the header bytes (the Equihash input I plus nonce V).
func newValidateHash(n, k int, personalization, header []byte) (hash.Hash, error) {
	h, err := newHash(n, k, personalization)

	if err != nil {
		return nil, err
	}
	err = writeBytesToHash(h, header)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// validateSolutionOrdering checks the pair-wise index ordering invariant: at
// every reduction stage, the left member of each merged pair carries the
// smaller leading index.
func validateSolutionOrdering(k int, indices []int) error {
	solutionLen := powOf2(k)
	for s := 0; s < k; s++ {
		d := 1 << uint(s)
		for i := 0; i < solutionLen; i += 2 * d {
			if indices[i] >= indices[i+d] {
				return errPairWiseOrdering
			}
		}
	}
	return nil
}

// validateWords replays the k reduction stages over the generated hash
// words: every stage's pairwise xor must collide on its n/(k+1)-bit slice,
// and the final fold must cancel to zero.
func validateWords(n, k int, words []*big.Int) (bool, error) {
	solutionLen := powOf2(k)
	bitsPerStage := n / (k + 1)
	for s := 0; s < k; s++ {
		d := 1 << uint(s)
		for i := 0; i < solutionLen; i += 2 * d {
			w := words[i].Xor(words[i], words[i+d])
			if !isBigIntZero(w.Rsh(w, uint(n-(s+1)*bitsPerStage))) {
				return false, errBadWord
			}
			words[i] = w
		}
	}
	return isBigIntZero(words[0]), nil
}

func validateIndices(n, k int, indices []int, digest hash.Hash) (bool, error) {
	// check pair-wise ordering of solution indices
	err := validateSolutionOrdering(k, indices)
	if err != nil {
		return false, err
	}

	words, err := generateWords(n, k, indices, digest)
	if err != nil {
		return false, err
	}

	return validateWords(n, k, words)
}

// ExpandSolutionIndices unpacks a wire-format Equihash solution into the
// underlying list of 2^k hash indices the verifier operates on. Each index
// is packed into n/(k+1)+1 bits in the on-wire solution, the same
// collision bit length SolutionWidth derives the total solution byte
// length from.
func ExpandSolutionIndices(solution []byte, n, k int) ([]int, error) {
	collisionBitLen := n/(k+1) + 1
	indexBytes := (collisionBitLen + 7) / 8
	solutionLen := powOf2(k)

	expanded, err := expandArray(solution, solutionLen*indexBytes, collisionBitLen, 0)
	if err != nil {
		return nil, err
	}

	indices := make([]int, solutionLen)
	for i := 0; i < solutionLen; i++ {
		var v int
		for b := 0; b < indexBytes; b++ {
			v = v<<8 | int(expanded[i*indexBytes+b])
		}
		indices[i] = v
	}
	return indices, nil
}

// ValidateSolution validates that a mining solution is correct. personalization
// is the exact BLAKE2b personalization bytes to prime the hash state with; if
// nil, it is derived from prefix and the (n, k) pair the same way person does.
func ValidateSolution(n, k int, personalization, header []byte, solutionIndices []int, prefix string) (bool, error) {
	err := validateSolutionParams(n, k, header, solutionIndices)
	if err != nil {
		return false, err
	}
	if personalization == nil {
		personalization = person(prefix, n, k)
	}

	// create hash digest and words
	digest, err := newValidateHash(n, k, personalization, header)
	if err != nil {
		return false, err
	}

	return validateIndices(n, k, solutionIndices, digest)
}

// isBigIntZero reports whether the big int equals zero.
func isBigIntZero(w *big.Int) bool {
	return w.Cmp(bigZero) == 0
}

// powOf2 returns 2^k for non-negative k, and 1 otherwise.
func powOf2(k int) int {
	if k < 1 {
		return 1
	}
	return 1 << uint(k)
}

// validateEquihashParams rejects (n, k) pairs outside the range the
// reduction math supports: n must split evenly into both bytes and k+1
// collision stages, and each stage's collision slice plus its index bit
// must fit the accumulator expandArray packs through.
func validateEquihashParams(n, k int) error {
	if n < 2 {
		return errors.New("n < 2")
	}
	if k < 3 {
		return errors.New("k < 3")
	}
	if (n % 8) != 0 {
		return errors.New("n%8 != 0")
	}
	if (n % (k + 1)) != 0 {
		return errors.New("n%(k+1) != 0")
	}
	if k >= n {
		return errKLarge
	}
	if collisionLength(n, k)+1 >= 32 {
		return errCollisionLen
	}
	return nil
}

// collisionLength returns the number of bits a single reduction stage must
// collide on.
func collisionLength(n, k int) int {
	return n / (k + 1)
}

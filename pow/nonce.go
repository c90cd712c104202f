/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

import (
	"encoding/binary"
	"math/bits"
)

const (
	// nonceMarker is the protocol marker prepended to every hashed nonce.
	nonceMarker = "HAHA"

	// nonceOffset is the protocol constant added to the cube.
	nonceOffset = 2040
)

// CubeNonce is the 128-bit candidate value (k*diff)^3 + 2040 truncated
// modulo 2^128, stored as four 32-bit words, most-significant first.
type CubeNonce [4]uint32

// NewCubeNonce derives the candidate value for identity k and difficulty
// multiplier diff. The arithmetic is fixed-width: overflow beyond 128 bits
// wraps, which is the specified puzzle behavior.
func NewCubeNonce(k uint64, diff uint32) CubeNonce {
	rootHi, rootLo := bits.Mul64(k, uint64(diff))
	sqHi, sqLo := mul128(rootHi, rootLo, rootHi, rootLo)
	hi, lo := mul128(sqHi, sqLo, rootHi, rootLo)

	var carry uint64
	lo, carry = bits.Add64(lo, nonceOffset, 0)
	hi, _ = bits.Add64(hi, 0, carry)

	return CubeNonce{uint32(hi >> 32), uint32(hi), uint32(lo >> 32), uint32(lo)}
}

// mul128 multiplies two 128-bit values modulo 2^128.
func mul128(aHi, aLo, bHi, bLo uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(aLo, bLo)
	hi += aLo*bHi + aHi*bLo
	return hi, lo
}

// SignificantLength is the number of low-order nonce bytes fed into the
// hash, determined in whole 32-bit words from the top down. The granularity
// is deliberately coarse: a word with zero high bytes but a nonzero low
// byte still counts in full. Word 3 is never tested, so the length never
// drops below 4.
func (n CubeNonce) SignificantLength() int {
	switch {
	case n[0] != 0:
		return 16
	case n[1] != 0:
		return 12
	case n[2] != 0:
		return 8
	default:
		return 4
	}
}

// Bytes returns the length low-order bytes of the nonce in big-endian order.
func (n CubeNonce) Bytes(length int) []byte {
	var buf [16]byte
	for i, word := range n {
		binary.BigEndian.PutUint32(buf[i*4:], word)
	}

	return buf[16-length:]
}

/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

import (
	"encoding/binary"
)

// Both message shapes fit one 64-byte block: the marker plus at most 16
// nonce bytes, and the fixed 32-byte first-pass digest, are all far below
// the 55-byte single-block payload budget. Total bit length stays below
// 65536, so only the two low bytes of the length field are ever written.

// nonceBlock packs the marker and the significant nonce bytes into a padded
// message block.
func nonceBlock(n CubeNonce, sigLen int) [64]byte {
	var block [64]byte

	copy(block[:4], nonceMarker)
	copy(block[4:], n.Bytes(sigLen))
	block[4+sigLen] = 0x80
	binary.BigEndian.PutUint16(block[62:], uint16((4+sigLen)*8))

	return block
}

// digestBlock packs a first-pass digest into a padded message block. The
// digest is always 32 bytes, so the length field is the fixed 256-bit
// encoding.
func digestBlock(digest *[8]uint32) [64]byte {
	var block [64]byte

	for i, word := range digest {
		binary.BigEndian.PutUint32(block[i*4:], word)
	}
	block[32] = 0x80
	binary.BigEndian.PutUint16(block[62:], 256)

	return block
}

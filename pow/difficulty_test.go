/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CountLeadingZeroNibbles(t *testing.T) {
	tests := []struct {
		digest [8]uint32
		count  int
	}{
		{[8]uint32{0xFFFFFFFF, 0, 0, 0, 0, 0, 0, 0}, 0},
		{[8]uint32{0x10000000, 0, 0, 0, 0, 0, 0, 0}, 0},
		{[8]uint32{0x01000000, 0, 0, 0, 0, 0, 0, 0}, 1},
		{[8]uint32{0x00000001, 0xFFFFFFFF, 0, 0, 0, 0, 0, 0}, 7},
		{[8]uint32{0, 0xF0000000, 0, 0, 0, 0, 0, 0}, 8},
		// two all-zero words, then six zero nibbles before the A
		{[8]uint32{0, 0, 0x000000AB, 0xFFFFFFFF, 0, 0, 0, 0}, 22},
		// trailing zeros after the first nonzero nibble are irrelevant
		{[8]uint32{0, 0x00100000, 0, 0, 0, 0, 0, 0}, 10},
		{[8]uint32{0, 0, 0, 0, 0, 0, 0, 0x00000001}, 63},
		{[8]uint32{0, 0, 0, 0, 0, 0, 0, 0}, 64},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.count, CountLeadingZeroNibbles(&tt.digest), "digest %08x...", tt.digest[0])
	}
}

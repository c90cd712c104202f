/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package hexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BytesToHex(t *testing.T) {
	assert.Equal(t, BytesToHex([]byte{0x48, 0x41, 0x48, 0x41}), "0x48414841")
	assert.Equal(t, BytesToHex([]byte{}), "0x")
}

func Test_HexToBytes(t *testing.T) {
	b, err := HexToBytes("0x48414841")
	assert.Equal(t, err, nil)
	assert.Equal(t, b, []byte{0x48, 0x41, 0x48, 0x41})

	_, err = HexToBytes("")
	assert.Equal(t, err, error(ErrEmptyString))

	_, err = HexToBytes("48414841")
	assert.Equal(t, err, error(ErrMissingPrefix))

	_, err = HexToBytes("0x484")
	assert.Equal(t, err, error(ErrOddLength))

	_, err = HexToBytes("0x48zz")
	assert.Equal(t, err, error(ErrSyntax))
}

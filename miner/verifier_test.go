/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package miner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Verifier(t *testing.T) {
	v := newVerifier(630, 0)

	sol := testSolution(12345, 630, 0)
	assert.Equal(t, true, v.Verify(sol))

	// tampered digest
	bad := *sol
	bad.Digest[0] ^= 1
	assert.Equal(t, false, v.Verify(&bad))

	// wrong difficulty multiplier
	wrongDiff := *sol
	wrongDiff.Diff = 631
	assert.Equal(t, false, v.Verify(&wrongDiff))
}

func Test_Verifier_Threshold(t *testing.T) {
	// a genuine digest that cannot meet an unreachable threshold
	v := newVerifier(630, 64)
	sol := testSolution(12345, 630, 0)
	assert.Equal(t, false, v.Verify(sol))
}

func Test_Verifier_Cache(t *testing.T) {
	v := newVerifier(1, 0)

	sol := testSolution(5, 1, 4)
	assert.Equal(t, true, v.Verify(sol))
	assert.Equal(t, 1, v.cache.Len())

	// second verification hits the cache
	assert.Equal(t, true, v.Verify(sol))
	assert.Equal(t, 1, v.cache.Len())

	_, found := v.cache.Get(uint64(5))
	assert.Equal(t, true, found)
}

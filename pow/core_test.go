/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

import (
	stdsha256 "crypto/sha256"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// referenceDigest double-hashes the marked nonce message with the standard
// library implementation.
func referenceDigest(k uint64, diff uint32) [8]uint32 {
	nonce := NewCubeNonce(k, diff)
	data := append([]byte("HAHA"), nonce.Bytes(nonce.SignificantLength())...)

	first := stdsha256.Sum256(data)
	final := stdsha256.Sum256(first[:])

	var words [8]uint32
	for i := 0; i < 8; i++ {
		words[i] = binary.BigEndian.Uint32(final[i*4:])
	}
	return words
}

func Test_Evaluate_DoubleHashEquivalence(t *testing.T) {
	ks := []uint64{0, 1, 2, 5, 255, 4096, 12345, 1 << 22, 1 << 43, 987654321, 0xFFFFFFFFFFFFFFFF}
	diffs := []uint32{1, 630, 0xFFFFFFFF}

	pairs := 0
	for _, k := range ks {
		for _, diff := range diffs {
			digest, zeros := Evaluate(k, diff)

			assert.Equal(t, referenceDigest(k, diff), digest, "k=%d diff=%d", k, diff)
			assert.Equal(t, CountLeadingZeroNibbles(&digest), zeros)
			pairs++
		}
	}
	assert.Equal(t, true, pairs >= 20)
}

func Test_Evaluate_PinnedFixtures(t *testing.T) {
	fixtures := []struct {
		k      uint64
		diff   uint32
		digest string
	}{
		{1, 1, "2514375206d0c23525e3a9e35e3a2ee2da8dfccc059b658bc8b2a7637f9d712c"},
		{5, 1, "05459250ccc77a973ffff2764a4335109327a886c310e65063c88455038afedd"},
		{12345, 630, "34c22b0f30ad164b950b8f35881d400fa7d48e8dda131a4d12cc571d5205d969"},
		{1 << 22, 1, "93ea27ffd33c42dd6cb67c291b19db75645ac9d2e963fe0b816e96d4ce83601e"},
		// (2^43)^3 wraps, so this is the digest of the bare constant 2040
		{1 << 43, 1, "89fd55691c2bdeb7d9e305a3f536387de7072afc2fbdc76714f5259d640bd6db"},
		{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFF, "a7ecd1bda0dd5f5c958fa70fd84e1e585a4fa783e3455512cfd5b9003f144e84"},
	}

	for _, f := range fixtures {
		digest, _ := Evaluate(f.k, f.diff)

		var hex string
		for _, word := range digest {
			hex += fmt.Sprintf("%08x", word)
		}
		assert.Equal(t, f.digest, hex, "k=%d diff=%d", f.k, f.diff)
	}
}

func Test_Evaluate_Deterministic(t *testing.T) {
	firstDigest, firstZeros := Evaluate(12345, 630)
	for i := 0; i < 5; i++ {
		digest, zeros := Evaluate(12345, 630)
		assert.Equal(t, firstDigest, digest)
		assert.Equal(t, firstZeros, zeros)
	}
}

func Test_EvaluateBatch_EndToEnd(t *testing.T) {
	const startK = 1
	const n = 5

	rb := NewResultBuffer()
	EvaluateBatch(rb, 1, 0, startK, n, 2)

	assert.Equal(t, uint32(n), rb.HitCount())

	for slot := 0; slot < n; slot++ {
		index, digest := rb.Slot(slot)
		assert.Equal(t, true, index < n)

		// digest of SHA256(SHA256("HAHA" ++ bytes((startK+index)^3 + 2040)))
		assert.Equal(t, referenceDigest(startK+uint64(index), 1), digest)
	}
}

func Test_EvaluateBatch_StartKZero(t *testing.T) {
	rb := NewResultBuffer()
	EvaluateBatch(rb, 1, 0, 0, 5, 1)

	assert.Equal(t, uint32(5), rb.HitCount())
	for slot := 0; slot < 5; slot++ {
		index, digest := rb.Slot(slot)
		assert.Equal(t, referenceDigest(uint64(index), 1), digest)
	}
}

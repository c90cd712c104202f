/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SetThreads(t *testing.T) {
	engine := NewEngine(1)

	assert.Equal(t, engine.threads, 1)

	engine.SetThreads(1)
	assert.Equal(t, engine.Threads(), 1)

	engine.SetThreads(2)
	assert.Equal(t, engine.Threads(), 2)

	engine.SetThreads(0)
	assert.Equal(t, engine.Threads(), runtime.NumCPU())
}

func Test_SearchBatch(t *testing.T) {
	engine := NewEngine(2)

	result := engine.SearchBatch(1, 0, 1, 5)

	assert.Equal(t, uint32(5), result.HitCount)
	assert.Equal(t, 5, len(result.Solutions))

	for _, sol := range result.Solutions {
		assert.Equal(t, sol.K, result.StartK+uint64(sol.EvaluatorIndex))
		assert.Equal(t, referenceDigest(sol.K, sol.Diff), sol.Digest)
	}
}

func Test_SearchBatch_NoHits(t *testing.T) {
	engine := NewEngine(2)

	result := engine.SearchBatch(630, 64, 0, 16)

	assert.Equal(t, uint32(0), result.HitCount)
	assert.Equal(t, 0, len(result.Solutions))
}

func Test_Solution_Display(t *testing.T) {
	engine := NewEngine(1)
	result := engine.SearchBatch(1, 0, 1, 1)

	assert.Equal(t, 1, len(result.Solutions))
	sol := result.Solutions[0]

	assert.Equal(t, []byte{'H', 'A', 'H', 'A', 0x00, 0x00, 0x07, 0xF9}, sol.Preimage())
	assert.Equal(t, "2514375206d0c23525e3a9e35e3a2ee2da8dfccc059b658bc8b2a7637f9d712c", sol.DigestHex())
}

/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

import (
	"runtime"
	"sync"

	"github.com/cubeteam/go-cube/pow/sha256"
)

// Evaluate runs the full pipeline for a single candidate identity: derive
// the cube nonce, hash the marked nonce message, hash the first digest
// again, and count leading zero nibbles of the final digest.
func Evaluate(k uint64, diff uint32) ([8]uint32, int) {
	nonce := NewCubeNonce(k, diff)

	block := nonceBlock(nonce, nonce.SignificantLength())
	state := sha256.InitState()
	sha256.Compress(&state, &block)

	block = digestBlock(&state)
	final := sha256.InitState()
	sha256.Compress(&final, &block)

	return final, CountLeadingZeroNibbles(&final)
}

// EvaluateBatch evaluates the candidate identities startK+i for i in [0, n)
// and records qualifying hits in the shared result buffer. The index range
// is split into contiguous per-thread segments; tasks share no state except
// the buffer's atomic counter and always run to completion.
func EvaluateBatch(results ResultBuffer, diff uint32, targetZeros uint32, startK uint64, n uint64, threads int) {
	if n == 0 {
		return
	}

	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if uint64(threads) > n {
		threads = int(n)
	}

	segment := n / uint64(threads)

	var pend sync.WaitGroup
	pend.Add(threads)

	for i := 0; i < threads; i++ {
		go func(id int) {
			defer pend.Done()

			min := uint64(id) * segment
			max := min + segment
			if id == threads-1 {
				max = n
			}

			for index := min; index < max; index++ {
				digest, zeros := Evaluate(startK+index, diff)
				if uint32(zeros) >= targetZeros {
					results.record(uint32(index), &digest)
				}
			}
		}(i)
	}

	pend.Wait()
}

/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package pow

import (
	"runtime"

	metrics "github.com/rcrowley/go-metrics"

	"github.com/cubeteam/go-cube/common"
	"github.com/cubeteam/go-cube/log"
)

// Engine runs the cube nonce search batch by batch.
type Engine struct {
	threads  int
	log      *log.CubeLog
	hashrate metrics.Meter
}

func NewEngine(threads int) *Engine {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	return &Engine{
		threads:  threads,
		log:      log.GetLogger("pow_engine", common.LogConfig.PrintLog),
		hashrate: metrics.GetOrRegisterMeter("miner.hashrate", nil),
	}
}

// SetThreads sets the number of evaluation threads per batch.
func (engine *Engine) SetThreads(threads int) {
	if threads <= 0 {
		engine.threads = runtime.NumCPU()
	} else {
		engine.threads = threads
	}
}

// Threads returns the thread number of the engine.
func (engine *Engine) Threads() int {
	return engine.threads
}

// Hashrate returns the average number of candidates evaluated per second.
func (engine *Engine) Hashrate() float64 {
	return engine.hashrate.Rate1()
}

// SearchBatch evaluates batchSize candidates starting at startK and returns
// the decoded results. A batch always runs every task to completion; a
// search is aborted only between batches.
func (engine *Engine) SearchBatch(diff uint32, targetZeros uint32, startK uint64, batchSize uint64) *BatchResult {
	results := NewResultBuffer()
	EvaluateBatch(results, diff, targetZeros, startK, batchSize, engine.threads)
	engine.hashrate.Mark(int64(batchSize))

	result := &BatchResult{
		StartK:      startK,
		BatchSize:   batchSize,
		Diff:        diff,
		TargetZeros: targetZeros,
		HitCount:    results.HitCount(),
	}

	populated := int(result.HitCount)
	if populated > SlotCapacity {
		populated = SlotCapacity
	}

	for slot := 0; slot < populated; slot++ {
		index, digest := results.Slot(slot)
		result.Solutions = append(result.Solutions, &Solution{
			K:              startK + uint64(index),
			Diff:           diff,
			EvaluatorIndex: index,
			Digest:         digest,
		})
	}

	if result.HitCount > 0 {
		engine.log.Debug("batch startK=%d found %d qualifying candidates", startK, result.HitCount)
	}

	return result
}

/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package miner

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cubeteam/go-cube/common/hexutil"
	"github.com/cubeteam/go-cube/log"
	"github.com/cubeteam/go-cube/pow"
)

var (
	// ErrMinerIsRunning is returned when miner is running
	ErrMinerIsRunning = errors.New("miner is running")

	// ErrMinerIsStopped is returned when miner is stopped
	ErrMinerIsStopped = errors.New("miner is stopped")
)

// progressInterval is the number of batches between progress log lines.
const progressInterval = 16

// Miner drives the batch search: it advances the candidate range batch by
// batch, verifies and persists hits, and reports results on a channel.
type Miner struct {
	mining   int32
	wg       sync.WaitGroup
	stopChan chan struct{}

	config   *Config
	engine   *pow.Engine
	store    *SolutionStore
	verifier *verifier
	results  chan *pow.BatchResult

	log *log.CubeLog
}

// NewMiner constructs and returns a miner instance. The store may be nil,
// in which case found solutions are only logged and reported.
func NewMiner(config *Config, engine *pow.Engine, store *SolutionStore) *Miner {
	return &Miner{
		config:   config,
		engine:   engine,
		store:    store,
		verifier: newVerifier(config.Diff, config.TargetZeros),
		results:  make(chan *pow.BatchResult, 1),
		log:      log.GetLogger("miner", config.PrintLog),
	}
}

// Results delivers batches that contained at least one qualifying hit.
func (miner *Miner) Results() <-chan *pow.BatchResult {
	return miner.results
}

// GetEngine returns the search engine of the miner.
func (miner *Miner) GetEngine() *pow.Engine {
	return miner.engine
}

// SetThreads sets the number of evaluation threads.
func (miner *Miner) SetThreads(threads int) {
	miner.engine.SetThreads(threads)
}

// Start is used to start the miner
func (miner *Miner) Start() error {
	// CAS to ensure only 1 mining goroutine.
	if !atomic.CompareAndSwapInt32(&miner.mining, 0, 1) {
		miner.log.Info("Miner is running")
		return ErrMinerIsRunning
	}

	miner.stopChan = make(chan struct{})
	miner.wg.Add(1)
	go miner.searchLoop()

	miner.log.Info("Miner is started.")

	return nil
}

// Stop is used to stop the miner
func (miner *Miner) Stop() error {
	if !atomic.CompareAndSwapInt32(&miner.mining, 1, 0) {
		return ErrMinerIsStopped
	}

	close(miner.stopChan)
	miner.wg.Wait()

	miner.log.Info("Miner is stopped.")

	return nil
}

// IsMining returns true if the miner is started.
func (miner *Miner) IsMining() bool {
	return atomic.LoadInt32(&miner.mining) == 1
}

// searchLoop runs batches until stopped. A running batch is never
// interrupted; the stop channel is checked only between batches.
func (miner *Miner) searchLoop() {
	defer miner.wg.Done()

	startK := miner.config.StartK
	batchSize := miner.config.BatchSize

	for batches := 1; ; batches++ {
		select {
		case <-miner.stopChan:
			return
		default:
		}

		// every candidate startK+index of the batch must stay within uint64
		if batchSize-1 > math.MaxUint64-startK {
			miner.log.Warn("candidate space exhausted at k=%d", startK)
			atomic.StoreInt32(&miner.mining, 0)
			return
		}

		result := miner.engine.SearchBatch(miner.config.Diff, miner.config.TargetZeros, startK, batchSize)

		if result.HitCount > 0 {
			miner.handleResult(result)

			select {
			case miner.results <- result:
			default: // nobody is listening; keep mining
			}

			if miner.config.StopOnFound {
				atomic.StoreInt32(&miner.mining, 0)
				return
			}
		}

		if batches%progressInterval == 0 {
			miner.log.Info("checked up to k=%d, hashrate %.0f/s", startK+batchSize-1, miner.engine.Hashrate())
		}

		if startK > math.MaxUint64-batchSize {
			miner.log.Warn("candidate space exhausted at k=%d", startK+batchSize-1)
			atomic.StoreInt32(&miner.mining, 0)
			return
		}
		startK += batchSize
	}
}

// handleResult verifies the decoded solutions, logs accepted ones the way
// the host reads them (preimage and digest hex), and persists them.
func (miner *Miner) handleResult(result *pow.BatchResult) {
	accepted := make([]*pow.Solution, 0, len(result.Solutions))

	for _, sol := range result.Solutions {
		if !miner.verifier.Verify(sol) {
			miner.log.Error("rejected solution k=%d: digest does not verify", sol.K)
			continue
		}

		miner.log.Info("Found! k=%d | Data=%s | Hash=%s", sol.K, hexutil.BytesToHex(sol.Preimage()), sol.DigestHex())
		accepted = append(accepted, sol)
	}

	if result.HitCount > uint32(len(result.Solutions)) {
		miner.log.Warn("batch startK=%d had %d hits, only %d recorded", result.StartK, result.HitCount, len(result.Solutions))
	}

	if miner.store == nil || len(accepted) == 0 {
		return
	}

	if err := miner.store.PutBatch(accepted); err != nil {
		miner.log.Error("failed to store solutions: %s", err)
	}
}

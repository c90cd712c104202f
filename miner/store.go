/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package miner

import (
	"encoding/binary"

	"github.com/cubeteam/go-cube/common"
	"github.com/cubeteam/go-cube/database"
	"github.com/cubeteam/go-cube/pow"
)

var solutionPrefix = []byte("sol:")

// solutionRecord is the persisted form of a found solution. The candidate
// identity lives in the key.
type solutionRecord struct {
	Diff           uint32
	EvaluatorIndex uint32
	Digest         [8]uint32
}

// SolutionStore persists found solutions keyed by candidate identity.
type SolutionStore struct {
	db database.Database
}

func NewSolutionStore(db database.Database) *SolutionStore {
	return &SolutionStore{db: db}
}

func solutionKey(k uint64) []byte {
	key := make([]byte, len(solutionPrefix)+8)
	copy(key, solutionPrefix)
	binary.BigEndian.PutUint64(key[len(solutionPrefix):], k)

	return key
}

// Put writes one solution. A duplicate candidate overwrites; by determinism
// the content is identical.
func (store *SolutionStore) Put(sol *pow.Solution) error {
	value, err := common.Encoding(&solutionRecord{
		Diff:           sol.Diff,
		EvaluatorIndex: sol.EvaluatorIndex,
		Digest:         sol.Digest,
	})
	if err != nil {
		return err
	}

	return store.db.Put(solutionKey(sol.K), value)
}

// PutBatch writes all solutions of one batch atomically.
func (store *SolutionStore) PutBatch(sols []*pow.Solution) error {
	batch := store.db.NewBatch()

	for _, sol := range sols {
		value, err := common.Encoding(&solutionRecord{
			Diff:           sol.Diff,
			EvaluatorIndex: sol.EvaluatorIndex,
			Digest:         sol.Digest,
		})
		if err != nil {
			batch.Rollback()
			return err
		}

		batch.Put(solutionKey(sol.K), value)
	}

	return batch.Commit()
}

// Get reads the solution stored for candidate k.
func (store *SolutionStore) Get(k uint64) (*pow.Solution, error) {
	value, err := store.db.Get(solutionKey(k))
	if err != nil {
		return nil, err
	}

	record := solutionRecord{}
	if err := common.Decoding(value, &record); err != nil {
		return nil, err
	}

	return &pow.Solution{
		K:              k,
		Diff:           record.Diff,
		EvaluatorIndex: record.EvaluatorIndex,
		Digest:         record.Digest,
	}, nil
}

// Has returns whether a solution for candidate k is stored.
func (store *SolutionStore) Has(k uint64) (bool, error) {
	return store.db.Has(solutionKey(k))
}

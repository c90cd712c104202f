/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package leveldb

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/cubeteam/go-cube/common"
	"github.com/cubeteam/go-cube/database"
)

/*
 * This is a test memory database. Do not use for any production it does not get persisted
 */
type MemDatabase struct {
	db   map[string][]byte
	lock sync.RWMutex
}

func NewMemDatabase() database.Database {
	return &MemDatabase{
		db: make(map[string][]byte),
	}
}

func (db *MemDatabase) Put(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = common.CopyBytes(value)
	return nil
}

func (db *MemDatabase) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	_, ok := db.db[string(key)]
	return ok, nil
}

func (db *MemDatabase) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return common.CopyBytes(entry), nil
	}
	return nil, leveldb.ErrNotFound
}

func (db *MemDatabase) Keys() [][]byte {
	db.lock.RLock()
	defer db.lock.RUnlock()

	keys := [][]byte{}
	for key := range db.db {
		keys = append(keys, []byte(key))
	}
	return keys
}

func (db *MemDatabase) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

func (db *MemDatabase) Close() {}

// NewBatch constructs and returns a batch object
func (db *MemDatabase) NewBatch() database.Batch {
	return &memBatch{db: db}
}

type memBatch struct {
	db      *MemDatabase
	entries []memEntry
}

type memEntry struct {
	key    []byte
	value  []byte
	delete bool
}

func (b *memBatch) Put(key []byte, value []byte) {
	b.entries = append(b.entries, memEntry{common.CopyBytes(key), common.CopyBytes(value), false})
}

func (b *memBatch) Delete(key []byte) {
	b.entries = append(b.entries, memEntry{common.CopyBytes(key), nil, true})
}

func (b *memBatch) Commit() error {
	for _, entry := range b.entries {
		if entry.delete {
			if err := b.db.Delete(entry.key); err != nil {
				return err
			}
			continue
		}

		if err := b.db.Put(entry.key, entry.value); err != nil {
			return err
		}
	}

	return nil
}

func (b *memBatch) Rollback() {
	b.entries = nil
}

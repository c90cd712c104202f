/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package database

// Database represents the interface of store
type Database interface {
	Close()
	Put(key []byte, value []byte) error
	Get(key []byte) ([]byte, error)
	Has(key []byte) (ret bool, err error)
	Delete(key []byte) error
	NewBatch() Batch
}

// Batch is the interface of batch for database
type Batch interface {
	Put(key []byte, value []byte)
	Delete(key []byte)
	Commit() error
	Rollback()
}

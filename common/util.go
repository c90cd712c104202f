/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package common

import (
	lru "github.com/hashicorp/golang-lru"
)

// MustNewCache creates a LRU cache with specified size. Panics on any error.
func MustNewCache(size int) *lru.Cache {
	cache, err := lru.New(size)
	if err != nil {
		panic(err) // error occurs only when size <= 0.
	}

	return cache
}

// CopyBytes copies and returns a new bytes from the specified source bytes.
func CopyBytes(src []byte) []byte {
	if src == nil {
		return nil
	}

	copied := make([]byte, len(src))
	copy(copied, src)

	return copied
}

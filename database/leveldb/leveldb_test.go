/**
*  @file
*  @copyright defined in go-cube/LICENSE
 */

package leveldb

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/magiconair/properties/assert"
	"github.com/syndtr/goleveldb/leveldb"
)

func Test_LevelDB(t *testing.T) {
	dir, err := ioutil.TempDir("", "leveldbtest")
	if err != nil {
		panic(err)
	}

	defer os.RemoveAll(dir)

	db, err := NewLevelDB(dir)
	assert.Equal(t, err, nil)
	defer db.Close()

	// check insert and get
	err = db.Put([]byte("1"), []byte("2"))
	assert.Equal(t, err, nil)

	value, err := db.Get([]byte("1"))
	assert.Equal(t, err, nil)
	assert.Equal(t, value, []byte("2"))

	// check whether key exists
	exist, err := db.Has([]byte("1"))
	assert.Equal(t, err, nil)
	assert.Equal(t, exist, true)

	// check update and get
	err = db.Put([]byte("1"), []byte("3"))
	assert.Equal(t, err, nil)

	value, err = db.Get([]byte("1"))
	assert.Equal(t, err, nil)
	assert.Equal(t, value, []byte("3"))

	// delete key
	err = db.Delete([]byte("1"))
	assert.Equal(t, err, nil)

	// check not found
	_, err = db.Get([]byte("3"))
	assert.Equal(t, err, leveldb.ErrNotFound)

	// empty set
	exist, err = db.Has([]byte("1"))
	assert.Equal(t, err, nil)
	assert.Equal(t, exist, false)
}

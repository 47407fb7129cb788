// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Owners          *PoolHandle `prefix:"O"` // token id → owner
	OwnerCount      *PoolHandle `prefix:"N"` // owner → balance
	OwnerList       *PoolHandle `prefix:"L"` // owner ⧺ index → token id
	OwnerTokenIndex *PoolHandle `prefix:"D"` // owner ⧺ token id → index
	TokenList       *PoolHandle `prefix:"G"` // index → token id
	TokenIndex      *PoolHandle `prefix:"I"` // token id → index
	Approvals       *PoolHandle `prefix:"P"` // token id → approved delegate
	Operators       *PoolHandle `prefix:"A"` // owner ⧺ operator → flag
	Metadata        *PoolHandle `prefix:"M"` // token id → descriptor
	Counters        *PoolHandle `prefix:"C"` // counter name → value
	TestData        *PoolHandle `prefix:"Z"` // for testing only
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x101
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
	trx   Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		logger.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			db.Close()
			return err
		}
	}

	poolData.db = db
	poolData.batch = new(leveldb.Batch)
	poolData.cache = newCache()

	access := newAccess(db, poolData.batch, poolData.cache)
	poolData.trx = newTransaction([]Access{access})

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			poolData.db = nil
			db.Close()
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			db:         db,
			dataAccess: access,
		}

		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}
	poolData.db.Close()
	poolData.db = nil
	poolData.trx = nil
}

// NewDBTransaction - begin a transaction over the whole database
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.trx {
		return nil, fault.DatabaseIsNotSet
	}
	if err := poolData.trx.Begin(); nil != err {
		return nil, err
	}
	return poolData.trx, nil
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

package lvldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/sprintertech/bridge-orchestrator/store"
)

type LVLDB struct {
	db *leveldb.DB
}

func NewLvlDB(path string) (*LVLDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("levelDB.OpenFile fail: %w", err)
	}
	return &LVLDB{db: db}, nil
}

// NewMemLvlDB opens a levelDB instance backed by memory storage
func NewMemLvlDB() (*LVLDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &LVLDB{db: db}, nil
}

func (d *LVLDB) Get(_ context.Context, key string) ([]byte, error) {
	v, err := d.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (d *LVLDB) Put(_ context.Context, key string, value []byte) error {
	return d.db.Put([]byte(key), value, nil)
}

func (d *LVLDB) Delete(_ context.Context, key string) error {
	return d.db.Delete([]byte(key), nil)
}

func (d *LVLDB) List(_ context.Context, prefix string) ([]store.Entry, error) {
	iter := d.db.NewIterator(util.BytesPrefix([]byte(prefix)), nil)
	defer iter.Release()

	entries := make([]store.Entry, 0)
	for iter.Next() {
		// iterator buffers are reused between calls
		entries = append(entries, store.Entry{
			Key:   string(iter.Key()),
			Value: append([]byte(nil), iter.Value()...),
		})
	}
	return entries, iter.Error()
}

func (d *LVLDB) Close() error {
	return d.db.Close()
}

package boltdb

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	bolt "go.etcd.io/bbolt"

	"github.com/subnetstack/anchor/storage"
)

// single bucket holding all contract state
var bucket = []byte("anchor")

// NewBoltDBStorage creates a bbolt backed storage at the given path
func NewBoltDBStorage(path string, logger hclog.Logger) (storage.Storage, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket=%s: %w", string(bucket), err)
	}

	return &boltDBStorage{
		logger: logger.Named("boltdb"),
		db:     db,
	}, nil
}

type boltDBStorage struct {
	logger hclog.Logger
	db     *bolt.DB
}

func (s *boltDBStorage) Update(fn func(txn storage.Txn) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return fn(&boltTxn{tx.Bucket(bucket)})
	})
}

func (s *boltDBStorage) View(fn func(txn storage.Txn) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return fn(&boltTxn{tx.Bucket(bucket)})
	})
}

func (s *boltDBStorage) Close() error {
	return s.db.Close()
}

type boltTxn struct {
	bucket *bolt.Bucket
}

func (t *boltTxn) Set(p []byte, v []byte) error {
	return t.bucket.Put(p, v)
}

func (t *boltTxn) Get(p []byte) ([]byte, bool, error) {
	v := t.bucket.Get(p)
	if v == nil {
		return nil, false, nil
	}

	data := make([]byte, len(v))
	copy(data, v)

	return data, true, nil
}

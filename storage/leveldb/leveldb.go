package leveldb

import (
	"github.com/hashicorp/go-hclog"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/subnetstack/anchor/storage"
)

// NewLevelDBStorage creates a leveldb backed storage at the given path
func NewLevelDBStorage(path string, logger hclog.Logger) (storage.Storage, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	return &levelDBStorage{
		logger: logger.Named("leveldb"),
		db:     db,
	}, nil
}

type levelDBStorage struct {
	logger hclog.Logger
	db     *leveldb.DB
}

func (s *levelDBStorage) Update(fn func(txn storage.Txn) error) error {
	tx, err := s.db.OpenTransaction()
	if err != nil {
		return err
	}

	if err := fn(&levelDBTxn{tx}); err != nil {
		tx.Discard()

		return err
	}

	return tx.Commit()
}

func (s *levelDBStorage) View(fn func(txn storage.Txn) error) error {
	snap, err := s.db.GetSnapshot()
	if err != nil {
		return err
	}
	defer snap.Release()

	return fn(&levelDBSnapshotTxn{snap})
}

func (s *levelDBStorage) Close() error {
	return s.db.Close()
}

type levelDBTxn struct {
	tx *leveldb.Transaction
}

func (t *levelDBTxn) Set(p []byte, v []byte) error {
	return t.tx.Put(p, v, nil)
}

func (t *levelDBTxn) Get(p []byte) ([]byte, bool, error) {
	data, err := t.tx.Get(p, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, false, nil
		}

		return nil, false, err
	}

	return data, true, nil
}

type levelDBSnapshotTxn struct {
	snap *leveldb.Snapshot
}

func (t *levelDBSnapshotTxn) Set(p []byte, v []byte) error {
	return leveldb.ErrReadOnly
}

func (t *levelDBSnapshotTxn) Get(p []byte) ([]byte, bool, error) {
	data, err := t.snap.Get(p, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, false, nil
		}

		return nil, false, err
	}

	return data, true, nil
}

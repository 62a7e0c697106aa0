package memory

import (
	"sync"

	"github.com/subnetstack/anchor/storage"
)

// NewMemoryStorage creates an in-memory storage, used for testing and
// local development
func NewMemoryStorage() storage.Storage {
	return &memoryStorage{
		db: map[string][]byte{},
	}
}

type memoryStorage struct {
	lock sync.RWMutex
	db   map[string][]byte
}

func (s *memoryStorage) Update(fn func(txn storage.Txn) error) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	txn := &memoryTxn{
		db:      s.db,
		pending: map[string][]byte{},
	}

	if err := fn(txn); err != nil {
		return err
	}

	for k, v := range txn.pending {
		s.db[k] = v
	}

	return nil
}

func (s *memoryStorage) View(fn func(txn storage.Txn) error) error {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return fn(&memoryTxn{
		db:       s.db,
		readOnly: true,
	})
}

func (s *memoryStorage) Close() error {
	return nil
}

type memoryTxn struct {
	db       map[string][]byte
	pending  map[string][]byte
	readOnly bool
}

func (t *memoryTxn) Set(p []byte, v []byte) error {
	if t.readOnly {
		return storage.ErrReadOnlyTxn
	}

	buf := make([]byte, len(v))
	copy(buf, v)

	t.pending[string(p)] = buf

	return nil
}

func (t *memoryTxn) Get(p []byte) ([]byte, bool, error) {
	if v, ok := t.pending[string(p)]; ok {
		return append([]byte(nil), v...), true, nil
	}

	if v, ok := t.db[string(p)]; ok {
		return append([]byte(nil), v...), true, nil
	}

	return nil, false, nil
}

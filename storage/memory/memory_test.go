package memory

import (
	"testing"

	"github.com/subnetstack/anchor/storage"
)

func TestMemoryStorage(t *testing.T) {
	storage.TestStorage(t, func(t *testing.T) storage.Storage {
		t.Helper()

		return NewMemoryStorage()
	})
}

package leveldb

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/subnetstack/anchor/storage"
)

func TestLevelDBStorage(t *testing.T) {
	storage.TestStorage(t, func(t *testing.T) storage.Storage {
		t.Helper()

		s, err := NewLevelDBStorage(t.TempDir(), hclog.NewNullLogger())
		require.NoError(t, err)

		return s
	})
}

package boltdb

import (
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/subnetstack/anchor/storage"
)

func TestBoltDBStorage(t *testing.T) {
	storage.TestStorage(t, func(t *testing.T) storage.Storage {
		t.Helper()

		s, err := NewBoltDBStorage(filepath.Join(t.TempDir(), "anchor.db"), hclog.NewNullLogger())
		require.NoError(t, err)

		return s
	})
}

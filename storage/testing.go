package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStorage runs the conformance suite every backend must satisfy
func TestStorage(t *testing.T, newStorage func(t *testing.T) Storage) {
	t.Helper()

	t.Run("SetGet", func(t *testing.T) {
		testSetGet(t, newStorage(t))
	})
	t.Run("FailedUpdateRollsBack", func(t *testing.T) {
		testFailedUpdateRollsBack(t, newStorage(t))
	})
	t.Run("ReadYourWrites", func(t *testing.T) {
		testReadYourWrites(t, newStorage(t))
	})
}

func testSetGet(t *testing.T, s Storage) {
	t.Helper()
	defer s.Close()

	require.NoError(t, s.Update(func(txn Txn) error {
		return txn.Set([]byte("key"), []byte("value"))
	}))

	err := s.View(func(txn Txn) error {
		v, ok, err := txn.Get([]byte("key"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("value"), v)

		_, ok, err = txn.Get([]byte("missing"))
		require.NoError(t, err)
		assert.False(t, ok)

		return nil
	})
	require.NoError(t, err)
}

func testFailedUpdateRollsBack(t *testing.T, s Storage) {
	t.Helper()
	defer s.Close()

	errAbort := errors.New("abort")

	err := s.Update(func(txn Txn) error {
		if err := txn.Set([]byte("key"), []byte("value")); err != nil {
			return err
		}

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	err = s.View(func(txn Txn) error {
		_, ok, err := txn.Get([]byte("key"))
		require.NoError(t, err)
		assert.False(t, ok, "aborted write must not be visible")

		return nil
	})
	require.NoError(t, err)
}

func testReadYourWrites(t *testing.T, s Storage) {
	t.Helper()
	defer s.Close()

	err := s.Update(func(txn Txn) error {
		if err := txn.Set([]byte("key"), []byte("value")); err != nil {
			return err
		}

		v, ok, err := txn.Get([]byte("key"))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("value"), v)

		return nil
	})
	require.NoError(t, err)
}

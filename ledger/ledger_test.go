package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subnetstack/anchor/storage"
	"github.com/subnetstack/anchor/storage/memory"
	"github.com/subnetstack/anchor/types"
)

var (
	addr1 = types.Address{0x1}
	addr2 = types.Address{0x2}
)

func TestTransfer(t *testing.T) {
	s := memory.NewMemoryStorage()
	defer s.Close()

	err := s.Update(func(txn storage.Txn) error {
		require.NoError(t, SetBalance(txn, addr1, 100))

		require.NoError(t, Transfer(txn, addr1, addr2, 60))

		b1, err := BalanceOf(txn, addr1)
		require.NoError(t, err)
		assert.Equal(t, uint64(40), b1)

		b2, err := BalanceOf(txn, addr2)
		require.NoError(t, err)
		assert.Equal(t, uint64(60), b2)

		return nil
	})
	require.NoError(t, err)
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	s := memory.NewMemoryStorage()
	defer s.Close()

	err := s.Update(func(txn storage.Txn) error {
		require.NoError(t, SetBalance(txn, addr1, 10))

		err := Transfer(txn, addr1, addr2, 11)
		require.ErrorIs(t, err, ErrInsufficientFunds)

		// balances untouched
		b1, err := BalanceOf(txn, addr1)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), b1)

		b2, err := BalanceOf(txn, addr2)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), b2)

		return nil
	})
	require.NoError(t, err)
}

func TestTransfer_Overflow(t *testing.T) {
	s := memory.NewMemoryStorage()
	defer s.Close()

	err := s.Update(func(txn storage.Txn) error {
		require.NoError(t, SetBalance(txn, addr1, 10))
		require.NoError(t, SetBalance(txn, addr2, math.MaxUint64))

		err := Transfer(txn, addr1, addr2, 1)
		require.ErrorIs(t, err, ErrBalanceOverflow)

		return nil
	})
	require.NoError(t, err)
}

func TestBalanceOf_MissingAccount(t *testing.T) {
	s := memory.NewMemoryStorage()
	defer s.Close()

	err := s.View(func(txn storage.Txn) error {
		balance, err := BalanceOf(txn, addr1)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), balance)

		return nil
	})
	require.NoError(t, err)
}

package ledger

import (
	"errors"
	"math"

	"github.com/subnetstack/anchor/helper/common"
	"github.com/subnetstack/anchor/storage"
	"github.com/subnetstack/anchor/types"
)

// balance is the account balance prefix
var balancePrefix = []byte("b")

var (
	ErrInsufficientFunds = errors.New("insufficient funds for transfer")
	ErrBalanceOverflow   = errors.New("balance overflow")
)

// BalanceOf returns the layer-1 balance of the given account
func BalanceOf(txn storage.Txn, addr types.Address) (uint64, error) {
	v, ok, err := txn.Get(balanceKey(addr))
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, nil
	}

	return common.EncodeBytesToUint64(v), nil
}

// SetBalance overwrites the balance of the given account. Used only when
// applying the premine at deployment.
func SetBalance(txn storage.Txn, addr types.Address, amount uint64) error {
	return txn.Set(balanceKey(addr), common.EncodeUint64ToBytes(amount))
}

// Transfer atomically moves amount between two accounts. The enclosing
// storage transaction guarantees either both balance writes apply or
// neither does.
func Transfer(txn storage.Txn, from, to types.Address, amount uint64) error {
	fromBalance, err := BalanceOf(txn, from)
	if err != nil {
		return err
	}

	if fromBalance < amount {
		return ErrInsufficientFunds
	}

	toBalance, err := BalanceOf(txn, to)
	if err != nil {
		return err
	}

	if toBalance > math.MaxUint64-amount {
		return ErrBalanceOverflow
	}

	if err := SetBalance(txn, from, fromBalance-amount); err != nil {
		return err
	}

	return SetBalance(txn, to, toBalance+amount)
}

func balanceKey(addr types.Address) []byte {
	return append(balancePrefix, addr.Bytes()...)
}

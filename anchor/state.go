package anchor

import (
	"encoding/json"
	"fmt"

	"github.com/subnetstack/anchor/helper/common"
	"github.com/subnetstack/anchor/storage"
	"github.com/subnetstack/anchor/types"
)

// key prefixes

var (
	// COMMITMENT is the prefix for block commitments, keyed by height
	COMMITMENT = []byte("c")

	// DEPOSIT is the prefix for deposits, keyed by (depositor, nonce)
	DEPOSIT = []byte("d")

	// WITHDRAWAL is the prefix for withdrawal requests, keyed by
	// (requester, nonce)
	WITHDRAWAL = []byte("w")

	// DEPOSIT_NONCE is the prefix for per-depositor nonce counters
	DEPOSIT_NONCE = []byte("dn")

	// WITHDRAWAL_NONCE is the prefix for per-requester nonce counters
	WITHDRAWAL_NONCE = []byte("wn")

	// ESCROW holds the acknowledged escrow balance
	ESCROW = []byte("escrow")

	// RESERVED holds the approved, not yet settled withdrawal total
	RESERVED = []byte("reserved")

	// GENESIS marks an initialized deployment
	GENESIS = []byte("genesis")
)

func commitmentKey(height uint64) []byte {
	return append(COMMITMENT, common.EncodeUint64ToBytes(height)...)
}

func depositKey(id DepositID) []byte {
	key := append(DEPOSIT, id.Depositor.Bytes()...)

	return append(key, common.EncodeUint64ToBytes(id.Nonce)...)
}

func withdrawalKey(id WithdrawalID) []byte {
	key := append(WITHDRAWAL, id.Requester.Bytes()...)

	return append(key, common.EncodeUint64ToBytes(id.Nonce)...)
}

func readCommitment(txn storage.Txn, height uint64) (types.Hash, bool, error) {
	v, ok, err := txn.Get(commitmentKey(height))
	if err != nil || !ok {
		return types.ZeroHash, ok, err
	}

	return types.BytesToHash(v), true, nil
}

func writeCommitment(txn storage.Txn, height uint64, digest types.Hash) error {
	return txn.Set(commitmentKey(height), digest.Bytes())
}

func readDeposit(txn storage.Txn, id DepositID) (*Deposit, bool, error) {
	return readRecord[Deposit](txn, depositKey(id))
}

func writeDeposit(txn storage.Txn, id DepositID, deposit *Deposit) error {
	return writeRecord(txn, depositKey(id), deposit)
}

func readWithdrawal(txn storage.Txn, id WithdrawalID) (*Withdrawal, bool, error) {
	return readRecord[Withdrawal](txn, withdrawalKey(id))
}

func writeWithdrawal(txn storage.Txn, id WithdrawalID, withdrawal *Withdrawal) error {
	return writeRecord(txn, withdrawalKey(id), withdrawal)
}

// nextNonce allocates the next per-account nonce under the given prefix
func nextNonce(txn storage.Txn, prefix []byte, addr types.Address) (uint64, error) {
	key := append(append([]byte{}, prefix...), addr.Bytes()...)

	var nonce uint64

	v, ok, err := txn.Get(key)
	if err != nil {
		return 0, err
	}

	if ok {
		nonce = common.EncodeBytesToUint64(v)
	}

	if err := txn.Set(key, common.EncodeUint64ToBytes(nonce+1)); err != nil {
		return 0, err
	}

	return nonce, nil
}

func readUint(txn storage.Txn, key []byte) (uint64, error) {
	v, ok, err := txn.Get(key)
	if err != nil || !ok {
		return 0, err
	}

	return common.EncodeBytesToUint64(v), nil
}

func writeUint(txn storage.Txn, key []byte, value uint64) error {
	return txn.Set(key, common.EncodeUint64ToBytes(value))
}

func readRecord[T any](txn storage.Txn, key []byte) (*T, bool, error) {
	v, ok, err := txn.Get(key)
	if err != nil || !ok {
		return nil, ok, err
	}

	record := new(T)
	if err := json.Unmarshal(v, record); err != nil {
		return nil, false, fmt.Errorf("failed to decode record: %w", err)
	}

	return record, true, nil
}

func writeRecord[T any](txn storage.Txn, key []byte, record *T) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	return txn.Set(key, raw)
}

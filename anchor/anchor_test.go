package anchor

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subnetstack/anchor/chain"
	"github.com/subnetstack/anchor/storage/memory"
	"github.com/subnetstack/anchor/types"
)

// addresses used in tests
var (
	operatorA = types.Address{0xA}
	operatorB = types.Address{0xB}
	operatorC = types.Address{0xC}

	userU = types.Address{0x11}
	userX = types.Address{0x12}
)

var (
	digest1 = types.StringToHash("0x01")
	digest2 = types.StringToHash("0x02")
	digest3 = types.StringToHash("0x03")
)

func newTestAnchor(t *testing.T, premine ...chain.PremineAccount) *Anchor {
	t.Helper()

	config := &chain.Chain{
		Name:      "test",
		Operators: []types.Address{operatorA, operatorB, operatorC},
		Premine:   premine,
	}

	a, err := NewAnchor(hclog.NewNullLogger(), memory.NewMemoryStorage(), config, NilMetrics())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = a.Close()
	})

	return a
}

func TestCommitBlock_FirstCommitWins(t *testing.T) {
	a := newTestAnchor(t)

	// A commits height 100
	require.NoError(t, a.CommitBlock(TxContext{Sender: operatorA}, 100, digest1))

	// B races on the same height and loses
	err := a.CommitBlock(TxContext{Sender: operatorB}, 100, digest2)
	require.ErrorIs(t, err, ErrAlreadyCommitted)

	// the ledger still shows A's digest
	digest, exists, err := a.GetCommitment(100)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, digest1, digest)

	// a non-operator cannot commit, even at a free height
	err = a.CommitBlock(TxContext{Sender: userX}, 101, digest3)
	require.ErrorIs(t, err, ErrUnauthorizedCaller)

	_, exists, err = a.GetCommitment(101)
	require.NoError(t, err)
	assert.False(t, exists)

	// B commits the free height
	require.NoError(t, a.CommitBlock(TxContext{Sender: operatorB}, 101, digest3))

	digest, exists, err = a.GetCommitment(101)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, digest3, digest)
}

func TestCommitBlock_HeightsNotMonotonic(t *testing.T) {
	a := newTestAnchor(t)

	// gaps and out-of-order commits are tolerated, only uniqueness per
	// height is enforced
	require.NoError(t, a.CommitBlock(TxContext{Sender: operatorA}, 200, digest1))
	require.NoError(t, a.CommitBlock(TxContext{Sender: operatorA}, 150, digest2))

	err := a.CommitBlock(TxContext{Sender: operatorB}, 150, digest2)
	require.ErrorIs(t, err, ErrAlreadyCommitted)
}

func TestDeposit_InvalidAmount(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 1000})

	_, err := a.Deposit(TxContext{Sender: userU}, 0)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestDeposit_InsufficientFunds(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 100})

	_, err := a.Deposit(TxContext{Sender: userU}, 200)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// the failed deposit left no trace
	balance, err := a.BalanceOf(userU)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)

	_, exists, err := a.GetDeposit(DepositID{Depositor: userU, Nonce: 0})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeposit_UniqueIDsPerDepositor(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 1000})

	id1, err := a.Deposit(TxContext{Sender: userU}, 100)
	require.NoError(t, err)

	id2, err := a.Deposit(TxContext{Sender: userU}, 100)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, uint64(0), id1.Nonce)
	assert.Equal(t, uint64(1), id2.Nonce)

	// both deposits are pending and individually addressable
	for _, id := range []DepositID{id1, id2} {
		deposit, exists, err := a.GetDeposit(id)
		require.NoError(t, err)
		require.True(t, exists)
		assert.Equal(t, DepositPending, deposit.Status)
		assert.Equal(t, uint64(100), deposit.Amount)
	}
}

func TestAckDeposit(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 1000})

	id, err := a.Deposit(TxContext{Sender: userU}, 500)
	require.NoError(t, err)

	// pending deposits are held but not part of acknowledged escrow
	info, err := a.GetEscrowInfo()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), info.Escrow)
	assert.Equal(t, uint64(500), info.Held)

	// only operators may acknowledge
	err = a.AckDeposit(TxContext{Sender: userX}, id)
	require.ErrorIs(t, err, ErrUnauthorizedCaller)

	// unknown deposit
	err = a.AckDeposit(TxContext{Sender: operatorA}, DepositID{Depositor: userX, Nonce: 7})
	require.ErrorIs(t, err, ErrUnknownDeposit)

	require.NoError(t, a.AckDeposit(TxContext{Sender: operatorA}, id))

	deposit, exists, err := a.GetDeposit(id)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, DepositAcknowledged, deposit.Status)

	info, err = a.GetEscrowInfo()
	require.NoError(t, err)
	assert.Equal(t, uint64(500), info.Escrow)

	// double acknowledgment
	err = a.AckDeposit(TxContext{Sender: operatorB}, id)
	require.ErrorIs(t, err, ErrAlreadyAcknowledged)
}

func TestWithdrawal_RoundTrip(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 500})

	depositID, err := a.Deposit(TxContext{Sender: userU}, 500)
	require.NoError(t, err)

	require.NoError(t, a.AckDeposit(TxContext{Sender: operatorA}, depositID))

	withdrawalID, err := a.RequestWithdrawal(TxContext{Sender: userU}, 500)
	require.NoError(t, err)

	require.NoError(t, a.ApproveWithdrawal(TxContext{Sender: operatorA}, withdrawalID))

	// approval reserves the escrow without moving funds
	info, err := a.GetEscrowInfo()
	require.NoError(t, err)
	assert.Equal(t, uint64(500), info.Escrow)
	assert.Equal(t, uint64(500), info.Reserved)
	assert.Equal(t, uint64(500), info.Held)

	require.NoError(t, a.SettleWithdrawal(TxContext{Sender: userU}, withdrawalID))

	// the round trip leaves a zero net balance delta and empty escrow
	balance, err := a.BalanceOf(userU)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), balance)

	info, err = a.GetEscrowInfo()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), info.Escrow)
	assert.Equal(t, uint64(0), info.Reserved)
	assert.Equal(t, uint64(0), info.Held)

	withdrawal, exists, err := a.GetWithdrawal(withdrawalID)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, WithdrawalSettled, withdrawal.Status)
}

func TestRequestWithdrawal_InvalidAmount(t *testing.T) {
	a := newTestAnchor(t)

	_, err := a.RequestWithdrawal(TxContext{Sender: userU}, 0)
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestApproveWithdrawal(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 1000})

	depositID, err := a.Deposit(TxContext{Sender: userU}, 500)
	require.NoError(t, err)
	require.NoError(t, a.AckDeposit(TxContext{Sender: operatorA}, depositID))

	withdrawalID, err := a.RequestWithdrawal(TxContext{Sender: userU}, 600)
	require.NoError(t, err)

	// only operators may approve
	err = a.ApproveWithdrawal(TxContext{Sender: userU}, withdrawalID)
	require.ErrorIs(t, err, ErrUnauthorizedCaller)

	// unknown request
	err = a.ApproveWithdrawal(TxContext{Sender: operatorA}, WithdrawalID{Requester: userX, Nonce: 3})
	require.ErrorIs(t, err, ErrUnknownRequest)

	// request exceeds acknowledged escrow, state is unchanged
	err = a.ApproveWithdrawal(TxContext{Sender: operatorA}, withdrawalID)
	require.ErrorIs(t, err, ErrInsufficientEscrow)

	withdrawal, _, err := a.GetWithdrawal(withdrawalID)
	require.NoError(t, err)
	assert.Equal(t, WithdrawalRequested, withdrawal.Status)

	info, err := a.GetEscrowInfo()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), info.Reserved)
}

func TestApproveWithdrawal_PendingDepositsExcluded(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 1000})

	// deposit held in escrow but never acknowledged
	_, err := a.Deposit(TxContext{Sender: userU}, 500)
	require.NoError(t, err)

	withdrawalID, err := a.RequestWithdrawal(TxContext{Sender: userU}, 500)
	require.NoError(t, err)

	err = a.ApproveWithdrawal(TxContext{Sender: operatorA}, withdrawalID)
	require.ErrorIs(t, err, ErrInsufficientEscrow)
}

func TestApproveWithdrawal_ReservedExcluded(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 500})

	depositID, err := a.Deposit(TxContext{Sender: userU}, 500)
	require.NoError(t, err)
	require.NoError(t, a.AckDeposit(TxContext{Sender: operatorA}, depositID))

	first, err := a.RequestWithdrawal(TxContext{Sender: userU}, 300)
	require.NoError(t, err)

	second, err := a.RequestWithdrawal(TxContext{Sender: userU}, 300)
	require.NoError(t, err)

	require.NoError(t, a.ApproveWithdrawal(TxContext{Sender: operatorA}, first))

	// the reserved 300 is excluded from the spendable pool
	err = a.ApproveWithdrawal(TxContext{Sender: operatorB}, second)
	require.ErrorIs(t, err, ErrInsufficientEscrow)
}

func TestSettleWithdrawal_WrongState(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 500})

	depositID, err := a.Deposit(TxContext{Sender: userU}, 500)
	require.NoError(t, err)
	require.NoError(t, a.AckDeposit(TxContext{Sender: operatorA}, depositID))

	withdrawalID, err := a.RequestWithdrawal(TxContext{Sender: userU}, 500)
	require.NoError(t, err)

	// settling a requested withdrawal skips the approval step
	err = a.SettleWithdrawal(TxContext{Sender: userU}, withdrawalID)
	require.ErrorIs(t, err, ErrWrongState)

	// unknown request
	err = a.SettleWithdrawal(TxContext{Sender: userU}, WithdrawalID{Requester: userX, Nonce: 9})
	require.ErrorIs(t, err, ErrUnknownRequest)

	require.NoError(t, a.ApproveWithdrawal(TxContext{Sender: operatorA}, withdrawalID))
	require.NoError(t, a.SettleWithdrawal(TxContext{Sender: userU}, withdrawalID))

	// double settlement
	err = a.SettleWithdrawal(TxContext{Sender: userU}, withdrawalID)
	require.ErrorIs(t, err, ErrWrongState)
}

func TestRejectWithdrawal(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 500})

	withdrawalID, err := a.RequestWithdrawal(TxContext{Sender: userU}, 100)
	require.NoError(t, err)

	// only operators may reject
	err = a.RejectWithdrawal(TxContext{Sender: userU}, withdrawalID)
	require.ErrorIs(t, err, ErrUnauthorizedCaller)

	require.NoError(t, a.RejectWithdrawal(TxContext{Sender: operatorC}, withdrawalID))

	withdrawal, exists, err := a.GetWithdrawal(withdrawalID)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, WithdrawalRejected, withdrawal.Status)

	// rejected is terminal
	err = a.ApproveWithdrawal(TxContext{Sender: operatorA}, withdrawalID)
	require.ErrorIs(t, err, ErrWrongState)

	err = a.RejectWithdrawal(TxContext{Sender: operatorA}, withdrawalID)
	require.ErrorIs(t, err, ErrWrongState)
}

func TestEvents(t *testing.T) {
	a := newTestAnchor(t, chain.PremineAccount{Address: userU, Balance: 1000})

	sub := a.Subscribe(EventBlockCommit, EventDeposit)
	defer a.Unsubscribe(sub)

	require.NoError(t, a.CommitBlock(TxContext{Sender: operatorA}, 100, digest1))

	ev := <-sub.Ch
	assert.Equal(t, EventBlockCommit, ev.Type)
	assert.Equal(t, uint64(100), ev.Height)
	assert.Equal(t, digest1, ev.Digest)
	assert.Equal(t, operatorA, ev.Operator)

	id, err := a.Deposit(TxContext{Sender: userU}, 250)
	require.NoError(t, err)

	// the acknowledgment is filtered out by the subscription
	require.NoError(t, a.AckDeposit(TxContext{Sender: operatorB}, id))

	ev = <-sub.Ch
	assert.Equal(t, EventDeposit, ev.Type)
	assert.Equal(t, userU, ev.Account)
	assert.Equal(t, uint64(250), ev.Amount)
	assert.Equal(t, id.String(), ev.DepositID)

	select {
	case ev := <-sub.Ch:
		t.Fatalf("unexpected event %q", ev.Type)
	default:
	}
}

func TestOperatorSet(t *testing.T) {
	a := newTestAnchor(t)

	assert.True(t, a.IsOperator(operatorA))
	assert.True(t, a.IsOperator(operatorB))
	assert.True(t, a.IsOperator(operatorC))
	assert.False(t, a.IsOperator(userU))
	assert.Equal(t, []types.Address{operatorA, operatorB, operatorC}, a.Operators())
}

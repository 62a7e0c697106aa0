package anchor

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/subnetstack/anchor/chain"
	"github.com/subnetstack/anchor/ledger"
	"github.com/subnetstack/anchor/storage"
	"github.com/subnetstack/anchor/types"
)

// TxContext carries the per-transaction identity supplied by the host
// ledger. The contract never derives the sender itself.
type TxContext struct {
	Sender types.Address
}

// Anchor is the commitment-and-peg contract. It records subnet block
// digests at layer-1 heights and manages the two-way asset peg between
// layer-1 balances and the subnet's accounting.
//
// Correctness of the peg rests on a documented trust assumption: the
// contract cannot verify layer-2 state, so operators must only approve
// withdrawal requests backed by real, unspent layer-2 balance.
type Anchor struct {
	logger    hclog.Logger
	store     storage.Storage
	operators OperatorSet
	events    *eventManager
	metrics   *Metrics
}

// NewAnchor creates the contract over the given storage, applying the
// deployment configuration (operator set, premine) on first use.
func NewAnchor(
	logger hclog.Logger,
	store storage.Storage,
	config *chain.Chain,
	metrics *Metrics,
) (*Anchor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if metrics == nil {
		metrics = NilMetrics()
	}

	a := &Anchor{
		logger:    logger.Named("anchor"),
		store:     store,
		operators: NewOperatorSet(config.Operators),
		events:    newEventManager(logger.Named("anchor")),
		metrics:   metrics,
	}

	if err := a.initGenesis(config); err != nil {
		return nil, fmt.Errorf("failed to initialize deployment: %w", err)
	}

	return a, nil
}

// initGenesis applies the premine exactly once per deployment
func (a *Anchor) initGenesis(config *chain.Chain) error {
	return a.store.Update(func(txn storage.Txn) error {
		_, initialized, err := txn.Get(GENESIS)
		if err != nil {
			return err
		}

		if initialized {
			return nil
		}

		for _, acc := range config.Premine {
			if err := ledger.SetBalance(txn, acc.Address, acc.Balance); err != nil {
				return err
			}
		}

		return txn.Set(GENESIS, []byte{1})
	})
}

// Subscribe registers a listener for contract events. An empty type list
// subscribes to every event.
func (a *Anchor) Subscribe(eventTypes ...EventType) *Subscription {
	return a.events.subscribe(eventTypes)
}

// Unsubscribe cancels a previously created subscription
func (a *Anchor) Unsubscribe(sub *Subscription) {
	a.events.cancelSubscription(sub.id)
}

// Close tears down the contract and its storage
func (a *Anchor) Close() error {
	var errs error

	a.events.close()

	if err := a.store.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}

	return errs
}

// CommitBlock registers the subnet block digest at the given layer-1
// height. The first valid commit per height wins; heights are not required
// to be monotonic, only unique.
func (a *Anchor) CommitBlock(ctx TxContext, height uint64, digest types.Hash) error {
	if !a.operators.IsOperator(ctx.Sender) {
		return ErrUnauthorizedCaller
	}

	err := a.store.Update(func(txn storage.Txn) error {
		_, exists, err := readCommitment(txn, height)
		if err != nil {
			return err
		}

		if exists {
			return ErrAlreadyCommitted
		}

		return writeCommitment(txn, height, digest)
	})
	if err != nil {
		return err
	}

	a.metrics.Commitments.Add(1)
	a.logger.Info("block committed", "height", height, "digest", digest, "operator", ctx.Sender)
	a.events.fireEvent(&Event{
		Type:     EventBlockCommit,
		Height:   height,
		Digest:   digest,
		Operator: ctx.Sender,
	})

	return nil
}

// Deposit moves amount from the sender's layer-1 balance into contract
// escrow and records a pending deposit
func (a *Anchor) Deposit(ctx TxContext, amount uint64) (DepositID, error) {
	if amount == 0 {
		return DepositID{}, ErrInvalidAmount
	}

	var id DepositID

	err := a.store.Update(func(txn storage.Txn) error {
		if err := ledger.Transfer(txn, ctx.Sender, types.AnchorContract, amount); err != nil {
			return err
		}

		nonce, err := nextNonce(txn, DEPOSIT_NONCE, ctx.Sender)
		if err != nil {
			return err
		}

		id = DepositID{Depositor: ctx.Sender, Nonce: nonce}

		return writeDeposit(txn, id, &Deposit{
			Depositor: ctx.Sender,
			Amount:    amount,
			Status:    DepositPending,
		})
	})
	if err != nil {
		return DepositID{}, err
	}

	a.metrics.Deposits.Add(1)
	a.logger.Info("deposit created", "id", id, "amount", amount)
	a.events.fireEvent(&Event{
		Type:      EventDeposit,
		Account:   ctx.Sender,
		Amount:    amount,
		DepositID: id.String(),
	})

	return id, nil
}

// AckDeposit transitions a pending deposit to acknowledged, signalling
// that the subnet has credited the equivalent layer-2 balance
func (a *Anchor) AckDeposit(ctx TxContext, id DepositID) error {
	if !a.operators.IsOperator(ctx.Sender) {
		return ErrUnauthorizedCaller
	}

	var amount uint64

	err := a.store.Update(func(txn storage.Txn) error {
		deposit, exists, err := readDeposit(txn, id)
		if err != nil {
			return err
		}

		if !exists {
			return ErrUnknownDeposit
		}

		if deposit.Status != DepositPending {
			return ErrAlreadyAcknowledged
		}

		deposit.Status = DepositAcknowledged
		if err := writeDeposit(txn, id, deposit); err != nil {
			return err
		}

		escrow, err := readUint(txn, ESCROW)
		if err != nil {
			return err
		}

		amount = deposit.Amount

		return writeUint(txn, ESCROW, escrow+deposit.Amount)
	})
	if err != nil {
		return err
	}

	a.metrics.EscrowBalance.Add(float64(amount))
	a.logger.Info("deposit acknowledged", "id", id, "operator", ctx.Sender)
	a.events.fireEvent(&Event{
		Type:      EventDepositAck,
		Account:   id.Depositor,
		Amount:    amount,
		Operator:  ctx.Sender,
		DepositID: id.String(),
	})

	return nil
}

// RequestWithdrawal records the sender's intent to withdraw amount from
// the subnet back to layer 1. The claimed layer-2 balance is not
// verifiable here; operator approval is the trust anchor.
func (a *Anchor) RequestWithdrawal(ctx TxContext, amount uint64) (WithdrawalID, error) {
	if amount == 0 {
		return WithdrawalID{}, ErrInvalidAmount
	}

	var id WithdrawalID

	err := a.store.Update(func(txn storage.Txn) error {
		nonce, err := nextNonce(txn, WITHDRAWAL_NONCE, ctx.Sender)
		if err != nil {
			return err
		}

		id = WithdrawalID{Requester: ctx.Sender, Nonce: nonce}

		return writeWithdrawal(txn, id, &Withdrawal{
			Requester: ctx.Sender,
			Amount:    amount,
			Status:    WithdrawalRequested,
		})
	})
	if err != nil {
		return WithdrawalID{}, err
	}

	a.logger.Info("withdrawal requested", "id", id, "amount", amount)
	a.events.fireEvent(&Event{
		Type:         EventWithdrawalRequest,
		Account:      ctx.Sender,
		Amount:       amount,
		WithdrawalID: id.String(),
	})

	return id, nil
}

// ApproveWithdrawal reserves escrow for a requested withdrawal. The
// reserved amount is excluded from the spendable pool used to satisfy
// further approvals until settlement.
func (a *Anchor) ApproveWithdrawal(ctx TxContext, id WithdrawalID) error {
	if !a.operators.IsOperator(ctx.Sender) {
		return ErrUnauthorizedCaller
	}

	var amount uint64

	err := a.store.Update(func(txn storage.Txn) error {
		withdrawal, exists, err := readWithdrawal(txn, id)
		if err != nil {
			return err
		}

		if !exists {
			return ErrUnknownRequest
		}

		if withdrawal.Status != WithdrawalRequested {
			return ErrWrongState
		}

		escrow, err := readUint(txn, ESCROW)
		if err != nil {
			return err
		}

		reserved, err := readUint(txn, RESERVED)
		if err != nil {
			return err
		}

		if withdrawal.Amount > escrow-reserved {
			return ErrInsufficientEscrow
		}

		withdrawal.Status = WithdrawalApproved
		if err := writeWithdrawal(txn, id, withdrawal); err != nil {
			return err
		}

		amount = withdrawal.Amount

		return writeUint(txn, RESERVED, reserved+withdrawal.Amount)
	})
	if err != nil {
		return err
	}

	a.metrics.ReservedBalance.Add(float64(amount))
	a.logger.Info("withdrawal approved", "id", id, "operator", ctx.Sender)
	a.events.fireEvent(&Event{
		Type:         EventWithdrawalApprove,
		Account:      id.Requester,
		Amount:       amount,
		Operator:     ctx.Sender,
		WithdrawalID: id.String(),
	})

	return nil
}

// SettleWithdrawal releases the reserved escrow of an approved withdrawal
// back to the requester's layer-1 balance. Settlement is permissionless:
// the destination is fixed by the request itself.
func (a *Anchor) SettleWithdrawal(ctx TxContext, id WithdrawalID) error {
	var amount uint64

	err := a.store.Update(func(txn storage.Txn) error {
		withdrawal, exists, err := readWithdrawal(txn, id)
		if err != nil {
			return err
		}

		if !exists {
			return ErrUnknownRequest
		}

		if withdrawal.Status != WithdrawalApproved {
			return ErrWrongState
		}

		escrow, err := readUint(txn, ESCROW)
		if err != nil {
			return err
		}

		reserved, err := readUint(txn, RESERVED)
		if err != nil {
			return err
		}

		if escrow < withdrawal.Amount || reserved < withdrawal.Amount {
			// unreachable if the approval precondition held; abort with
			// no partial transfer
			a.logger.Error("escrow invariant violated at settlement",
				"id", id, "amount", withdrawal.Amount, "escrow", escrow, "reserved", reserved)

			return ErrInsufficientEscrow
		}

		if err := ledger.Transfer(txn, types.AnchorContract, withdrawal.Requester, withdrawal.Amount); err != nil {
			return err
		}

		withdrawal.Status = WithdrawalSettled
		if err := writeWithdrawal(txn, id, withdrawal); err != nil {
			return err
		}

		if err := writeUint(txn, ESCROW, escrow-withdrawal.Amount); err != nil {
			return err
		}

		amount = withdrawal.Amount

		return writeUint(txn, RESERVED, reserved-withdrawal.Amount)
	})
	if err != nil {
		return err
	}

	a.metrics.SettledWithdrawals.Add(1)
	a.metrics.EscrowBalance.Add(-float64(amount))
	a.metrics.ReservedBalance.Add(-float64(amount))
	a.logger.Info("withdrawal settled", "id", id, "amount", amount)
	a.events.fireEvent(&Event{
		Type:         EventWithdrawalSettle,
		Account:      id.Requester,
		Amount:       amount,
		WithdrawalID: id.String(),
	})

	return nil
}

// RejectWithdrawal terminates a requested withdrawal without releasing
// funds, so requests the subnet cannot back are not locked forever
func (a *Anchor) RejectWithdrawal(ctx TxContext, id WithdrawalID) error {
	if !a.operators.IsOperator(ctx.Sender) {
		return ErrUnauthorizedCaller
	}

	var amount uint64

	err := a.store.Update(func(txn storage.Txn) error {
		withdrawal, exists, err := readWithdrawal(txn, id)
		if err != nil {
			return err
		}

		if !exists {
			return ErrUnknownRequest
		}

		if withdrawal.Status != WithdrawalRequested {
			return ErrWrongState
		}

		withdrawal.Status = WithdrawalRejected
		amount = withdrawal.Amount

		return writeWithdrawal(txn, id, withdrawal)
	})
	if err != nil {
		return err
	}

	a.logger.Info("withdrawal rejected", "id", id, "operator", ctx.Sender)
	a.events.fireEvent(&Event{
		Type:         EventWithdrawalReject,
		Account:      id.Requester,
		Amount:       amount,
		Operator:     ctx.Sender,
		WithdrawalID: id.String(),
	})

	return nil
}

// IsOperator checks membership in the fixed operator set
func (a *Anchor) IsOperator(addr types.Address) bool {
	return a.operators.IsOperator(addr)
}

// Operators returns the fixed operator set in deployment order
func (a *Anchor) Operators() []types.Address {
	return a.operators.Operators()
}

// GetCommitment returns the digest committed at the given height, if any
func (a *Anchor) GetCommitment(height uint64) (types.Hash, bool, error) {
	var (
		digest types.Hash
		exists bool
	)

	err := a.store.View(func(txn storage.Txn) error {
		var err error
		digest, exists, err = readCommitment(txn, height)

		return err
	})

	return digest, exists, err
}

// GetDeposit returns the deposit stored under the given id, if any
func (a *Anchor) GetDeposit(id DepositID) (*Deposit, bool, error) {
	var (
		deposit *Deposit
		exists  bool
	)

	err := a.store.View(func(txn storage.Txn) error {
		var err error
		deposit, exists, err = readDeposit(txn, id)

		return err
	})

	return deposit, exists, err
}

// GetWithdrawal returns the withdrawal stored under the given id, if any
func (a *Anchor) GetWithdrawal(id WithdrawalID) (*Withdrawal, bool, error) {
	var (
		withdrawal *Withdrawal
		exists     bool
	)

	err := a.store.View(func(txn storage.Txn) error {
		var err error
		withdrawal, exists, err = readWithdrawal(txn, id)

		return err
	})

	return withdrawal, exists, err
}

// BalanceOf returns the layer-1 balance of the given account
func (a *Anchor) BalanceOf(addr types.Address) (uint64, error) {
	var balance uint64

	err := a.store.View(func(txn storage.Txn) error {
		var err error
		balance, err = ledger.BalanceOf(txn, addr)

		return err
	})

	return balance, err
}

// EscrowInfo is a snapshot of the contract's escrow accounting
type EscrowInfo struct {
	// Escrow is the acknowledged escrow balance
	Escrow uint64 `json:"escrow"`

	// Reserved is the approved, not yet settled withdrawal total
	Reserved uint64 `json:"reserved"`

	// Held is the contract's total layer-1 balance, including pending
	// deposits
	Held uint64 `json:"held"`
}

// GetEscrowInfo returns the current escrow accounting snapshot
func (a *Anchor) GetEscrowInfo() (EscrowInfo, error) {
	var info EscrowInfo

	err := a.store.View(func(txn storage.Txn) error {
		var err error

		if info.Escrow, err = readUint(txn, ESCROW); err != nil {
			return err
		}

		if info.Reserved, err = readUint(txn, RESERVED); err != nil {
			return err
		}

		info.Held, err = ledger.BalanceOf(txn, types.AnchorContract)

		return err
	})

	return info, err
}

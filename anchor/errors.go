package anchor

import (
	"errors"

	"github.com/subnetstack/anchor/ledger"
)

var (
	ErrUnauthorizedCaller  = errors.New("caller is not an operator")
	ErrAlreadyCommitted    = errors.New("block already committed at this height")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrUnknownDeposit      = errors.New("unknown deposit")
	ErrAlreadyAcknowledged = errors.New("deposit already acknowledged")
	ErrUnknownRequest      = errors.New("unknown withdrawal request")
	ErrWrongState          = errors.New("withdrawal request is in the wrong state")
	ErrInsufficientEscrow  = errors.New("insufficient escrow balance")

	// ErrInsufficientFunds is surfaced by deposit when the host ledger
	// transfer fails
	ErrInsufficientFunds = ledger.ErrInsufficientFunds
)

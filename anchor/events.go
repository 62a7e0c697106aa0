package anchor

import (
	"github.com/subnetstack/anchor/types"
)

// EventType is the kind of a contract event
type EventType string

const (
	EventBlockCommit       EventType = "block-commit"
	EventDeposit           EventType = "deposit"
	EventDepositAck        EventType = "ack-deposit"
	EventWithdrawalRequest EventType = "withdraw-request"
	EventWithdrawalApprove EventType = "withdraw-approve"
	EventWithdrawalSettle  EventType = "withdraw-settle"
	EventWithdrawalReject  EventType = "withdraw-reject"
)

// Event is emitted after every successful mutating operation, letting
// off-chain observers reconcile layer-1 and layer-2 state without
// additional queries.
type Event struct {
	Type EventType `json:"kind"`

	// block commit fields
	Height   uint64        `json:"height,omitempty"`
	Digest   types.Hash    `json:"digest,omitempty"`
	Operator types.Address `json:"operator,omitempty"`

	// peg fields
	Account      types.Address `json:"account,omitempty"`
	Amount       uint64        `json:"amount,omitempty"`
	DepositID    string        `json:"deposit_id,omitempty"`
	WithdrawalID string        `json:"withdrawal_id,omitempty"`
}

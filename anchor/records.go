package anchor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/subnetstack/anchor/types"
)

// DepositStatus is the lifecycle state of a peg deposit
type DepositStatus string

const (
	// DepositPending means escrow holds the funds but the subnet has not
	// yet signalled the layer-2 credit
	DepositPending DepositStatus = "pending"

	// DepositAcknowledged means an operator confirmed the layer-2 credit
	DepositAcknowledged DepositStatus = "acknowledged"
)

// WithdrawalStatus is the lifecycle state of a withdrawal request.
// Transitions are linear: requested -> approved -> settled, with an
// operator-side requested -> rejected terminal branch.
type WithdrawalStatus string

const (
	WithdrawalRequested WithdrawalStatus = "requested"
	WithdrawalApproved  WithdrawalStatus = "approved"
	WithdrawalSettled   WithdrawalStatus = "settled"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

// Commitment is an immutable record binding a layer-1 height to a subnet
// block digest
type Commitment struct {
	Height uint64     `json:"height"`
	Digest types.Hash `json:"digest"`
}

// Deposit is an escrowed peg deposit
type Deposit struct {
	Depositor types.Address `json:"depositor"`
	Amount    uint64        `json:"amount"`
	Status    DepositStatus `json:"status"`
}

// Withdrawal is a peg withdrawal request
type Withdrawal struct {
	Requester types.Address    `json:"requester"`
	Amount    uint64           `json:"amount"`
	Status    WithdrawalStatus `json:"status"`
}

// DepositID uniquely identifies a deposit as (depositor, per-depositor
// nonce), disambiguating concurrent deposits by the same principal
type DepositID struct {
	Depositor types.Address `json:"depositor"`
	Nonce     uint64        `json:"nonce"`
}

func (id DepositID) String() string {
	return fmt.Sprintf("%s:%d", id.Depositor, id.Nonce)
}

// WithdrawalID uniquely identifies a withdrawal request as (requester,
// per-requester nonce)
type WithdrawalID struct {
	Requester types.Address `json:"requester"`
	Nonce     uint64        `json:"nonce"`
}

func (id WithdrawalID) String() string {
	return fmt.Sprintf("%s:%d", id.Requester, id.Nonce)
}

// ParseDepositID parses the "<address>:<nonce>" form emitted by String
func ParseDepositID(str string) (DepositID, error) {
	addr, nonce, err := parseIDParts(str)
	if err != nil {
		return DepositID{}, fmt.Errorf("invalid deposit id %q: %w", str, err)
	}

	return DepositID{Depositor: addr, Nonce: nonce}, nil
}

// ParseWithdrawalID parses the "<address>:<nonce>" form emitted by String
func ParseWithdrawalID(str string) (WithdrawalID, error) {
	addr, nonce, err := parseIDParts(str)
	if err != nil {
		return WithdrawalID{}, fmt.Errorf("invalid withdrawal id %q: %w", str, err)
	}

	return WithdrawalID{Requester: addr, Nonce: nonce}, nil
}

func parseIDParts(str string) (types.Address, uint64, error) {
	parts := strings.Split(str, ":")
	if len(parts) != 2 {
		return types.ZeroAddress, 0, fmt.Errorf("expected <address>:<nonce>")
	}

	addr, err := types.ParseAddress(parts[0])
	if err != nil {
		return types.ZeroAddress, 0, err
	}

	nonce, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return types.ZeroAddress, 0, err
	}

	return addr, nonce, nil
}

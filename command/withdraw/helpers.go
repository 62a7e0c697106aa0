package withdraw

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
	"github.com/subnetstack/anchor/types"
)

const (
	amountFlag       = "amount"
	withdrawalIDFlag = "id"
)

// withContract opens the contract from --data-dir and runs fn against it
func withContract(cmd *cobra.Command, fn func(contract *anchor.Anchor) error) error {
	dataDir, err := cmd.Flags().GetString(command.DataDirFlag)
	if err != nil {
		return err
	}

	contract, err := helper.OpenAnchor(dataDir)
	if err != nil {
		return err
	}
	defer contract.Close()

	return fn(contract)
}

// WithdrawalResult is the shared output of the withdrawal lifecycle
// subcommands
type WithdrawalResult struct {
	Action       string        `json:"action"`
	WithdrawalID string        `json:"withdrawal_id"`
	Account      types.Address `json:"account"`
	Amount       uint64        `json:"amount"`
	Status       string        `json:"status"`
}

func (r *WithdrawalResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString(fmt.Sprintf("\n[WITHDRAWAL %s]\n", r.Action))
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Withdrawal ID|%s", r.WithdrawalID),
		fmt.Sprintf("Requester|%s", r.Account),
		fmt.Sprintf("Amount|%d", r.Amount),
		fmt.Sprintf("Status|%s", r.Status),
	}))

	return buffer.String()
}

func newWithdrawalResult(
	action string,
	id anchor.WithdrawalID,
	withdrawal *anchor.Withdrawal,
) *WithdrawalResult {
	return &WithdrawalResult{
		Action:       action,
		WithdrawalID: id.String(),
		Account:      withdrawal.Requester,
		Amount:       withdrawal.Amount,
		Status:       string(withdrawal.Status),
	}
}

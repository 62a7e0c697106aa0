package deposit

import (
	"bytes"
	"fmt"

	"github.com/subnetstack/anchor/command/helper"
	"github.com/subnetstack/anchor/types"
)

type DepositResult struct {
	DepositID string        `json:"deposit_id"`
	Depositor types.Address `json:"depositor"`
	Amount    uint64        `json:"amount"`
}

func (r *DepositResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[DEPOSIT CREATED]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Deposit ID|%s", r.DepositID),
		fmt.Sprintf("Depositor|%s", r.Depositor),
		fmt.Sprintf("Amount|%d", r.Amount),
	}))

	return buffer.String()
}

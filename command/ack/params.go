package ack

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
	"github.com/subnetstack/anchor/types"
)

const depositIDFlag = "id"

type ackParams struct {
	rawID string

	id     anchor.DepositID
	sender types.Address
}

func (p *ackParams) validateFlags(cmd *cobra.Command) error {
	var err error

	if p.id, err = anchor.ParseDepositID(p.rawID); err != nil {
		return err
	}

	p.sender, err = helper.ParseSenderAddress(cmd)

	return err
}

func (p *ackParams) ackDeposit(cmd *cobra.Command) (*AckResult, error) {
	dataDir, err := cmd.Flags().GetString(command.DataDirFlag)
	if err != nil {
		return nil, err
	}

	contract, err := helper.OpenAnchor(dataDir)
	if err != nil {
		return nil, err
	}
	defer contract.Close()

	if err := contract.AckDeposit(anchor.TxContext{Sender: p.sender}, p.id); err != nil {
		return nil, err
	}

	return &AckResult{
		DepositID: p.id.String(),
		Operator:  p.sender,
	}, nil
}

type AckResult struct {
	DepositID string        `json:"deposit_id"`
	Operator  types.Address `json:"operator"`
}

func (r *AckResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[DEPOSIT ACKNOWLEDGED]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Deposit ID|%s", r.DepositID),
		fmt.Sprintf("Operator|%s", r.Operator),
	}))

	return buffer.String()
}

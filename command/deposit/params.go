package deposit

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
	"github.com/subnetstack/anchor/types"
)

const amountFlag = "amount"

type depositParams struct {
	amount uint64
	sender types.Address
}

func (p *depositParams) validateFlags(cmd *cobra.Command) error {
	var err error

	p.sender, err = helper.ParseSenderAddress(cmd)

	return err
}

func (p *depositParams) deposit(cmd *cobra.Command) (*DepositResult, error) {
	dataDir, err := cmd.Flags().GetString(command.DataDirFlag)
	if err != nil {
		return nil, err
	}

	contract, err := helper.OpenAnchor(dataDir)
	if err != nil {
		return nil, err
	}
	defer contract.Close()

	id, err := contract.Deposit(anchor.TxContext{Sender: p.sender}, p.amount)
	if err != nil {
		return nil, err
	}

	return &DepositResult{
		DepositID: id.String(),
		Depositor: p.sender,
		Amount:    p.amount,
	}, nil
}

package withdraw

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
)

var requestParams struct {
	amount uint64
}

func getRequestCommand() *cobra.Command {
	requestCmd := &cobra.Command{
		Use:   "request",
		Short: "Requests a withdrawal of subnet funds back to layer 1",
		Run:   runRequestCommand,
	}

	helper.RegisterDataDirFlag(requestCmd)
	helper.RegisterSenderFlag(requestCmd)

	requestCmd.Flags().Uint64Var(
		&requestParams.amount,
		amountFlag,
		0,
		"the amount to withdraw",
	)

	_ = requestCmd.MarkFlagRequired(amountFlag)

	return requestCmd
}

func runRequestCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	sender, err := helper.ParseSenderAddress(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	err = withContract(cmd, func(contract *anchor.Anchor) error {
		id, err := contract.RequestWithdrawal(anchor.TxContext{Sender: sender}, requestParams.amount)
		if err != nil {
			return err
		}

		withdrawal, _, err := contract.GetWithdrawal(id)
		if err != nil {
			return err
		}

		outputter.SetCommandResult(newWithdrawalResult("REQUESTED", id, withdrawal))

		return nil
	})
	if err != nil {
		outputter.SetError(err)
	}
}

package withdraw

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
)

var settleParams struct {
	rawID string
}

func getSettleCommand() *cobra.Command {
	settleCmd := &cobra.Command{
		Use:   "settle",
		Short: "Settles an approved withdrawal, releasing escrow to the requester",
		Run:   runSettleCommand,
	}

	helper.RegisterDataDirFlag(settleCmd)
	helper.RegisterSenderFlag(settleCmd)

	settleCmd.Flags().StringVar(
		&settleParams.rawID,
		withdrawalIDFlag,
		"",
		"the withdrawal id, <address>:<nonce>",
	)

	_ = settleCmd.MarkFlagRequired(withdrawalIDFlag)

	return settleCmd
}

func runSettleCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	sender, err := helper.ParseSenderAddress(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	id, err := anchor.ParseWithdrawalID(settleParams.rawID)
	if err != nil {
		outputter.SetError(err)

		return
	}

	err = withContract(cmd, func(contract *anchor.Anchor) error {
		if err := contract.SettleWithdrawal(anchor.TxContext{Sender: sender}, id); err != nil {
			return err
		}

		withdrawal, _, err := contract.GetWithdrawal(id)
		if err != nil {
			return err
		}

		outputter.SetCommandResult(newWithdrawalResult("SETTLED", id, withdrawal))

		return nil
	})
	if err != nil {
		outputter.SetError(err)
	}
}

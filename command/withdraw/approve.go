package withdraw

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
)

var approveParams struct {
	rawID string
}

func getApproveCommand() *cobra.Command {
	approveCmd := &cobra.Command{
		Use:   "approve",
		Short: "Approves a requested withdrawal, reserving its escrow",
		Run:   runApproveCommand,
	}

	helper.RegisterDataDirFlag(approveCmd)
	helper.RegisterSenderFlag(approveCmd)

	approveCmd.Flags().StringVar(
		&approveParams.rawID,
		withdrawalIDFlag,
		"",
		"the withdrawal id, <address>:<nonce>",
	)

	_ = approveCmd.MarkFlagRequired(withdrawalIDFlag)

	return approveCmd
}

func runApproveCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	sender, err := helper.ParseSenderAddress(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	id, err := anchor.ParseWithdrawalID(approveParams.rawID)
	if err != nil {
		outputter.SetError(err)

		return
	}

	err = withContract(cmd, func(contract *anchor.Anchor) error {
		if err := contract.ApproveWithdrawal(anchor.TxContext{Sender: sender}, id); err != nil {
			return err
		}

		withdrawal, _, err := contract.GetWithdrawal(id)
		if err != nil {
			return err
		}

		outputter.SetCommandResult(newWithdrawalResult("APPROVED", id, withdrawal))

		return nil
	})
	if err != nil {
		outputter.SetError(err)
	}
}

package withdraw

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
)

var rejectParams struct {
	rawID string
}

func getRejectCommand() *cobra.Command {
	rejectCmd := &cobra.Command{
		Use:   "reject",
		Short: "Rejects a requested withdrawal",
		Run:   runRejectCommand,
	}

	helper.RegisterDataDirFlag(rejectCmd)
	helper.RegisterSenderFlag(rejectCmd)

	rejectCmd.Flags().StringVar(
		&rejectParams.rawID,
		withdrawalIDFlag,
		"",
		"the withdrawal id, <address>:<nonce>",
	)

	_ = rejectCmd.MarkFlagRequired(withdrawalIDFlag)

	return rejectCmd
}

func runRejectCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	sender, err := helper.ParseSenderAddress(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	id, err := anchor.ParseWithdrawalID(rejectParams.rawID)
	if err != nil {
		outputter.SetError(err)

		return
	}

	err = withContract(cmd, func(contract *anchor.Anchor) error {
		if err := contract.RejectWithdrawal(anchor.TxContext{Sender: sender}, id); err != nil {
			return err
		}

		withdrawal, _, err := contract.GetWithdrawal(id)
		if err != nil {
			return err
		}

		outputter.SetCommandResult(newWithdrawalResult("REJECTED", id, withdrawal))

		return nil
	})
	if err != nil {
		outputter.SetError(err)
	}
}

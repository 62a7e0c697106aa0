package deposit

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
)

var params depositParams

func GetCommand() *cobra.Command {
	depositCmd := &cobra.Command{
		Use:     "deposit",
		Short:   "Moves funds from the sender's balance into contract escrow",
		PreRunE: preRunCommand,
		Run:     runCommand,
	}

	helper.RegisterDataDirFlag(depositCmd)
	helper.RegisterSenderFlag(depositCmd)

	setFlags(depositCmd)

	return depositCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(
		&params.amount,
		amountFlag,
		0,
		"the amount to deposit",
	)

	_ = cmd.MarkFlagRequired(amountFlag)
}

func preRunCommand(cmd *cobra.Command, _ []string) error {
	return params.validateFlags(cmd)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	result, err := params.deposit(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(result)
}

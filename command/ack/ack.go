package ack

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
)

var params ackParams

func GetCommand() *cobra.Command {
	ackCmd := &cobra.Command{
		Use:     "ack",
		Short:   "Acknowledges a pending deposit as credited on the subnet",
		PreRunE: preRunCommand,
		Run:     runCommand,
	}

	helper.RegisterDataDirFlag(ackCmd)
	helper.RegisterSenderFlag(ackCmd)

	setFlags(ackCmd)

	return ackCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.rawID,
		depositIDFlag,
		"",
		"the deposit id, <address>:<nonce>",
	)

	_ = cmd.MarkFlagRequired(depositIDFlag)
}

func preRunCommand(cmd *cobra.Command, _ []string) error {
	return params.validateFlags(cmd)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	result, err := params.ackDeposit(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(result)
}

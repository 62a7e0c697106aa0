package commit

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
)

var params commitParams

func GetCommand() *cobra.Command {
	commitCmd := &cobra.Command{
		Use:     "commit",
		Short:   "Commits a subnet block digest at a layer-1 height",
		PreRunE: preRunCommand,
		Run:     runCommand,
	}

	helper.RegisterDataDirFlag(commitCmd)
	helper.RegisterSenderFlag(commitCmd)

	setFlags(commitCmd)

	return commitCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(
		&params.height,
		heightFlag,
		0,
		"the layer-1 height to commit at",
	)

	cmd.Flags().StringVar(
		&params.rawDigest,
		digestFlag,
		"",
		"the 32-byte subnet block digest, hex encoded",
	)

	_ = cmd.MarkFlagRequired(heightFlag)
	_ = cmd.MarkFlagRequired(digestFlag)
}

func preRunCommand(cmd *cobra.Command, _ []string) error {
	return params.validateFlags(cmd)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	result, err := params.commitBlock(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(result)
}

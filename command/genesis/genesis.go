package genesis

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/command"
)

var params genesisParams

func GetCommand() *cobra.Command {
	genesisCmd := &cobra.Command{
		Use:     "genesis",
		Short:   "Initializes a new anchor deployment from a chain config",
		PreRunE: preRunCommand,
		Run:     runCommand,
	}

	setFlags(genesisCmd)

	return genesisCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.chainPath,
		chainFlag,
		"",
		"path to the chain configuration file",
	)

	cmd.Flags().StringVar(
		&params.dataDir,
		command.DataDirFlag,
		"",
		"the directory to hold the contract state",
	)

	_ = cmd.MarkFlagRequired(chainFlag)
	_ = cmd.MarkFlagRequired(command.DataDirFlag)
}

func preRunCommand(_ *cobra.Command, _ []string) error {
	return params.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	result, err := params.initializeDeployment()
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(result)
}

package version

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/versioning"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Returns the current version",
		Args:  cobra.NoArgs,
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	outputter.SetCommandResult(
		&VersionResult{
			Version: versioning.Version,
			Commit:  versioning.Commit,
		},
	)
}

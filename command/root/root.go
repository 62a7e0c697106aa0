package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/command/ack"
	"github.com/subnetstack/anchor/command/balance"
	"github.com/subnetstack/anchor/command/commit"
	"github.com/subnetstack/anchor/command/deposit"
	"github.com/subnetstack/anchor/command/genesis"
	"github.com/subnetstack/anchor/command/helper"
	"github.com/subnetstack/anchor/command/status"
	"github.com/subnetstack/anchor/command/version"
	"github.com/subnetstack/anchor/command/withdraw"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Short: "Anchor is the layer-1 commitment-and-peg contract for subnet block anchoring",
		},
	}

	helper.RegisterJSONOutputFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		genesis.GetCommand(),
		commit.GetCommand(),
		deposit.GetCommand(),
		ack.GetCommand(),
		withdraw.GetCommand(),
		status.GetCommand(),
		balance.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}

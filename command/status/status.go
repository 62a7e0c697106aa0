package status

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
	"github.com/subnetstack/anchor/types"
)

func GetCommand() *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Returns the escrow accounting and operator set of a deployment",
		Run:   runCommand,
	}

	helper.RegisterDataDirFlag(statusCmd)

	return statusCmd
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	dataDir, err := cmd.Flags().GetString(command.DataDirFlag)
	if err != nil {
		outputter.SetError(err)

		return
	}

	contract, err := helper.OpenAnchor(dataDir)
	if err != nil {
		outputter.SetError(err)

		return
	}
	defer contract.Close()

	info, err := contract.GetEscrowInfo()
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&StatusResult{
		Escrow:    info,
		Operators: contract.Operators(),
	})
}

type StatusResult struct {
	Escrow    anchor.EscrowInfo `json:"escrow"`
	Operators []types.Address   `json:"operators"`
}

func (r *StatusResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[ANCHOR STATUS]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Acknowledged escrow|%d", r.Escrow.Escrow),
		fmt.Sprintf("Reserved|%d", r.Escrow.Reserved),
		fmt.Sprintf("Total held|%d", r.Escrow.Held),
	}))

	buffer.WriteString("\n\n[OPERATORS]\n")

	rows := make([]string, 0, len(r.Operators))
	for i, op := range r.Operators {
		rows = append(rows, fmt.Sprintf("%d|%s", i, op))
	}

	buffer.WriteString(helper.FormatKV(rows))

	return buffer.String()
}

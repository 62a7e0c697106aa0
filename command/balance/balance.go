package balance

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
	"github.com/subnetstack/anchor/types"
)

const accountFlag = "account"

var params struct {
	rawAccount string
}

func GetCommand() *cobra.Command {
	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Returns the layer-1 balance of an account",
		Run:   runCommand,
	}

	helper.RegisterDataDirFlag(balanceCmd)

	balanceCmd.Flags().StringVar(
		&params.rawAccount,
		accountFlag,
		"",
		"the account address",
	)

	_ = balanceCmd.MarkFlagRequired(accountFlag)

	return balanceCmd
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	account, err := types.ParseAddress(params.rawAccount)
	if err != nil {
		outputter.SetError(err)

		return
	}

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

	balance, err := contract.BalanceOf(account)
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(&BalanceResult{
		Account: account,
		Balance: balance,
	})
}

type BalanceResult struct {
	Account types.Address `json:"account"`
	Balance uint64        `json:"balance"`
}

func (r *BalanceResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[ACCOUNT BALANCE]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Account|%s", r.Account),
		fmt.Sprintf("Balance|%d", r.Balance),
	}))

	return buffer.String()
}

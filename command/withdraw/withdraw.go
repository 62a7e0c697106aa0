package withdraw

import (
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	withdrawCmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Top level command for peg withdrawals",
	}

	withdrawCmd.AddCommand(
		getRequestCommand(),
		getApproveCommand(),
		getSettleCommand(),
		getRejectCommand(),
	)

	return withdrawCmd
}

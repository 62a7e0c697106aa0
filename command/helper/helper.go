package helper

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/chain"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/helper/common"
	"github.com/subnetstack/anchor/storage/boltdb"
	"github.com/subnetstack/anchor/types"
)

// RegisterJSONOutputFlag registers the --json output setting for all
// child commands of the passed-in command
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		command.JSONOutputFlag,
		false,
		"get command outputs in json format",
	)
}

// RegisterDataDirFlag registers the --data-dir flag
func RegisterDataDirFlag(cmd *cobra.Command) {
	cmd.Flags().String(
		command.DataDirFlag,
		"",
		"the directory holding the contract state",
	)

	_ = cmd.MarkFlagRequired(command.DataDirFlag)
}

// RegisterSenderFlag registers the --sender flag supplying the
// transaction sender identity
func RegisterSenderFlag(cmd *cobra.Command) {
	cmd.Flags().String(
		command.SenderFlag,
		"",
		"the address submitting the operation",
	)

	_ = cmd.MarkFlagRequired(command.SenderFlag)
}

// ParseSenderAddress parses the --sender flag of the given command
func ParseSenderAddress(cmd *cobra.Command) (types.Address, error) {
	raw, err := cmd.Flags().GetString(command.SenderFlag)
	if err != nil {
		return types.ZeroAddress, err
	}

	addr, err := types.ParseAddress(raw)
	if err != nil {
		return types.ZeroAddress, fmt.Errorf("invalid sender address: %w", err)
	}

	return addr, nil
}

// OpenAnchor opens the anchor contract stored in the given data directory
func OpenAnchor(dataDir string) (*anchor.Anchor, error) {
	if !common.DirectoryExists(dataDir) {
		return nil, fmt.Errorf("data directory %q does not exist, run genesis first", dataDir)
	}

	config, err := chain.ImportFromFile(filepath.Join(dataDir, command.DefaultChainFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to load chain config: %w", err)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "anchor",
		Level: hclog.Warn,
	})

	store, err := boltdb.NewBoltDBStorage(filepath.Join(dataDir, command.DefaultDBFileName), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	contract, err := anchor.NewAnchor(logger, store, config, anchor.NilMetrics())
	if err != nil {
		store.Close()

		return nil, err
	}

	return contract, nil
}

// FormatKV formats key value pairs:
//
// Key = Value
//
// Key = <none>
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

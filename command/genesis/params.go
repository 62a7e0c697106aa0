package genesis

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/chain"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/helper/common"
	"github.com/subnetstack/anchor/storage/boltdb"
)

const chainFlag = "chain"

var errDataDirTaken = errors.New("data directory already initialized")

type genesisParams struct {
	chainPath string
	dataDir   string
}

func (p *genesisParams) validateFlags() error {
	if common.DirectoryExists(p.dataDir) {
		return errDataDirTaken
	}

	return nil
}

// initializeDeployment validates the chain config, creates the data
// directory and applies the premine to a fresh state database
func (p *genesisParams) initializeDeployment() (*GenesisResult, error) {
	config, err := chain.ImportFromFile(p.chainPath)
	if err != nil {
		return nil, err
	}

	if err := common.SetupDataDir(p.dataDir, nil); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(p.chainPath)
	if err != nil {
		return nil, err
	}

	// keep the config alongside the state so later commands resolve the
	// operator set from the same deployment
	chainCopy := filepath.Join(p.dataDir, command.DefaultChainFileName)
	if err := os.WriteFile(chainCopy, raw, 0644); err != nil {
		return nil, fmt.Errorf("failed to copy chain config: %w", err)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "anchor",
		Level: hclog.Warn,
	})

	store, err := boltdb.NewBoltDBStorage(filepath.Join(p.dataDir, command.DefaultDBFileName), logger)
	if err != nil {
		return nil, err
	}

	contract, err := anchor.NewAnchor(logger, store, config, anchor.NilMetrics())
	if err != nil {
		store.Close()

		return nil, err
	}

	if err := contract.Close(); err != nil {
		return nil, err
	}

	return &GenesisResult{
		Name:      config.Name,
		DataDir:   p.dataDir,
		Operators: len(config.Operators),
		Premined:  len(config.Premine),
	}, nil
}

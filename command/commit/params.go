package commit

import (
	"github.com/spf13/cobra"

	"github.com/subnetstack/anchor/anchor"
	"github.com/subnetstack/anchor/command"
	"github.com/subnetstack/anchor/command/helper"
	"github.com/subnetstack/anchor/types"
)

const (
	heightFlag = "height"
	digestFlag = "digest"
)

type commitParams struct {
	height    uint64
	rawDigest string

	digest types.Hash
	sender types.Address
}

func (p *commitParams) validateFlags(cmd *cobra.Command) error {
	var err error

	if p.digest, err = types.ParseHash(p.rawDigest); err != nil {
		return err
	}

	p.sender, err = helper.ParseSenderAddress(cmd)

	return err
}

func (p *commitParams) commitBlock(cmd *cobra.Command) (*CommitResult, error) {
	dataDir, err := cmd.Flags().GetString(command.DataDirFlag)
	if err != nil {
		return nil, err
	}

	contract, err := helper.OpenAnchor(dataDir)
	if err != nil {
		return nil, err
	}
	defer contract.Close()

	ctx := anchor.TxContext{Sender: p.sender}
	if err := contract.CommitBlock(ctx, p.height, p.digest); err != nil {
		return nil, err
	}

	return &CommitResult{
		Height:   p.height,
		Digest:   p.digest,
		Operator: p.sender,
	}, nil
}

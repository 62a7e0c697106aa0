package commit

import (
	"bytes"
	"fmt"

	"github.com/subnetstack/anchor/command/helper"
	"github.com/subnetstack/anchor/types"
)

type CommitResult struct {
	Height   uint64        `json:"height"`
	Digest   types.Hash    `json:"digest"`
	Operator types.Address `json:"operator"`
}

func (r *CommitResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[BLOCK COMMITTED]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Height|%d", r.Height),
		fmt.Sprintf("Digest|%s", r.Digest),
		fmt.Sprintf("Operator|%s", r.Operator),
	}))

	return buffer.String()
}

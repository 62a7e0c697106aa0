package genesis

import (
	"bytes"
	"fmt"

	"github.com/subnetstack/anchor/command/helper"
)

type GenesisResult struct {
	Name      string `json:"name"`
	DataDir   string `json:"data_dir"`
	Operators int    `json:"operators"`
	Premined  int    `json:"premined_accounts"`
}

func (r *GenesisResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[ANCHOR DEPLOYMENT INITIALIZED]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Chain name|%s", r.Name),
		fmt.Sprintf("Data directory|%s", r.DataDir),
		fmt.Sprintf("Operators|%d", r.Operators),
		fmt.Sprintf("Premined accounts|%d", r.Premined),
	}))

	return buffer.String()
}

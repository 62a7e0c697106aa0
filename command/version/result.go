package version

import (
	"bytes"
	"fmt"

	"github.com/subnetstack/anchor/command/helper"
)

type VersionResult struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (r *VersionResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[VERSION INFO]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Release version|%s", r.Version),
		fmt.Sprintf("Commit hash|%s", r.Commit),
	}))

	return buffer.String()
}

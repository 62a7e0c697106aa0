package main

import (
	"github.com/subnetstack/anchor/command/root"
)

func main() {
	root.NewRootCommand().Execute()
}

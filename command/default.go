package command

const (
	JSONOutputFlag = "json"
	DataDirFlag    = "data-dir"
	SenderFlag     = "sender"
)

const (
	// DefaultChainFileName is the chain config copy kept inside the data
	// directory at genesis
	DefaultChainFileName = "chain.yaml"

	// DefaultDBFileName is the contract state database inside the data
	// directory
	DefaultDBFileName = "anchor.db"
)

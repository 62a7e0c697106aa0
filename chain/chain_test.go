package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subnetstack/anchor/types"
)

func TestImportChain(t *testing.T) {
	config := []byte(`
name: subnet-one
operators:
  - "0x000000000000000000000000000000000000000a"
  - "0x000000000000000000000000000000000000000b"
premine:
  - address: "0x0000000000000000000000000000000000000011"
    balance: 1000
`)

	chain, err := importChain(config)
	require.NoError(t, err)

	assert.Equal(t, "subnet-one", chain.Name)
	assert.Equal(t, []types.Address{
		types.StringToAddress("0xa"),
		types.StringToAddress("0xb"),
	}, chain.Operators)

	require.Len(t, chain.Premine, 1)
	assert.Equal(t, types.StringToAddress("0x11"), chain.Premine[0].Address)
	assert.Equal(t, uint64(1000), chain.Premine[0].Balance)
}

func TestImportChain_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{
			"no operators",
			`name: subnet-one`,
		},
		{
			"malformed operator address",
			"operators: [\"nope\"]",
		},
		{
			"duplicate operators",
			`operators:
  - "0x000000000000000000000000000000000000000a"
  - "0x000000000000000000000000000000000000000a"`,
		},
		{
			"premine of the contract address",
			`operators: ["0x000000000000000000000000000000000000000a"]
premine:
  - address: "0x0000000000000000000000000000000000001001"
    balance: 5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importChain([]byte(tt.config))
			assert.Error(t, err)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	chain := &Chain{
		Operators: []types.Address{
			types.ZeroAddress,
			types.AnchorContract,
		},
	}

	err := chain.Validate()
	require.Error(t, err)

	// both violations are reported at once
	assert.Contains(t, err.Error(), "must not be zero")
	assert.Contains(t, err.Error(), "reserved contract address")
}

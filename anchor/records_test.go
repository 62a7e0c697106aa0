package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subnetstack/anchor/types"
)

func TestDepositID_StringRoundTrip(t *testing.T) {
	id := DepositID{
		Depositor: types.StringToAddress("0x1"),
		Nonce:     42,
	}

	parsed, err := ParseDepositID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestWithdrawalID_StringRoundTrip(t *testing.T) {
	id := WithdrawalID{
		Requester: types.StringToAddress("0x2"),
		Nonce:     0,
	}

	parsed, err := ParseWithdrawalID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseDepositID_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing nonce", "0x0000000000000000000000000000000000000001"},
		{"bad address", "zzz:1"},
		{"bad nonce", "0x0000000000000000000000000000000000000001:abc"},
		{"negative nonce", "0x0000000000000000000000000000000000000001:-1"},
		{"short address", "0x01:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDepositID(tt.input)
			assert.Error(t, err)
		})
	}
}

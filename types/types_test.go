package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToAddress(t *testing.T) {
	tests := []struct {
		input    string
		expected Address
	}{
		{"0x1", Address{19: 0x1}},
		{"0x2", Address{19: 0x2}},
		{"0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", Address{0x5a, 0xae, 0xb6, 0x05, 0x3f,
			0x3e, 0x94, 0xc9, 0xb9, 0xa0, 0x9f, 0x33, 0x66, 0x94, 0x35, 0xe7, 0xef, 0x1b, 0xea, 0xed}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StringToAddress(tt.input))
	}
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", addr.String())

	// exact length is required
	_, err = ParseAddress("0x01")
	assert.Error(t, err)

	_, err = ParseAddress("not-hex")
	assert.Error(t, err)
}

func TestParseHash(t *testing.T) {
	str := "0x0100000000000000000000000000000000000000000000000000000000000002"

	hash, err := ParseHash(str)
	require.NoError(t, err)
	assert.Equal(t, str, hash.String())

	_, err = ParseHash("0x0102")
	assert.Error(t, err)
}

func TestAddress_JSONRoundTrip(t *testing.T) {
	addr := StringToAddress("0x1")

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var decoded Address
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, addr, decoded)
}

func TestHash_JSONRoundTrip(t *testing.T) {
	hash := StringToHash("0xff")

	raw, err := json.Marshal(hash)
	require.NoError(t, err)

	var decoded Hash
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, hash, decoded)
}

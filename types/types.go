package types

import (
	"fmt"

	"github.com/subnetstack/anchor/helper/hex"
)

var (
	ZeroAddress = Address{}
	ZeroHash    = Hash{}
)

const (
	HashLength    = 32
	AddressLength = 20
)

// Hash is a 32-byte subnet block digest. Its contents are opaque at this
// layer; validity is decided by subnet consensus.
type Hash [HashLength]byte

// Address is the identity of a layer-1 principal.
type Address [AddressLength]byte

func BytesToHash(b []byte) Hash {
	var h Hash

	size := len(b)
	min := min(size, HashLength)

	copy(h[HashLength-min:], b[len(b)-min:])

	return h
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return hex.EncodeToHex(h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(input []byte) error {
	parsed, err := ParseHash(string(input))
	if err != nil {
		return err
	}

	copy(h[:], parsed[:])

	return nil
}

// StringToHash parses a 0x-prefixed hex string into a Hash.
// Shorter inputs are left-padded with zeroes.
func StringToHash(str string) Hash {
	return BytesToHash(stringToBytes(str))
}

func BytesToAddress(b []byte) Address {
	var a Address

	size := len(b)
	min := min(size, AddressLength)

	copy(a[AddressLength-min:], b[len(b)-min:])

	return a
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) String() string {
	return hex.EncodeToHex(a[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}

	copy(a[:], parsed[:])

	return nil
}

// StringToAddress parses a 0x-prefixed hex string into an Address.
// Shorter inputs are left-padded with zeroes.
func StringToAddress(str string) Address {
	return BytesToAddress(stringToBytes(str))
}

// ParseAddress parses a 0x-prefixed hex string, requiring the exact
// address length.
func ParseAddress(str string) (Address, error) {
	buf, err := hex.DecodeHex(str)
	if err != nil {
		return ZeroAddress, err
	}

	if len(buf) != AddressLength {
		return ZeroAddress, fmt.Errorf("invalid address length %d", len(buf))
	}

	return BytesToAddress(buf), nil
}

// ParseHash parses a 0x-prefixed hex string, requiring the exact
// digest length.
func ParseHash(str string) (Hash, error) {
	buf, err := hex.DecodeHex(str)
	if err != nil {
		return ZeroHash, err
	}

	if len(buf) != HashLength {
		return ZeroHash, fmt.Errorf("invalid digest length %d", len(buf))
	}

	return BytesToHash(buf), nil
}

func stringToBytes(str string) []byte {
	if len(str) > 2 && str[0] == '0' && str[1] == 'x' && len(str)%2 == 1 {
		str = "0x0" + str[2:]
	}

	b, _ := hex.DecodeHex(str)

	return b
}

func min(i, j int) int {
	if i < j {
		return i
	}

	return j
}

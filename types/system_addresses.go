package types

// AnchorContract is the reserved layer-1 account holding pegged escrow.
// Balances moved by deposit and withdrawal settlement flow through it.
var AnchorContract = StringToAddress("0x0000000000000000000000000000000000001001")

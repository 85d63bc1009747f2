package sample

import (
	"github.com/cometbft/cometbft/crypto/secp256k1"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccAddress returns a sample account address
func AccAddress() string {
	pk := ed25519.GenPrivKey().PubKey()
	return sdk.AccAddress(pk.Address()).String()
}

// AccAddresses returns n distinct sample account addresses.
func AccAddresses(n int) []string {
	addrs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		addrs = append(addrs, sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address()).String())
	}
	return addrs
}

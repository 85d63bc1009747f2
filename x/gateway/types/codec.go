package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// NewStoreCodec returns the amino codec the keepers encode store values with.
// Stored values are plain structs of math types, so nothing is registered.
func NewStoreCodec() *codec.LegacyAmino {
	cdc := codec.NewLegacyAmino()
	cdc.Seal()
	return cdc
}

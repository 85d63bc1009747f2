package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/gateway/x/pool/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the pool MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) requireOwner(config types.Config, sender string) error {
	if config.Owner != sender {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the pool owner", sender)
	}
	return nil
}

func mustAccAddress(address string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		panic(err)
	}
	return addr
}

package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/types"
)

func (k msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgUpdateConfigResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		if err := k.requireOwner(config, msg.Sender); err != nil {
			return nil, err
		}

		if msg.Owner != "" {
			config.Owner = msg.Owner
		}
		if msg.ShareDenom != "" {
			config.ShareDenom = msg.ShareDenom
		}
		if msg.RewardDenom != "" {
			config.RewardDenom = msg.RewardDenom
		}
		if msg.DepositTime != nil {
			config.DepositTime = msg.DepositTime
		}
		if msg.WithdrawTime != nil {
			config.WithdrawTime = msg.WithdrawTime
		}
		if msg.ClaimTime != nil {
			config.ClaimTime = msg.ClaimTime
		}
		if msg.DepositCapStrategy != nil {
			config.DepositCapStrategy = msg.DepositCapStrategy
		}
		if err := config.Validate(); err != nil {
			return nil, err
		}
		k.SetConfig(ctx, config)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeUpdateConfig,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
		))
		k.Logger().Info("pool config updated", "owner", config.Owner)

		return &types.MsgUpdateConfigResponse{}, nil
	})
}

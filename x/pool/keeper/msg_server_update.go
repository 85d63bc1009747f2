package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/types"
)

func (k msgServer) Update(goCtx context.Context, msg *types.MsgUpdate) (*types.MsgUpdateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgUpdateResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		reward, err := k.settle(ctx, config)
		if err != nil {
			return nil, err
		}
		if msg.Target != "" {
			if _, err := k.checkpoint(ctx, config, reward, msg.Target); err != nil {
				return nil, err
			}
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeUpdate,
			sdk.NewAttribute(types.AttributeKeyTarget, msg.Target),
			sdk.NewAttribute(types.AttributeKeyRewardPerTokenStored, reward.RewardPerTokenStored.String()),
			sdk.NewAttribute(types.AttributeKeyLastUpdateTime, strconv.FormatUint(reward.LastUpdateTime, 10)),
		))

		return &types.MsgUpdateResponse{Reward: reward}, nil
	})
}

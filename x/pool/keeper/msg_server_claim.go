package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/types"
)

func (k msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgClaimResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		if err := config.CheckClaimTime(blockTime(ctx)); err != nil {
			return nil, err
		}

		reward, err := k.settle(ctx, config)
		if err != nil {
			return nil, err
		}
		staker, err := k.checkpoint(ctx, config, reward, msg.Sender)
		if err != nil {
			return nil, err
		}

		amount := staker.Reward
		staker.Reward = math.ZeroInt()
		k.SetStaker(ctx, msg.Sender, staker)

		recipient := msg.Sender
		if msg.Target != "" {
			recipient = msg.Target
		}
		var outbox gwtypes.Outbox
		outbox.Add(mustAccAddress(recipient), coin(config.RewardDenom, amount))
		if err := outbox.Dispatch(ctx, k.bankKeeper, types.ModuleName); err != nil {
			return nil, err
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		))
		k.Logger().Info("pool claim", "sender", msg.Sender, "recipient", recipient, "amount", amount.String())

		return &types.MsgClaimResponse{Amount: amount}, nil
	})
}

package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/types"
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

		user := k.GetUser(ctx, msg.Sender)
		claimable, err := k.claimableOf(config, user, blockTime(ctx))
		if err != nil {
			return nil, err
		}

		state := k.GetState(ctx)
		user.SwappedOutClaimed = user.SwappedOutClaimed.Add(claimable)
		state.TotalClaimed = state.TotalClaimed.Add(claimable)
		k.SetUser(ctx, msg.Sender, user)
		k.SetState(ctx, state)

		var outbox gwtypes.Outbox
		outbox.Add(mustAccAddress(msg.Sender), sdk.NewCoin(config.OutputDenom, claimable))
		if err := outbox.Dispatch(ctx, k.bankKeeper, types.ModuleName); err != nil {
			return nil, err
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeClaim,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyAmount, claimable.String()),
		))
		k.Logger().Info("swap claim", "sender", msg.Sender, "amount", claimable.String())

		return &types.MsgClaimResponse{Amount: claimable}, nil
	})
}

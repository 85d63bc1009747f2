package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/calculations"
	"github.com/productscience/gateway/x/pool/types"
)

// TransferInternal moves staked principal between accounts without touching
// escrow. Both sides are checkpointed first so reward earned so far stays with
// its earner.
func (k msgServer) TransferInternal(goCtx context.Context, msg *types.MsgTransferInternal) (*types.MsgTransferInternalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgTransferInternalResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		reward, err := k.settle(ctx, config)
		if err != nil {
			return nil, err
		}
		owner, err := k.checkpoint(ctx, config, reward, msg.Owner)
		if err != nil {
			return nil, err
		}
		recipient, err := k.checkpoint(ctx, config, reward, msg.Recipient)
		if err != nil {
			return nil, err
		}

		owner, recipient, err = calculations.Transfer(owner, recipient, msg.Amount)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrTransferAmountExceeded, "balance %s", owner.Amount)
		}
		k.SetStaker(ctx, msg.Owner, owner)
		k.SetStaker(ctx, msg.Recipient, recipient)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeTransferInternal,
			sdk.NewAttribute(types.AttributeKeySender, msg.Owner),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.Recipient),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		))
		k.Logger().Info("pool transfer", "owner", msg.Owner, "recipient", msg.Recipient, "amount", msg.Amount.String())

		return &types.MsgTransferInternalResponse{}, nil
	})
}

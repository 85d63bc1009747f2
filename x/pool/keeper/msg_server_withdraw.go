package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/calculations"
	"github.com/productscience/gateway/x/pool/types"
)

func (k msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgWithdrawResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		if err := config.CheckWithdrawTime(blockTime(ctx)); err != nil {
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

		staker, err = calculations.Withdraw(staker, msg.Amount)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrWithdrawAmountExceeded, "balance %s", staker.Amount)
		}
		k.SetStaker(ctx, msg.Sender, staker)
		reward.TotalDeposit = reward.TotalDeposit.Sub(msg.Amount)
		k.SetReward(ctx, reward)

		var outbox gwtypes.Outbox
		outbox.Add(mustAccAddress(msg.Sender), coin(config.ShareDenom, msg.Amount))
		if err := outbox.Dispatch(ctx, k.bankKeeper, types.ModuleName); err != nil {
			return nil, err
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		))
		k.Logger().Info("pool withdraw",
			"sender", msg.Sender,
			"amount", msg.Amount.String(),
			"total_deposit", reward.TotalDeposit.String(),
		)

		return &types.MsgWithdrawResponse{Staker: staker}, nil
	})
}

package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/calculations"
	"github.com/productscience/gateway/x/pool/types"
)

func (k msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgDepositResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		if err := config.CheckDepositTime(blockTime(ctx)); err != nil {
			return nil, err
		}

		available, err := k.availableCapOf(ctx, config, msg.Sender)
		if err != nil {
			return nil, err
		}
		if !available.Allows(msg.Amount) {
			return nil, errorsmod.Wrapf(types.ErrDepositUserCapExceeded, "cap %s, requested %s", available, msg.Amount)
		}

		reward, err := k.settle(ctx, config)
		if err != nil {
			return nil, err
		}
		staker, err := k.checkpoint(ctx, config, reward, msg.Sender)
		if err != nil {
			return nil, err
		}

		staker = calculations.Deposit(staker, msg.Amount)
		k.SetStaker(ctx, msg.Sender, staker)
		reward.TotalDeposit = reward.TotalDeposit.Add(msg.Amount)
		k.SetReward(ctx, reward)

		err = k.bankKeeper.SendCoinsFromAccountToModule(ctx, mustAccAddress(msg.Sender), types.ModuleName, sdk.NewCoins(coin(config.ShareDenom, msg.Amount)))
		if err != nil {
			return nil, errorsmod.Wrapf(gwtypes.ErrTransferFailed, "escrow deposit: %s", err)
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		))
		k.Logger().Info("pool deposit",
			"sender", msg.Sender,
			"amount", msg.Amount.String(),
			"total_deposit", reward.TotalDeposit.String(),
		)

		return &types.MsgDepositResponse{Staker: staker}, nil
	})
}

package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/calculations"
	"github.com/productscience/gateway/x/swap/types"
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
		if err := config.CheckSaleTime(blockTime(ctx)); err != nil {
			return nil, err
		}

		swappedIn := msg.Funds.AmountOf(config.InputDenom)
		if swappedIn.IsZero() {
			return nil, types.ErrNotAllowZeroAmount
		}
		if msg.Funds.Len() > 1 {
			return nil, errorsmod.Wrapf(types.ErrNotAllowOtherDenoms, "only %s is accepted", config.InputDenom)
		}

		user := k.GetUser(ctx, msg.Sender)
		if config.WhitelistEnabled && !user.Whitelisted {
			return nil, errorsmod.Wrapf(types.ErrNotAllowNonWhitelisted, "%s", msg.Sender)
		}

		available, err := k.availableCapOf(ctx, config, msg.Sender, user)
		if err != nil {
			return nil, err
		}
		if !available.Allows(swappedIn) {
			return nil, errorsmod.Wrapf(types.ErrAvailableCapExceeded, "available %s", available)
		}

		state := k.GetState(ctx)
		swappedOut := calculations.SwappedOut(swappedIn, config.Price)
		if state.TotalSwapped.Add(swappedOut).GT(config.Amount) {
			remaining := config.Amount.Sub(state.TotalSwapped)
			return nil, errorsmod.Wrapf(types.ErrPoolSizeExceeded, "available %s", remaining)
		}

		user.SwappedIn = user.SwappedIn.Add(swappedIn)
		user.SwappedOut = user.SwappedOut.Add(swappedOut)
		state.TotalSwapped = state.TotalSwapped.Add(swappedOut)
		k.SetUser(ctx, msg.Sender, user)
		k.SetState(ctx, state)

		err = k.bankKeeper.SendCoinsFromAccountToModule(ctx, mustAccAddress(msg.Sender), types.ModuleName, msg.Funds)
		if err != nil {
			return nil, errorsmod.Wrapf(gwtypes.ErrTransferFailed, "escrow deposit: %s", err)
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeDeposit,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeySwappedIn, swappedIn.String()),
			sdk.NewAttribute(types.AttributeKeySwappedOut, swappedOut.String()),
		))
		k.Logger().Info("swap deposit",
			"sender", msg.Sender,
			"swapped_in", swappedIn.String(),
			"swapped_out", swappedOut.String(),
			"total_swapped", state.TotalSwapped.String(),
		)

		return &types.MsgDepositResponse{SwappedIn: swappedIn, SwappedOut: swappedOut}, nil
	})
}

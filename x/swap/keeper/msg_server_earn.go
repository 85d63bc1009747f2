package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/types"
)

// Earn sweeps the module's whole input-denom balance to the beneficiary once
// the lock period after the sale has passed.
func (k msgServer) Earn(goCtx context.Context, msg *types.MsgEarn) (*types.MsgEarnResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgEarnResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		if config.Beneficiary != msg.Sender {
			return nil, errorsmod.Wrapf(types.ErrUnauthorized, "earn: expected %s, got %s", config.Beneficiary, msg.Sender)
		}
		if now := blockTime(ctx); now < config.Finish || now-config.Finish < types.EarnLockPeriod {
			return nil, errorsmod.Wrapf(types.ErrNotAllowEarnBeforeLockPeriod, "locked for %ds after %d", types.EarnLockPeriod, config.Finish)
		}

		balance := k.bankKeeper.GetBalance(ctx, authtypes.NewModuleAddress(types.ModuleName), config.InputDenom)
		earned, err := k.taxKeeper.DeductTax(ctx, balance)
		if err != nil {
			return nil, errorsmod.Wrapf(gwtypes.ErrTaxDeduction, "%s", err)
		}

		var outbox gwtypes.Outbox
		outbox.Add(mustAccAddress(config.Beneficiary), earned)
		if err := outbox.Dispatch(ctx, k.bankKeeper, types.ModuleName); err != nil {
			return nil, err
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeEarn,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyAmount, earned.String()),
		))
		k.Logger().Info("swap earn", "beneficiary", config.Beneficiary, "amount", earned.String())

		return &types.MsgEarnResponse{Amount: earned}, nil
	})
}

package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/calculations"
	"github.com/productscience/gateway/x/swap/types"
)

// Withdraw hands purchased tokens back before release. The refund is priced on
// the virtual liquidity curve so it is always below the principal; the
// difference goes to the beneficiary.
func (k msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgWithdrawResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		strategies, err := gwtypes.UnpackDistributionStrategies(config.DistributionStrategies)
		if err != nil {
			return nil, err
		}
		if !calculations.WithdrawOpen(strategies, blockTime(ctx)) {
			return nil, types.ErrNotAllowWithdrawAfterRelease
		}

		user := k.GetUser(ctx, msg.Sender)
		if user.HasClaimed() {
			return nil, types.ErrNotAllowWithdrawAfterClaim
		}
		// Deposits round down one by one, so the recorded output can sit below
		// what the whole principal converts to.
		available := math.MinInt(calculations.SwappedOut(user.SwappedIn, config.Price), user.SwappedOut)
		if available.LT(msg.Amount) {
			return nil, errorsmod.Wrapf(types.ErrWithdrawAmountExceeded, "available %s", available)
		}

		state := k.GetState(ctx)
		refund, err := calculations.WithdrawAmount(state, msg.Amount)
		if err != nil {
			return nil, err
		}
		penalty, err := calculations.Penalty(refund, msg.Amount, config.Price)
		if err != nil {
			return nil, err
		}

		user.SwappedOut = user.SwappedOut.Sub(msg.Amount)
		user.SwappedIn = user.SwappedIn.Sub(calculations.PrincipalOf(msg.Amount, config.Price))
		state.TotalSwapped = state.TotalSwapped.Sub(msg.Amount)
		state.XLiquidity = state.XLiquidity.Sub(refund)
		state.YLiquidity = state.YLiquidity.Add(msg.Amount)
		k.SetUser(ctx, msg.Sender, user)
		k.SetState(ctx, state)

		refundCoin, err := k.taxKeeper.DeductTax(ctx, sdk.NewCoin(config.InputDenom, refund))
		if err != nil {
			return nil, errorsmod.Wrapf(gwtypes.ErrTaxDeduction, "%s", err)
		}
		penaltyCoin, err := k.taxKeeper.DeductTax(ctx, sdk.NewCoin(config.InputDenom, penalty))
		if err != nil {
			return nil, errorsmod.Wrapf(gwtypes.ErrTaxDeduction, "%s", err)
		}

		var outbox gwtypes.Outbox
		outbox.Add(mustAccAddress(msg.Sender), refundCoin)
		outbox.Add(mustAccAddress(config.Beneficiary), penaltyCoin)
		if err := outbox.Dispatch(ctx, k.bankKeeper, types.ModuleName); err != nil {
			return nil, err
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyRefund, refundCoin.String()),
			sdk.NewAttribute(types.AttributeKeyPenalty, penaltyCoin.String()),
		))
		k.Logger().Info("swap withdraw",
			"sender", msg.Sender,
			"amount", msg.Amount.String(),
			"refund", refundCoin.String(),
			"penalty", penaltyCoin.String(),
		)

		return &types.MsgWithdrawResponse{Refund: refundCoin, Penalty: penaltyCoin}, nil
	})
}

package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/types"
)

// AdjustReward changes the emission rate so that Amount more (or less) reward
// is paid out over what is left of the distribution period. Reward accrued so
// far is settled at the old rate first.
func (k msgServer) AdjustReward(goCtx context.Context, msg *types.MsgAdjustReward) (*types.MsgAdjustRewardResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgAdjustRewardResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		if err := k.requireOwner(config, msg.Sender); err != nil {
			return nil, err
		}
		if _, err := k.settle(ctx, config); err != nil {
			return nil, err
		}

		window := config.DistributionTime
		from := max(window.Start, blockTime(ctx))
		if from >= window.Finish {
			return nil, errorsmod.Wrapf(types.ErrDistributionFinished, "finished at %d", window.Finish)
		}
		delta := math.LegacyNewDecFromInt(msg.Amount).QuoInt(math.NewIntFromUint64(window.Finish - from))

		if msg.Remove {
			if config.RewardRate.LT(delta) {
				return nil, errorsmod.Wrapf(types.ErrNegativeRewardRate, "rate %s, removing %s per second", config.RewardRate, delta)
			}
			config.RewardRate = config.RewardRate.Sub(delta)
		} else {
			config.RewardRate = config.RewardRate.Add(delta)
		}
		k.SetConfig(ctx, config)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeAdjustReward,
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyRewardRate, config.RewardRate.String()),
		))
		k.Logger().Info("pool reward adjusted", "amount", msg.Amount.String(), "remove", msg.Remove, "reward_rate", config.RewardRate.String())

		return &types.MsgAdjustRewardResponse{RewardRate: config.RewardRate}, nil
	})
}

package keeper

import (
	"context"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/types"
)

// Whitelist sets the whitelist flag of every candidate.
func (k msgServer) Whitelist(goCtx context.Context, msg *types.MsgWhitelist) (*types.MsgWhitelistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgWhitelistResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		if err := k.requireOwner(config, msg.Sender); err != nil {
			return nil, err
		}

		for _, candidate := range msg.Candidates {
			user := k.GetUser(ctx, candidate)
			user.Whitelisted = msg.Whitelist
			k.SetUser(ctx, candidate, user)
		}

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeWhitelist,
			sdk.NewAttribute(types.AttributeKeyCandidates, strings.Join(msg.Candidates, ",")),
			sdk.NewAttribute(types.AttributeKeyWhitelist, strconv.FormatBool(msg.Whitelist)),
		))
		k.Logger().Info("swap whitelist updated", "candidates", len(msg.Candidates), "whitelist", msg.Whitelist)

		return &types.MsgWhitelistResponse{}, nil
	})
}

func (k msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgUpdateConfigResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		if err := k.requireOwner(config, msg.Sender); err != nil {
			return nil, err
		}

		if msg.Owner != "" {
			config.Owner = msg.Owner
		}
		if msg.Beneficiary != "" {
			config.Beneficiary = msg.Beneficiary
		}
		if msg.DepositCapStrategy != nil {
			config.DepositCapStrategy = msg.DepositCapStrategy
		}
		if msg.ClearDepositCapStrategy {
			config.DepositCapStrategy = nil
		}
		if msg.WhitelistEnabled != nil {
			config.WhitelistEnabled = *msg.WhitelistEnabled
		}
		if err := config.Validate(); err != nil {
			return nil, err
		}
		k.SetConfig(ctx, config)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeUpdateConfig,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
		))
		k.Logger().Info("swap config updated", "owner", config.Owner, "beneficiary", config.Beneficiary)

		return &types.MsgUpdateConfigResponse{}, nil
	})
}

func (k msgServer) UpdateState(goCtx context.Context, msg *types.MsgUpdateState) (*types.MsgUpdateStateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgUpdateStateResponse, error) {
		config, err := k.mustGetConfig(ctx)
		if err != nil {
			return nil, err
		}
		if err := k.requireOwner(config, msg.Sender); err != nil {
			return nil, err
		}

		state := k.GetState(ctx)
		if msg.XLiquidity != nil {
			state.XLiquidity = *msg.XLiquidity
		}
		if msg.YLiquidity != nil {
			state.YLiquidity = *msg.YLiquidity
		}
		k.SetState(ctx, state)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeUpdateState,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
		))
		k.Logger().Info("swap liquidity updated", "x", state.XLiquidity.String(), "y", state.YLiquidity.String())

		return &types.MsgUpdateStateResponse{}, nil
	})
}

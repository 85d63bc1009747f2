package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/types"
)

// NewShareMsgServerImpl returns the share token message service for the
// provided Keeper.
func NewShareMsgServerImpl(keeper Keeper) types.ShareMsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.ShareMsgServer = msgServer{}

func (k msgServer) ShareTransfer(goCtx context.Context, msg *types.MsgShareTransfer) (*types.MsgShareTransferResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgShareTransferResponse, error) {
		if err := k.moveShares(ctx, msg.Sender, msg.Recipient, msg.Amount); err != nil {
			return nil, err
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeShareTransfer,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.Recipient),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		))
		return &types.MsgShareTransferResponse{}, nil
	})
}

func (k msgServer) ShareSend(goCtx context.Context, msg *types.MsgShareSend) (*types.MsgShareSendResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgShareSendResponse, error) {
		if err := k.moveShares(ctx, msg.Sender, msg.Contract, msg.Amount); err != nil {
			return nil, err
		}
		if err := k.notifyReceiver(ctx, msg.Sender, msg.Contract, msg.Amount, msg.Msg); err != nil {
			return nil, err
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeShareSend,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.Contract),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		))
		return &types.MsgShareSendResponse{}, nil
	})
}

func (k msgServer) ShareTransferFrom(goCtx context.Context, msg *types.MsgShareTransferFrom) (*types.MsgShareTransferFromResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgShareTransferFromResponse, error) {
		if err := k.spendAllowance(ctx, msg.Owner, msg.Sender, msg.Amount); err != nil {
			return nil, err
		}
		if err := k.moveShares(ctx, msg.Owner, msg.Recipient, msg.Amount); err != nil {
			return nil, err
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeShareTransfer,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.Recipient),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		))
		return &types.MsgShareTransferFromResponse{}, nil
	})
}

func (k msgServer) ShareSendFrom(goCtx context.Context, msg *types.MsgShareSendFrom) (*types.MsgShareSendFromResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgShareSendFromResponse, error) {
		if err := k.spendAllowance(ctx, msg.Owner, msg.Sender, msg.Amount); err != nil {
			return nil, err
		}
		if err := k.moveShares(ctx, msg.Owner, msg.Contract, msg.Amount); err != nil {
			return nil, err
		}
		// the receiver hears from the spender, not the owner
		if err := k.notifyReceiver(ctx, msg.Sender, msg.Contract, msg.Amount, msg.Msg); err != nil {
			return nil, err
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeShareSend,
			sdk.NewAttribute(types.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Owner),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.Contract),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		))
		return &types.MsgShareSendFromResponse{}, nil
	})
}

func (k msgServer) AdjustShareAllowance(goCtx context.Context, msg *types.MsgAdjustShareAllowance) (*types.MsgAdjustShareAllowanceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	return gwtypes.Atomic(sdk.UnwrapSDKContext(goCtx), func(ctx sdk.Context) (*types.MsgAdjustShareAllowanceResponse, error) {
		allowance := k.GetShareAllowance(ctx, msg.Sender, msg.Spender)
		if msg.Expires != nil {
			if *msg.Expires != 0 && *msg.Expires <= blockTime(ctx) {
				return nil, errorsmod.Wrapf(types.ErrAllowanceExpired, "expiry %d is not in the future", *msg.Expires)
			}
			allowance.Expires = *msg.Expires
		}
		if msg.Decrease {
			allowance.Amount = allowance.Amount.Sub(math.MinInt(allowance.Amount, msg.Amount))
		} else {
			allowance.Amount = allowance.Amount.Add(msg.Amount)
		}
		k.SetShareAllowance(ctx, msg.Sender, msg.Spender, allowance)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeShareAllowance,
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Sender),
			sdk.NewAttribute(types.AttributeKeySpender, msg.Spender),
			sdk.NewAttribute(types.AttributeKeyAmount, allowance.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyExpires, strconv.FormatUint(allowance.Expires, 10)),
		))
		k.Logger().Info("pool share allowance", "owner", msg.Sender, "spender", msg.Spender, "amount", allowance.Amount.String())

		return &types.MsgAdjustShareAllowanceResponse{Allowance: allowance}, nil
	})
}

// moveShares hands the principal move to TransferInternal, which settles the
// pool and checkpoints both accounts.
func (k msgServer) moveShares(ctx sdk.Context, owner, recipient string, amount math.Int) error {
	_, err := k.TransferInternal(ctx, &types.MsgTransferInternal{Owner: owner, Recipient: recipient, Amount: amount})
	return err
}

func (k msgServer) spendAllowance(ctx sdk.Context, owner, spender string, amount math.Int) error {
	allowance := k.GetShareAllowance(ctx, owner, spender)
	if allowance.IsExpired(blockTime(ctx)) {
		return errorsmod.Wrapf(types.ErrAllowanceExpired, "expired at %d", allowance.Expires)
	}
	if allowance.Amount.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientAllowance, "allowance %s", allowance.Amount)
	}
	allowance.Amount = allowance.Amount.Sub(amount)
	k.SetShareAllowance(ctx, owner, spender, allowance)
	return nil
}

func (k msgServer) notifyReceiver(ctx sdk.Context, sender, contract string, amount math.Int, payload []byte) error {
	receiver, ok := k.shareReceivers[contract]
	if !ok {
		return errorsmod.Wrapf(types.ErrNoShareReceiver, "%s", contract)
	}
	if err := receiver.OnSharesReceived(ctx, sender, amount, payload); err != nil {
		return errorsmod.Wrapf(err, "receiver %s", contract)
	}
	return nil
}

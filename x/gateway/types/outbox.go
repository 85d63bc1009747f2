package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Transfer is a payout from module escrow to an account.
type Transfer struct {
	Recipient sdk.AccAddress
	Coin      sdk.Coin
}

// Outbox collects the transfers of one operation. They are dispatched only
// after every amount of the operation has been computed.
type Outbox []Transfer

func (o *Outbox) Add(recipient sdk.AccAddress, coin sdk.Coin) {
	*o = append(*o, Transfer{Recipient: recipient, Coin: coin})
}

// Dispatch sends every non-zero transfer from the module account.
func (o Outbox) Dispatch(ctx context.Context, bank BankKeeper, module string) error {
	for _, t := range o {
		if !t.Coin.IsPositive() {
			continue
		}
		if err := bank.SendCoinsFromModuleToAccount(ctx, module, t.Recipient, sdk.NewCoins(t.Coin)); err != nil {
			return errorsmod.Wrapf(ErrTransferFailed, "send %s to %s: %s", t.Coin, t.Recipient, err)
		}
	}
	return nil
}

// Atomic runs fn on a cached context and commits its writes and events only
// when fn succeeds.
func Atomic[T any](ctx sdk.Context, fn func(ctx sdk.Context) (T, error)) (T, error) {
	cacheCtx, write := ctx.CacheContext()
	res, err := fn(cacheCtx)
	if err != nil {
		var zero T
		return zero, err
	}
	write()
	return res, nil
}

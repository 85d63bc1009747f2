package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/gateway/x/pool/types"
)

// RegisterShareReceiver lets address accept shares through ShareSend.
func (k Keeper) RegisterShareReceiver(address string, receiver types.ShareReceiver) {
	k.shareReceivers[address] = receiver
}

// SetShareAllowance stores an allowance. Spent or zeroed allowances are removed.
func (k Keeper) SetShareAllowance(ctx sdk.Context, owner, spender string, allowance types.Allowance) {
	store := k.storeService.OpenKVStore(ctx)
	var err error
	if allowance.IsEmpty() {
		err = store.Delete(types.AllowanceKey(owner, spender))
	} else {
		err = store.Set(types.AllowanceKey(owner, spender), k.cdc.MustMarshal(&allowance))
	}
	if err != nil {
		panic(err)
	}
}

func (k Keeper) GetShareAllowance(ctx sdk.Context, owner, spender string) types.Allowance {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.AllowanceKey(owner, spender))
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.NewAllowance()
	}
	var allowance types.Allowance
	k.cdc.MustUnmarshal(bz, &allowance)
	return allowance
}

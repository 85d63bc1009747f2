package ledger

import (
	"context"
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/productscience/gateway/x/gateway/types"
)

// StoreKey names the store holding account balances.
const StoreKey = "ledger"

var balanceKeyPrefix = []byte("balance/")

type storedBalance struct {
	Coins sdk.Coins `json:"coins"`
}

func balanceKey(addr sdk.AccAddress) []byte {
	return append(append([]byte{}, balanceKeyPrefix...), []byte(addr.String())...)
}

var _ types.BankKeeper = (*Bank)(nil)

// Bank is a BankKeeper over its own KV store. Balances are read and written
// through the caller's context, so a discarded cache context discards the
// transfers made on it too. Module accounts are addressed the same way x/auth
// derives them.
type Bank struct {
	cdc          *codec.LegacyAmino
	storeService store.KVStoreService
}

func NewBank(storeService store.KVStoreService) *Bank {
	return &Bank{cdc: types.NewStoreCodec(), storeService: storeService}
}

// Mint credits coins to an account out of thin air.
func (b *Bank) Mint(ctx context.Context, addr sdk.AccAddress, coins ...sdk.Coin) {
	b.setBalance(ctx, addr, b.balance(ctx, addr).Add(coins...))
}

// MintModule credits coins to a module account.
func (b *Bank) MintModule(ctx context.Context, module string, coins ...sdk.Coin) {
	b.Mint(ctx, authtypes.NewModuleAddress(module), coins...)
}

func (b *Bank) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balance(ctx, addr).AmountOf(denom))
}

func (b *Bank) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.send(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (b *Bank) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.send(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (b *Bank) send(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	held := b.balance(ctx, from)
	balance, hasNeg := held.SafeSub(amt...)
	if hasNeg {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, held, amt)
	}
	b.setBalance(ctx, from, balance)
	b.setBalance(ctx, to, b.balance(ctx, to).Add(amt...))
	return nil
}

// Balances returns every non-empty account balance keyed by address.
func (b *Bank) Balances(ctx context.Context) map[string]sdk.Coins {
	kv := b.storeService.OpenKVStore(ctx)
	iterator, err := kv.Iterator(balanceKeyPrefix, storetypes.PrefixEndBytes(balanceKeyPrefix))
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	out := make(map[string]sdk.Coins)
	for ; iterator.Valid(); iterator.Next() {
		var stored storedBalance
		b.cdc.MustUnmarshal(iterator.Value(), &stored)
		out[string(iterator.Key()[len(balanceKeyPrefix):])] = stored.Coins
	}
	return out
}

// Supply sums the balances of one denom across all accounts.
func (b *Bank) Supply(ctx context.Context, denom string) math.Int {
	total := math.ZeroInt()
	for _, coins := range b.Balances(ctx) {
		total = total.Add(coins.AmountOf(denom))
	}
	return total
}

func (b *Bank) balance(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	bz, err := b.storeService.OpenKVStore(ctx).Get(balanceKey(addr))
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return sdk.NewCoins()
	}
	var stored storedBalance
	b.cdc.MustUnmarshal(bz, &stored)
	return sdk.NewCoins(stored.Coins...)
}

func (b *Bank) setBalance(ctx context.Context, addr sdk.AccAddress, coins sdk.Coins) {
	kv := b.storeService.OpenKVStore(ctx)
	var err error
	if coins.IsZero() {
		err = kv.Delete(balanceKey(addr))
	} else {
		err = kv.Set(balanceKey(addr), b.cdc.MustMarshal(&storedBalance{Coins: coins}))
	}
	if err != nil {
		panic(err)
	}
}

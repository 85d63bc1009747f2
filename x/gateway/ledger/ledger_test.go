package ledger_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/productscience/gateway/testutil/keeper"
	"github.com/productscience/gateway/testutil/sample"
	"github.com/productscience/gateway/x/gateway/ledger"
	"github.com/productscience/gateway/x/gateway/types"
)

func TestBankEscrowRoundTrip(t *testing.T) {
	bank, ctx := keepertest.LedgerBank(t)
	alice, err := sdk.AccAddressFromBech32(sample.AccAddress())
	require.NoError(t, err)
	bank.Mint(ctx, alice, sdk.NewInt64Coin("uusd", 100))

	require.NoError(t, bank.SendCoinsFromAccountToModule(ctx, alice, "swap", sdk.NewCoins(sdk.NewInt64Coin("uusd", 60))))
	require.Equal(t, int64(40), bank.GetBalance(ctx, alice, "uusd").Amount.Int64())
	require.Equal(t, int64(60), bank.GetBalance(ctx, authtypes.NewModuleAddress("swap"), "uusd").Amount.Int64())

	err = bank.SendCoinsFromModuleToAccount(ctx, "swap", alice, sdk.NewCoins(sdk.NewInt64Coin("uusd", 61)))
	require.Error(t, err)
	require.Equal(t, int64(60), bank.GetBalance(ctx, authtypes.NewModuleAddress("swap"), "uusd").Amount.Int64())

	require.True(t, bank.Supply(ctx, "uusd").Equal(math.NewInt(100)))
	require.Len(t, bank.Balances(ctx), 2)
}

func TestBankRollsBackWithCacheContext(t *testing.T) {
	bank, ctx := keepertest.LedgerBank(t)
	alice, err := sdk.AccAddressFromBech32(sample.AccAddress())
	require.NoError(t, err)
	bob, err := sdk.AccAddressFromBech32(sample.AccAddress())
	require.NoError(t, err)
	bank.MintModule(ctx, "swap", sdk.NewInt64Coin("uusd", 100))

	// the first payout fits, the second overdraws the module
	var outbox types.Outbox
	outbox.Add(alice, sdk.NewInt64Coin("uusd", 70))
	outbox.Add(bob, sdk.NewInt64Coin("uusd", 70))
	_, err = types.Atomic(ctx, func(ctx sdk.Context) (struct{}, error) {
		return struct{}{}, outbox.Dispatch(ctx, bank, "swap")
	})
	require.ErrorIs(t, err, types.ErrTransferFailed)

	require.True(t, bank.GetBalance(ctx, alice, "uusd").IsZero())
	require.Equal(t, int64(100), bank.GetBalance(ctx, authtypes.NewModuleAddress("swap"), "uusd").Amount.Int64())
}

func TestStakeTable(t *testing.T) {
	oracle := ledger.NewStakeTable()
	oracle.SetStake("gov", "alice", math.NewInt(42))

	got, err := oracle.StakedBalance(context.Background(), "gov", "alice")
	require.NoError(t, err)
	require.Equal(t, int64(42), got.Int64())

	got, err = oracle.StakedBalance(context.Background(), "gov", "bob")
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = oracle.StakedBalance(context.Background(), "other", "alice")
	require.Error(t, err)
}

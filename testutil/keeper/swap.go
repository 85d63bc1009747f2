package keeper

import (
	"testing"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/productscience/gateway/x/gateway/ledger"
	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/keeper"
	"github.com/productscience/gateway/x/swap/types"
)

// SwapMocks holds all the mock keepers for testing
type SwapMocks struct {
	BankKeeper  *MockBankKeeper
	StakeOracle *MockStakeOracle
	TaxKeeper   *MockTaxKeeper
}

func SwapKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := SwapKeeperReturningMocks(t)
	return k, ctx
}

func SwapKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, SwapMocks) {
	ctrl := gomock.NewController(t)
	mocks := SwapMocks{
		BankKeeper:  NewMockBankKeeper(ctrl),
		StakeOracle: NewMockStakeOracle(ctrl),
		TaxKeeper:   NewMockTaxKeeper(ctrl),
	}
	k, ctx := SwapKeeperWithMock(t, mocks.BankKeeper, mocks.StakeOracle, mocks.TaxKeeper)
	return k, ctx, mocks
}

// SwapKeeperWithMock wires the swap keeper to the given dependencies. Any of
// them may be a real implementation instead of a mock.
func SwapKeeperWithMock(
	t testing.TB,
	bankKeeper gwtypes.BankKeeper,
	stakeOracle gwtypes.StakeOracle,
	taxKeeper gwtypes.TaxKeeper,
) (keeper.Keeper, sdk.Context) {
	storeService, ctx := memStore(t, types.StoreKey)

	k := keeper.NewKeeper(
		gwtypes.NewStoreCodec(),
		storeService,
		log.NewNopLogger(),
		bankKeeper,
		stakeOracle,
		taxKeeper,
	)
	return k, ctx
}

// SwapKeeperWithLedger wires the swap keeper to a store-backed bank mounted
// next to the module store, so failed messages roll back transfers too.
func SwapKeeperWithLedger(
	t testing.TB,
	stakeOracle gwtypes.StakeOracle,
	taxKeeper gwtypes.TaxKeeper,
) (keeper.Keeper, sdk.Context, *ledger.Bank) {
	services, ctx := memStores(t, types.StoreKey, ledger.StoreKey)
	bank := ledger.NewBank(services[1])

	k := keeper.NewKeeper(
		gwtypes.NewStoreCodec(),
		services[0],
		log.NewNopLogger(),
		bank,
		stakeOracle,
		taxKeeper,
	)
	return k, ctx, bank
}

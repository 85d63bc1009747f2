package keeper

import (
	"testing"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/keeper"
	"github.com/productscience/gateway/x/pool/types"
)

// PoolMocks holds all the mock keepers for testing
type PoolMocks struct {
	BankKeeper  *MockBankKeeper
	StakeOracle *MockStakeOracle
}

func PoolKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := PoolKeeperReturningMocks(t)
	return k, ctx
}

func PoolKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, PoolMocks) {
	ctrl := gomock.NewController(t)
	mocks := PoolMocks{
		BankKeeper:  NewMockBankKeeper(ctrl),
		StakeOracle: NewMockStakeOracle(ctrl),
	}
	k, ctx := PoolKeeperWithMock(t, mocks.BankKeeper, mocks.StakeOracle)
	return k, ctx, mocks
}

func PoolKeeperWithMock(
	t testing.TB,
	bankKeeper *MockBankKeeper,
	stakeOracle *MockStakeOracle,
) (keeper.Keeper, sdk.Context) {
	storeService, ctx := memStore(t, types.StoreKey)

	k := keeper.NewKeeper(
		gwtypes.NewStoreCodec(),
		storeService,
		log.NewNopLogger(),
		bankKeeper,
		stakeOracle,
	)
	return k, ctx
}

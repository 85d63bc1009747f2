package keeper

import (
	"testing"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	cosmosstore "cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/productscience/gateway/x/gateway/ledger"
)

// memStore mounts a single IAVL store over an in-memory DB and returns its
// service together with a context bound to it.
func memStore(t testing.TB, name string) (store.KVStoreService, sdk.Context) {
	services, ctx := memStores(t, name)
	return services[0], ctx
}

// memStores mounts one IAVL store per name over a shared in-memory DB, so
// a cache context spans all of them.
func memStores(t testing.TB, names ...string) ([]store.KVStoreService, sdk.Context) {
	db := dbm.NewMemDB()
	stateStore := cosmosstore.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())

	services := make([]store.KVStoreService, 0, len(names))
	for _, name := range names {
		storeKey := storetypes.NewKVStoreKey(name)
		stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
		services = append(services, runtime.NewKVStoreService(storeKey))
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	return services, ctx
}

// LedgerBank returns a store-backed bank and a context bound to its store.
func LedgerBank(t testing.TB) (*ledger.Bank, sdk.Context) {
	service, ctx := memStore(t, ledger.StoreKey)
	return ledger.NewBank(service), ctx
}

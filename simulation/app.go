package simulation

import (
	"fmt"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	cosmosstore "cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/gateway/config"
	"github.com/productscience/gateway/x/gateway/ledger"
	gwtypes "github.com/productscience/gateway/x/gateway/types"
	poolkeeper "github.com/productscience/gateway/x/pool/keeper"
	pool "github.com/productscience/gateway/x/pool/module"
	pooltypes "github.com/productscience/gateway/x/pool/types"
	swapkeeper "github.com/productscience/gateway/x/swap/keeper"
	swap "github.com/productscience/gateway/x/swap/module"
	swaptypes "github.com/productscience/gateway/x/swap/types"
)

// App wires the pool and sale keepers over one in-memory multistore, an
// in-memory bank and a fixed stake table.
type App struct {
	Pool      poolkeeper.Keeper
	Swap      swapkeeper.Keeper
	PoolMsgs  pooltypes.MsgServer
	ShareMsgs pooltypes.ShareMsgServer
	SwapMsgs  swaptypes.MsgServer
	Bank      *ledger.Bank
	Stakes    *ledger.StakeTable

	ctx    sdk.Context
	logger log.Logger
}

// NewApp initializes every section of cfg that names an owner and funds the
// module accounts with what they are going to pay out.
func NewApp(logger log.Logger, cfg *config.Config) (*App, error) {
	poolKey := storetypes.NewKVStoreKey(pooltypes.StoreKey)
	swapKey := storetypes.NewKVStoreKey(swaptypes.StoreKey)
	ledgerKey := storetypes.NewKVStoreKey(ledger.StoreKey)

	db := dbm.NewMemDB()
	stateStore := cosmosstore.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(poolKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(swapKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(ledgerKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}

	deductor, err := cfg.Tax.Deductor()
	if err != nil {
		return nil, err
	}

	app := &App{
		Bank:   ledger.NewBank(runtime.NewKVStoreService(ledgerKey)),
		Stakes: ledger.NewStakeTable(),
		ctx:    sdk.NewContext(stateStore, cmtproto.Header{}, false, logger),
		logger: logger,
	}
	cdc := gwtypes.NewStoreCodec()
	app.Pool = poolkeeper.NewKeeper(cdc, runtime.NewKVStoreService(poolKey), logger, app.Bank, app.Stakes)
	app.Swap = swapkeeper.NewKeeper(cdc, runtime.NewKVStoreService(swapKey), logger, app.Bank, app.Stakes, deductor)
	app.PoolMsgs = poolkeeper.NewMsgServerImpl(app.Pool)
	app.ShareMsgs = poolkeeper.NewShareMsgServerImpl(app.Pool)
	app.SwapMsgs = swapkeeper.NewMsgServerImpl(app.Swap)

	if cfg.Pool.Owner != "" {
		genesis, err := cfg.Pool.Genesis()
		if err != nil {
			return nil, fmt.Errorf("pool: %w", err)
		}
		pool.InitGenesis(app.ctx, app.Pool, *genesis)
		reward, _ := math.NewIntFromString(cfg.Pool.RewardAmount)
		app.Bank.MintModule(app.ctx, pooltypes.ModuleName, sdk.NewCoin(genesis.Config.RewardDenom, reward))
	}
	if cfg.Sale.Owner != "" {
		genesis, err := cfg.Sale.Genesis()
		if err != nil {
			return nil, fmt.Errorf("sale: %w", err)
		}
		swap.InitGenesis(app.ctx, app.Swap, *genesis)
		app.Bank.MintModule(app.ctx, swaptypes.ModuleName, sdk.NewCoin(genesis.Config.OutputDenom, genesis.Config.Amount))
	}
	return app, nil
}

// At returns the application context with the block time set to t.
func (a *App) At(t uint64) sdk.Context {
	return a.ctx.WithBlockTime(time.Unix(int64(t), 0))
}

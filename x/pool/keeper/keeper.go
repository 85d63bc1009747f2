package keeper

import (
	"fmt"

	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/calculations"
	"github.com/productscience/gateway/x/pool/types"
)

type (
	Keeper struct {
		cdc          *codec.LegacyAmino
		storeService store.KVStoreService
		logger       log.Logger

		bankKeeper  gwtypes.BankKeeper
		stakeOracle gwtypes.StakeOracle

		shareReceivers map[string]types.ShareReceiver
	}
)

func NewKeeper(
	cdc *codec.LegacyAmino,
	storeService store.KVStoreService,
	logger log.Logger,

	bankKeeper gwtypes.BankKeeper,
	stakeOracle gwtypes.StakeOracle,
) Keeper {
	return Keeper{
		cdc:          cdc,
		storeService: storeService,
		logger:       logger,

		bankKeeper:  bankKeeper,
		stakeOracle: stakeOracle,

		shareReceivers: make(map[string]types.ShareReceiver),
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) SetConfig(ctx sdk.Context, config types.Config) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.ConfigKey, k.cdc.MustMarshal(&config)); err != nil {
		panic(err)
	}
}

func (k Keeper) GetConfig(ctx sdk.Context) (types.Config, bool) {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.ConfigKey)
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.Config{}, false
	}
	var config types.Config
	k.cdc.MustUnmarshal(bz, &config)
	return config, true
}

func (k Keeper) mustGetConfig(ctx sdk.Context) (types.Config, error) {
	config, found := k.GetConfig(ctx)
	if !found {
		return types.Config{}, types.ErrConfigNotFound
	}
	return config, nil
}

func (k Keeper) SetReward(ctx sdk.Context, reward types.Reward) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.RewardKey, k.cdc.MustMarshal(&reward)); err != nil {
		panic(err)
	}
}

// GetReward returns the accumulator, or a fresh one starting at the
// distribution start when none has been stored.
func (k Keeper) GetReward(ctx sdk.Context) types.Reward {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.RewardKey)
	if err != nil {
		panic(err)
	}
	if bz == nil {
		config, _ := k.GetConfig(ctx)
		return types.NewReward(config.DistributionTime.Start)
	}
	var reward types.Reward
	k.cdc.MustUnmarshal(bz, &reward)
	return reward
}

// SetStaker stores a staker account. Accounts that hold nothing are removed.
func (k Keeper) SetStaker(ctx sdk.Context, address string, staker types.Staker) {
	store := k.storeService.OpenKVStore(ctx)
	var err error
	if staker.IsEmpty() {
		err = store.Delete(types.StakerKey(address))
	} else {
		err = store.Set(types.StakerKey(address), k.cdc.MustMarshal(&staker))
	}
	if err != nil {
		panic(err)
	}
}

// GetStaker returns the staker account, or an empty one if the address never staked.
func (k Keeper) GetStaker(ctx sdk.Context, address string) types.Staker {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.StakerKey(address))
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.NewStaker()
	}
	var staker types.Staker
	k.cdc.MustUnmarshal(bz, &staker)
	return staker
}

func (k Keeper) GetAllStakers(ctx sdk.Context) []types.StakerRecord {
	store := k.storeService.OpenKVStore(ctx)
	iterator, err := store.Iterator(types.StakerKeyPrefix, storetypes.PrefixEndBytes(types.StakerKeyPrefix))
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	var stakers []types.StakerRecord
	for ; iterator.Valid(); iterator.Next() {
		var staker types.Staker
		k.cdc.MustUnmarshal(iterator.Value(), &staker)
		stakers = append(stakers, types.StakerRecord{
			Address: string(iterator.Key()[len(types.StakerKeyPrefix):]),
			Staker:  staker,
		})
	}
	return stakers
}

// availableCapOf evaluates the deposit cap strategy against the account's
// current principal.
func (k Keeper) availableCapOf(ctx sdk.Context, config types.Config, address string) (gwtypes.AvailableCap, error) {
	if config.DepositCapStrategy == nil {
		return gwtypes.UnlimitedCap(), nil
	}
	strategy, err := config.DepositCapStrategy.Unpack()
	if err != nil {
		return gwtypes.AvailableCap{}, err
	}
	return gwtypes.AvailableCapOf(ctx, strategy, k.stakeOracle, address, k.GetStaker(ctx, address).Amount)
}

// settle advances and stores the accumulator to the block time.
func (k Keeper) settle(ctx sdk.Context, config types.Config) (types.Reward, error) {
	reward, err := calculations.Settle(config, k.GetReward(ctx), blockTime(ctx))
	if err != nil {
		k.Logger().Error("reward accumulator inversion", "error", err, "last_update_time", reward.LastUpdateTime)
		return reward, err
	}
	k.SetReward(ctx, reward)
	return reward, nil
}

// checkpoint folds accrued reward into the account. The pool must be settled.
func (k Keeper) checkpoint(ctx sdk.Context, config types.Config, reward types.Reward, address string) (types.Staker, error) {
	staker, err := calculations.Checkpoint(config, reward, k.GetStaker(ctx, address))
	if err != nil {
		k.Logger().Error("staker checkpoint inversion", "error", err, "address", address)
		return staker, err
	}
	k.SetStaker(ctx, address, staker)
	return staker, nil
}

func blockTime(ctx sdk.Context) uint64 {
	t := ctx.BlockTime().Unix()
	if t < 0 {
		return 0
	}
	return uint64(t)
}

func coin(denom string, amount math.Int) sdk.Coin {
	return sdk.NewCoin(denom, amount)
}

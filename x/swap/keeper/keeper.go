package keeper

import (
	"fmt"

	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/swap/calculations"
	"github.com/productscience/gateway/x/swap/types"
)

type (
	Keeper struct {
		cdc          *codec.LegacyAmino
		storeService store.KVStoreService
		logger       log.Logger

		bankKeeper  gwtypes.BankKeeper
		stakeOracle gwtypes.StakeOracle
		taxKeeper   gwtypes.TaxKeeper
	}
)

func NewKeeper(
	cdc *codec.LegacyAmino,
	storeService store.KVStoreService,
	logger log.Logger,

	bankKeeper gwtypes.BankKeeper,
	stakeOracle gwtypes.StakeOracle,
	taxKeeper gwtypes.TaxKeeper,
) Keeper {
	return Keeper{
		cdc:          cdc,
		storeService: storeService,
		logger:       logger,

		bankKeeper:  bankKeeper,
		stakeOracle: stakeOracle,
		taxKeeper:   taxKeeper,
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

func (k Keeper) SetState(ctx sdk.Context, state types.State) {
	store := k.storeService.OpenKVStore(ctx)
	if err := store.Set(types.StateKey, k.cdc.MustMarshal(&state)); err != nil {
		panic(err)
	}
}

func (k Keeper) GetState(ctx sdk.Context) types.State {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.StateKey)
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.NewState(math.ZeroInt(), math.ZeroInt())
	}
	var state types.State
	k.cdc.MustUnmarshal(bz, &state)
	return state
}

// SetUser stores a buyer account. Accounts that hold nothing are removed.
func (k Keeper) SetUser(ctx sdk.Context, address string, user types.User) {
	store := k.storeService.OpenKVStore(ctx)
	var err error
	if user.IsEmpty() {
		err = store.Delete(types.UserKey(address))
	} else {
		err = store.Set(types.UserKey(address), k.cdc.MustMarshal(&user))
	}
	if err != nil {
		panic(err)
	}
}

// GetUser returns the buyer account, or an empty one if the address never took part.
func (k Keeper) GetUser(ctx sdk.Context, address string) types.User {
	store := k.storeService.OpenKVStore(ctx)
	bz, err := store.Get(types.UserKey(address))
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.NewUser()
	}
	var user types.User
	k.cdc.MustUnmarshal(bz, &user)
	return user
}

func (k Keeper) GetAllUsers(ctx sdk.Context) []types.UserRecord {
	store := k.storeService.OpenKVStore(ctx)
	iterator, err := store.Iterator(types.UserKeyPrefix, storetypes.PrefixEndBytes(types.UserKeyPrefix))
	if err != nil {
		panic(err)
	}
	defer iterator.Close()

	var users []types.UserRecord
	for ; iterator.Valid(); iterator.Next() {
		var user types.User
		k.cdc.MustUnmarshal(iterator.Value(), &user)
		users = append(users, types.UserRecord{
			Address: string(iterator.Key()[len(types.UserKeyPrefix):]),
			User:    user,
		})
	}
	return users
}

// availableCapOf evaluates the deposit cap strategy against what the buyer
// has paid in so far.
func (k Keeper) availableCapOf(ctx sdk.Context, config types.Config, address string, user types.User) (gwtypes.AvailableCap, error) {
	if config.DepositCapStrategy == nil {
		return gwtypes.UnlimitedCap(), nil
	}
	strategy, err := config.DepositCapStrategy.Unpack()
	if err != nil {
		return gwtypes.AvailableCap{}, err
	}
	return gwtypes.AvailableCapOf(ctx, strategy, k.stakeOracle, address, user.SwappedIn)
}

// claimableOf evaluates the release schedule for a buyer at t.
func (k Keeper) claimableOf(config types.Config, user types.User, t uint64) (math.Int, error) {
	strategies, err := gwtypes.UnpackDistributionStrategies(config.DistributionStrategies)
	if err != nil {
		return math.Int{}, err
	}
	claimable, err := calculations.ClaimableTokens(strategies, user, t)
	if err != nil {
		k.Logger().Error("claimable tokens went negative", "error", err)
		return math.Int{}, err
	}
	return claimable, nil
}

func (k Keeper) requireOwner(config types.Config, sender string) error {
	if config.Owner != sender {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the sale owner", sender)
	}
	return nil
}

func blockTime(ctx sdk.Context) uint64 {
	t := ctx.BlockTime().Unix()
	if t < 0 {
		return 0
	}
	return uint64(t)
}

func mustAccAddress(address string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		panic(err)
	}
	return addr
}

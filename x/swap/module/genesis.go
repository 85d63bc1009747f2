package swap

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/gateway/x/swap/keeper"
	"github.com/productscience/gateway/x/swap/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(err)
	}

	k.SetConfig(ctx, genState.Config)
	k.SetState(ctx, genState.State)

	for _, elem := range genState.Users {
		k.SetUser(ctx, elem.Address, elem.User)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	config, _ := k.GetConfig(ctx)
	return &types.GenesisState{
		Config: config,
		State:  k.GetState(ctx),
		Users:  k.GetAllUsers(ctx),
	}
}

package pool

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/gateway/x/pool/keeper"
	"github.com/productscience/gateway/x/pool/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(err)
	}

	k.SetConfig(ctx, genState.Config)
	k.SetReward(ctx, genState.Reward)

	for _, elem := range genState.Stakers {
		k.SetStaker(ctx, elem.Address, elem.Staker)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	config, _ := k.GetConfig(ctx)
	return &types.GenesisState{
		Config:  config,
		Reward:  k.GetReward(ctx),
		Stakers: k.GetAllStakers(ctx),
	}
}

package keeper

import (
	"context"

	"cosmossdk.io/store/prefix"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/productscience/gateway/x/pool/calculations"
	"github.com/productscience/gateway/x/pool/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Config(c context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	config, found := k.GetConfig(sdk.UnwrapSDKContext(c))
	if !found {
		return nil, status.Error(codes.NotFound, "pool is not configured")
	}
	return &types.QueryConfigResponse{Config: config}, nil
}

func (k Keeper) Reward(c context.Context, req *types.QueryRewardRequest) (*types.QueryRewardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryRewardResponse{Reward: k.GetReward(sdk.UnwrapSDKContext(c))}, nil
}

func (k Keeper) BalanceOf(c context.Context, req *types.QueryBalanceOfRequest) (*types.QueryBalanceOfResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	staker := k.GetStaker(sdk.UnwrapSDKContext(c), req.Owner)
	return &types.QueryBalanceOfResponse{Amount: staker.Amount}, nil
}

// ClaimableReward reports what the owner could claim if the pool were settled
// at the requested time. Nothing is written.
func (k Keeper) ClaimableReward(c context.Context, req *types.QueryClaimableRewardRequest) (*types.QueryClaimableRewardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "pool is not configured")
	}
	at := blockTime(ctx)
	if req.Timestamp != nil {
		at = *req.Timestamp
	}

	owed, err := calculations.Owed(config, k.GetReward(ctx), k.GetStaker(ctx, req.Owner), at)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &types.QueryClaimableRewardResponse{Amount: owed}, nil
}

func (k Keeper) Staker(c context.Context, req *types.QueryStakerRequest) (*types.QueryStakerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryStakerResponse{Staker: k.GetStaker(sdk.UnwrapSDKContext(c), req.Address)}, nil
}

func (k Keeper) Stakers(c context.Context, req *types.QueryStakersRequest) (*types.QueryStakersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	store := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	stakerStore := prefix.NewStore(store, types.StakerKeyPrefix)

	var stakers []types.StakerRecord
	pageRes, err := query.Paginate(stakerStore, clampPage(req.Pagination), func(key []byte, value []byte) error {
		var staker types.Staker
		k.cdc.MustUnmarshal(value, &staker)
		stakers = append(stakers, types.StakerRecord{Address: string(key), Staker: staker})
		return nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryStakersResponse{Stakers: stakers, Pagination: pageRes}, nil
}

func (k Keeper) AvailableCapOf(c context.Context, req *types.QueryAvailableCapOfRequest) (*types.QueryAvailableCapOfResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "pool is not configured")
	}
	if config.DepositCapStrategy == nil {
		return nil, status.Error(codes.FailedPrecondition, types.ErrNoDepositCapConfigured.Error())
	}
	available, err := k.availableCapOf(ctx, config, req.Address)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &types.QueryAvailableCapOfResponse{Cap: available}, nil
}

// clampPage applies the default page size and caps it at MaxPageLimit.
func clampPage(req *query.PageRequest) *query.PageRequest {
	page := query.PageRequest{}
	if req != nil {
		page = *req
	}
	if page.Limit == 0 {
		page.Limit = types.DefaultPageLimit
	}
	if page.Limit > types.MaxPageLimit {
		page.Limit = types.MaxPageLimit
	}
	return &page
}

package keeper

import (
	"context"

	"cosmossdk.io/store/prefix"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/productscience/gateway/x/pool/types"
)

var _ types.ShareQueryServer = Keeper{}

func (k Keeper) ShareBalance(c context.Context, req *types.QueryShareBalanceRequest) (*types.QueryShareBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	staker := k.GetStaker(sdk.UnwrapSDKContext(c), req.Address)
	return &types.QueryShareBalanceResponse{Balance: staker.Amount}, nil
}

func (k Keeper) ShareTokenInfo(c context.Context, req *types.QueryShareTokenInfoRequest) (*types.QueryShareTokenInfoResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "pool is not configured")
	}
	info := types.NewShareTokenInfo(config, k.GetReward(ctx).TotalDeposit)
	return &types.QueryShareTokenInfoResponse{TokenInfo: info}, nil
}

func (k Keeper) ShareAllowance(c context.Context, req *types.QueryShareAllowanceRequest) (*types.QueryShareAllowanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	allowance := k.GetShareAllowance(sdk.UnwrapSDKContext(c), req.Owner, req.Spender)
	return &types.QueryShareAllowanceResponse{Allowance: allowance}, nil
}

// ShareAccounts lists every address holding a staker record.
func (k Keeper) ShareAccounts(c context.Context, req *types.QueryShareAccountsRequest) (*types.QueryShareAccountsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	store := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	stakerStore := prefix.NewStore(store, types.StakerKeyPrefix)

	var accounts []string
	pageRes, err := query.Paginate(stakerStore, clampPage(req.Pagination), func(key []byte, _ []byte) error {
		accounts = append(accounts, string(key))
		return nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryShareAccountsResponse{Accounts: accounts, Pagination: pageRes}, nil
}

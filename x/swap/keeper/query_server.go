package keeper

import (
	"context"

	"cosmossdk.io/store/prefix"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/productscience/gateway/x/swap/calculations"
	"github.com/productscience/gateway/x/swap/types"
)

var _ types.QueryServer = Keeper{}

func (k Keeper) Config(c context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	config, found := k.GetConfig(sdk.UnwrapSDKContext(c))
	if !found {
		return nil, status.Error(codes.NotFound, "sale is not configured")
	}
	return &types.QueryConfigResponse{Config: config}, nil
}

func (k Keeper) State(c context.Context, req *types.QueryStateRequest) (*types.QueryStateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryStateResponse{State: k.GetState(sdk.UnwrapSDKContext(c))}, nil
}

func (k Keeper) CurrentPrice(c context.Context, req *types.QueryCurrentPriceRequest) (*types.QueryCurrentPriceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	price, err := calculations.CurrentPrice(k.GetState(sdk.UnwrapSDKContext(c)))
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	return &types.QueryCurrentPriceResponse{Price: price}, nil
}

// SimulateWithdraw prices a withdrawal without writing anything. The refund is
// reported after tax.
func (k Keeper) SimulateWithdraw(c context.Context, req *types.QuerySimulateWithdrawRequest) (*types.QuerySimulateWithdrawResponse, error) {
	if req == nil || req.Amount.IsNil() || !req.Amount.IsPositive() {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "sale is not configured")
	}
	refund, err := calculations.WithdrawAmount(k.GetState(ctx), req.Amount)
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	penalty, err := calculations.Penalty(refund, req.Amount, config.Price)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	refundCoin, err := k.taxKeeper.DeductTax(ctx, sdk.NewCoin(config.InputDenom, refund))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	withdrawable := false
	if req.Address != "" {
		withdrawable = !k.GetUser(ctx, req.Address).HasClaimed()
	}
	return &types.QuerySimulateWithdrawResponse{Amount: refundCoin, Penalty: penalty, Withdrawable: withdrawable}, nil
}

func (k Keeper) userInfo(ctx sdk.Context, config types.Config, address string, user types.User) (types.UserInfo, error) {
	claimable, err := k.claimableOf(config, user, blockTime(ctx))
	if err != nil {
		return types.UserInfo{}, err
	}
	info := types.UserInfo{
		Address:         address,
		Whitelisted:     user.Whitelisted,
		SwappedIn:       user.SwappedIn,
		RewardTotal:     claimable,
		RewardClaimed:   user.SwappedOutClaimed,
		RewardRemaining: user.SwappedOut.Sub(user.SwappedOutClaimed).Sub(claimable),
	}
	if config.DepositCapStrategy != nil {
		available, err := k.availableCapOf(ctx, config, address, user)
		if err != nil {
			return types.UserInfo{}, err
		}
		if !available.Unlimited {
			amount := available.Amount
			info.AvailableCap = &amount
		}
	}
	return info, nil
}

func (k Keeper) User(c context.Context, req *types.QueryUserRequest) (*types.QueryUserResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "sale is not configured")
	}
	info, err := k.userInfo(ctx, config, req.Address, k.GetUser(ctx, req.Address))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryUserResponse{User: info}, nil
}

func (k Keeper) Users(c context.Context, req *types.QueryUsersRequest) (*types.QueryUsersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "sale is not configured")
	}

	store := runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx))
	userStore := prefix.NewStore(store, types.UserKeyPrefix)

	var users []types.UserInfo
	pageRes, err := query.Paginate(userStore, clampPage(req.Pagination), func(key []byte, value []byte) error {
		var user types.User
		k.cdc.MustUnmarshal(value, &user)
		info, err := k.userInfo(ctx, config, string(key), user)
		if err != nil {
			return err
		}
		users = append(users, info)
		return nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryUsersResponse{Users: users, Pagination: pageRes}, nil
}

func (k Keeper) BalanceOf(c context.Context, req *types.QueryBalanceOfRequest) (*types.QueryBalanceOfResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	user := k.GetUser(sdk.UnwrapSDKContext(c), req.Owner)
	return &types.QueryBalanceOfResponse{Amount: user.SwappedIn}, nil
}

func (k Keeper) IsWhitelisted(c context.Context, req *types.QueryIsWhitelistedRequest) (*types.QueryIsWhitelistedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	user := k.GetUser(sdk.UnwrapSDKContext(c), req.Address)
	return &types.QueryIsWhitelistedResponse{Whitelisted: user.Whitelisted}, nil
}

func (k Keeper) AvailableCapOf(c context.Context, req *types.QueryAvailableCapOfRequest) (*types.QueryAvailableCapOfResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "sale is not configured")
	}
	available, err := k.availableCapOf(ctx, config, req.Address, k.GetUser(ctx, req.Address))
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &types.QueryAvailableCapOfResponse{Cap: available}, nil
}

// ClaimableTokenOf reports the buyer's total purchase and the part of it not
// yet claimed, released or not.
func (k Keeper) ClaimableTokenOf(c context.Context, req *types.QueryClaimableTokenOfRequest) (*types.QueryClaimableTokenOfResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	user := k.GetUser(sdk.UnwrapSDKContext(c), req.Address)
	return &types.QueryClaimableTokenOfResponse{
		Amount:    user.SwappedOut,
		Remaining: user.SwappedOut.Sub(user.SwappedOutClaimed),
	}, nil
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

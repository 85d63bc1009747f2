package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
)

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config
}

type QueryStateRequest struct{}

type QueryStateResponse struct {
	State State
}

type QueryCurrentPriceRequest struct{}

type QueryCurrentPriceResponse struct {
	Price math.LegacyDec
}

// QuerySimulateWithdrawRequest prices a withdrawal of Amount output tokens.
// Withdrawable is only computed when Address is set.
type QuerySimulateWithdrawRequest struct {
	Address string
	Amount  math.Int
}

type QuerySimulateWithdrawResponse struct {
	Amount       sdk.Coin
	Penalty      math.Int
	Withdrawable bool
}

type QueryUserRequest struct {
	Address string
}

// UserInfo is a buyer account as reported to clients. RewardTotal is what the
// buyer could claim now and RewardRemaining what is still locked.
type UserInfo struct {
	Address         string
	Whitelisted     bool
	SwappedIn       math.Int
	AvailableCap    *math.Int
	RewardTotal     math.Int
	RewardRemaining math.Int
	RewardClaimed   math.Int
}

type QueryUserResponse struct {
	User UserInfo
}

type QueryUsersRequest struct {
	Pagination *query.PageRequest
}

type QueryUsersResponse struct {
	Users      []UserInfo
	Pagination *query.PageResponse
}

type QueryBalanceOfRequest struct {
	Owner string
}

type QueryBalanceOfResponse struct {
	Amount math.Int
}

type QueryIsWhitelistedRequest struct {
	Address string
}

type QueryIsWhitelistedResponse struct {
	Whitelisted bool
}

type QueryAvailableCapOfRequest struct {
	Address string
}

type QueryAvailableCapOfResponse struct {
	Cap gwtypes.AvailableCap
}

type QueryClaimableTokenOfRequest struct {
	Address string
}

type QueryClaimableTokenOfResponse struct {
	Amount    math.Int
	Remaining math.Int
}

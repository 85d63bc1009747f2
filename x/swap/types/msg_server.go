package types

import "context"

// MsgServer is the swap module's message service.
type MsgServer interface {
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	Earn(context.Context, *MsgEarn) (*MsgEarnResponse, error)
	Whitelist(context.Context, *MsgWhitelist) (*MsgWhitelistResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	UpdateState(context.Context, *MsgUpdateState) (*MsgUpdateStateResponse, error)
}

// QueryServer is the swap module's query service.
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	State(context.Context, *QueryStateRequest) (*QueryStateResponse, error)
	CurrentPrice(context.Context, *QueryCurrentPriceRequest) (*QueryCurrentPriceResponse, error)
	SimulateWithdraw(context.Context, *QuerySimulateWithdrawRequest) (*QuerySimulateWithdrawResponse, error)
	User(context.Context, *QueryUserRequest) (*QueryUserResponse, error)
	Users(context.Context, *QueryUsersRequest) (*QueryUsersResponse, error)
	BalanceOf(context.Context, *QueryBalanceOfRequest) (*QueryBalanceOfResponse, error)
	IsWhitelisted(context.Context, *QueryIsWhitelistedRequest) (*QueryIsWhitelistedResponse, error)
	AvailableCapOf(context.Context, *QueryAvailableCapOfRequest) (*QueryAvailableCapOfResponse, error)
	ClaimableTokenOf(context.Context, *QueryClaimableTokenOfRequest) (*QueryClaimableTokenOfResponse, error)
}

package types

import "context"

// MsgServer is the pool module's message service.
type MsgServer interface {
	Update(context.Context, *MsgUpdate) (*MsgUpdateResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	TransferInternal(context.Context, *MsgTransferInternal) (*MsgTransferInternalResponse, error)
	AdjustReward(context.Context, *MsgAdjustReward) (*MsgAdjustRewardResponse, error)
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
}

// QueryServer is the pool module's query service.
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Reward(context.Context, *QueryRewardRequest) (*QueryRewardResponse, error)
	BalanceOf(context.Context, *QueryBalanceOfRequest) (*QueryBalanceOfResponse, error)
	ClaimableReward(context.Context, *QueryClaimableRewardRequest) (*QueryClaimableRewardResponse, error)
	Staker(context.Context, *QueryStakerRequest) (*QueryStakerResponse, error)
	Stakers(context.Context, *QueryStakersRequest) (*QueryStakersResponse, error)
	AvailableCapOf(context.Context, *QueryAvailableCapOfRequest) (*QueryAvailableCapOfResponse, error)
}

package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/swap module sentinel errors
var (
	ErrInvalidConfig                = sdkerrors.Register(ModuleName, 1100, "invalid sale config")
	ErrSwapNotStarted               = sdkerrors.Register(ModuleName, 1101, "swap not started")
	ErrSwapFinished                 = sdkerrors.Register(ModuleName, 1102, "swap finished")
	ErrWithdrawAmountExceeded       = sdkerrors.Register(ModuleName, 1103, "withdraw amount exceeded")
	ErrAvailableCapExceeded         = sdkerrors.Register(ModuleName, 1104, "available cap exceeded")
	ErrPoolSizeExceeded             = sdkerrors.Register(ModuleName, 1105, "pool size exceeded")
	ErrNotAllowZeroAmount           = sdkerrors.Register(ModuleName, 1106, "zero amount is not allowed")
	ErrNotAllowOtherDenoms          = sdkerrors.Register(ModuleName, 1107, "only the input denom is allowed")
	ErrNotAllowNonWhitelisted       = sdkerrors.Register(ModuleName, 1108, "address is not whitelisted")
	ErrNotAllowWithdrawAfterClaim   = sdkerrors.Register(ModuleName, 1109, "withdraw is not allowed after claim")
	ErrNotAllowWithdrawAfterRelease = sdkerrors.Register(ModuleName, 1110, "withdraw is not allowed after release")
	ErrNotAllowEarnBeforeLockPeriod = sdkerrors.Register(ModuleName, 1111, "earn is not allowed before the lock period ends")
	ErrUnauthorized                 = sdkerrors.Register(ModuleName, 1112, "unauthorized")
	ErrNegativeClaimable            = sdkerrors.Register(ModuleName, 1113, "claimed more than released")
	ErrInvalidWithdrawPricing       = sdkerrors.Register(ModuleName, 1114, "refund exceeds the withdrawn principal")
	ErrEmptyLiquidity               = sdkerrors.Register(ModuleName, 1115, "liquidity is empty")
	ErrInvalidAmount                = sdkerrors.Register(ModuleName, 1116, "invalid amount")
	ErrConfigNotFound               = sdkerrors.Register(ModuleName, 1117, "sale is not configured")
)

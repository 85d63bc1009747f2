package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/pool module sentinel errors
var (
	ErrInvalidConfig          = sdkerrors.Register(ModuleName, 1100, "invalid pool config")
	ErrInvalidDepositTime     = sdkerrors.Register(ModuleName, 1101, "deposit is not allowed at this time")
	ErrInvalidWithdrawTime    = sdkerrors.Register(ModuleName, 1102, "withdraw is not allowed at this time")
	ErrInvalidClaimTime       = sdkerrors.Register(ModuleName, 1103, "claim is not allowed at this time")
	ErrDepositUserCapExceeded = sdkerrors.Register(ModuleName, 1104, "deposit user cap exceeded")
	ErrWithdrawAmountExceeded = sdkerrors.Register(ModuleName, 1105, "withdraw amount exceeded")
	ErrTransferAmountExceeded = sdkerrors.Register(ModuleName, 1106, "transfer amount exceeded")
	ErrInsufficientBalance    = sdkerrors.Register(ModuleName, 1107, "insufficient staked balance")
	ErrTemporalInversion      = sdkerrors.Register(ModuleName, 1108, "reward accumulator would move backwards in time")
	ErrDistributionFinished   = sdkerrors.Register(ModuleName, 1109, "reward distribution has finished")
	ErrNegativeRewardRate     = sdkerrors.Register(ModuleName, 1110, "reward rate would become negative")
	ErrUnauthorized           = sdkerrors.Register(ModuleName, 1111, "unauthorized")
	ErrInvalidAmount          = sdkerrors.Register(ModuleName, 1112, "invalid amount")
	ErrConfigNotFound         = sdkerrors.Register(ModuleName, 1113, "pool is not configured")
	ErrNoDepositCapConfigured = sdkerrors.Register(ModuleName, 1114, "pool has no deposit cap strategy")
	ErrInvalidSpender         = sdkerrors.Register(ModuleName, 1115, "invalid share spender")
	ErrInsufficientAllowance  = sdkerrors.Register(ModuleName, 1116, "insufficient share allowance")
	ErrAllowanceExpired       = sdkerrors.Register(ModuleName, 1117, "share allowance expired")
	ErrNoShareReceiver        = sdkerrors.Register(ModuleName, 1118, "address does not accept shares")
)

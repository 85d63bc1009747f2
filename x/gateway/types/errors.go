package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/gateway shared sentinel errors
var (
	ErrInvalidTimeRange   = sdkerrors.Register(ModuleName, 1100, "invalid time range")
	ErrInvalidStrategy    = sdkerrors.Register(ModuleName, 1101, "invalid strategy")
	ErrStakeOracleQuery   = sdkerrors.Register(ModuleName, 1102, "stake oracle query failed")
	ErrStakeOracleMissing = sdkerrors.Register(ModuleName, 1103, "strategy requires a stake oracle")
	ErrTransferFailed     = sdkerrors.Register(ModuleName, 1104, "token transfer failed")
	ErrTaxDeduction       = sdkerrors.Register(ModuleName, 1105, "tax deduction failed")
)

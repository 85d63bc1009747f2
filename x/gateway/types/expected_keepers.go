package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

//go:generate mockgen -source=expected_keepers.go -package keeper -destination=../../../testutil/keeper/expected_keepers_mocks.go

// StakeOracle reports how much governance token an address has staked in a
// given staking contract. Gov capacity strategies query it on every evaluation.
type StakeOracle interface {
	StakedBalance(ctx context.Context, contract string, address string) (math.Int, error)
}

// BankKeeper defines the expected interface for moving tokens in and out of
// module escrow.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// TaxKeeper returns the amount that actually arrives after the host's tax on
// native transfers.
type TaxKeeper interface {
	DeductTax(ctx context.Context, coin sdk.Coin) (sdk.Coin, error)
}

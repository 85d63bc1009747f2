package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StakerRecord pairs a staker account with its address for export.
type StakerRecord struct {
	Address string `json:"address"`
	Staker  Staker `json:"staker"`
}

// GenesisState defines the pool module's genesis state.
type GenesisState struct {
	Config  Config         `json:"config"`
	Reward  Reward         `json:"reward"`
	Stakers []StakerRecord `json:"stakers"`
}

// NewGenesisState starts the accumulator at the beginning of distribution.
func NewGenesisState(config Config) *GenesisState {
	return &GenesisState{
		Config: config,
		Reward: NewReward(config.DistributionTime.Start),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return err
	}
	if gs.Reward.TotalDeposit.IsNil() || gs.Reward.TotalDeposit.IsNegative() {
		return errorsmod.Wrap(ErrInvalidConfig, "total deposit must be non-negative")
	}
	if gs.Reward.RewardPerTokenStored.IsNil() || gs.Reward.RewardPerTokenStored.IsNegative() {
		return errorsmod.Wrap(ErrInvalidConfig, "reward per token must be non-negative")
	}
	seen := make(map[string]struct{}, len(gs.Stakers))
	for _, rec := range gs.Stakers {
		if _, err := sdk.AccAddressFromBech32(rec.Address); err != nil {
			return fmt.Errorf("invalid staker address %s: %w", rec.Address, err)
		}
		if _, dup := seen[rec.Address]; dup {
			return fmt.Errorf("duplicated staker %s", rec.Address)
		}
		seen[rec.Address] = struct{}{}
		if rec.Staker.Amount.IsNil() || rec.Staker.Reward.IsNil() || rec.Staker.RewardPerTokenPaid.IsNil() {
			return fmt.Errorf("staker %s has missing fields", rec.Address)
		}
		if rec.Staker.RewardPerTokenPaid.GT(gs.Reward.RewardPerTokenStored) {
			return fmt.Errorf("staker %s paid reward per token ahead of the pool", rec.Address)
		}
	}
	return nil
}

package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// UserRecord pairs a buyer account with its address for export.
type UserRecord struct {
	Address string `json:"address"`
	User    User   `json:"user"`
}

// GenesisState defines the swap module's genesis state.
type GenesisState struct {
	Config Config       `json:"config"`
	State  State        `json:"state"`
	Users  []UserRecord `json:"users"`
}

// NewGenesisState seeds the virtual liquidity so that the initial withdraw
// price equals the sale price: x = amount * price, y = amount.
func NewGenesisState(config Config) *GenesisState {
	return &GenesisState{
		Config: config,
		State:  NewState(config.Price.MulInt(config.Amount).TruncateInt(), config.Amount),
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return err
	}
	for name, v := range map[string]interface{ IsNil() bool }{
		"total swapped": gs.State.TotalSwapped,
		"total claimed": gs.State.TotalClaimed,
		"x liquidity":   gs.State.XLiquidity,
		"y liquidity":   gs.State.YLiquidity,
	} {
		if v.IsNil() {
			return fmt.Errorf("state %s is missing", name)
		}
	}
	seen := make(map[string]struct{}, len(gs.Users))
	for _, rec := range gs.Users {
		if _, err := sdk.AccAddressFromBech32(rec.Address); err != nil {
			return fmt.Errorf("invalid user address %s: %w", rec.Address, err)
		}
		if _, dup := seen[rec.Address]; dup {
			return fmt.Errorf("duplicated user %s", rec.Address)
		}
		seen[rec.Address] = struct{}{}
		u := rec.User
		if u.SwappedIn.IsNil() || u.SwappedOut.IsNil() || u.SwappedOutClaimed.IsNil() {
			return fmt.Errorf("user %s has missing fields", rec.Address)
		}
		if u.SwappedOutClaimed.GT(u.SwappedOut) {
			return fmt.Errorf("user %s claimed %s of %s", rec.Address, u.SwappedOutClaimed, u.SwappedOut)
		}
	}
	return nil
}

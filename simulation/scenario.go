package simulation

import (
	"fmt"
	"os"

	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v3"
)

const (
	ActionPoolUpdate    = "pool_update"
	ActionPoolDeposit   = "pool_deposit"
	ActionPoolWithdraw  = "pool_withdraw"
	ActionPoolClaim     = "pool_claim"
	ActionPoolTransfer  = "pool_transfer"
	ActionAdjustReward  = "adjust_reward"
	ActionSwapDeposit   = "swap_deposit"
	ActionSwapWithdraw  = "swap_withdraw"
	ActionSwapClaim     = "swap_claim"
	ActionSwapEarn      = "swap_earn"
	ActionSwapWhitelist = "whitelist"
	ActionPoolClaimable = "pool_claimable"
	ActionSwapClaimable = "swap_claimable"
)

// Scenario is a list of accounts and the timed steps they perform.
type Scenario struct {
	Accounts []Account `yaml:"accounts"`
	Steps    []Step    `yaml:"steps"`
}

// Account is funded before the first step. Stakes maps a staking contract to
// the amount the account has staked in it.
type Account struct {
	Name     string            `yaml:"name"`
	Balances string            `yaml:"balances"`
	Stakes   map[string]string `yaml:"stakes"`
}

// Step is one message sent at block time At. Amount is a plain integer,
// except for swap_deposit where it is a coin list such as 1000uusdc.
type Step struct {
	At      uint64   `yaml:"at"`
	Action  string   `yaml:"action"`
	Account string   `yaml:"account"`
	Target  string   `yaml:"target,omitempty"`
	Amount  string   `yaml:"amount,omitempty"`
	Remove  bool     `yaml:"remove,omitempty"`
	Targets []string `yaml:"targets,omitempty"`
}

func LoadScenario(path string) (Scenario, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	return ParseScenario(bz)
}

func ParseScenario(bz []byte) (Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(bz, &scenario); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario: %w", err)
	}
	for i, step := range scenario.Steps {
		if i > 0 && step.At < scenario.Steps[i-1].At {
			return Scenario{}, fmt.Errorf("step %d at %d is before step %d at %d", i, step.At, i-1, scenario.Steps[i-1].At)
		}
		if step.Account == "" {
			return Scenario{}, fmt.Errorf("step %d has no account", i)
		}
	}
	return scenario, nil
}

// Address resolves a scenario account name. Bech32 addresses are used as is,
// any other name is hashed into a stable address.
func Address(name string) string {
	if _, err := sdk.AccAddressFromBech32(name); err == nil {
		return name
	}
	return sdk.AccAddress(crypto.AddressHash([]byte(name))).String()
}

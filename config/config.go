package config

import (
	"io"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
)

type Config struct {
	Log  LogConfig  `koanf:"log"`
	Tax  TaxConfig  `koanf:"tax"`
	Pool PoolConfig `koanf:"pool"`
	Sale SaleConfig `koanf:"sale"`
}

type LogConfig struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

// TaxConfig configures the deduction applied to outgoing sale payouts. An
// empty rate disables it.
type TaxConfig struct {
	Rate   string   `koanf:"rate"`
	Cap    string   `koanf:"cap"`
	Denoms []string `koanf:"denoms"`
}

// PoolConfig describes the staking pool. Deposits are open for Period seconds
// from Start, RewardAmount is spread evenly over that period and claims open
// Cliff seconds after Start.
type PoolConfig struct {
	Owner        string    `koanf:"owner"`
	ShareDenom   string    `koanf:"share_denom"`
	RewardDenom  string    `koanf:"reward_denom"`
	Start        uint64    `koanf:"start"`
	Period       uint64    `koanf:"period"`
	Cliff        uint64    `koanf:"cliff"`
	RewardAmount string    `koanf:"reward_amount"`
	DepositCap   CapConfig `koanf:"deposit_cap"`
}

type SaleConfig struct {
	Owner            string               `koanf:"owner"`
	Beneficiary      string               `koanf:"beneficiary"`
	Start            uint64               `koanf:"start"`
	Finish           uint64               `koanf:"finish"`
	Price            string               `koanf:"price"`
	Amount           string               `koanf:"amount"`
	InputDenom       string               `koanf:"input_denom"`
	OutputDenom      string               `koanf:"output_denom"`
	WhitelistEnabled bool                 `koanf:"whitelist_enabled"`
	Whitelist        []string             `koanf:"whitelist"`
	DepositCap       CapConfig            `koanf:"deposit_cap"`
	Distribution     []DistributionConfig `koanf:"distribution"`
}

// CapConfig selects a deposit cap strategy by Type: fixed, gov_fixed,
// gov_linear, gov_staged or gov_linear_staged. An empty Type means no cap.
type CapConfig struct {
	Type           string        `koanf:"type"`
	Contract       string        `koanf:"contract"`
	MinUserCap     string        `koanf:"min_user_cap"`
	MaxUserCap     string        `koanf:"max_user_cap"`
	MinStakeAmount string        `koanf:"min_stake_amount"`
	MaxStakeAmount string        `koanf:"max_stake_amount"`
	CapStart       string        `koanf:"cap_start"`
	CapWeight      string        `koanf:"cap_weight"`
	Stages         []StageConfig `koanf:"stages"`
}

type StageConfig struct {
	From       string `koanf:"from"`
	To         string `koanf:"to"`
	AppliedCap string `koanf:"applied_cap"`
	CapStart   string `koanf:"cap_start"`
	CapWeight  string `koanf:"cap_weight"`
}

// DistributionConfig is a lockup (ReleaseTime) or a vesting
// (ReleaseStartTime..ReleaseFinishTime) release leg.
type DistributionConfig struct {
	Type              string `koanf:"type"`
	ReleaseTime       uint64 `koanf:"release_time"`
	ReleaseStartTime  uint64 `koanf:"release_start_time"`
	ReleaseFinishTime uint64 `koanf:"release_finish_time"`
	ReleaseAmount     string `koanf:"release_amount"`
}

// Logger builds the process logger. The level defaults to info.
func (c LogConfig) Logger(w io.Writer) (log.Logger, error) {
	level := zerolog.InfoLevel
	if c.Level != "" {
		parsed, err := zerolog.ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	opts := []log.Option{log.LevelOption(level)}
	if c.JSON {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(w, opts...), nil
}

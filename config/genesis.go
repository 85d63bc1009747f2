package config

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/productscience/gateway/x/gateway/tax"
	gwtypes "github.com/productscience/gateway/x/gateway/types"
	pooltypes "github.com/productscience/gateway/x/pool/types"
	swaptypes "github.com/productscience/gateway/x/swap/types"
)

// Genesis builds the pool genesis state.
func (c PoolConfig) Genesis() (*pooltypes.GenesisState, error) {
	amount, err := parseInt("pool.reward_amount", c.RewardAmount)
	if err != nil {
		return nil, err
	}
	if c.Period == 0 {
		return nil, fmt.Errorf("pool.period must be positive")
	}
	cfg := pooltypes.NewConfig(c.Owner, c.ShareDenom, c.RewardDenom, c.Start, c.Period, c.Cliff, amount)
	if cfg.DepositCapStrategy, err = c.DepositCap.Strategy(); err != nil {
		return nil, fmt.Errorf("pool.deposit_cap: %w", err)
	}

	genesis := pooltypes.NewGenesisState(cfg)
	if err := genesis.Validate(); err != nil {
		return nil, err
	}
	return genesis, nil
}

// Genesis builds the sale genesis state. Whitelisted addresses are seeded as
// empty buyer accounts.
func (c SaleConfig) Genesis() (*swaptypes.GenesisState, error) {
	price, err := parseDec("sale.price", c.Price)
	if err != nil {
		return nil, err
	}
	amount, err := parseInt("sale.amount", c.Amount)
	if err != nil {
		return nil, err
	}
	cfg := swaptypes.Config{
		Owner:            c.Owner,
		Beneficiary:      c.Beneficiary,
		Start:            c.Start,
		Finish:           c.Finish,
		Price:            price,
		Amount:           amount,
		InputDenom:       c.InputDenom,
		OutputDenom:      c.OutputDenom,
		WhitelistEnabled: c.WhitelistEnabled,
	}
	if cfg.DepositCapStrategy, err = c.DepositCap.Strategy(); err != nil {
		return nil, fmt.Errorf("sale.deposit_cap: %w", err)
	}
	for i, d := range c.Distribution {
		strategy, err := d.Strategy()
		if err != nil {
			return nil, fmt.Errorf("sale.distribution[%d]: %w", i, err)
		}
		cfg.DistributionStrategies = append(cfg.DistributionStrategies, gwtypes.NewDistributionStrategyConfig(strategy))
	}

	genesis := swaptypes.NewGenesisState(cfg)
	for _, address := range c.Whitelist {
		user := swaptypes.NewUser()
		user.Whitelisted = true
		genesis.Users = append(genesis.Users, swaptypes.UserRecord{Address: address, User: user})
	}
	if err := genesis.Validate(); err != nil {
		return nil, err
	}
	return genesis, nil
}

// Deductor builds the tax applied to sale payouts.
func (c TaxConfig) Deductor() (tax.Deductor, error) {
	if c.Rate == "" {
		return tax.NoTax(), nil
	}
	rate, err := parseDec("tax.rate", c.Rate)
	if err != nil {
		return tax.Deductor{}, err
	}
	limit, err := parseInt("tax.cap", c.Cap)
	if err != nil {
		return tax.Deductor{}, err
	}
	return tax.NewDeductor(rate, limit, c.Denoms...)
}

// Strategy returns nil when no cap type is configured.
func (c CapConfig) Strategy() (*gwtypes.CapStrategyConfig, error) {
	var strategy gwtypes.CapStrategy
	var err error
	switch c.Type {
	case "":
		return nil, nil
	case "fixed":
		strategy, err = c.fixed()
	case "gov_fixed":
		strategy, err = c.govFixed()
	case "gov_linear":
		strategy, err = c.govLinear()
	case "gov_staged":
		strategy, err = c.govStaged()
	case "gov_linear_staged":
		strategy, err = c.govLinearStaged()
	default:
		return nil, fmt.Errorf("unknown cap strategy type %q", c.Type)
	}
	if err != nil {
		return nil, err
	}

	packed := gwtypes.NewCapStrategyConfig(strategy)
	if _, err := packed.Unpack(); err != nil {
		return nil, err
	}
	return &packed, nil
}

func (c CapConfig) fixed() (gwtypes.CapStrategy, error) {
	minCap, maxCap, err := c.userCaps()
	if err != nil {
		return nil, err
	}
	return gwtypes.FixedCap{MinUserCap: minCap, MaxUserCap: maxCap}, nil
}

func (c CapConfig) govFixed() (gwtypes.CapStrategy, error) {
	minStake, err := parseInt("min_stake_amount", c.MinStakeAmount)
	if err != nil {
		return nil, err
	}
	minCap, maxCap, err := c.userCaps()
	if err != nil {
		return nil, err
	}
	return gwtypes.GovFixedCap{Contract: c.Contract, MinStakeAmount: minStake, MinUserCap: minCap, MaxUserCap: maxCap}, nil
}

func (c CapConfig) govLinear() (gwtypes.CapStrategy, error) {
	start, err := parseInt("cap_start", c.CapStart)
	if err != nil {
		return nil, err
	}
	weight, err := parseDec("cap_weight", c.CapWeight)
	if err != nil {
		return nil, err
	}
	minStake, err := parseOptionalInt("min_stake_amount", c.MinStakeAmount)
	if err != nil {
		return nil, err
	}
	maxStake, err := parseOptionalInt("max_stake_amount", c.MaxStakeAmount)
	if err != nil {
		return nil, err
	}
	return gwtypes.GovLinearCap{
		Contract:       c.Contract,
		CapStart:       start,
		CapWeight:      weight,
		MinStakeAmount: minStake,
		MaxStakeAmount: maxStake,
	}, nil
}

func (c CapConfig) govStaged() (gwtypes.CapStrategy, error) {
	strategy := gwtypes.GovStagedCap{Contract: c.Contract}
	for i, s := range c.Stages {
		from, to, err := s.bounds()
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		applied, err := parseInt("applied_cap", s.AppliedCap)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		strategy.Stages = append(strategy.Stages, gwtypes.CapStage{From: from, To: to, AppliedCap: applied})
	}
	return strategy, nil
}

func (c CapConfig) govLinearStaged() (gwtypes.CapStrategy, error) {
	strategy := gwtypes.GovLinearStagedCap{Contract: c.Contract}
	for i, s := range c.Stages {
		from, to, err := s.bounds()
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		start, err := parseInt("cap_start", s.CapStart)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		weight, err := parseDec("cap_weight", s.CapWeight)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		strategy.Stages = append(strategy.Stages, gwtypes.LinearCapStage{From: from, To: to, CapStart: start, CapWeight: weight})
	}
	return strategy, nil
}

func (c CapConfig) userCaps() (*math.Int, *math.Int, error) {
	minCap, err := parseOptionalInt("min_user_cap", c.MinUserCap)
	if err != nil {
		return nil, nil, err
	}
	maxCap, err := parseOptionalInt("max_user_cap", c.MaxUserCap)
	if err != nil {
		return nil, nil, err
	}
	return minCap, maxCap, nil
}

func (s StageConfig) bounds() (*math.Int, *math.Int, error) {
	from, err := parseOptionalInt("from", s.From)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseOptionalInt("to", s.To)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (d DistributionConfig) Strategy() (gwtypes.DistributionStrategy, error) {
	amount, err := parseDec("release_amount", d.ReleaseAmount)
	if err != nil {
		return nil, err
	}
	var strategy gwtypes.DistributionStrategy
	switch d.Type {
	case "lockup":
		strategy = gwtypes.LockupStrategy{ReleaseTime: d.ReleaseTime, ReleaseAmount: amount}
	case "vesting":
		strategy = gwtypes.VestingStrategy{
			ReleaseStartTime:  d.ReleaseStartTime,
			ReleaseFinishTime: d.ReleaseFinishTime,
			ReleaseAmount:     amount,
		}
	default:
		return nil, fmt.Errorf("unknown distribution type %q", d.Type)
	}
	if err := strategy.Validate(); err != nil {
		return nil, err
	}
	return strategy, nil
}

func parseInt(field, s string) (math.Int, error) {
	v, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, fmt.Errorf("%s: invalid integer %q", field, s)
	}
	return v, nil
}

func parseOptionalInt(field, s string) (*math.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := parseInt(field, s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseDec(field, s string) (math.LegacyDec, error) {
	v, err := math.LegacyNewDecFromStr(s)
	if err != nil {
		return math.LegacyDec{}, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

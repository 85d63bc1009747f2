package types

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// AvailableCap is the remaining deposit headroom of an account.
type AvailableCap struct {
	Amount    math.Int
	Unlimited bool
}

func UnlimitedCap() AvailableCap {
	return AvailableCap{Amount: math.ZeroInt(), Unlimited: true}
}

func ZeroCap() AvailableCap {
	return AvailableCap{Amount: math.ZeroInt()}
}

// Allows reports whether a further deposit of amount fits the headroom.
func (c AvailableCap) Allows(amount math.Int) bool {
	return c.Unlimited || amount.LTE(c.Amount)
}

func (c AvailableCap) String() string {
	if c.Unlimited {
		return "unlimited"
	}
	return c.Amount.String()
}

// CapStrategy limits how much an account may commit. Evaluate is pure: stake
// is the caller's staked balance (ignored by strategies without a contract)
// and committed is what the account has already put in.
type CapStrategy interface {
	StakeContract() string
	Evaluate(stake, committed math.Int) AvailableCap
	Validate() error
}

// AvailableCapOf queries the oracle when the strategy needs a stake balance
// and evaluates the strategy against it. Nothing is cached.
func AvailableCapOf(ctx context.Context, strategy CapStrategy, oracle StakeOracle, address string, committed math.Int) (AvailableCap, error) {
	stake := math.ZeroInt()
	if contract := strategy.StakeContract(); contract != "" {
		if oracle == nil {
			return AvailableCap{}, errorsmod.Wrapf(ErrStakeOracleMissing, "contract %s", contract)
		}
		staked, err := oracle.StakedBalance(ctx, contract, address)
		if err != nil {
			return AvailableCap{}, errorsmod.Wrapf(ErrStakeOracleQuery, "contract %s address %s: %s", contract, address, err)
		}
		stake = staked
	}
	return strategy.Evaluate(stake, committed), nil
}

// remaining never goes negative: a cap below what was already committed
// leaves zero headroom.
func remaining(limit, committed math.Int) AvailableCap {
	if limit.LT(committed) {
		return ZeroCap()
	}
	return AvailableCap{Amount: limit.Sub(committed)}
}

func orZero(v *math.Int) math.Int {
	if v == nil {
		return math.ZeroInt()
	}
	return *v
}

func userCap(minUserCap, maxUserCap *math.Int, committed math.Int) AvailableCap {
	if committed.LT(orZero(minUserCap)) {
		return ZeroCap()
	}
	if maxUserCap == nil {
		return UnlimitedCap()
	}
	return remaining(*maxUserCap, committed)
}

func validateUserCap(minUserCap, maxUserCap *math.Int) error {
	if minUserCap != nil && minUserCap.IsNegative() {
		return errorsmod.Wrap(ErrInvalidStrategy, "min user cap is negative")
	}
	if maxUserCap != nil && maxUserCap.IsNegative() {
		return errorsmod.Wrap(ErrInvalidStrategy, "max user cap is negative")
	}
	if minUserCap != nil && maxUserCap != nil && maxUserCap.LT(*minUserCap) {
		return errorsmod.Wrapf(ErrInvalidStrategy, "max user cap %s is below min user cap %s", maxUserCap, minUserCap)
	}
	return nil
}

func validateContract(contract string) error {
	if contract == "" {
		return errorsmod.Wrap(ErrInvalidStrategy, "stake contract is empty")
	}
	return nil
}

// FixedCap bounds every account by the same user cap.
type FixedCap struct {
	MinUserCap *math.Int `json:"min_user_cap,omitempty"`
	MaxUserCap *math.Int `json:"max_user_cap,omitempty"`
}

func (s FixedCap) StakeContract() string { return "" }

func (s FixedCap) Evaluate(_, committed math.Int) AvailableCap {
	return userCap(s.MinUserCap, s.MaxUserCap, committed)
}

func (s FixedCap) Validate() error {
	return validateUserCap(s.MinUserCap, s.MaxUserCap)
}

// GovFixedCap applies a fixed user cap to accounts staking at least
// MinStakeAmount.
type GovFixedCap struct {
	Contract       string    `json:"contract"`
	MinStakeAmount math.Int  `json:"min_stake_amount"`
	MinUserCap     *math.Int `json:"min_user_cap,omitempty"`
	MaxUserCap     *math.Int `json:"max_user_cap,omitempty"`
}

func (s GovFixedCap) StakeContract() string { return s.Contract }

func (s GovFixedCap) Evaluate(stake, committed math.Int) AvailableCap {
	if stake.LT(s.MinStakeAmount) {
		return ZeroCap()
	}
	return userCap(s.MinUserCap, s.MaxUserCap, committed)
}

func (s GovFixedCap) Validate() error {
	if err := validateContract(s.Contract); err != nil {
		return err
	}
	if s.MinStakeAmount.IsNil() || s.MinStakeAmount.IsNegative() {
		return errorsmod.Wrap(ErrInvalidStrategy, "min stake amount must be non-negative")
	}
	return validateUserCap(s.MinUserCap, s.MaxUserCap)
}

// GovLinearCap grows the cap linearly with stake between MinStakeAmount and
// MaxStakeAmount.
type GovLinearCap struct {
	Contract       string         `json:"contract"`
	CapStart       math.Int       `json:"cap_start"`
	CapWeight      math.LegacyDec `json:"cap_weight"`
	MinStakeAmount *math.Int      `json:"min_stake_amount,omitempty"`
	MaxStakeAmount *math.Int      `json:"max_stake_amount,omitempty"`
}

func (s GovLinearCap) StakeContract() string { return s.Contract }

func (s GovLinearCap) Evaluate(stake, committed math.Int) AvailableCap {
	minStake := orZero(s.MinStakeAmount)
	if stake.LT(minStake) {
		return ZeroCap()
	}
	if s.MaxStakeAmount == nil {
		return UnlimitedCap()
	}
	dx := math.MinInt(*s.MaxStakeAmount, stake).Sub(minStake)
	limit := s.CapStart.Add(s.CapWeight.MulInt(dx).TruncateInt())
	return remaining(limit, committed)
}

func (s GovLinearCap) Validate() error {
	if err := validateContract(s.Contract); err != nil {
		return err
	}
	if s.CapStart.IsNil() || s.CapStart.IsNegative() {
		return errorsmod.Wrap(ErrInvalidStrategy, "cap start must be non-negative")
	}
	if s.CapWeight.IsNil() || s.CapWeight.IsNegative() {
		return errorsmod.Wrap(ErrInvalidStrategy, "cap weight must be non-negative")
	}
	if s.MinStakeAmount != nil && s.MaxStakeAmount != nil && s.MaxStakeAmount.LT(*s.MinStakeAmount) {
		return errorsmod.Wrapf(ErrInvalidStrategy, "max stake %s is below min stake %s", s.MaxStakeAmount, s.MinStakeAmount)
	}
	return nil
}

// CapStage applies AppliedCap to stakes in [From, To). A nil bound is open.
type CapStage struct {
	From       *math.Int `json:"from,omitempty"`
	To         *math.Int `json:"to,omitempty"`
	AppliedCap math.Int  `json:"applied_cap"`
}

// GovStagedCap picks the largest cap among the stages the stake falls into.
type GovStagedCap struct {
	Contract string     `json:"contract"`
	Stages   []CapStage `json:"stages"`
}

func (s GovStagedCap) StakeContract() string { return s.Contract }

func (s GovStagedCap) Evaluate(stake, committed math.Int) AvailableCap {
	limit := math.ZeroInt()
	for _, stage := range s.Stages {
		if orZero(stage.From).LTE(stake) && (stage.To == nil || stake.LT(*stage.To)) {
			limit = math.MaxInt(limit, stage.AppliedCap)
		}
	}
	return remaining(limit, committed)
}

func (s GovStagedCap) Validate() error {
	if err := validateContract(s.Contract); err != nil {
		return err
	}
	for i, stage := range s.Stages {
		if stage.AppliedCap.IsNil() || stage.AppliedCap.IsNegative() {
			return errorsmod.Wrapf(ErrInvalidStrategy, "stage %d: applied cap must be non-negative", i)
		}
		if stage.To != nil && stage.To.LT(orZero(stage.From)) {
			return errorsmod.Wrapf(ErrInvalidStrategy, "stage %d: to is below from", i)
		}
	}
	return nil
}

// LinearCapStage grows from CapStart by CapWeight per staked unit above From,
// up to To. An open-ended stage grants an unlimited cap.
type LinearCapStage struct {
	From      *math.Int      `json:"from,omitempty"`
	To        *math.Int      `json:"to,omitempty"`
	CapStart  math.Int       `json:"cap_start"`
	CapWeight math.LegacyDec `json:"cap_weight"`
}

type GovLinearStagedCap struct {
	Contract string           `json:"contract"`
	Stages   []LinearCapStage `json:"stages"`
}

func (s GovLinearStagedCap) StakeContract() string { return s.Contract }

func (s GovLinearStagedCap) Evaluate(stake, committed math.Int) AvailableCap {
	limit := math.ZeroInt()
	for _, stage := range s.Stages {
		from := orZero(stage.From)
		if stake.LT(from) {
			continue
		}
		if stage.To == nil {
			return UnlimitedCap()
		}
		dx := math.MinInt(*stage.To, stake).Sub(from)
		limit = math.MaxInt(limit, stage.CapStart.Add(stage.CapWeight.MulInt(dx).TruncateInt()))
	}
	return remaining(limit, committed)
}

func (s GovLinearStagedCap) Validate() error {
	if err := validateContract(s.Contract); err != nil {
		return err
	}
	for i, stage := range s.Stages {
		if stage.CapStart.IsNil() || stage.CapStart.IsNegative() {
			return errorsmod.Wrapf(ErrInvalidStrategy, "stage %d: cap start must be non-negative", i)
		}
		if stage.CapWeight.IsNil() || stage.CapWeight.IsNegative() {
			return errorsmod.Wrapf(ErrInvalidStrategy, "stage %d: cap weight must be non-negative", i)
		}
		if stage.To != nil && stage.To.LT(orZero(stage.From)) {
			return errorsmod.Wrapf(ErrInvalidStrategy, "stage %d: to is below from", i)
		}
	}
	return nil
}

// CapStrategyConfig is the stored form of a CapStrategy. Exactly one field is set.
type CapStrategyConfig struct {
	Fixed           *FixedCap           `json:"fixed,omitempty"`
	GovFixed        *GovFixedCap        `json:"gov_fixed,omitempty"`
	GovLinear       *GovLinearCap       `json:"gov_linear,omitempty"`
	GovStaged       *GovStagedCap       `json:"gov_staged,omitempty"`
	GovLinearStaged *GovLinearStagedCap `json:"gov_linear_staged,omitempty"`
}

func NewCapStrategyConfig(strategy CapStrategy) CapStrategyConfig {
	switch s := strategy.(type) {
	case FixedCap:
		return CapStrategyConfig{Fixed: &s}
	case GovFixedCap:
		return CapStrategyConfig{GovFixed: &s}
	case GovLinearCap:
		return CapStrategyConfig{GovLinear: &s}
	case GovStagedCap:
		return CapStrategyConfig{GovStaged: &s}
	case GovLinearStagedCap:
		return CapStrategyConfig{GovLinearStaged: &s}
	default:
		panic(fmt.Sprintf("unknown cap strategy %T", strategy))
	}
}

func (c CapStrategyConfig) Unpack() (CapStrategy, error) {
	var (
		strategy CapStrategy
		set      int
	)
	if c.Fixed != nil {
		strategy, set = *c.Fixed, set+1
	}
	if c.GovFixed != nil {
		strategy, set = *c.GovFixed, set+1
	}
	if c.GovLinear != nil {
		strategy, set = *c.GovLinear, set+1
	}
	if c.GovStaged != nil {
		strategy, set = *c.GovStaged, set+1
	}
	if c.GovLinearStaged != nil {
		strategy, set = *c.GovLinearStaged, set+1
	}
	if set != 1 {
		return nil, errorsmod.Wrapf(ErrInvalidStrategy, "expected exactly one cap strategy, got %d", set)
	}
	if err := strategy.Validate(); err != nil {
		return nil, err
	}
	return strategy, nil
}

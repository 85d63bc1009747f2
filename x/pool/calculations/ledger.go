package calculations

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/productscience/gateway/x/pool/types"
)

func Deposit(staker types.Staker, amount math.Int) types.Staker {
	staker.Amount = staker.Amount.Add(amount)
	return staker
}

func Withdraw(staker types.Staker, amount math.Int) (types.Staker, error) {
	if staker.Amount.LT(amount) {
		return staker, errorsmod.Wrapf(types.ErrInsufficientBalance, "balance %s, requested %s", staker.Amount, amount)
	}
	staker.Amount = staker.Amount.Sub(amount)
	return staker, nil
}

// Transfer moves principal between accounts. Both must be checkpointed first.
func Transfer(from, to types.Staker, amount math.Int) (types.Staker, types.Staker, error) {
	from, err := Withdraw(from, amount)
	if err != nil {
		return from, to, err
	}
	return from, Deposit(to, amount), nil
}

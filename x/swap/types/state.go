package types

import (
	"cosmossdk.io/math"
)

// State holds the sale totals and the virtual liquidity used to price
// withdrawals. X is denominated in the input token, Y in the output token.
type State struct {
	TotalSwapped math.Int `json:"total_swapped"`
	TotalClaimed math.Int `json:"total_claimed"`
	XLiquidity   math.Int `json:"x_liquidity"`
	YLiquidity   math.Int `json:"y_liquidity"`
}

func NewState(x, y math.Int) State {
	return State{
		TotalSwapped: math.ZeroInt(),
		TotalClaimed: math.ZeroInt(),
		XLiquidity:   x,
		YLiquidity:   y,
	}
}

// User is a buyer account. Once SwappedOutClaimed is non-zero the account can
// no longer withdraw.
type User struct {
	Whitelisted       bool     `json:"whitelisted"`
	SwappedIn         math.Int `json:"swapped_in"`
	SwappedOut        math.Int `json:"swapped_out"`
	SwappedOutClaimed math.Int `json:"swapped_out_claimed"`
}

func NewUser() User {
	return User{
		SwappedIn:         math.ZeroInt(),
		SwappedOut:        math.ZeroInt(),
		SwappedOutClaimed: math.ZeroInt(),
	}
}

func (u User) HasClaimed() bool {
	return u.SwappedOutClaimed.IsPositive()
}

func (u User) IsEmpty() bool {
	return !u.Whitelisted && u.SwappedIn.IsZero() && u.SwappedOut.IsZero() && u.SwappedOutClaimed.IsZero()
}

package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"
)

// Keepers run every operation on a cached context, so expectations match any context.

func (bank *MockBankKeeper) ExpectAny() {
	bank.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	bank.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

// ExpectEscrow expects who to pay coin into the module.
func (bank *MockBankKeeper) ExpectEscrow(who string, module string, coin sdk.Coin) *gomock.Call {
	return bank.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), mustAddr(who), module, sdk.NewCoins(coin))
}

// ExpectPayout expects the module to pay coin to who.
func (bank *MockBankKeeper) ExpectPayout(module string, who string, coin sdk.Coin) *gomock.Call {
	return bank.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), module, mustAddr(who), sdk.NewCoins(coin))
}

// ExpectNoTax makes the tax keeper pass every coin through.
func (tax *MockTaxKeeper) ExpectNoTax() {
	tax.EXPECT().DeductTax(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, coin sdk.Coin) (sdk.Coin, error) {
		return coin, nil
	}).AnyTimes()
}

func mustAddr(address string) sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		panic(err)
	}
	return addr
}

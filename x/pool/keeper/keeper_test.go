package keeper_test

import (
	"errors"
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	keepertest "github.com/productscience/gateway/testutil/keeper"
	"github.com/productscience/gateway/testutil/sample"
	gwtypes "github.com/productscience/gateway/x/gateway/types"
	"github.com/productscience/gateway/x/pool/keeper"
	pool "github.com/productscience/gateway/x/pool/module"
	"github.com/productscience/gateway/x/pool/types"
)

const (
	shareDenom  = "ushare"
	rewardDenom = "upylon"
	start       = uint64(1000)
	period      = uint64(100)
	finish      = start + period
)

type KeeperTestSuite struct {
	suite.Suite
	ctx    sdk.Context
	keeper keeper.Keeper
	msgs   types.MsgServer
	mocks  keepertest.PoolMocks

	owner, alice, bob string
}

func (suite *KeeperTestSuite) SetupTest() {
	k, ctx, mocks := keepertest.PoolKeeperReturningMocks(suite.T())
	suite.ctx = ctx
	suite.keeper = k
	suite.msgs = keeper.NewMsgServerImpl(k)
	suite.mocks = mocks
	suite.owner, suite.alice, suite.bob = sample.AccAddress(), sample.AccAddress(), sample.AccAddress()

	// 1000 reward over 100s: 10 per second
	config := types.NewConfig(suite.owner, shareDenom, rewardDenom, start, period, 0, math.NewInt(1000))
	pool.InitGenesis(ctx, k, *types.NewGenesisState(config))
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (suite *KeeperTestSuite) at(t uint64) sdk.Context {
	return suite.ctx.WithBlockTime(time.Unix(int64(t), 0))
}

func (suite *KeeperTestSuite) deposit(who string, amount int64, t uint64) {
	suite.mocks.BankKeeper.ExpectEscrow(who, types.ModuleName, sdk.NewInt64Coin(shareDenom, amount))
	_, err := suite.msgs.Deposit(suite.at(t), &types.MsgDeposit{Sender: who, Amount: math.NewInt(amount)})
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) claimable(who string, t uint64) int64 {
	resp, err := suite.keeper.ClaimableReward(suite.at(t), &types.QueryClaimableRewardRequest{Owner: who})
	suite.Require().NoError(err)
	return resp.Amount.Int64()
}

func (suite *KeeperTestSuite) TestDepositAccruesAndClaimPaysOut() {
	suite.deposit(suite.alice, 1000, start)
	suite.Require().Equal(int64(100), suite.claimable(suite.alice, start+10))

	suite.mocks.BankKeeper.ExpectPayout(types.ModuleName, suite.alice, sdk.NewInt64Coin(rewardDenom, 100))
	resp, err := suite.msgs.Claim(suite.at(start+10), &types.MsgClaim{Sender: suite.alice})
	suite.Require().NoError(err)
	suite.Require().Equal(int64(100), resp.Amount.Int64())

	staker := suite.keeper.GetStaker(suite.ctx, suite.alice)
	suite.Require().True(staker.Reward.IsZero())
	suite.Require().Equal(int64(1000), staker.Amount.Int64())
	suite.Require().Equal(int64(0), suite.claimable(suite.alice, start+10))
}

func (suite *KeeperTestSuite) TestClaimToTarget() {
	suite.deposit(suite.alice, 1000, start)

	suite.mocks.BankKeeper.ExpectPayout(types.ModuleName, suite.bob, sdk.NewInt64Coin(rewardDenom, 1000))
	_, err := suite.msgs.Claim(suite.at(finish+50), &types.MsgClaim{Sender: suite.alice, Target: suite.bob})
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestDepositOutsideWindow() {
	for _, t := range []uint64{start - 1, finish + 1} {
		_, err := suite.msgs.Deposit(suite.at(t), &types.MsgDeposit{Sender: suite.alice, Amount: math.NewInt(1)})
		suite.Require().ErrorIs(err, types.ErrInvalidDepositTime)
	}
}

func (suite *KeeperTestSuite) TestWithdrawLockedDuringDistribution() {
	suite.deposit(suite.alice, 1000, start)

	_, err := suite.msgs.Withdraw(suite.at(start+50), &types.MsgWithdraw{Sender: suite.alice, Amount: math.NewInt(1000)})
	suite.Require().ErrorIs(err, types.ErrInvalidWithdrawTime)

	suite.mocks.BankKeeper.ExpectPayout(types.ModuleName, suite.alice, sdk.NewInt64Coin(shareDenom, 400))
	_, err = suite.msgs.Withdraw(suite.at(finish+1), &types.MsgWithdraw{Sender: suite.alice, Amount: math.NewInt(400)})
	suite.Require().NoError(err)

	suite.Require().Equal(int64(600), suite.keeper.GetStaker(suite.ctx, suite.alice).Amount.Int64())
	suite.Require().Equal(int64(600), suite.keeper.GetReward(suite.ctx).TotalDeposit.Int64())
	// the whole emission stays with alice
	suite.Require().Equal(int64(1000), suite.claimable(suite.alice, finish+1000))
}

func (suite *KeeperTestSuite) TestFailedWithdrawLeavesNoTrace() {
	suite.deposit(suite.alice, 1000, start)
	before := suite.keeper.GetReward(suite.ctx)

	_, err := suite.msgs.Withdraw(suite.at(finish+1), &types.MsgWithdraw{Sender: suite.alice, Amount: math.NewInt(2000)})
	suite.Require().ErrorIs(err, types.ErrWithdrawAmountExceeded)

	after := suite.keeper.GetReward(suite.ctx)
	suite.Require().Equal(before.LastUpdateTime, after.LastUpdateTime)
	suite.Require().True(before.RewardPerTokenStored.Equal(after.RewardPerTokenStored))
	suite.Require().True(suite.keeper.GetStaker(suite.ctx, suite.alice).Reward.IsZero())
}

func (suite *KeeperTestSuite) TestFailedEscrowRollsBack() {
	suite.mocks.BankKeeper.EXPECT().
		SendCoinsFromAccountToModule(gomock.Any(), gomock.Any(), types.ModuleName, gomock.Any()).
		Return(errors.New("insufficient funds"))

	_, err := suite.msgs.Deposit(suite.at(start+5), &types.MsgDeposit{Sender: suite.alice, Amount: math.NewInt(1000)})
	suite.Require().ErrorIs(err, gwtypes.ErrTransferFailed)

	suite.Require().True(suite.keeper.GetStaker(suite.ctx, suite.alice).Amount.IsZero())
	reward := suite.keeper.GetReward(suite.ctx)
	suite.Require().True(reward.TotalDeposit.IsZero())
	suite.Require().Equal(start, reward.LastUpdateTime)
}

func (suite *KeeperTestSuite) TestRewardIsSharedByStake() {
	suite.deposit(suite.alice, 1000, start)
	suite.deposit(suite.bob, 3000, start+20)

	alice := suite.claimable(suite.alice, finish)
	bob := suite.claimable(suite.bob, finish)
	suite.Require().Equal(int64(400), alice)
	suite.Require().Equal(int64(600), bob)
	suite.Require().LessOrEqual(alice+bob, int64(1000))
}

func (suite *KeeperTestSuite) TestTransferInternalKeepsEarnedReward() {
	suite.deposit(suite.alice, 1000, start)

	_, err := suite.msgs.TransferInternal(suite.at(start+50), &types.MsgTransferInternal{
		Owner: suite.alice, Recipient: suite.bob, Amount: math.NewInt(500),
	})
	suite.Require().NoError(err)

	suite.Require().Equal(int64(750), suite.claimable(suite.alice, finish))
	suite.Require().Equal(int64(250), suite.claimable(suite.bob, finish))
	suite.Require().Equal(int64(1000), suite.keeper.GetReward(suite.ctx).TotalDeposit.Int64())

	_, err = suite.msgs.TransferInternal(suite.at(start+60), &types.MsgTransferInternal{
		Owner: suite.bob, Recipient: suite.alice, Amount: math.NewInt(501),
	})
	suite.Require().ErrorIs(err, types.ErrTransferAmountExceeded)
}

func (suite *KeeperTestSuite) TestAdjustReward() {
	suite.deposit(suite.alice, 1000, start)

	_, err := suite.msgs.AdjustReward(suite.at(start+50), &types.MsgAdjustReward{Sender: suite.alice, Amount: math.NewInt(500)})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	_, err = suite.msgs.AdjustReward(suite.at(start+50), &types.MsgAdjustReward{Sender: suite.owner, Amount: math.NewInt(5000), Remove: true})
	suite.Require().ErrorIs(err, types.ErrNegativeRewardRate)

	resp, err := suite.msgs.AdjustReward(suite.at(start+50), &types.MsgAdjustReward{Sender: suite.owner, Amount: math.NewInt(500)})
	suite.Require().NoError(err)
	suite.Require().True(math.LegacyNewDec(20).Equal(resp.RewardRate))

	// 500 accrued at the old rate, 1000 at the new one
	suite.Require().Equal(int64(1500), suite.claimable(suite.alice, finish))

	_, err = suite.msgs.AdjustReward(suite.at(finish), &types.MsgAdjustReward{Sender: suite.owner, Amount: math.NewInt(1)})
	suite.Require().ErrorIs(err, types.ErrDistributionFinished)
}

func (suite *KeeperTestSuite) TestUpdateSettlesAndCheckpoints() {
	suite.deposit(suite.alice, 1000, start)

	resp, err := suite.msgs.Update(suite.at(start+30), &types.MsgUpdate{Sender: suite.bob, Target: suite.alice})
	suite.Require().NoError(err)
	suite.Require().Equal(start+30, resp.Reward.LastUpdateTime)
	suite.Require().Equal(int64(300), suite.keeper.GetStaker(suite.ctx, suite.alice).Reward.Int64())

	_, err = suite.msgs.Update(suite.at(start+30), &types.MsgUpdate{Sender: suite.bob})
	suite.Require().NoError(err)
	suite.Require().Equal(int64(300), suite.keeper.GetStaker(suite.ctx, suite.alice).Reward.Int64())
}

func (suite *KeeperTestSuite) TestClaimableRewardRejectsPastTimestamp() {
	suite.deposit(suite.alice, 1000, start+40)

	past := start + 10
	_, err := suite.keeper.ClaimableReward(suite.ctx, &types.QueryClaimableRewardRequest{Owner: suite.alice, Timestamp: &past})
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestDepositCapStrategy() {
	maxUserCap := math.NewInt(1500)
	strategy := gwtypes.NewCapStrategyConfig(gwtypes.GovFixedCap{
		Contract:       "gov",
		MinStakeAmount: math.NewInt(10),
		MaxUserCap:     &maxUserCap,
	})
	_, err := suite.msgs.UpdateConfig(suite.ctx, &types.MsgUpdateConfig{Sender: suite.owner, DepositCapStrategy: &strategy})
	suite.Require().NoError(err)

	suite.mocks.StakeOracle.EXPECT().StakedBalance(gomock.Any(), "gov", suite.alice).Return(math.NewInt(100), nil).Times(3)
	suite.deposit(suite.alice, 1000, start)

	_, err = suite.msgs.Deposit(suite.at(start+1), &types.MsgDeposit{Sender: suite.alice, Amount: math.NewInt(600)})
	suite.Require().ErrorIs(err, types.ErrDepositUserCapExceeded)

	resp, err := suite.keeper.AvailableCapOf(suite.ctx, &types.QueryAvailableCapOfRequest{Address: suite.alice})
	suite.Require().NoError(err)
	suite.Require().Equal(int64(500), resp.Cap.Amount.Int64())

	suite.mocks.StakeOracle.EXPECT().StakedBalance(gomock.Any(), "gov", suite.bob).Return(math.Int{}, errors.New("timeout"))
	_, err = suite.msgs.Deposit(suite.at(start+1), &types.MsgDeposit{Sender: suite.bob, Amount: math.NewInt(1)})
	suite.Require().ErrorIs(err, gwtypes.ErrStakeOracleQuery)
}

func (suite *KeeperTestSuite) TestUpdateConfigRequiresOwner() {
	_, err := suite.msgs.UpdateConfig(suite.ctx, &types.MsgUpdateConfig{Sender: suite.alice, RewardDenom: "uother"})
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	windows := gwtypes.TimeRanges{gwtypes.NewTimeRange(0, gwtypes.OpenEnded, false)}
	_, err = suite.msgs.UpdateConfig(suite.ctx, &types.MsgUpdateConfig{Sender: suite.owner, WithdrawTime: windows})
	suite.Require().NoError(err)

	config, found := suite.keeper.GetConfig(suite.ctx)
	suite.Require().True(found)
	suite.Require().Equal(windows, config.WithdrawTime)
	suite.Require().Equal(rewardDenom, config.RewardDenom)
}

func (suite *KeeperTestSuite) TestStakersPagination() {
	for _, addr := range sample.AccAddresses(35) {
		staker := types.NewStaker()
		staker.Amount = math.NewInt(1)
		suite.keeper.SetStaker(suite.ctx, addr, staker)
	}

	resp, err := suite.keeper.Stakers(suite.ctx, &types.QueryStakersRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Stakers, types.DefaultPageLimit)
	suite.Require().NotEmpty(resp.Pagination.NextKey)

	resp, err = suite.keeper.Stakers(suite.ctx, &types.QueryStakersRequest{Pagination: &query.PageRequest{Limit: 100}})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Stakers, types.MaxPageLimit)

	_, err = suite.keeper.Stakers(suite.ctx, nil)
	suite.Require().Equal(codes.InvalidArgument, status.Code(err))
}

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	suite.deposit(suite.alice, 1000, start)
	suite.deposit(suite.bob, 500, start+10)

	exported := pool.ExportGenesis(suite.ctx, suite.keeper)
	suite.Require().NoError(exported.Validate())
	suite.Require().Len(exported.Stakers, 2)

	k, ctx := keepertest.PoolKeeper(suite.T())
	pool.InitGenesis(ctx, k, *exported)
	cdc := gwtypes.NewStoreCodec()
	suite.Require().JSONEq(string(cdc.MustMarshalJSON(exported)), string(cdc.MustMarshalJSON(pool.ExportGenesis(ctx, k))))
}

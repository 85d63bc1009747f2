package keeper_test

import (
	"context"
	"errors"

	"cosmossdk.io/math"

	"github.com/productscience/gateway/testutil/sample"
	"github.com/productscience/gateway/x/pool/keeper"
	"github.com/productscience/gateway/x/pool/types"
)

type receivedShares struct {
	sender string
	amount math.Int
	msg    []byte
}

type shareInbox struct {
	received []receivedShares
	err      error
}

func (r *shareInbox) OnSharesReceived(_ context.Context, sender string, amount math.Int, msg []byte) error {
	if r.err != nil {
		return r.err
	}
	r.received = append(r.received, receivedShares{sender: sender, amount: amount, msg: msg})
	return nil
}

func (suite *KeeperTestSuite) shareBalance(who string) int64 {
	resp, err := suite.keeper.ShareBalance(suite.ctx, &types.QueryShareBalanceRequest{Address: who})
	suite.Require().NoError(err)
	return resp.Balance.Int64()
}

func (suite *KeeperTestSuite) allow(owner, spender string, amount int64, expires *uint64, t uint64) error {
	shares := keeper.NewShareMsgServerImpl(suite.keeper)
	_, err := shares.AdjustShareAllowance(suite.at(t), &types.MsgAdjustShareAllowance{
		Sender: owner, Spender: spender, Amount: math.NewInt(amount), Expires: expires,
	})
	return err
}

func (suite *KeeperTestSuite) TestShareTransferKeepsEarnedReward() {
	shares := keeper.NewShareMsgServerImpl(suite.keeper)
	suite.deposit(suite.alice, 1000, start)

	_, err := shares.ShareTransfer(suite.at(start+50), &types.MsgShareTransfer{
		Sender: suite.alice, Recipient: suite.bob, Amount: math.NewInt(500),
	})
	suite.Require().NoError(err)

	suite.Require().Equal(int64(500), suite.shareBalance(suite.alice))
	suite.Require().Equal(int64(500), suite.shareBalance(suite.bob))
	suite.Require().Equal(int64(750), suite.claimable(suite.alice, finish))
	suite.Require().Equal(int64(250), suite.claimable(suite.bob, finish))

	_, err = shares.ShareTransfer(suite.at(start+60), &types.MsgShareTransfer{
		Sender: suite.bob, Recipient: suite.alice, Amount: math.NewInt(501),
	})
	suite.Require().ErrorIs(err, types.ErrTransferAmountExceeded)

	_, err = shares.ShareTransfer(suite.at(start+60), &types.MsgShareTransfer{
		Sender: suite.bob, Recipient: suite.alice, Amount: math.ZeroInt(),
	})
	suite.Require().ErrorIs(err, types.ErrInvalidAmount)
}

func (suite *KeeperTestSuite) TestShareTokenInfoTracksDeposits() {
	suite.deposit(suite.alice, 1000, start)
	suite.deposit(suite.bob, 500, start+10)

	resp, err := suite.keeper.ShareTokenInfo(suite.ctx, &types.QueryShareTokenInfoRequest{})
	suite.Require().NoError(err)
	info := resp.TokenInfo
	suite.Require().Equal("bPYLONDP-0m", info.Symbol)
	suite.Require().Equal(uint32(types.ShareDecimals), info.Decimals)
	suite.Require().Equal(int64(1500), info.TotalSupply.Int64())

	accounts, err := suite.keeper.ShareAccounts(suite.ctx, &types.QueryShareAccountsRequest{})
	suite.Require().NoError(err)
	suite.Require().ElementsMatch([]string{suite.alice, suite.bob}, accounts.Accounts)
}

func (suite *KeeperTestSuite) TestShareSendNotifiesReceiver() {
	shares := keeper.NewShareMsgServerImpl(suite.keeper)
	contract := sample.AccAddress()
	suite.deposit(suite.alice, 1000, start)

	send := &types.MsgShareSend{Sender: suite.alice, Contract: contract, Amount: math.NewInt(300), Msg: []byte(`{"bond":{}}`)}
	_, err := shares.ShareSend(suite.at(start+10), send)
	suite.Require().ErrorIs(err, types.ErrNoShareReceiver)
	suite.Require().Equal(int64(1000), suite.shareBalance(suite.alice))

	inbox := &shareInbox{err: errors.New("rejected")}
	suite.keeper.RegisterShareReceiver(contract, inbox)
	_, err = shares.ShareSend(suite.at(start+10), send)
	suite.Require().Error(err)
	suite.Require().Zero(suite.shareBalance(contract))

	inbox.err = nil
	_, err = shares.ShareSend(suite.at(start+10), send)
	suite.Require().NoError(err)
	suite.Require().Equal(int64(700), suite.shareBalance(suite.alice))
	suite.Require().Equal(int64(300), suite.shareBalance(contract))
	suite.Require().Len(inbox.received, 1)
	suite.Require().Equal(suite.alice, inbox.received[0].sender)
	suite.Require().Equal(int64(300), inbox.received[0].amount.Int64())
	suite.Require().Equal(send.Msg, inbox.received[0].msg)
}

func (suite *KeeperTestSuite) TestShareTransferFromSpendsAllowance() {
	shares := keeper.NewShareMsgServerImpl(suite.keeper)
	suite.deposit(suite.alice, 1000, start)

	transferFrom := func(amount int64, t uint64) error {
		_, err := shares.ShareTransferFrom(suite.at(t), &types.MsgShareTransferFrom{
			Sender: suite.bob, Owner: suite.alice, Recipient: suite.bob, Amount: math.NewInt(amount),
		})
		return err
	}

	suite.Require().ErrorIs(transferFrom(100, start+10), types.ErrInsufficientAllowance)

	suite.Require().NoError(suite.allow(suite.alice, suite.bob, 400, nil, start+10))
	suite.Require().NoError(transferFrom(300, start+20))
	suite.Require().Equal(int64(700), suite.shareBalance(suite.alice))
	suite.Require().Equal(int64(300), suite.shareBalance(suite.bob))

	allowance, err := suite.keeper.ShareAllowance(suite.ctx, &types.QueryShareAllowanceRequest{Owner: suite.alice, Spender: suite.bob})
	suite.Require().NoError(err)
	suite.Require().Equal(int64(100), allowance.Allowance.Amount.Int64())

	suite.Require().ErrorIs(transferFrom(200, start+30), types.ErrInsufficientAllowance)

	_, err = shares.AdjustShareAllowance(suite.at(start+30), &types.MsgAdjustShareAllowance{
		Sender: suite.alice, Spender: suite.bob, Amount: math.NewInt(500), Decrease: true,
	})
	suite.Require().NoError(err)
	allowance, err = suite.keeper.ShareAllowance(suite.ctx, &types.QueryShareAllowanceRequest{Owner: suite.alice, Spender: suite.bob})
	suite.Require().NoError(err)
	suite.Require().True(allowance.Allowance.Amount.IsZero())
}

func (suite *KeeperTestSuite) TestShareAllowanceExpiry() {
	shares := keeper.NewShareMsgServerImpl(suite.keeper)
	suite.deposit(suite.alice, 1000, start)

	past := uint64(start + 5)
	suite.Require().ErrorIs(suite.allow(suite.alice, suite.bob, 100, &past, start+10), types.ErrAllowanceExpired)

	expires := uint64(start + 20)
	suite.Require().NoError(suite.allow(suite.alice, suite.bob, 100, &expires, start+10))

	_, err := shares.ShareTransferFrom(suite.at(start+20), &types.MsgShareTransferFrom{
		Sender: suite.bob, Owner: suite.alice, Recipient: suite.bob, Amount: math.NewInt(50),
	})
	suite.Require().ErrorIs(err, types.ErrAllowanceExpired)
	suite.Require().Equal(int64(1000), suite.shareBalance(suite.alice))
}

func (suite *KeeperTestSuite) TestShareSendFromReportsSpender() {
	shares := keeper.NewShareMsgServerImpl(suite.keeper)
	contract := sample.AccAddress()
	inbox := &shareInbox{}
	suite.keeper.RegisterShareReceiver(contract, inbox)
	suite.deposit(suite.alice, 1000, start)
	suite.Require().NoError(suite.allow(suite.alice, suite.bob, 200, nil, start))

	_, err := shares.ShareSendFrom(suite.at(start+10), &types.MsgShareSendFrom{
		Sender: suite.bob, Owner: suite.alice, Contract: contract, Amount: math.NewInt(200),
	})
	suite.Require().NoError(err)
	suite.Require().Equal(int64(200), suite.shareBalance(contract))
	suite.Require().Len(inbox.received, 1)
	suite.Require().Equal(suite.bob, inbox.received[0].sender)

	// the allowance is used up
	_, err = shares.ShareSendFrom(suite.at(start+20), &types.MsgShareSendFrom{
		Sender: suite.bob, Owner: suite.alice, Contract: contract, Amount: math.NewInt(1),
	})
	suite.Require().ErrorIs(err, types.ErrInsufficientAllowance)
}

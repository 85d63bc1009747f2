package types

import (
	"context"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"
)

// ShareDecimals is the precision reported for the share token.
const ShareDecimals = 6

const secondsPerMonth = 30 * 86400

// Allowance lets a spender move up to Amount of an owner's shares. Expires is
// a unix timestamp; zero never expires.
type Allowance struct {
	Amount  math.Int `json:"amount"`
	Expires uint64   `json:"expires,omitempty"`
}

func NewAllowance() Allowance {
	return Allowance{Amount: math.ZeroInt()}
}

func (a Allowance) IsExpired(now uint64) bool {
	return a.Expires != 0 && now >= a.Expires
}

func (a Allowance) IsEmpty() bool {
	return a.Amount.IsNil() || a.Amount.IsZero()
}

// ShareTokenInfo describes the pool's share token. Supply tracks the pool's
// total deposit.
type ShareTokenInfo struct {
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Decimals    uint32   `json:"decimals"`
	TotalSupply math.Int `json:"total_supply"`
}

// NewShareTokenInfo names the token after the reward denom and the length of
// the distribution period in whole months.
func NewShareTokenInfo(config Config, totalSupply math.Int) ShareTokenInfo {
	months := (config.DistributionTime.Finish - config.DistributionTime.Start) / secondsPerMonth
	ticker := strings.ToUpper(strings.TrimPrefix(config.RewardDenom, "u"))
	return ShareTokenInfo{
		Name:        fmt.Sprintf("%s %dm pool share", ticker, months),
		Symbol:      fmt.Sprintf("b%sDP-%dm", ticker, months),
		Decimals:    ShareDecimals,
		TotalSupply: totalSupply,
	}
}

// ShareReceiver is notified after shares are sent to its address.
type ShareReceiver interface {
	OnSharesReceived(ctx context.Context, sender string, amount math.Int, msg []byte) error
}

type MsgShareTransfer struct {
	Sender    string
	Recipient string
	Amount    math.Int
}

type MsgShareTransferResponse struct{}

func (msg *MsgShareTransfer) ValidateBasic() error {
	return validateShareMove(msg.Sender, msg.Recipient, msg.Amount)
}

// MsgShareSend transfers shares to Contract and hands it Msg.
type MsgShareSend struct {
	Sender   string
	Contract string
	Amount   math.Int
	Msg      []byte
}

type MsgShareSendResponse struct{}

func (msg *MsgShareSend) ValidateBasic() error {
	return validateShareMove(msg.Sender, msg.Contract, msg.Amount)
}

type MsgShareTransferFrom struct {
	Sender    string
	Owner     string
	Recipient string
	Amount    math.Int
}

type MsgShareTransferFromResponse struct{}

func (msg *MsgShareTransferFrom) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	return validateShareMove(msg.Owner, msg.Recipient, msg.Amount)
}

type MsgShareSendFrom struct {
	Sender   string
	Owner    string
	Contract string
	Amount   math.Int
	Msg      []byte
}

type MsgShareSendFromResponse struct{}

func (msg *MsgShareSendFrom) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	return validateShareMove(msg.Owner, msg.Contract, msg.Amount)
}

// MsgAdjustShareAllowance raises or lowers what Spender may move on the sender's
// behalf. A non-nil Expires replaces the stored expiry.
type MsgAdjustShareAllowance struct {
	Sender   string
	Spender  string
	Amount   math.Int
	Decrease bool
	Expires  *uint64
}

type MsgAdjustShareAllowanceResponse struct {
	Allowance Allowance
}

func (msg *MsgAdjustShareAllowance) ValidateBasic() error {
	if err := validateAddress(msg.Sender, "sender"); err != nil {
		return err
	}
	if err := validateAddress(msg.Spender, "spender"); err != nil {
		return err
	}
	if msg.Sender == msg.Spender {
		return errorsmod.Wrap(ErrInvalidSpender, "cannot set an allowance for yourself")
	}
	return validatePositive(msg.Amount)
}

func validateShareMove(owner, recipient string, amount math.Int) error {
	if err := validateAddress(owner, "owner"); err != nil {
		return err
	}
	if err := validateAddress(recipient, "recipient"); err != nil {
		return err
	}
	if owner == recipient {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "owner and recipient are the same account")
	}
	return validatePositive(amount)
}

type QueryShareBalanceRequest struct {
	Address string
}

type QueryShareBalanceResponse struct {
	Balance math.Int
}

type QueryShareTokenInfoRequest struct{}

type QueryShareTokenInfoResponse struct {
	TokenInfo ShareTokenInfo
}

type QueryShareAllowanceRequest struct {
	Owner   string
	Spender string
}

type QueryShareAllowanceResponse struct {
	Allowance Allowance
}

type QueryShareAccountsRequest struct {
	Pagination *query.PageRequest
}

type QueryShareAccountsResponse struct {
	Accounts   []string
	Pagination *query.PageResponse
}

// ShareMsgServer moves the pool's staked shares like a fungible token.
type ShareMsgServer interface {
	ShareTransfer(context.Context, *MsgShareTransfer) (*MsgShareTransferResponse, error)
	ShareSend(context.Context, *MsgShareSend) (*MsgShareSendResponse, error)
	ShareTransferFrom(context.Context, *MsgShareTransferFrom) (*MsgShareTransferFromResponse, error)
	ShareSendFrom(context.Context, *MsgShareSendFrom) (*MsgShareSendFromResponse, error)
	AdjustShareAllowance(context.Context, *MsgAdjustShareAllowance) (*MsgAdjustShareAllowanceResponse, error)
}

type ShareQueryServer interface {
	ShareBalance(context.Context, *QueryShareBalanceRequest) (*QueryShareBalanceResponse, error)
	ShareTokenInfo(context.Context, *QueryShareTokenInfoRequest) (*QueryShareTokenInfoResponse, error)
	ShareAllowance(context.Context, *QueryShareAllowanceRequest) (*QueryShareAllowanceResponse, error)
	ShareAccounts(context.Context, *QueryShareAccountsRequest) (*QueryShareAccountsResponse, error)
}

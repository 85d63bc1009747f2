package simulation

import (
	"fmt"
	"sort"
	"strings"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"

	pooltypes "github.com/productscience/gateway/x/pool/types"
	swaptypes "github.com/productscience/gateway/x/swap/types"
)

// Outcome is the result of one scenario step. A failed step leaves no trace
// in state and the run goes on.
type Outcome struct {
	Step   Step
	Result string
	Err    error
}

type Runner struct {
	app    *App
	runID  string
	logger log.Logger
}

func NewRunner(app *App) *Runner {
	runID := uuid.NewString()
	return &Runner{
		app:    app,
		runID:  runID,
		logger: app.logger.With("run", runID),
	}
}

func (r *Runner) RunID() string {
	return r.runID
}

// Run funds the scenario accounts and replays every step in order.
func (r *Runner) Run(scenario Scenario) ([]Outcome, error) {
	if err := r.fund(scenario.Accounts); err != nil {
		return nil, err
	}
	r.logger.Info("simulation started", "accounts", len(scenario.Accounts), "steps", len(scenario.Steps))

	outcomes := make([]Outcome, 0, len(scenario.Steps))
	for _, step := range scenario.Steps {
		result, err := r.step(step)
		if err != nil {
			r.logger.Debug("step failed", "at", step.At, "action", step.Action, "account", step.Account, "error", err)
		}
		outcomes = append(outcomes, Outcome{Step: step, Result: result, Err: err})
	}
	return outcomes, nil
}

func (r *Runner) fund(accounts []Account) error {
	for _, account := range accounts {
		address := Address(account.Name)
		if account.Balances != "" {
			coins, err := sdk.ParseCoinsNormalized(account.Balances)
			if err != nil {
				return fmt.Errorf("account %s: %w", account.Name, err)
			}
			r.app.Bank.Mint(r.app.ctx, sdk.MustAccAddressFromBech32(address), coins...)
		}
		for contract, amount := range account.Stakes {
			stake, ok := math.NewIntFromString(amount)
			if !ok {
				return fmt.Errorf("account %s: invalid stake %q in %s", account.Name, amount, contract)
			}
			r.app.Stakes.SetStake(contract, address, stake)
		}
	}
	return nil
}

func (r *Runner) step(step Step) (string, error) {
	ctx := r.app.At(step.At)
	sender := Address(step.Account)
	target := ""
	if step.Target != "" {
		target = Address(step.Target)
	}

	switch step.Action {
	case ActionPoolUpdate:
		resp, err := r.app.PoolMsgs.Update(ctx, &pooltypes.MsgUpdate{Sender: sender, Target: target})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("reward per token %s", resp.Reward.RewardPerTokenStored), nil

	case ActionPoolDeposit:
		amount, err := parseAmount(step.Amount)
		if err != nil {
			return "", err
		}
		resp, err := r.app.PoolMsgs.Deposit(ctx, &pooltypes.MsgDeposit{Sender: sender, Amount: amount})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("staked %s", resp.Staker.Amount), nil

	case ActionPoolWithdraw:
		amount, err := parseAmount(step.Amount)
		if err != nil {
			return "", err
		}
		resp, err := r.app.PoolMsgs.Withdraw(ctx, &pooltypes.MsgWithdraw{Sender: sender, Amount: amount})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("staked %s", resp.Staker.Amount), nil

	case ActionPoolClaim:
		resp, err := r.app.PoolMsgs.Claim(ctx, &pooltypes.MsgClaim{Sender: sender, Target: target})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("claimed %s", resp.Amount), nil

	case ActionPoolTransfer:
		amount, err := parseAmount(step.Amount)
		if err != nil {
			return "", err
		}
		_, err = r.app.ShareMsgs.ShareTransfer(ctx, &pooltypes.MsgShareTransfer{Sender: sender, Recipient: target, Amount: amount})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("moved %s", amount), nil

	case ActionPoolClaimable:
		resp, err := r.app.Pool.ClaimableReward(ctx, &pooltypes.QueryClaimableRewardRequest{Owner: sender})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("claimable %s", resp.Amount), nil

	case ActionAdjustReward:
		amount, err := parseAmount(step.Amount)
		if err != nil {
			return "", err
		}
		resp, err := r.app.PoolMsgs.AdjustReward(ctx, &pooltypes.MsgAdjustReward{Sender: sender, Amount: amount, Remove: step.Remove})
		if err != nil {
			return "", err
		}
		if !step.Remove {
			// the owner tops up the reward pool with the added amount
			config, _ := r.app.Pool.GetConfig(ctx)
			r.app.Bank.MintModule(ctx, pooltypes.ModuleName, sdk.NewCoin(config.RewardDenom, amount))
		}
		return fmt.Sprintf("reward rate %s", resp.RewardRate), nil

	case ActionSwapDeposit:
		funds, err := sdk.ParseCoinsNormalized(step.Amount)
		if err != nil {
			return "", err
		}
		resp, err := r.app.SwapMsgs.Deposit(ctx, &swaptypes.MsgDeposit{Sender: sender, Funds: funds})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("swapped %s for %s", resp.SwappedIn, resp.SwappedOut), nil

	case ActionSwapWithdraw:
		amount, err := parseAmount(step.Amount)
		if err != nil {
			return "", err
		}
		resp, err := r.app.SwapMsgs.Withdraw(ctx, &swaptypes.MsgWithdraw{Sender: sender, Amount: amount})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("refund %s, penalty %s", resp.Refund, resp.Penalty), nil

	case ActionSwapClaim:
		resp, err := r.app.SwapMsgs.Claim(ctx, &swaptypes.MsgClaim{Sender: sender})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("claimed %s", resp.Amount), nil

	case ActionSwapClaimable:
		resp, err := r.app.Swap.User(ctx, &swaptypes.QueryUserRequest{Address: sender})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("claimable %s, locked %s, claimed %s",
			resp.User.RewardTotal, resp.User.RewardRemaining, resp.User.RewardClaimed), nil

	case ActionSwapEarn:
		resp, err := r.app.SwapMsgs.Earn(ctx, &swaptypes.MsgEarn{Sender: sender})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("earned %s", resp.Amount), nil

	case ActionSwapWhitelist:
		candidates := make([]string, 0, len(step.Targets))
		for _, name := range step.Targets {
			candidates = append(candidates, Address(name))
		}
		_, err := r.app.SwapMsgs.Whitelist(ctx, &swaptypes.MsgWhitelist{Sender: sender, Candidates: candidates, Whitelist: !step.Remove})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("whitelist %v for %d accounts", !step.Remove, len(candidates)), nil

	default:
		return "", fmt.Errorf("unknown action %q", step.Action)
	}
}

// Balances reports the final balance of every scenario account, sorted by
// name.
func (r *Runner) Balances(accounts []Account) []string {
	all := r.app.Bank.Balances(r.app.ctx)
	lines := make([]string, 0, len(accounts))
	for _, account := range accounts {
		balance := all[Address(account.Name)]
		lines = append(lines, fmt.Sprintf("%s: %s", account.Name, balance))
	}
	sort.Strings(lines)
	return lines
}

func parseAmount(s string) (math.Int, error) {
	amount, ok := math.NewIntFromString(strings.TrimSpace(s))
	if !ok {
		return math.Int{}, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

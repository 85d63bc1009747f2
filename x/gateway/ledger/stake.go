package ledger

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"

	"github.com/productscience/gateway/x/gateway/types"
)

var _ types.StakeOracle = (*StakeTable)(nil)

// StakeTable is a StakeOracle backed by fixed balances per staking contract.
type StakeTable struct {
	mu       sync.RWMutex
	balances map[string]map[string]math.Int
}

func NewStakeTable() *StakeTable {
	return &StakeTable{balances: make(map[string]map[string]math.Int)}
}

func (s *StakeTable) SetStake(contract, address string, amount math.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balances[contract] == nil {
		s.balances[contract] = make(map[string]math.Int)
	}
	s.balances[contract][address] = amount
}

// StakedBalance fails for contracts the table knows nothing about, the same
// way a query against a missing contract would.
func (s *StakeTable) StakedBalance(_ context.Context, contract string, address string) (math.Int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stakes, ok := s.balances[contract]
	if !ok {
		return math.Int{}, fmt.Errorf("unknown staking contract %s", contract)
	}
	if amount, ok := stakes[address]; ok {
		return amount, nil
	}
	return math.ZeroInt(), nil
}

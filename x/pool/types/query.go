package types

import (
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"

	gwtypes "github.com/productscience/gateway/x/gateway/types"
)

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config
}

type QueryRewardRequest struct{}

type QueryRewardResponse struct {
	Reward Reward
}

type QueryBalanceOfRequest struct {
	Owner string
}

type QueryBalanceOfResponse struct {
	Amount math.Int
}

// QueryClaimableRewardRequest evaluates owed reward at Timestamp, or at the
// block time when Timestamp is nil.
type QueryClaimableRewardRequest struct {
	Owner     string
	Timestamp *uint64
}

type QueryClaimableRewardResponse struct {
	Amount math.Int
}

type QueryStakerRequest struct {
	Address string
}

type QueryStakerResponse struct {
	Staker Staker
}

type QueryStakersRequest struct {
	Pagination *query.PageRequest
}

type QueryStakersResponse struct {
	Stakers    []StakerRecord
	Pagination *query.PageResponse
}

type QueryAvailableCapOfRequest struct {
	Address string
}

type QueryAvailableCapOfResponse struct {
	Cap gwtypes.AvailableCap
}

package types

// Event types
const (
	EventTypeUpdate           = "pool_update"
	EventTypeDeposit          = "pool_deposit"
	EventTypeWithdraw         = "pool_withdraw"
	EventTypeClaim            = "pool_claim"
	EventTypeTransferInternal = "pool_transfer_internal"
	EventTypeAdjustReward     = "pool_adjust_reward"
	EventTypeUpdateConfig     = "pool_update_config"
	EventTypeShareTransfer    = "pool_share_transfer"
	EventTypeShareSend        = "pool_share_send"
	EventTypeShareAllowance   = "pool_share_allowance"

	AttributeKeySender               = "sender"
	AttributeKeyRecipient            = "recipient"
	AttributeKeyTarget               = "target"
	AttributeKeyOwner                = "owner"
	AttributeKeySpender              = "spender"
	AttributeKeyExpires              = "expires"
	AttributeKeyAmount               = "amount"
	AttributeKeyRewardPerTokenStored = "reward_per_token_stored"
	AttributeKeyRewardRate           = "reward_rate"
	AttributeKeyLastUpdateTime       = "last_update_time"
)

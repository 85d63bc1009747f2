package types

// Event types
const (
	EventTypeDeposit      = "swap_deposit"
	EventTypeWithdraw     = "swap_withdraw"
	EventTypeClaim        = "swap_claim"
	EventTypeEarn         = "swap_earn"
	EventTypeWhitelist    = "swap_whitelist"
	EventTypeUpdateConfig = "swap_update_config"
	EventTypeUpdateState  = "swap_update_state"

	AttributeKeySender     = "sender"
	AttributeKeySwappedIn  = "swapped_in"
	AttributeKeySwappedOut = "swapped_out"
	AttributeKeyAmount     = "amount"
	AttributeKeyRefund     = "refund"
	AttributeKeyPenalty    = "penalty"
	AttributeKeyCandidates = "candidates"
	AttributeKeyWhitelist  = "whitelist"
)

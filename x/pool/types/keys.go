package types

const (
	// ModuleName defines the module name
	ModuleName = "pool"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	ConfigKey       = []byte("p_config")
	RewardKey       = []byte("p_reward")
	StakerKeyPrefix = []byte("staker/")

	AllowanceKeyPrefix = []byte("allowance/")
)

// StakerKey returns the store key for a staker account.
func StakerKey(address string) []byte {
	return append(append([]byte{}, StakerKeyPrefix...), []byte(address)...)
}

// AllowanceKey returns the store key for what spender may move of owner's shares.
func AllowanceKey(owner, spender string) []byte {
	key := append(append([]byte{}, AllowanceKeyPrefix...), []byte(owner)...)
	key = append(key, '/')
	return append(key, []byte(spender)...)
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 30
)

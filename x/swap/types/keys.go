package types

const (
	// ModuleName defines the module name
	ModuleName = "swap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// EarnLockPeriod is how long after the sale finishes the beneficiary has
	// to wait before sweeping the proceeds.
	EarnLockPeriod uint64 = 86400 * 7

	DefaultPageLimit = 10
	MaxPageLimit     = 30
)

var (
	ConfigKey     = []byte("p_config")
	StateKey      = []byte("p_state")
	UserKeyPrefix = []byte("user/")
)

// UserKey returns the store key for a buyer account.
func UserKey(address string) []byte {
	return append(append([]byte{}, UserKeyPrefix...), []byte(address)...)
}

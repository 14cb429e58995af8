package constants

const (
	MaxNameLen  = 100
	PhoneLength = 11
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "123"
	DefaultInterestRate  = "0.12"

	// AccountNumberMin is inclusive, AccountNumberMax exclusive.
	AccountNumberMin      = 1000
	AccountNumberMax      = 9999
	AccountNumberAttempts = 10
)

var DefaultPhonePrefixes = []string{"010", "011", "012", "015"}

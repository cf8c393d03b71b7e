package constant

// Authentication method names recorded in the session token's method map.
const (
	MethodEmail    = "email"
	MethodPassword = "pass"
)

const (
	DefaultEmailCodeLength = 6
	DefaultBcryptCost      = 12
)

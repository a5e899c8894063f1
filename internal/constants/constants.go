package constants

// Session settings
const (
	// SessionCookieName is the name of the cookie carrying the session token.
	SessionCookieName = "crm_session"

	// ContextKeyUserID is the key under which the authenticated user ID is
	// stored in both the session and the gin context.
	ContextKeyUserID = "user_id"

	// SessionMaxAge is the fixed session lifetime in seconds (24 hours,
	// counted from creation, not sliding).
	SessionMaxAge = 24 * 60 * 60
)

// Validation limits
const (
	MinPasswordLength = 6
)

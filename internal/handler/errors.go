package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"

	ErrMsgVentureFailed      = "Failed to resolve venture"
	ErrMsgHealFailed         = "Failed to heal"
	ErrMsgGetActorFailed     = "Failed to get adventurer"
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgGrantBoostFailed   = "Failed to grant boost"
)

// User-facing messages mapped from service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgActorNotFoundError  = "Adventurer not found"
	ErrMsgUnknownLocationErr  = "Unknown venture location"
	ErrMsgUnknownMonsterError = "Unknown monster"
	ErrMsgInvalidPlatformErr  = "Invalid platform"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgOnCooldownError     = "Action is on cooldown. Try again later"
)

package response

const (
	DefaultStackTraceDepth = 32
	DefaultErrorMessage    = "Something went wrong"
	ValidationErrorMsg     = "Validation error"
	DiscordMaxMessageLen   = 5000
)

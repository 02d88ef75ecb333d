package errors

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Authentication required"
	// MessageForbidden is the default message for 403.
	MessageForbidden = "Forbidden"
	// MessageNotFound is the default message for 404.
	MessageNotFound = "Not found"
)

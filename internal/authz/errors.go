package authz

import "errors"

var (
	ErrOrganisationNotFound = errors.New("organisation not found")
	ErrUnknownResource      = errors.New("unknown resource")
)

// DeniedError is returned by the user guard when a mutation is not allowed.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string {
	return e.Reason
}

func denied(reason string) error {
	return &DeniedError{Reason: reason}
}

// IsDenied reports whether err is a DeniedError and returns its reason.
func IsDenied(err error) (string, bool) {
	var d *DeniedError
	if errors.As(err, &d) {
		return d.Reason, true
	}
	return "", false
}

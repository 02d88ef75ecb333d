package authz

// Verdict is the outcome of an access decision. It is never persisted.
type Verdict struct {
	Allowed bool
	Reason  string
}

func Allow() Verdict { return Verdict{Allowed: true} }

func Deny(reason string) Verdict { return Verdict{Reason: reason} }

const (
	ReasonInsufficientScope = "Insufficient permissions for this location/organization"
	ReasonNoLocations       = "No locations specified"
	reasonLocationPrefix    = "Access denied for location: "
)

func deniedLocation(slug string) Verdict {
	return Deny(reasonLocationPrefix + slug)
}

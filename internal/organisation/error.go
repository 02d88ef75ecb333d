package organisation

import "errors"

var (
	ErrNotFound      = errors.New("organisation not found")
	ErrKeyExists     = errors.New("organisation key already exists")
	ErrFieldRequired = errors.New("field required")
)

package directory

import "errors"

var (
	ErrNotFound      = errors.New("content not found")
	ErrFieldRequired = errors.New("required field missing")
)

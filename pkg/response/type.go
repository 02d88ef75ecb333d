package response

import "directory-api/pkg/errors"

// Resp is the JSON envelope returned by every endpoint.
type Resp struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

type ErrorMapping map[error]*errors.HTTPError

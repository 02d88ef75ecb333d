package email

import (
	"errors"
	"time"
)

const (
	DefaultTimeout       = 10 * time.Second
	DefaultMaxFailures   = 5
	DefaultOpenTimeout   = 30 * time.Second
	DefaultFailureWindow = 60 * time.Second

	sendPath        = "/mail/send"
	breakerName     = "email"
	maxErrorBodyLen = 512
)

var (
	ErrNotConfigured = errors.New("email: base url and api key are required")
	ErrRecipient     = errors.New("email: recipient is required")
	// ErrUnavailable wraps the breaker's open and half-open rejections.
	ErrUnavailable = errors.New("email: provider unavailable")
)

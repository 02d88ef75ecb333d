package email

import (
	"context"

	"directory-api/pkg/log"
)

// Sender delivers transactional email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New builds an HTTP sender guarded by a circuit breaker.
func New(l log.Logger, cfg Config) (Sender, error) {
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	cfg = withDefaults(cfg)
	return &httpSender{
		l:       l,
		cfg:     cfg,
		client:  newHTTPClient(cfg.Timeout),
		breaker: newBreaker(l, cfg),
	}, nil
}

// Disabled returns a Sender whose every Send fails with ErrNotConfigured, so
// callers that record successful delivery never record one.
func Disabled() Sender {
	return disabledSender{}
}

type disabledSender struct{}

func (disabledSender) Send(context.Context, Message) error {
	return ErrNotConfigured
}

package authz

import (
	"context"

	"directory-api/pkg/log"
)

// SecurityEventType represents the type of security event
type SecurityEventType string

const (
	SecurityEventAuthorizationFailure SecurityEventType = "authorization_failure"
	SecurityEventClaimMutationDenied  SecurityEventType = "claim_mutation_denied"
	SecurityEventRateLimitExceeded    SecurityEventType = "rate_limit_exceeded"
)

// SecurityLogger writes security-relevant events with a fixed prefix so they can be filtered.
type SecurityLogger struct {
	logger log.Logger
}

func NewSecurityLogger(logger log.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger,
	}
}

// LogAuthorizationFailure logs a denied access decision
func (sl *SecurityLogger) LogAuthorizationFailure(ctx context.Context, userID, resource, resourceID, reason string) {
	sl.logger.Warnf(ctx, "SECURITY: %s - user=%s resource=%s resourceID=%s reason=%s",
		SecurityEventAuthorizationFailure, userID, resource, resourceID, reason)
}

// LogClaimMutationDenied logs a refused user create, claim update or delete
func (sl *SecurityLogger) LogClaimMutationDenied(ctx context.Context, userID, action, targetID, reason string) {
	sl.logger.Warnf(ctx, "SECURITY: %s - user=%s action=%s target=%s reason=%s",
		SecurityEventClaimMutationDenied, userID, action, targetID, reason)
}

// LogRateLimitExceeded logs a throttled client
func (sl *SecurityLogger) LogRateLimitExceeded(ctx context.Context, client, path string) {
	sl.logger.Warnf(ctx, "SECURITY: %s - client=%s path=%s",
		SecurityEventRateLimitExceeded, client, path)
}

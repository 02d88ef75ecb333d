package discord

import (
	"context"

	"directory-api/pkg/log"
)

// IDiscord sends operational messages to a Discord webhook.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// New builds a webhook client. A zero Config uses the defaults.
func New(l log.Logger, id, token string, cfg Config) (IDiscord, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	return &discordImpl{
		l:       l,
		webhook: webhookInfo{id: id, token: token},
		config:  withDefaults(cfg),
		client:  newHTTPClient(withDefaults(cfg).Timeout),
	}, nil
}

package http

import (
	"context"

	"directory-api/internal/directory"
	"directory-api/internal/model"
	"directory-api/pkg/discord"
	"directory-api/pkg/log"
)

// OrganisationFinder resolves the organisation that owns a service or accommodation.
type OrganisationFinder interface {
	GetByKey(ctx context.Context, key string) (model.Organisation, error)
}

type Handler struct {
	l       log.Logger
	uc      directory.UseCase
	orgs    OrganisationFinder
	discord discord.IDiscord
}

func New(l log.Logger, uc directory.UseCase, orgs OrganisationFinder, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		orgs:    orgs,
		discord: d,
	}
}

package http

import (
	"directory-api/internal/authz"
	"directory-api/internal/user"
	"directory-api/pkg/discord"
	"directory-api/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      user.UseCase
	orgs    authz.OrganisationLocator
	discord discord.IDiscord
}

func New(l log.Logger, uc user.UseCase, orgs authz.OrganisationLocator, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		orgs:    orgs,
		discord: d,
	}
}

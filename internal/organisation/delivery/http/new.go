package http

import (
	"directory-api/internal/organisation"
	"directory-api/pkg/discord"
	"directory-api/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      organisation.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc organisation.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}

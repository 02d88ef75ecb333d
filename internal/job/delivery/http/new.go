package http

import (
	"directory-api/internal/job"
	"directory-api/pkg/discord"
	"directory-api/pkg/log"
)

type Handler struct {
	l       log.Logger
	uc      job.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc job.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}

package middleware

import (
	"context"

	"directory-api/internal/authz"
	"directory-api/internal/model"
	"directory-api/pkg/discord"
	"directory-api/pkg/log"
	"directory-api/pkg/scope"
)

// UserResolver maps a verified token subject to a user record.
type UserResolver interface {
	GetBySubject(ctx context.Context, subject string) (model.User, error)
}

type Middleware struct {
	l       log.Logger
	jwt     scope.Manager
	users   UserResolver
	engine  *authz.Engine
	discord discord.IDiscord
	sec     *authz.SecurityLogger
}

func New(l log.Logger, jwt scope.Manager, users UserResolver, engine *authz.Engine, d discord.IDiscord) Middleware {
	return Middleware{
		l:       l,
		jwt:     jwt,
		users:   users,
		engine:  engine,
		discord: d,
		sec:     authz.NewSecurityLogger(l),
	}
}

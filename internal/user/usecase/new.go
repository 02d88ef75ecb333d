package usecase

import (
	"directory-api/internal/authz"
	"directory-api/internal/user"
	"directory-api/internal/user/repository"
	pkgLog "directory-api/pkg/log"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	guard *authz.UserGuard
	sec   *authz.SecurityLogger
}

func New(l pkgLog.Logger, repo repository.Repository, guard *authz.UserGuard) user.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		guard: guard,
		sec:   authz.NewSecurityLogger(l),
	}
}

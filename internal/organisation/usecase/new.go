package usecase

import (
	"directory-api/internal/organisation"
	"directory-api/internal/organisation/repository"
	pkgLog "directory-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) organisation.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}

package usecase

import (
	"directory-api/internal/directory"
	"directory-api/internal/directory/repository"
	pkgLog "directory-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) directory.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}

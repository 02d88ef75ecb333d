package repository

import (
	"context"

	"directory-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, id string) (model.User, error)
	GetOne(ctx context.Context, opts GetOneOptions) (model.User, error)
	List(ctx context.Context, opts ListOptions) ([]model.User, error)
	Create(ctx context.Context, opts CreateOptions) (model.User, error)
	UpdateClaims(ctx context.Context, opts UpdateClaimsOptions) (model.User, error)
	Archive(ctx context.Context, id string) error
}

package user

import (
	"context"

	"directory-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetBySubject resolves the identity provider subject of an authenticated caller.
	GetBySubject(ctx context.Context, subject string) (model.User, error)
	Detail(ctx context.Context, id string) (model.User, error)
	List(ctx context.Context, sc model.Scope, ip ListInput) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.User, error)
	UpdateClaims(ctx context.Context, sc model.Scope, ip UpdateClaimsInput) (model.User, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}

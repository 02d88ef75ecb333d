package user

import (
	"directory-api/internal/model"
	"directory-api/pkg/paginator"
)

type CreateInput struct {
	Subject                       string
	Email                         string
	AuthClaims                    []string
	AssociatedProviderLocationIds []string
}

type UpdateClaimsInput struct {
	ID         string
	AuthClaims []string
}

type ListInput struct {
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Users     []model.User
	Paginator paginator.Paginator
}

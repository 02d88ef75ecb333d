package http

import (
	"strings"
	"time"

	"directory-api/internal/model"
	"directory-api/internal/user"
	"directory-api/pkg/paginator"
)

type createReq struct {
	Auth0Id                       string   `json:"Auth0Id"`
	Email                         string   `json:"Email"`
	AuthClaims                    []string `json:"AuthClaims"`
	AssociatedProviderLocationIds []string `json:"AssociatedProviderLocationIds"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Subject:                       strings.TrimSpace(r.Auth0Id),
		Email:                         strings.TrimSpace(r.Email),
		AuthClaims:                    r.AuthClaims,
		AssociatedProviderLocationIds: r.AssociatedProviderLocationIds,
	}
}

type updateClaimsReq struct {
	AuthClaims []string `json:"AuthClaims"`
}

type listReq struct {
	paginator.PaginateQuery
}

func (r listReq) toInput() user.ListInput {
	return user.ListInput{PaginateQuery: r.PaginateQuery}
}

type userResp struct {
	ID                            string     `json:"id"`
	Auth0Id                       string     `json:"Auth0Id"`
	Email                         string     `json:"Email"`
	AuthClaims                    []string   `json:"AuthClaims"`
	AssociatedProviderLocationIds []string   `json:"AssociatedProviderLocationIds"`
	IsActive                      bool       `json:"IsActive"`
	DocumentCreationDate          time.Time  `json:"DocumentCreationDate"`
	DocumentModifiedDate          time.Time  `json:"DocumentModifiedDate"`
	ArchivedAt                    *time.Time `json:"ArchivedAt,omitempty"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:                            u.ID,
		Auth0Id:                       u.Subject,
		Email:                         u.Email,
		AuthClaims:                    u.AuthClaims,
		AssociatedProviderLocationIds: u.AssociatedProviderLocationIds,
		IsActive:                      u.IsActive,
		DocumentCreationDate:          u.CreatedAt,
		DocumentModifiedDate:          u.UpdatedAt,
		ArchivedAt:                    u.ArchivedAt,
	}
}

type listResp struct {
	Items     []userResp                  `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListResp(o user.ListOutput) listResp {
	items := make([]userResp, 0, len(o.Users))
	for _, u := range o.Users {
		items = append(items, newUserResp(u))
	}
	return listResp{Items: items, Paginator: o.Paginator.ToResponse()}
}

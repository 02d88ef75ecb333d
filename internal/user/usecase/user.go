package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"directory-api/internal/authz"
	"directory-api/internal/model"
	"directory-api/internal/user"
	"directory-api/internal/user/repository"
	pkgErrors "directory-api/pkg/errors"
	"directory-api/pkg/paginator"
)

func (uc *usecase) GetBySubject(ctx context.Context, subject string) (model.User, error) {
	u, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Subject: subject})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.GetBySubject: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (uc *usecase) Detail(ctx context.Context, id string) (model.User, error) {
	u, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return model.User{}, err
	}
	return u, nil
}

// List returns the users the caller may view, one page at a time.
func (uc *usecase) List(ctx context.Context, sc model.Scope, ip user.ListInput) (user.ListOutput, error) {
	users, err := uc.repo.List(ctx, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.List: %v", err)
		return user.ListOutput{}, err
	}

	visible := make([]model.User, 0, len(users))
	for _, u := range users {
		ok, err := uc.guard.CanViewUser(ctx, sc.Claims, u)
		if err != nil {
			uc.l.Errorf(ctx, "internal.user.usecase.List.CanViewUser: %v", err)
			return user.ListOutput{}, err
		}
		if ok {
			visible = append(visible, u)
		}
	}

	page, pag := paginator.PaginateSlice(visible, ip.PaginateQuery)
	return user.ListOutput{Users: page, Paginator: pag}, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip user.CreateInput) (model.User, error) {
	if strings.TrimSpace(ip.Subject) == "" || strings.TrimSpace(ip.Email) == "" {
		return model.User{}, user.ErrFieldRequired
	}
	if err := validateClaims(ip.AuthClaims); err != nil {
		return model.User{}, err
	}

	if err := uc.guard.CanCreateUser(ctx, sc.Claims, ip.AuthClaims); err != nil {
		uc.logDenied(ctx, sc, "create", ip.Subject, err)
		return model.User{}, err
	}

	locs := ip.AssociatedProviderLocationIds
	if locs == nil {
		locs = []string{}
	}

	u, err := uc.repo.Create(ctx, repository.CreateOptions{
		Subject:                       ip.Subject,
		Email:                         ip.Email,
		AuthClaims:                    model.NewClaimSet(ip.AuthClaims).Strings(),
		AssociatedProviderLocationIds: locs,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return model.User{}, user.ErrUserExists
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Create: %v", err)
		return model.User{}, err
	}

	uc.l.Infof(ctx, "internal.user.usecase.Create: user %s created by %s", u.ID, sc.UserID)
	return u, nil
}

func (uc *usecase) UpdateClaims(ctx context.Context, sc model.Scope, ip user.UpdateClaimsInput) (model.User, error) {
	if err := validateClaims(ip.AuthClaims); err != nil {
		return model.User{}, err
	}

	target, err := uc.Detail(ctx, ip.ID)
	if err != nil {
		return model.User{}, err
	}

	if err := uc.guard.CanUpdateUserClaims(ctx, sc.Claims, target.AuthClaims, ip.AuthClaims); err != nil {
		uc.logDenied(ctx, sc, "update_claims", ip.ID, err)
		return model.User{}, err
	}

	u, err := uc.repo.UpdateClaims(ctx, repository.UpdateClaimsOptions{
		ID:         ip.ID,
		AuthClaims: model.NewClaimSet(ip.AuthClaims).Strings(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateClaims: %v", err)
		return model.User{}, err
	}
	return u, nil
}

// Delete archives the user; records are never hard-deleted.
func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	target, err := uc.Detail(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.guard.CanDeleteUser(ctx, sc.Claims, target.AuthClaims); err != nil {
		uc.logDenied(ctx, sc, "delete", id, err)
		return err
	}

	if err := uc.repo.Archive(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func validateClaims(claims []string) error {
	if v := model.ValidateClaimSet(claims); !v.Valid {
		return pkgErrors.NewValidationError(http.StatusBadRequest, "AuthClaims", v.Error)
	}
	return nil
}

func (uc *usecase) logDenied(ctx context.Context, sc model.Scope, action, target string, err error) {
	if reason, ok := authz.IsDenied(err); ok {
		uc.sec.LogClaimMutationDenied(ctx, sc.UserID, action, target, reason)
	}
}

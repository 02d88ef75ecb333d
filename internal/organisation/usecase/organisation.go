package usecase

import (
	"context"
	"errors"
	"strings"

	"directory-api/internal/authz"
	"directory-api/internal/model"
	"directory-api/internal/organisation"
	"directory-api/internal/organisation/repository"
)

func (uc *usecase) Detail(ctx context.Context, id string) (model.Organisation, error) {
	o, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Organisation{}, organisation.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.organisation.usecase.Detail: %v", err)
		return model.Organisation{}, err
	}
	return o, nil
}

func (uc *usecase) GetByKey(ctx context.Context, key string) (model.Organisation, error) {
	o, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Organisation{}, organisation.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.organisation.usecase.GetByKey: %v", err)
		return model.Organisation{}, err
	}
	return o, nil
}

func (uc *usecase) OrganisationLocations(ctx context.Context, key string) ([]string, error) {
	o, err := uc.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, organisation.ErrNotFound) {
			return nil, authz.ErrOrganisationNotFound
		}
		return nil, err
	}
	return o.AssociatedLocationIds, nil
}

func (uc *usecase) ListByLocations(ctx context.Context, locations []string) ([]model.Organisation, error) {
	orgs, err := uc.repo.ListByLocations(ctx, locations)
	if err != nil {
		uc.l.Errorf(ctx, "internal.organisation.usecase.ListByLocations: %v", err)
		return nil, err
	}
	return orgs, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip organisation.CreateInput) (model.Organisation, error) {
	if strings.TrimSpace(ip.Key) == "" || strings.TrimSpace(ip.Name) == "" {
		return model.Organisation{}, organisation.ErrFieldRequired
	}

	o, err := uc.repo.Create(ctx, repository.CreateOptions{
		Key:                   ip.Key,
		Name:                  ip.Name,
		AssociatedLocationIds: ip.AssociatedLocationIds,
		AdministratorEmail:    ip.AdministratorEmail,
		IsPublished:           ip.IsPublished,
		IsVerified:            ip.IsVerified,
	})
	if err != nil {
		if errors.Is(err, repository.ErrKeyConflict) {
			return model.Organisation{}, organisation.ErrKeyExists
		}
		uc.l.Errorf(ctx, "internal.organisation.usecase.Create: %v", err)
		return model.Organisation{}, err
	}

	uc.l.Infof(ctx, "internal.organisation.usecase.Create: %s created by %s", o.Key, sc.UserID)
	return o, nil
}

func (uc *usecase) Archive(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Archive(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return organisation.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.organisation.usecase.Archive: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) AddNote(ctx context.Context, sc model.Scope, ip organisation.AddNoteInput) (model.OrganisationNote, error) {
	if ip.Date.IsZero() || strings.TrimSpace(ip.Reason) == "" {
		return model.OrganisationNote{}, organisation.ErrFieldRequired
	}

	o, err := uc.GetByKey(ctx, ip.Key)
	if err != nil {
		return model.OrganisationNote{}, err
	}

	staff := ip.StaffName
	if staff == "" {
		staff = sc.Email
	}

	n, err := uc.repo.AddNote(ctx, repository.AddNoteOptions{
		OrganisationID: o.ID,
		Date:           ip.Date,
		StaffName:      staff,
		Reason:         ip.Reason,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.organisation.usecase.AddNote: %v", err)
		return model.OrganisationNote{}, err
	}
	return n, nil
}

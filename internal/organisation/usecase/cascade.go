package usecase

import (
	"context"
	"errors"
	"time"

	"directory-api/internal/model"
	"directory-api/internal/organisation"
	"directory-api/internal/organisation/repository"
	postgresPkg "directory-api/pkg/postgre"
)

func (uc *usecase) UpdateRelatedServices(ctx context.Context, providerKey string, patch model.ServicePatch) (int64, error) {
	n, err := uc.repo.UpdateRelatedServices(ctx, providerKey, patch)
	if err != nil {
		uc.l.Errorf(ctx, "internal.organisation.usecase.UpdateRelatedServices: %v", err)
		return 0, err
	}
	return n, nil
}

func (uc *usecase) TogglePublished(ctx context.Context, sc model.Scope, key string) (model.Organisation, error) {
	return uc.toggle(ctx, sc, key, uc.repo.TogglePublished, func(o model.Organisation) model.ServicePatch {
		return model.ServicePatch{IsPublished: &o.IsPublished}
	})
}

func (uc *usecase) ToggleVerified(ctx context.Context, sc model.Scope, key string) (model.Organisation, error) {
	return uc.toggle(ctx, sc, key, uc.repo.ToggleVerified, func(o model.Organisation) model.ServicePatch {
		return model.ServicePatch{IsVerified: &o.IsVerified}
	})
}

func (uc *usecase) toggle(
	ctx context.Context,
	sc model.Scope,
	key string,
	flip func(ctx context.Context, key string) (model.Organisation, error),
	patchOf func(o model.Organisation) model.ServicePatch,
) (model.Organisation, error) {
	var updated model.Organisation
	err := uc.repo.WithinTx(ctx, func(ctx context.Context) error {
		o, err := flip(ctx, key)
		if err != nil {
			return err
		}
		if _, err := uc.repo.UpdateRelatedServices(ctx, o.Key, patchOf(o)); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Organisation{}, organisation.ErrNotFound
		}
		uc.l.Errorf(ctx, "internal.organisation.usecase.toggle: %v", err)
		return model.Organisation{}, err
	}

	uc.l.Infof(ctx, "internal.organisation.usecase.toggle: %s published=%t verified=%t by %s",
		updated.Key, updated.IsPublished, updated.IsVerified, sc.UserID)
	return updated, nil
}

// ExpireVerification marks org unverified and cascades, atomically.
func (uc *usecase) ExpireVerification(ctx context.Context, org model.Organisation) (bool, error) {
	return uc.clearAndCascade(ctx, org, uc.repo.Unverify, model.ServicePatch{IsVerified: boolPtr(false)})
}

// Disable unpublishes org and cascades, atomically. A concurrent unpublish
// turns the run into a rolled-back no-op.
func (uc *usecase) Disable(ctx context.Context, org model.Organisation) (bool, error) {
	return uc.clearAndCascade(ctx, org, uc.repo.Unpublish, model.ServicePatch{IsPublished: boolPtr(false)})
}

func (uc *usecase) clearAndCascade(
	ctx context.Context,
	org model.Organisation,
	unset func(ctx context.Context, id string) (bool, error),
	patch model.ServicePatch,
) (bool, error) {
	var changed bool
	err := uc.repo.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := unset(ctx, org.ID)
		if err != nil {
			return err
		}
		if !ok {
			return postgresPkg.ErrRollback
		}
		if _, err := uc.repo.UpdateRelatedServices(ctx, org.Key, patch); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.organisation.usecase.clearAndCascade: %s: %v", org.Key, err)
		return false, err
	}
	return changed, nil
}

func (uc *usecase) ListForVerification(ctx context.Context) ([]model.Organisation, error) {
	orgs, err := uc.repo.ListWithAdministrator(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.organisation.usecase.ListForVerification: %v", err)
		return nil, err
	}
	return orgs, nil
}

func (uc *usecase) ListForDisabling(ctx context.Context) ([]model.Organisation, error) {
	orgs, err := uc.repo.ListPublishedWithNotes(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.organisation.usecase.ListForDisabling: %v", err)
		return nil, err
	}
	return orgs, nil
}

func (uc *usecase) MarkReminderSent(ctx context.Context, id string, at time.Time) error {
	if err := uc.repo.MarkReminderSent(ctx, id, at); err != nil {
		uc.l.Errorf(ctx, "internal.organisation.usecase.MarkReminderSent: %v", err)
		return err
	}
	return nil
}

func boolPtr(b bool) *bool {
	return &b
}

package repository

import (
	"context"
	"time"

	"directory-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, id string) (model.Organisation, error)
	GetByKey(ctx context.Context, key string) (model.Organisation, error)
	ListByLocations(ctx context.Context, locations []string) ([]model.Organisation, error)
	Create(ctx context.Context, opts CreateOptions) (model.Organisation, error)
	Archive(ctx context.Context, id string) error
	AddNote(ctx context.Context, opts AddNoteOptions) (model.OrganisationNote, error)

	TogglePublished(ctx context.Context, key string) (model.Organisation, error)
	ToggleVerified(ctx context.Context, key string) (model.Organisation, error)
	// Unpublish and Unverify report false when the flag was already off.
	Unpublish(ctx context.Context, id string) (bool, error)
	Unverify(ctx context.Context, id string) (bool, error)
	UpdateRelatedServices(ctx context.Context, providerKey string, patch model.ServicePatch) (int64, error)

	ListWithAdministrator(ctx context.Context) ([]model.Organisation, error)
	ListPublishedWithNotes(ctx context.Context) ([]model.Organisation, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) error

	// WithinTx runs fn in a transaction carried by its context.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

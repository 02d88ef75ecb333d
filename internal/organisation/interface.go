package organisation

import (
	"context"
	"time"

	"directory-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, id string) (model.Organisation, error)
	GetByKey(ctx context.Context, key string) (model.Organisation, error)
	ListByLocations(ctx context.Context, locations []string) ([]model.Organisation, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Organisation, error)
	Archive(ctx context.Context, sc model.Scope, id string) error
	AddNote(ctx context.Context, sc model.Scope, ip AddNoteInput) (model.OrganisationNote, error)

	// TogglePublished and ToggleVerified flip the flag and cascade the new
	// value to dependent services in one transaction.
	TogglePublished(ctx context.Context, sc model.Scope, key string) (model.Organisation, error)
	ToggleVerified(ctx context.Context, sc model.Scope, key string) (model.Organisation, error)
	UpdateRelatedServices(ctx context.Context, providerKey string, patch model.ServicePatch) (int64, error)

	// ExpireVerification and Disable are the job-side transitions. They report
	// false when the organisation was already in the target state.
	ExpireVerification(ctx context.Context, org model.Organisation) (bool, error)
	Disable(ctx context.Context, org model.Organisation) (bool, error)
	ListForVerification(ctx context.Context) ([]model.Organisation, error)
	ListForDisabling(ctx context.Context) ([]model.Organisation, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) error

	// OrganisationLocations resolves a key for the authorization layer.
	OrganisationLocations(ctx context.Context, key string) ([]string, error)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"directory-api/internal/model"
	"directory-api/internal/organisation/repository"
	postgresPkg "directory-api/pkg/postgre"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

func (r *implRepository) Detail(ctx context.Context, id string) (model.Organisation, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		return model.Organisation{}, repository.ErrNotFound
	}

	o, err := scanOrganisation(r.conn(ctx).QueryRowContext(ctx, queryDetail, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Organisation{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.Detail.Scan: %v", err)
		return model.Organisation{}, err
	}

	withNotes, err := r.attachNotes(ctx, []model.Organisation{o})
	if err != nil {
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.Detail.attachNotes: %v", err)
		return model.Organisation{}, err
	}

	return withNotes[0], nil
}

func (r *implRepository) GetByKey(ctx context.Context, key string) (model.Organisation, error) {
	o, err := scanOrganisation(r.conn(ctx).QueryRowContext(ctx, queryGetByKey, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Organisation{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.GetByKey.Scan: %v", err)
		return model.Organisation{}, err
	}
	return o, nil
}

func (r *implRepository) ListByLocations(ctx context.Context, locations []string) ([]model.Organisation, error) {
	orgs, err := r.list(ctx, queryListByLocations, pq.Array(locations))
	if err != nil {
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.ListByLocations: %v", err)
		return nil, err
	}
	return orgs, nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Organisation, error) {
	row := r.conn(ctx).QueryRowContext(ctx, queryInsert,
		postgresPkg.NewUUID(), opts.Key, opts.Name, pq.Array(opts.AssociatedLocationIds),
		opts.IsPublished, opts.IsVerified, opts.AdministratorEmail, r.clock().UTC(),
	)

	o, err := scanOrganisation(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.Organisation{}, repository.ErrKeyConflict
		}
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.Create.Scan: %v", err)
		return model.Organisation{}, err
	}
	return o, nil
}

func (r *implRepository) Archive(ctx context.Context, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		return repository.ErrNotFound
	}

	res, err := r.conn(ctx).ExecContext(ctx, queryArchive, id, r.clock().UTC())
	if err != nil {
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.Archive.Exec: %v", err)
		return err
	}
	return requireRow(res)
}

func (r *implRepository) AddNote(ctx context.Context, opts repository.AddNoteOptions) (model.OrganisationNote, error) {
	n := model.OrganisationNote{
		ID:             postgresPkg.NewUUID(),
		OrganisationID: opts.OrganisationID,
		Date:           opts.Date.UTC(),
		StaffName:      opts.StaffName,
		Reason:         opts.Reason,
	}

	_, err := r.conn(ctx).ExecContext(ctx, queryInsertNote, n.ID, n.OrganisationID, n.Date, n.StaffName, n.Reason)
	if err != nil {
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.AddNote.Exec: %v", err)
		return model.OrganisationNote{}, err
	}
	return n, nil
}

func (r *implRepository) TogglePublished(ctx context.Context, key string) (model.Organisation, error) {
	return r.toggle(ctx, queryTogglePublished, key)
}

func (r *implRepository) ToggleVerified(ctx context.Context, key string) (model.Organisation, error) {
	return r.toggle(ctx, queryToggleVerified, key)
}

func (r *implRepository) toggle(ctx context.Context, query, key string) (model.Organisation, error) {
	o, err := scanOrganisation(r.conn(ctx).QueryRowContext(ctx, query, key, r.clock().UTC()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Organisation{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.toggle.Scan: %v", err)
		return model.Organisation{}, err
	}
	return o, nil
}

func (r *implRepository) Unpublish(ctx context.Context, id string) (bool, error) {
	return r.clearFlag(ctx, queryUnpublish, id)
}

func (r *implRepository) Unverify(ctx context.Context, id string) (bool, error) {
	return r.clearFlag(ctx, queryUnverify, id)
}

func (r *implRepository) clearFlag(ctx context.Context, query, id string) (bool, error) {
	res, err := r.conn(ctx).ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.clearFlag.Exec: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateRelatedServices patches every service and grouped service owned by providerKey.
// It joins the transaction on ctx when there is one.
func (r *implRepository) UpdateRelatedServices(ctx context.Context, providerKey string, patch model.ServicePatch) (int64, error) {
	if patch.IsEmpty() {
		return 0, nil
	}

	set, args := buildServicePatch(patch)
	args = append([]any{providerKey}, args...)

	var total int64
	for _, q := range []string{
		"UPDATE services SET " + set + " WHERE service_provider_key = $1",
		"UPDATE grouped_services SET " + set + " WHERE provider_id = $1",
	} {
		res, err := r.conn(ctx).ExecContext(ctx, q, args...)
		if err != nil {
			r.l.Errorf(ctx, "internal.organisation.repository.postgres.UpdateRelatedServices.Exec: %v", err)
			return total, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, err
		}
		total += n
	}

	return total, nil
}

func (r *implRepository) ListWithAdministrator(ctx context.Context) ([]model.Organisation, error) {
	orgs, err := r.list(ctx, queryListWithAdministrator)
	if err != nil {
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.ListWithAdministrator: %v", err)
		return nil, err
	}
	return orgs, nil
}

func (r *implRepository) ListPublishedWithNotes(ctx context.Context) ([]model.Organisation, error) {
	orgs, err := r.list(ctx, queryListPublishedWithNotes)
	if err != nil {
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.ListPublishedWithNotes.list: %v", err)
		return nil, err
	}

	orgs, err = r.attachNotes(ctx, orgs)
	if err != nil {
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.ListPublishedWithNotes.attachNotes: %v", err)
		return nil, err
	}
	return orgs, nil
}

func (r *implRepository) MarkReminderSent(ctx context.Context, id string, at time.Time) error {
	res, err := r.conn(ctx).ExecContext(ctx, queryMarkReminderSent, id, at.UTC())
	if err != nil {
		r.l.Errorf(ctx, "internal.organisation.repository.postgres.MarkReminderSent.Exec: %v", err)
		return err
	}
	return requireRow(res)
}

func (r *implRepository) list(ctx context.Context, query string, args ...any) ([]model.Organisation, error) {
	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Organisation
	for rows.Next() {
		o, err := scanOrganisation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *implRepository) attachNotes(ctx context.Context, orgs []model.Organisation) ([]model.Organisation, error) {
	if len(orgs) == 0 {
		return orgs, nil
	}

	ids := make([]string, len(orgs))
	byID := make(map[string]int, len(orgs))
	for i, o := range orgs {
		ids[i] = o.ID
		byID[o.ID] = i
	}

	rows, err := r.conn(ctx).QueryContext(ctx, queryNotesFor, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var n model.OrganisationNote
		if err := rows.Scan(&n.ID, &n.OrganisationID, &n.Date, &n.StaffName, &n.Reason); err != nil {
			return nil, err
		}
		if i, ok := byID[n.OrganisationID]; ok {
			orgs[i].Notes = append(orgs[i].Notes, n)
		}
	}
	return orgs, rows.Err()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

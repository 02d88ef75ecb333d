package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	"directory-api/internal/model"

	"github.com/lib/pq"
)

const organisationColumns = `id, key, name, associated_location_ids, is_published, is_verified,
	administrator_email, reminder_sent_at, document_modified_date, created_at`

const (
	queryDetail = `SELECT ` + organisationColumns + ` FROM organisations
	WHERE id = $1 AND archived_at IS NULL`

	queryGetByKey = `SELECT ` + organisationColumns + ` FROM organisations
	WHERE key = $1 AND archived_at IS NULL`

	// An empty filter lists every organisation; only global roles reach it.
	queryListByLocations = `SELECT ` + organisationColumns + ` FROM organisations
	WHERE (coalesce(cardinality($1::text[]), 0) = 0 OR associated_location_ids && $1::text[])
	AND archived_at IS NULL
	ORDER BY name`

	queryInsert = `INSERT INTO organisations
	(id, key, name, associated_location_ids, is_published, is_verified, administrator_email, document_modified_date, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	RETURNING ` + organisationColumns

	queryArchive = `UPDATE organisations SET archived_at = $2
	WHERE id = $1 AND archived_at IS NULL`

	queryTogglePublished = `UPDATE organisations SET is_published = NOT is_published, document_modified_date = $2
	WHERE key = $1 AND archived_at IS NULL
	RETURNING ` + organisationColumns

	queryToggleVerified = `UPDATE organisations SET is_verified = NOT is_verified, document_modified_date = $2
	WHERE key = $1 AND archived_at IS NULL
	RETURNING ` + organisationColumns

	queryUnpublish = `UPDATE organisations SET is_published = false
	WHERE id = $1 AND is_published`

	queryUnverify = `UPDATE organisations SET is_verified = false
	WHERE id = $1 AND is_verified`

	queryListWithAdministrator = `SELECT ` + organisationColumns + ` FROM organisations
	WHERE administrator_email IS NOT NULL AND administrator_email <> '' AND archived_at IS NULL`

	queryListPublishedWithNotes = `SELECT ` + organisationColumns + ` FROM organisations o
	WHERE o.is_published AND o.archived_at IS NULL
	AND EXISTS (SELECT 1 FROM organisation_notes n WHERE n.organisation_id = o.id)`

	queryMarkReminderSent = `UPDATE organisations SET reminder_sent_at = $2 WHERE id = $1`

	queryNotesFor = `SELECT id, organisation_id, date, staff_name, reason FROM organisation_notes
	WHERE organisation_id = ANY($1)
	ORDER BY date DESC`

	queryInsertNote = `INSERT INTO organisation_notes (id, organisation_id, date, staff_name, reason)
	VALUES ($1, $2, $3, $4, $5)`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrganisation(s rowScanner) (model.Organisation, error) {
	var (
		o        model.Organisation
		email    sql.NullString
		reminder sql.NullTime
	)
	err := s.Scan(
		&o.ID, &o.Key, &o.Name, pq.Array(&o.AssociatedLocationIds),
		&o.IsPublished, &o.IsVerified,
		&email, &reminder, &o.DocumentModifiedDate, &o.CreatedAt,
	)
	if err != nil {
		return model.Organisation{}, err
	}
	o.AdministratorEmail = email.String
	if reminder.Valid {
		t := reminder.Time
		o.ReminderSentAt = &t
	}
	return o, nil
}

// buildServicePatch renders the SET clause for a cascade. $1 is reserved for the provider key.
func buildServicePatch(patch model.ServicePatch) (string, []any) {
	var (
		sets []string
		args []any
	)
	if patch.IsPublished != nil {
		args = append(args, *patch.IsPublished)
		sets = append(sets, fmt.Sprintf("is_published = $%d", len(args)+1))
	}
	if patch.IsVerified != nil {
		args = append(args, *patch.IsVerified)
		sets = append(sets, fmt.Sprintf("is_verified = $%d", len(args)+1))
	}
	return strings.Join(sets, ", "), args
}

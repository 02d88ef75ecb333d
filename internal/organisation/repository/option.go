package repository

import "time"

// CreateOptions contains options for creating an organisation.
type CreateOptions struct {
	Key                   string
	Name                  string
	AssociatedLocationIds []string
	AdministratorEmail    string
	IsPublished           bool
	IsVerified            bool
}

type AddNoteOptions struct {
	OrganisationID string
	Date           time.Time
	StaffName      string
	Reason         string
}

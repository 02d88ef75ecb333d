package organisation

import "time"

type CreateInput struct {
	Key                   string
	Name                  string
	AssociatedLocationIds []string
	AdministratorEmail    string
	IsPublished           bool
	IsVerified            bool
}

type AddNoteInput struct {
	Key       string
	Date      time.Time
	StaffName string
	Reason    string
}

package model

import "time"

// Organisation is a service provider listed in the directory.
type Organisation struct {
	ID                    string             `json:"id"`
	Key                   string             `json:"Key"`
	Name                  string             `json:"Name"`
	AssociatedLocationIds []string           `json:"AssociatedLocationIds"`
	IsPublished           bool               `json:"IsPublished"`
	IsVerified            bool               `json:"IsVerified"`
	AdministratorEmail    string             `json:"AdministratorEmail,omitempty"`
	ReminderSentAt        *time.Time         `json:"ReminderSentAt,omitempty"`
	DocumentModifiedDate  time.Time          `json:"DocumentModifiedDate"`
	CreatedAt             time.Time          `json:"DocumentCreationDate"`
	Notes                 []OrganisationNote `json:"Notes,omitempty"`
}

// OrganisationNote is a staff note. Its Date doubles as a scheduled unpublish date.
type OrganisationNote struct {
	ID             string    `json:"id"`
	OrganisationID string    `json:"-"`
	Date           time.Time `json:"Date"`
	StaffName      string    `json:"StaffName"`
	Reason         string    `json:"Reason"`
}

// LatestNote returns the note with the greatest Date.
func (o Organisation) LatestNote() (OrganisationNote, bool) {
	if len(o.Notes) == 0 {
		return OrganisationNote{}, false
	}
	latest := o.Notes[0]
	for _, n := range o.Notes[1:] {
		if n.Date.After(latest.Date) {
			latest = n
		}
	}
	return latest, true
}

// ServicePatch is the subset of service status fields a cascade may write.
// Nil fields are left untouched.
type ServicePatch struct {
	IsPublished *bool
	IsVerified  *bool
}

// IsEmpty reports whether the patch would write nothing.
func (p ServicePatch) IsEmpty() bool {
	return p.IsPublished == nil && p.IsVerified == nil
}

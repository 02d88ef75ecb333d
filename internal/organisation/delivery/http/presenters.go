package http

import (
	"strings"
	"time"

	"directory-api/internal/model"
	"directory-api/internal/organisation"
)

type createReq struct {
	Key                   string   `json:"Key"`
	Name                  string   `json:"Name"`
	AssociatedLocationIds []string `json:"AssociatedLocationIds"`
	AdministratorEmail    string   `json:"AdministratorEmail"`
	IsPublished           bool     `json:"IsPublished"`
	IsVerified            bool     `json:"IsVerified"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Key) == "" || strings.TrimSpace(r.Name) == "" || len(r.AssociatedLocationIds) == 0 {
		return errFieldRequired
	}
	return nil
}

func (r createReq) toInput() organisation.CreateInput {
	return organisation.CreateInput{
		Key:                   strings.TrimSpace(r.Key),
		Name:                  strings.TrimSpace(r.Name),
		AssociatedLocationIds: r.AssociatedLocationIds,
		AdministratorEmail:    strings.TrimSpace(r.AdministratorEmail),
		IsPublished:           r.IsPublished,
		IsVerified:            r.IsVerified,
	}
}

type addNoteReq struct {
	Date      *time.Time `json:"Date"`
	StaffName string     `json:"StaffName"`
	Reason    string     `json:"Reason"`
}

func (r addNoteReq) validate() error {
	if strings.TrimSpace(r.StaffName) == "" || strings.TrimSpace(r.Reason) == "" {
		return errFieldRequired
	}
	return nil
}

func (r addNoteReq) toInput(key string, now time.Time) organisation.AddNoteInput {
	date := now
	if r.Date != nil {
		date = *r.Date
	}
	return organisation.AddNoteInput{
		Key:       key,
		Date:      date.UTC(),
		StaffName: strings.TrimSpace(r.StaffName),
		Reason:    strings.TrimSpace(r.Reason),
	}
}

type listResp struct {
	Items []model.Organisation `json:"items"`
	Total int                  `json:"total"`
}

func newListResp(orgs []model.Organisation) listResp {
	return listResp{Items: orgs, Total: len(orgs)}
}
